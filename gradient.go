package drawhelper

import (
	"math"

	"github.com/gogpu/drawhelper/internal/cache"
	"github.com/gogpu/drawhelper/internal/gradient"
)

// Spread selects how a gradient continues outside [0, 1].
type Spread = gradient.Spread

// Spread methods.
const (
	SpreadPad     = gradient.Pad
	SpreadRepeat  = gradient.Repeat
	SpreadReflect = gradient.Reflect
)

// GradientStop is a straight ARGB colour at position Pos in [0, 1].
type GradientStop struct {
	Pos   float64
	Color uint32
}

// tableCacheSize bounds the number of distinct stop lists kept.
const tableCacheSize = 60

var tableCache = cache.New[string, *gradient.Table](tableCacheSize)

// buildTable converts stops to a colour table, sharing tables between
// gradients with identical stops. No stops paints black to white.
func buildTable(stops []GradientStop) *gradient.Table {
	s := make([]gradient.Stop, len(stops))
	for i, st := range stops {
		s[i] = gradient.Stop{Pos: st.Pos, Color: st.Color}
	}
	return tableCache.GetOrCreate(gradient.Key(s, 1), func() *gradient.Table {
		return gradient.NewTable(s, 1)
	})
}

func gradientSource(d *gradient.Data) source {
	return source{kind: sourceGradient, gradient: d, opaque: !d.HasAlpha()}
}

// LinearGradient interpolates along the line from (X1, Y1) to (X2, Y2).
type LinearGradient struct {
	X1, Y1, X2, Y2 float64
	Stops          []GradientStop
	Spread         Spread
}

func (g *LinearGradient) resolve(*config) (source, error) {
	d := gradient.NewLinear(gradient.LinearGeometry{
		X1: g.X1, Y1: g.Y1, X2: g.X2, Y2: g.Y2,
	}, g.Spread, buildTable(g.Stops))
	return gradientSource(d), nil
}

// RadialGradient interpolates between the focal circle (FX, FY,
// FocalRadius) and the centre circle (CX, CY, Radius).
//
// With a zero FocalRadius the focal point is moved inside the centre
// circle if it lies outside, so the gradient covers the whole plane.
type RadialGradient struct {
	CX, CY, Radius      float64
	FX, FY, FocalRadius float64
	Stops               []GradientStop
	Spread              Spread
}

// focalMargin keeps an adapted focal point strictly inside the circle.
const focalMargin = 0.001

func (g *RadialGradient) resolve(*config) (source, error) {
	fx, fy := g.FX, g.FY
	if g.FocalRadius == 0 {
		fx, fy = adaptFocalPoint(g.CX, g.CY, g.Radius, fx, fy)
	}
	d := gradient.NewRadial(gradient.RadialGeometry{
		CX: g.CX, CY: g.CY, CR: g.Radius,
		FX: fx, FY: fy, FR: g.FocalRadius,
	}, g.Spread, buildTable(g.Stops))
	return gradientSource(d), nil
}

func adaptFocalPoint(cx, cy, r, fx, fy float64) (float64, float64) {
	dx, dy := fx-cx, fy-cy
	dist := math.Hypot(dx, dy)
	limit := r * (1 - focalMargin)
	if dist <= limit || dist == 0 {
		return fx, fy
	}
	k := limit / dist
	return cx + dx*k, cy + dy*k
}

// ConicalGradient sweeps counter-clockwise around (CX, CY) starting at
// Angle degrees. It always repeats.
type ConicalGradient struct {
	CX, CY, Angle float64
	Stops         []GradientStop
}

func (g *ConicalGradient) resolve(*config) (source, error) {
	d := gradient.NewConical(gradient.ConicalGeometry{
		CX: g.CX, CY: g.CY, Angle: g.Angle * 2 * math.Pi / 360,
	}, buildTable(g.Stops))
	return gradientSource(d), nil
}
