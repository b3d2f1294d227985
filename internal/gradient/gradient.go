package gradient

import (
	"math"

	"github.com/gogpu/drawhelper/internal/geom"
)

// Spread defines how positions outside [0, 1] map into the table.
type Spread uint8

const (
	// Pad repeats the edge colours.
	Pad Spread = iota
	// Repeat restarts the gradient every period.
	Repeat
	// Reflect mirrors the gradient every period.
	Reflect
)

var spreadNames = [...]string{"Pad", "Repeat", "Reflect"}

func (s Spread) String() string {
	if int(s) < len(spreadNames) {
		return spreadNames[s]
	}
	return "Spread(?)"
}

// Kind is the gradient geometry.
type Kind uint8

const (
	Linear Kind = iota
	Radial
	Conical
)

// Fixed-point positions carry 8 fraction bits over table indices.
const (
	fixptBits = 8
	fixptSize = 1 << fixptBits
)

// maxIndex bounds float positions before conversion to int so that huge or
// infinite positions still land on a defined table index.
const maxIndex = 1 << 30

// LinearGeometry is the axis from (X1, Y1) at position 0 to (X2, Y2) at
// position 1.
type LinearGeometry struct {
	X1, Y1, X2, Y2 float64
}

// RadialGeometry is a two-point gradient from the focal circle (FX, FY, FR)
// at position 0 to the centre circle (CX, CY, CR) at position 1.
type RadialGeometry struct {
	CX, CY, CR float64
	FX, FY, FR float64
}

// ConicalGeometry sweeps around (CX, CY) starting at Angle radians.
type ConicalGeometry struct {
	CX, CY, Angle float64
}

// Data is a gradient ready for evaluation. It is read only after
// construction.
type Data struct {
	Kind   Kind
	Spread Spread
	Table  *Table

	Linear  LinearGeometry
	Radial  RadialGeometry
	Conical ConicalGeometry

	lin linearValues
	rad radialValues
}

// NewLinear returns a linear gradient over table.
func NewLinear(g LinearGeometry, spread Spread, table *Table) *Data {
	d := &Data{Kind: Linear, Spread: spread, Table: table, Linear: g}
	d.lin = newLinearValues(g)
	return d
}

// NewRadial returns a two-point radial gradient over table.
func NewRadial(g RadialGeometry, spread Spread, table *Table) *Data {
	d := &Data{Kind: Radial, Spread: spread, Table: table, Radial: g}
	d.rad = newRadialValues(g)
	return d
}

// NewConical returns a conical gradient over table. Conical gradients
// always repeat.
func NewConical(g ConicalGeometry, table *Table) *Data {
	return &Data{Kind: Conical, Spread: Repeat, Table: table, Conical: g}
}

// HasAlpha reports whether the gradient can produce non-opaque pixels.
// Extended radial gradients leave pixels outside the cone transparent.
func (d *Data) HasAlpha() bool {
	if d.Table.HasAlpha() {
		return true
	}
	return d.Kind == Radial && (d.rad.extended || fuzzyZero(d.rad.a))
}

// clamp maps a table index through the spread.
func (d *Data) clamp(ipos int) int {
	if ipos >= 0 && ipos < TableSize {
		return ipos
	}
	switch d.Spread {
	case Repeat:
		ipos %= TableSize
		if ipos < 0 {
			ipos += TableSize
		}
	case Reflect:
		const limit = 2 * TableSize
		ipos %= limit
		if ipos < 0 {
			ipos += limit
		}
		if ipos >= TableSize {
			ipos = limit - 1 - ipos
		}
	default:
		if ipos < 0 {
			ipos = 0
		} else {
			ipos = TableSize - 1
		}
	}
	return ipos
}

// Pixel returns the colour at position pos, where 0 and 1 are the ends of
// the gradient.
func (d *Data) Pixel(pos float64) uint32 {
	v := pos*(TableSize-1) + 0.5
	switch {
	case math.IsNaN(v):
		v = 0
	case v > maxIndex:
		v = maxIndex
	case v < -maxIndex:
		v = -maxIndex
	}
	return d.Table.colors[d.clamp(int(v))]
}

// PixelFixed returns the colour at a fixed-point table index with 8
// fraction bits.
func (d *Data) PixelFixed(fixed int) uint32 {
	return d.Table.colors[d.clamp((fixed+fixptSize/2)>>fixptBits)]
}

// toFixed converts a table index to 8-bit fixed point, saturating.
func toFixed(v float64) int {
	v *= fixptSize
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

func fuzzyZero(v float64) bool {
	return math.Abs(v) <= 1e-12
}

// Fetch evaluates length pixels of row y starting at x into buf. m maps
// destination pixel centres into gradient space.
func Fetch(buf []uint32, d *Data, m *geom.Matrix, y, x, length int) []uint32 {
	buf = buf[:length]
	switch d.Kind {
	case Radial:
		fetchRadial(buf, d, m, y, x)
	case Conical:
		fetchConical(buf, d, m, y, x)
	default:
		fetchLinear(buf, d, m, y, x)
	}
	return buf
}

// IsVertical reports whether every row of the gradient is a single colour
// under a transform of type tx.
func (d *Data) IsVertical(tx geom.TxType) bool {
	return tx <= geom.TxScale && d.Kind == Linear && d.Linear.X1 == d.Linear.X2
}

// Vertical returns inc and off such that PixelFixed(inc*y + off) is the
// colour of row y. The result is only meaningful when IsVertical holds.
func (d *Data) Vertical(m *geom.Matrix) (inc, off int) {
	const gss = TableSize - 1
	inc = toFixed(d.lin.dy * m.M22 * gss)
	off = toFixed((d.lin.dy*(m.M22*0.5+m.DY) + d.lin.off) * gss)
	return inc, off
}

func fill(dst []uint32, v uint32) {
	for i := range dst {
		dst[i] = v
	}
}
