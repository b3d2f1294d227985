package gradient

import (
	"math"

	"github.com/gogpu/drawhelper/internal/geom"
)

// radialValues holds the quadratic a*s^2 + b*s + c = 0 terms that do not
// depend on the pixel. s is the gradient position of the circle through
// the pixel.
type radialValues struct {
	dx, dy, dr float64
	sqrfr      float64
	a, inv2a   float64
	extended   bool
}

func newRadialValues(g RadialGeometry) radialValues {
	v := radialValues{
		dx:    g.CX - g.FX,
		dy:    g.CY - g.FY,
		dr:    g.CR - g.FR,
		sqrfr: g.FR * g.FR,
	}
	v.a = v.dr*v.dr - v.dx*v.dx - v.dy*v.dy
	v.inv2a = 1 / (2 * v.a)
	v.extended = !fuzzyZero(g.FR) || v.a <= 0
	return v
}

func fetchRadial(buf []uint32, d *Data, m *geom.Matrix, y, x int) {
	rv := &d.rad
	if fuzzyZero(rv.a) {
		fill(buf, 0)
		return
	}

	g := &d.Radial
	cx, cy := float64(x)+0.5, float64(y)+0.5
	rx := m.M21*cy + m.DX + m.M11*cx
	ry := m.M22*cy + m.DY + m.M12*cx

	if m.M13 != 0 || m.M23 != 0 {
		radialProjective(buf, d, m, rx, ry, m.M23*cy+m.M33+m.M13*cx)
		return
	}

	rx -= g.FX
	ry -= g.FY

	// The determinant is quadratic in the pixel index and b is linear, so
	// both step by forward differences.
	invA := 1 / (2 * rv.a)
	drx, dry := m.M11, m.M12

	b := 2 * (rv.dr*g.FR + rx*rv.dx + ry*rv.dy)
	db := 2 * (drx*rv.dx + dry*rv.dy)
	bdb := 2 * b * db
	dbdb := 2 * db * db
	bb := b * b
	dbb := db * db

	b *= invA
	db *= invA

	rr := rx*rx + ry*ry
	drr := drx*drx + dry*dry
	rdr := 2 * (rx*drx + ry*dry)
	ddr := 2 * drr

	invA *= invA

	det := (bb - 4*rv.a*(rv.sqrfr-rr)) * invA
	ddet := (bdb + dbb + 4*rv.a*(rdr+drr)) * invA
	dddet := (dbdb + 4*rv.a*ddr) * invA

	if !rv.extended {
		for i := range buf {
			buf[i] = d.Pixel(math.Sqrt(max(det, 0)) - b)
			det += ddet
			ddet += dddet
			b += db
		}
		return
	}

	for i := range buf {
		var c uint32
		if det >= 0 {
			w := math.Sqrt(det) - b
			if g.FR+rv.dr*w >= 0 {
				c = d.Pixel(w)
			}
		}
		buf[i] = c
		det += ddet
		ddet += dddet
		b += db
	}
}

// radialProjective solves the quadratic per pixel after the perspective
// divide, taking the larger root.
func radialProjective(buf []uint32, d *Data, m *geom.Matrix, rx, ry, rw float64) {
	rv := &d.rad
	g := &d.Radial
	for i := range buf {
		var c uint32
		if rw != 0 {
			gx := rx/rw - g.FX
			gy := ry/rw - g.FY
			b := 2 * (rv.dr*g.FR + gx*rv.dx + gy*rv.dy)
			det := b*b - 4*rv.a*(rv.sqrfr-(gx*gx+gy*gy))
			if det >= 0 {
				sq := math.Sqrt(det)
				s := max((-b-sq)*rv.inv2a, (-b+sq)*rv.inv2a)
				if g.FR+rv.dr*s >= 0 {
					c = d.Pixel(s)
				}
			}
		}
		buf[i] = c
		rx += m.M11
		ry += m.M12
		rw += m.M13
	}
}
