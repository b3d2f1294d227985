package gradient

import (
	"math"

	"github.com/gogpu/drawhelper/internal/geom"
)

// linearValues projects a point onto the axis: t = dx*x + dy*y + off.
type linearValues struct {
	dx, dy, l, off float64
}

func newLinearValues(g LinearGeometry) linearValues {
	v := linearValues{dx: g.X2 - g.X1, dy: g.Y2 - g.Y1}
	v.l = v.dx*v.dx + v.dy*v.dy
	if v.l != 0 {
		v.dx /= v.l
		v.dy /= v.l
		v.off = -v.dx*g.X1 - v.dy*g.Y1
	}
	return v
}

// Positions within this range, scaled to table indices, fit 8-bit fixed
// point in 32 bits with a guard bit.
const (
	fixedMax = float64(math.MaxInt32 >> (fixptBits + 1))
	fixedMin = float64(math.MinInt32 >> (fixptBits + 1))
)

func fetchLinear(buf []uint32, d *Data, m *geom.Matrix, y, x int) {
	lv := &d.lin
	var t, inc, rx, ry float64
	affine := true
	if lv.l != 0 {
		cx, cy := float64(x)+0.5, float64(y)+0.5
		rx = m.M21*cy + m.M11*cx + m.DX
		ry = m.M22*cy + m.M12*cx + m.DY
		t = lv.dx*rx + lv.dy*ry + lv.off
		inc = lv.dx*m.M11 + lv.dy*m.M12
		affine = m.M13 == 0 && m.M23 == 0
		if affine {
			t *= TableSize - 1
			inc *= TableSize - 1
		}
	}

	if !affine {
		rw := m.M23*(float64(y)+0.5) + m.M13*(float64(x)+0.5) + m.M33
		if rw == 0 {
			rw = 1
		}
		for i := range buf {
			t = lv.dx*(rx/rw) + lv.dy*(ry/rw) + lv.off
			buf[i] = d.Pixel(t)
			rx += m.M11
			ry += m.M12
			rw += m.M13
			if rw == 0 {
				rw += m.M13
			}
		}
		return
	}

	if inc > -1e-5 && inc < 1e-5 {
		fill(buf, d.PixelFixed(toFixed(t)))
		return
	}

	if end := t + inc*float64(len(buf)); end < fixedMax && end > fixedMin {
		tf, incf := toFixed(t), toFixed(inc)
		for i := range buf {
			buf[i] = d.PixelFixed(tf)
			tf += incf
		}
		return
	}

	for i := range buf {
		buf[i] = d.Pixel(t / (TableSize - 1))
		t += inc
	}
}
