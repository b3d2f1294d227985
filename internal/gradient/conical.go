package gradient

import (
	"math"

	"github.com/gogpu/drawhelper/internal/geom"
)

// conicalPos maps the angle of (rx, ry) around the centre to a position,
// decreasing counter-clockwise from the start angle.
func conicalPos(rx, ry, start float64) float64 {
	return 1 - (math.Atan2(ry, rx)+start)/(2*math.Pi)
}

func fetchConical(buf []uint32, d *Data, m *geom.Matrix, y, x int) {
	g := &d.Conical
	cx, cy := float64(x)+0.5, float64(y)+0.5
	rx := m.M21*cy + m.DX + m.M11*cx
	ry := m.M22*cy + m.DY + m.M12*cx

	if m.M13 == 0 && m.M23 == 0 {
		rx -= g.CX
		ry -= g.CY
		for i := range buf {
			buf[i] = d.Pixel(conicalPos(rx, ry, g.Angle))
			rx += m.M11
			ry += m.M12
		}
		return
	}

	rw := m.M23*cy + m.M33 + m.M13*cx
	if rw == 0 {
		rw = 1
	}
	for i := range buf {
		buf[i] = d.Pixel(conicalPos(rx/rw-g.CX, ry/rw-g.CY, g.Angle))
		rx += m.M11
		ry += m.M12
		rw += m.M13
		if rw == 0 {
			rw += m.M13
		}
	}
}
