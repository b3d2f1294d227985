package texture

import (
	"github.com/gogpu/drawhelper/internal/geom"
	"github.com/gogpu/drawhelper/internal/pixel"
)

// Fixed-point stepping uses 16.16 coordinates.
const (
	fixedScale = 1 << 16
	halfPoint  = 1 << 15
)

// sampler walks the texture coordinates of a destination run. Affine
// matrices within FastMatrix bounds step in 16.16 fixed point; everything
// else steps in floating point and divides by w per pixel.
type sampler struct {
	fast     bool
	fx, fy   int
	fdx, fdy int

	x, y, w    float64
	dx, dy, dw float64
}

// newSampler positions a sampler at the center of destination pixel
// (x, y).
func newSampler(m *geom.Matrix, y, x int) sampler {
	cx := float64(x) + 0.5
	cy := float64(y) + 0.5
	if m.FastMatrix() {
		return sampler{
			fast: true,
			fdx:  int(m.M11 * fixedScale),
			fdy:  int(m.M12 * fixedScale),
			fx:   int((m.M21*cy + m.M11*cx + m.DX) * fixedScale),
			fy:   int((m.M22*cy + m.M12*cx + m.DY) * fixedScale),
		}
	}
	return sampler{
		dx: m.M11,
		dy: m.M12,
		dw: m.M13,
		x:  m.M21*cy + m.M11*cx + m.DX,
		y:  m.M22*cy + m.M12*cx + m.DY,
		w:  m.M23*cy + m.M13*cx + m.M33,
	}
}

// point returns the projected texture coordinate of the current pixel.
func (s *sampler) point() (float64, float64) {
	iw := 1.0
	if s.w != 0 {
		iw = 1 / s.w
	}
	return s.x * iw, s.y * iw
}

// pixel returns the texel containing the current coordinate.
func (s *sampler) pixel() (int, int) {
	if s.fast {
		return s.fx >> 16, s.fy >> 16
	}
	tx, ty := s.point()
	return floor(tx), floor(ty)
}

func (s *sampler) next() {
	if s.fast {
		s.fx += s.fdx
		s.fy += s.fdy
		return
	}
	s.x += s.dx
	s.y += s.dy
	s.w += s.dw
	// Step over the vanishing line instead of dividing by zero.
	if s.w == 0 {
		s.w += s.dw
	}
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// texel maps (px, py) into the image, clamping or wrapping.
func texel(px, py, w, h int, tiled bool) (int, int) {
	if tiled {
		return wrap(px, w), wrap(py, h)
	}
	return clampInt(px, 0, w-1), clampInt(py, 0, h-1)
}

func fetchNearest(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int, tiled bool) []uint32 {
	w, h := tex.Width(), tex.Height()
	bpp := tex.Image.Format().BPP()
	s := newSampler(m, y, x)
	out := buf[:length]
	for i := range out {
		px, py := s.pixel()
		px, py = texel(px, py, w, h, tiled)
		out[i] = pixel.FetchPixel(tex.scanLine(py), px, bpp)
		s.next()
	}
	return tex.toCanonical(out)
}

func fetchNearestARGB32PM(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int, tiled bool) []uint32 {
	w, h := tex.Width(), tex.Height()
	s := newSampler(m, y, x)
	out := buf[:length]
	for i := range out {
		px, py := s.pixel()
		px, py = texel(px, py, w, h, tiled)
		out[i] = tex.Image.Words32(py)[px]
		s.next()
	}
	return out
}

func fetchTransformed(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int) []uint32 {
	return fetchNearest(buf, tex, m, y, x, length, false)
}

func fetchTransformedTiled(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int) []uint32 {
	return fetchNearest(buf, tex, m, y, x, length, true)
}

func fetchTransformedARGB32PM(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int) []uint32 {
	return fetchNearestARGB32PM(buf, tex, m, y, x, length, false)
}

func fetchTransformedTiledARGB32PM(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int) []uint32 {
	return fetchNearestARGB32PM(buf, tex, m, y, x, length, true)
}
