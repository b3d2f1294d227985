package texture

import (
	"math"

	"github.com/gogpu/drawhelper/internal/geom"
	"github.com/gogpu/drawhelper/internal/pixel"
)

// bounds returns the two texels straddling v on an axis of n texels.
// Tiled axes wrap. Otherwise v is clamped to [l1, l2] and both taps
// collapse onto the edge texel outside that range.
func bounds(v, n, l1, l2 int, tiled bool) (int, int) {
	if tiled {
		v = wrap(v, n)
		v2 := v + 1
		if v2 == n {
			v2 = 0
		}
		return v, v2
	}
	switch {
	case v < l1:
		return l1, l1
	case v >= l2:
		return l2, l2
	default:
		return v, v + 1
	}
}

func fetchBilinear(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int) []uint32 {
	return bilinear(buf[:length], tex, m, y, x, false)
}

func fetchBilinearTiled(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int) []uint32 {
	return bilinear(buf[:length], tex, m, y, x, true)
}

func bilinear(out []uint32, tex *Data, m *geom.Matrix, y, x int, tiled bool) []uint32 {
	if len(out) == 0 {
		return out
	}
	s := newSampler(m, y, x)
	if !s.fast {
		bilinearProjective(out, tex, &s, tiled)
		return out
	}

	// Sample positions are texel centers.
	s.fx -= halfPoint
	s.fy -= halfPoint

	switch {
	case s.fdy == 0 && s.fdx > 0 && s.fdx <= fixedScale:
		bilinearUpscaleX(out, tex, m, &s, tiled)
	case s.fdy == 0:
		// Strong magnification needs 8-bit weights to avoid banding.
		precise := (s.fdx < 0 && s.fdx > -fixedScale/8) || math.Abs(m.M22) < 1.0/8
		bilinearTaps(out, tex, &s, tiled, precise)
	default:
		precise := math.Abs(m.M11) > 8 || math.Abs(m.M22) > 8
		bilinearTaps(out, tex, &s, tiled, precise)
	}
	return out
}

// bilinearUpscaleX handles pure horizontal upscaling. The two source rows
// are blended vertically once per texel into an intermediate row, which is
// then interpolated horizontally for every destination pixel.
func bilinearUpscaleX(out []uint32, tex *Data, m *geom.Matrix, s *sampler, tiled bool) {
	w := tex.Width()
	f := tex.Image.Format()
	bpp := f.BPP()
	clut := tex.Image.ColorTable()

	y1, y2 := bounds(s.fy>>16, tex.Height(), tex.Y1, tex.Y2-1, tiled)
	disty := uint32(s.fy&0xffff) >> 8
	idisty := 256 - disty

	x0 := s.fx >> 16
	count := int(math.Ceil(float64(len(out))*m.M11)) + 2

	// The intermediate row holds n texels starting at column lo.
	var lo, n int
	if tiled {
		lo = wrap(x0, w)
		n = min(count, w)
	} else {
		lo = clampInt(x0, tex.X1, tex.X2-1)
		n = clampInt(x0+count-1, tex.X1, tex.X2-1) - lo + 1
	}
	index := func(c int) int {
		if tiled {
			return c % w
		}
		return clampInt(x0+c, lo, lo+n-1) - lo
	}

	size := max(n, pixel.BufferSize+4)
	rb := pixel.GetFromDefault(size)
	ag := pixel.GetFromDefault(size)
	defer pixel.PutToDefault(rb)
	defer pixel.PutToDefault(ag)

	fetchRow := func(dst []uint32, y int) {
		row := tex.scanLine(y)
		k := min(n, w-lo)
		pixel.ToARGB32PM(dst, pixel.FetchPixels(dst, row, lo, k, bpp), f, clut)
		if k < n {
			pixel.ToARGB32PM(dst[k:], pixel.FetchPixels(dst[k:], row, 0, n-k, bpp), f, clut)
		}
	}
	fetchRow(rb, y1)
	fetchRow(ag, y2)
	for j, _n := 0, n; j < _n; j++ {
		t, b := rb[j], ag[j]
		rb[j] = ((t&0xff00ff)*idisty + (b&0xff00ff)*disty) >> 8 & 0xff00ff
		ag[j] = ((t>>8&0xff00ff)*idisty + (b>>8&0xff00ff)*disty) >> 8 & 0xff00ff
	}

	fx := s.fx & (fixedScale - 1)
	for i := range out {
		c := fx >> 16
		j1, j2 := index(c), index(c+1)
		distx := uint32(fx&0xffff) >> 8
		idistx := 256 - distx
		r := (rb[j1]*idistx + rb[j2]*distx) >> 8 & 0xff00ff
		a := (ag[j1]*idistx + ag[j2]*distx) & 0xff00ff00
		out[i] = r | a
		fx += s.fdx
	}
}

// bilinearTaps fetches the four taps of every pixel in chunks, converts
// them, and interpolates with 8-bit (precise) or 4-bit weights.
func bilinearTaps(out []uint32, tex *Data, s *sampler, tiled, precise bool) {
	w, h := tex.Width(), tex.Height()
	bpp := tex.Image.Format().BPP()
	top := pixel.GetScratch()
	bottom := pixel.GetScratch()
	defer pixel.PutScratch(top)
	defer pixel.PutScratch(bottom)

	for len(out) > 0 {
		n := min(len(out), pixel.BufferSize/2)
		fracX, fracY := s.fx, s.fy
		for i, _n := 0, n; i < _n; i++ {
			x1, x2 := bounds(s.fx>>16, w, tex.X1, tex.X2-1, tiled)
			y1, y2 := bounds(s.fy>>16, h, tex.Y1, tex.Y2-1, tiled)
			r1, r2 := tex.scanLine(y1), tex.scanLine(y2)
			top[2*i] = pixel.FetchPixel(r1, x1, bpp)
			top[2*i+1] = pixel.FetchPixel(r1, x2, bpp)
			bottom[2*i] = pixel.FetchPixel(r2, x1, bpp)
			bottom[2*i+1] = pixel.FetchPixel(r2, x2, bpp)
			s.next()
		}
		tex.toCanonical(top[:2*n])
		tex.toCanonical(bottom[:2*n])

		for i, _n := 0, n; i < _n; i++ {
			tl, tr := top[2*i], top[2*i+1]
			bl, br := bottom[2*i], bottom[2*i+1]
			if precise {
				distx := uint32(fracX&0xffff) >> 8
				disty := uint32(fracY&0xffff) >> 8
				out[i] = Interpolate4Pixels(tl, tr, bl, br, distx, disty)
			} else {
				distx := uint32(fracX&0xffff) >> 12
				disty := uint32(fracY&0xffff) >> 12
				out[i] = Interpolate4Pixels16(tl, tr, bl, br, distx, disty)
			}
			fracX += s.fdx
			fracY += s.fdy
		}
		out = out[n:]
	}
}

// bilinearProjective samples through a perspective or out-of-range
// transform in floating point.
func bilinearProjective(out []uint32, tex *Data, s *sampler, tiled bool) {
	w, h := tex.Width(), tex.Height()
	bpp := tex.Image.Format().BPP()
	top := pixel.GetScratch()
	bottom := pixel.GetScratch()
	defer pixel.PutScratch(top)
	defer pixel.PutScratch(bottom)

	var distxs, distys [pixel.BufferSize / 2]uint32
	for len(out) > 0 {
		n := min(len(out), pixel.BufferSize/2)
		for i, _n := 0, n; i < _n; i++ {
			px, py := s.point()
			px -= 0.5
			py -= 0.5
			x1, y1 := floor(px), floor(py)
			distxs[i] = uint32((px - float64(x1)) * 256)
			distys[i] = uint32((py - float64(y1)) * 256)

			x1, x2 := bounds(x1, w, tex.X1, tex.X2-1, tiled)
			y1, y2 := bounds(y1, h, tex.Y1, tex.Y2-1, tiled)
			r1, r2 := tex.scanLine(y1), tex.scanLine(y2)
			top[2*i] = pixel.FetchPixel(r1, x1, bpp)
			top[2*i+1] = pixel.FetchPixel(r1, x2, bpp)
			bottom[2*i] = pixel.FetchPixel(r2, x1, bpp)
			bottom[2*i+1] = pixel.FetchPixel(r2, x2, bpp)
			s.next()
		}
		tex.toCanonical(top[:2*n])
		tex.toCanonical(bottom[:2*n])

		for i, _n := 0, n; i < _n; i++ {
			out[i] = Interpolate4Pixels(top[2*i], top[2*i+1], bottom[2*i], bottom[2*i+1], distxs[i], distys[i])
		}
		out = out[n:]
	}
}
