package texture

import (
	"github.com/gogpu/drawhelper/internal/geom"
	"github.com/gogpu/drawhelper/internal/pixel"
)

func fetchUntransformed(buf []uint32, tex *Data, _ *geom.Matrix, y, x, length int) []uint32 {
	raw := pixel.FetchPixels(buf, tex.scanLine(y), x, length, tex.Image.Format().BPP())
	return pixel.ToARGB32PM(buf, raw, tex.Image.Format(), tex.Image.ColorTable())
}

func fetchUntransformedARGB32PM(_ []uint32, tex *Data, _ *geom.Matrix, y, x, length int) []uint32 {
	return tex.Image.Words32(y)[x : x+length]
}

func fetchUntransformedRGB16(buf []uint32, tex *Data, _ *geom.Matrix, y, x, length int) []uint32 {
	row := tex.scanLine(y)
	for i, _n := 0, length; i < _n; i++ {
		buf[i] = pixel.RGB565To32(pixel.Load16(row, x+i))
	}
	return buf[:length]
}

// wrap returns v modulo n in [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// fetchTiled reads row y mod height from column x mod width, wrapping to
// column 0 whenever the run crosses the right edge.
func fetchTiled(buf []uint32, tex *Data, m *geom.Matrix, y, x, length int) []uint32 {
	w := tex.Width()
	y = wrap(y, tex.Height())
	x = wrap(x, w)
	untransformed := fetchers[Untransformed][tex.Image.Format()]

	out := buf[:length]
	for i := 0; i < length; {
		n := min(length-i, w-x)
		seg := untransformed(out[i:], tex, m, y, x, n)
		if &seg[0] != &out[i] {
			copy(out[i:], seg)
		}
		i += n
		x = 0
	}
	return out
}
