package drawhelper

import (
	"image"

	"github.com/gogpu/drawhelper/internal/blend"
	"github.com/gogpu/drawhelper/internal/pixel"
)

// FillRect fills the rectangle (x, y, w, h), clipped to the surface, with
// the canonical colour color. Pixels are replaced, not blended.
func (s *Surface) FillRect(x, y, w, h int, color uint32) {
	fillRect(DefaultTables(), s, image.Rect(x, y, x+w, y+h), color)
}

// BitmapBlit sets every pixel whose bit is set in a 1-bit MSB-first
// bitmap of w x h bits to the canonical colour color. The bitmap's top
// left corner lands at (x, y); rows are stride bytes apart.
func (s *Surface) BitmapBlit(x, y int, color uint32, bits []byte, w, h, stride int) {
	bitmapBlit(DefaultTables(), s, x, y, color, bits, w, h, stride)
}

// AlphaMapBlit blends the canonical colour color onto the surface using an
// 8-bit coverage map of w x h bytes placed at (x, y). A non-empty clip
// restricts the affected pixels to the union of its rectangles, which must
// not overlap.
func (s *Surface) AlphaMapBlit(x, y int, color uint32, coverage []byte, w, h, stride int, clip []image.Rectangle) {
	alphaMapBlit(s, x, y, color, coverage, w, h, stride, clip)
}

// rowFiller returns a function storing color over n pixels of row y from
// column x, or nil when the format has no store.
func rowFiller(t *Tables, s *Surface, color uint32) func(x, y, n int) {
	b := s.buf
	f := s.Format()
	switch {
	case f == FormatMono || f == FormatMonoLSB:
		store := t.destStore(f)
		return func(x, y, n int) {
			buf := pixel.GetScratch()
			defer pixel.PutScratch(buf)
			for n > 0 {
				l := min(n, pixel.BufferSize)
				memfill32(buf[:l], color)
				store(b, x, y, buf[:l])
				x += l
				n -= l
			}
		}
	case f == FormatIndexed8 || !f.IsValid():
		return nil
	}

	var one [1]uint32
	raw := pixel.FromARGB32PM(one[:], []uint32{color}, f)[0]
	switch bpp := f.BPP(); bpp {
	case pixel.BPP32:
		return func(x, y, n int) {
			t.memfill32(b.Words32(y)[x:x+n], raw)
		}
	case pixel.BPP16:
		return func(x, y, n int) {
			t.memfill16(b.ScanLine(y), x, n, raw)
		}
	default:
		return func(x, y, n int) {
			row := b.ScanLine(y)
			for i, _n := 0, n; i < _n; i++ {
				pixel.StorePixels(row, one[:], x+i, bpp)
			}
		}
	}
}

func fillRect(t *Tables, s *Surface, r image.Rectangle, color uint32) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	fill := rowFiller(t, s, color)
	if fill == nil {
		Logger().Warn("drawhelper: fill on unsupported format", "format", s.Format())
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		fill(r.Min.X, y, r.Dx())
	}
}

func bitmapBlit(t *Tables, s *Surface, x, y int, color uint32, bits []byte, w, h, stride int) {
	fill := rowFiller(t, s, color)
	if fill == nil {
		Logger().Warn("drawhelper: bitmap blit on unsupported format", "format", s.Format())
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(s.Bounds())
	for ty := r.Min.Y; ty < r.Max.Y; ty++ {
		row := bits[(ty-y)*stride:]
		start := -1
		for tx := r.Min.X; tx < r.Max.X; tx++ {
			if pixel.Bit(row, tx-x, pixel.MSBFirst) != 0 {
				if start < 0 {
					start = tx
				}
				continue
			}
			if start >= 0 {
				fill(start, ty, tx-start)
				start = -1
			}
		}
		if start >= 0 {
			fill(start, ty, r.Max.X-start)
		}
	}
}

// clipRuns returns the column ranges of row y inside both [x0, x1) and the
// clip rectangles. A nil clip selects [x0, x1).
func clipRuns(runs [][2]int, clip []image.Rectangle, y, x0, x1 int) [][2]int {
	runs = runs[:0]
	if len(clip) == 0 {
		if x0 < x1 {
			runs = append(runs, [2]int{x0, x1})
		}
		return runs
	}
	for _, c := range clip {
		if y < c.Min.Y || y >= c.Max.Y {
			continue
		}
		l, r := max(x0, c.Min.X), min(x1, c.Max.X)
		if l < r {
			runs = append(runs, [2]int{l, r})
		}
	}
	return runs
}

func alphaMapBlit(s *Surface, x, y int, color uint32, cov []byte, w, h, stride int, clip []image.Rectangle) {
	f := s.Format()
	fetch, store := pixel.DestFetcher(f), pixel.DestStorer(f)
	if !is32(f) && (fetch == nil || store == nil) {
		Logger().Warn("drawhelper: alpha map blit on unsupported format", "format", f)
		return
	}
	b := s.buf
	r := image.Rect(x, y, x+w, y+h).Intersect(s.Bounds())
	c16 := pixel.RGB32To565(color)
	buf := pixel.GetScratch()
	defer pixel.PutScratch(buf)

	var runs [][2]int
	for ty := r.Min.Y; ty < r.Max.Y; ty++ {
		mask := cov[(ty-y)*stride:]
		runs = clipRuns(runs, clip, ty, r.Min.X, r.Max.X)
		for _, run := range runs {
			switch {
			case is32(f):
				row := b.Words32(ty)
				for tx := run[0]; tx < run[1]; tx++ {
					if a := uint32(mask[tx-x]); a != 0 {
						row[tx] = blend.Interpolate255(color, a, row[tx], 255-a)
					}
				}
			case f == FormatRGB16:
				row := b.ScanLine(ty)
				for tx := run[0]; tx < run[1]; tx++ {
					a := uint32(mask[tx-x])
					switch a {
					case 0:
					case 255:
						pixel.Store16(row, tx, c16)
					default:
						pixel.Store16(row, tx, interpolate565(c16, a, pixel.Load16(row, tx), 255-a))
					}
				}
			default:
				for x0 := run[0]; x0 < run[1]; x0 += pixel.BufferSize {
					n := min(run[1]-x0, pixel.BufferSize)
					dest := fetch(buf, b, x0, ty, n)
					for i := range dest {
						a := uint32(mask[x0+i-x])
						dest[i] = blend.Interpolate255(color, a, dest[i], 255-a)
					}
					store(b, x0, ty, dest)
				}
			}
		}
	}
}

// interpolate565 returns round((c*a + d*b) / 255) per 565 channel.
func interpolate565(c, a, d, b uint32) uint32 {
	ch := func(shift, mask uint32) uint32 {
		v := (c>>shift&mask)*a + (d>>shift&mask)*b
		return (v + 127) / 255 << shift
	}
	return ch(11, 0x1f) | ch(5, 0x3f) | ch(0, 0x1f)
}
