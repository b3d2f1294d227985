package drawhelper

import (
	"image"
	"math"

	"github.com/gogpu/drawhelper/internal/blend"
	"github.com/gogpu/drawhelper/internal/cache"
	"github.com/gogpu/drawhelper/internal/pixel"
)

// AlphaRGBBlit blends the canonical colour color onto the surface using a
// per-channel coverage mask, as produced by subpixel (LCD) text
// rasterization. Each mask word holds red, green and blue coverage in
// 0x00RRGGBB order; its top byte is ignored. The mask's top left corner
// lands at (x, y) and its rows are stride words apart. Channels blend
// linearly; see AlphaRGBBlitGamma.
func (s *Surface) AlphaRGBBlit(x, y int, color uint32, mask []uint32, w, h, stride int, clip []image.Rectangle) {
	alphaRGBBlit(s, x, y, color, mask, w, h, stride, clip, gammaTableFor(1))
}

// AlphaRGBBlitGamma is AlphaRGBBlit with the per-channel blend on opaque
// pixels performed on channel values raised to gamma. A gamma that is not
// positive and finite blends linearly.
func (s *Surface) AlphaRGBBlitGamma(x, y int, color uint32, mask []uint32, w, h, stride int, clip []image.Rectangle, gamma float64) {
	alphaRGBBlit(s, x, y, color, mask, w, h, stride, clip, gammaTableFor(gamma))
}

// gammaTable maps 8-bit channels into and out of gamma space.
type gammaTable struct {
	fwd, inv [256]uint8
}

var gammaTables = cache.New[float64, *gammaTable](8)

func gammaTableFor(gamma float64) *gammaTable {
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		gamma = 1
	}
	return gammaTables.GetOrCreate(gamma, func() *gammaTable {
		g := new(gammaTable)
		for i, _n := 0, 256; i < _n; i++ {
			v := float64(i) / 255
			g.fwd[i] = uint8(math.Round(math.Pow(v, gamma) * 255))
			g.inv[i] = uint8(math.Round(math.Pow(v, 1/gamma) * 255))
		}
		return g
	})
}

// lerp moves the gamma-space destination channel d toward s by m/255 and
// returns the result in linear space.
func (g *gammaTable) lerp(s, d, m uint32) uint32 {
	dg := int(g.fwd[d])
	diff := (int(s) - dg) * int(m)
	if diff < 0 {
		dg -= blend.Div255(-diff)
	} else {
		dg += blend.Div255(diff)
	}
	return uint32(g.inv[dg])
}

// rgbBlender composes one colour through per-channel coverage.
type rgbBlender struct {
	g          *gammaTable
	color      uint32
	sa         uint32
	sr, sg, sb uint32
}

func newRGBBlender(color uint32, g *gammaTable) rgbBlender {
	straight := pixel.Unpremultiply(color)
	return rgbBlender{
		g:     g,
		color: color,
		sa:    color >> 24,
		sr:    uint32(g.fwd[straight>>16&0xff]),
		sg:    uint32(g.fwd[straight>>8&0xff]),
		sb:    uint32(g.fwd[straight&0xff]),
	}
}

// blend returns d with coverage cov applied. Translucent destinations fall
// back to a gray coverage interpolation.
func (b *rgbBlender) blend(d, cov uint32) uint32 {
	cov &= 0xffffff
	switch {
	case cov == 0:
		return d
	case cov == 0xffffff && b.sa == 0xff:
		return b.color
	case d>>24 != 0xff:
		a := pixel.Gray(cov)
		return blend.Interpolate255(b.color, a, d, 255-a)
	}
	mr, mg, mb := cov>>16, cov>>8&0xff, cov&0xff
	if b.sa != 0xff {
		mr = uint32(blend.Div255(int(mr * b.sa)))
		mg = uint32(blend.Div255(int(mg * b.sa)))
		mb = uint32(blend.Div255(int(mb * b.sa)))
	}
	return 0xff000000 |
		b.g.lerp(b.sr, d>>16&0xff, mr)<<16 |
		b.g.lerp(b.sg, d>>8&0xff, mg)<<8 |
		b.g.lerp(b.sb, d&0xff, mb)
}

func alphaRGBBlit(s *Surface, x, y int, color uint32, mask []uint32, w, h, stride int, clip []image.Rectangle, g *gammaTable) {
	if color>>24 == 0 {
		return
	}
	f := s.Format()
	fetch, store := pixel.DestFetcher(f), pixel.DestStorer(f)
	if !is32(f) && (fetch == nil || store == nil) {
		Logger().Warn("drawhelper: alpha rgb blit on unsupported format", "format", f)
		return
	}
	bl := newRGBBlender(color, g)
	b := s.buf
	r := image.Rect(x, y, x+w, y+h).Intersect(s.Bounds())
	buf := pixel.GetScratch()
	defer pixel.PutScratch(buf)

	var runs [][2]int
	for ty := r.Min.Y; ty < r.Max.Y; ty++ {
		m := mask[(ty-y)*stride:]
		runs = clipRuns(runs, clip, ty, r.Min.X, r.Max.X)
		for _, run := range runs {
			if is32(f) {
				row := b.Words32(ty)
				for tx := run[0]; tx < run[1]; tx++ {
					row[tx] = bl.blend(row[tx], m[tx-x])
				}
				continue
			}
			for x0 := run[0]; x0 < run[1]; x0 += pixel.BufferSize {
				n := min(run[1]-x0, pixel.BufferSize)
				dest := fetch(buf, b, x0, ty, n)
				for i := range dest {
					dest[i] = bl.blend(dest[i], m[x0+i-x])
				}
				store(b, x0, ty, dest)
			}
		}
	}
}
