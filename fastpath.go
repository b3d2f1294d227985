package drawhelper

import (
	"github.com/gogpu/drawhelper/internal/blend"
	"github.com/gogpu/drawhelper/internal/pixel"
)

// Fast paths. Each produces exactly the pixels of the generic loop.

func is32(f Format) bool {
	return f == FormatARGB32Premultiplied || f == FormatRGB32
}

func (sd *SpanData) blendColor(spans []Span) {
	switch f := sd.target.Format(); {
	case is32(f):
		sd.blendColor32(spans, sd.src.color)
	case f == FormatRGB16:
		sd.blendColorRGB16(spans, sd.src.color)
	default:
		sd.blendColorGeneric(spans, sd.src.color)
	}
}

// blendColor32 composes directly on 32-bit rows.
func (sd *SpanData) blendColor32(spans []Span, color uint32) {
	op := sd.operator(spans)
	b := sd.target.buf
	for _, s := range spans {
		if s.Len <= 0 {
			continue
		}
		cov := sd.coverage(s.Coverage)
		row := b.Words32(s.Y)[s.X : s.X+s.Len]
		if op.mode == Source && cov == 255 {
			sd.tables.memfill32(row, color)
			continue
		}
		op.solid(row, color, cov)
	}
}

// blendColorRGB16 handles Source and SourceOver on 565 rows and defers
// every other mode to the generic loop.
func (sd *SpanData) blendColorRGB16(spans []Span, color uint32) {
	op := sd.operator(spans)
	if op.mode != Source && op.mode != SourceOver {
		sd.blendColorGeneric(spans, color)
		return
	}
	b := sd.target.buf
	c16 := pixel.RGB32To565(color)
	for _, s := range spans {
		if s.Len <= 0 {
			continue
		}
		cov := sd.coverage(s.Coverage)
		row := b.ScanLine(s.Y)
		if op.mode == Source {
			if cov == 255 {
				sd.tables.memfill16(row, s.X, s.Len, c16)
				continue
			}
			c := blend.ByteMul(color, cov)
			ia := 255 - cov
			for i := s.X; i < s.X+s.Len; i++ {
				d := pixel.RGB565To32(pixel.Load16(row, i))
				pixel.Store16(row, i, pixel.RGB32To565(c+blend.ByteMul(d, ia)))
			}
			continue
		}
		c := color
		if cov != 255 {
			c = blend.ByteMul(color, cov)
		}
		if c>>24 == 255 {
			sd.tables.memfill16(row, s.X, s.Len, pixel.RGB32To565(c))
			continue
		}
		ia := 255 - c>>24
		for i := s.X; i < s.X+s.Len; i++ {
			d := pixel.RGB565To32(pixel.Load16(row, i))
			pixel.Store16(row, i, pixel.RGB32To565(c+blend.ByteMul(d, ia)))
		}
	}
}

// blendGradient paints vertical linear gradients one colour per row.
func (sd *SpanData) blendGradient(spans []Span) {
	g := sd.src.gradient
	f := sd.target.Format()
	if !g.IsVertical(sd.tx) || !is32(f) && f != FormatRGB16 {
		sd.blendSrcGeneric(spans)
		return
	}
	inc, off := g.Vertical(&sd.inv)
	for len(spans) > 0 {
		y := spans[0].Y
		n := 1
		for n < len(spans) && spans[n].Y == y {
			n++
		}
		color := g.PixelFixed(inc*y + off)
		if f == FormatRGB16 {
			sd.blendColorRGB16(spans[:n], color)
		} else {
			sd.blendColor32(spans[:n], color)
		}
		spans = spans[n:]
	}
}

// texFast32 reports whether texture rows can be composed directly onto
// 32-bit target rows.
func (sd *SpanData) texFast32() bool {
	return sd.src.texture.Image.Format() == FormatARGB32Premultiplied && is32(sd.target.Format())
}

// texCopy16 reports whether full coverage spans can copy raw 565 texels.
func (sd *SpanData) texCopy16(op *operator) bool {
	return sd.src.texture.Image.Format() == FormatRGB16 && sd.target.Format() == FormatRGB16 &&
		op.mode == Source
}

func (sd *SpanData) blendUntransformed(spans []Span) {
	op := sd.operator(spans)
	tex := sd.src.texture
	w, h := tex.Width(), tex.Height()
	xoff := -qRound(-sd.inv.DX)
	yoff := -qRound(-sd.inv.DY)
	fast32 := sd.texFast32()
	copy16 := sd.texCopy16(&op)
	b := sd.target.buf

	srcBuf := pixel.GetScratch()
	defer pixel.PutScratch(srcBuf)
	dstBuf := pixel.GetScratch()
	defer pixel.PutScratch(dstBuf)

	for _, s := range spans {
		x, n := s.X, s.Len
		sx, sy := xoff+x, yoff+s.Y
		if sy < 0 || sy >= h || n <= 0 {
			continue
		}
		if sx < 0 {
			x -= sx
			n += sx
			sx = 0
		}
		if sx+n > w {
			n = w - sx
		}
		if n <= 0 {
			continue
		}
		cov := sd.coverage(s.Coverage)
		switch {
		case fast32:
			op.array(b.Words32(s.Y)[x:x+n], tex.Image.Words32(sy)[sx:sx+n], cov)
		case copy16 && cov == 255:
			copy(b.ScanLine(s.Y)[2*x:2*(x+n)], tex.Image.ScanLine(sy)[2*sx:2*(sx+n)])
		default:
			sd.blendTexelsGeneric(&op, x, s.Y, sx, sy, n, cov, srcBuf, dstBuf)
		}
	}
}

func (sd *SpanData) blendTiled(spans []Span) {
	op := sd.operator(spans)
	tex := sd.src.texture
	w, h := tex.Width(), tex.Height()
	xoff := wrapInt(-qRound(-sd.inv.DX), w)
	yoff := wrapInt(-qRound(-sd.inv.DY), h)
	fast32 := sd.texFast32()
	copy16 := sd.texCopy16(&op)
	b := sd.target.buf

	srcBuf := pixel.GetScratch()
	defer pixel.PutScratch(srcBuf)
	dstBuf := pixel.GetScratch()
	defer pixel.PutScratch(dstBuf)

	for _, s := range spans {
		if s.Len <= 0 {
			continue
		}
		sx := wrapInt(xoff+s.X, w)
		sy := wrapInt(yoff+s.Y, h)
		cov := sd.coverage(s.Coverage)
		switch {
		case fast32:
			dst := b.Words32(s.Y)[s.X : s.X+s.Len]
			src := tex.Image.Words32(sy)
			for len(dst) > 0 {
				l := min(w-sx, len(dst))
				op.array(dst[:l], src[sx:sx+l], cov)
				dst = dst[l:]
				sx = 0
			}
		case copy16 && cov == 255:
			tileCopy16(b.ScanLine(s.Y)[2*s.X:2*(s.X+s.Len)], tex.Image.ScanLine(sy)[:2*w], 2*sx)
		default:
			sd.blendTexelsGeneric(&op, s.X, s.Y, sx, sy, s.Len, cov, srcBuf, dstBuf)
		}
	}
}

// tileCopy16 fills dst with texel bytes starting at byte offset off of the
// row, wrapping at its end. Once a whole period is written the rest is
// doubled from dst itself.
func tileCopy16(dst, row []byte, off int) {
	n := copy(dst, row[off:])
	if n < len(dst) {
		n += copy(dst[n:], row[:off])
	}
	for n < len(dst) {
		n += copy(dst[n:], dst[:n])
	}
}

// wrapInt returns v modulo n in [0, n).
func wrapInt(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
