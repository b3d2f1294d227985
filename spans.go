package drawhelper

import (
	"github.com/gogpu/drawhelper/internal/pixel"
	"github.com/gogpu/drawhelper/internal/texture"
)

// Blend composes the paint onto the target over spans. Spans outside the
// target must have been clipped by the caller.
func (sd *SpanData) Blend(spans []Span) {
	if len(spans) == 0 {
		return
	}
	switch sd.src.kind {
	case sourceSolid:
		sd.blendColor(spans)
	case sourceGradient:
		sd.blendGradient(spans)
	case sourceTexture:
		switch sd.blendType {
		case texture.Untransformed:
			sd.blendUntransformed(spans)
		case texture.Tiled:
			sd.blendTiled(spans)
		default:
			sd.blendSrcGeneric(spans)
		}
	}
}

// blendColorGeneric composes a solid colour onto any target through the
// canonical staging buffer.
func (sd *SpanData) blendColorGeneric(spans []Span, color uint32) {
	op := sd.operator(spans)
	buf := pixel.GetScratch()
	defer pixel.PutScratch(buf)
	b := sd.target.buf
	for _, s := range spans {
		cov := sd.coverage(s.Coverage)
		for x, n := s.X, s.Len; n > 0; {
			l := min(n, pixel.BufferSize)
			dest := op.fetchDest(buf, b, x, s.Y, l)
			op.solid(dest, color, cov)
			op.storeDest(b, x, s.Y, dest)
			x += l
			n -= l
		}
	}
}

// blendSrcGeneric drives fetch, compose and store over runs of adjacent
// spans. Source and destination are staged once per chunk of at most
// BufferSize pixels; each span in the chunk is composed with its own
// coverage.
func (sd *SpanData) blendSrcGeneric(spans []Span) {
	op := sd.operator(spans)
	srcBuf := pixel.GetScratch()
	defer pixel.PutScratch(srcBuf)
	dstBuf := pixel.GetScratch()
	defer pixel.PutScratch(dstBuf)
	b := sd.target.buf

	for len(spans) > 0 {
		x, y := spans[0].X, spans[0].Y
		right := x + spans[0].Len
		for i := 1; i < len(spans) && spans[i].Y == y && spans[i].X == right; i++ {
			right += spans[i].Len
		}
		length := right - x
		if length <= 0 {
			spans = spans[1:]
			continue
		}

		var cov uint32
		for length > 0 {
			l := min(length, pixel.BufferSize)
			length -= l
			px := x
			dest := op.fetchDest(dstBuf, b, px, y, l)
			src := sd.fetch(srcBuf, y, px, l)
			off := 0
			for l > 0 {
				s := spans[0]
				if x == s.X {
					cov = sd.coverage(s.Coverage)
				}
				n := min(l, s.X+s.Len-x)
				op.array(dest[off:off+n], src[off:off+n], cov)
				l -= n
				x += n
				off += n
				if x == s.X+s.Len {
					spans = spans[1:]
				}
			}
			op.storeDest(b, px, y, dest[:off])
		}
	}
}

// blendTexelsGeneric composes texture row sy starting at column sx onto
// target row y starting at x, in chunks.
func (sd *SpanData) blendTexelsGeneric(op *operator, x, y, sx, sy, n int, cov uint32, srcBuf, dstBuf []uint32) {
	b := sd.target.buf
	for n > 0 {
		l := min(n, pixel.BufferSize)
		src := sd.fetch(srcBuf, sy, sx, l)
		dest := op.fetchDest(dstBuf, b, x, y, l)
		op.array(dest, src, cov)
		op.storeDest(b, x, y, dest)
		x += l
		sx += l
		n -= l
	}
}
