package drawhelper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/drawhelper/internal/blend"
	"github.com/gogpu/drawhelper/internal/geom"
	"github.com/gogpu/drawhelper/internal/pixel"
	"github.com/gogpu/drawhelper/internal/texture"
)

// Errors returned by NewSpanData.
var (
	// ErrInvalidMode is returned for an unknown composition mode.
	ErrInvalidMode = errors.New("drawhelper: invalid composition mode")

	// ErrConstAlpha is returned when the constant alpha is outside [0, 256].
	ErrConstAlpha = errors.New("drawhelper: constant alpha out of range")

	// ErrSingularTransform is returned when the transform cannot be
	// inverted.
	ErrSingularTransform = errors.New("drawhelper: singular transform")

	// ErrNilPaint is returned when no paint is given.
	ErrNilPaint = errors.New("drawhelper: nil paint")
)

// SpanData binds a paint, a target surface and a composition mode. Its
// Blend method composes spans onto the target.
//
// A SpanData is immutable after creation. Blend calls on distinct
// SpanData values may run concurrently as long as their spans do not
// write the same pixels.
type SpanData struct {
	target *Surface
	src    source
	tables *Tables

	mode       Mode
	constAlpha uint32

	// inv maps destination pixel centres to paint space.
	inv       Matrix
	tx        geom.TxType
	blendType texture.BlendType

	// fetch produces source pixels for the generic loop. For untransformed
	// and tiled textures it takes texture coordinates.
	fetch func(buf []uint32, y, x, length int) []uint32
}

// operator is the per-call resolution of mode and destination access.
type operator struct {
	mode      Mode
	solid     blend.SolidFunc
	array     blend.Func
	destFetch pixel.DestFetchFunc
	destStore pixel.DestStoreFunc
}

// NewSpanData prepares paint for composition onto target.
func NewSpanData(target *Surface, paint Paint, opts ...Option) (*SpanData, error) {
	if target == nil {
		return nil, ErrNilSurface
	}
	if paint == nil {
		return nil, ErrNilPaint
	}
	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	if !isTarget(target.Format()) {
		Logger().Warn("drawhelper: unsupported target format", "format", target.Format())
		return nil, fmt.Errorf("%w: %v", ErrNotTarget, target.Format())
	}
	if !c.mode.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, c.mode)
	}
	if c.constAlpha < 0 || c.constAlpha > 256 {
		return nil, fmt.Errorf("%w: %d", ErrConstAlpha, c.constAlpha)
	}
	inv, ok := geom.SampleInverse(c.transform)
	if !ok {
		return nil, ErrSingularTransform
	}
	src, err := paint.resolve(&c)
	if err != nil {
		return nil, err
	}
	if c.tables == nil {
		c.tables = DefaultTables()
	}

	sd := &SpanData{
		target:     target,
		src:        src,
		tables:     c.tables,
		mode:       c.mode,
		constAlpha: uint32(c.constAlpha),
		inv:        inv,
		tx:         inv.Type(),
	}
	switch src.kind {
	case sourceGradient:
		g := src.gradient
		sd.fetch = func(buf []uint32, y, x, length int) []uint32 {
			return sd.tables.gradient(buf, g, &sd.inv, y, x, length)
		}
	case sourceTexture:
		tex := src.texture
		sd.blendType = texture.TypeFor(sd.tx, c.bilinear, c.tiled)
		f := sd.tables.fetch(sd.blendType, tex.Image.Format())
		if f == nil {
			return nil, fmt.Errorf("%w: texture %v", ErrInvalidFormat, tex.Image.Format())
		}
		sd.fetch = func(buf []uint32, y, x, length int) []uint32 {
			return f(buf, tex, &sd.inv, y, x, length)
		}
	}
	if sd.solidSource() && sd.mode == SourceOver {
		Logger().Debug("drawhelper: opaque source, using Source", "mode", sd.mode)
	}
	return sd, nil
}

// Mode returns the composition mode.
func (sd *SpanData) Mode() Mode { return sd.mode }

// Target returns the target surface.
func (sd *SpanData) Target() *Surface { return sd.target }

// solidSource reports whether every source pixel is fully opaque after
// the constant alpha is applied.
func (sd *SpanData) solidSource() bool {
	return sd.src.opaque && sd.constAlpha == 256
}

// coverage scales a span coverage by the constant alpha.
func (sd *SpanData) coverage(c uint8) uint32 {
	return uint32(c) * sd.constAlpha >> 8
}

// operator resolves the mode and destination access for spans. An opaque
// source turns SourceOver into Source. Targets that need conversion skip
// the destination fetch when Source fully covers every span.
func (sd *SpanData) operator(spans []Span) operator {
	op := operator{mode: sd.mode}
	if op.mode == SourceOver && sd.solidSource() {
		op.mode = Source
	}
	f := sd.target.Format()
	op.destFetch = sd.tables.destFetch(f)
	op.destStore = sd.tables.destStore(f)
	if op.mode == Source && f != FormatARGB32Premultiplied && f != FormatRGB32 &&
		sd.constAlpha == 256 && allOpaque(spans) {
		op.destFetch = nil
		if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("drawhelper: skipping destination fetch", "format", f, "spans", len(spans))
		}
	}
	op.solid = sd.tables.blend.Solid[op.mode]
	op.array = sd.tables.blend.Array[op.mode]
	return op
}

// fetchDest stages destination pixels, or returns buf[:n] unread when the
// operator skips the fetch.
func (op *operator) fetchDest(buf []uint32, b *pixel.Buffer, x, y, n int) []uint32 {
	if op.destFetch == nil {
		return buf[:n]
	}
	return op.destFetch(buf, b, x, y, n)
}

func (op *operator) storeDest(b *pixel.Buffer, x, y int, px []uint32) {
	if op.destStore != nil {
		op.destStore(b, x, y, px)
	}
}

// qRound rounds half up.
func qRound(v float64) int {
	return int(math.Floor(v + 0.5))
}
