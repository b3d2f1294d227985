package drawhelper

import (
	"errors"
	"image"
	"math"
	"math/rand"
	"testing"
)

const (
	texA = 0xff0000aa
	texB = 0xff00bb00
	texC = 0xffcc0000
	texD = 0x80404040
)

var (
	scalarTables = NewTables(Features{})
	wideTables   = NewTables(Features{Wide: true})
)

func newSurface(t testing.TB, w, h int, f Format) *Surface {
	t.Helper()
	s, err := NewSurface(w, h, f)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// fillSurface sets every pixel to the canonical colour p.
func fillSurface(s *Surface, p uint32) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetPixel(x, y, p)
		}
	}
}

// randomSurface fills s with seeded premultiplied pixels.
func randomSurface(s *Surface, rng *rand.Rand) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			s.SetPixel(x, y, Premultiply(rng.Uint32()))
		}
	}
}

func cloneSurface(t testing.TB, s *Surface) *Surface {
	t.Helper()
	c := newSurface(t, s.Width(), s.Height(), s.Format())
	copy(c.Data(), s.Data())
	c.SetColorTable(s.ColorTable())
	return c
}

func newSpanData(t testing.TB, dst *Surface, p Paint, opts ...Option) *SpanData {
	t.Helper()
	sd, err := NewSpanData(dst, p, opts...)
	if err != nil {
		t.Fatalf("NewSpanData: %v", err)
	}
	return sd
}

// diffSurfaces reports the first pixel where a and b differ.
func diffSurfaces(t *testing.T, got, want *Surface) {
	t.Helper()
	for y := 0; y < got.Height(); y++ {
		for x := 0; x < got.Width(); x++ {
			if g, w := got.Pixel(x, y), want.Pixel(x, y); g != w {
				t.Fatalf("pixel (%d, %d) = %#08x, want %#08x", x, y, g, w)
			}
		}
	}
}

func TestBlendSolidSourceOver(t *testing.T) {
	for _, tables := range []*Tables{scalarTables, wideTables} {
		t.Run(tables.Name(), func(t *testing.T) {
			dst := newSurface(t, 40, 2, FormatARGB32Premultiplied)
			fillSurface(dst, 0xff0000ff)
			sd := newSpanData(t, dst, Solid(0x80ff0000), WithTables(tables))
			sd.Blend(FullSpans(0, 0, 40, 2))
			for x, _n := 0, 40; x < _n; x++ {
				if got := dst.Pixel(x, 1); got != 0xff80007f {
					t.Fatalf("pixel %d = %#08x, want 0xff80007f", x, got)
				}
			}
		})
	}
}

func TestBlendSolidRGB16(t *testing.T) {
	dst := newSurface(t, 5, 1, FormatRGB16)
	sd := newSpanData(t, dst, Solid(0xffff0000))
	sd.Blend(FullSpans(0, 0, 5, 1))
	for x, _n := 0, 5; x < _n; x++ {
		if raw := dst.buf.Raw(x, 0); raw != 0xf800 {
			t.Errorf("raw pixel %d = %#04x, want 0xf800", x, raw)
		}
		if got := dst.Pixel(x, 0); got != 0xffff0000 {
			t.Errorf("pixel %d = %#08x, want 0xffff0000", x, got)
		}
	}
}

func TestBlendZeroCoverage(t *testing.T) {
	tests := []struct {
		name  string
		cov   uint8
		alpha int
	}{
		{"coverage 0", 0, 256},
		{"const alpha 0", 255, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := newSurface(t, 8, 1, FormatARGB32Premultiplied)
			fillSurface(dst, 0xff123456)
			sd := newSpanData(t, dst, Solid(0xffff0000), WithConstAlpha(tt.alpha))
			sd.Blend([]Span{{X: 0, Y: 0, Len: 8, Coverage: tt.cov}})
			for x, _n := 0, 8; x < _n; x++ {
				if got := dst.Pixel(x, 0); got != 0xff123456 {
					t.Fatalf("pixel %d = %#08x, want unchanged", x, got)
				}
			}
		})
	}
}

func TestBlendSkipsZeroLengthSpans(t *testing.T) {
	dst := newSurface(t, 4, 1, FormatARGB32)
	sd := newSpanData(t, dst, Solid(0xff00ff00), WithMode(Source))
	sd.Blend([]Span{
		{X: 0, Y: 0, Len: 0, Coverage: 255},
		{X: 0, Y: 0, Len: 2, Coverage: 255},
		{X: 2, Y: 0, Len: 0, Coverage: 255},
	})
	want := []uint32{0xff00ff00, 0xff00ff00, 0, 0}
	for x, w := range want {
		if got := dst.Pixel(x, 0); got != w {
			t.Errorf("pixel %d = %#08x, want %#08x", x, got, w)
		}
	}
}

func TestNewSpanDataErrors(t *testing.T) {
	argb := newSurface(t, 2, 2, FormatARGB32Premultiplied)
	indexed := newSurface(t, 2, 2, FormatIndexed8)
	tests := []struct {
		name   string
		target *Surface
		paint  Paint
		opts   []Option
		want   error
	}{
		{"nil target", nil, Solid(0), nil, ErrNilSurface},
		{"nil paint", argb, nil, nil, ErrNilPaint},
		{"indexed target", indexed, Solid(0), nil, ErrNotTarget},
		{"bad mode", argb, Solid(0), []Option{WithMode(Mode(200))}, ErrInvalidMode},
		{"const alpha", argb, Solid(0), []Option{WithConstAlpha(257)}, ErrConstAlpha},
		{"singular", argb, Solid(0), []Option{WithTransform(Scale(0, 1))}, ErrSingularTransform},
		{"no image", argb, &Texture{}, nil, ErrNoImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpanData(tt.target, tt.paint, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewSpanData() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOperatorResolution(t *testing.T) {
	tests := []struct {
		name      string
		format    Format
		paint     Paint
		mode      Mode
		alpha     int
		spans     []Span
		wantMode  Mode
		wantFetch bool
	}{
		{"opaque over", FormatARGB32Premultiplied, Solid(0xff112233), SourceOver, 256, FullSpans(0, 0, 2, 1), Source, true},
		{"translucent over", FormatARGB32Premultiplied, Solid(0x80112233), SourceOver, 256, FullSpans(0, 0, 2, 1), SourceOver, true},
		{"const alpha keeps over", FormatARGB32Premultiplied, Solid(0xff112233), SourceOver, 128, FullSpans(0, 0, 2, 1), SourceOver, true},
		{"rgb16 source skips fetch", FormatRGB16, Solid(0xff112233), Source, 256, FullSpans(0, 0, 2, 1), Source, false},
		{"rgb16 partial coverage fetches", FormatRGB16, Solid(0xff112233), Source, 256, []Span{{Len: 2, Coverage: 3}}, Source, true},
		{"rgb32 always fetches", FormatRGB32, Solid(0xff112233), Source, 256, FullSpans(0, 0, 2, 1), Source, true},
		{"multiply untouched", FormatARGB32, Solid(0xff112233), Multiply, 256, FullSpans(0, 0, 2, 1), Multiply, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := newSurface(t, 2, 1, tt.format)
			sd := newSpanData(t, dst, tt.paint, WithMode(tt.mode), WithConstAlpha(tt.alpha))
			op := sd.operator(tt.spans)
			if op.mode != tt.wantMode {
				t.Errorf("mode = %v, want %v", op.mode, tt.wantMode)
			}
			if got := op.destFetch != nil; got != tt.wantFetch {
				t.Errorf("dest fetch present = %v, want %v", got, tt.wantFetch)
			}
		})
	}
}

func newTexture(t testing.TB, f Format, w, h int, px ...uint32) *Surface {
	t.Helper()
	s := newSurface(t, w, h, f)
	for i, p := range px {
		s.SetPixel(i%w, i/w, p)
	}
	return s
}

func TestBlendTiledTexture(t *testing.T) {
	for _, f := range []Format{FormatARGB32Premultiplied, FormatARGB32, FormatRGBA8888Premultiplied} {
		t.Run(f.String(), func(t *testing.T) {
			img := newTexture(t, FormatARGB32Premultiplied, 4, 1, texA, texB, texC, texD)
			dst := newSurface(t, 4, 1, f)
			sd := newSpanData(t, dst, &Texture{Image: img},
				WithMode(Source), WithTiled(true), WithTransform(Translate(-3, 0)))
			sd.Blend(FullSpans(0, 0, 4, 1))
			for x, want := range []uint32{texD, texA, texB, texC} {
				if got := dst.Pixel(x, 0); got != want {
					t.Errorf("pixel %d = %#08x, want %#08x", x, got, want)
				}
			}
		})
	}
}

func TestBlendUntransformedClipsToImage(t *testing.T) {
	img := newTexture(t, FormatARGB32Premultiplied, 2, 2, texA, texB, texC, texA)
	dst := newSurface(t, 5, 4, FormatARGB32Premultiplied)
	sd := newSpanData(t, dst, &Texture{Image: img}, WithMode(Source), WithTransform(Translate(1, 1)))
	sd.Blend(FullSpans(0, 0, 5, 4))
	want := [4][5]uint32{
		{0, 0, 0, 0, 0},
		{0, texA, texB, 0, 0},
		{0, texC, texA, 0, 0},
		{0, 0, 0, 0, 0},
	}
	for y := range want {
		for x, w := range want[y] {
			if got := dst.Pixel(x, y); got != w {
				t.Errorf("pixel (%d, %d) = %#08x, want %#08x", x, y, got, w)
			}
		}
	}
}

func TestBlendTransformedTexture(t *testing.T) {
	img := newTexture(t, FormatARGB32Premultiplied, 2, 1, texA, texB)
	dst := newSurface(t, 4, 1, FormatARGB32Premultiplied)
	sd := newSpanData(t, dst, &Texture{Image: img}, WithMode(Source), WithTransform(Scale(2, 1)))
	sd.Blend(FullSpans(0, 0, 4, 1))
	for x, want := range []uint32{texA, texA, texB, texB} {
		if got := dst.Pixel(x, 0); got != want {
			t.Errorf("pixel %d = %#08x, want %#08x", x, got, want)
		}
	}
}

func TestBlendTextureSourceRect(t *testing.T) {
	img := newTexture(t, FormatARGB32Premultiplied, 2, 1, texA, texB)
	dst := newSurface(t, 2, 1, FormatARGB32Premultiplied)
	_, err := NewSpanData(dst, &Texture{Image: img, Source: image.Rect(5, 5, 6, 6)})
	if err == nil {
		t.Fatal("NewSpanData with a source rectangle outside the image succeeded")
	}
}

func TestBlendGradientPad(t *testing.T) {
	dst := newSurface(t, 3, 1, FormatARGB32Premultiplied)
	g := &LinearGradient{X1: 1, X2: 2, Stops: []GradientStop{{0, 0xffff0000}, {1, 0xff0000ff}}}
	sd := newSpanData(t, dst, g)
	sd.Blend(FullSpans(0, 0, 3, 1))
	if got := dst.Pixel(0, 0); got != 0xffff0000 {
		t.Errorf("left of the axis = %#08x, want first stop", got)
	}
	if got := dst.Pixel(2, 0); got != 0xff0000ff {
		t.Errorf("right of the axis = %#08x, want last stop", got)
	}
}

func TestRadialFocalAdaptation(t *testing.T) {
	tests := []struct {
		fx, fy       float64
		wantX, wantY float64
	}{
		{5, 0, 5, 0},
		{20, 0, 9.99, 0},
		{0, -30, 0, -9.99},
	}
	for _, tt := range tests {
		x, y := adaptFocalPoint(0, 0, 10, tt.fx, tt.fy)
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("adaptFocalPoint(%v, %v) = (%v, %v), want (%v, %v)", tt.fx, tt.fy, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestIndexedTextureShortTableOverOpaque(t *testing.T) {
	img := newSurface(t, 2, 1, FormatIndexed8)
	img.SetColorTable([]uint32{0xffff0000})
	img.Data()[0] = 0
	img.Data()[1] = 5
	for _, f := range []Format{FormatARGB32Premultiplied, FormatRGB16, FormatRGB888} {
		t.Run(f.String(), func(t *testing.T) {
			dst := newSurface(t, 2, 1, f)
			dst.FillRect(0, 0, 2, 1, 0xff0000ff)
			newSpanData(t, dst, &Texture{Image: img}).Blend(FullSpans(0, 0, 2, 1))
			if got := dst.Pixel(0, 0); got != 0xffff0000 {
				t.Errorf("indexed pixel = %#08x, want 0xffff0000", got)
			}
			if got := dst.Pixel(1, 0); got != 0xff0000ff {
				t.Errorf("out-of-table pixel = %#08x, want the destination 0xff0000ff", got)
			}
		})
	}
}
