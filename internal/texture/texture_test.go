package texture

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/drawhelper/internal/geom"
	"github.com/gogpu/drawhelper/internal/pixel"
)

const (
	pA = 0xff0000aa
	pB = 0xff00bb00
	pC = 0xffcc0000
	pD = 0x80404040
)

func newImage(t *testing.T, f pixel.Format, w, h int, raw ...uint32) *pixel.Buffer {
	t.Helper()
	img, err := pixel.NewBuffer(w, h, f)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range raw {
		img.SetRaw(i%w, i/w, p)
	}
	return img
}

func newData(t *testing.T, img *pixel.Buffer, tiled bool) *Data {
	t.Helper()
	tex, err := NewData(img, 256, tiled, image.Rectangle{})
	if err != nil {
		t.Fatal(err)
	}
	return tex
}

func equal(got, want []uint32) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestTypeFor(t *testing.T) {
	tests := []struct {
		tx              geom.TxType
		bilinear, tiled bool
		want            BlendType
	}{
		{geom.TxNone, true, false, Untransformed},
		{geom.TxTranslate, false, true, Tiled},
		{geom.TxScale, false, false, Transformed},
		{geom.TxRotate, false, true, TransformedTiled},
		{geom.TxShear, true, false, TransformedBilinear},
		{geom.TxProject, true, true, TransformedBilinearTiled},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := TypeFor(tt.tx, tt.bilinear, tt.tiled); got != tt.want {
				t.Errorf("TypeFor(%v, %v, %v) = %v", tt.tx, tt.bilinear, tt.tiled, got)
			}
		})
	}
}

func TestNewData(t *testing.T) {
	rgb := newImage(t, pixel.FormatRGB32, 4, 4)
	if _, err := NewData(nil, 256, false, image.Rectangle{}); !errors.Is(err, ErrNoImage) {
		t.Errorf("nil image: %v", err)
	}
	if _, err := NewData(rgb, 257, false, image.Rectangle{}); !errors.Is(err, ErrConstAlpha) {
		t.Errorf("alpha 257: %v", err)
	}
	if _, err := NewData(rgb, 256, false, image.Rect(10, 10, 20, 20)); !errors.Is(err, ErrEmptySource) {
		t.Errorf("outside source rect: %v", err)
	}

	tex := newData(t, rgb, false)
	if tex.HasAlpha || tex.X2 != 4 || tex.Y2 != 4 {
		t.Errorf("opaque texture = %+v", tex)
	}
	if tex, _ := NewData(rgb, 128, false, image.Rect(1, 1, 9, 3)); !tex.HasAlpha || tex.X1 != 1 || tex.X2 != 4 || tex.Y2 != 3 {
		t.Errorf("half alpha clipped texture = %+v", tex)
	}

}

func TestNewData_IndexedAlpha(t *testing.T) {
	opaque256 := make([]uint32, 256)
	for i := range opaque256 {
		opaque256[i] = 0xff000000 | uint32(i)*0x010101
	}
	withClear := append([]uint32(nil), opaque256...)
	withClear[7] = 0x00000000
	tests := []struct {
		name   string
		format pixel.Format
		clut   []uint32
		want   bool
	}{
		{"indexed full opaque table", pixel.FormatIndexed8, opaque256, false},
		{"indexed transparent entry", pixel.FormatIndexed8, withClear, true},
		{"indexed short table", pixel.FormatIndexed8, []uint32{0xff000000, 0xffffffff}, true},
		{"indexed no table", pixel.FormatIndexed8, nil, true},
		{"mono opaque table", pixel.FormatMono, []uint32{0xff0000ff, 0xffff0000}, false},
		{"mono no table", pixel.FormatMono, nil, true},
		{"mono lsb one entry", pixel.FormatMonoLSB, []uint32{0xffffffff}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := newImage(t, tt.format, 2, 2)
			img.SetColorTable(tt.clut)
			if got := newData(t, img, false).HasAlpha; got != tt.want {
				t.Errorf("HasAlpha = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetchFunc_Coverage(t *testing.T) {
	for bt := Untransformed; bt < blendTypeCount; bt++ {
		if FetchFunc(bt, pixel.FormatInvalid) != nil {
			t.Errorf("%v has a fetcher for the invalid format", bt)
		}
		for f := pixel.Format(1); int(f) < pixel.FormatCount; f++ {
			if FetchFunc(bt, f) == nil {
				t.Errorf("%v has no fetcher for %v", bt, f)
			}
		}
	}
}

func TestUntransformed_ARGB32PMIsView(t *testing.T) {
	img := newImage(t, pixel.FormatARGB32Premultiplied, 4, 1, pA, pB, pC, pD)
	tex := newData(t, img, false)
	m := geom.Identity()
	got := FetchFunc(Untransformed, img.Format())(nil, tex, &m, 0, 1, 2)
	if !equal(got, []uint32{pB, pC}) {
		t.Fatalf("fetch = %#x", got)
	}
	img.SetRaw(1, 0, 0)
	if got[0] != 0 {
		t.Error("result does not alias the image")
	}
}

func TestUntransformed_Formats(t *testing.T) {
	tests := []struct {
		format pixel.Format
		raw    uint32
		want   uint32
	}{
		{pixel.FormatRGB16, 0xf800, 0xffff0000},
		{pixel.FormatRGB32, 0x00123456, 0xff123456},
		{pixel.FormatARGB32, 0x80ff0000, 0x80800000},
		{pixel.FormatRGB888, 0x00abcdef, 0xffabcdef},
		{pixel.FormatRGBA8888, 0x11223344, pixel.Premultiply(pixel.RGBAToARGB(0x11223344))},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			img := newImage(t, tt.format, 3, 1, 0, tt.raw, 0)
			tex := newData(t, img, false)
			buf := make([]uint32, 3)
			got := FetchFunc(Untransformed, tt.format)(buf, tex, nil, 0, 1, 1)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("fetch = %#x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestTiled_Wraparound(t *testing.T) {
	for _, f := range []pixel.Format{pixel.FormatARGB32Premultiplied, pixel.FormatARGB32} {
		t.Run(f.String(), func(t *testing.T) {
			img := newImage(t, f, 4, 1, pA, pB, pC, 0xff404040)
			tex := newData(t, img, true)
			buf := make([]uint32, 16)
			got := FetchFunc(Tiled, f)(buf, tex, nil, 0, 3, 4)
			want := []uint32{0xff404040, pA, pB, pC}
			if !equal(got, want) {
				t.Errorf("x=3: %#x, want %#x", got, want)
			}
			// Negative coordinates and rows wrap too.
			got = FetchFunc(Tiled, f)(buf, tex, nil, -7, -2, 9)
			want = []uint32{pC, 0xff404040, pA, pB, pC, 0xff404040, pA, pB, pC}
			if !equal(got, want) {
				t.Errorf("x=-2: %#x, want %#x", got, want)
			}
		})
	}
}

func TestTransformed_NearestScale(t *testing.T) {
	img := newImage(t, pixel.FormatARGB32Premultiplied, 4, 1, pA, pB, pC, pD)

	affine := geom.Scale(0.5, 0.5)
	projective := affine
	projective.M13 = 1e-12
	want := []uint32{pA, pA, pB, pB, pC, pC, pD, pD, pD, pD}

	for name, m := range map[string]geom.Matrix{"fixed": affine, "float": projective} {
		for _, f := range []pixel.Format{pixel.FormatARGB32Premultiplied, pixel.FormatARGB32} {
			src := img
			if f != src.Format() {
				src = newImage(t, f, 4, 1)
				for x, _n := 0, 4; x < _n; x++ {
					src.SetRaw(x, 0, pixel.Unpremultiply(img.Raw(x, 0)))
				}
			}
			buf := make([]uint32, len(want))
			got := FetchFunc(Transformed, f)(buf, newData(t, src, false), &m, 0, 0, len(want))
			if name == "fixed" && !m.FastMatrix() || name == "float" && m.FastMatrix() {
				t.Fatalf("%s matrix takes the wrong path", name)
			}
			if f != pixel.FormatARGB32Premultiplied {
				// Straight alpha does not round trip pD exactly.
				got, want := got[:6], want[:6]
				if !equal(got, want) {
					t.Errorf("%s %v: %#x, want %#x", name, f, got, want)
				}
				continue
			}
			if !equal(got, want) {
				t.Errorf("%s %v: %#x, want %#x", name, f, got, want)
			}
		}
	}
}

func TestTransformed_TiledWraps(t *testing.T) {
	img := newImage(t, pixel.FormatARGB32Premultiplied, 4, 1, pA, pB, pC, pD)
	tex := newData(t, img, true)
	m := geom.Scale(0.5, 0.5)
	buf := make([]uint32, 4)
	got := FetchFunc(TransformedTiled, img.Format())(buf, tex, &m, 0, 8, 4)
	if want := []uint32{pA, pA, pB, pB}; !equal(got, want) {
		t.Errorf("fetch = %#x, want %#x", got, want)
	}
}

func TestInterpolate4Pixels(t *testing.T) {
	const black, white = 0xff000000, 0xffffffff
	tests := []struct {
		name         string
		distx, disty uint32
		want8        uint32
	}{
		{"top left", 0, 0, black},
		{"half x", 128, 0, 0xff7f7f7f},
		{"bottom", 0, 256, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate4Pixels(black, white, white, white, tt.distx, tt.disty); got != tt.want8 {
				t.Errorf("Interpolate4Pixels = %#08x, want %#08x", got, tt.want8)
			}
		})
	}

	if got := Interpolate4Pixels16(pA, pB, pC, pD, 0, 0); got != pA {
		t.Errorf("16: top left = %#08x", got)
	}
	if got := Interpolate4Pixels16(pA, pB, pC, pD, 16, 16); got != pD {
		t.Errorf("16: bottom right = %#08x", got)
	}
	if got := Interpolate4Pixels16(pA, pB, pC, pD, 16, 0); got != pB {
		t.Errorf("16: top right = %#08x", got)
	}
	// Equal weights over a uniform block return the block color.
	if got := Interpolate4Pixels16(pD, pD, pD, pD, 5, 11); got != pD {
		t.Errorf("16: uniform = %#08x", got)
	}
}

func TestBilinear_EdgeClamp(t *testing.T) {
	const black, white = 0xff000000, 0xffffffff
	img := newImage(t, pixel.FormatARGB32Premultiplied, 2, 1, black, white)
	tex := newData(t, img, false)
	fetch := FetchFunc(TransformedBilinear, img.Format())
	buf := make([]uint32, 8)

	// At texel centers bilinear sampling returns the texels, and positions
	// left and right of the image take the edge color.
	m := geom.Identity()
	got := fetch(buf, tex, &m, 0, -3, 6)
	if want := []uint32{black, black, black, black, white, white}; !equal(got, want) {
		t.Errorf("identity: %#x, want %#x", got, want)
	}

	// Upscaling by 2 blends between the two texels.
	m = geom.Scale(0.5, 1)
	got = fetch(buf, tex, &m, 0, 0, 4)
	if want := []uint32{black, 0xff3f3f3f, 0xffbfbfbf, white}; !equal(got, want) {
		t.Errorf("scale 2: %#x, want %#x", got, want)
	}
}

func TestBilinear_TiledWraps(t *testing.T) {
	const black, white = 0xff000000, 0xffffffff
	img := newImage(t, pixel.FormatARGB32Premultiplied, 2, 1, black, white)
	tex := newData(t, img, true)
	m := geom.Identity()
	buf := make([]uint32, 4)
	got := FetchFunc(TransformedBilinearTiled, img.Format())(buf, tex, &m, 0, 1, 3)
	if want := []uint32{white, black, white}; !equal(got, want) {
		t.Errorf("fetch = %#x, want %#x", got, want)
	}
}

func TestBilinear_ProjectivePathMatchesTiled(t *testing.T) {
	img := newImage(t, pixel.FormatARGB32Premultiplied, 4, 2, pA, pB, pC, pD, pD, pC, pB, pA)
	tex := newData(t, img, true)
	// A far translation leaves the fixed-point range.
	m := geom.Translate(20000, 3)
	if m.FastMatrix() {
		t.Fatal("translation should not be a fast matrix")
	}
	got := FetchFunc(TransformedBilinearTiled, img.Format())(make([]uint32, 7), tex, &m, 0, 1, 7)
	want := FetchFunc(Tiled, img.Format())(make([]uint32, 7), tex, nil, 3, 20001, 7)
	if !equal(got, want) {
		t.Errorf("projective = %#x, want %#x", got, want)
	}
}

func TestBilinear_UniformImage(t *testing.T) {
	// Every interpolation path returns the color of a uniform image.
	const red = 0xffff0000
	raw := make([]uint32, 16)
	for i := range raw {
		raw[i] = 0xf800
	}
	img := newImage(t, pixel.FormatRGB16, 4, 4, raw...)
	matrices := map[string]geom.Matrix{
		"upscale":     geom.Scale(0.25, 0.25),
		"downscale":   geom.Scale(3, 3),
		"magnify":     geom.Scale(-0.05, 0.05),
		"rotate":      geom.Rotate(math.Pi / 5),
		"rotate zoom": geom.Rotate(0.3).Multiply(geom.Scale(9, 9)),
		"perspective": {M11: 1, M22: 1, M13: 0.01, M33: 1},
	}
	for name, m := range matrices {
		for _, tiled := range []bool{false, true} {
			tex := newData(t, img, tiled)
			bt := TypeFor(geom.TxScale, true, tiled)
			got := FetchFunc(bt, img.Format())(make([]uint32, 40), tex, &m, 2, -5, 40)
			for i, p := range got {
				if p != red {
					t.Fatalf("%s tiled=%v: pixel %d = %#08x", name, tiled, i, p)
				}
			}
		}
	}
}

func BenchmarkBilinear_Rotate(b *testing.B) {
	img, _ := pixel.NewBuffer(256, 256, pixel.FormatARGB32Premultiplied)
	tex, _ := NewData(img, 256, false, image.Rectangle{})
	m := geom.Rotate(0.4)
	buf := make([]uint32, 256)
	fetch := FetchFunc(TransformedBilinear, img.Format())
	for i := 0; i < b.N; i++ {
		fetch(buf, tex, &m, i&255, 0, len(buf))
	}
}
