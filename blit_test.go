package drawhelper

import (
	"image"
	"testing"

	"github.com/gogpu/drawhelper/internal/pixel"
)

func TestFillRect(t *testing.T) {
	formats := []Format{
		FormatARGB32Premultiplied, FormatRGB32, FormatARGB32, FormatRGB16,
		FormatRGB888, FormatRGBA8888, FormatARGB4444Premultiplied, FormatMono,
	}
	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			for _, tables := range []*Tables{scalarTables, wideTables} {
				s := newSurface(t, 9, 6, f)
				fillRect(tables, s, image.Rect(-2, 1, 5, 4), 0xffffffff)
				for y, _n := 0, 6; y < _n; y++ {
					for x, _n := 0, 9; x < _n; x++ {
						want := s.Pixel(8, 5)
						if x < 5 && y >= 1 && y < 4 {
							want = 0xffffffff
						}
						if got := s.Pixel(x, y); got != want {
							t.Fatalf("%s: pixel (%d, %d) = %#08x, want %#08x", tables.Name(), x, y, got, want)
						}
					}
				}
			}
		})
	}
}

func TestFillRectFormats(t *testing.T) {
	tests := []struct {
		format Format
		color  uint32
		raw    uint32
	}{
		{FormatARGB32Premultiplied, 0x80400000, 0x80400000},
		{FormatARGB32, 0x80400000, 0x80800000},
		{FormatRGB32, 0x00123456, 0xff123456},
		{FormatRGB16, 0xffff0000, 0xf800},
		{FormatRGBA8888, 0xff112233, 0xff332211},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			s := newSurface(t, 3, 2, tt.format)
			s.FillRect(0, 0, 3, 2, tt.color)
			if got := s.buf.Raw(2, 1); got != tt.raw {
				t.Errorf("raw = %#08x, want %#08x", got, tt.raw)
			}
		})
	}
}

func TestFillRectOpaqueWords(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		color  uint32
		raw    uint32
	}{
		{"RGB32 translucent", FormatRGB32, 0x80400000, 0xff400000},
		{"RGB32 transparent", FormatRGB32, 0x00000000, 0xff000000},
		{"RGB32 opaque", FormatRGB32, 0xff102030, 0xff102030},
		{"RGBX8888 translucent", FormatRGBX8888, 0x80400000, pixel.ARGBToRGBA(0xff800000)},
		{"ARGB32PM translucent", FormatARGB32Premultiplied, 0x80400000, 0x80400000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tables := range []*Tables{scalarTables, wideTables} {
				s := newSurface(t, 5, 2, tt.format)
				fillRect(tables, s, s.Bounds(), tt.color)
				for y, _n := 0, 2; y < _n; y++ {
					for x, _n := 0, 5; x < _n; x++ {
						if got := s.buf.Raw(x, y); got != tt.raw {
							t.Fatalf("%s: raw (%d, %d) = %#08x, want %#08x", tables.Name(), x, y, got, tt.raw)
						}
					}
				}
			}
		})
	}
}

func TestFillRectIndexedIgnored(t *testing.T) {
	s := newSurface(t, 2, 2, FormatIndexed8)
	s.FillRect(0, 0, 2, 2, 0xffffffff)
	for _, b := range s.Data() {
		if b != 0 {
			t.Fatal("fill wrote to an indexed surface")
		}
	}
}

func TestBitmapBlit(t *testing.T) {
	// Two rows of 10 bits: 1011000001 and 0100000011.
	bits := []byte{
		0b10110000, 0b01000000,
		0b01000000, 0b11000000,
	}
	want := []string{
		"#.##.....#..",
		".#......##..",
		"............",
	}
	tests := []struct {
		format Format
		color  uint32
	}{
		{FormatARGB32Premultiplied, 0xffffffff},
		{FormatRGB16, 0xff0000ff},
		{FormatRGB888, 0xff00ff00},
		// Unset mono pixels read back white.
		{FormatMonoLSB, 0xff000000},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			s := newSurface(t, 12, 3, tt.format)
			s.BitmapBlit(0, 0, tt.color, bits, 10, 2, 2)
			for y, row := range want {
				for x, c := range row {
					set := s.Pixel(x, y) == tt.color
					if set != (c == '#') {
						t.Fatalf("pixel (%d, %d) set = %v, want %v", x, y, set, c == '#')
					}
				}
			}
		})
	}
}

func TestBitmapBlitClipped(t *testing.T) {
	bits := []byte{0xff, 0xff}
	s := newSurface(t, 4, 2, FormatARGB32Premultiplied)
	s.BitmapBlit(-2, 1, 0xff00ff00, bits, 8, 2, 1)
	for y, _n := 0, 2; y < _n; y++ {
		for x, _n := 0, 4; x < _n; x++ {
			want := uint32(0)
			if y == 1 {
				want = 0xff00ff00
			}
			if got := s.Pixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestAlphaMapBlit(t *testing.T) {
	cov := []byte{0, 128, 255, 64}
	tests := []struct {
		format Format
		want   []uint32
	}{
		{FormatARGB32Premultiplied, []uint32{0, 0x80800000, 0xffff0000, 0x40400000}},
		{FormatARGB32, []uint32{0, 0x80800000, 0xffff0000, 0x40400000}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			s := newSurface(t, 4, 1, tt.format)
			s.AlphaMapBlit(0, 0, 0xffff0000, cov, 4, 1, 4, nil)
			for x, w := range tt.want {
				if got := s.Pixel(x, 0); got != w {
					t.Errorf("pixel %d = %#08x, want %#08x", x, got, w)
				}
			}
		})
	}
}

func TestAlphaMapBlitRGB16(t *testing.T) {
	s := newSurface(t, 3, 1, FormatRGB16)
	s.AlphaMapBlit(0, 0, 0xffff0000, []byte{128, 255, 0}, 3, 1, 3, nil)
	want := []uint32{16 << 11, 0xf800, 0}
	for x, w := range want {
		if got := s.buf.Raw(x, 0); got != w {
			t.Errorf("raw pixel %d = %#04x, want %#04x", x, got, w)
		}
	}
}

func TestAlphaMapBlitClip(t *testing.T) {
	cov := make([]byte, 6*3)
	for i := range cov {
		cov[i] = 255
	}
	s := newSurface(t, 6, 3, FormatARGB32Premultiplied)
	clip := []image.Rectangle{image.Rect(0, 0, 2, 1), image.Rect(3, 1, 10, 3)}
	s.AlphaMapBlit(0, 0, 0xff0000ff, cov, 6, 3, 6, clip)
	want := []string{
		"##....",
		"...###",
		"...###",
	}
	for y, row := range want {
		for x, c := range row {
			set := s.Pixel(x, y) == 0xff0000ff
			if set != (c == '#') {
				t.Errorf("pixel (%d, %d) set = %v, want %v", x, y, set, c == '#')
			}
		}
	}
}

func TestInterpolate565(t *testing.T) {
	tests := []struct {
		c, a, d, b uint32
		want       uint32
	}{
		{0xffff, 255, 0, 0, 0xffff},
		{0xffff, 0, 0x1234, 255, 0x1234},
		{0xf800, 128, 0, 127, 16 << 11},
		{0x07e0, 128, 0, 127, 32 << 5},
	}
	for _, tt := range tests {
		if got := interpolate565(tt.c, tt.a, tt.d, tt.b); got != tt.want {
			t.Errorf("interpolate565(%#04x, %d, %#04x, %d) = %#04x, want %#04x", tt.c, tt.a, tt.d, tt.b, got, tt.want)
		}
	}
}
