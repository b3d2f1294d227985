package blend

import "testing"

func TestDiv255_Exact(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		if got, want := Div255(x), (x+127)/255; got != want {
			t.Fatalf("Div255(%d) = %d, want %d", x, got, want)
		}
	}
}

// ByteMul must round every channel product exactly, with no cross-channel
// carries, for all channel and factor values.
func TestByteMul_Exhaustive(t *testing.T) {
	for c := uint32(0); c < 256; c++ {
		// Spread c over all four channels with distinct neighbours.
		x := c<<24 | (255-c)<<16 | c<<8 | (c ^ 0x5a)
		for a := uint32(0); a < 256; a++ {
			got := ByteMul(x, a)
			for shift := 0; shift < 32; shift += 8 {
				ch := (x >> shift) & 0xff
				want := (ch*a + 127) / 255
				if g := (got >> shift) & 0xff; g != want {
					t.Fatalf("ByteMul(%#08x, %d) channel %d = %d, want %d", x, a, shift/8, g, want)
				}
			}
		}
	}
}

func TestInterpolate255(t *testing.T) {
	tests := []struct {
		name       string
		x, a, y, b uint32
		want       uint32
	}{
		{"all x", 0xff102030, 255, 0x00000000, 0, 0xff102030},
		{"all y", 0xff102030, 0, 0x80405060, 255, 0x80405060},
		{"half", 0xffffffff, 128, 0x00000000, 127, 0x80808080},
		{"mixed", 0xff0000ff, 51, 0xffff0000, 204, 0xffcc0033},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate255(tt.x, tt.a, tt.y, tt.b); got != tt.want {
				t.Errorf("Interpolate255() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestInterpolate256(t *testing.T) {
	if got := Interpolate256(0xffffffff, 256, 0x12345678, 0); got != 0xffffffff {
		t.Errorf("full weight = %#08x", got)
	}
	if got := Interpolate256(0xff000000, 128, 0x00ff00ff, 128); got != 0x7f7f007f {
		t.Errorf("half weight = %#08x, want 0x7f7f007f", got)
	}
}

func TestMixAlpha(t *testing.T) {
	tests := []struct {
		da, sa, want int
	}{
		{0, 0, 0},
		{255, 0, 255},
		{0, 255, 255},
		{128, 128, 192},
		{255, 255, 255},
	}
	for _, tt := range tests {
		if got := MixAlpha(tt.da, tt.sa); got != tt.want {
			t.Errorf("MixAlpha(%d, %d) = %d, want %d", tt.da, tt.sa, got, tt.want)
		}
	}
}

func TestPlusPixel_Saturates(t *testing.T) {
	if got := plusPixel(0x80ff4010, 0x90014020); got != 0xffff8030 {
		t.Errorf("plusPixel() = %#08x, want 0xffff8030", got)
	}
}
