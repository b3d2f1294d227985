package drawhelper

import (
	"testing"
)

func TestConicalGradientAngle(t *testing.T) {
	g := &ConicalGradient{CX: 10, CY: 10, Angle: 90}
	c := defaultConfig()
	src, err := g.resolve(&c)
	if err != nil {
		t.Fatal(err)
	}
	d := src.gradient
	if d.Spread != SpreadRepeat {
		t.Errorf("spread = %v, want Repeat", d.Spread)
	}
	if got, want := d.Conical.Angle, 1.5707963267948966; got < want-1e-12 || got > want+1e-12 {
		t.Errorf("angle = %v rad, want pi/2", got)
	}
}

func TestRadialGradientBlend(t *testing.T) {
	dst := newSurface(t, 21, 21, FormatARGB32Premultiplied)
	g := &RadialGradient{
		CX: 10.5, CY: 10.5, Radius: 10, FX: 10.5, FY: 10.5,
		Stops: []GradientStop{{0, 0xffffffff}, {1, 0xff000000}},
	}
	newSpanData(t, dst, g).Blend(FullSpans(0, 0, 21, 21))

	centre := dst.Pixel(10, 10)
	edge := dst.Pixel(0, 10)
	corner := dst.Pixel(0, 0)
	if centre>>24 != 0xff || corner>>24 != 0xff {
		t.Fatalf("radial gradient left transparent pixels: %#08x %#08x", centre, corner)
	}
	if !(centre&0xff > edge&0xff && edge&0xff >= corner&0xff) {
		t.Errorf("brightness not decreasing outward: centre %#08x edge %#08x corner %#08x", centre, edge, corner)
	}
	if corner != 0xff000000 {
		t.Errorf("corner outside the radius = %#08x, want the padded last stop", corner)
	}
}

func TestLinearGradientSpread(t *testing.T) {
	stops := []GradientStop{{0, 0xff000000}, {1, 0xffffffff}}
	tests := []struct {
		spread Spread
		x      int
		dark   bool
	}{
		// The axis runs over pixels [0, 10); pixel 12 lies 0.25 past its end.
		{SpreadPad, 12, false},
		{SpreadRepeat, 12, true},
		{SpreadReflect, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.spread.String(), func(t *testing.T) {
			dst := newSurface(t, 16, 1, FormatARGB32Premultiplied)
			g := &LinearGradient{X2: 10, Stops: stops, Spread: tt.spread}
			newSpanData(t, dst, g).Blend(FullSpans(0, 0, 16, 1))
			got := dst.Pixel(tt.x, 0) & 0xff
			if dark := got < 0x80; dark != tt.dark {
				t.Errorf("pixel %d blue = %#02x, dark = %v, want %v", tt.x, got, dark, tt.dark)
			}
		})
	}
}

func TestGradientTablesShared(t *testing.T) {
	stops := []GradientStop{{0, 0xff102030}, {0.4, 0x80ffffff}, {1, 0xff000000}}
	a := buildTable(stops)
	b := buildTable(append([]GradientStop(nil), stops...))
	if a != b {
		t.Error("identical stops built separate tables")
	}
	stops2 := append([]GradientStop(nil), stops...)
	stops2[1].Color = 0x81ffffff
	if buildTable(stops2) == a {
		t.Error("different stops shared a table")
	}
}
