package drawhelper

import (
	"image"
	"testing"
)

func TestSolidResolve(t *testing.T) {
	tests := []struct {
		c      Solid
		color  uint32
		opaque bool
	}{
		{0xffff0000, 0xffff0000, true},
		{0x80ff0000, 0x80800000, false},
		{0x00ffffff, 0, false},
	}
	for _, tt := range tests {
		c := defaultConfig()
		src, err := tt.c.resolve(&c)
		if err != nil {
			t.Fatal(err)
		}
		if src.kind != sourceSolid || src.color != tt.color || src.opaque != tt.opaque {
			t.Errorf("Solid(%#08x) = %+v, want color %#08x opaque %v", uint32(tt.c), src, tt.color, tt.opaque)
		}
	}
}

func TestTextureResolve(t *testing.T) {
	rgb := newSurface(t, 2, 2, FormatRGB32)
	argb := newSurface(t, 2, 2, FormatARGB32Premultiplied)
	tests := []struct {
		name   string
		img    *Surface
		alpha  int
		opaque bool
	}{
		{"opaque format", rgb, 256, true},
		{"alpha format", argb, 256, false},
		{"const alpha", rgb, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			c.constAlpha = tt.alpha
			src, err := (&Texture{Image: tt.img}).resolve(&c)
			if err != nil {
				t.Fatal(err)
			}
			if src.opaque != tt.opaque {
				t.Errorf("opaque = %v, want %v", src.opaque, tt.opaque)
			}
		})
	}

	c := defaultConfig()
	src, err := (&Texture{Image: argb, Source: image.Rect(1, 0, 9, 9)}).resolve(&c)
	if err != nil {
		t.Fatal(err)
	}
	if tex := src.texture; tex.X1 != 1 || tex.X2 != 2 || tex.Y2 != 2 {
		t.Errorf("source rectangle = (%d,%d)-(%d,%d), want clipped to the image", tex.X1, tex.Y1, tex.X2, tex.Y2)
	}
}

func TestGradientResolveOpacity(t *testing.T) {
	opaqueStops := []GradientStop{{0, 0xff000000}, {1, 0xffffffff}}
	tests := []struct {
		name   string
		p      Paint
		opaque bool
	}{
		{"linear opaque", &LinearGradient{X2: 10, Stops: opaqueStops}, true},
		{"linear alpha stop", &LinearGradient{X2: 10, Stops: []GradientStop{{0, 0x80000000}}}, false},
		{"linear default stops", &LinearGradient{X2: 10}, true},
		{"radial simple", &RadialGradient{CX: 5, CY: 5, Radius: 5, FX: 5, FY: 5, Stops: opaqueStops}, true},
		{"radial extended", &RadialGradient{CX: 5, Radius: 5, FX: 20, FocalRadius: 8, Stops: opaqueStops}, false},
		{"conical", &ConicalGradient{CX: 5, CY: 5, Stops: opaqueStops}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			src, err := tt.p.resolve(&c)
			if err != nil {
				t.Fatal(err)
			}
			if src.kind != sourceGradient {
				t.Fatalf("kind = %v, want gradient", src.kind)
			}
			if src.opaque != tt.opaque {
				t.Errorf("opaque = %v, want %v", src.opaque, tt.opaque)
			}
		})
	}
}
