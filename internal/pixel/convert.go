package pixel

import "golang.org/x/sys/cpu"

// Alpha returns the alpha channel of a canonical pixel.
func Alpha(p uint32) uint32 { return p >> 24 }

// Red returns the red channel of a canonical pixel.
func Red(p uint32) uint32 { return (p >> 16) & 0xff }

// Green returns the green channel of a canonical pixel.
func Green(p uint32) uint32 { return (p >> 8) & 0xff }

// Blue returns the blue channel of a canonical pixel.
func Blue(p uint32) uint32 { return p & 0xff }

// ARGB packs four 8-bit channels.
func ARGB(a, r, g, b uint32) uint32 {
	return a<<24 | r<<16 | g<<8 | b
}

// Gray returns the luminance of p using the 11/16/5 integer weights.
func Gray(p uint32) uint32 {
	return (Red(p)*11 + Green(p)*16 + Blue(p)*5) / 32
}

// Premultiply scales the color channels of a straight-alpha pixel by its
// alpha, rounding to nearest.
func Premultiply(x uint32) uint32 {
	a := x >> 24
	t := (x&0xff00ff)*a + 0x800080
	t = ((t + ((t >> 8) & 0xff00ff)) >> 8) & 0xff00ff

	g := ((x>>8)&0xff)*a + 0x80
	g = ((g + (g >> 8)) >> 8) & 0xff
	return a<<24 | t | g<<8
}

// invPremulFactor[a] is 0xff00ff/a, the 16.16 reciprocal of a/255.
var invPremulFactor = func() (f [256]uint32) {
	for a := 1; a < 256; a++ {
		f[a] = 0xff00ff / uint32(a)
	}
	return f
}()

// Unpremultiply divides the color channels of a canonical pixel by its
// alpha. Fully transparent pixels become 0.
func Unpremultiply(p uint32) uint32 {
	a := p >> 24
	switch a {
	case 255:
		return p
	case 0:
		return 0
	}
	inv := invPremulFactor[a]
	r := (Red(p)*inv + 0x8000) >> 16
	g := (Green(p)*inv + 0x8000) >> 16
	b := (Blue(p)*inv + 0x8000) >> 16
	return ARGB(a, min(r, 255), min(g, 255), min(b, 255))
}

// RGB565To32 expands a 5-6-5 value to an opaque canonical pixel with bit
// replication of the low bits.
func RGB565To32(c uint32) uint32 {
	return 0xff000000 |
		((c<<3)&0xf8 | (c>>2)&0x7) |
		((c<<5)&0xfc00 | (c>>1)&0x300) |
		((c<<8)&0xf80000 | (c<<3)&0x70000)
}

// RGB32To565 truncates an opaque pixel to 5-6-5.
func RGB32To565(c uint32) uint32 {
	return (c>>3)&0x001f | (c>>5)&0x07e0 | (c>>8)&0xf800
}

// ARGBToRGBA reorders a canonical word into the in-memory byte order
// R, G, B, A of the RGBA8888 formats.
func ARGBToRGBA(x uint32) uint32 {
	if cpu.IsBigEndian {
		return x<<8 | x>>24
	}
	return x&0xff00ff00 | (x<<16)&0x00ff0000 | (x>>16)&0xff
}

// RGBAToARGB is the inverse of ARGBToRGBA.
func RGBAToARGB(x uint32) uint32 {
	if cpu.IsBigEndian {
		return x<<24 | x>>8
	}
	return x&0xff00ff00 | (x<<16)&0x00ff0000 | (x>>16)&0xff
}

func init() {
	if !cpu.IsBigEndian {
		return
	}
	// RGBA8888 words read natively hold R in the top byte.
	for _, f := range []Format{FormatRGBX8888, FormatRGBA8888, FormatRGBA8888Premultiplied} {
		l := &layouts[f]
		l.RedShift, l.GreenShift, l.BlueShift, l.AlphaShift = 24, 16, 8, 0
	}
}

func channelMask(width uint8) uint32 { return 1<<width - 1 }

// expand replicates the high bits of a width-bit channel into the low bits
// of an 8-bit channel.
func expand(v uint32, width uint8) uint32 {
	if width >= 8 {
		return v
	}
	return v<<(8-width) | v>>(2*width-8)
}

func convertPassThrough(dst, src []uint32, _ *Layout, _ []uint32) {
	copy(dst, src)
}

func convertRGB32ToARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = 0xff000000 | p
	}
}

func convertRGB32FromARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = 0xff000000 | p
	}
}

func convertARGB32ToARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = Premultiply(p)
	}
}

func convertARGB32FromARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = Unpremultiply(p)
	}
}

func convertRGB16ToARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = RGB565To32(p)
	}
}

func convertRGB16FromARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = RGB32To565(Unpremultiply(p))
	}
}

func convertRGB16FromRGB32(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = RGB32To565(p)
	}
}

func convertRGBXToARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = 0xff000000 | RGBAToARGB(p)
	}
}

func convertRGBXFromARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = ARGBToRGBA(0xff000000 | Unpremultiply(p))
	}
}

func convertRGBXFromRGB32(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = ARGBToRGBA(0xff000000 | p)
	}
}

func convertRGBA8888ToARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = Premultiply(RGBAToARGB(p))
	}
}

func convertRGBA8888FromARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = ARGBToRGBA(Unpremultiply(p))
	}
}

func convertRGBA8888PMToARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = RGBAToARGB(p)
	}
}

func convertRGBA8888PMFromARGB32PM(dst, src []uint32, _ *Layout, _ []uint32) {
	for i, p := range src {
		dst[i] = ARGBToRGBA(p)
	}
}

func convertIndexedToARGB32PM(dst, src []uint32, _ *Layout, clut []uint32) {
	for i, p := range src {
		if int(p) < len(clut) {
			dst[i] = Premultiply(clut[p])
		} else {
			dst[i] = 0
		}
	}
}

// convertToRGB32 expands an opaque packed format. Alpha is forced to 0xff.
func convertToRGB32(dst, src []uint32, l *Layout, _ []uint32) {
	rm, gm, bm := channelMask(l.RedWidth), channelMask(l.GreenWidth), channelMask(l.BlueWidth)
	for i, p := range src {
		r := expand((p>>l.RedShift)&rm, l.RedWidth)
		g := expand((p>>l.GreenShift)&gm, l.GreenWidth)
		b := expand((p>>l.BlueShift)&bm, l.BlueWidth)
		dst[i] = 0xff000000 | r<<16 | g<<8 | b
	}
}

// convertToARGB32PM expands a packed format with alpha. Premultiplied
// formats clamp each color channel to alpha; straight formats premultiply.
func convertToARGB32PM(dst, src []uint32, l *Layout, _ []uint32) {
	if l.AlphaWidth == 0 {
		convertToRGB32(dst, src, l, nil)
		return
	}
	if l.RedWidth < 4 || l.GreenWidth < 4 || l.BlueWidth < 4 || l.AlphaWidth < 4 {
		panic("pixel: channel width below 4 bits is not supported")
	}
	rm, gm, bm, am := channelMask(l.RedWidth), channelMask(l.GreenWidth), channelMask(l.BlueWidth), channelMask(l.AlphaWidth)
	if l.Premultiplied {
		for i, p := range src {
			a := expand((p>>l.AlphaShift)&am, l.AlphaWidth)
			r := min(a, expand((p>>l.RedShift)&rm, l.RedWidth))
			g := min(a, expand((p>>l.GreenShift)&gm, l.GreenWidth))
			b := min(a, expand((p>>l.BlueShift)&bm, l.BlueWidth))
			dst[i] = a<<24 | r<<16 | g<<8 | b
		}
		return
	}
	for i, p := range src {
		a := expand((p>>l.AlphaShift)&am, l.AlphaWidth)
		r := expand((p>>l.RedShift)&rm, l.RedWidth)
		g := expand((p>>l.GreenShift)&gm, l.GreenWidth)
		b := expand((p>>l.BlueShift)&bm, l.BlueWidth)
		dst[i] = Premultiply(a<<24 | r<<16 | g<<8 | b)
	}
}

// convertFromARGB32PM packs canonical pixels, unpremultiplying first when
// the format stores straight alpha.
func convertFromARGB32PM(dst, src []uint32, l *Layout, _ []uint32) {
	rm, gm, bm, am := channelMask(l.RedWidth), channelMask(l.GreenWidth), channelMask(l.BlueWidth), channelMask(l.AlphaWidth)
	for i, p := range src {
		if !l.Premultiplied && p>>24 != 255 {
			p = Unpremultiply(p)
		}
		r := ((p >> (24 - l.RedWidth)) & rm) << l.RedShift
		g := ((p >> (16 - l.GreenWidth)) & gm) << l.GreenShift
		b := ((p >> (8 - l.BlueWidth)) & bm) << l.BlueShift
		a := ((p >> (32 - l.AlphaWidth)) & am) << l.AlphaShift
		dst[i] = r | g | b | a
	}
}

// convertFromRGB32 packs opaque canonical pixels.
func convertFromRGB32(dst, src []uint32, l *Layout, _ []uint32) {
	rm, gm, bm := channelMask(l.RedWidth), channelMask(l.GreenWidth), channelMask(l.BlueWidth)
	for i, p := range src {
		r := ((p >> (24 - l.RedWidth)) & rm) << l.RedShift
		g := ((p >> (16 - l.GreenWidth)) & gm) << l.GreenShift
		b := ((p >> (8 - l.BlueWidth)) & bm) << l.BlueShift
		dst[i] = r | g | b
	}
}

// ToARGB32PM converts len(src) raw pixels of format f into dst.
func ToARGB32PM(dst, src []uint32, f Format, clut []uint32) []uint32 {
	l := f.Layout()
	dst = dst[:len(src)]
	l.ToARGB32PM(dst, src, l, clut)
	return dst
}

// FromARGB32PM converts len(src) canonical pixels into raw pixels of
// format f.
func FromARGB32PM(dst, src []uint32, f Format) []uint32 {
	l := f.Layout()
	dst = dst[:len(src)]
	l.FromARGB32PM(dst, src, l, nil)
	return dst
}
