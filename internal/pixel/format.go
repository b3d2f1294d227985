// Package pixel describes the raw framebuffer formats understood by
// drawhelper and converts them to and from the canonical pixel.
//
// The canonical pixel is a uint32 holding premultiplied ARGB with alpha in
// the most significant byte. Every conversion and every blend routes through
// it, so each format only needs a fetch/store primitive for its storage width
// and a pair of converters described by its Layout.
package pixel

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatInvalid is the zero value and describes no storage.
	FormatInvalid Format = iota

	// FormatMono is 1 bit per pixel, most significant bit first, indexed
	// through a two entry color table.
	FormatMono

	// FormatMonoLSB is 1 bit per pixel, least significant bit first.
	FormatMonoLSB

	// FormatIndexed8 is 8 bits per pixel indexing a color table.
	FormatIndexed8

	// FormatRGB32 is 0xffRRGGBB. The alpha byte is ignored on read.
	FormatRGB32

	// FormatARGB32 is 0xAARRGGBB with straight alpha.
	FormatARGB32

	// FormatARGB32Premultiplied is the canonical layout.
	FormatARGB32Premultiplied

	// FormatRGB16 is 5-6-5 RGB.
	FormatRGB16

	// FormatARGB8565Premultiplied is 24 bits: 8 bit alpha then 5-6-5 RGB.
	FormatARGB8565Premultiplied

	// FormatRGB666 is 24 bits with 6 bits per channel.
	FormatRGB666

	// FormatARGB6666Premultiplied is 24 bits with 6 bits per channel.
	FormatARGB6666Premultiplied

	// FormatRGB555 is 16 bits with 5 bits per channel.
	FormatRGB555

	// FormatARGB8555Premultiplied is 24 bits: 8 bit alpha then 5-5-5 RGB.
	FormatARGB8555Premultiplied

	// FormatRGB888 is packed 24 bit RGB.
	FormatRGB888

	// FormatRGB444 is 16 bits with 4 bits per channel.
	FormatRGB444

	// FormatARGB4444Premultiplied is 16 bits with 4 bits per channel.
	FormatARGB4444Premultiplied

	// FormatRGBX8888 is byte ordered R, G, B, X in memory.
	FormatRGBX8888

	// FormatRGBA8888 is byte ordered R, G, B, A with straight alpha.
	FormatRGBA8888

	// FormatRGBA8888Premultiplied is byte ordered R, G, B, A, premultiplied.
	FormatRGBA8888Premultiplied

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatCount is the number of entries in per-format dispatch tables.
const FormatCount = int(formatCount)

// BPP is the bits-per-pixel storage class of a format.
type BPP uint8

const (
	BPPNone BPP = iota
	BPP1MSB
	BPP1LSB
	BPP8
	BPP16
	BPP24
	BPP32

	bppCount
)

// Bits returns the storage width in bits.
func (b BPP) Bits() int {
	switch b {
	case BPP1MSB, BPP1LSB:
		return 1
	case BPP8:
		return 8
	case BPP16:
		return 16
	case BPP24:
		return 24
	case BPP32:
		return 32
	default:
		return 0
	}
}

// String returns a string representation of the storage class.
func (b BPP) String() string {
	switch b {
	case BPP1MSB:
		return "1MSB"
	case BPP1LSB:
		return "1LSB"
	case BPP8:
		return "8"
	case BPP16:
		return "16"
	case BPP24:
		return "24"
	case BPP32:
		return "32"
	default:
		return "None"
	}
}

// ConvertFunc converts len(src) pixels into dst. dst and src may be the same
// slice. clut is only consulted by indexed formats.
type ConvertFunc func(dst, src []uint32, layout *Layout, clut []uint32)

// Layout describes the channel geometry of a format and the converters
// between its unpacked pixel words and the canonical pixel.
type Layout struct {
	RedWidth, RedShift     uint8
	GreenWidth, GreenShift uint8
	BlueWidth, BlueShift   uint8
	AlphaWidth, AlphaShift uint8

	Premultiplied bool
	BPP           BPP

	ToARGB32PM   ConvertFunc
	FromARGB32PM ConvertFunc

	// FromRGB32 converts opaque canonical pixels. Nil when the format has
	// no cheaper opaque path.
	FromRGB32 ConvertFunc
}

// layouts is indexed by Format.
var layouts = [formatCount]Layout{
	FormatInvalid: {},
	FormatMono:    {BPP: BPP1MSB, ToARGB32PM: convertIndexedToARGB32PM},
	FormatMonoLSB: {BPP: BPP1LSB, ToARGB32PM: convertIndexedToARGB32PM},
	FormatIndexed8: {
		BPP: BPP8, ToARGB32PM: convertIndexedToARGB32PM,
	},
	FormatRGB32: {
		RedWidth: 8, RedShift: 16, GreenWidth: 8, GreenShift: 8, BlueWidth: 8,
		BPP:          BPP32,
		ToARGB32PM:   convertRGB32ToARGB32PM,
		FromARGB32PM: convertRGB32FromARGB32PM,
		FromRGB32:    convertPassThrough,
	},
	FormatARGB32: {
		RedWidth: 8, RedShift: 16, GreenWidth: 8, GreenShift: 8, BlueWidth: 8,
		AlphaWidth: 8, AlphaShift: 24,
		BPP:          BPP32,
		ToARGB32PM:   convertARGB32ToARGB32PM,
		FromARGB32PM: convertARGB32FromARGB32PM,
	},
	FormatARGB32Premultiplied: {
		RedWidth: 8, RedShift: 16, GreenWidth: 8, GreenShift: 8, BlueWidth: 8,
		AlphaWidth: 8, AlphaShift: 24,
		Premultiplied: true,
		BPP:           BPP32,
		ToARGB32PM:    convertPassThrough,
		FromARGB32PM:  convertPassThrough,
	},
	FormatRGB16: {
		RedWidth: 5, RedShift: 11, GreenWidth: 6, GreenShift: 5, BlueWidth: 5,
		BPP:          BPP16,
		ToARGB32PM:   convertRGB16ToARGB32PM,
		FromARGB32PM: convertRGB16FromARGB32PM,
		FromRGB32:    convertRGB16FromRGB32,
	},
	FormatARGB8565Premultiplied: {
		RedWidth: 5, RedShift: 19, GreenWidth: 6, GreenShift: 13, BlueWidth: 5, BlueShift: 8,
		AlphaWidth: 8, AlphaShift: 0,
		Premultiplied: true,
		BPP:           BPP24,
		ToARGB32PM:    convertToARGB32PM,
		FromARGB32PM:  convertFromARGB32PM,
	},
	FormatRGB666: {
		RedWidth: 6, RedShift: 12, GreenWidth: 6, GreenShift: 6, BlueWidth: 6,
		BPP:          BPP24,
		ToARGB32PM:   convertToRGB32,
		FromARGB32PM: convertFromARGB32PM,
		FromRGB32:    convertFromRGB32,
	},
	FormatARGB6666Premultiplied: {
		RedWidth: 6, RedShift: 12, GreenWidth: 6, GreenShift: 6, BlueWidth: 6,
		AlphaWidth: 6, AlphaShift: 18,
		Premultiplied: true,
		BPP:           BPP24,
		ToARGB32PM:    convertToARGB32PM,
		FromARGB32PM:  convertFromARGB32PM,
	},
	FormatRGB555: {
		RedWidth: 5, RedShift: 10, GreenWidth: 5, GreenShift: 5, BlueWidth: 5,
		BPP:          BPP16,
		ToARGB32PM:   convertToRGB32,
		FromARGB32PM: convertFromARGB32PM,
		FromRGB32:    convertFromRGB32,
	},
	FormatARGB8555Premultiplied: {
		RedWidth: 5, RedShift: 18, GreenWidth: 5, GreenShift: 13, BlueWidth: 5, BlueShift: 8,
		AlphaWidth: 8, AlphaShift: 0,
		Premultiplied: true,
		BPP:           BPP24,
		ToARGB32PM:    convertToARGB32PM,
		FromARGB32PM:  convertFromARGB32PM,
	},
	FormatRGB888: {
		RedWidth: 8, RedShift: 16, GreenWidth: 8, GreenShift: 8, BlueWidth: 8,
		BPP:          BPP24,
		ToARGB32PM:   convertToRGB32,
		FromARGB32PM: convertFromARGB32PM,
		FromRGB32:    convertFromRGB32,
	},
	FormatRGB444: {
		RedWidth: 4, RedShift: 8, GreenWidth: 4, GreenShift: 4, BlueWidth: 4,
		BPP:          BPP16,
		ToARGB32PM:   convertToRGB32,
		FromARGB32PM: convertFromARGB32PM,
		FromRGB32:    convertFromRGB32,
	},
	FormatARGB4444Premultiplied: {
		RedWidth: 4, RedShift: 8, GreenWidth: 4, GreenShift: 4, BlueWidth: 4,
		AlphaWidth: 4, AlphaShift: 12,
		Premultiplied: true,
		BPP:           BPP16,
		ToARGB32PM:    convertToARGB32PM,
		FromARGB32PM:  convertFromARGB32PM,
	},
	FormatRGBX8888: {
		RedWidth: 8, GreenWidth: 8, GreenShift: 8, BlueWidth: 8, BlueShift: 16,
		AlphaShift: 24,
		BPP:          BPP32,
		ToARGB32PM:   convertRGBXToARGB32PM,
		FromARGB32PM: convertRGBXFromARGB32PM,
		FromRGB32:    convertRGBXFromRGB32,
	},
	FormatRGBA8888: {
		RedWidth: 8, GreenWidth: 8, GreenShift: 8, BlueWidth: 8, BlueShift: 16,
		AlphaWidth: 8, AlphaShift: 24,
		BPP:          BPP32,
		ToARGB32PM:   convertRGBA8888ToARGB32PM,
		FromARGB32PM: convertRGBA8888FromARGB32PM,
	},
	FormatRGBA8888Premultiplied: {
		RedWidth: 8, GreenWidth: 8, GreenShift: 8, BlueWidth: 8, BlueShift: 16,
		AlphaWidth: 8, AlphaShift: 24,
		Premultiplied: true,
		BPP:           BPP32,
		ToARGB32PM:    convertRGBA8888PMToARGB32PM,
		FromARGB32PM:  convertRGBA8888PMFromARGB32PM,
	},
}

// Layout returns the channel layout of f. Unknown formats map to the
// empty FormatInvalid layout.
func (f Format) Layout() *Layout {
	if f >= formatCount {
		return &layouts[FormatInvalid]
	}
	return &layouts[f]
}

// BPP returns the storage class of f.
func (f Format) BPP() BPP {
	return f.Layout().BPP
}

// HasAlphaChannel reports whether the format stores an alpha channel.
// Indexed formats report false; their color table decides.
func (f Format) HasAlphaChannel() bool {
	return f.Layout().AlphaWidth > 0
}

// IsIndexed reports whether pixels are color table indices.
func (f Format) IsIndexed() bool {
	return f == FormatMono || f == FormatMonoLSB || f == FormatIndexed8
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f > FormatInvalid && f < formatCount
}

// RowBytes calculates the minimum number of bytes for a row of the given width.
func (f Format) RowBytes(width int) int {
	return (width*f.BPP().Bits() + 7) >> 3
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatMono:
		return "Mono"
	case FormatMonoLSB:
		return "MonoLSB"
	case FormatIndexed8:
		return "Indexed8"
	case FormatRGB32:
		return "RGB32"
	case FormatARGB32:
		return "ARGB32"
	case FormatARGB32Premultiplied:
		return "ARGB32Premultiplied"
	case FormatRGB16:
		return "RGB16"
	case FormatARGB8565Premultiplied:
		return "ARGB8565Premultiplied"
	case FormatRGB666:
		return "RGB666"
	case FormatARGB6666Premultiplied:
		return "ARGB6666Premultiplied"
	case FormatRGB555:
		return "RGB555"
	case FormatARGB8555Premultiplied:
		return "ARGB8555Premultiplied"
	case FormatRGB888:
		return "RGB888"
	case FormatRGB444:
		return "RGB444"
	case FormatARGB4444Premultiplied:
		return "ARGB4444Premultiplied"
	case FormatRGBX8888:
		return "RGBX8888"
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatRGBA8888Premultiplied:
		return "RGBA8888Premultiplied"
	default:
		return "Invalid"
	}
}

// ParseFormat returns the format whose String matches name.
func ParseFormat(name string) (Format, bool) {
	for f := FormatMono; f < formatCount; f++ {
		if f.String() == name {
			return f, true
		}
	}
	return FormatInvalid, false
}
