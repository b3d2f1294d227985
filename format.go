package drawhelper

import "github.com/gogpu/drawhelper/internal/pixel"

// Format identifies how a surface packs its pixels.
type Format = pixel.Format

// Supported formats.
const (
	FormatInvalid               = pixel.FormatInvalid
	FormatMono                  = pixel.FormatMono
	FormatMonoLSB               = pixel.FormatMonoLSB
	FormatIndexed8              = pixel.FormatIndexed8
	FormatRGB32                 = pixel.FormatRGB32
	FormatARGB32                = pixel.FormatARGB32
	FormatARGB32Premultiplied   = pixel.FormatARGB32Premultiplied
	FormatRGB16                 = pixel.FormatRGB16
	FormatARGB8565Premultiplied = pixel.FormatARGB8565Premultiplied
	FormatRGB666                = pixel.FormatRGB666
	FormatARGB6666Premultiplied = pixel.FormatARGB6666Premultiplied
	FormatRGB555                = pixel.FormatRGB555
	FormatARGB8555Premultiplied = pixel.FormatARGB8555Premultiplied
	FormatRGB888                = pixel.FormatRGB888
	FormatRGB444                = pixel.FormatRGB444
	FormatARGB4444Premultiplied = pixel.FormatARGB4444Premultiplied
	FormatRGBX8888              = pixel.FormatRGBX8888
	FormatRGBA8888              = pixel.FormatRGBA8888
	FormatRGBA8888Premultiplied = pixel.FormatRGBA8888Premultiplied
)

// ParseFormat returns the format with the given name, such as "RGB16" or
// "ARGB32Premultiplied".
func ParseFormat(name string) (Format, bool) {
	return pixel.ParseFormat(name)
}

// Premultiply converts a straight ARGB colour to a canonical pixel.
func Premultiply(c uint32) uint32 {
	return pixel.Premultiply(c)
}

// Unpremultiply converts a canonical pixel to straight ARGB.
func Unpremultiply(p uint32) uint32 {
	return pixel.Unpremultiply(p)
}
