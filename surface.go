package drawhelper

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/drawhelper/internal/pixel"
)

// Errors returned by surface, paint and span data constructors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("drawhelper: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("drawhelper: invalid format")

	// ErrStrideTooSmall is returned when a row stride cannot hold a row.
	ErrStrideTooSmall = errors.New("drawhelper: stride too small")

	// ErrDataTooSmall is returned when raw data cannot hold the surface.
	ErrDataTooSmall = errors.New("drawhelper: data too small")

	// ErrUnaligned is returned when 32-bit raw data is not word aligned.
	ErrUnaligned = errors.New("drawhelper: unaligned 32-bit data")

	// ErrNotTarget is returned when a surface format cannot be composed
	// onto, such as Indexed8.
	ErrNotTarget = errors.New("drawhelper: format cannot be a blend target")

	// ErrNilSurface is returned when a required surface is nil.
	ErrNilSurface = errors.New("drawhelper: nil surface")
)

// wrapBufferError maps a pixel package error to the matching sentinel of
// this package, keeping the original in the chain.
func wrapBufferError(err error) error {
	var sentinel error
	switch {
	case errors.Is(err, pixel.ErrInvalidDimensions):
		sentinel = ErrInvalidDimensions
	case errors.Is(err, pixel.ErrInvalidFormat):
		sentinel = ErrInvalidFormat
	case errors.Is(err, pixel.ErrInvalidStride):
		sentinel = ErrStrideTooSmall
	case errors.Is(err, pixel.ErrDataTooSmall):
		sentinel = ErrDataTooSmall
	case errors.Is(err, pixel.ErrUnaligned):
		sentinel = ErrUnaligned
	default:
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Surface is a raster image in one of the supported formats. It is both a
// blend target and a texture source.
//
// Surface implements image.Image; At returns premultiplied color.RGBA
// values.
type Surface struct {
	buf *pixel.Buffer
}

// NewSurface creates a zeroed surface.
func NewSurface(width, height int, format Format) (*Surface, error) {
	b, err := pixel.NewBuffer(width, height, format)
	if err != nil {
		return nil, wrapBufferError(err)
	}
	return &Surface{buf: b}, nil
}

// FromRaw creates a surface over existing data without copying. The caller
// keeps data alive and must not write it while the surface is in use.
func FromRaw(data []byte, width, height int, format Format, stride int) (*Surface, error) {
	b, err := pixel.FromRaw(data, width, height, format, stride)
	if err != nil {
		return nil, wrapBufferError(err)
	}
	return &Surface{buf: b}, nil
}

// FromImage converts img into a new surface of the given format.
func FromImage(img image.Image, format Format) (*Surface, error) {
	if format.IsValid() && !isTarget(format) {
		return nil, fmt.Errorf("%w: %v", ErrNotTarget, format)
	}
	r := img.Bounds()
	s, err := NewSurface(r.Dx(), r.Dy(), format)
	if err != nil {
		return nil, err
	}

	row := pixel.GetScratch()
	defer pixel.PutScratch(row)
	for y := 0; y < s.Height(); y++ {
		for x0 := 0; x0 < s.Width(); x0 += pixel.BufferSize {
			n := min(s.Width()-x0, pixel.BufferSize)
			for i, _n := 0, n; i < _n; i++ {
				c := color.RGBAModel.Convert(img.At(r.Min.X+x0+i, r.Min.Y+y)).(color.RGBA)
				row[i] = uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			}
			s.storeRow(x0, y, row[:n])
		}
	}
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.buf.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.buf.Height() }

// Format returns the pixel format.
func (s *Surface) Format() Format { return s.buf.Format() }

// Stride returns the number of bytes between rows.
func (s *Surface) Stride() int { return s.buf.Stride() }

// Data returns the raw pixel bytes.
func (s *Surface) Data() []byte { return s.buf.Data() }

// ColorTable returns the straight ARGB colour table of an indexed surface.
func (s *Surface) ColorTable() []uint32 { return s.buf.ColorTable() }

// SetColorTable sets the colour table of an indexed surface. A two entry
// table on a mono surface also selects the colours stores match against
// instead of dithering.
func (s *Surface) SetColorTable(clut []uint32) { s.buf.SetColorTable(clut) }

// Pixel returns the canonical pixel at (x, y).
func (s *Surface) Pixel(x, y int) uint32 {
	return s.buf.Pixel(x, y)
}

// SetPixel stores the canonical pixel p at (x, y), converting it to the
// surface format. Points outside the surface are ignored.
func (s *Surface) SetPixel(x, y int, p uint32) {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return
	}
	s.storeRow(x, y, []uint32{p})
}

// isTarget reports whether surfaces of format f can be blended onto.
func isTarget(f Format) bool {
	return f == FormatARGB32Premultiplied || f == FormatRGB32 ||
		pixel.DestFetcher(f) != nil && pixel.DestStorer(f) != nil
}

// storeRow writes canonical pixels to row y starting at x. It reports
// false when the format has no store.
func (s *Surface) storeRow(x, y int, px []uint32) bool {
	switch f := s.Format(); f {
	case FormatARGB32Premultiplied:
		copy(s.buf.Words32(y)[x:], px)
	case FormatRGB32:
		row := s.buf.Words32(y)[x:]
		for i, p := range px {
			row[i] = p | 0xff000000
		}
	default:
		store := pixel.DestStorer(f)
		if store == nil {
			return false
		}
		store(s.buf, x, y, px)
	}
	return true
}

// Clear sets every byte of the surface to zero.
func (s *Surface) Clear() { s.buf.Clear() }

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width(), s.Height())
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return color.RGBA{}
	}
	p := s.Pixel(x, y)
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: uint8(p >> 24)}
}

// ToRGBA copies the surface into a new image.RGBA.
func (s *Surface) ToRGBA() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for y := 0; y < s.Height(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < s.Width(); x++ {
			p := s.Pixel(x, y)
			row[4*x+0] = uint8(p >> 16)
			row[4*x+1] = uint8(p >> 8)
			row[4*x+2] = uint8(p)
			row[4*x+3] = uint8(p >> 24)
		}
	}
	return img
}
