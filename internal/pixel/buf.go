package pixel

import (
	"errors"
	"fmt"
	"unsafe"
)

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixel: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixel: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixel: data buffer too small")

	// ErrUnaligned is returned when 32-bit pixel data does not start on a
	// word boundary or its stride is not a multiple of four.
	ErrUnaligned = errors.New("pixel: 32-bit data must be word aligned")
)

// Buffer is a raw raster: rows of packed pixels in one of the formats of
// this package, addressed through ScanLine.
//
// Mono buffers carry two colors used when reading bits back as canonical
// pixels. When the buffer was given a two entry color table those colors
// come from the table and stores match against them; otherwise stores
// dither.
//
// Buffer does no locking. Concurrent writers must use disjoint rows.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format

	clut             []uint32
	color0, color1   uint32
	monoWithColorMap bool
}

// NewBuffer creates a zeroed buffer with the minimal word-aligned stride.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := (format.RowBytes(width) + 3) &^ 3
	// Allocate as words so 32-bit rows can be viewed in place.
	words := make([]uint32, stride/4*height)
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), len(words)*4)

	b := &Buffer{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}
	b.resetMonoColors()
	return b, nil
}

// FromRaw creates a Buffer over existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Buffer.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	minStride := format.RowBytes(width)
	if stride < minStride {
		return nil, ErrInvalidStride
	}

	requiredSize := stride*(height-1) + minStride
	if len(data) < requiredSize {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), requiredSize)
	}

	if format.BPP() == BPP32 && (!Aligned(data) || stride%4 != 0) {
		return nil, ErrUnaligned
	}

	b := &Buffer{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}
	b.resetMonoColors()
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buffer) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Data returns the raw pixel data slice.
func (b *Buffer) Data() []byte {
	return b.data
}

// ScanLine returns the bytes of row y, starting at the first pixel and
// extending to the end of the stride (or the data, for the last row).
func (b *Buffer) ScanLine(y int) []byte {
	start := y * b.stride
	end := start + b.stride
	if end > len(b.data) {
		end = len(b.data)
	}
	return b.data[start:end]
}

// Words32 returns row y as native-endian words. Only meaningful for 32-bit
// formats.
func (b *Buffer) Words32(y int) []uint32 {
	return Words(b.ScanLine(y))[:b.width]
}

// ColorTable returns the color table of an indexed buffer.
func (b *Buffer) ColorTable() []uint32 {
	return b.clut
}

// SetColorTable assigns the straight-alpha color table of an indexed
// buffer. A two entry table on a mono buffer also becomes its pair of
// destination colors.
func (b *Buffer) SetColorTable(clut []uint32) {
	b.clut = clut
	b.resetMonoColors()
}

// MonoColors returns the canonical colors of bit 0 and bit 1.
func (b *Buffer) MonoColors() (color0, color1 uint32) {
	return b.color0, b.color1
}

// MonoWithColorMap reports whether stores match colors against the color
// table instead of dithering.
func (b *Buffer) MonoWithColorMap() bool {
	return b.monoWithColorMap
}

func (b *Buffer) resetMonoColors() {
	b.monoWithColorMap = false
	b.color0, b.color1 = 0xffffffff, 0xff000000
	if b.format.BPP().Bits() == 1 && len(b.clut) == 2 {
		b.monoWithColorMap = true
		b.color0 = Premultiply(b.clut[0])
		b.color1 = Premultiply(b.clut[1])
	}
}

// Pixel returns the canonical pixel at (x, y).
func (b *Buffer) Pixel(x, y int) uint32 {
	raw := FetchPixel(b.ScanLine(y), x, b.format.BPP())
	if b.format == FormatMono || b.format == FormatMonoLSB {
		if raw != 0 {
			return b.color1
		}
		return b.color0
	}
	var out [1]uint32
	l := b.format.Layout()
	l.ToARGB32PM(out[:], []uint32{raw}, l, b.clut)
	return out[0]
}

// SetRaw stores a raw, already packed pixel at (x, y).
func (b *Buffer) SetRaw(x, y int, raw uint32) {
	StorePixels(b.ScanLine(y), []uint32{raw}, x, b.format.BPP())
}

// Raw returns the packed pixel at (x, y).
func (b *Buffer) Raw(x, y int) uint32 {
	return FetchPixel(b.ScanLine(y), x, b.format.BPP())
}

// Clear sets all pixels to zero.
func (b *Buffer) Clear() {
	clear(b.data)
}
