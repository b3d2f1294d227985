package pixel

import (
	"encoding/binary"
	"unsafe"
)

// BitOrder selects which end of a byte holds the first pixel of a 1-bit
// scanline.
type BitOrder uint8

const (
	// MSBFirst stores pixel 0 in bit 7.
	MSBFirst BitOrder = iota
	// LSBFirst stores pixel 0 in bit 0.
	LSBFirst
)

// bitShift returns the shift of pixel i inside its byte.
func (o BitOrder) bitShift(i int) uint {
	if o == MSBFirst {
		return uint(^i & 7)
	}
	return uint(i & 7)
}

// Bit returns pixel i (0 or 1) of a 1-bit scanline.
func Bit(src []byte, i int, order BitOrder) uint32 {
	return uint32(src[i>>3]>>order.bitShift(i)) & 1
}

// SetBit sets pixel i of a 1-bit scanline to 1 when v is non-zero and to 0
// otherwise.
func SetBit(dst []byte, i int, order BitOrder, v uint32) {
	m := byte(1) << order.bitShift(i)
	if v != 0 {
		dst[i>>3] |= m
	} else {
		dst[i>>3] &^= m
	}
}

// BitOrder returns the bit order of a 1-bit storage class.
func (b BPP) BitOrder() BitOrder {
	if b == BPP1LSB {
		return LSBFirst
	}
	return MSBFirst
}

// Load24 reads a packed little-endian 24-bit pixel.
func Load24(src []byte, i int) uint32 {
	o := i * 3
	return uint32(src[o]) | uint32(src[o+1])<<8 | uint32(src[o+2])<<16
}

// Store24 writes a packed little-endian 24-bit pixel.
func Store24(dst []byte, i int, v uint32) {
	o := i * 3
	dst[o] = byte(v)
	dst[o+1] = byte(v >> 8)
	dst[o+2] = byte(v >> 16)
}

// Load16 reads a native-endian 16-bit pixel.
func Load16(src []byte, i int) uint32 {
	return uint32(binary.NativeEndian.Uint16(src[i*2:]))
}

// Store16 writes a native-endian 16-bit pixel.
func Store16(dst []byte, i int, v uint32) {
	binary.NativeEndian.PutUint16(dst[i*2:], uint16(v))
}

// Words returns src reinterpreted as native-endian 32-bit words without
// copying. src must be 4-byte aligned.
func Words(src []byte) []uint32 {
	if len(src) < 4 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(src))), len(src)/4)
}

// Aligned reports whether b starts on a 4-byte boundary.
func Aligned(b []byte) bool {
	return len(b) == 0 || uintptr(unsafe.Pointer(unsafe.SliceData(b)))%4 == 0
}

// FetchPixels unpacks count pixels starting at index from a raw scanline.
//
// For BPP32 the result aliases src; callers must not hold it across writes
// to the scanline. Other classes fill and return dst[:count].
func FetchPixels(dst []uint32, src []byte, index, count int, bpp BPP) []uint32 {
	switch bpp {
	case BPP32:
		return Words(src)[index : index+count]
	case BPP24:
		for i, _n := 0, count; i < _n; i++ {
			dst[i] = Load24(src, index+i)
		}
	case BPP16:
		for i, _n := 0, count; i < _n; i++ {
			dst[i] = Load16(src, index+i)
		}
	case BPP8:
		for i, _n := 0, count; i < _n; i++ {
			dst[i] = uint32(src[index+i])
		}
	case BPP1MSB, BPP1LSB:
		order := bpp.BitOrder()
		for i, _n := 0, count; i < _n; i++ {
			dst[i] = Bit(src, index+i, order)
		}
	default:
		return nil
	}
	return dst[:count]
}

// FetchPixel unpacks the single pixel at index.
func FetchPixel(src []byte, index int, bpp BPP) uint32 {
	switch bpp {
	case BPP32:
		return binary.NativeEndian.Uint32(src[index*4:])
	case BPP24:
		return Load24(src, index)
	case BPP16:
		return Load16(src, index)
	case BPP8:
		return uint32(src[index])
	case BPP1MSB, BPP1LSB:
		return Bit(src, index, bpp.BitOrder())
	default:
		return 0
	}
}

// StorePixels packs len(src) raw pixels into a scanline starting at index.
func StorePixels(dst []byte, src []uint32, index int, bpp BPP) {
	switch bpp {
	case BPP32:
		copy(Words(dst)[index:], src)
	case BPP24:
		for i, p := range src {
			Store24(dst, index+i, p)
		}
	case BPP16:
		for i, p := range src {
			Store16(dst, index+i, p)
		}
	case BPP8:
		for i, p := range src {
			dst[index+i] = byte(p)
		}
	case BPP1MSB, BPP1LSB:
		order := bpp.BitOrder()
		for i, p := range src {
			SetBit(dst, index+i, order, p)
		}
	}
}
