package pixel

// DestFetchFunc stages length canonical pixels of row y starting at x.
// The result is either buf[:length] or, for formats already in canonical
// layout, a view of the buffer's own memory that is invalidated by any
// later write to that row.
type DestFetchFunc func(buf []uint32, b *Buffer, x, y, length int) []uint32

// DestStoreFunc writes len(buf) canonical pixels to row y starting at x.
type DestStoreFunc func(b *Buffer, x, y int, buf []uint32)

var destFetchTable = [formatCount]DestFetchFunc{
	FormatInvalid:               nil,
	FormatMono:                  destFetchMono,
	FormatMonoLSB:               destFetchMono,
	FormatIndexed8:              nil,
	FormatRGB32:                 destFetchARGB32PM,
	FormatARGB32:                destFetch,
	FormatARGB32Premultiplied:   destFetchARGB32PM,
	FormatRGB16:                 destFetchRGB16,
	FormatARGB8565Premultiplied: destFetch,
	FormatRGB666:                destFetch,
	FormatARGB6666Premultiplied: destFetch,
	FormatRGB555:                destFetch,
	FormatARGB8555Premultiplied: destFetch,
	FormatRGB888:                destFetch,
	FormatRGB444:                destFetch,
	FormatARGB4444Premultiplied: destFetch,
	FormatRGBX8888:              destFetch,
	FormatRGBA8888:              destFetch,
	FormatRGBA8888Premultiplied: destFetch,
}

var destStoreTable = [formatCount]DestStoreFunc{
	FormatInvalid:               nil,
	FormatMono:                  destStoreMono,
	FormatMonoLSB:               destStoreMono,
	FormatIndexed8:              nil,
	FormatRGB32:                 nil,
	FormatARGB32:                destStore,
	FormatARGB32Premultiplied:   nil,
	FormatRGB16:                 destStoreRGB16,
	FormatARGB8565Premultiplied: destStore,
	FormatRGB666:                destStore,
	FormatARGB6666Premultiplied: destStore,
	FormatRGB555:                destStore,
	FormatARGB8555Premultiplied: destStore,
	FormatRGB888:                destStore,
	FormatRGB444:                destStore,
	FormatARGB4444Premultiplied: destStore,
	FormatRGBX8888:              destStore,
	FormatRGBA8888:              destStore,
	FormatRGBA8888Premultiplied: destStore,
}

// DestFetcher returns the destination fetch function of f, or nil when f
// cannot be a compositing target.
func DestFetcher(f Format) DestFetchFunc {
	if f >= formatCount {
		return nil
	}
	return destFetchTable[f]
}

// DestStorer returns the destination store function of f. It is nil for
// targets written in place (ARGB32Premultiplied, RGB32) and for formats
// that cannot be a compositing target.
func DestStorer(f Format) DestStoreFunc {
	if f >= formatCount {
		return nil
	}
	return destStoreTable[f]
}

func destFetchARGB32PM(_ []uint32, b *Buffer, x, y, length int) []uint32 {
	return b.Words32(y)[x : x+length]
}

func destFetchMono(buf []uint32, b *Buffer, x, y, length int) []uint32 {
	row := b.ScanLine(y)
	order := b.format.BPP().BitOrder()
	for i, _n := 0, length; i < _n; i++ {
		if Bit(row, x+i, order) != 0 {
			buf[i] = b.color1
		} else {
			buf[i] = b.color0
		}
	}
	return buf[:length]
}

func destFetchRGB16(buf []uint32, b *Buffer, x, y, length int) []uint32 {
	row := b.ScanLine(y)
	for i, _n := 0, length; i < _n; i++ {
		buf[i] = RGB565To32(Load16(row, x+i))
	}
	return buf[:length]
}

func destFetch(buf []uint32, b *Buffer, x, y, length int) []uint32 {
	l := b.format.Layout()
	raw := FetchPixels(buf, b.ScanLine(y), x, length, l.BPP)
	l.ToARGB32PM(buf[:length], raw, l, b.clut)
	return buf[:length]
}

func destStoreRGB16(b *Buffer, x, y int, buf []uint32) {
	row := b.ScanLine(y)
	for i, p := range buf {
		Store16(row, x+i, RGB32To565(p))
	}
}

// bayer is the 16x16 ordered dither threshold matrix for mono targets.
var bayer = [16][16]uint8{
	{0x01, 0xc0, 0x30, 0xf0, 0x0c, 0xcc, 0x3c, 0xfc, 0x03, 0xc3, 0x33, 0xf3, 0x0f, 0xcf, 0x3f, 0xff},
	{0x80, 0x40, 0xb0, 0x70, 0x8c, 0x4c, 0xbc, 0x7c, 0x83, 0x43, 0xb3, 0x73, 0x8f, 0x4f, 0xbf, 0x7f},
	{0x20, 0xe0, 0x10, 0xd0, 0x2c, 0xec, 0x1c, 0xdc, 0x23, 0xe3, 0x13, 0xd3, 0x2f, 0xef, 0x1f, 0xdf},
	{0xa0, 0x60, 0x90, 0x50, 0xac, 0x6c, 0x9c, 0x5c, 0xa3, 0x63, 0x93, 0x53, 0xaf, 0x6f, 0x9f, 0x5f},
	{0x08, 0xc8, 0x38, 0xf8, 0x04, 0xc4, 0x34, 0xf4, 0x0b, 0xcb, 0x3b, 0xfb, 0x07, 0xc7, 0x37, 0xf7},
	{0x88, 0x48, 0xb8, 0x78, 0x84, 0x44, 0xb4, 0x74, 0x8b, 0x4b, 0xbb, 0x7b, 0x87, 0x47, 0xb7, 0x77},
	{0x28, 0xe8, 0x18, 0xd8, 0x24, 0xe4, 0x14, 0xd4, 0x2b, 0xeb, 0x1b, 0xdb, 0x27, 0xe7, 0x17, 0xd7},
	{0xa8, 0x68, 0x98, 0x58, 0xa4, 0x64, 0x94, 0x54, 0xab, 0x6b, 0x9b, 0x5b, 0xa7, 0x67, 0x97, 0x57},
	{0x02, 0xc2, 0x32, 0xf2, 0x0e, 0xce, 0x3e, 0xfe, 0x01, 0xc1, 0x31, 0xf1, 0x0d, 0xcd, 0x3d, 0xfd},
	{0x82, 0x42, 0xb2, 0x72, 0x8e, 0x4e, 0xbe, 0x7e, 0x81, 0x41, 0xb1, 0x71, 0x8d, 0x4d, 0xbd, 0x7d},
	{0x22, 0xe2, 0x12, 0xd2, 0x2e, 0xee, 0x1e, 0xde, 0x21, 0xe1, 0x11, 0xd1, 0x2d, 0xed, 0x1d, 0xdd},
	{0xa2, 0x62, 0x92, 0x52, 0xae, 0x6e, 0x9e, 0x5e, 0xa1, 0x61, 0x91, 0x51, 0xad, 0x6d, 0x9d, 0x5d},
	{0x0a, 0xca, 0x3a, 0xfa, 0x06, 0xc6, 0x36, 0xf6, 0x09, 0xc9, 0x39, 0xf9, 0x05, 0xc5, 0x35, 0xf5},
	{0x8a, 0x4a, 0xba, 0x7a, 0x86, 0x46, 0xb6, 0x76, 0x89, 0x49, 0xb9, 0x79, 0x85, 0x45, 0xb5, 0x75},
	{0x2a, 0xea, 0x1a, 0xda, 0x26, 0xe6, 0x16, 0xd6, 0x29, 0xe9, 0x19, 0xd9, 0x25, 0xe5, 0x15, 0xd5},
	{0xaa, 0x6a, 0x9a, 0x5a, 0xa6, 0x66, 0x96, 0x56, 0xa9, 0x69, 0x99, 0x59, 0xa5, 0x65, 0x95, 0x55},
}

// BayerThreshold returns the dither threshold for pixel (x, y).
func BayerThreshold(x, y int) uint32 {
	return uint32(bayer[y&15][x&15])
}

// nearestIsColor0 reports whether p is strictly closer to c0 than to c1 by
// squared RGB distance.
func nearestIsColor0(p, c0, c1 uint32) bool {
	dist := func(a, b uint32) int {
		dr := int(Red(a)) - int(Red(b))
		dg := int(Green(a)) - int(Green(b))
		db := int(Blue(a)) - int(Blue(b))
		return dr*dr + dg*dg + db*db
	}
	return dist(p, c0) < dist(p, c1)
}

func destStoreMono(b *Buffer, x, y int, buf []uint32) {
	row := b.ScanLine(y)
	order := b.format.BPP().BitOrder()
	if b.monoWithColorMap {
		for i, p := range buf {
			var bit uint32
			switch {
			case p == b.color0:
			case p == b.color1:
				bit = 1
			case !nearestIsColor0(p, b.color0, b.color1):
				bit = 1
			}
			SetBit(row, x+i, order, bit)
		}
		return
	}
	for i, p := range buf {
		var bit uint32
		if Gray(p) < BayerThreshold(x+i, y) {
			bit = 1
		}
		SetBit(row, x+i, order, bit)
	}
}

func destStore(b *Buffer, x, y int, buf []uint32) {
	l := b.format.Layout()
	convert := l.FromARGB32PM
	if l.FromRGB32 != nil {
		convert = l.FromRGB32
	}

	row := b.ScanLine(y)
	tmp := GetScratch()
	defer PutScratch(tmp)

	for len(buf) > 0 {
		n := min(len(buf), BufferSize)
		out := tmp[:n]
		convert(out, buf[:n], l, nil)
		StorePixels(row, out, x, l.BPP)
		buf = buf[n:]
		x += n
	}
}
