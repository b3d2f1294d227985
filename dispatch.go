package drawhelper

import (
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/gogpu/drawhelper/internal/blend"
	"github.com/gogpu/drawhelper/internal/geom"
	"github.com/gogpu/drawhelper/internal/gradient"
	"github.com/gogpu/drawhelper/internal/pixel"
	"github.com/gogpu/drawhelper/internal/texture"
)

// Features describes the processor capabilities the dispatch tables are
// built for.
type Features struct {
	// Wide selects the 16-lane batch kernels.
	Wide bool

	// Name labels the backend in logs. Empty selects "scalar" or "wide".
	Name string
}

// DetectFeatures inspects the running CPU.
func DetectFeatures() Features {
	switch {
	case cpu.X86.HasAVX2:
		return Features{Wide: true, Name: "avx2"}
	case cpu.X86.HasSSE41:
		return Features{Wide: true, Name: "sse4.1"}
	case cpu.ARM64.HasASIMD:
		return Features{Wide: true, Name: "asimd"}
	}
	return Features{Name: "scalar"}
}

// Tables holds every kernel a SpanData dispatches to. Tables are never
// modified after NewTables returns and may be shared between goroutines.
type Tables struct {
	name string

	blend *blend.Table

	fetch     func(bt texture.BlendType, f Format) texture.Fetcher
	gradient  func(buf []uint32, d *gradient.Data, m *geom.Matrix, y, x, length int) []uint32
	destFetch func(f Format) pixel.DestFetchFunc
	destStore func(f Format) pixel.DestStoreFunc

	memfill32 func(dst []uint32, v uint32)
	memfill16 func(row []byte, x, n int, v uint32)
}

// NewTables builds the tables for f. The scalar tables are the reference
// every other backend matches bit for bit.
func NewTables(f Features) *Tables {
	t := &Tables{
		name:      f.Name,
		blend:     blend.Scalar(),
		fetch:     texture.FetchFunc,
		gradient:  gradient.Fetch,
		destFetch: pixel.DestFetcher,
		destStore: pixel.DestStorer,
		memfill32: memfill32,
		memfill16: memfill16,
	}
	if f.Wide {
		t.blend = blend.Wide()
		t.memfill32 = memfill32Doubling
		t.memfill16 = memfill16Pairs
		if t.name == "" {
			t.name = "wide"
		}
	}
	if t.name == "" {
		t.name = "scalar"
	}
	Logger().Debug("drawhelper: dispatch tables built", "backend", t.name, "wide", f.Wide)
	return t
}

// Name returns the backend label.
func (t *Tables) Name() string { return t.name }

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// DefaultTables returns the tables for the running CPU, built on first use.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTables(DetectFeatures())
	})
	return defaultTables
}

func memfill32(dst []uint32, v uint32) {
	for i := range dst {
		dst[i] = v
	}
}

// memfill32Doubling seeds a short prefix and doubles it with copy.
func memfill32Doubling(dst []uint32, v uint32) {
	if len(dst) == 0 {
		return
	}
	dst[0] = v
	for n := 1; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}

// memfill16 stores n 16-bit pixels starting at column x.
func memfill16(row []byte, x, n int, v uint32) {
	for i, _n := 0, n; i < _n; i++ {
		pixel.Store16(row, x+i, v)
	}
}

// memfill16Pairs writes two pixels per 32-bit store when the row is word
// aligned.
func memfill16Pairs(row []byte, x, n int, v uint32) {
	if n < 4 || !pixel.Aligned(row) {
		memfill16(row, x, n, v)
		return
	}
	if x&1 != 0 {
		pixel.Store16(row, x, v)
		x++
		n--
	}
	pairs := n / 2
	words := pixel.Words(row[2*x : 2*x+4*pairs])
	memfill32Doubling(words, v&0xffff|v<<16)
	if n&1 != 0 {
		pixel.Store16(row, x+2*pairs, v)
	}
}
