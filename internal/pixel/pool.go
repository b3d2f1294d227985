package pixel

import "sync"

// BufferSize is the capacity, in canonical pixels, of the working buffers
// used by span processing. Runs longer than this are processed in chunks.
const BufferSize = 2048

// Pool is a thread-safe pool of canonical pixel scratch buffers.
//
// Buffers are grouped by length so the bilinear fetchers, which need a few
// odd-sized intermediate rows, and the span loop, which needs BufferSize
// rows, do not evict each other.
//
// Thread safety: All methods are safe for concurrent use. A buffer handed
// out by Get belongs to the caller until Put.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]uint32
	maxSize int // max buffers per bucket
}

// NewPool creates a pool retaining at most maxPerBucket buffers per length.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]uint32),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly n pixels. Contents are unspecified.
func (p *Pool) Get(n int) []uint32 {
	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]uint32, n)
}

// Put returns a buffer to the pool. Nil buffers are ignored.
func (p *Pool) Put(buf []uint32) {
	if buf == nil {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf)
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(16)

// GetScratch returns a BufferSize scratch buffer from the default pool.
func GetScratch() []uint32 {
	return defaultPool.Get(BufferSize)
}

// PutScratch returns a scratch buffer to the default pool.
func PutScratch(buf []uint32) {
	defaultPool.Put(buf)
}

// GetFromDefault retrieves an n pixel buffer from the default pool.
func GetFromDefault(n int) []uint32 {
	return defaultPool.Get(n)
}

// PutToDefault returns a buffer to the default pool.
func PutToDefault(buf []uint32) {
	defaultPool.Put(buf)
}
