package pixel

import (
	"sync"
	"testing"
)

func TestPool_GetPut(t *testing.T) {
	pool := NewPool(2)

	buf := pool.Get(100)
	if len(buf) != 100 {
		t.Fatalf("Get(100) len = %d", len(buf))
	}
	buf[0] = 42
	pool.Put(buf)

	again := pool.Get(100)
	if &again[0] != &buf[0] {
		t.Error("expected the pooled buffer to be reused")
	}

	other := pool.Get(50)
	if len(other) != 50 {
		t.Errorf("Get(50) len = %d", len(other))
	}
}

func TestPool_MaxPerBucket(t *testing.T) {
	pool := NewPool(1)
	a, b := pool.Get(8), pool.Get(8)
	pool.Put(a)
	pool.Put(b)
	pool.Put(nil)

	if got := len(pool.buckets[8]); got != 1 {
		t.Errorf("bucket holds %d buffers, want 1", got)
	}
}

func TestScratch_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v uint32) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf := GetScratch()
				if len(buf) != BufferSize {
					t.Errorf("scratch len = %d", len(buf))
					return
				}
				for k := range buf {
					buf[k] = v
				}
				for k := range buf {
					if buf[k] != v {
						t.Errorf("scratch buffer shared between goroutines")
						return
					}
				}
				PutScratch(buf)
			}
		}(uint32(i))
	}
	wg.Wait()
}
