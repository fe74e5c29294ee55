package parallel

import "sync"

// BufferPool recycles per-column scratch buffers via sync.Pool, reducing GC
// pressure when many column work items run per frame. Buffers come back
// dirty; the kernel zeroes its working region on entry.
//
// Thread safety: BufferPool is safe for concurrent use.
type BufferPool struct {
	size int
	pool sync.Pool
}

// NewBufferPool creates a pool of float32 buffers of the given size.
func NewBufferPool(size int) *BufferPool {
	p := &BufferPool{size: size}
	p.pool.New = func() any {
		buf := make([]float32, size)
		return &buf
	}
	return p
}

// Get retrieves a buffer from the pool or allocates a new one.
func (p *BufferPool) Get() []float32 {
	return *(p.pool.Get().(*[]float32))
}

// Put returns a buffer to the pool. Buffers of the wrong size are dropped.
func (p *BufferPool) Put(buf []float32) {
	if len(buf) != p.size {
		return
	}
	p.pool.Put(&buf)
}

// Size returns the length of buffers managed by the pool.
func (p *BufferPool) Size() int {
	return p.size
}
