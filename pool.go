package pix

import "sync"

// Pool reuses Buffers across decode operations. Buffers are grouped by
// dimensions and descriptor, so identically shaped allocations are
// recycled instead of churning the GC — the common case for animation
// decoding and batch transcoding.
//
// All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identically shaped buffers.
type poolKey struct {
	width  int
	height int
	desc   Descriptor
}

// NewPool creates a buffer pool retaining at most maxPerBucket buffers
// of each shape. Zero means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get returns a zero-filled buffer with the given shape, reusing a
// pooled one when available.
func (p *Pool) Get(width, height int, desc Descriptor) (*Buffer, error) {
	key := poolKey{width: width, height: height, desc: desc}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf.data)
		Logger().Debug("buffer pool hit", "width", width, "height", height, "format", desc.String())
		return buf, nil
	}
	p.mu.Unlock()

	Logger().Debug("buffer pool miss", "width", width, "height", height, "format", desc.String())
	return NewBuffer(width, height, desc)
}

// Put returns a buffer to the pool for reuse. The caller must not use
// the buffer afterwards. Nil buffers, relinquished buffers and buffers
// beyond the bucket capacity are discarded.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil || buf.data == nil {
		return
	}

	key := poolKey{width: buf.width, height: buf.height, desc: buf.desc}

	// Drop pipeline state so a recycled buffer starts fresh.
	buf.color = nil
	buf.ws = WorkingNative

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

var defaultPool = NewPool(8)

// GetBuffer retrieves a buffer from the package-level pool.
func GetBuffer(width, height int, desc Descriptor) (*Buffer, error) {
	return defaultPool.Get(width, height, desc)
}

// PutBuffer returns a buffer to the package-level pool.
func PutBuffer(buf *Buffer) {
	defaultPool.Put(buf)
}
