package image

import "sync"

// Pool is a thread-safe pool for reusing scratch buffers.
//
// Pool groups buffers by their dimensions and depth. The smooth scaler takes
// its 32-bit intermediates from here, which keeps repeated scaling of
// same-sized surfaces from allocating on every call.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical buffer specifications.
type poolKey struct {
	width  int
	height int
	size   int
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buf),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed, tightly packed buffer from the pool or creates a
// new one. Returns nil for negative dimensions or a nil codec.
func (p *Pool) Get(width, height int, codec Codec) *Buf {
	if codec == nil {
		return nil
	}
	key := poolKey{width: width, height: height, size: codec.Size()}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.codec = codec
		buf.Clear()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewBuf(width, height, codec)
	if err != nil {
		return nil
	}
	return buf
}

// Put returns a buffer to the pool for reuse.
// Views and buffers with padded strides are discarded; so is anything that
// would overflow the bucket.
func (p *Pool) Put(buf *Buf) {
	if buf == nil || buf.off != 0 || buf.stride != buf.width*buf.codec.Size() {
		return
	}

	key := poolKey{width: buf.width, height: buf.height, size: buf.codec.Size()}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers across all buckets.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(4)

// GetScratch retrieves a buffer from the default pool.
func GetScratch(width, height int, codec Codec) *Buf {
	return defaultPool.Get(width, height, codec)
}

// PutScratch returns a buffer to the default pool.
func PutScratch(buf *Buf) {
	defaultPool.Put(buf)
}
