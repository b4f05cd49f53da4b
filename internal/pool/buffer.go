// Package pool recycles the scratch buffers used to assemble snapshot containers.
package pool

import (
	"slices"
	"sync"
)

const (
	// SnapshotBufferSize is the initial capacity of a pooled snapshot buffer:
	// a container header, a label and a well-compressed save.
	SnapshotBufferSize = 16 << 10
	// SnapshotBufferMaxSize is the largest capacity kept for reuse. An
	// uncompressed snapshot of a full save exceeds it and is left to the GC.
	SnapshotBufferMaxSize = 512 << 10
)

// Buffer is a reusable append buffer.
type Buffer struct {
	B []byte
}

// Bytes returns the buffered bytes. The slice is only valid until the buffer
// goes back to its pool.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Reserve makes room for n more bytes without changing the length.
func (b *Buffer) Reserve(n int) {
	b.B = slices.Grow(b.B, n)
}

// Pool hands out Buffers of one initial size and drops those that outgrew maxSize.
type Pool struct {
	pool    sync.Pool
	maxSize int
}

// NewPool returns a Pool of buffers with capacity size. A zero maxSize keeps
// every returned buffer.
func NewPool(size, maxSize int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{B: make([]byte, 0, size)}
			},
		},
		maxSize: maxSize,
	}
}

// Get returns an empty buffer.
func (p *Pool) Get() *Buffer {
	b, _ := p.pool.Get().(*Buffer)
	return b
}

// Put empties b and returns it to the pool. A nil b is ignored.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	if p.maxSize > 0 && cap(b.B) > p.maxSize {
		return
	}

	b.B = b.B[:0]
	p.pool.Put(b)
}

var snapshotPool = NewPool(SnapshotBufferSize, SnapshotBufferMaxSize)

// GetSnapshotBuffer returns a buffer for assembling a packed snapshot.
func GetSnapshotBuffer() *Buffer {
	return snapshotPool.Get()
}

// PutSnapshotBuffer returns a buffer obtained from GetSnapshotBuffer.
func PutSnapshotBuffer(b *Buffer) {
	snapshotPool.Put(b)
}
