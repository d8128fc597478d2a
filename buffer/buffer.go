// Package buffer implements the growable byte-string container the URL
// parser and setters assemble canonical output into: a thin
// domain-specific layer over bytesutil.ByteBuffer, the same pooled
// buffer used elsewhere in this codebase for payload assembly.
package buffer

import (
	"github.com/VictoriaMetrics/VictoriaMetrics/lib/bytesutil"
)

// Pool is a pool of reusable Buffers, mirroring
// bytesutil.ByteBufferPool's Get/Put lifecycle.
type Pool struct {
	pool bytesutil.ByteBufferPool
}

// Get returns a Buffer from the pool, or a freshly allocated one.
func (p *Pool) Get() *Buffer {
	return &Buffer{bb: p.pool.Get()}
}

// Put returns buf to the pool after resetting it.
func (p *Pool) Put(buf *Buffer) {
	p.pool.Put(buf.bb)
	buf.bb = nil
}

// Buffer is a growable byte sequence supporting the splice operations
// the state machine and setters need: append, prepend, insert at an
// offset, replace a span, erase a span, and take substring views.
// Offsets into a Buffer are byte indices, never pointers, so growth
// never invalidates a cursor recorded before the growth.
type Buffer struct {
	bb *bytesutil.ByteBuffer
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{bb: &bytesutil.ByteBuffer{}}
}

// Reset empties the buffer without releasing its backing array.
func (b *Buffer) Reset() {
	b.bb.Reset()
}

// Len returns the number of bytes currently stored.
func (b *Buffer) Len() uint32 {
	return uint32(len(b.bb.B))
}

// Bytes returns the buffer's full backing slice. Callers must not
// retain it across a mutating call.
func (b *Buffer) Bytes() []byte {
	return b.bb.B
}

// Reserve hints that the buffer will grow to at least n bytes; it is a
// hint, not a cap; growth beyond n is not an error.
func (b *Buffer) Reserve(n uint32) {
	if uint32(cap(b.bb.B)) >= n {
		return
	}
	grown := make([]byte, len(b.bb.B), n)
	copy(grown, b.bb.B)
	b.bb.B = grown
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.bb.B = append(b.bb.B, c)
}

// AppendSlice appends s verbatim.
func (b *Buffer) AppendSlice(s []byte) {
	b.bb.B = append(b.bb.B, s...)
}

// AppendString appends s verbatim without an intermediate allocation.
func (b *Buffer) AppendString(s string) {
	b.bb.B = append(b.bb.B, s...)
}

// Prepend inserts s at the front of the buffer.
func (b *Buffer) Prepend(s []byte) {
	b.Insert(0, s)
}

// Insert splices s into the buffer at byte offset at, shifting
// everything from at onward to the right.
func (b *Buffer) Insert(at uint32, s []byte) {
	if len(s) == 0 {
		return
	}
	n := uint32(len(b.bb.B))
	if at > n {
		at = n
	}
	grown := make([]byte, n+uint32(len(s)))
	copy(grown, b.bb.B[:at])
	copy(grown[at:], s)
	copy(grown[at+uint32(len(s)):], b.bb.B[at:])
	b.bb.B = grown
}

// Replace overwrites the span [start, end) with s, growing or
// shrinking the buffer as needed. It returns the signed byte delta
// (len(s) - (end-start)) so callers can shift downstream offsets.
func (b *Buffer) Replace(start, end uint32, s []byte) int64 {
	n := uint32(len(b.bb.B))
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	delta := int64(len(s)) - int64(end-start)
	grown := make([]byte, 0, n+uint32(max64(delta, 0)))
	grown = append(grown, b.bb.B[:start]...)
	grown = append(grown, s...)
	grown = append(grown, b.bb.B[end:]...)
	b.bb.B = grown
	return delta
}

// Erase removes the span [start, end), returning the negative byte
// delta applied.
func (b *Buffer) Erase(start, end uint32) int64 {
	return b.Replace(start, end, nil)
}

// Truncate discards everything from n onward.
func (b *Buffer) Truncate(n uint32) {
	if n > uint32(len(b.bb.B)) {
		return
	}
	b.bb.B = b.bb.B[:n]
}

// Substring returns a view of b.Bytes()[start:end], clamped to an
// empty slice if the span is invalid or out of range. Callers rely on
// this clamp: a username view computed past an opaque-path URL's
// authority-less offsets naturally comes back empty instead of
// panicking.
func (b *Buffer) Substring(start, end uint32) []byte {
	n := uint32(len(b.bb.B))
	if start >= n || start >= end {
		return nil
	}
	if end > n {
		end = n
	}
	return b.bb.B[start:end]
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
