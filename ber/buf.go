package ber

import (
	"github.com/arloliu/oid/internal/base128"
	"github.com/arloliu/oid/internal/pool"
)

// RelativeBuf is a growable fragment. It only ever appends complete arcs, so
// the view returned by Relative is always valid.
//
// The zero value is an empty buffer ready to use. A RelativeBuf must not be
// copied after first use.
type RelativeBuf struct {
	buf pool.ByteBuffer
}

// NewRelativeBuf creates an empty buffer with room for capacity bytes.
func NewRelativeBuf(capacity int) *RelativeBuf {
	return &RelativeBuf{buf: *pool.NewByteBuffer(max(capacity, 0))}
}

// RelativeBufFrom creates a buffer holding a copy of r.
func RelativeBufFrom(r Relative) *RelativeBuf {
	rb := NewRelativeBuf(len(r.b))
	rb.buf.MustWrite(r.b)

	return rb
}

// Push appends one arc.
func (rb *RelativeBuf) Push(arc Arc) {
	rb.buf.Grow(MaxArcLen)
	rb.buf.B = base128.Append(rb.buf.B, arc)
}

// Extend appends every arc of r.
func (rb *RelativeBuf) Extend(r Relative) {
	rb.buf.Grow(len(r.b))
	rb.buf.MustWrite(r.b)
}

// Pop removes the last arc and returns it. It returns false when the buffer
// is empty.
func (rb *RelativeBuf) Pop() (Arc, bool) {
	return popArc(&rb.buf, 0)
}

// Relative returns a view of the current contents. The view shares storage
// with the buffer and stays valid until the next mutation.
func (rb *RelativeBuf) Relative() Relative {
	n := rb.buf.Len()
	return Relative{b: rb.buf.B[:n:n]}
}

// Bytes returns the encoded arcs, sharing storage with the buffer.
func (rb *RelativeBuf) Bytes() []byte {
	return rb.buf.Bytes()
}

// Len returns the encoded length in bytes.
func (rb *RelativeBuf) Len() int {
	return rb.buf.Len()
}

// Reset empties the buffer, keeping its storage.
func (rb *RelativeBuf) Reset() {
	rb.buf.Reset()
}

func (rb *RelativeBuf) String() string {
	return rb.Relative().String()
}

// AbsoluteBuf is a growable whole identifier. Its first byte is always a
// valid root byte, followed by complete arcs.
//
// The zero value holds the root 0.0. An AbsoluteBuf must not be copied after
// first use.
type AbsoluteBuf struct {
	buf pool.ByteBuffer
}

// NewAbsoluteBuf creates a buffer holding only root.
func NewAbsoluteBuf(root Root) *AbsoluteBuf {
	ab := &AbsoluteBuf{buf: *pool.NewByteBuffer(pool.TextBufferDefaultSize / 4)}
	ab.buf.MustWriteByte(root.b)

	return ab
}

// AbsoluteBufFrom creates a buffer holding a copy of a.
func AbsoluteBufFrom(a Absolute) *AbsoluteBuf {
	ab := &AbsoluteBuf{buf: *pool.NewByteBuffer(len(a.b))}
	ab.buf.MustWrite(a.b)

	return ab
}

func (ab *AbsoluteBuf) ensureRoot() {
	if ab.buf.Len() == 0 {
		ab.buf.MustWriteByte(0)
	}
}

// Push appends one arc after the root and any earlier arcs.
func (ab *AbsoluteBuf) Push(arc Arc) {
	ab.ensureRoot()
	ab.buf.Grow(MaxArcLen)
	ab.buf.B = base128.Append(ab.buf.B, arc)
}

// Extend appends every arc of r.
func (ab *AbsoluteBuf) Extend(r Relative) {
	ab.ensureRoot()
	ab.buf.Grow(len(r.b))
	ab.buf.MustWrite(r.b)
}

// Pop removes the last arc after the root and returns it. It returns false
// when only the root is left.
func (ab *AbsoluteBuf) Pop() (Arc, bool) {
	ab.ensureRoot()
	return popArc(&ab.buf, 1)
}

// Absolute returns a view of the current contents. The view shares storage
// with the buffer and stays valid until the next mutation.
func (ab *AbsoluteBuf) Absolute() Absolute {
	ab.ensureRoot()
	n := ab.buf.Len()

	return Absolute{b: ab.buf.B[:n:n]}
}

// Bytes returns the encoded identifier, sharing storage with the buffer.
func (ab *AbsoluteBuf) Bytes() []byte {
	ab.ensureRoot()
	return ab.buf.Bytes()
}

// Len returns the encoded length in bytes, root included.
func (ab *AbsoluteBuf) Len() int {
	return max(ab.buf.Len(), 1)
}

// Reset drops every arc and sets a new root, keeping the storage.
func (ab *AbsoluteBuf) Reset(root Root) {
	ab.buf.Reset()
	ab.buf.MustWriteByte(root.b)
}

func (ab *AbsoluteBuf) String() string {
	return ab.Absolute().String()
}

// popArc removes the last arc stored at or after offset from.
func popArc(buf *pool.ByteBuffer, from int) (Arc, bool) {
	n := buf.Len()
	if n <= from {
		return 0, false
	}

	tail := Relative{b: buf.B[from:n]}
	i := tail.Len() - 1
	for !tail.IsArcBoundary(i) {
		i--
	}
	arc, _ := base128.Next(tail.b[i:])
	buf.Truncate(from + i)

	return arc, true
}
