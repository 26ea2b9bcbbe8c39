package ber

import (
	"iter"

	"github.com/arloliu/oid/internal/base128"
	"github.com/arloliu/oid/internal/hash"
	"github.com/arloliu/oid/internal/pool"
)

// Relative is a view over zero or more base-128 arcs without a root byte.
//
// The bytes of a Relative always decompose into complete, minimal arcs that
// fit in 32 bits. The zero value is the empty fragment.
type Relative struct {
	b []byte
}

// NewRelative validates data and wraps it without copying.
//
// Parameters:
//   - data: encoded arcs
//
// Returns:
//   - Relative: view sharing storage with data
//   - error: *errs.Base128Error describing the first invalid arc
func NewRelative(data []byte) (Relative, error) {
	if err := base128.Validate(data); err != nil {
		return Relative{}, err
	}

	return RelativeUnchecked(data), nil
}

// RelativeUnchecked wraps data without validation.
//
// The caller must guarantee that data holds complete, minimal 32-bit arcs,
// for example because it was produced by Bytes of another Relative. Every
// operation on a Relative built from invalid bytes is undefined.
func RelativeUnchecked(data []byte) Relative {
	return Relative{b: data[:len(data):len(data)]}
}

// MustRelative is like NewRelative but panics on invalid input.
// It is intended for package-level identifiers built from constant bytes.
func MustRelative(data []byte) Relative {
	r, err := NewRelative(data)
	if err != nil {
		panic(err)
	}

	return r
}

// Bytes returns the encoded arcs. The slice shares storage with the view.
func (r Relative) Bytes() []byte {
	return r.b
}

// Len returns the length of the fragment in bytes.
func (r Relative) Len() int {
	return len(r.b)
}

// IsEmpty reports whether the fragment holds no arcs.
func (r Relative) IsEmpty() bool {
	return len(r.b) == 0
}

// Arcs returns an iterator over the arcs of the fragment.
//
// Example:
//
//	for arc := range rel.Arcs() {
//	    fmt.Println(arc)
//	}
func (r Relative) Arcs() iter.Seq[Arc] {
	return base128.Arcs(r.b)
}

// Count returns the number of arcs.
func (r Relative) Count() int {
	return base128.Count(r.b)
}

// Equal reports whether both fragments hold the same arcs.
func (r Relative) Equal(o Relative) bool {
	return string(r.b) == string(o.b)
}

// Compare orders fragments arc by arc by numeric value. A fragment sorts
// before any longer fragment it is a prefix of.
//
// Returns:
//   - int: -1, 0 or +1
func (r Relative) Compare(o Relative) int {
	a, b := r.b, o.b
	for len(a) > 0 && len(b) > 0 {
		x, n := base128.Next(a)
		y, m := base128.Next(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		a, b = a[n:], b[m:]
	}

	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	default:
		return 0
	}
}

// Hash returns the xxHash64 of the fragment, suitable as a map key
// alongside Equal.
func (r Relative) Hash() uint64 {
	return hash.ID(hash.SeedRelative, r.b)
}

// Clone returns a copy of the fragment backed by newly allocated storage.
func (r Relative) Clone() Relative {
	out := make([]byte, len(r.b))
	copy(out, r.b)

	return Relative{b: out}
}

// String returns the dotted form ".a.b.c", or "" for an empty fragment.
func (r Relative) String() string {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	r.writeText(buf)

	return string(buf.Bytes())
}

// AppendText implements encoding.TextAppender.
func (r Relative) AppendText(dst []byte) ([]byte, error) {
	buf := pool.ByteBuffer{B: dst}
	r.writeText(&buf)

	return buf.B, nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Relative) MarshalText() ([]byte, error) {
	return r.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseRelative.
func (r *Relative) UnmarshalText(text []byte) error {
	parsed, err := ParseRelative(string(text))
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}

func (r Relative) writeText(buf *pool.ByteBuffer) {
	for arc := range r.Arcs() {
		buf.MustWriteByte('.')
		buf.WriteUint(uint64(arc))
	}
}
