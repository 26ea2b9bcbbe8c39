package ber

import (
	"errors"
	"iter"
	"math"

	"github.com/arloliu/oid/errs"
	"github.com/arloliu/oid/internal/base128"
	"github.com/arloliu/oid/internal/hash"
	"github.com/arloliu/oid/internal/pool"
)

// Absolute is a view over a whole object identifier: one root byte followed
// by a Relative tail sharing the same storage.
//
// An Absolute is never empty. The zero value is not a valid identifier; obtain
// one through NewAbsolute, ParseAbsolute, Root.Absolute or an AbsoluteBuf.
type Absolute struct {
	b []byte
}

// NewAbsolute validates data and wraps it without copying.
//
// Parameters:
//   - data: root byte followed by encoded arcs
//
// Returns:
//   - Absolute: view sharing storage with data
//   - error: errs.ErrEmpty for empty input, *errs.RootError for a root byte
//     above MaxRootByte, or *errs.Base128Error for an invalid tail. Base-128
//     error positions are offsets into data, counting the root byte.
func NewAbsolute(data []byte) (Absolute, error) {
	if err := checkAbsolute(data); err != nil {
		return Absolute{}, err
	}

	return AbsoluteUnchecked(data), nil
}

func checkAbsolute(data []byte) error {
	if len(data) == 0 {
		return errs.ErrEmpty
	}
	if err := CheckRootByte(data[0]); err != nil {
		return err
	}
	if err := base128.Validate(data[1:]); err != nil {
		var b128 *errs.Base128Error
		if errors.As(err, &b128) && b128.Pos < math.MaxUint16 {
			b128.Pos++
		}

		return err
	}

	return nil
}

// AbsoluteUnchecked wraps data without validation.
//
// The caller must guarantee that data is non-empty, that data[0] is at most
// MaxRootByte and that data[1:] is a valid Relative.
func AbsoluteUnchecked(data []byte) Absolute {
	return Absolute{b: data[:len(data):len(data)]}
}

// MustAbsolute is like NewAbsolute but panics on invalid input.
// It is intended for package-level identifiers built from constant bytes.
func MustAbsolute(data []byte) Absolute {
	a, err := NewAbsolute(data)
	if err != nil {
		panic(err)
	}

	return a
}

// Bytes returns the encoded identifier. The slice shares storage with the view.
func (a Absolute) Bytes() []byte {
	return a.b
}

// Len returns the length of the identifier in bytes; always at least 1.
func (a Absolute) Len() int {
	return len(a.b)
}

// Root returns the first two arcs.
func (a Absolute) Root() Root {
	return Root{b: a.b[0]}
}

// Tail returns every arc after the root as a view sharing storage.
func (a Absolute) Tail() Relative {
	return Relative{b: a.b[1:]}
}

// Arcs returns an iterator over all arcs, starting with the two root arcs.
//
// Example:
//
//	abs := ber.MustAbsolute([]byte{0x2b, 0x06, 0x01})
//	for arc := range abs.Arcs() {
//	    fmt.Println(arc) // 1, 3, 6, 1
//	}
func (a Absolute) Arcs() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		arc0, arc1 := a.Root().Arcs()
		if !yield(Arc(arc0)) || !yield(Arc(arc1.v)) {
			return
		}
		for arc := range a.Tail().Arcs() {
			if !yield(arc) {
				return
			}
		}
	}
}

// Count returns the number of arcs, including both root arcs.
func (a Absolute) Count() int {
	return 2 + a.Tail().Count()
}

// Equal reports whether both identifiers hold the same arcs.
func (a Absolute) Equal(o Absolute) bool {
	return string(a.b) == string(o.b)
}

// Compare orders identifiers arc by arc by numeric value.
func (a Absolute) Compare(o Absolute) int {
	switch x, y := a.b[0], o.b[0]; {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return a.Tail().Compare(o.Tail())
}

// Hash returns the xxHash64 of the identifier. It differs from the Hash of a
// Relative holding the same bytes.
func (a Absolute) Hash() uint64 {
	return hash.ID(hash.SeedAbsolute, a.b)
}

// Clone returns a copy of the identifier backed by newly allocated storage.
func (a Absolute) Clone() Absolute {
	out := make([]byte, len(a.b))
	copy(out, a.b)

	return Absolute{b: out}
}

// Join returns a new identifier made of a followed by the arcs of tail.
func (a Absolute) Join(tail Relative) Absolute {
	out := make([]byte, 0, len(a.b)+len(tail.b))
	out = append(out, a.b...)
	out = append(out, tail.b...)

	return Absolute{b: out}
}

// Parent returns the identifier without its last arc. It returns false when
// the identifier consists of the root alone.
func (a Absolute) Parent() (Absolute, bool) {
	tail := a.Tail()
	if tail.IsEmpty() {
		return Absolute{}, false
	}

	i := tail.Len() - 1
	for !tail.IsArcBoundary(i) {
		i--
	}

	return a.withTail(tail.b[:i]), true
}

// withTail re-attaches the root to tail, which must be a prefix view of
// a.Tail() starting at the same byte.
func (a Absolute) withTail(tail []byte) Absolute {
	n := 1 + len(tail)
	return Absolute{b: a.b[:n:n]}
}

// String returns the dotted form "a.b.c".
func (a Absolute) String() string {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	a.writeText(buf)

	return string(buf.Bytes())
}

// AppendText implements encoding.TextAppender.
func (a Absolute) AppendText(dst []byte) ([]byte, error) {
	buf := pool.ByteBuffer{B: dst}
	a.writeText(&buf)

	return buf.B, nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Absolute) MarshalText() ([]byte, error) {
	return a.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseAbsolute.
func (a *Absolute) UnmarshalText(text []byte) error {
	parsed, err := ParseAbsolute(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

func (a Absolute) writeText(buf *pool.ByteBuffer) {
	buf.B = a.Root().appendText(buf.B)
	a.Tail().writeText(buf)
}
