package ber

import (
	"strconv"

	"github.com/arloliu/oid/errs"
)

// MaxRootByte is the largest valid packed root byte (2*40 + 39).
const MaxRootByte = 2*40 + 39

// Arc0 is the first arc of an identifier. Only the three constants below are valid.
type Arc0 uint8

const (
	ItuT         Arc0 = 0 // ItuT is the itu-t(0) root.
	Iso          Arc0 = 1 // Iso is the iso(1) root.
	JointIsoItuT Arc0 = 2 // JointIsoItuT is the joint-iso-itu-t(2) root.
)

// NewArc0 returns the Arc0 for v.
//
// Returns:
//   - Arc0: the first arc
//   - error: errs.ErrInvalidArc0 if v is not 0, 1 or 2
func NewArc0(v uint8) (Arc0, error) {
	if v > uint8(JointIsoItuT) {
		return 0, errs.ErrInvalidArc0
	}

	return Arc0(v), nil
}

func (a Arc0) String() string {
	switch a {
	case ItuT:
		return "itu-t"
	case Iso:
		return "iso"
	case JointIsoItuT:
		return "joint-iso-itu-t"
	default:
		return "Unknown"
	}
}

// Arc1 is the second arc of an identifier, in range 0..39.
type Arc1 struct {
	v uint8
}

// NewArc1 returns the Arc1 for v.
//
// Returns:
//   - Arc1: the second arc
//   - error: errs.ErrInvalidArc1 if v > 39
func NewArc1(v uint8) (Arc1, error) {
	if v >= 40 {
		return Arc1{}, errs.ErrInvalidArc1
	}

	return Arc1{v: v}, nil
}

// Value returns the arc value.
func (a Arc1) Value() uint8 {
	return a.v
}

// Root is the packed pair of the first two arcs, stored as arc0*40 + arc1.
// The zero value is the root 0.0.
type Root struct {
	b byte
}

// NewRoot packs arc0 and arc1 into a Root.
//
// Packing cannot fail for the Arc0 constants. It panics if arc0 was forged
// by converting an out-of-range integer.
func NewRoot(arc0 Arc0, arc1 Arc1) Root {
	if arc0 > JointIsoItuT {
		panic(errs.ErrInvalidArc0)
	}

	return Root{b: byte(arc0)*40 + arc1.v}
}

// CheckRootByte reports whether b is a valid packed root byte.
//
// Returns:
//   - error: nil, or *errs.RootError when b > MaxRootByte
func CheckRootByte(b uint8) error {
	if b > MaxRootByte {
		return &errs.RootError{Byte: b}
	}

	return nil
}

// RootFromByte returns the Root stored in b.
func RootFromByte(b uint8) (Root, error) {
	if err := CheckRootByte(b); err != nil {
		return Root{}, err
	}

	return Root{b: b}, nil
}

// RootFromArcs validates arc0 and arc1 and packs them.
func RootFromArcs(arc0, arc1 uint8) (Root, error) {
	a0, err := NewArc0(arc0)
	if err != nil {
		return Root{}, err
	}
	a1, err := NewArc1(arc1)
	if err != nil {
		return Root{}, err
	}

	return NewRoot(a0, a1), nil
}

// Byte returns the packed byte.
func (r Root) Byte() uint8 {
	return r.b
}

// Arcs unpacks the root into its two arcs.
func (r Root) Arcs() (Arc0, Arc1) {
	return Arc0(r.b / 40), Arc1{v: r.b % 40}
}

// Absolute returns the one-byte identifier consisting of the root alone.
func (r Root) Absolute() Absolute {
	return Absolute{b: []byte{r.b}}
}

func (r Root) String() string {
	return string(r.appendText(make([]byte, 0, 5)))
}

func (r Root) appendText(dst []byte) []byte {
	arc0, arc1 := r.Arcs()
	dst = strconv.AppendUint(dst, uint64(arc0), 10)
	dst = append(dst, '.')

	return strconv.AppendUint(dst, uint64(arc1.v), 10)
}
