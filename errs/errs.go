// Package errs defines the errors returned by the oid packages.
//
// Validation failures are reported with sentinel errors for classification
// and with typed errors carrying the failure position. Every typed error
// implements Is, so both styles work:
//
//	_, err := ber.NewRelative(data)
//	if errors.Is(err, errs.ErrUnfinishedArc) {
//	    // truncated input
//	}
//
//	var b128 *errs.Base128Error
//	if errors.As(err, &b128) {
//	    fmt.Println("bad arc at byte", b128.Pos)
//	}
package errs

import (
	"errors"
	"fmt"
)

// Decoding errors.
var (
	// ErrEmpty is returned when a whole identifier is decoded from zero bytes.
	ErrEmpty = errors.New("oid: identifier must contain at least the root byte")
	// ErrRootOutOfRange is returned when the packed root byte exceeds 119.
	ErrRootOutOfRange = errors.New("oid: root byte out of range")
	// ErrArcOutOfRange is returned when an encoded arc does not fit in 32 bits.
	ErrArcOutOfRange = errors.New("oid: arc out of range")
	// ErrZeroByteWithCont is returned when an arc starts with the redundant byte 0x80.
	ErrZeroByteWithCont = errors.New("oid: arc starts with 0x80")
	// ErrUnfinishedArc is returned when the input ends inside an arc.
	ErrUnfinishedArc = errors.New("oid: unfinished arc")
	// ErrInvalidArc0 is returned for a first arc outside {0, 1, 2}.
	ErrInvalidArc0 = errors.New("oid: first arc must be 0, 1 or 2")
	// ErrInvalidArc1 is returned for a second arc outside 0..39.
	ErrInvalidArc1 = errors.New("oid: second arc must be in range 0..39")
)

// Text parsing errors.
var (
	ErrInvalidChar      = errors.New("oid: invalid character")
	ErrIntegerExpected  = errors.New("oid: integer expected")
	ErrOverflow         = errors.New("oid: arc overflow")
	ErrMissingSecondArc = errors.New("oid: missing second arc")
)

// DER framing errors.
var (
	ErrInvalidTag    = errors.New("oid: unexpected DER tag")
	ErrInvalidLength = errors.New("oid: invalid DER length")
	ErrTruncated     = errors.New("oid: truncated DER element")
)

// Registry errors.
var (
	ErrInvalidName     = errors.New("oid: invalid name")
	ErrDuplicateName   = errors.New("oid: name already registered")
	ErrDuplicateOID    = errors.New("oid: identifier already registered")
	ErrInvalidCapacity = errors.New("oid: invalid capacity")
)

// Base128ErrorKind classifies a base-128 validation failure.
type Base128ErrorKind uint8

const (
	// OutOfRange means the arc needs more than 32 bits.
	OutOfRange Base128ErrorKind = iota + 1
	// ZeroByteWithCont means the arc begins with 0x80.
	ZeroByteWithCont
	// Unfinished means the input ended while the continuation bit was set.
	Unfinished
)

func (k Base128ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "OutOfRange"
	case ZeroByteWithCont:
		return "ZeroByteWithCont"
	case Unfinished:
		return "Unfinished"
	default:
		return "Unknown"
	}
}

func (k Base128ErrorKind) sentinel() error {
	switch k {
	case OutOfRange:
		return ErrArcOutOfRange
	case ZeroByteWithCont:
		return ErrZeroByteWithCont
	case Unfinished:
		return ErrUnfinishedArc
	default:
		return nil
	}
}

// Base128Error reports an invalid base-128 arc.
//
// Pos is the byte offset of the first byte of the offending arc within the
// input handed to the validating constructor.
type Base128Error struct {
	Kind Base128ErrorKind
	Pos  uint16
}

func (e *Base128Error) Error() string {
	return fmt.Sprintf("oid: invalid base-128 arc at byte %d: %s", e.Pos, e.Kind)
}

// Is reports whether target is the sentinel matching the error kind.
func (e *Base128Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// RootError reports a packed root byte above 119.
type RootError struct {
	Byte uint8
}

func (e *RootError) Error() string {
	return fmt.Sprintf("oid: root byte 0x%02x out of range 0x00..0x77", e.Byte)
}

// Is reports whether target is ErrRootOutOfRange.
func (e *RootError) Is(target error) bool {
	return target == ErrRootOutOfRange
}

// ParseErrorKind classifies a text parsing failure.
type ParseErrorKind uint8

const (
	InvalidChar ParseErrorKind = iota + 1
	IntegerExpected
	Overflow
	MissingSecondArc
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidChar:
		return "InvalidChar"
	case IntegerExpected:
		return "IntegerExpected"
	case Overflow:
		return "Overflow"
	case MissingSecondArc:
		return "MissingSecondArc"
	default:
		return "Unknown"
	}
}

func (k ParseErrorKind) sentinel() error {
	switch k {
	case InvalidChar:
		return ErrInvalidChar
	case IntegerExpected:
		return ErrIntegerExpected
	case Overflow:
		return ErrOverflow
	case MissingSecondArc:
		return ErrMissingSecondArc
	default:
		return nil
	}
}

// ParseError reports a malformed dotted-decimal identifier.
//
// For InvalidChar, Pos counts characters; for the other kinds it is a byte
// offset into the input. Pos is meaningless for MissingSecondArc.
type ParseError struct {
	Kind ParseErrorKind
	Pos  int
}

func (e *ParseError) Error() string {
	if e.Kind == MissingSecondArc {
		return "oid: missing second arc"
	}

	return fmt.Sprintf("oid: %s at %d", e.Kind, e.Pos)
}

// Is reports whether target is the sentinel matching the error kind.
func (e *ParseError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}
