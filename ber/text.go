package ber

import (
	"strconv"
	"strings"

	"github.com/arloliu/oid/errs"
	"github.com/arloliu/oid/internal/base128"
	"github.com/arloliu/oid/internal/pool"
)

// ParseAbsolute parses the dotted-decimal form "a.b.c" of a whole identifier.
// A single leading dot is accepted and ignored.
//
// Parameters:
//   - s: text such as "1.3.6.1.4.1" or ".1.3.6.1.4.1"
//
// Returns:
//   - Absolute: identifier backed by newly allocated storage
//   - error: *errs.ParseError describing the first problem found
//
// Example:
//
//	abs, err := ber.ParseAbsolute("2.16.840.1.101.3.4.1.42")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("% x\n", abs.Bytes()) // 60 86 48 01 65 03 04 01 2a
func ParseAbsolute(s string) (Absolute, error) {
	if s == "" || s == "." {
		return Absolute{}, &errs.ParseError{Kind: errs.IntegerExpected, Pos: 0}
	}
	if err := checkText(s); err != nil {
		return Absolute{}, err
	}

	s, off := stripLeadingDot(s)

	field, rest, more := strings.Cut(s, ".")
	v, err := strconv.ParseUint(field, 10, 8)
	if err != nil {
		return Absolute{}, overflowAt(off)
	}
	arc0, err := NewArc0(uint8(v))
	if err != nil {
		return Absolute{}, overflowAt(off)
	}
	if !more {
		return Absolute{}, &errs.ParseError{Kind: errs.MissingSecondArc}
	}
	off += len(field) + 1

	field, rest, more = strings.Cut(rest, ".")
	v, err = strconv.ParseUint(field, 10, 8)
	if err != nil {
		return Absolute{}, overflowAt(off)
	}
	arc1, err := NewArc1(uint8(v))
	if err != nil {
		return Absolute{}, overflowAt(off)
	}
	off += len(field) + 1

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	buf.MustWriteByte(NewRoot(arc0, arc1).Byte())
	if more {
		if err := appendArcs(buf, rest, off); err != nil {
			return Absolute{}, err
		}
	}

	return Absolute{b: buf.Clone()}, nil
}

// ParseRelative parses the dotted-decimal form ".a.b.c" of a fragment.
//
// The leading dot is optional. Both "" and "." denote the empty fragment.
//
// Returns:
//   - Relative: fragment backed by newly allocated storage
//   - error: *errs.ParseError describing the first problem found
func ParseRelative(s string) (Relative, error) {
	if err := checkText(s); err != nil {
		return Relative{}, err
	}

	s, off := stripLeadingDot(s)
	if s == "" {
		return Relative{}, nil
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	if err := appendArcs(buf, s, off); err != nil {
		return Relative{}, err
	}

	return Relative{b: buf.Clone()}, nil
}

// checkText rejects foreign characters, empty arcs and a trailing dot.
func checkText(s string) error {
	pos := 0
	for _, c := range s {
		if (c < '0' || c > '9') && c != '.' {
			return &errs.ParseError{Kind: errs.InvalidChar, Pos: pos}
		}
		pos++
	}
	if i := strings.Index(s, ".."); i >= 0 {
		return &errs.ParseError{Kind: errs.IntegerExpected, Pos: i}
	}
	if len(s) > 1 && s[len(s)-1] == '.' {
		return &errs.ParseError{Kind: errs.IntegerExpected, Pos: len(s) - 1}
	}

	return nil
}

func stripLeadingDot(s string) (string, int) {
	if strings.HasPrefix(s, ".") {
		return s[1:], 1
	}

	return s, 0
}

// appendArcs encodes the dot-separated arcs of s into buf. off is the byte
// offset of s within the caller's input.
func appendArcs(buf *pool.ByteBuffer, s string, off int) error {
	for field := range strings.SplitSeq(s, ".") {
		v, err := strconv.ParseUint(field, 10, base128.ArcBits)
		if err != nil {
			return overflowAt(off)
		}
		buf.B = base128.Append(buf.B, uint32(v))
		off += len(field) + 1
	}

	return nil
}

func overflowAt(pos int) error {
	return &errs.ParseError{Kind: errs.Overflow, Pos: pos}
}
