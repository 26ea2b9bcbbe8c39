package ber

import (
	"bytes"
	"fmt"
)

// HasPrefix reports whether r begins with the arcs of prefix.
func (r Relative) HasPrefix(prefix Relative) bool {
	// A valid prefix always ends on an arc boundary of r when the bytes match.
	return bytes.HasPrefix(r.b, prefix.b)
}

// HasSuffix reports whether r ends with the arcs of suffix.
func (r Relative) HasSuffix(suffix Relative) bool {
	// 81 81 01 ends with the bytes of 81 01, but not with the arc 129.
	return bytes.HasSuffix(r.b, suffix.b) && r.IsArcBoundary(len(r.b)-len(suffix.b))
}

// CutPrefix returns r without prefix and true, or r and false when r does not
// begin with prefix.
func (r Relative) CutPrefix(prefix Relative) (Relative, bool) {
	if !r.HasPrefix(prefix) {
		return r, false
	}

	return Relative{b: r.b[len(prefix.b):]}, true
}

// CutSuffix returns r without suffix and true, or r and false when r does not
// end with suffix.
func (r Relative) CutSuffix(suffix Relative) (Relative, bool) {
	if !r.HasSuffix(suffix) {
		return r, false
	}
	n := len(r.b) - len(suffix.b)

	return Relative{b: r.b[:n:n]}, true
}

// CopyFrom overwrites the bytes of r with the bytes of src in place.
//
// Both fragments are complete arc sequences, so the storage r views stays
// valid. The number of arcs inside the window may change: copying .2.0 over
// the two-byte arc .259 turns .1.259.4 into .1.2.0.4.
//
// CopyFrom panics with an *IndexError when the lengths differ.
func (r Relative) CopyFrom(src Relative) {
	if len(r.b) != len(src.b) {
		shown, truncated := truncateToArcBoundary(r, maxDisplayLength)
		panic(&IndexError{
			Kind:      LengthMismatch,
			Index:     len(src.b),
			End:       len(r.b),
			Subject:   shown.String(),
			Truncated: truncated,
		})
	}
	copy(r.b, src.b)
}

// HasPrefix reports whether a begins with the arcs of prefix, root included.
func (a Absolute) HasPrefix(prefix Absolute) bool {
	return a.b[0] == prefix.b[0] && a.Tail().HasPrefix(prefix.Tail())
}

// HasSuffix reports whether the tail of a ends with suffix.
func (a Absolute) HasSuffix(suffix Relative) bool {
	return a.Tail().HasSuffix(suffix)
}

// CutPrefix returns the arcs of a after prefix. It returns false when a does
// not begin with prefix.
func (a Absolute) CutPrefix(prefix Absolute) (Relative, bool) {
	if a.b[0] != prefix.b[0] {
		return Relative{}, false
	}
	rest, ok := a.Tail().CutPrefix(prefix.Tail())
	if !ok {
		return Relative{}, false
	}

	return rest, true
}

// CutSuffix returns a without the trailing arcs of suffix. It returns a and
// false when a does not end with suffix.
//
// Example:
//
//	abs, _ := ber.ParseAbsolute("0.16.1.259.132")
//	suffix, _ := ber.ParseRelative(".132")
//	head, _ := abs.CutSuffix(suffix) // 0.16.1.259
func (a Absolute) CutSuffix(suffix Relative) (Absolute, bool) {
	head, ok := a.Tail().CutSuffix(suffix)
	if !ok {
		return a, false
	}

	return a.withTail(head.b), true
}

// GoString renders the identifier with its byte form, for %#v.
func (a Absolute) GoString() string {
	return fmt.Sprintf("ber.Absolute(%s % x)", a.String(), a.b)
}

// GoString renders the fragment with its byte form, for %#v.
func (r Relative) GoString() string {
	return fmt.Sprintf("ber.Relative(%q % x)", r.String(), r.b)
}
