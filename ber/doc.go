// Package ber provides zero-copy views over object identifiers in their
// BER/DER binary form.
//
// An object identifier is a sequence of unsigned 32-bit arcs. In BER the
// first two arcs are packed into a single root byte (arc0*40 + arc1) and every
// following arc is written in big-endian base-128 with continuation bits.
//
// # Types
//
//   - Root: the packed first two arcs, always in range 0..119.
//   - Relative: zero or more arcs with no root byte (a RELATIVE-OID, or the
//     tail of a whole identifier).
//   - Absolute: a root byte followed by a Relative. Never empty.
//   - RelativeBuf, AbsoluteBuf: growable owned storage for building views.
//
// Every live Relative and Absolute holds bytes that already passed
// validation, so no operation re-validates. Views are created by:
//
//	rel, err := ber.NewRelative(data)      // validates
//	abs, err := ber.NewAbsolute(data)      // validates
//	abs := ber.MustAbsolute(constBytes)     // validates, panics on error
//	abs := ber.AbsoluteUnchecked(trusted)   // caller guarantees validity
//
// # Arc Boundaries
//
// Arcs are variable width, so not every byte offset is a legal cut point.
// An offset is an arc boundary when it is 0, the length of the view, or
// directly follows a byte without the continuation bit:
//
//	bytes:     01 | 83 81 02 | 04
//	offsets:  0  1  2  3    4  5
//	boundary: y  y  n  n    y  y
//
// Get returns ok == false for a range that is out of bounds, inverted, or
// cuts an arc in half. Slice and SplitAt panic with an *IndexError instead,
// the same way slicing a Go slice panics:
//
//	rel := ber.MustRelative([]byte{0x01, 0x83, 0x81, 0x02, 0x04})
//	_, ok := rel.Get(1, 3) // false
//	rel.Slice(1, 3)        // panics: byte index 3 is not an arc boundary;
//	                       // it is inside of an arc 49282 (bytes [1:4]) in `.1.49282.4`
//
// Views returned by Get, Slice, SplitAt, CutPrefix, CutSuffix and Tail share
// storage with the view they came from. CopyFrom writes through that shared
// storage.
//
// # Text Form
//
// Absolute renders as "1.3.6.1" and Relative as ".6.1" (or "" when empty).
// ParseAbsolute and ParseRelative accept the same forms; ParseAbsolute also
// tolerates a leading dot.
//
// # Thread Safety
//
// Views are plain values. Concurrent readers are safe; CopyFrom and the Buf
// types must not run concurrently with any other access to the same bytes.
package ber
