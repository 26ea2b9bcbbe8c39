package ber

import "github.com/arloliu/oid/internal/base128"

// Arc is one component of an object identifier.
type Arc = uint32

// Position is a byte offset reported by validation errors.
type Position = uint16

// MaxArcLen is the maximum encoded length of a single Arc in bytes.
const MaxArcLen = base128.MaxLen

// EncodeArc writes the minimal base-128 encoding of arc into the tail of buf
// and returns a single-arc Relative over the written bytes.
//
// Example:
//
//	var buf [ber.MaxArcLen]byte
//	rel := ber.EncodeArc(&buf, 257) // rel.Bytes() == []byte{0x82, 0x01}
func EncodeArc(buf *[MaxArcLen]byte, arc Arc) Relative {
	start := base128.Encode(buf, arc)
	return Relative{b: buf[start:MaxArcLen:MaxArcLen]}
}
