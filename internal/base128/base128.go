package base128

import (
	"iter"
	"math"

	"github.com/arloliu/oid/errs"
)

const (
	// ArcBits is the width of a single arc.
	ArcBits = 32
	// MaxLen is the maximum encoded length of a single arc in bytes.
	MaxLen = (ArcBits + 6) / 7

	// ContinuationBit marks every byte of an arc except the last.
	ContinuationBit = 0x80
	// payloadMask selects the 7 value bits of an encoded byte.
	payloadMask = 0x7f

	// The leading byte of a maximal arc can only carry ArcBits%7 bits. A
	// leading byte with any bit above those set needs one more byte than
	// the remaining groups alone would.
	firstByteBits = ArcBits % 7
	firstByteMask = ContinuationBit - (1 << firstByteBits)
	// arcBytes is the byte budget counted by Validate.
	arcBytes = ArcBits / 8
)

// Encode writes the minimal encoding of arc into the tail of buf and returns
// the index of the first written byte; the encoding is buf[start:].
func Encode(buf *[MaxLen]byte, arc uint32) (start int) {
	k := MaxLen - 1
	buf[k] = byte(arc & payloadMask)
	arc >>= 7
	for arc > 0 {
		k--
		buf[k] = ContinuationBit | byte(arc&payloadMask)
		arc >>= 7
	}

	return k
}

// Append appends the minimal encoding of arc to dst.
func Append(dst []byte, arc uint32) []byte {
	var buf [MaxLen]byte
	start := Encode(&buf, arc)

	return append(dst, buf[start:]...)
}

// Len returns the number of bytes Encode writes for arc.
func Len(arc uint32) int {
	switch {
	case arc <= 0x7f:
		return 1
	case arc <= 0x3fff:
		return 2
	case arc <= 0x1f_ffff:
		return 3
	case arc <= 0xfff_ffff:
		return 4
	default:
		return 5
	}
}

// Validate checks that data is a sequence of complete, minimal arcs that fit
// in 32 bits.
//
// The returned error is nil or an *errs.Base128Error whose Pos is the offset
// of the first byte of the offending arc. Offsets beyond math.MaxUint16 are
// reported as math.MaxUint16.
func Validate(data []byte) error {
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b < ContinuationBit {
			continue
		}
		if b == ContinuationBit {
			return newError(errs.ZeroByteWithCont, i)
		}

		// Over-estimates the size of invalid arcs, under-estimates valid
		// ones. With 32-bit arcs the mask is 0x70:
		//   [8f ff ff ff 7f] => first=0 n=4 value=0xffffffff
		//   [90 80 80 80 00] => first=1 n=5 invalid
		start := i
		n := 0
		if b&firstByteMask != 0 {
			n = 1
		}
		for {
			i++
			if i >= len(data) {
				return newError(errs.Unfinished, start)
			}
			n++
			if n > arcBytes {
				return newError(errs.OutOfRange, start)
			}
			if data[i] < ContinuationBit {
				break
			}
		}
	}

	return nil
}

func newError(kind errs.Base128ErrorKind, pos int) *errs.Base128Error {
	if pos > math.MaxUint16 {
		pos = math.MaxUint16
	}

	return &errs.Base128Error{Kind: kind, Pos: uint16(pos)} //nolint:gosec
}

// Next decodes the first arc of validated data and returns it along with the
// number of bytes consumed. It returns n == 0 when data is empty.
func Next(data []byte) (arc uint32, n int) {
	for n < len(data) {
		b := data[n]
		n++
		arc = arc<<7 | uint32(b&payloadMask)
		if b&ContinuationBit == 0 {
			return arc, n
		}
	}

	return 0, 0
}

// Arcs returns an iterator over the arcs of validated data.
//
// Each call to the returned sequence starts over from the first byte.
func Arcs(data []byte) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		rest := data
		for len(rest) > 0 {
			arc, n := Next(rest)
			if n == 0 {
				return
			}
			if !yield(arc) {
				return
			}
			rest = rest[n:]
		}
	}
}

// Count returns the number of arcs in validated data.
func Count(data []byte) int {
	count := 0
	for _, b := range data {
		if b&ContinuationBit == 0 {
			count++
		}
	}

	return count
}
