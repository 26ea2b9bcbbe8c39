package ber

import "github.com/arloliu/oid/internal/base128"

// IsArcBoundary reports whether index is a legal cut point: 0, Len(), or an
// offset directly after the last byte of an arc. Offsets outside [0, Len()]
// are never boundaries.
//
// Example:
//
//	rel := ber.MustRelative([]byte{0x81, 0x01, 0x02})
//	rel.IsArcBoundary(0) // true
//	rel.IsArcBoundary(1) // false, inside the arc 129
//	rel.IsArcBoundary(2) // true
//	rel.IsArcBoundary(3) // true, end of the fragment
//	rel.IsArcBoundary(4) // false
func (r Relative) IsArcBoundary(index int) bool {
	if index == 0 || index == len(r.b) {
		return true
	}
	if index < 0 || index > len(r.b) {
		return false
	}

	return r.b[index-1]&base128.ContinuationBit == 0
}

func (r Relative) validRange(start, end int) bool {
	return start <= end && r.IsArcBoundary(start) && r.IsArcBoundary(end)
}

// Get returns the sub-fragment of bytes [start, end).
//
// It returns false when the range is out of bounds, inverted, or either end
// falls inside an arc. The result shares storage with r.
func (r Relative) Get(start, end int) (Relative, bool) {
	if !r.validRange(start, end) {
		return Relative{}, false
	}

	return Relative{b: r.b[start:end:end]}, true
}

// Slice returns the sub-fragment of bytes [start, end).
//
// Slice panics with an *IndexError when the range is out of bounds, inverted,
// or either end falls inside an arc. Use Get when the range is not known to
// be valid.
func (r Relative) Slice(start, end int) Relative {
	if !r.validRange(start, end) {
		sliceFail(r, start, end)
	}

	return Relative{b: r.b[start:end:end]}
}

// ArcAt returns the arc that starts at byte offset index. It returns false
// when index is not the start of an arc.
func (r Relative) ArcAt(index int) (Arc, bool) {
	if index == len(r.b) || !r.IsArcBoundary(index) {
		return 0, false
	}
	arc, _ := base128.Next(r.b[index:])

	return arc, true
}

// SplitAt divides the fragment into [0, mid) and [mid, Len()). Both halves
// share storage with r.
//
// SplitAt panics with an *IndexError when mid is not an arc boundary.
func (r Relative) SplitAt(mid int) (Relative, Relative) {
	if !r.IsArcBoundary(mid) {
		sliceFail(r, 0, mid)
	}

	return Relative{b: r.b[:mid:mid]}, Relative{b: r.b[mid:]}
}

// truncateToArcBoundary cuts r to at most limit bytes without splitting an arc.
func truncateToArcBoundary(r Relative, limit int) (Relative, bool) {
	if len(r.b) <= limit {
		return r, false
	}
	for !r.IsArcBoundary(limit) {
		limit--
	}

	return Relative{b: r.b[:limit:limit]}, true
}
