package ber

import (
	"fmt"

	"github.com/arloliu/oid/internal/base128"
)

// maxDisplayLength caps the number of fragment bytes rendered in an IndexError.
const maxDisplayLength = 256

// IndexErrorKind classifies a failed slicing operation.
type IndexErrorKind uint8

const (
	// OutOfBounds means an index lies outside [0, Len()].
	OutOfBounds IndexErrorKind = iota + 1
	// InvertedRange means start > end.
	InvertedRange
	// TornArc means an index falls strictly inside an arc.
	TornArc
	// LengthMismatch means CopyFrom was given a source of a different length.
	LengthMismatch
)

func (k IndexErrorKind) String() string {
	switch k {
	case OutOfBounds:
		return "OutOfBounds"
	case InvertedRange:
		return "InvertedRange"
	case TornArc:
		return "TornArc"
	case LengthMismatch:
		return "LengthMismatch"
	default:
		return "Unknown"
	}
}

// IndexError is the panic value of Slice, SplitAt and CopyFrom.
type IndexError struct {
	Kind IndexErrorKind
	// Index is the offending offset for OutOfBounds and TornArc.
	Index int
	// Start and End are the requested range.
	Start, End int
	// Arc is the arc containing Index, spanning bytes [ArcStart, ArcEnd).
	// Only set for TornArc.
	Arc              Arc
	ArcStart, ArcEnd int
	// Subject is the text form of the sliced fragment, cut on an arc
	// boundary after at most 256 bytes. Truncated reports whether it was cut.
	Subject   string
	Truncated bool
}

func (e *IndexError) Error() string {
	ellipsis := ""
	if e.Truncated {
		ellipsis = "[...]"
	}

	switch e.Kind {
	case OutOfBounds:
		return fmt.Sprintf("byte index %d is out of bounds of `%s`%s", e.Index, e.Subject, ellipsis)
	case InvertedRange:
		return fmt.Sprintf("start <= end (%d <= %d) when slicing `%s`%s", e.Start, e.End, e.Subject, ellipsis)
	case TornArc:
		return fmt.Sprintf("byte index %d is not an arc boundary; it is inside of an arc %d (bytes [%d:%d]) in `%s`%s",
			e.Index, e.Arc, e.ArcStart, e.ArcEnd, e.Subject, ellipsis)
	case LengthMismatch:
		return fmt.Sprintf("source length %d does not match destination length %d of `%s`%s", e.Index, e.End, e.Subject, ellipsis)
	default:
		return fmt.Sprintf("invalid slice [%d:%d] of `%s`%s", e.Start, e.End, e.Subject, ellipsis)
	}
}

// newIndexError explains why [start, end) is not a valid range of r.
func newIndexError(r Relative, start, end int) *IndexError {
	shown, truncated := truncateToArcBoundary(r, maxDisplayLength)
	e := &IndexError{
		Start:     start,
		End:       end,
		Subject:   shown.String(),
		Truncated: truncated,
	}

	n := len(r.b)
	if start < 0 || start > n || end < 0 || end > n {
		e.Kind = OutOfBounds
		e.Index = end
		if start < 0 || start > n {
			e.Index = start
		}

		return e
	}

	if start > end {
		e.Kind = InvertedRange
		return e
	}

	e.Kind = TornArc
	e.Index = end
	if !r.IsArcBoundary(start) {
		e.Index = start
	}

	arcStart := e.Index
	for !r.IsArcBoundary(arcStart) {
		arcStart--
	}
	arc, _ := base128.Next(r.b[arcStart:])
	e.Arc = arc
	e.ArcStart = arcStart
	e.ArcEnd = arcStart + base128.Len(arc)

	return e
}

func sliceFail(r Relative, start, end int) {
	panic(newIndexError(r, start, end))
}
