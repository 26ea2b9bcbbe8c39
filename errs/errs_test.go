package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase128Error_Is(t *testing.T) {
	tests := []struct {
		kind     Base128ErrorKind
		sentinel error
	}{
		{OutOfRange, ErrArcOutOfRange},
		{ZeroByteWithCont, ErrZeroByteWithCont},
		{Unfinished, ErrUnfinishedArc},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("decode: %w", &Base128Error{Kind: tt.kind, Pos: 3})
			require.ErrorIs(t, err, tt.sentinel)
			require.NotErrorIs(t, err, ErrRootOutOfRange)

			var b128 *Base128Error
			require.True(t, errors.As(err, &b128))
			require.Equal(t, uint16(3), b128.Pos)
			require.Equal(t, tt.kind, b128.Kind)
		})
	}
}

func TestBase128Error_Message(t *testing.T) {
	err := &Base128Error{Kind: Unfinished, Pos: 7}
	require.Equal(t, "oid: invalid base-128 arc at byte 7: Unfinished", err.Error())
}

func TestRootError(t *testing.T) {
	err := &RootError{Byte: 0x78}
	require.ErrorIs(t, err, ErrRootOutOfRange)
	require.Contains(t, err.Error(), "0x78")
}

func TestParseError(t *testing.T) {
	err := &ParseError{Kind: IntegerExpected, Pos: 4}
	require.ErrorIs(t, err, ErrIntegerExpected)
	require.NotErrorIs(t, err, ErrInvalidChar)
	require.Equal(t, "oid: IntegerExpected at 4", err.Error())

	missing := &ParseError{Kind: MissingSecondArc}
	require.ErrorIs(t, missing, ErrMissingSecondArc)
	require.Equal(t, "oid: missing second arc", missing.Error())
}

func TestKindString_Unknown(t *testing.T) {
	require.Equal(t, "Unknown", Base128ErrorKind(0).String())
	require.Equal(t, "Unknown", ParseErrorKind(99).String())
	require.False(t, (&Base128Error{}).Is(ErrArcOutOfRange))
}
