package ber

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeBuf(t *testing.T) {
	rb := NewRelativeBuf(0)
	assert.Equal(t, "", rb.String())

	rb.Push(1)
	rb.Push(259)
	rb.Extend(MustRelative([]byte{0x81, 0x04}))

	assert.Equal(t, ".1.259.132", rb.String())
	assert.Equal(t, []byte{0x01, 0x82, 0x03, 0x81, 0x04}, rb.Bytes())
	assert.Equal(t, 5, rb.Len())

	_, err := NewRelative(rb.Bytes())
	require.NoError(t, err)

	rb.Reset()
	assert.Equal(t, 0, rb.Len())
	assert.True(t, rb.Relative().IsEmpty())
}

func TestRelativeBuf_Pop(t *testing.T) {
	var rb RelativeBuf
	for _, arc := range []Arc{7, 0xffffffff, 300} {
		rb.Push(arc)
	}

	var popped []Arc
	for {
		arc, ok := rb.Pop()
		if !ok {
			break
		}
		popped = append(popped, arc)
	}

	assert.Equal(t, []Arc{300, 0xffffffff, 7}, popped)
	assert.Equal(t, 0, rb.Len())
}

func TestRelativeBufFrom(t *testing.T) {
	src := []byte{0x01, 0x02}
	rb := RelativeBufFrom(MustRelative(src))
	rb.Push(3)

	assert.Equal(t, ".1.2.3", rb.String())
	assert.Equal(t, []byte{0x01, 0x02}, src)
}

func TestRelativeBuf_ViewIsCapped(t *testing.T) {
	rb := NewRelativeBuf(16)
	rb.Push(1)
	view := rb.Relative()

	grown := append(view.Bytes(), 0x05)
	rb.Push(2)

	assert.Equal(t, []byte{0x01, 0x05}, grown)
	assert.Equal(t, ".1.2", rb.String())
}

func TestAbsoluteBuf(t *testing.T) {
	root, err := RootFromArcs(1, 3)
	require.NoError(t, err)

	ab := NewAbsoluteBuf(root)
	assert.Equal(t, "1.3", ab.String())
	assert.Equal(t, 1, ab.Len())

	ab.Push(6)
	ab.Extend(MustRelative([]byte{0x01, 0x04}))
	ab.Push(311)

	assert.Equal(t, "1.3.6.1.4.311", ab.String())
	assert.Equal(t, []Arc{1, 3, 6, 1, 4, 311}, slices.Collect(ab.Absolute().Arcs()))

	arc, ok := ab.Pop()
	require.True(t, ok)
	assert.Equal(t, Arc(311), arc)
	assert.Equal(t, "1.3.6.1.4", ab.String())

	ab.Reset(root)
	_, ok = ab.Pop()
	assert.False(t, ok, "the root cannot be popped")
	assert.Equal(t, []byte{0x2b}, ab.Bytes())
}

func TestAbsoluteBuf_ZeroValue(t *testing.T) {
	var ab AbsoluteBuf
	assert.Equal(t, 1, ab.Len())
	assert.Equal(t, "0.0", ab.String())

	ab.Push(5)
	assert.Equal(t, []byte{0x00, 0x05}, ab.Bytes())

	_, err := NewAbsolute(ab.Bytes())
	require.NoError(t, err)
}

func TestAbsoluteBufFrom(t *testing.T) {
	src := MustAbsolute([]byte{0x2b, 0x06})
	ab := AbsoluteBufFrom(src)
	ab.Push(1)

	assert.Equal(t, "1.3.6.1", ab.String())
	assert.Equal(t, "1.3.6", src.String())
}
