package ber

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelative_IsArcBoundary(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		index int
		want  bool
	}{
		{"at start", []byte{0x01, 0x81, 0x00}, 0, true},
		{"after the end", []byte{0x81, 0x01, 0x81, 0x00}, 4, true},
		{"at the end", []byte{0x81, 0x01, 0x81, 0x00, 0x02}, 4, true},
		{"short short", []byte{0x02, 0x01, 0x81, 0x00}, 1, true},
		{"short long", []byte{0x02, 0x81, 0x01}, 1, true},
		{"long long", []byte{0xaf, 0x02, 0x81, 0x01}, 2, true},
		{"not at last byte", []byte{0xaf, 0x01, 0x02}, 1, false},
		{"middle first", []byte{0xaf, 0x88, 0x01, 0x02}, 1, false},
		{"middle second", []byte{0xaf, 0x88, 0x01, 0x02}, 2, false},
		{"past the end", []byte{0xaf, 0x88, 0x01, 0x02}, 5, false},
		{"far past the end", []byte{0xaf, 0x88, 0x01, 0x02}, 6, false},
		{"negative", []byte{0xaf, 0x88, 0x01, 0x02}, -1, false},
		{"empty start", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel := MustRelative(tt.data)
			assert.Equal(t, tt.want, rel.IsArcBoundary(tt.index))
		})
	}
}

// Every boundary is the start offset of an arc or the end of the fragment.
func TestRelative_IsArcBoundary_MatchesArcStarts(t *testing.T) {
	var buf RelativeBuf
	starts := map[int]bool{}
	for _, arc := range []Arc{5, 300, 0, 70000, 0xffffffff, 1} {
		starts[buf.Len()] = true
		buf.Push(arc)
	}
	starts[buf.Len()] = true

	rel := buf.Relative()
	for i := -1; i <= rel.Len()+1; i++ {
		assert.Equal(t, starts[i], rel.IsArcBoundary(i), "index %d", i)
	}
}

func TestRelative_ArcAt(t *testing.T) {
	rel := MustRelative([]byte{0x01, 0x84, 0x02, 0x04})

	arc, ok := rel.ArcAt(1)
	require.True(t, ok)
	assert.Equal(t, Arc(0x4*0x80+0x2), arc)

	_, ok = rel.ArcAt(2)
	assert.False(t, ok, "inside an arc")

	_, ok = rel.ArcAt(4)
	assert.False(t, ok, "at the end")
}

func TestRelative_Get(t *testing.T) {
	rel := MustRelative([]byte{0x01, 0x84, 0x02, 0x04})

	tests := []struct {
		start, end int
		want       []byte
	}{
		{1, 4, []byte{0x84, 0x02, 0x04}},
		{0, 3, []byte{0x01, 0x84, 0x02}},
		{1, 3, []byte{0x84, 0x02}},
		{0, 4, []byte{0x01, 0x84, 0x02, 0x04}},
	}

	for _, tt := range tests {
		part, ok := rel.Get(tt.start, tt.end)
		require.True(t, ok, "[%d:%d]", tt.start, tt.end)
		assert.Equal(t, tt.want, part.Bytes())
		assert.True(t, part.Equal(rel.Slice(tt.start, tt.end)))
	}
}

func TestRelative_GetRejects(t *testing.T) {
	rel := MustRelative([]byte{0x01, 0x83, 0x81, 0x02, 0x04})

	for _, r := range [][2]int{{1, 6}, {6, 7}, {1, 3}, {2, 5}, {4, 1}, {-1, 2}} {
		_, ok := rel.Get(r[0], r[1])
		assert.False(t, ok, "[%d:%d]", r[0], r[1])
	}
}

func TestRelative_SliceWholeIsIdentity(t *testing.T) {
	rel := MustRelative([]byte{0x01, 0x83, 0x81, 0x02, 0x04})
	whole := rel.Slice(0, rel.Len())

	assert.True(t, bytes.Equal(rel.Bytes(), whole.Bytes()))
	assert.Same(t, &rel.Bytes()[0], &whole.Bytes()[0])
}

func TestRelative_SliceSharesStorage(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	rel := MustRelative(data)

	mid := rel.Slice(1, 3)
	mid.CopyFrom(MustRelative([]byte{0x7f, 0x7e}))
	assert.Equal(t, []byte{0x01, 0x7f, 0x7e, 0x04}, data)

	// the view cannot be grown over its neighbours
	grown := append(mid.Bytes(), 0x00)
	assert.Equal(t, byte(0x04), data[3])
	assert.Len(t, grown, 3)
}

func TestRelative_SlicePanics(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		start, end int
		msg        string
	}{
		{
			name: "end out of bounds",
			data: []byte{0x01, 0x83, 0x81, 0x02, 0x04}, start: 1, end: 6,
			msg: "byte index 6 is out of bounds of `.1.49282.4`",
		},
		{
			name: "start out of bounds",
			data: []byte{0x01, 0x83, 0x81, 0x02, 0x04}, start: 6, end: 7,
			msg: "byte index 6 is out of bounds of `.1.49282.4`",
		},
		{
			name: "end inside arc",
			data: []byte{0x01, 0x83, 0x81, 0x02, 0x04}, start: 1, end: 3,
			msg: "byte index 3 is not an arc boundary; it is inside of an arc 49282 (bytes [1:4]) in `.1.49282.4`",
		},
		{
			name: "start inside arc",
			data: []byte{0x01, 0x83, 0x81, 0x02, 0x84, 0x01, 0x02}, start: 2, end: 7,
			msg: "byte index 2 is not an arc boundary; it is inside of an arc 49282 (bytes [1:4]) in `.1.49282.513.2`",
		},
		{
			name: "inverted",
			data: []byte{0x01, 0x83, 0x81, 0x02}, start: 4, end: 1,
			msg: "start <= end (4 <= 1) when slicing `.1.49282`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel := MustRelative(tt.data)
			require.PanicsWithError(t, tt.msg, func() {
				rel.Slice(tt.start, tt.end)
			})
		})
	}
}

func TestRelative_SplitAt(t *testing.T) {
	tests := []struct {
		data        []byte
		mid         int
		first, last string
	}{
		{[]byte{0x01, 0x02, 0x82, 0x01}, 2, ".1.2", ".257"},
		{[]byte{0x01, 0x02, 0x03}, 0, "", ".1.2.3"},
		{[]byte{0x01, 0x02, 0x03}, 3, ".1.2.3", ""},
	}

	for _, tt := range tests {
		first, last := MustRelative(tt.data).SplitAt(tt.mid)
		assert.Equal(t, tt.first, first.String())
		assert.Equal(t, tt.last, last.String())
	}
}

func TestRelative_SplitAtPanics(t *testing.T) {
	rel := MustRelative([]byte{0x01, 0x82, 0x01})

	require.PanicsWithError(t,
		"byte index 2 is not an arc boundary; it is inside of an arc 257 (bytes [1:3]) in `.1.257`",
		func() { rel.SplitAt(2) })
	require.PanicsWithError(t,
		"byte index 4 is out of bounds of `.1.257`",
		func() { rel.SplitAt(4) })
}
