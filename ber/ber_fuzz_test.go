//go:build fuzz
// +build fuzz

package ber

import (
	"bytes"
	"testing"
)

// FuzzRelative_TextRoundTrip checks that every decodable fragment survives
// formatting and parsing unchanged.
func FuzzRelative_TextRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x01, 0x82, 0x03, 0x81, 0x04})
	f.Add([]byte{0x8f, 0xff, 0xff, 0xff, 0x7f})
	f.Add([]byte{0x80})
	f.Add([]byte{0x90, 0x80, 0x80, 0x80, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		rel, err := NewRelative(data)
		if err != nil {
			return
		}

		parsed, err := ParseRelative(rel.String())
		if err != nil {
			t.Fatalf("ParseRelative(%q) failed: %v", rel.String(), err)
		}
		if !bytes.Equal(parsed.Bytes(), data) {
			t.Errorf("round trip mismatch: got % x, want % x", parsed.Bytes(), data)
		}
	})
}

// FuzzRelative_Get checks that Get never returns a torn fragment.
func FuzzRelative_Get(f *testing.F) {
	f.Add([]byte{0x01, 0x83, 0x81, 0x02, 0x04}, 1, 3)
	f.Add([]byte{0x01, 0x02}, 0, 2)

	f.Fuzz(func(t *testing.T, data []byte, start, end int) {
		rel, err := NewRelative(data)
		if err != nil {
			return
		}

		part, ok := rel.Get(start, end)
		if !ok {
			return
		}
		if _, err := NewRelative(part.Bytes()); err != nil {
			t.Fatalf("Get(%d, %d) of % x returned invalid % x: %v", start, end, data, part.Bytes(), err)
		}
	})
}

// FuzzAbsolute_TextRoundTrip mirrors FuzzRelative_TextRoundTrip for whole
// identifiers.
func FuzzAbsolute_TextRoundTrip(f *testing.F) {
	f.Add([]byte{0x2b, 0x06, 0x01})
	f.Add([]byte{0x78})

	f.Fuzz(func(t *testing.T, data []byte) {
		abs, err := NewAbsolute(data)
		if err != nil {
			return
		}

		parsed, err := ParseAbsolute(abs.String())
		if err != nil {
			t.Fatalf("ParseAbsolute(%q) failed: %v", abs.String(), err)
		}
		if !parsed.Equal(abs) {
			t.Errorf("round trip mismatch: got % x, want % x", parsed.Bytes(), data)
		}
	})
}
