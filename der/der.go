package der

import (
	"fmt"

	"github.com/arloliu/oid/ber"
	"github.com/arloliu/oid/errs"
)

// AppendAbsolute appends abs as an OBJECT IDENTIFIER element to dst.
//
// Parameters:
//   - dst: buffer to append to, may be nil
//   - abs: identifier to frame
//
// Returns:
//   - []byte: the extended buffer
func AppendAbsolute(dst []byte, abs ber.Absolute) []byte {
	return appendElement(dst, TagObjectIdentifier, abs.Bytes())
}

// AppendRelative appends rel as a RELATIVE-OID element to dst.
func AppendRelative(dst []byte, rel ber.Relative) []byte {
	return appendElement(dst, TagRelativeOID, rel.Bytes())
}

// Size returns the encoded element size for content of n bytes.
func Size(n int) int {
	return 1 + lengthSize(n) + n
}

func appendElement(dst []byte, tag byte, content []byte) []byte {
	dst = append(dst, tag)
	dst = appendLength(dst, len(content))

	return append(dst, content...)
}

// ParseAbsolute decodes an OBJECT IDENTIFIER element from the front of data.
//
// Parameters:
//   - data: input starting with the tag octet
//
// Returns:
//   - ber.Absolute: view over the content octets, sharing storage with data
//   - []byte: the bytes following the element
//   - error: errs.ErrInvalidTag, errs.ErrInvalidLength, errs.ErrTruncated, or
//     a content error from ber.NewAbsolute
func ParseAbsolute(data []byte) (ber.Absolute, []byte, error) {
	content, rest, err := parseElement(data, TagObjectIdentifier)
	if err != nil {
		return ber.Absolute{}, data, err
	}

	abs, err := ber.NewAbsolute(content)
	if err != nil {
		return ber.Absolute{}, data, err
	}

	return abs, rest, nil
}

// ParseRelative decodes a RELATIVE-OID element from the front of data.
//
// It behaves like ParseAbsolute; a zero-length content is the empty fragment.
func ParseRelative(data []byte) (ber.Relative, []byte, error) {
	content, rest, err := parseElement(data, TagRelativeOID)
	if err != nil {
		return ber.Relative{}, data, err
	}

	rel, err := ber.NewRelative(content)
	if err != nil {
		return ber.Relative{}, data, err
	}

	return rel, rest, nil
}

func parseElement(data []byte, tag byte) (content, rest []byte, err error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: missing tag octet", errs.ErrTruncated)
	}
	if data[0] != tag {
		return nil, nil, fmt.Errorf("%w: got 0x%02x, want 0x%02x", errs.ErrInvalidTag, data[0], tag)
	}

	n, size, err := parseLength(data[1:])
	if err != nil {
		return nil, nil, err
	}

	start := 1 + size
	if n > len(data)-start {
		return nil, nil, fmt.Errorf("%w: need %d content octets, have %d", errs.ErrTruncated, n, len(data)-start)
	}
	end := start + n

	return data[start:end:end], data[end:], nil
}
