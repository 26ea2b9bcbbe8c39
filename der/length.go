package der

import (
	"fmt"

	"github.com/arloliu/oid/errs"
)

// appendLength appends the minimal DER encoding of n.
func appendLength(dst []byte, n int) []byte {
	if n <= shortFormMax {
		return append(dst, byte(n))
	}

	var tmp [8]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte(n)
		n >>= 8
	}
	dst = append(dst, longFormFlag|byte(len(tmp)-i))

	return append(dst, tmp[i:]...)
}

// lengthSize returns the number of octets appendLength writes for n.
func lengthSize(n int) int {
	size := 1
	if n > shortFormMax {
		for ; n > 0; n >>= 8 {
			size++
		}
	}

	return size
}

// parseLength decodes a DER length from the front of data.
//
// Returns:
//   - int: the decoded content length
//   - int: number of length octets consumed
//   - error: errs.ErrTruncated or errs.ErrInvalidLength
func parseLength(data []byte) (int, int, error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("%w: missing length octet", errs.ErrTruncated)
	}

	first := data[0]
	if first&longFormFlag == 0 {
		return int(first), 1, nil
	}

	count := int(first &^ longFormFlag)
	switch {
	case count == 0:
		return 0, 0, fmt.Errorf("%w: indefinite length", errs.ErrInvalidLength)
	case count > maxLengthOctets:
		return 0, 0, fmt.Errorf("%w: %d length octets", errs.ErrInvalidLength, count)
	case 1+count > len(data):
		return 0, 0, fmt.Errorf("%w: need %d length octets, have %d", errs.ErrTruncated, count, len(data)-1)
	case data[1] == 0:
		return 0, 0, fmt.Errorf("%w: leading zero length octet", errs.ErrInvalidLength)
	}

	n := 0
	for _, b := range data[1 : 1+count] {
		n = n<<8 | int(b)
	}
	if n <= shortFormMax {
		return 0, 0, fmt.Errorf("%w: long form for length %d", errs.ErrInvalidLength, n)
	}

	return n, 1 + count, nil
}
