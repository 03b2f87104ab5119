package huffman

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/texthuffman/internal/derrors"
)

// PackBits packs a sequence of '0' and '1' symbols into bytes, first bit in
// the most significant position.  The result starts with one byte holding
// the number of padding bits (0 to 7) at the end of the last byte.  An
// empty sequence packs to an empty slice.
func PackBits(bits string) (_ []byte, err error) {
	defer derrors.Wrap(&err, "PackBits")

	if len(bits) == 0 {
		return nil, nil
	}

	numBytes := (len(bits) + 7) / 8
	padding := byte(numBytes*8 - len(bits))
	out := make([]byte, 1+numBytes)
	out[0] = padding
	for index := 0; index < len(bits); index++ {
		switch bits[index] {
		case '0':
		case '1':
			out[1+index/8] |= 0x80 >> uint(index%8)
		default:
			return nil, fmt.Errorf("%w: byte %q at offset %d is not a bit", derrors.InvalidArgument, bits[index], index)
		}
	}
	return out, nil
}

// UnpackBits is the inverse of PackBits.
func UnpackBits(packed []byte) (_ string, err error) {
	defer derrors.Wrap(&err, "UnpackBits")

	if len(packed) == 0 {
		return "", nil
	}
	if len(packed) == 1 {
		return "", fmt.Errorf("%w: packed payload has no data bytes", derrors.CodeTableMismatch)
	}

	padding := int(packed[0])
	if padding > 7 {
		return "", fmt.Errorf("%w: invalid padding %d", derrors.CodeTableMismatch, padding)
	}

	data := packed[1:]
	numBits := len(data)*8 - padding

	var sb strings.Builder
	sb.Grow(numBits)
	for index := 0; index < numBits; index++ {
		if data[index/8]&(0x80>>uint(index%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}
