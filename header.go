package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/texthuffman/internal/derrors"
)

// FormatHeader serializes freqs as space-separated "code count" pairs, one
// pair per present Symbol, in ascending Symbol order.  Absent Symbols are
// omitted entirely; an empty table yields the empty string.
//
// For example, the table for "aaabbbbcc" formats as "97 3 98 4 99 2".
//
func FormatHeader(freqs *FrequencyTable) string {
	var sb strings.Builder
	for index, freq := range freqs {
		if freq == 0 {
			continue
		}
		if sb.Len() != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(index))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(freq, 10))
	}
	return sb.String()
}

// ParseHeader is the inverse of FormatHeader.  It splits header on
// whitespace and consumes the tokens in (code, count) pairs.  Codes that
// never appear have a count of zero; a code that appears twice takes the
// later count.
//
// The error wraps ErrMalformedHeader if the number of tokens is odd, if a
// token is not a non-negative decimal integer, or if a code is outside the
// alphabet.
//
func ParseHeader(header string) (freqs FrequencyTable, err error) {
	defer derrors.Wrap(&err, "ParseHeader")

	tokens := strings.Fields(header)
	if len(tokens)%2 != 0 {
		return FrequencyTable{}, fmt.Errorf("%w: odd number of tokens (%d)", derrors.MalformedHeader, len(tokens))
	}

	for index := 0; index < len(tokens); index += 2 {
		code, err := strconv.ParseUint(tokens[index], 10, 8)
		if err != nil {
			return FrequencyTable{}, fmt.Errorf("%w: invalid character code %q at token %d", derrors.MalformedHeader, tokens[index], index)
		}
		count, err := strconv.ParseUint(tokens[index+1], 10, 64)
		if err != nil {
			return FrequencyTable{}, fmt.Errorf("%w: invalid count %q at token %d", derrors.MalformedHeader, tokens[index+1], index+1)
		}
		freqs[code] = count
	}
	return freqs, nil
}
