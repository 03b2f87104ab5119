package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable holds the number of occurrences of each Symbol.  The index
// is the Symbol itself.  A Symbol is "present" iff its count is non-zero.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies returns the frequency table for text, with one count per
// occurrence of each byte.
func CountFrequencies(text []byte) FrequencyTable {
	var freqs FrequencyTable
	for _, ch := range text {
		freqs[ch]++
	}
	return freqs
}

// ReadFrequencies is like CountFrequencies, but it consumes r until EOF
// without retaining the data.
func ReadFrequencies(r io.Reader) (FrequencyTable, error) {
	var freqs FrequencyTable
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err == io.EOF {
			return freqs, nil
		}
		if err != nil {
			return freqs, err
		}
		freqs[ch]++
	}
}

// Count returns the number of occurrences of symbol.
func (freqs *FrequencyTable) Count(symbol Symbol) uint64 {
	return freqs[symbol]
}

// Present lists the Symbols with a non-zero count, in ascending order.
func (freqs *FrequencyTable) Present() []Symbol {
	out := make([]Symbol, 0, NumSymbols)
	for index, freq := range freqs {
		if freq != 0 {
			out = append(out, Symbol(index))
		}
	}
	return out
}

// NumPresent returns the number of Symbols with a non-zero count.
func (freqs *FrequencyTable) NumPresent() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the text the
// table describes.  The sum saturates instead of wrapping around.
func (freqs *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range freqs {
		sum = saturatingAdd(sum, freq)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.  Only present Symbols are listed.
func (freqs *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for index, freq := range freqs {
		if freq != 0 {
			fmt.Fprintf(&buf, "\tCount(%d) = %d\n", index, freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}
