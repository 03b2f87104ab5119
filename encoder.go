package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encoder encodes text with the Huffman code derived from a FrequencyTable.
type Encoder struct {
	freqs FrequencyTable
	root  Node
	codes CodeTable
}

// NewEncoder is a convenience function that constructs an Encoder.
func NewEncoder(freqs FrequencyTable) *Encoder {
	e := new(Encoder)
	e.Init(freqs)
	return e
}

// Init initializes this Encoder.  It builds the Huffman tree for freqs and
// the code for every present Symbol.
func (e *Encoder) Init(freqs FrequencyTable) {
	root := BuildTree(&freqs)
	*e = Encoder{
		freqs: freqs,
		root:  root,
		codes: GenerateCodes(root),
	}
}

// Encode returns the code for symbol.  It is a programmer error to encode a
// Symbol which is not present in the Encoder's FrequencyTable.
func (e *Encoder) Encode(symbol Symbol) string {
	assert.Assertf(e.freqs[symbol] != 0, "Encode: symbol %d is not present in the frequency table", symbol)
	return e.codes[symbol]
}

// EncodeText concatenates the codes of each byte of text, in order.
func (e *Encoder) EncodeText(text []byte) string {
	var size int
	for _, ch := range text {
		size += len(e.Encode(Symbol(ch)))
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, ch := range text {
		sb.WriteString(e.codes[ch])
	}
	return sb.String()
}

// Header returns the serialized FrequencyTable.  See FormatHeader.
func (e *Encoder) Header() string {
	return FormatHeader(&e.freqs)
}

// Frequencies returns the FrequencyTable this Encoder was initialized with.
func (e *Encoder) Frequencies() FrequencyTable {
	return e.freqs
}

// Codes returns the CodeTable.
func (e *Encoder) Codes() CodeTable {
	return e.codes
}

// Root returns the root of the Huffman tree, or nil if no Symbol is
// present.
func (e *Encoder) Root() Node {
	return e.root
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tHeader() = %s\n", strconv.Quote(e.Header()))
	for index, freq := range e.freqs {
		if freq == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", index, strconv.Quote(e.codes[index]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode counts the frequencies of text, builds the matching Huffman code,
// and returns the serialized frequency header together with the encoded
// payload.  Empty text yields an empty header and an empty payload.
//
// If text holds a single distinct byte, its code is the empty string and so
// is the payload; the header alone records how many times it occurs.
//
func Encode(text []byte) (header string, payload string) {
	e := NewEncoder(CountFrequencies(text))
	return e.Header(), e.EncodeText(text)
}
