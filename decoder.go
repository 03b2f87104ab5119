package huffman

import (
	"bytes"
	"fmt"
	"math"

	"github.com/chronos-tachyon/texthuffman/internal/derrors"
)

// Decoder decodes payloads produced by an Encoder with the same
// FrequencyTable.
type Decoder struct {
	freqs FrequencyTable
	root  Node
}

// NewDecoder is a convenience function that constructs a Decoder.
func NewDecoder(freqs FrequencyTable) *Decoder {
	d := new(Decoder)
	d.Init(freqs)
	return d
}

// Init initializes this Decoder by rebuilding the Huffman tree for freqs.
// Because BuildTree is deterministic, this is the same tree an Encoder
// initialized with freqs uses.
func (d *Decoder) Init(freqs FrequencyTable) {
	*d = Decoder{
		freqs: freqs,
		root:  BuildTree(&freqs),
	}
}

// Root returns the root of the Huffman tree, or nil if no Symbol is
// present.
func (d *Decoder) Root() Node {
	return d.root
}

// Decode walks the tree once per output byte, taking the left child for
// each '0' and the right child for each '1', and emitting a byte whenever a
// leaf is reached.
//
// With no Symbols present the result is empty, whatever the payload.  With
// exactly one Symbol present the code is empty: the payload must be empty,
// and the Symbol is repeated as many times as the FrequencyTable counts.
//
func (d *Decoder) Decode(payload string) (_ []byte, err error) {
	defer derrors.Wrap(&err, "Decode")

	total := d.freqs.Total()

	switch root := d.root.(type) {
	case nil:
		return nil, nil

	case *Leaf:
		if len(payload) != 0 {
			return nil, fmt.Errorf("%w: %d payload bits for a single-symbol code", derrors.CodeTableMismatch, len(payload))
		}
		if total > uint64(math.MaxInt32) {
			return nil, fmt.Errorf("%w: count %d is too large", derrors.CodeTableMismatch, total)
		}
		return bytes.Repeat([]byte{byte(root.Symbol)}, int(total)), nil
	}

	capacity := len(payload)
	if total < uint64(capacity) {
		capacity = int(total)
	}
	out := make([]byte, 0, capacity)

	cursor := d.root.(*Internal)
	depth := 0
	for index := 0; index < len(payload); index++ {
		var next Node
		switch payload[index] {
		case '0':
			next = cursor.Left
		case '1':
			next = cursor.Right
		default:
			return nil, fmt.Errorf("%w: byte %q at offset %d is not a bit", derrors.CodeTableMismatch, payload[index], index)
		}

		switch n := next.(type) {
		case *Leaf:
			out = append(out, byte(n.Symbol))
			cursor = d.root.(*Internal)
			depth = 0
		case *Internal:
			cursor = n
			depth++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("%w: payload ends %d bits into a code", derrors.CodeTableMismatch, depth)
	}
	if uint64(len(out)) != total {
		return nil, fmt.Errorf("%w: decoded %d bytes, header counts %d", derrors.CodeTableMismatch, len(out), total)
	}
	return out, nil
}

// Decode parses header, rebuilds the Huffman tree from it, and decodes
// payload.  It is the inverse of Encode.
func Decode(header string, payload string) ([]byte, error) {
	freqs, err := ParseHeader(header)
	if err != nil {
		return nil, err
	}
	return NewDecoder(freqs).Decode(payload)
}
