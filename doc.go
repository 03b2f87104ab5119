// Package huffman implements a plain-text Huffman codec.  A frequency table
// is counted from the input, a prefix tree is built from it with a fully
// deterministic merge order, and the input is rewritten as a sequence of
// '0' and '1' symbols.  The frequency table travels alongside the payload
// as a textual header, which is all a decoder needs to rebuild the same
// tree.
//
// The encoded artifact looks like this:
//
//     <header>\n<payload>
//
// where <header> lists "code count" pairs in ascending code order, e.g.
// "97 3 98 4 99 2" for the text "aaabbbbcc".
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
