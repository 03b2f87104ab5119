package huffman

// Symbol represents a character code in the single-byte alphabet.
type Symbol uint8

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
