package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its code: the path from the root of the
// Huffman tree to the Symbol's leaf, written as '0' (left) and '1' (right).
// Symbols that are not present map to the empty string.
//
// In a tree with a single leaf, that leaf's code is also the empty string.
type CodeTable [NumSymbols]string

// GenerateCodes walks the tree rooted at root and returns its CodeTable.
// A nil root yields a table of empty codes.
func GenerateCodes(root Node) CodeTable {
	var codes CodeTable
	if root == nil {
		return codes
	}

	// Depth-first walk with an explicit stack.  The right child is pushed
	// before the left one so that left subtrees are visited first.

	type stackItem struct {
		node Node
		path string
	}

	stack := []stackItem{{node: root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := top.node.(type) {
		case *Leaf:
			codes[n.Symbol] = top.path
		case *Internal:
			assert.Assertf(n.Left != nil && n.Right != nil, "internal node with a missing child")
			stack = append(stack,
				stackItem{node: n.Right, path: top.path + "1"},
				stackItem{node: n.Left, path: top.path + "0"})
		default:
			assert.Assertf(false, "unknown node type %T", n)
		}
	}
	return codes
}

// Code returns the code for symbol.
func (codes *CodeTable) Code(symbol Symbol) string {
	return codes[symbol]
}

// IsPrefixFree reports whether no non-empty code is a prefix of another.
func (codes *CodeTable) IsPrefixFree() bool {
	list := make([]string, 0, NumSymbols)
	for _, code := range codes {
		if code != "" {
			list = append(list, code)
		}
	}

	// After sorting, a code that prefixes another sorts immediately before
	// some code it prefixes.
	sort.Strings(list)
	for index := 1; index < len(list); index++ {
		if strings.HasPrefix(list[index], list[index-1]) {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.  Symbols without a code are omitted.
func (codes *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for index, code := range codes {
		if code != "" {
			fmt.Fprintf(&buf, "\tCode(%d) = %s\n", index, strconv.Quote(code))
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
