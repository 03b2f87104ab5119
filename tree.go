package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Weight is the sum of the frequencies of all leaves under this node.
	Weight() uint64

	// MinSymbol is the smallest Symbol under this node.  It exists only to
	// break ties between nodes of equal weight.
	MinSymbol() Symbol

	isNode()
}

// Leaf is a Node that stands for exactly one present Symbol.
type Leaf struct {
	Symbol Symbol
	Freq   uint64
}

// Internal is a Node that joins two subtrees.  Both children are always
// present; the "lesser" subtree is on the left.
type Internal struct {
	Left  Node
	Right Node
	Min   Symbol
	Freq  uint64
}

// Weight implements Node.
func (n *Leaf) Weight() uint64 { return n.Freq }

// MinSymbol implements Node.
func (n *Leaf) MinSymbol() Symbol { return n.Symbol }

func (*Leaf) isNode() {}

// Weight implements Node.
func (n *Internal) Weight() uint64 { return n.Freq }

// MinSymbol implements Node.
func (n *Internal) MinSymbol() Symbol { return n.Min }

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree builds the Huffman tree for freqs and returns its root.  If no
// Symbol is present, BuildTree returns nil.  If exactly one Symbol is
// present, the root is that Symbol's Leaf.
//
// Nodes are merged in a strict order: lowest weight first, with ties broken
// by lowest MinSymbol.  The first node popped becomes the left child.  The
// tree shape therefore depends only on freqs, so a decoder given the same
// table rebuilds the exact tree the encoder used.
//
func BuildTree(freqs *FrequencyTable) Node {
	h := nodeHeap{list: make([]Node, 0, NumSymbols)}
	for index, freq := range freqs {
		if freq != 0 {
			h.list = append(h.list, &Leaf{Symbol: Symbol(index), Freq: freq})
		}
	}
	if h.Len() == 0 {
		return nil
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(Node)
		b := heap.Pop(&h).(Node)
		heap.Push(&h, combine(a, b))
	}

	root := heap.Pop(&h).(Node)
	assert.Assertf(h.Len() == 0, "BuildTree: %d nodes left over", h.Len())
	return root
}

// combine joins a and b under a new Internal node.  The caller must pass
// them in heap order, i.e. !nodeLess(b, a).
func combine(a, b Node) *Internal {
	assert.Assertf(!nodeLess(b, a), "combine: nodes out of order: (%d, %d) before (%d, %d)", a.Weight(), a.MinSymbol(), b.Weight(), b.MinSymbol())
	lo := a.MinSymbol()
	if b.MinSymbol() < lo {
		lo = b.MinSymbol()
	}
	return &Internal{
		Left:  a,
		Right: b,
		Min:   lo,
		Freq:  saturatingAdd(a.Weight(), b.Weight()),
	}
}

func nodeLess(a, b Node) bool {
	if aw, bw := a.Weight(), b.Weight(); aw != bw {
		return aw < bw
	}
	return a.MinSymbol() < b.MinSymbol()
}

// type nodeHeap {{{

type nodeHeap struct {
	list []Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	return nodeLess(h.list[i], h.list[j])
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
