package huffman

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildTree_Empty(t *testing.T) {
	var freqs FrequencyTable
	if root := BuildTree(&freqs); root != nil {
		t.Errorf("BuildTree(empty) = %v, want nil", root)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	var freqs FrequencyTable
	freqs['a'] = 4

	root := BuildTree(&freqs)
	leaf, ok := root.(*Leaf)
	if !ok {
		t.Fatalf("BuildTree = %T, want *Leaf", root)
	}
	if diff := cmp.Diff(&Leaf{Symbol: 'a', Freq: 4}, leaf); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	var freqs FrequencyTable
	freqs['A'] = 2
	freqs['B'] = 2

	want := &Internal{
		Left:  &Leaf{Symbol: 'A', Freq: 2},
		Right: &Leaf{Symbol: 'B', Freq: 2},
		Min:   'A',
		Freq:  4,
	}
	if diff := cmp.Diff(want, BuildTree(&freqs)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTree_InternalTieBreak(t *testing.T) {
	// 'A' and 'B' merge into a subtree of weight 2 whose MinSymbol is 'A'.
	// It ties with the leaf '@' on weight, and '@' < 'A', so '@' goes left.
	var freqs FrequencyTable
	freqs['@'] = 2
	freqs['A'] = 1
	freqs['B'] = 1

	want := &Internal{
		Left: &Leaf{Symbol: '@', Freq: 2},
		Right: &Internal{
			Left:  &Leaf{Symbol: 'A', Freq: 1},
			Right: &Leaf{Symbol: 'B', Freq: 1},
			Min:   'A',
			Freq:  2,
		},
		Min:  '@',
		Freq: 4,
	}
	if diff := cmp.Diff(want, BuildTree(&freqs)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// With 'C' in place of '@', the subtree wins the tie instead.
	freqs = FrequencyTable{}
	freqs['C'] = 2
	freqs['A'] = 1
	freqs['B'] = 1

	root := BuildTree(&freqs).(*Internal)
	if _, ok := root.Left.(*Internal); !ok {
		t.Errorf("root.Left = %T, want *Internal", root.Left)
	}
	if diff := cmp.Diff(&Leaf{Symbol: 'C', Freq: 2}, root.Right); diff != "" {
		t.Errorf("root.Right mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTree_Weights(t *testing.T) {
	freqs := CountFrequencies([]byte("abracadabra alakazam"))
	root := BuildTree(&freqs)
	if got, want := root.Weight(), freqs.Total(); got != want {
		t.Errorf("root.Weight() = %d, want %d", got, want)
	}
	if got, want := root.MinSymbol(), Symbol(' '); got != want {
		t.Errorf("root.MinSymbol() = %d, want %d", got, want)
	}

	var check func(n Node)
	check = func(n Node) {
		in, ok := n.(*Internal)
		if !ok {
			return
		}
		if in.Freq != in.Left.Weight()+in.Right.Weight() {
			t.Errorf("internal node weight %d != %d + %d", in.Freq, in.Left.Weight(), in.Right.Weight())
		}
		if nodeLess(in.Right, in.Left) {
			t.Errorf("children out of order: (%d, %d) left of (%d, %d)",
				in.Left.Weight(), in.Left.MinSymbol(), in.Right.Weight(), in.Right.MinSymbol())
		}
		check(in.Left)
		check(in.Right)
	}
	check(root)
}

func TestBuildTree_Deterministic(t *testing.T) {
	freqs := CountFrequencies([]byte("she sells sea shells by the sea shore"))
	a := BuildTree(&freqs)
	b := BuildTree(&freqs)
	if diff := cmp.Diff(GenerateCodes(a), GenerateCodes(b)); diff != "" {
		t.Errorf("code tables differ (-first +second):\n%s", diff)
	}
}
