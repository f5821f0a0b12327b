package huffpress

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of the Huffman tree: either a leaf holding one Symbol and
// its frequency, or an internal node holding the summed frequency of exactly
// two children.  The parent pointer is a non-owning back-reference; encoding
// never follows it.
type Node struct {
	sym    Symbol
	freq   uint64
	left   *Node
	right  *Node
	parent *Node
	leaf   bool
}

// Sym returns the symbol held by a leaf node.  Meaningless for internal
// nodes.
func (n *Node) Sym() Symbol {
	return n.sym
}

// Frequency returns this node's frequency.  At the root this equals the
// total number of symbols in the input.
func (n *Node) Frequency() uint64 {
	return n.freq
}

// IsLeaf reports whether this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Left returns the child reached by bit 0, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by bit 1, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns this node's parent, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// BuildTree reduces a frequency table to a single Huffman tree by repeated
// minimal-pair merging and returns its root.  Returns ErrEmptyAlphabet for
// an empty table.
//
// The merge order is deterministic and load-bearing for bit-exact output:
// each iteration stable-sorts the working list by frequency ascending, picks
// the two minima by a single linear scan (first occurrence wins on ties),
// and appends the merged node at the end of the list.
//
func BuildTree(ft FreqTable) (*Node, error) {
	if len(ft) == 0 {
		return nil, ErrEmptyAlphabet
	}

	nodes := make([]*Node, 0, len(ft))
	for _, pair := range ft {
		nodes = append(nodes, &Node{sym: pair.Sym, freq: pair.Freq, leaf: true})
	}

	for len(nodes) > 1 {
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].freq < nodes[j].freq
		})
		min1, min2 := twoSmallest(nodes)
		nodes = mergeNodes(nodes, min1, min2)
	}
	return nodes[0], nil
}

// twoSmallest scans the working list once and returns the two nodes of
// minimum frequency.  min1 is the smaller of the two; when frequencies tie,
// the node encountered first keeps its place.
func twoSmallest(nodes []*Node) (min1, min2 *Node) {
	assert.Assertf(len(nodes) >= 2, "twoSmallest needs at least 2 nodes, got %d", len(nodes))

	min1, min2 = nodes[0], nodes[1]
	if min2.freq < min1.freq {
		min1, min2 = min2, min1
	}
	for _, node := range nodes[2:] {
		if node.freq < min1.freq {
			min2 = min1
			min1 = node
		} else if node.freq < min2.freq {
			min2 = node
		}
	}
	return min1, min2
}

// mergeNodes replaces min1 and min2 with their new parent: min1 becomes the
// left child (edge bit 0), min2 the right child (edge bit 1).  The remaining
// nodes keep their relative order and the parent goes to the end of the
// list.
func mergeNodes(nodes []*Node, min1, min2 *Node) []*Node {
	parent := &Node{
		freq:  min1.freq + min2.freq,
		left:  min1,
		right: min2,
	}
	min1.parent = parent
	min2.parent = parent

	out := nodes[:0]
	for _, node := range nodes {
		if node != min1 && node != min2 {
			out = append(out, node)
		}
	}
	return append(out, parent)
}
