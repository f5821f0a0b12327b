package huffpress

import (
	"github.com/chronos-tachyon/assert"
)

// Table maps each Symbol of the alphabet to its Huffman Code.  Codes
// correspond to distinct root-to-leaf paths, so a Table is prefix-free by
// construction.
type Table map[Symbol]Code

// BuildTable derives the encoding table from a Huffman tree by depth-first
// traversal, accumulating edge labels from the root: '0' for a left edge,
// '1' for a right edge.  If the root itself is a leaf (single-symbol
// alphabet), its symbol is assigned the one-bit code "0", since an empty
// code cannot be emitted.
func BuildTable(root *Node) Table {
	assert.Assertf(root != nil, "BuildTable needs a non-nil root")

	table := make(Table)
	if root.leaf {
		table[root.sym] = Code("0")
		return table
	}
	collectCodes(table, root, "")
	return table
}

func collectCodes(table Table, node *Node, code Code) {
	if node.leaf {
		table[node.sym] = code
		return
	}
	collectCodes(table, node.left, code+"0")
	collectCodes(table, node.right, code+"1")
}
