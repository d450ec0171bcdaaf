package hufftap

import (
	"fmt"
	"sort"
)

// TreeNode is one node of a Huffman prefix tree.  A node with no children
// is a leaf carrying a byte value; any other node is a branch whose Freq is
// the sum of its children's.  Each parent exclusively owns its children, so
// the tree is acyclic and traversed strictly top-down.
type TreeNode struct {
	Freq  uint64
	Value byte
	Left  *TreeNode
	Right *TreeNode
}

// IsLeaf reports whether this node carries a byte value.
func (n *TreeNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree constructs the Huffman prefix tree for the given frequency
// table.  It fails with ErrEmptyInput when the table has no entries.  A
// table with a single entry produces a tree whose root is that one leaf.
//
// Construction is fully deterministic.  The worklist starts with one leaf
// per table entry, ordered by descending frequency with equal-frequency
// leaves ordered by descending byte value, and each round merges the two
// nodes at the tail of the list into a branch, reinserting it with a stable
// re-sort.  Equal-frequency leaves therefore merge in ascending byte-value
// order, and a freshly made branch merges before older nodes of the same
// frequency.  The worklist never exceeds 256 entries, so the repeated sort
// costs nothing worth optimizing away; a heap would not preserve this
// ordering.
func BuildTree(freq FrequencyTable) (*TreeNode, error) {
	if len(freq) == 0 {
		return nil, fmt.Errorf("cannot build a Huffman tree: %w", ErrEmptyInput)
	}

	nodes := make(byFreq, 0, len(freq))
	for value, count := range freq {
		nodes = append(nodes, &TreeNode{Freq: count, Value: value})
	}
	sort.Sort(byValue(nodes))
	sort.Stable(nodes)

	for len(nodes) > 1 {
		last := len(nodes) - 1
		left, right := nodes[last], nodes[last-1]
		nodes = nodes[:last-1]
		nodes = append(nodes, &TreeNode{Freq: left.Freq + right.Freq, Left: left, Right: right})
		sort.Stable(nodes)
	}
	return nodes[0], nil
}

// type byValue + type byFreq {{{

// byValue orders nodes by descending byte value.  It is applied to the
// initial all-leaf worklist only, where values are distinct.
type byValue []*TreeNode

func (list byValue) Len() int {
	return len(list)
}

func (list byValue) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byValue) Less(i, j int) bool {
	return list[i].Value > list[j].Value
}

var _ sort.Interface = byValue(nil)

// byFreq orders nodes by descending frequency.  Equal-frequency nodes
// compare equal, so only stable sorts keep the worklist's tie order intact.
type byFreq []*TreeNode

func (list byFreq) Len() int {
	return len(list)
}

func (list byFreq) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byFreq) Less(i, j int) bool {
	return list[i].Freq > list[j].Freq
}

var _ sort.Interface = byFreq(nil)

// }}}
