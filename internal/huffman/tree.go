package huffman

import "container/heap"

// Node is a node in a Huffman tree.
//
// A node is either a leaf holding a Symbol,
// or a branch with exactly two children.
// Use IsLeaf to tell them apart.
type Node struct {
	// Symbol held by a leaf node. Unset for branches.
	Symbol rune

	// Frequency of the leaf's symbol, or the combined frequency of all
	// leaves below a branch.
	Weight int

	// Children of a branch node. Both are nil for leaves.
	Left, Right *Node

	// Order in which the node was created. Breaks ties between nodes of
	// equal weight.
	ord int
}

// IsLeaf reports whether this node holds a symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Build builds a Huffman tree for the given frequencies
// and returns its root.
// It returns ErrEmptyInput if the table is empty.
//
// Ties between nodes of equal weight are broken by creation order:
// leaves are created in ascending code point order,
// and merged nodes after all leaves in the order they are merged.
// So identical frequency tables always produce identical trees.
//
// If the table holds a single symbol, its leaf is placed as the left child
// of a branch so that it receives the one-bit code "0".
func Build(freq FrequencyTable) (*Node, error) {
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}

	syms := freq.Symbols()
	nodes := make(nodeHeap, len(syms))
	for i, r := range syms {
		nodes[i] = &Node{Symbol: r, Weight: freq[r], ord: i}
	}

	if len(nodes) == 1 {
		leaf := nodes[0]
		return &Node{Weight: leaf.Weight, Left: leaf, ord: 1}, nil
	}

	heap.Init(&nodes)
	next := len(nodes)
	for len(nodes) > 1 {
		left := heap.Pop(&nodes).(*Node)
		right := heap.Pop(&nodes).(*Node)
		heap.Push(&nodes, &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
			ord:    next,
		})
		next++
	}

	return nodes[0], nil
}

// nodeHeap is a min-heap of nodes ordered by weight, then creation order.
type nodeHeap []*Node

var _ heap.Interface = (*nodeHeap)(nil)

func (ns nodeHeap) Len() int { return len(ns) }

func (ns nodeHeap) Less(i, j int) bool {
	if ns[i].Weight != ns[j].Weight {
		return ns[i].Weight < ns[j].Weight
	}
	return ns[i].ord < ns[j].ord
}

func (ns nodeHeap) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap) Push(e interface{}) {
	*ns = append(*ns, e.(*Node))
}

func (ns *nodeHeap) Pop() interface{} {
	n := len(*ns) - 1
	v := (*ns)[n]
	*ns = (*ns)[:n]
	return v
}
