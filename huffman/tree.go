package huffman

import (
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// nodeID is a handle for a node stored in a tree's arena.
type nodeID int32

const noNode = nodeID(-1)

type node struct {
	weight uint64
	left   nodeID
	right  nodeID
	char   rune
}

func (n *node) isLeaf() bool {
	return n.left == noNode
}

// tree is a Huffman tree stored as an arena of nodes.  Leaves come first, in
// the order their symbols were given; internal nodes follow in merge order.
type tree struct {
	nodes []node
	root  nodeID
}

func (t *tree) node(id nodeID) *node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "node %d out of range [0, %d)", id, len(t.nodes))
	return &t.nodes[id]
}

func (t *tree) addLeaf(sym Symbol) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{weight: sym.Count, left: noNode, right: noNode, char: sym.Char})
	return id
}

func (t *tree) addInternal(left nodeID, right nodeID) nodeID {
	a, b := t.node(left).weight, t.node(right).weight

	// Compute weight using saturating addition
	weight := a + b
	if weight < a {
		weight = math.MaxUint64
	}

	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{weight: weight, left: left, right: right, char: -1})
	return id
}

// buildTree performs greedy Huffman construction over the given symbols.
//
// Every symbol becomes a leaf in the priority list; then the two lightest
// nodes are repeatedly merged into a new internal node (first removed on the
// left) until only the root remains.  This takes exactly len(symbols)-1
// merges.
//
func buildTree(symbols []Symbol) (*tree, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}

	t := &tree{nodes: make([]node, 0, 2*len(symbols)-1)}
	pl := priorityList{t: t, list: make([]nodeID, 0, len(symbols))}
	for _, sym := range symbols {
		pl.Insert(t.addLeaf(sym))
	}

	for pl.Len() > 1 {
		a := pl.PopFront()
		b := pl.PopFront()
		pl.Insert(t.addInternal(a, b))
	}

	t.root = pl.PopFront()
	return t, nil
}

// walk visits every node of the tree in pre-order (node, left subtree, right
// subtree), passing the path from the root as a sequence of '0' (left) and
// '1' (right) bytes.  The path slice is reused between calls.
//
func (t *tree) walk(visit func(n *node, path []byte)) {
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are ever pushed, and len(path) == len(stack)-1
	// holds at the top of every iteration.

	type stackItem struct {
		id nodeID
		x  byte
	}

	depthHint := log2int(len(t.nodes))
	stack := make([]stackItem, 0, depthHint)
	path := make([]byte, 0, depthHint)

	processChild := func(child nodeID, bit byte) {
		path = append(path, bit)
		n := t.node(child)
		visit(n, path)
		if n.isLeaf() {
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{id: child})
	}

	root := t.node(t.root)
	visit(root, path)
	if root.isLeaf() {
		return
	}

	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.node(top.id).left, '0')
		case 1:
			processChild(t.node(top.id).right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}
}

// type priorityList {{{

// priorityList holds node handles sorted ascending by weight.  A node is
// inserted ahead of any nodes that already share its weight.
type priorityList struct {
	t    *tree
	list []nodeID
}

func (pl *priorityList) Len() int {
	return len(pl.list)
}

// Insert places id at the first index whose weight is not strictly less than
// the weight of id.
func (pl *priorityList) Insert(id nodeID) {
	weight := pl.t.node(id).weight
	i := sort.Search(len(pl.list), func(i int) bool {
		return pl.t.node(pl.list[i]).weight >= weight
	})
	pl.list = append(pl.list, noNode)
	copy(pl.list[i+1:], pl.list[i:])
	pl.list[i] = id
}

// PopFront removes and returns the lightest node.
func (pl *priorityList) PopFront() nodeID {
	assert.Assertf(len(pl.list) != 0, "PopFront on empty priority list")
	id := pl.list[0]
	pl.list = pl.list[1:]
	return id
}

// }}}
