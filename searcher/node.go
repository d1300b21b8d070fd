package searcher

import "connect3/game"

// node is one position in the search tree. Children are owned by their parent;
// parent is a back-reference only and is nil for the root.
type node struct {
	state    game.State
	parent   *node
	children []*node
	ply      int
	value    int
}

func newNode(parent *node, state game.State) *node {
	n := &node{state: state, parent: parent}
	if parent != nil {
		n.ply = parent.ply + 1
	}
	return n
}

func (n *node) addChild(state game.State) *node {
	child := newNode(n, state)
	n.children = append(n.children, child)
	return child
}

// descendants counts every node below n in the tree built so far.
func (n *node) descendants() int {
	count := 0
	for _, child := range n.children {
		count += 1 + child.descendants()
	}
	return count
}

func (n *node) isLeaf() bool {
	return len(n.children) == 0
}
