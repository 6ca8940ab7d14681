package layout

// Node is a leaf holding a pane key, or a split holding sized children.
// Trees are built at configuration load and are not modified afterwards.
type Node[P any] struct {
	Pane    P
	Borders Borders

	// Split is nil for leaves.
	Split *SplitNode[P]
}

// SplitNode divides its inner area among its children along Direction.
type SplitNode[P any] struct {
	Direction Direction
	Children  []Child[P]
}

// Child is one sized entry of a split.
type Child[P any] struct {
	Size Size
	Node *Node[P]
}

// Leaf returns a leaf node.
func Leaf[P any](pane P, borders Borders) *Node[P] {
	return &Node[P]{Pane: pane, Borders: borders}
}

// NewSplit returns a split node.
func NewSplit[P any](dir Direction, borders Borders, children ...Child[P]) *Node[P] {
	return &Node[P]{Borders: borders, Split: &SplitNode[P]{Direction: dir, Children: children}}
}

// Sized pairs a size with a node.
func Sized[P any](size Size, node *Node[P]) Child[P] {
	return Child[P]{Size: size, Node: node}
}

// IsLeaf reports whether n holds a pane.
func (n *Node[P]) IsLeaf() bool {
	return n.Split == nil
}

// Leaves returns every pane in declaration order.
func Leaves[P any](root *Node[P]) []P {
	var out []P
	stack := []*Node[P]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if n.IsLeaf() {
			out = append(out, n.Pane)
			continue
		}
		for i := len(n.Split.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Split.Children[i].Node)
		}
	}
	return out
}

// Depth returns the number of levels in the tree. A single leaf has depth 1.
func Depth[P any](root *Node[P]) int {
	type item struct {
		n     *Node[P]
		depth int
	}
	deepest := 0
	stack := []item{{root, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.n == nil {
			continue
		}
		deepest = max(deepest, it.depth)
		if it.n.IsLeaf() {
			continue
		}
		for _, c := range it.n.Split.Children {
			stack = append(stack, item{c.Node, it.depth + 1})
		}
	}
	return deepest
}
