package layout

// LeafFunc receives a leaf's pane, its border-inset inner area, its borders
// and its outer area.
type LeafFunc[P, T any] func(pane P, inner Rect, borders Borders, outer Rect, data *T) error

// SplitFunc receives a split's borders and outer area so it can draw them.
type SplitFunc[T any] func(borders Borders, outer Rect, data *T) error

type frame[P any] struct {
	node *Node[P]
	area Rect
}

// Walk visits every node of root exactly once, depth first and in declared
// order, threading data through the callbacks. The first callback error
// stops the walk and is returned. split may be nil.
func Walk[P, T any](root *Node[P], area Rect, data *T, leaf LeafFunc[P, T], split SplitFunc[T]) error {
	stack := []frame[P]{{node: root, area: area}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.node
		if n == nil {
			continue
		}

		if n.IsLeaf() {
			if err := leaf(n.Pane, f.area.Inner(n.Borders), n.Borders, f.area, data); err != nil {
				return err
			}
			continue
		}

		other := f.area.Height
		if n.Split.Direction == Vertical {
			other = f.area.Width
		}
		constraints := make([]Constraint, len(n.Split.Children))
		for i, c := range n.Split.Children {
			constraints[i] = c.Size.Constraint(other)
		}
		areas := Split(f.area.Inner(n.Borders), n.Split.Direction, constraints)

		if split != nil {
			if err := split(n.Borders, f.area, data); err != nil {
				return err
			}
		}

		// Pushed in reverse so the first child pops first.
		for i := len(areas) - 1; i >= 0; i-- {
			stack = append(stack, frame[P]{node: n.Split.Children[i].Node, area: areas[i]})
		}
	}
	return nil
}

// ForEachPane walks root calling fn for every leaf.
func ForEachPane[P any](root *Node[P], area Rect, fn func(pane P, inner Rect, borders Borders, outer Rect) error) error {
	var none struct{}
	return Walk[P, struct{}](root, area, &none,
		func(pane P, inner Rect, borders Borders, outer Rect, _ *struct{}) error {
			return fn(pane, inner, borders, outer)
		},
		nil,
	)
}
