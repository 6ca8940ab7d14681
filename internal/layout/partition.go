package layout

import "sort"

// ConstraintKind is the resolved form of a size.
type ConstraintKind int

const (
	ConstraintLength ConstraintKind = iota
	ConstraintPercent
	ConstraintRatio
)

// Constraint is one child's size along a split axis.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Partition divides extent among constraints. The result always sums to
// extent when there is at least one constraint.
//
// Lengths and percentages are taken first. When they overflow, children are
// shrunk from the last one backwards. Ratios share the remainder by weight
// using largest remainders. Cells nobody claims go to the last child.
func Partition(constraints []Constraint, extent int) []int {
	out := make([]int, len(constraints))
	if len(constraints) == 0 {
		return out
	}
	extent = max(extent, 0)

	fixed := 0
	totalWeight := 0
	for i, c := range constraints {
		switch c.Kind {
		case ConstraintLength:
			out[i] = max(c.Value, 0)
		case ConstraintPercent:
			out[i] = extent * min(max(c.Value, 0), 100) / 100
		case ConstraintRatio:
			totalWeight += max(c.Value, 0)
			continue
		}
		fixed += out[i]
	}

	for i := len(out) - 1; i >= 0 && fixed > extent; i-- {
		cut := min(out[i], fixed-extent)
		out[i] -= cut
		fixed -= cut
	}

	remaining := extent - fixed
	if totalWeight > 0 && remaining > 0 {
		distributeRatios(constraints, out, remaining, totalWeight)
		return out
	}
	if remaining > 0 {
		out[len(out)-1] += remaining
	}
	return out
}

func distributeRatios(constraints []Constraint, out []int, remaining, totalWeight int) {
	type share struct {
		idx  int
		frac int
	}
	var shares []share
	given := 0
	for i, c := range constraints {
		if c.Kind != ConstraintRatio {
			continue
		}
		w := max(c.Value, 0)
		out[i] = remaining * w / totalWeight
		given += out[i]
		shares = append(shares, share{idx: i, frac: remaining * w % totalWeight})
	}
	sort.SliceStable(shares, func(a, b int) bool {
		return shares[a].frac > shares[b].frac
	})
	for i := 0; given < remaining; i++ {
		out[shares[i%len(shares)].idx]++
		given++
	}
}

// Split divides area along dir.
func Split(area Rect, dir Direction, constraints []Constraint) []Rect {
	extent := area.Width
	if dir == Vertical {
		extent = area.Height
	}
	sizes := Partition(constraints, extent)

	rects := make([]Rect, len(sizes))
	offset := 0
	for i, n := range sizes {
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, Width: n, Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: n}
		}
		offset += n
	}
	return rects
}
