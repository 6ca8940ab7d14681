package layout

import "fmt"

// Rect is an axis-aligned screen rectangle in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns a rectangle, clamping negative sizes to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: max(w, 0), Height: max(h, 0)}
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Inner returns r shrunk by one cell on every side that has a border.
func (r Rect) Inner(b Borders) Rect {
	x, y, w, h := r.X, r.Y, r.Width, r.Height
	if b.Has(BorderLeft) && w > 0 {
		x++
		w--
	}
	if b.Has(BorderRight) && w > 0 {
		w--
	}
	if b.Has(BorderTop) && h > 0 {
		y++
		h--
	}
	if b.Has(BorderBottom) && h > 0 {
		h--
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Borders is a set of rectangle sides.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BordersNone Borders = 0
	BordersAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether every side in o is set.
func (b Borders) Has(o Borders) bool {
	return b&o == o
}

var borderNames = []struct {
	name string
	b    Borders
}{
	{"top", BorderTop},
	{"right", BorderRight},
	{"bottom", BorderBottom},
	{"left", BorderLeft},
}

// ParseBorders accepts "all", "none" or a list of side names.
func ParseBorders(names []string) (Borders, error) {
	var b Borders
	for _, n := range names {
		switch n {
		case "all":
			b |= BordersAll
			continue
		case "none", "":
			continue
		}
		found := false
		for _, bn := range borderNames {
			if bn.name == n {
				b |= bn.b
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown border %q", n)
		}
	}
	return b, nil
}

func (b Borders) String() string {
	switch b {
	case BordersNone:
		return "none"
	case BordersAll:
		return "all"
	}
	s := ""
	for _, bn := range borderNames {
		if b.Has(bn.b) {
			if s != "" {
				s += ","
			}
			s += bn.name
		}
	}
	return s
}

// Direction is the axis a split divides.
type Direction int

const (
	// Horizontal places children left to right.
	Horizontal Direction = iota
	// Vertical places children top to bottom.
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection accepts "horizontal" or "vertical".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
