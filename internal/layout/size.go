package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeKind selects how a child's extent is derived.
type SizeKind int

const (
	// SizeLength is a fixed number of cells.
	SizeLength SizeKind = iota
	// SizePercent is a share of the split axis.
	SizePercent
	// SizeRatio shares whatever the fixed sizes leave, by weight.
	SizeRatio
	// SizeOtherPercent is a share of the other axis, so a child can keep an
	// aspect ratio.
	SizeOtherPercent
)

// Size is a configured child size.
type Size struct {
	Kind  SizeKind
	Value int
}

// Length, Percent, Ratio and OtherPercent build sizes.
func Length(n int) Size       { return Size{Kind: SizeLength, Value: n} }
func Percent(p int) Size      { return Size{Kind: SizePercent, Value: p} }
func Ratio(w int) Size        { return Size{Kind: SizeRatio, Value: w} }
func OtherPercent(p int) Size { return Size{Kind: SizeOtherPercent, Value: p} }

// ParseSize parses "10", "30%", "2r" or "200%o".
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	kind := SizeLength
	num := s
	switch {
	case strings.HasSuffix(s, "%o"):
		kind, num = SizeOtherPercent, strings.TrimSuffix(s, "%o")
	case strings.HasSuffix(s, "%"):
		kind, num = SizePercent, strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "r"):
		kind, num = SizeRatio, strings.TrimSuffix(s, "r")
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return Size{}, fmt.Errorf("invalid size %q", s)
	}
	if kind == SizePercent && n > 100 {
		return Size{}, fmt.Errorf("invalid size %q: percentage above 100", s)
	}
	return Size{Kind: kind, Value: n}, nil
}

func (s Size) String() string {
	switch s.Kind {
	case SizePercent:
		return fmt.Sprintf("%d%%", s.Value)
	case SizeRatio:
		return fmt.Sprintf("%dr", s.Value)
	case SizeOtherPercent:
		return fmt.Sprintf("%d%%o", s.Value)
	default:
		return strconv.Itoa(s.Value)
	}
}

// Constraint resolves s against the length of the other axis.
func (s Size) Constraint(otherExtent int) Constraint {
	switch s.Kind {
	case SizePercent:
		return Constraint{Kind: ConstraintPercent, Value: s.Value}
	case SizeRatio:
		return Constraint{Kind: ConstraintRatio, Value: s.Value}
	case SizeOtherPercent:
		return Constraint{Kind: ConstraintLength, Value: otherExtent * s.Value / 100}
	default:
		return Constraint{Kind: ConstraintLength, Value: s.Value}
	}
}
