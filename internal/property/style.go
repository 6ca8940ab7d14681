package property

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Style is a set of independently optional text attributes. An empty color
// or a nil flag means the attribute is unset and inherits from a parent.
type Style struct {
	Fg            string
	Bg            string
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Dim           *bool
	Reversed      *bool
	Strikethrough *bool
}

// Flag returns a pointer to v for use in Style literals.
func Flag(v bool) *bool {
	return &v
}

// IsZero reports whether no attribute is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Patch returns s with every attribute explicitly set in child applied on
// top. Attributes child leaves unset keep the value from s.
func (s Style) Patch(child Style) Style {
	out := s
	if child.Fg != "" {
		out.Fg = child.Fg
	}
	if child.Bg != "" {
		out.Bg = child.Bg
	}
	patchFlag(&out.Bold, child.Bold)
	patchFlag(&out.Italic, child.Italic)
	patchFlag(&out.Underline, child.Underline)
	patchFlag(&out.Dim, child.Dim)
	patchFlag(&out.Reversed, child.Reversed)
	patchFlag(&out.Strikethrough, child.Strikethrough)
	return out
}

func patchFlag(dst **bool, v *bool) {
	if v != nil {
		*dst = v
	}
}

// Lipgloss converts the style into a lipgloss style for rendering.
func (s Style) Lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(ParseColor(s.Fg))
	}
	if s.Bg != "" {
		st = st.Background(ParseColor(s.Bg))
	}
	if s.Bold != nil {
		st = st.Bold(*s.Bold)
	}
	if s.Italic != nil {
		st = st.Italic(*s.Italic)
	}
	if s.Underline != nil {
		st = st.Underline(*s.Underline)
	}
	if s.Dim != nil {
		st = st.Faint(*s.Dim)
	}
	if s.Reversed != nil {
		st = st.Reverse(*s.Reversed)
	}
	if s.Strikethrough != nil {
		st = st.Strikethrough(*s.Strikethrough)
	}
	return st
}

var namedColors = map[string]color.Color{
	"black":          lipgloss.Black,
	"red":            lipgloss.Red,
	"green":          lipgloss.Green,
	"yellow":         lipgloss.Yellow,
	"blue":           lipgloss.Blue,
	"magenta":        lipgloss.Magenta,
	"cyan":           lipgloss.Cyan,
	"white":          lipgloss.White,
	"gray":           lipgloss.BrightBlack,
	"grey":           lipgloss.BrightBlack,
	"bright_black":   lipgloss.BrightBlack,
	"bright_red":     lipgloss.BrightRed,
	"bright_green":   lipgloss.BrightGreen,
	"bright_yellow":  lipgloss.BrightYellow,
	"bright_blue":    lipgloss.BrightBlue,
	"bright_magenta": lipgloss.BrightMagenta,
	"bright_cyan":    lipgloss.BrightCyan,
	"bright_white":   lipgloss.BrightWhite,
	"reset":          lipgloss.NoColor{},
	"default":        lipgloss.NoColor{},
}

// ParseColor accepts a color name, an ANSI index or a #rrggbb hex value.
// Unknown values yield lipgloss.NoColor.
func ParseColor(s string) color.Color {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}
	return lipgloss.Color(s)
}

// ValidColor reports whether s names a color ParseColor understands.
func ValidColor(s string) bool {
	if _, ok := namedColors[strings.ToLower(s)]; ok {
		return true
	}
	_, none := lipgloss.Color(s).(lipgloss.NoColor)
	return !none
}
