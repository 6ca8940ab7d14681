package property

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Span is a fragment of text with a style.
type Span struct {
	Text  string
	Style Style
}

// Plain concatenates the text of spans.
func Plain(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Render renders spans into a single ANSI-styled string.
func Render(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Style.IsZero() {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(s.Style.Lipgloss().Render(s.Text))
	}
	return b.String()
}

// Width returns the display width of spans in cells.
func Width(spans []Span) int {
	w := 0
	for _, s := range spans {
		w += ansi.StringWidth(s.Text)
	}
	return w
}
