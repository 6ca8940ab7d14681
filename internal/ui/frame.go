package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/property"
)

// Frame is the cell buffer one render pass draws into. Drawing is clipped to
// the rectangle passed to each call.
type Frame struct {
	scr uv.ScreenBuffer
}

// NewFrame returns a blank frame of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{scr: uv.NewScreenBuffer(max(width, 0), max(height, 0))}
}

// Area returns the full frame rectangle.
func (f *Frame) Area() layout.Rect {
	return layout.NewRect(0, 0, f.scr.Width(), f.scr.Height())
}

// Clear blanks area.
func (f *Frame) Clear(area layout.Rect) {
	f.scr.ClearArea(toUV(area))
}

// DrawString draws s, which may contain ANSI styling and newlines, into
// area. Lines wider than the area are truncated.
func (f *Frame) DrawString(area layout.Rect, s string) {
	if area.IsEmpty() {
		return
	}
	uv.NewStyledString(s).Draw(f.scr, toUV(area))
}

// DrawLine draws s on row y of area.
func (f *Frame) DrawLine(area layout.Rect, y int, s string) {
	if y < 0 || y >= area.Height {
		return
	}
	f.DrawString(layout.NewRect(area.X, area.Y+y, area.Width, 1), s)
}

// DrawSpans draws spans on row y of area, positioned by align. Spans wider
// than the area are truncated at the right edge.
func (f *Frame) DrawSpans(area layout.Rect, y int, spans []property.Span, align config.Alignment) {
	if y < 0 || y >= area.Height || area.Width <= 0 {
		return
	}
	s := property.Render(spans)
	w := ansi.StringWidth(s)
	if w > area.Width {
		s = ansi.Truncate(s, area.Width, "")
		w = area.Width
	}

	x := area.X
	switch align {
	case config.AlignCenter:
		x += (area.Width - w) / 2
	case config.AlignRight:
		x += area.Width - w
	}
	f.DrawString(layout.NewRect(x, area.Y+y, area.X+area.Width-x, 1), s)
}

// DrawBorder draws the selected sides of outer with rounded corners where two
// drawn sides meet.
func (f *Frame) DrawBorder(outer layout.Rect, b layout.Borders, style lipgloss.Style) {
	if outer.IsEmpty() || b == layout.BordersNone {
		return
	}
	top, bottom := b.Has(layout.BorderTop), b.Has(layout.BorderBottom)
	left, right := b.Has(layout.BorderLeft), b.Has(layout.BorderRight)

	edge := func(y int, leftCorner, rightCorner string) {
		var sb strings.Builder
		for x := 0; x < outer.Width; x++ {
			switch {
			case x == 0 && left:
				sb.WriteString(leftCorner)
			case x == outer.Width-1 && right:
				sb.WriteString(rightCorner)
			default:
				sb.WriteString(BorderHorizontal)
			}
		}
		f.DrawString(layout.NewRect(outer.X, y, outer.Width, 1), style.Render(sb.String()))
	}
	if top {
		edge(outer.Y, BorderTopLeft, BorderTopRight)
	}
	if bottom && (outer.Height > 1 || !top) {
		edge(outer.Y+outer.Height-1, BorderBottomLeft, BorderBottomRight)
	}

	y0, y1 := outer.Y, outer.Y+outer.Height
	if top {
		y0++
	}
	if bottom {
		y1--
	}
	side := style.Render(BorderVertical)
	for y := y0; y < y1; y++ {
		if left {
			f.DrawString(layout.NewRect(outer.X, y, 1, 1), side)
		}
		if right && (outer.Width > 1 || !left) {
			f.DrawString(layout.NewRect(outer.X+outer.Width-1, y, 1, 1), side)
		}
	}
}

// Render returns the frame with styling, ready for the terminal.
func (f *Frame) Render() string {
	return f.scr.Render()
}

// String returns the frame as plain text with trailing spaces trimmed.
func (f *Frame) String() string {
	return f.scr.String()
}

func toUV(r layout.Rect) uv.Rectangle {
	return uv.Rect(r.X, r.Y, r.Width, r.Height)
}
