package panes

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/property"
	"github.com/zhubert/stave/internal/ui"
)

// scrollGap separates the end of scrolling text from its next repetition.
const scrollGap = "   "

// Property draws a line of property specs. It holds no state: scrolling is
// derived from the snapshot clock, so a fresh value per lookup is enough.
type Property struct {
	Base

	content *config.PropertyPane
}

// NewProperty returns a property pane over content.
func NewProperty(content *config.PropertyPane) *Property {
	return &Property{content: content}
}

// scrollOffset returns the first visible cell of text that is width cells
// wide and scrolls at speed cells per second.
func scrollOffset(millis int64, speed, width int) int {
	if speed <= 0 || width <= 0 {
		return 0
	}
	return int(millis * int64(speed) / 1000 % int64(width))
}

func (p *Property) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	if area.Height <= 0 || area.Width <= 0 {
		return nil
	}
	song, _ := ctx.CurrentSong()
	spans := ctx.LineSpans(p.content.Content, song)
	width := property.Width(spans)
	y := area.Height / 2

	if p.content.ScrollSpeed <= 0 || width <= area.Width {
		f.DrawSpans(area, y, spans, p.content.Align)
		return nil
	}

	text := property.Render(spans)
	loop := text + scrollGap
	period := width + len(scrollGap)
	off := scrollOffset(ctx.Snapshot.Now.UnixMilli(), p.content.ScrollSpeed, period)
	view := ansi.Cut(strings.Repeat(loop, 2), off, off+area.Width)
	f.DrawLine(area, y, view)
	return nil
}

func (p *Property) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	return nil
}
