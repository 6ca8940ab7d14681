package panes

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/ui"
)

const tabSeparator = " │ "

// Tabs draws the tab bar and switches tabs on click.
type Tabs struct {
	Base

	// hits are the frame columns each tab was last drawn at.
	hits []tabHit
	row  int
}

type tabHit struct {
	name       string
	start, end int
}

func (t *Tabs) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	t.hits = t.hits[:0]
	if area.Height <= 0 || area.Width <= 0 {
		return nil
	}
	names := ctx.Config.TabNames()
	if len(names) == 0 {
		return nil
	}
	active := 0
	parts := make([]string, len(names))
	widths := make([]int, len(names))
	for i, name := range names {
		style := ui.TabStyle
		if name == ctx.ActiveTab() {
			style = ui.TabActiveStyle
			active = i
		}
		parts[i] = style.Render(name)
		widths[i] = ansi.StringWidth(parts[i])
	}

	sep := ansi.StringWidth(tabSeparator)
	lo, hi := visibleTabs(widths, active, area.Width, sep)
	width := sep * (hi - lo - 1)
	for _, w := range widths[lo:hi] {
		width += w
	}
	if width > area.Width {
		// Only the active tab is left and it does not fit either.
		parts[active] = ansi.Truncate(parts[active], area.Width, "…")
		widths[active] = area.Width
		width = area.Width
	}

	right := area.X + area.Width
	x := area.X + (area.Width-width)/2
	for i := lo; i < hi; i++ {
		t.hits = append(t.hits, tabHit{name: names[i], start: x, end: min(x+widths[i], right)})
		x += widths[i] + sep
	}
	t.row = area.Y + area.Height/2

	line := strings.Join(parts[lo:hi], ui.MutedStyle.Render(tabSeparator))
	f.DrawSpans(area, area.Height/2, rendered(line), config.AlignCenter)
	return nil
}

// visibleTabs returns the range of tabs that fits in avail columns. The range
// always holds active and grows to the right first, then to the left.
func visibleTabs(widths []int, active, avail, sep int) (lo, hi int) {
	lo, hi = active, active+1
	used := widths[active]
	for {
		grown := false
		if hi < len(widths) && used+sep+widths[hi] <= avail {
			used += sep + widths[hi]
			hi++
			grown = true
		}
		if lo > 0 && used+sep+widths[lo-1] <= avail {
			used += sep + widths[lo-1]
			lo--
			grown = true
		}
		if !grown {
			return lo, hi
		}
	}
}

// TabAt returns the tab drawn at frame column x of the tab row.
func (t *Tabs) TabAt(x, y int) (string, bool) {
	if y != t.row {
		return "", false
	}
	for _, h := range t.hits {
		if x >= h.start && x < h.end {
			return h.name, true
		}
	}
	return "", false
}

func (t *Tabs) HandleMouseEvent(ev MouseEvent, ctx *ui.Context) error {
	if ev.Kind != MouseLeftClick && ev.Kind != MouseDoubleClick {
		return nil
	}
	if name, ok := t.TabAt(ev.X, ev.Y); ok {
		ctx.Scheduler.RequestTab(name)
	}
	return nil
}

func (t *Tabs) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	return nil
}
