package panes

import (
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/property"
	"github.com/zhubert/stave/internal/ui"
)

// list tracks selection and scroll offset of a vertical list.
type list struct {
	selected int
	offset   int
	height   int
}

func (l *list) clamp(n int) {
	if n <= 0 {
		l.selected, l.offset = 0, 0
		return
	}
	l.selected = min(max(l.selected, 0), n-1)
	l.offset = min(max(l.offset, 0), max(n-1, 0))
}

func (l *list) pageSize() int {
	if l.height <= 0 {
		return ui.DefaultPageSize
	}
	return l.height
}

// navigate applies a movement action and reports whether a was one.
func (l *list) navigate(a keys.Action, n int) bool {
	switch a {
	case keys.MoveUp:
		l.selected--
	case keys.MoveDown:
		l.selected++
	case keys.PageUp:
		l.selected -= l.pageSize() / 2
	case keys.PageDown:
		l.selected += l.pageSize() / 2
	case keys.Top:
		l.selected = 0
	case keys.Bottom:
		l.selected = n - 1
	default:
		return false
	}
	l.clamp(n)
	return true
}

func (l *list) scroll(delta, n int) {
	l.selected += delta
	l.clamp(n)
}

// window sizes the list to height rows and returns the visible index range.
// The selection stays ScrollOff rows away from either edge when possible.
func (l *list) window(height, n int) (start, end int) {
	l.height = height
	l.clamp(n)
	if height <= 0 || n == 0 {
		return 0, 0
	}

	off := min(ui.ScrollOff, (height-1)/2)
	if l.selected-off < l.offset {
		l.offset = l.selected - off
	}
	if l.selected+off >= l.offset+height {
		l.offset = l.selected + off - height + 1
	}
	l.offset = min(max(l.offset, 0), max(n-height, 0))
	return l.offset, min(l.offset+height, n)
}

// rowAt maps a frame y coordinate inside area to a list index.
func (l *list) rowAt(area layout.Rect, y, n int) (int, bool) {
	if y < area.Y || y >= area.Y+area.Height {
		return 0, false
	}
	i := l.offset + y - area.Y
	if i >= n {
		return 0, false
	}
	return i, true
}

// click selects the clicked row and reports whether it was already selected.
func (l *list) click(area layout.Rect, ev MouseEvent, n int) (hit, again bool) {
	i, ok := l.rowAt(area, ev.Y, n)
	if !ok || !area.Contains(ev.X, ev.Y) {
		return false, false
	}
	again = i == l.selected
	l.selected = i
	return true, again
}

// rendered wraps an already styled string so it can be positioned with
// Frame.DrawSpans.
func rendered(s string) []property.Span {
	return []property.Span{{Text: s}}
}
