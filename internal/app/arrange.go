package app

import (
	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/errors"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/ui"
	"github.com/zhubert/stave/internal/ui/panes"
)

// placed is a pane leaf positioned for one frame.
type placed struct {
	typ     config.PaneType
	inner   layout.Rect
	outer   layout.Rect
	borders layout.Borders
}

// edge is a bordered split to draw.
type edge struct {
	outer   layout.Rect
	borders layout.Borders
}

// arrangement is the layout of one frame.
type arrangement struct {
	leaves []placed
	splits []edge
}

// visible returns the pane types of every leaf in draw order.
func (a *arrangement) visible() []config.PaneType {
	out := make([]config.PaneType, len(a.leaves))
	for i, l := range a.leaves {
		out[i] = l.typ
	}
	return out
}

// areas returns the inner rectangle of every leaf by pane key. A pane placed
// twice keeps its first rectangle.
func (a *arrangement) areas() map[string]layout.Rect {
	out := make(map[string]layout.Rect, len(a.leaves))
	for _, l := range a.leaves {
		if _, ok := out[l.typ.Key()]; !ok {
			out[l.typ.Key()] = l.inner
		}
	}
	return out
}

// at returns the topmost leaf containing the cell.
func (a *arrangement) at(x, y int) (placed, bool) {
	for i := len(a.leaves) - 1; i >= 0; i-- {
		if a.leaves[i].outer.Contains(x, y) {
			return a.leaves[i], true
		}
	}
	return placed{}, false
}

// find returns the first leaf serving key.
func (a *arrangement) find(key string) (placed, bool) {
	for _, l := range a.leaves {
		if l.typ.Key() == key {
			return l, true
		}
	}
	return placed{}, false
}

// arrangeTree partitions root into area. A tab content leaf is replaced by
// the partition of the active tab's tree inside its inner rectangle.
func arrangeTree(cfg *config.Config, root *layout.Node[config.PaneType], area layout.Rect, activeTab string, out *arrangement) error {
	return layout.Walk(root, area, out,
		func(p config.PaneType, inner layout.Rect, borders layout.Borders, outer layout.Rect, a *arrangement) error {
			if p.Kind == config.PaneTabContent {
				if borders != layout.BordersNone {
					a.splits = append(a.splits, edge{outer: outer, borders: borders})
				}
				tab, ok := cfg.Tab(activeTab)
				if !ok {
					return errors.E(errors.Op("app.arrange"), errors.KindNotFound, "no tab named "+activeTab)
				}
				return arrangeTree(cfg, tab.Root, inner, activeTab, a)
			}
			a.leaves = append(a.leaves, placed{typ: p, inner: inner, outer: outer, borders: borders})
			return nil
		},
		func(borders layout.Borders, outer layout.Rect, a *arrangement) error {
			if borders != layout.BordersNone {
				a.splits = append(a.splits, edge{outer: outer, borders: borders})
			}
			return nil
		},
	)
}

// tooSmall reports whether the terminal is below the size the layout is
// computed for.
func (m *Model) tooSmall() bool {
	return m.width < ui.MinTerminalWidth || m.height < ui.MinTerminalHeight
}

// arrange recomputes the layout for the current size and tab and runs the
// visibility transitions it implies.
func (m *Model) arrange() {
	if m.tooSmall() {
		return
	}
	a := &arrangement{}
	area := layout.NewRect(0, 0, m.width, m.height)
	if err := arrangeTree(m.cfg, m.cfg.Layout, area, m.ctx.ActiveTab(), a); err != nil {
		m.layout = nil
		m.layoutErr = errors.LayoutFailed(err)
		logger.WithComponent("app").Error("layout failed", "error", err)
		return
	}
	m.layout = a
	m.layoutErr = nil

	if err := m.registry.SyncVisibility(a.visible(), m.ctx); err != nil {
		logger.WithComponent("app").Warn("visibility sync failed", "error", err)
	}
	m.ensureFocus()
}

// focusable reports whether a pane takes key presses.
func focusable(p config.PaneType) bool {
	switch p.Kind {
	case config.PaneQueue, config.PaneDirectories, config.PaneArtists,
		config.PaneAlbumArtists, config.PaneAlbums, config.PanePlaylists,
		config.PaneSearch, config.PaneAlbumArt, config.PaneLyrics, config.PaneBrowser:
		return true
	}
	return false
}

// focusOrder returns the keys of the visible focusable panes in layout
// order, without duplicates.
func (m *Model) focusOrder() []string {
	if m.layout == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, l := range m.layout.leaves {
		key := l.typ.Key()
		if focusable(l.typ) && !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

// ensureFocus moves focus to the first focusable pane when the focused one
// is no longer visible.
func (m *Model) ensureFocus() {
	order := m.focusOrder()
	for _, k := range order {
		if k == m.focus {
			return
		}
	}
	m.focus = ""
	if len(order) > 0 {
		m.focus = order[0]
	}
}

// cycleFocus moves focus to the next focusable pane.
func (m *Model) cycleFocus() {
	order := m.focusOrder()
	if len(order) == 0 {
		return
	}
	for i, k := range order {
		if k == m.focus {
			m.focus = order[(i+1)%len(order)]
			return
		}
	}
	m.focus = order[0]
}

// focusedHandle returns the handle of the focused pane.
func (m *Model) focusedHandle() (panes.Handle, bool) {
	if m.layout == nil || m.focus == "" {
		return panes.Handle{}, false
	}
	l, ok := m.layout.find(m.focus)
	if !ok {
		return panes.Handle{}, false
	}
	h, err := m.registry.Lookup(l.typ)
	if err != nil {
		return panes.Handle{}, false
	}
	return h, true
}

// setTab activates the tab at index i, wrapping around.
func (m *Model) setTab(i int) {
	names := m.cfg.TabNames()
	if len(names) == 0 {
		return
	}
	i = ((i % len(names)) + len(names)) % len(names)
	m.selectTab(names[i])
}

// SelectTab activates the tab called name and recomputes the layout. It
// reports whether the tab exists.
func (m *Model) SelectTab(name string) bool {
	if !m.selectTab(name) {
		return false
	}
	m.arrange()
	return true
}

// selectTab activates the tab called name. Unknown names are ignored.
func (m *Model) selectTab(name string) bool {
	for i, n := range m.cfg.TabNames() {
		if n != name {
			continue
		}
		m.tab = i
		if m.ctx.ActiveTab() != name {
			snap := *m.ctx.Snapshot
			snap.ActiveTab = name
			m.ctx.Snapshot = &snap
			logger.WithComponent("app").Debug("tab changed", "tab", name)
		}
		return true
	}
	return false
}
