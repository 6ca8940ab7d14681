package panes

import (
	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/ui"
)

// Handle is the result of a registry lookup. Static and browser handles
// alias the owned instance; property handles own a fresh pane; the tab
// content handle is inert because the host expands it into the active tab.
type Handle struct {
	Type config.PaneType
	pane Pane
}

// IsTabContent reports whether the handle stands for the active tab area.
func (h Handle) IsTabContent() bool {
	return h.pane == nil
}

// Pane returns the underlying pane, or nil for tab content.
func (h Handle) Pane() Pane {
	return h.pane
}

func (h Handle) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.Render(f, area, ctx)
}

func (h Handle) OnHide(ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.OnHide(ctx)
}

func (h Handle) BeforeShow(ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.BeforeShow(ctx)
}

func (h Handle) OnEvent(ev Event, visible bool, ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.OnEvent(ev, visible, ctx)
}

func (h Handle) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.HandleAction(ev, ctx)
}

func (h Handle) HandleMouseEvent(ev MouseEvent, ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.HandleMouseEvent(ev, ctx)
}

func (h Handle) OnQueryFinished(res QueryResult, visible bool, ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.OnQueryFinished(res, visible, ctx)
}

func (h Handle) CalculateAreas(area layout.Rect, ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.CalculateAreas(area, ctx)
}

func (h Handle) Resize(area layout.Rect, ctx *ui.Context) error {
	if h.pane == nil {
		return nil
	}
	return h.pane.Resize(area, ctx)
}
