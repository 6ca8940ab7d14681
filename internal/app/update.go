package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/ui"
	"github.com/zhubert/stave/internal/ui/panes"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.arrange()
		if m.layout != nil {
			if err := m.registry.ResizeAll(m.layout.areas(), m.ctx); err != nil {
				logger.WithComponent("app").Warn("resize failed", "error", err)
			}
			if err := m.registry.Broadcast(panes.EventResized, m.ctx); err != nil {
				logger.WithComponent("app").Warn("resize broadcast failed", "error", err)
			}
		}

	case StatusTickMsg:
		cmds = append(cmds, m.refreshStatus(true))

	case StatusMsg:
		cmds = append(cmds, m.handleStatus(msg))
		if msg.tick {
			cmds = append(cmds, m.statusTick())
		}

	case AnimationTickMsg:
		m.animating = false
		if m.animated() {
			m.refreshClock()
			m.animating = true
			cmds = append(cmds, animationTick())
		}

	case QueryFinishedMsg:
		cmds = append(cmds, m.handleQueryFinished(msg))

	case FlashExpiredMsg:
		m.handleFlashExpired(msg)

	case tea.KeyPressMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			m.Close()
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case tea.MouseClickMsg:
		cmds = append(cmds, m.handleClick(msg.Mouse()))

	case tea.MouseWheelMsg:
		cmds = append(cmds, m.handleWheel(msg.Mouse()))
	}

	cmds = append(cmds, m.settle())
	return m, tea.Batch(cmds...)
}

// settle applies what panes requested while handling the message: a tab
// switch, a flash and backend queries.
func (m *Model) settle() tea.Cmd {
	var cmds []tea.Cmd
	if name, ok := m.ctx.Scheduler.TakeTab(); ok {
		m.selectTab(name)
	}
	m.arrange()
	if text, ok := m.ctx.Scheduler.TakeFlash(); ok {
		cmds = append(cmds, m.showFlash(text))
	}
	if !m.animating && m.animated() {
		m.animating = true
		cmds = append(cmds, animationTick())
	}
	cmds = append(cmds, m.runQueries())
	return tea.Batch(cmds...)
}

// animated reports whether a visible pane redraws between status refreshes.
func (m *Model) animated() bool {
	if m.layout == nil {
		return false
	}
	for _, l := range m.layout.leaves {
		switch l.typ.Kind {
		case config.PaneCava:
			return true
		case config.PaneProperty:
			if l.typ.Property != nil && l.typ.Property.ScrollSpeed > 0 {
				return true
			}
		}
	}
	return false
}

// refreshClock moves the snapshot clock forward without a backend round trip.
func (m *Model) refreshClock() {
	snap := *m.ctx.Snapshot
	snap.Now = time.Now()
	m.ctx.Snapshot = &snap
}

// handleKey routes a key press to the focused pane, then to the global
// bindings if the pane left it unconsumed.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if m.help != nil {
		if m.help.Update(msg) {
			m.help = nil
		}
		return nil, false
	}
	ev := panes.NewKeyEvent(msg, m.cfg.Keymap)
	if h, ok := m.focusedHandle(); ok {
		if err := h.HandleAction(ev, m.ctx); err != nil {
			logger.WithPane(m.focus).Warn("key handler failed", "key", msg.String(), "error", err)
			return m.showFlash(err.Error()), false
		}
		if ev.Consumed() {
			return nil, false
		}
	}
	if !ev.Bound {
		return nil, false
	}
	return m.handleGlobal(ev.Action)
}

// handleGlobal runs an action no pane consumed. It reports whether the
// program should exit.
func (m *Model) handleGlobal(a keys.Action) (tea.Cmd, bool) {
	st := *m.ctx.Status()
	s := m.ctx.Scheduler

	switch a {
	case keys.Quit:
		return nil, true
	case keys.NextTab:
		m.setTab(m.tab + 1)
	case keys.PrevTab:
		m.setTab(m.tab - 1)
	case keys.NextPane:
		m.cycleFocus()
	case keys.Help:
		m.help = ui.NewHelp(m.cfg.Keymap)
	case keys.TogglePause:
		s.Command("toggle_pause", func(ctx context.Context, c mpd.Client) error {
			return c.TogglePause(ctx)
		})
	case keys.VolumeUp, keys.VolumeDown:
		delta := volumeStep
		if a == keys.VolumeDown {
			delta = -volumeStep
		}
		v := st.Volume.Add(delta)
		s.Command("volume", func(ctx context.Context, c mpd.Client) error {
			return c.SetVolume(ctx, v)
		})
		return m.showFlash(fmt.Sprintf("Volume %d%%", v.Value())), false
	case keys.ToggleRepeat:
		on := !st.Repeat
		s.Command("repeat", func(ctx context.Context, c mpd.Client) error {
			return c.SetRepeat(ctx, on)
		})
		return m.showFlash(toggleLabel("Repeat", on)), false
	case keys.ToggleRandom:
		on := !st.Random
		s.Command("random", func(ctx context.Context, c mpd.Client) error {
			return c.SetRandom(ctx, on)
		})
		return m.showFlash(toggleLabel("Random", on)), false
	case keys.CycleConsume:
		v := st.Consume.Next()
		s.Command("consume", func(ctx context.Context, c mpd.Client) error {
			return c.SetConsume(ctx, v)
		})
		return m.showFlash("Consume " + v.String()), false
	case keys.CycleSingle:
		v := st.Single.Next()
		s.Command("single", func(ctx context.Context, c mpd.Client) error {
			return c.SetSingle(ctx, v)
		})
		return m.showFlash("Single " + v.String()), false
	case keys.UpdateDB:
		s.Command("update", func(ctx context.Context, c mpd.Client) error {
			return c.Update(ctx)
		})
		return m.showFlash("Updating database…"), false
	}
	return nil, false
}

func toggleLabel(name string, on bool) string {
	if on {
		return name + " on"
	}
	return name + " off"
}

// handleClick focuses the pane under the cursor and forwards the click.
// A second click on the same cell within doubleClickWindow is a double
// click.
func (m *Model) handleClick(mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	now := time.Now()
	kind := panes.MouseLeftClick
	if m.lastClick.x == mouse.X && m.lastClick.y == mouse.Y && now.Sub(m.lastClick.at) <= doubleClickWindow {
		kind = panes.MouseDoubleClick
		m.lastClick = click{}
	} else {
		m.lastClick = click{x: mouse.X, y: mouse.Y, at: now}
	}
	return m.dispatchMouse(panes.MouseEvent{Kind: kind, X: mouse.X, Y: mouse.Y}, true)
}

func (m *Model) handleWheel(mouse tea.Mouse) tea.Cmd {
	var kind panes.MouseKind
	switch mouse.Button {
	case tea.MouseWheelUp:
		kind = panes.MouseScrollUp
	case tea.MouseWheelDown:
		kind = panes.MouseScrollDown
	default:
		return nil
	}
	return m.dispatchMouse(panes.MouseEvent{Kind: kind, X: mouse.X, Y: mouse.Y}, false)
}

// dispatchMouse sends ev to the pane under it.
func (m *Model) dispatchMouse(ev panes.MouseEvent, focus bool) tea.Cmd {
	if m.layout == nil || m.help != nil {
		return nil
	}
	l, ok := m.layout.at(ev.X, ev.Y)
	if !ok {
		return nil
	}
	if focus && focusable(l.typ) {
		m.focus = l.typ.Key()
	}
	h, err := m.registry.Lookup(l.typ)
	if err != nil {
		logger.WithComponent("app").Warn("mouse target lookup failed", "pane", l.typ.Key(), "error", err)
		return nil
	}
	if err := h.HandleMouseEvent(ev, m.ctx); err != nil {
		logger.WithPane(l.typ.Key()).Warn("mouse handler failed", "error", err)
		return m.showFlash(err.Error())
	}
	return nil
}
