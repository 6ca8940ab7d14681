package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/stave/internal/errors"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/ui"
)

// View renders the UI
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.render().Render())
	return v
}

// RenderANSI renders the current frame with styling.
func (m *Model) RenderANSI() string {
	return m.render().Render()
}

// RenderToString renders the current frame as plain text.
func (m *Model) RenderToString() string {
	return m.render().String()
}

// render draws one frame. Pane failures abort the frame and are shown as a
// single error line until the next successful frame.
func (m *Model) render() *ui.Frame {
	f := ui.NewFrame(m.width, m.height)
	if m.width <= 0 || m.height <= 0 {
		return f
	}
	if m.tooSmall() {
		msg := fmt.Sprintf("Terminal too small (%dx%d)", m.width, m.height)
		for y, line := range strings.Split(ansi.Wrap(msg, m.width, ""), "\n") {
			f.DrawLine(f.Area(), y, ui.WarningStyle.Render(line))
		}
		return f
	}
	if m.layout == nil && m.layoutErr == nil {
		m.arrange()
	}

	if m.layoutErr != nil {
		m.err = m.layoutErr
	} else {
		m.err = m.drawPanes(f)
	}
	m.ctx.Frames++

	if m.err != nil {
		logger.WithComponent("app").Debug("frame failed", "error", m.err)
		f = ui.NewFrame(m.width, m.height)
		f.DrawLine(f.Area(), 0, ui.ErrorLineStyle.Render(oneLine(m.err.Error())))
	}
	if m.help != nil && m.err == nil {
		m.help.Render(f)
	}
	if m.flash != "" {
		f.DrawLine(f.Area(), m.height-1, ui.FlashStyle.Render(" "+oneLine(m.flash)+" "))
	}
	return f
}

// drawPanes draws borders and every placed pane.
func (m *Model) drawPanes(f *ui.Frame) error {
	if m.layout == nil {
		return nil
	}
	for _, s := range m.layout.splits {
		f.DrawBorder(s.outer, s.borders, ui.BorderStyle)
	}
	for _, l := range m.layout.leaves {
		h, err := m.registry.Lookup(l.typ)
		if err != nil {
			return err
		}
		f.DrawBorder(l.outer, l.borders, m.borderStyle(l.typ.Key()))
		if l.inner.IsEmpty() {
			continue
		}
		if err := h.CalculateAreas(l.inner, m.ctx); err != nil {
			return errors.PaneFailed(l.typ.Key(), err)
		}
		if err := h.Render(f, l.inner, m.ctx); err != nil {
			return errors.PaneFailed(l.typ.Key(), err)
		}
	}
	return nil
}

func (m *Model) borderStyle(key string) lipgloss.Style {
	if key == m.focus {
		return ui.BorderFocusStyle
	}
	return ui.BorderStyle
}

// oneLine collapses s onto a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Areas returns the inner rectangle of every pane in the last frame, by key.
func (m *Model) Areas() map[string]layout.Rect {
	if m.layout == nil {
		return nil
	}
	return m.layout.areas()
}
