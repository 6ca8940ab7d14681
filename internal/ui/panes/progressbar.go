package panes

import (
	"strings"
	"time"

	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/ui"
)

// ProgressBar draws playback progress across its area.
type ProgressBar struct {
	Base
}

// progressCells returns how many of width cells are elapsed.
func progressCells(elapsed, duration time.Duration, width int) int {
	if duration <= 0 || width <= 0 || elapsed <= 0 {
		return 0
	}
	if elapsed >= duration {
		return width
	}
	return int(int64(width) * int64(elapsed) / int64(duration))
}

func (p *ProgressBar) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	if area.Width <= 0 || area.Height <= 0 {
		return nil
	}
	st := ctx.Status()
	sym := ctx.Config.Symbols
	done := progressCells(st.Elapsed, st.Duration, area.Width)

	var b strings.Builder
	b.WriteString(ui.ProgressElapsedStyle.Render(strings.Repeat(sym.ProgressElapsed, done)))
	rest := area.Width - done
	if st.Duration > 0 && rest > 0 {
		b.WriteString(ui.ProgressElapsedStyle.Render(sym.ProgressThumb))
		rest--
	}
	b.WriteString(ui.ProgressTrackStyle.Render(strings.Repeat(sym.ProgressTrack, max(rest, 0))))
	f.DrawLine(area, area.Height/2, b.String())
	return nil
}

func (p *ProgressBar) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	return nil
}
