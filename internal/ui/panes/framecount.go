package panes

import (
	"fmt"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/ui"
)

// FrameCount shows how many frames have been rendered.
type FrameCount struct {
	Base
}

func (c *FrameCount) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	f.DrawSpans(area, 0, rendered(ui.MutedStyle.Render(fmt.Sprintf("Frames: %d", ctx.Frames))), config.AlignCenter)
	return nil
}

func (c *FrameCount) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	return nil
}
