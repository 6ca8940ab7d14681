package panes

import (
	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/ui"
)

// Header draws the configured header rows, each with a left, center and
// right section resolved against the current song.
type Header struct {
	Base
}

func (h *Header) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	song, _ := ctx.CurrentSong()
	for y, row := range ctx.Config.Header {
		if y >= area.Height {
			break
		}
		f.DrawSpans(area, y, ctx.LineSpans(row.Left, song), config.AlignLeft)
		f.DrawSpans(area, y, ctx.LineSpans(row.Center, song), config.AlignCenter)
		f.DrawSpans(area, y, ctx.LineSpans(row.Right, song), config.AlignRight)
	}
	return nil
}

func (h *Header) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	return nil
}
