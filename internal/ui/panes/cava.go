package panes

import (
	"math"
	"strings"

	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/ui"
)

var barGlyphs = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Cava draws placeholder spectrum bars that move while music plays.
type Cava struct {
	Base
}

// barHeights returns the height of each of n bars in eighths of a row, for
// an area rows high.
func barHeights(n, rows int, frame uint64, playing bool) []int {
	out := make([]int, n)
	if !playing {
		return out
	}
	top := rows * 8
	for i := range out {
		phase := float64(frame)/4 + float64(i)*0.7
		v := (math.Sin(phase) + math.Sin(phase*0.37+float64(i)) + 2) / 4
		out[i] = int(v * float64(top))
	}
	return out
}

func (c *Cava) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	if area.Width <= 0 || area.Height <= 0 {
		return nil
	}
	playing := ctx.Status().State == mpd.StatePlay
	heights := barHeights(area.Width, area.Height, ctx.Frames, playing)

	for y := 0; y < area.Height; y++ {
		// Rows count up from the bottom of the area.
		base := (area.Height - 1 - y) * 8
		var b strings.Builder
		for _, h := range heights {
			b.WriteString(barGlyphs[min(max(h-base, 0), 8)])
		}
		f.DrawLine(area, y, ui.ProgressElapsedStyle.Render(b.String()))
	}
	return nil
}

func (c *Cava) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	return nil
}
