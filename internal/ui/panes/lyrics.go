package panes

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/property"
	"github.com/zhubert/stave/internal/ui"
)

// Lyrics shows the lyrics of the current song. Timed lyrics follow playback
// with the current line highlighted and kept centered; untimed lyrics scroll
// by hand.
type Lyrics struct {
	Base

	pending string
	file    string
	lines   []lyricLine
	timed   bool
	loaded  bool
	stale   bool
	// offset is the manual scroll position of untimed lyrics.
	offset int
	area   layout.Rect
}

// NewLyrics returns a lyrics pane with nothing loaded.
func NewLyrics() *Lyrics {
	return &Lyrics{stale: true}
}

func (l *Lyrics) fetch(ctx *ui.Context) {
	if l.pending != "" {
		ctx.Scheduler.Cancel(l.pending)
		l.pending = ""
	}
	l.stale = false

	song, ok := ctx.CurrentSong()
	if !ok {
		l.file, l.lines, l.loaded = "", nil, false
		return
	}
	if song.File == l.file && l.loaded {
		return
	}

	file := song.File
	l.file = file
	l.lines, l.loaded, l.offset = nil, false, 0
	l.pending = ui.NewQueryID("lyrics")
	ctx.Scheduler.Query(l.pending, config.Pane(config.PaneLyrics), func(qctx context.Context, c mpd.Client) (any, error) {
		return c.Lyrics(qctx, file)
	})
}

func (l *Lyrics) BeforeShow(ctx *ui.Context) error {
	if l.stale {
		l.fetch(ctx)
	}
	return nil
}

func (l *Lyrics) OnHide(ctx *ui.Context) error {
	if l.pending != "" {
		ctx.Scheduler.Cancel(l.pending)
		l.pending = ""
		l.stale = true
	}
	return nil
}

func (l *Lyrics) OnEvent(ev Event, visible bool, ctx *ui.Context) error {
	if ev != EventSongChanged {
		return nil
	}
	if visible {
		l.fetch(ctx)
	} else {
		l.stale = true
	}
	return nil
}

func (l *Lyrics) OnQueryFinished(res QueryResult, visible bool, ctx *ui.Context) error {
	if res.ID != l.pending {
		return nil
	}
	l.pending = ""
	if res.Err != nil {
		return res.Err
	}
	text, ok := res.Data.(string)
	if !ok {
		return fmt.Errorf("unexpected result %T for %s", res.Data, res.ID)
	}
	l.lines, l.timed = parseLyrics(text)
	l.loaded = true
	return nil
}

func (l *Lyrics) CalculateAreas(area layout.Rect, ctx *ui.Context) error {
	l.area = area
	return nil
}

func (l *Lyrics) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	if l.timed || !ev.Bound {
		return nil
	}
	switch ev.Action {
	case keys.MoveUp:
		l.offset--
	case keys.MoveDown:
		l.offset++
	case keys.Top:
		l.offset = 0
	default:
		return nil
	}
	ev.Consume()
	l.offset = max(l.offset, 0)
	return nil
}

func (l *Lyrics) HandleMouseEvent(ev MouseEvent, ctx *ui.Context) error {
	if l.timed {
		return nil
	}
	switch ev.Kind {
	case MouseScrollUp:
		l.offset = max(l.offset-1, 0)
	case MouseScrollDown:
		l.offset++
	}
	return nil
}

// wrapped is one terminal row of lyrics and the lyric line it came from.
type wrapped struct {
	text string
	line int
}

func wrapLyrics(lines []lyricLine, width int) []wrapped {
	var out []wrapped
	for i, ln := range lines {
		if ln.Text == "" {
			out = append(out, wrapped{line: i})
			continue
		}
		for _, row := range strings.Split(wordwrap.String(ln.Text, width), "\n") {
			out = append(out, wrapped{text: row, line: i})
		}
	}
	return out
}

func (l *Lyrics) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	l.area = area
	if area.Height <= 0 || area.Width <= 0 {
		return nil
	}
	switch {
	case l.file == "":
		f.DrawSpans(area, area.Height/2, rendered(ui.MutedStyle.Render("Nothing playing")), config.AlignCenter)
		return nil
	case !l.loaded:
		f.DrawSpans(area, area.Height/2, rendered(ui.MutedStyle.Render("Loading lyrics…")), config.AlignCenter)
		return nil
	case len(l.lines) == 0:
		f.DrawSpans(area, area.Height/2, rendered(ui.MutedStyle.Render("No lyrics")), config.AlignCenter)
		return nil
	}

	rows := wrapLyrics(l.lines, area.Width)
	current, hasCurrent := -1, false
	start := min(l.offset, max(len(rows)-area.Height, 0))
	if l.timed {
		current, hasCurrent = currentLyric(l.lines, ctx.Status().Elapsed)
		if hasCurrent {
			first := 0
			for first < len(rows) && rows[first].line != current {
				first++
			}
			start = max(first-area.Height/2, 0)
		} else {
			start = 0
		}
	}

	for y := 0; y < area.Height && start+y < len(rows); y++ {
		row := rows[start+y]
		style := ui.TextStyle
		if l.timed {
			style = ui.MutedStyle
			if hasCurrent && row.line == current {
				style = ui.PlayingStyle
			}
		}
		f.DrawSpans(area, y, []property.Span{{Text: style.Render(row.text)}}, config.AlignCenter)
	}
	return nil
}
