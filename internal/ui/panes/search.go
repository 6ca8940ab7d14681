package panes

import (
	"context"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/property"
	"github.com/zhubert/stave/internal/ui"
)

const searchQueryID = "search"

var searchArtist = property.NewSong(property.Tag(mpd.TagArtist)).
	WithDefault(property.NewText("Unknown"))

// Search runs a library-wide search and lists the matching songs.
type Search struct {
	Base

	input   prompt
	term    string
	results []mpd.Song
	loading bool
	list    list
	area    layout.Rect
}

// NewSearch returns an idle search pane.
func NewSearch() *Search {
	return &Search{input: newPrompt("Search: ", "type and press enter")}
}

// Results returns the songs of the last completed search.
func (s *Search) Results() []mpd.Song {
	return s.results
}

func (s *Search) BeforeShow(ctx *ui.Context) error {
	if s.term == "" {
		s.input.focus()
	}
	return nil
}

func (s *Search) OnHide(ctx *ui.Context) error {
	ctx.Scheduler.Cancel(searchQueryID)
	s.loading = false
	return nil
}

func (s *Search) CalculateAreas(area layout.Rect, ctx *ui.Context) error {
	s.area = area
	return nil
}

func (s *Search) submit(ctx *ui.Context) {
	term := s.input.value()
	if term == "" {
		return
	}
	s.term = term
	s.loading = true
	ctx.Scheduler.Query(searchQueryID, config.Pane(config.PaneSearch), func(qctx context.Context, c mpd.Client) (any, error) {
		return c.Search(qctx, term)
	})
}

func (s *Search) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	if s.input.focused() {
		if s.input.handle(ev) == promptSubmitted {
			s.submit(ctx)
		}
		return nil
	}
	if !ev.Bound {
		return nil
	}
	if s.list.navigate(ev.Action, len(s.results)) {
		ev.Consume()
		return nil
	}
	switch ev.Action {
	case keys.Filter:
		ev.Consume()
		s.input.focus()
	case keys.Confirm, keys.AddSong:
		ev.Consume()
		s.add(ctx)
	case keys.Back:
		if s.term != "" {
			ev.Consume()
			s.input.clear()
			s.term = ""
			s.results = nil
			s.input.focus()
		}
	}
	return nil
}

func (s *Search) add(ctx *ui.Context) {
	if len(s.results) == 0 {
		return
	}
	file := s.results[s.list.selected].File
	ctx.Scheduler.Command("add:"+file, func(qctx context.Context, c mpd.Client) error {
		return c.Add(qctx, file)
	})
	ctx.Scheduler.Flash("Added " + file)
}

func (s *Search) HandleMouseEvent(ev MouseEvent, ctx *ui.Context) error {
	switch ev.Kind {
	case MouseScrollUp:
		s.list.scroll(-1, len(s.results))
	case MouseScrollDown:
		s.list.scroll(1, len(s.results))
	case MouseLeftClick, MouseDoubleClick:
		if ev.Y == s.area.Y {
			s.input.focus()
			return nil
		}
		hit, again := s.list.click(s.resultArea(), ev, len(s.results))
		if hit && (again || ev.Kind == MouseDoubleClick) {
			s.add(ctx)
		}
	}
	return nil
}

func (s *Search) OnQueryFinished(res QueryResult, visible bool, ctx *ui.Context) error {
	if res.ID != searchQueryID {
		return nil
	}
	s.loading = false
	if res.Err != nil {
		return res.Err
	}
	songs, ok := res.Data.([]mpd.Song)
	if !ok {
		return fmt.Errorf("unexpected result %T for %s", res.Data, res.ID)
	}
	s.results = songs
	s.list = list{}
	return nil
}

func (s *Search) resultArea() layout.Rect {
	a := s.area
	if a.Height > 1 {
		a.Y++
		a.Height--
	}
	return a
}

func (s *Search) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	s.area = area
	f.DrawLine(area, 0, s.input.view(area.Width))
	results := s.resultArea()
	if results == area {
		return nil
	}

	switch {
	case s.loading:
		f.DrawLine(results, 0, ui.MutedStyle.Render("Searching…"))
		return nil
	case s.term == "":
		return nil
	case len(s.results) == 0:
		f.DrawLine(results, 0, ui.MutedStyle.Render(fmt.Sprintf("No results for %q", s.term)))
		return nil
	}

	start, end := s.list.window(results.Height, len(s.results))
	for i := start; i < end; i++ {
		song := &s.results[i]
		title, _ := ctx.Text(songTitle, song)
		artist, _ := ctx.Text(searchArtist, song)
		text := property.Ellipsize(ctx.Config.Symbols.Song+" "+title+" · "+artist, results.Width, ctx.Config.Symbols.Ellipsis)

		style := ui.TextStyle
		if i == s.list.selected {
			style = ui.SelectedStyle
			text = runewidth.FillRight(text, results.Width)
		}
		f.DrawLine(results, i-start, style.Render(text))
	}
	return nil
}
