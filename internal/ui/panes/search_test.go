package panes

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/ui"
)

func TestSearch_Flow(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	s := NewSearch()

	if err := s.BeforeShow(ctx); err != nil {
		t.Fatal(err)
	}
	if !s.input.focused() {
		t.Fatal("empty search should focus its input when shown")
	}

	for _, r := range "alpha" {
		_ = s.HandleAction(typed(string(r)), ctx)
	}
	_ = s.HandleAction(pressed(tea.KeyEnter), ctx)
	if !s.loading {
		t.Fatal("submit did not start a search")
	}
	runQueries(t, ctx, client, to(s, ctx))
	if len(s.Results()) != 2 {
		t.Fatalf("results = %d, want 2", len(s.Results()))
	}

	f := ui.NewFrame(40, 4)
	if err := s.Render(f, layout.NewRect(0, 0, 40, 4), ctx); err != nil {
		t.Fatal(err)
	}
	if out := f.String(); !strings.Contains(out, "Opening · Alpha") || !strings.Contains(out, "Middle · Alpha") {
		t.Errorf("frame =\n%s", out)
	}

	_ = s.HandleAction(action(keys.MoveDown), ctx)
	_ = s.HandleAction(action(keys.AddSong), ctx)
	cmds := runQueries(t, ctx, client, to(s, ctx))
	if len(cmds) != 1 || cmds[0] != "add:alpha/first/02.flac" {
		t.Errorf("commands = %v", cmds)
	}

	ev := action(keys.Back)
	_ = s.HandleAction(ev, ctx)
	if !ev.Consumed() || len(s.Results()) != 0 || !s.input.focused() {
		t.Error("back should clear the search and refocus the input")
	}
}

func TestSearch_NoResults(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	s := NewSearch()
	_ = s.BeforeShow(ctx)
	for _, r := range "zzz" {
		_ = s.HandleAction(typed(string(r)), ctx)
	}
	_ = s.HandleAction(pressed(tea.KeyEnter), ctx)
	runQueries(t, ctx, client, to(s, ctx))

	f := ui.NewFrame(40, 3)
	_ = s.Render(f, layout.NewRect(0, 0, 40, 3), ctx)
	if !strings.Contains(f.String(), `No results for "zzz"`) {
		t.Errorf("frame =\n%s", f.String())
	}
}

func TestSearch_HideCancels(t *testing.T) {
	ctx := newTestContext(t, nil)
	s := NewSearch()
	_ = s.BeforeShow(ctx)
	_ = s.HandleAction(typed("a"), ctx)
	_ = s.HandleAction(pressed(tea.KeyEnter), ctx)

	_ = s.OnHide(ctx)
	if q := ctx.Scheduler.Drain(); len(q) != 0 {
		t.Errorf("hiding left %d queries pending", len(q))
	}
	if s.loading {
		t.Error("hidden search still loading")
	}
}
