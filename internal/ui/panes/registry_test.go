package panes

import (
	"slices"
	"testing"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/errors"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/ui"
)

// spy counts lifecycle calls.
type spy struct {
	Base
	shown, hidden int
	events        []Event
	visibleSeen   []bool
	results       []QueryResult
}

func (s *spy) Render(*ui.Frame, layout.Rect, *ui.Context) error { return nil }
func (s *spy) HandleAction(*KeyEvent, *ui.Context) error        { return nil }
func (s *spy) BeforeShow(*ui.Context) error                     { s.shown++; return nil }
func (s *spy) OnHide(*ui.Context) error                         { s.hidden++; return nil }
func (s *spy) OnEvent(ev Event, visible bool, _ *ui.Context) error {
	s.events = append(s.events, ev)
	s.visibleSeen = append(s.visibleSeen, visible)
	return nil
}
func (s *spy) OnQueryFinished(res QueryResult, _ bool, _ *ui.Context) error {
	s.results = append(s.results, res)
	return nil
}

func TestRegistry_LookupStaticAliases(t *testing.T) {
	ctx := newTestContext(t, nil)
	r := NewRegistry(ctx.Config)

	for _, k := range config.StaticKinds() {
		if k == config.PaneTabContent {
			continue
		}
		t.Run(k.String(), func(t *testing.T) {
			a, err := r.Lookup(config.Pane(k))
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			b, err := r.Lookup(config.Pane(k))
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if a.Pane() == nil || a.Pane() != b.Pane() {
				t.Errorf("Lookup(%s) returned different instances", k)
			}
		})
	}
}

func TestRegistry_LookupTabContent(t *testing.T) {
	ctx := newTestContext(t, nil)
	r := NewRegistry(ctx.Config)

	h, err := r.Lookup(config.Pane(config.PaneTabContent))
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if !h.IsTabContent() {
		t.Error("tab content handle is not inert")
	}
	if err := h.Render(ui.NewFrame(4, 4), layout.NewRect(0, 0, 4, 4), ctx); err != nil {
		t.Errorf("Render() on tab content = %v", err)
	}
}

func TestRegistry_LookupPropertyIsFresh(t *testing.T) {
	ctx := newTestContext(t, nil)
	r := NewRegistry(ctx.Config)

	p := config.PaneType{Kind: config.PaneProperty, Property: &config.PropertyPane{}}
	a, err := r.Lookup(p)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	b, _ := r.Lookup(p)
	if a.Pane() == b.Pane() {
		t.Error("property lookups share an instance")
	}

	if _, err := r.Lookup(config.PaneType{Kind: config.PaneProperty}); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Lookup(property without content) error = %v, want KindInvalid", err)
	}
}

func TestRegistry_LookupBrowser(t *testing.T) {
	ctx := newTestContext(t, nil)
	r := NewRegistry(ctx.Config)

	genres := config.Browser("genre", ", ")
	h, err := r.Lookup(genres)
	if err != nil {
		t.Fatalf("Lookup(configured browser) error = %v", err)
	}
	if tb, ok := h.Pane().(*TagBrowser); !ok || tb.Tag() != "genre" {
		t.Errorf("Lookup(configured browser) = %T", h.Pane())
	}

	_, err = r.Lookup(config.Browser("composer", ", "))
	if !errors.Is(err, errors.KindNotFound) {
		t.Errorf("Lookup(unknown browser) error = %v, want KindNotFound", err)
	}

	if _, err := r.Lookup(config.PaneType{Kind: config.PaneKind(999)}); !errors.Is(err, errors.KindInvalid) {
		t.Errorf("Lookup(unknown kind) error = %v, want KindInvalid", err)
	}
}

func TestRegistry_SyncVisibility(t *testing.T) {
	ctx := newTestContext(t, nil)
	r := NewRegistry(ctx.Config)
	a, b := &spy{}, &spy{}
	pa, pb := config.Browser("x", ","), config.Browser("y", ",")
	r.others[pa.Key()] = a
	r.others[pb.Key()] = b

	steps := []struct {
		name    string
		visible []config.PaneType
		shownA  int
		hiddenA int
		shownB  int
		hiddenB int
	}{
		{"show a", []config.PaneType{pa}, 1, 0, 0, 0},
		{"a again", []config.PaneType{pa, pa}, 1, 0, 0, 0},
		{"add b", []config.PaneType{pa, pb}, 1, 0, 1, 0},
		{"hide a", []config.PaneType{pb}, 1, 1, 1, 0},
		{"hide all", nil, 1, 1, 1, 1},
		{"show a again", []config.PaneType{pa}, 2, 1, 1, 1},
	}
	for _, s := range steps {
		if err := r.SyncVisibility(s.visible, ctx); err != nil {
			t.Fatalf("%s: SyncVisibility() error = %v", s.name, err)
		}
		if a.shown != s.shownA || a.hidden != s.hiddenA || b.shown != s.shownB || b.hidden != s.hiddenB {
			t.Errorf("%s: a=%d/%d b=%d/%d, want a=%d/%d b=%d/%d", s.name,
				a.shown, a.hidden, b.shown, b.hidden, s.shownA, s.hiddenA, s.shownB, s.hiddenB)
		}
	}
	if !r.IsVisible(pa) || r.IsVisible(pb) {
		t.Error("IsVisible() does not match the last sync")
	}
}

// journal records lifecycle calls of several panes in call order.
type journal struct {
	spy
	name string
	log  *[]string
}

func (j *journal) BeforeShow(*ui.Context) error { *j.log = append(*j.log, "show "+j.name); return nil }
func (j *journal) OnHide(*ui.Context) error     { *j.log = append(*j.log, "hide "+j.name); return nil }

func TestRegistry_SyncVisibilityOrder(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	var want []string
	for _, n := range names {
		want = append(want, "hide "+n)
	}

	for run := range 20 {
		ctx := newTestContext(t, nil)
		r := NewRegistry(ctx.Config)
		var log []string
		var visible []config.PaneType
		for _, n := range names {
			p := config.Browser(n, ",")
			r.others[p.Key()] = &journal{name: n, log: &log}
			visible = append(visible, p)
		}

		if err := r.SyncVisibility(visible, ctx); err != nil {
			t.Fatal(err)
		}
		log = log[:0]
		if err := r.SyncVisibility(nil, ctx); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(log, want) {
			t.Fatalf("run %d: hide order = %v, want %v", run, log, want)
		}
	}
}

func TestRegistry_SyncVisibilityIgnoresStateless(t *testing.T) {
	ctx := newTestContext(t, nil)
	r := NewRegistry(ctx.Config)
	prop := config.PaneType{Kind: config.PaneProperty, Property: &config.PropertyPane{}}

	if err := r.SyncVisibility([]config.PaneType{prop, config.Pane(config.PaneTabContent)}, ctx); err != nil {
		t.Fatalf("SyncVisibility() error = %v", err)
	}
	if r.IsVisible(prop) || r.IsVisible(config.Pane(config.PaneTabContent)) {
		t.Error("stateless panes were tracked as visible")
	}
}

func TestRegistry_BroadcastReachesHiddenPanes(t *testing.T) {
	ctx := newTestContext(t, nil)
	r := NewRegistry(ctx.Config)
	genres := config.Browser("genre", ", ")
	s := &spy{}
	r.others[genres.Key()] = s

	if err := r.Broadcast(EventDatabaseChanged, ctx); err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}
	if len(s.events) != 1 || s.events[0] != EventDatabaseChanged || s.visibleSeen[0] {
		t.Errorf("hidden pane got events %v visible=%v", s.events, s.visibleSeen)
	}

	if err := r.SyncVisibility([]config.PaneType{genres}, ctx); err != nil {
		t.Fatal(err)
	}
	if err := r.Broadcast(EventSongChanged, ctx); err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}
	if len(s.events) != 2 || !s.visibleSeen[1] {
		t.Errorf("visible pane got events %v visible=%v", s.events, s.visibleSeen)
	}
}

func TestRegistry_Deliver(t *testing.T) {
	ctx := newTestContext(t, nil)
	r := NewRegistry(ctx.Config)
	genres := config.Browser("genre", ", ")
	s := &spy{}
	r.others[genres.Key()] = s

	if err := r.Deliver(genres, QueryResult{ID: "q"}, ctx); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}
	if len(s.results) != 1 || s.results[0].ID != "q" {
		t.Errorf("results = %v", s.results)
	}

	if err := r.Deliver(config.Browser("nope", ","), QueryResult{ID: "q"}, ctx); !errors.Is(err, errors.KindNotFound) {
		t.Errorf("Deliver(unknown) error = %v", err)
	}
}
