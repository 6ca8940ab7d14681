package panes

import (
	"strings"
	"testing"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/ui"
)

func labels(b *browser) []string {
	l := b.current()
	if l == nil {
		return nil
	}
	out := make([]string, len(l.items))
	for i, it := range l.items {
		out[i] = it.Label
	}
	return out
}

func TestDirectories_Navigate(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	d := NewDirectories()

	if err := d.BeforeShow(ctx); err != nil {
		t.Fatal(err)
	}
	runQueries(t, ctx, client, to(d, ctx))
	if got := strings.Join(labels(&d.browser), ","); got != "alpha,beta" {
		t.Fatalf("root = %q, want alpha,beta", got)
	}

	steps := []struct {
		action keys.Action
		want   string
		path   string
	}{
		{keys.Confirm, "first", "alpha"},
		{keys.Confirm, "01.flac,02.flac", "alpha/first"},
		{keys.Back, "first", "alpha"},
		{keys.Back, "alpha,beta", ""},
		{keys.Back, "alpha,beta", ""},
	}
	for _, s := range steps {
		if err := d.HandleAction(action(s.action), ctx); err != nil {
			t.Fatal(err)
		}
		runQueries(t, ctx, client, to(d, ctx))
		if got := strings.Join(labels(&d.browser), ","); got != s.want {
			t.Errorf("after %s: items = %q, want %q", s.action, got, s.want)
		}
		if got := strings.Join(d.Path(), "/"); got != s.path {
			t.Errorf("after %s: path = %q, want %q", s.action, got, s.path)
		}
	}
}

func TestDirectories_AddContainer(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	d := NewDirectories()
	_ = d.BeforeShow(ctx)
	runQueries(t, ctx, client, to(d, ctx))

	if err := d.HandleAction(action(keys.AddSong), ctx); err != nil {
		t.Fatal(err)
	}
	runQueries(t, ctx, client, to(d, ctx))

	queue, _ := client.Queue(t.Context())
	var files []string
	for _, s := range queue {
		files = append(files, s.File)
	}
	if got := strings.Join(files, ","); got != "alpha/first/01.flac,alpha/first/02.flac" {
		t.Errorf("queue = %q", got)
	}
	if msg, ok := ctx.Scheduler.TakeFlash(); !ok || msg != "Added alpha" {
		t.Errorf("flash = %q, %v", msg, ok)
	}
}

func TestTagBrowser_ArtistsAndSongs(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	b := NewTagBrowser(config.Pane(config.PaneArtists), mpd.TagArtist, "")

	_ = b.BeforeShow(ctx)
	runQueries(t, ctx, client, to(b, ctx))
	if got := strings.Join(labels(&b.browser), ","); got != "Alpha,beta" {
		t.Fatalf("artists = %q, want case-insensitive order", got)
	}

	_ = b.HandleAction(action(keys.Confirm), ctx)
	runQueries(t, ctx, client, to(b, ctx))
	if got := strings.Join(labels(&b.browser), ","); got != "Opening,Middle" {
		t.Errorf("songs = %q, want track order", got)
	}
}

func TestTagBrowser_SplitsValues(t *testing.T) {
	ctx := newTestContext(t, nil)
	lib := []mpd.Song{
		{File: "a.flac", Metadata: mpd.NewMetadata(mpd.TagGenre, "Rock, Jazz", mpd.TagTitle, "A")},
		{File: "b.flac", Metadata: mpd.NewMetadata(mpd.TagGenre, "jazz", mpd.TagTitle, "B")},
		{File: "c.flac", Metadata: mpd.NewMetadata(mpd.TagGenre, "Jazz", mpd.TagTitle, "C")},
	}
	client := mpd.NewMemoryClient(lib)
	b := NewTagBrowser(config.Browser(mpd.TagGenre, ", "), mpd.TagGenre, ", ")

	_ = b.BeforeShow(ctx)
	runQueries(t, ctx, client, to(b, ctx))
	if got := strings.Join(labels(&b.browser), ","); got != "Jazz,jazz,Rock" {
		t.Fatalf("genres = %q", got)
	}

	_ = b.HandleAction(action(keys.Confirm), ctx)
	runQueries(t, ctx, client, to(b, ctx))
	if got := strings.Join(labels(&b.browser), ","); got != "A,C" {
		t.Errorf("Jazz songs = %q, want A,C", got)
	}
}

func TestBrowser_RefreshWhileHidden(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	d := NewDirectories()
	_ = d.BeforeShow(ctx)
	runQueries(t, ctx, client, to(d, ctx))
	_ = d.HandleAction(action(keys.Confirm), ctx)
	runQueries(t, ctx, client, to(d, ctx))

	if err := d.OnEvent(EventDatabaseChanged, false, ctx); err != nil {
		t.Fatal(err)
	}
	if q := ctx.Scheduler.Drain(); len(q) != 0 {
		t.Errorf("hidden browser scheduled %d queries", len(q))
	}
	if err := d.OnEvent(EventQueueChanged, false, ctx); err != nil {
		t.Fatal(err)
	}

	_ = d.BeforeShow(ctx)
	runQueries(t, ctx, client, to(d, ctx))
	if len(d.Path()) != 0 {
		t.Errorf("path after refresh = %v, want root", d.Path())
	}
}

func TestBrowser_DropsResultsOfClosedLevels(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	d := NewDirectories()
	_ = d.BeforeShow(ctx)
	runQueries(t, ctx, client, to(d, ctx))

	_ = d.HandleAction(action(keys.Confirm), ctx)
	_ = d.HandleAction(action(keys.Back), ctx)
	if q := ctx.Scheduler.Drain(); len(q) != 0 {
		t.Errorf("closing a level left %d queries pending", len(q))
	}

	err := d.OnQueryFinished(QueryResult{ID: d.queryID([]string{"alpha"}), Data: []item{{Label: "x"}}}, true, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(labels(&d.browser), ","); got != "alpha,beta" {
		t.Errorf("items = %q, late result leaked into another level", got)
	}
}

func TestBrowser_Render(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	b := NewTagBrowser(config.Pane(config.PaneArtists), mpd.TagArtist, "")
	area := layout.NewRect(0, 0, 20, 4)

	f := ui.NewFrame(20, 4)
	_ = b.BeforeShow(ctx)
	if err := b.Render(f, area, ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f.String(), "Loading") {
		t.Errorf("frame before load:\n%s", f.String())
	}

	runQueries(t, ctx, client, to(b, ctx))
	f = ui.NewFrame(20, 4)
	if err := b.Render(f, area, ctx); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(f.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if lines[0] != "Artists" || lines[1] != "▸ Alpha" || lines[2] != "▸ beta" {
		t.Errorf("frame =\n%s", f.String())
	}
}

func TestBrowser_Mouse(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	d := NewDirectories()
	_ = d.BeforeShow(ctx)
	runQueries(t, ctx, client, to(d, ctx))
	_ = d.Render(ui.NewFrame(20, 5), layout.NewRect(0, 0, 20, 5), ctx)

	// Row 2 of the frame is the second item below the breadcrumb.
	_ = d.HandleMouseEvent(MouseEvent{Kind: MouseLeftClick, X: 1, Y: 2}, ctx)
	if name, _ := d.Selected(); name != "beta" {
		t.Fatalf("selected = %q, want beta", name)
	}
	_ = d.HandleMouseEvent(MouseEvent{Kind: MouseLeftClick, X: 1, Y: 2}, ctx)
	runQueries(t, ctx, client, to(d, ctx))
	if got := strings.Join(d.Path(), "/"); got != "beta" {
		t.Errorf("path after second click = %q, want beta", got)
	}
}

func TestPlaylists(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	client.AddPlaylist("mix", "beta/second/01.flac", "alpha/first/01.flac")
	p := NewPlaylists()

	_ = p.BeforeShow(ctx)
	runQueries(t, ctx, client, to(p, ctx))
	if got := strings.Join(labels(&p.browser), ","); got != "mix" {
		t.Fatalf("playlists = %q", got)
	}
	_ = p.HandleAction(action(keys.Confirm), ctx)
	runQueries(t, ctx, client, to(p, ctx))
	if got := strings.Join(labels(&p.browser), ","); got != "Closing,Opening" {
		t.Errorf("songs = %q, want playlist order", got)
	}
}

func TestBrowser_RenderPreview(t *testing.T) {
	ctx := newTestContext(t, nil)
	client := mpd.NewMemoryClient(testLibrary())
	d := NewDirectories()
	_ = d.BeforeShow(ctx)
	runQueries(t, ctx, client, to(d, ctx))
	for range 2 {
		_ = d.HandleAction(action(keys.Confirm), ctx)
		runQueries(t, ctx, client, to(d, ctx))
	}

	area := layout.NewRect(0, 0, 80, 12)
	f := ui.NewFrame(80, 12)
	if err := d.Render(f, area, ctx); err != nil {
		t.Fatal(err)
	}
	out := f.String()
	for _, want := range []string{"--- [Info]", "File: alpha/first/01.flac", "Title: Opening", "--- [Tags]", "track: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}

	// Clicks in the preview column do not move the selection.
	_ = d.HandleMouseEvent(MouseEvent{Kind: MouseLeftClick, X: 60, Y: 2}, ctx)
	if got, _ := d.Selected(); got != "01.flac" {
		t.Errorf("Selected() = %q after clicking the preview", got)
	}

	f = ui.NewFrame(40, 12)
	_ = d.Render(f, layout.NewRect(0, 0, 40, 12), ctx)
	if strings.Contains(f.String(), "[Info]") {
		t.Errorf("narrow pane drew a preview:\n%s", f.String())
	}
}

func TestBrowser_PreviewAreaSplit(t *testing.T) {
	tests := []struct {
		width       int
		wantList    int
		wantPreview int
	}{
		{40, 40, 0},
		{59, 59, 0},
		{60, 30, 28},
		{101, 50, 49},
	}
	for _, tt := range tests {
		b := newBrowser(config.Pane(config.PaneDirectories), "Directories", nil)
		b.area = layout.NewRect(3, 1, tt.width, 10)
		if got := b.listArea().Width; got != tt.wantList {
			t.Errorf("width %d: list width = %d, want %d", tt.width, got, tt.wantList)
		}
		p := b.previewArea()
		if p.Width != tt.wantPreview {
			t.Errorf("width %d: preview width = %d, want %d", tt.width, p.Width, tt.wantPreview)
		}
		if p.Width > 0 && p.X+p.Width != b.area.X+b.area.Width {
			t.Errorf("width %d: preview %v does not end at the pane edge", tt.width, p)
		}
	}
}
