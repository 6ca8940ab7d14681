package panes

import (
	stderrors "errors"
	"fmt"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/errors"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/ui"
)

// Registry owns every long-lived pane instance.
type Registry struct {
	queue        *Queue
	directories  *Directories
	artists      *TagBrowser
	albumArtists *TagBrowser
	albums       *TagBrowser
	playlists    *Playlists
	search       *Search
	albumArt     *AlbumArt
	lyrics       *Lyrics
	progressBar  *ProgressBar
	header       *Header
	tabs         *Tabs
	cava         *Cava
	frameCount   *FrameCount

	// others holds browser panes keyed by PaneType.Key.
	others map[string]Pane

	// visible holds the panes shown in the last synced frame, by key.
	visible map[string]config.PaneType
	// shown is visible in layout order.
	shown []config.PaneType
}

// NewRegistry creates every static pane and one browser pane per distinct
// browser configuration across all tabs.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{
		queue:        NewQueue(),
		directories:  NewDirectories(),
		artists:      NewTagBrowser(config.Pane(config.PaneArtists), mpd.TagArtist, ""),
		albumArtists: NewTagBrowser(config.Pane(config.PaneAlbumArtists), mpd.TagAlbumArtist, ""),
		albums:       NewTagBrowser(config.Pane(config.PaneAlbums), mpd.TagAlbum, ""),
		playlists:    NewPlaylists(),
		search:       NewSearch(),
		albumArt:     NewAlbumArt(),
		lyrics:       NewLyrics(),
		progressBar:  &ProgressBar{},
		header:       &Header{},
		tabs:         &Tabs{},
		cava:         &Cava{},
		frameCount:   &FrameCount{},
		others:       make(map[string]Pane),
		visible:      make(map[string]config.PaneType),
	}
	for _, p := range cfg.BrowserPanes() {
		r.others[p.Key()] = NewTagBrowser(p, p.RootTag, p.Separator)
	}
	return r
}

// Lookup returns a handle to the pane serving p.
func (r *Registry) Lookup(p config.PaneType) (Handle, error) {
	var pane Pane
	switch p.Kind {
	case config.PaneQueue:
		pane = r.queue
	case config.PaneDirectories:
		pane = r.directories
	case config.PaneArtists:
		pane = r.artists
	case config.PaneAlbumArtists:
		pane = r.albumArtists
	case config.PaneAlbums:
		pane = r.albums
	case config.PanePlaylists:
		pane = r.playlists
	case config.PaneSearch:
		pane = r.search
	case config.PaneAlbumArt:
		pane = r.albumArt
	case config.PaneLyrics:
		pane = r.lyrics
	case config.PaneProgressBar:
		pane = r.progressBar
	case config.PaneHeader:
		pane = r.header
	case config.PaneTabs:
		pane = r.tabs
	case config.PaneCava:
		pane = r.cava
	case config.PaneFrameCount:
		pane = r.frameCount
	case config.PaneTabContent:
		return Handle{Type: p}, nil
	case config.PaneProperty:
		if p.Property == nil {
			return Handle{}, errors.E(errors.Op("panes.Lookup"), errors.KindInvalid, "property pane without content")
		}
		pane = NewProperty(p.Property)
	case config.PaneBrowser:
		other, ok := r.others[p.Key()]
		if !ok {
			return Handle{}, errors.PaneNotRegistered(p.Key())
		}
		pane = other
	default:
		return Handle{}, errors.E(errors.Op("panes.Lookup"), errors.KindInvalid, fmt.Sprintf("unknown pane kind %v", p.Kind))
	}
	return Handle{Type: p, pane: pane}, nil
}

// instance is a pane with its identity.
type instance struct {
	typ  config.PaneType
	pane Pane
}

// instances returns every long-lived pane in a stable order.
func (r *Registry) instances(cfg *config.Config) []instance {
	out := []instance{
		{config.Pane(config.PaneQueue), r.queue},
		{config.Pane(config.PaneDirectories), r.directories},
		{config.Pane(config.PaneArtists), r.artists},
		{config.Pane(config.PaneAlbumArtists), r.albumArtists},
		{config.Pane(config.PaneAlbums), r.albums},
		{config.Pane(config.PanePlaylists), r.playlists},
		{config.Pane(config.PaneSearch), r.search},
		{config.Pane(config.PaneAlbumArt), r.albumArt},
		{config.Pane(config.PaneLyrics), r.lyrics},
		{config.Pane(config.PaneProgressBar), r.progressBar},
		{config.Pane(config.PaneHeader), r.header},
		{config.Pane(config.PaneTabs), r.tabs},
		{config.Pane(config.PaneCava), r.cava},
		{config.Pane(config.PaneFrameCount), r.frameCount},
	}
	for _, p := range cfg.BrowserPanes() {
		if pane, ok := r.others[p.Key()]; ok {
			out = append(out, instance{p, pane})
		}
	}
	return out
}

// SyncVisibility runs OnHide for every pane that was visible in the last
// sync and is not in visible, then BeforeShow for every pane in visible that
// was not. Both run in layout order. Property and tab content leaves have no lifecycle.
func (r *Registry) SyncVisibility(visible []config.PaneType, ctx *ui.Context) error {
	next := make(map[string]config.PaneType, len(visible))
	var order []config.PaneType
	for _, p := range visible {
		if p.Kind == config.PaneProperty || p.Kind == config.PaneTabContent {
			continue
		}
		if _, dup := next[p.Key()]; !dup {
			next[p.Key()] = p
			order = append(order, p)
		}
	}

	var errs []error
	for _, p := range r.shown {
		key := p.Key()
		if _, still := next[key]; still {
			continue
		}
		h, err := r.Lookup(p)
		if err == nil {
			err = h.OnHide(ctx)
		}
		if err != nil {
			errs = append(errs, errors.PaneFailed(key, err))
		}
	}
	for _, p := range order {
		if _, was := r.visible[p.Key()]; was {
			continue
		}
		h, err := r.Lookup(p)
		if err == nil {
			err = h.BeforeShow(ctx)
		}
		if err != nil {
			errs = append(errs, errors.PaneFailed(p.Key(), err))
		}
	}

	r.visible = next
	r.shown = order
	return stderrors.Join(errs...)
}

// IsVisible reports whether p was visible in the last sync.
func (r *Registry) IsVisible(p config.PaneType) bool {
	_, ok := r.visible[p.Key()]
	return ok
}

// Broadcast delivers ev to every long-lived pane regardless of visibility.
// A failing pane does not stop delivery to the rest.
func (r *Registry) Broadcast(ev Event, ctx *ui.Context) error {
	var errs []error
	for _, in := range r.instances(ctx.Config) {
		if err := in.pane.OnEvent(ev, r.IsVisible(in.typ), ctx); err != nil {
			logger.WithPane(in.typ.Key()).Warn("event handler failed", "event", ev.String(), "error", err)
			errs = append(errs, errors.PaneFailed(in.typ.Key(), err))
		}
	}
	return stderrors.Join(errs...)
}

// Deliver routes a query result to the pane that scheduled it.
func (r *Registry) Deliver(target config.PaneType, res QueryResult, ctx *ui.Context) error {
	h, err := r.Lookup(target)
	if err != nil {
		return err
	}
	return h.OnQueryFinished(res, r.IsVisible(target), ctx)
}

// ResizeAll forwards a terminal resize to every visible pane in layout order.
func (r *Registry) ResizeAll(areas map[string]layout.Rect, ctx *ui.Context) error {
	var errs []error
	for _, p := range r.shown {
		key := p.Key()
		area, ok := areas[key]
		if !ok {
			continue
		}
		h, err := r.Lookup(p)
		if err == nil {
			err = h.Resize(area, ctx)
		}
		if err != nil {
			errs = append(errs, errors.PaneFailed(key, err))
		}
	}
	return stderrors.Join(errs...)
}
