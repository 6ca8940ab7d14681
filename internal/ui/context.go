package ui

import (
	"time"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/property"
)

// Context is the state every pane sees while handling one frame or event.
// Panes treat it as read-only; side effects go through the Scheduler.
type Context struct {
	Config    *config.Config
	Snapshot  *property.Snapshot
	Scheduler *Scheduler

	// Frames counts rendered frames since startup.
	Frames uint64
}

// NewContext returns a Context with an empty snapshot.
func NewContext(cfg *config.Config) *Context {
	return &Context{
		Config:    cfg,
		Snapshot:  &property.Snapshot{Status: &mpd.Status{}, Now: time.Now()},
		Scheduler: NewScheduler(),
	}
}

// Status returns the last known playback status.
func (c *Context) Status() *mpd.Status {
	return c.Snapshot.Status
}

// Queue returns the current queue.
func (c *Context) Queue() []mpd.Song {
	return c.Snapshot.Queue
}

// ActiveTab returns the name of the visible tab.
func (c *Context) ActiveTab() string {
	return c.Snapshot.ActiveTab
}

// CurrentSong returns the playing or paused song, if any.
func (c *Context) CurrentSong() (*mpd.Song, bool) {
	return c.Snapshot.CurrentSong()
}

// Text resolves spec to plain text with the configured tag settings.
func (c *Context) Text(spec *property.Spec, song *mpd.Song) (string, bool) {
	return property.ResolveText(spec, song, c.Snapshot, c.Config.TagSeparator, c.Config.Strategy)
}

// Spans resolves spec to styled spans with the configured tag settings.
func (c *Context) Spans(spec *property.Spec, song *mpd.Song) ([]property.Span, bool) {
	return property.ResolveStyled(spec, song, c.Snapshot, c.Config.TagSeparator, c.Config.Strategy)
}

// Ellipsized resolves spec to spans no longer than maxLen characters, using
// the configured ellipsis.
func (c *Context) Ellipsized(spec *property.Spec, song *mpd.Song, maxLen int) ([]property.Span, bool) {
	return property.ResolveEllipsized(spec, song, c.Snapshot, maxLen, c.Config.Symbols.Ellipsis, c.Config.TagSeparator, c.Config.Strategy)
}

// LineSpans resolves every spec and concatenates the results, skipping specs
// that fail to resolve.
func (c *Context) LineSpans(specs []*property.Spec, song *mpd.Song) []property.Span {
	var out []property.Span
	for _, s := range specs {
		if spans, ok := c.Spans(s, song); ok {
			out = append(out, spans...)
		}
	}
	return out
}
