// Package panes holds every pane the layout can place and the registry the
// host uses to reach them.
//
// A pane is a long-lived component that draws into the rectangle of its
// layout leaf and reacts to keys, mouse events, backend results and
// application events. One instance exists per static pane kind; browser
// panes are created once per distinct configuration; property panes are
// cheap views built on every lookup.
package panes

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/ui"
)

// Pane is the uniform surface the host dispatches through.
type Pane interface {
	// Render draws the pane into area, the inner rectangle of its leaf.
	Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error

	// OnHide runs once when the pane stops being visible.
	OnHide(ctx *ui.Context) error

	// BeforeShow runs once when the pane becomes visible, before its
	// first render.
	BeforeShow(ctx *ui.Context) error

	// OnEvent delivers an application event to every pane, visible or not.
	OnEvent(ev Event, visible bool, ctx *ui.Context) error

	// HandleAction handles a key press while the pane has focus.
	HandleAction(ev *KeyEvent, ctx *ui.Context) error

	HandleMouseEvent(ev MouseEvent, ctx *ui.Context) error

	// OnQueryFinished delivers the result of a query the pane scheduled.
	OnQueryFinished(res QueryResult, visible bool, ctx *ui.Context) error

	// CalculateAreas runs before Render with the same area.
	CalculateAreas(area layout.Rect, ctx *ui.Context) error

	// Resize runs when the terminal size changes.
	Resize(area layout.Rect, ctx *ui.Context) error
}

// Base provides no-op implementations of the optional Pane methods.
type Base struct{}

func (Base) OnHide(*ui.Context) error                             { return nil }
func (Base) BeforeShow(*ui.Context) error                         { return nil }
func (Base) OnEvent(Event, bool, *ui.Context) error               { return nil }
func (Base) HandleMouseEvent(MouseEvent, *ui.Context) error       { return nil }
func (Base) OnQueryFinished(QueryResult, bool, *ui.Context) error { return nil }
func (Base) CalculateAreas(layout.Rect, *ui.Context) error        { return nil }
func (Base) Resize(layout.Rect, *ui.Context) error                { return nil }

// Event is an application-level change broadcast to every pane.
type Event int

const (
	// EventStatus fires after every status refresh.
	EventStatus Event = iota
	// EventSongChanged fires when the current song id changes.
	EventSongChanged
	// EventQueueChanged fires when the queue contents change.
	EventQueueChanged
	// EventDatabaseChanged fires when a database scan finishes.
	EventDatabaseChanged
	// EventPlaylistsChanged fires when stored playlists change.
	EventPlaylistsChanged
	// EventResized fires after the terminal size changes.
	EventResized
)

func (e Event) String() string {
	switch e {
	case EventStatus:
		return "status"
	case EventSongChanged:
		return "song_changed"
	case EventQueueChanged:
		return "queue_changed"
	case EventDatabaseChanged:
		return "database_changed"
	case EventPlaylistsChanged:
		return "playlists_changed"
	case EventResized:
		return "resized"
	default:
		return "unknown"
	}
}

// KeyEvent is a key press on its way through the focused pane. A pane that
// acts on it calls Consume so the host skips its global bindings.
type KeyEvent struct {
	Key    tea.KeyPressMsg
	Action keys.Action
	Bound  bool

	consumed bool
}

// NewKeyEvent resolves msg against km.
func NewKeyEvent(msg tea.KeyPressMsg, km keys.Keymap) *KeyEvent {
	a, ok := km.Lookup(msg)
	return &KeyEvent{Key: msg, Action: a, Bound: ok}
}

// Is reports whether the key is bound to a.
func (e *KeyEvent) Is(a keys.Action) bool {
	return e.Bound && e.Action == a
}

// Consume marks the event handled.
func (e *KeyEvent) Consume() {
	e.consumed = true
}

// Consumed reports whether a pane handled the event.
func (e *KeyEvent) Consumed() bool {
	return e.consumed
}

// MouseKind distinguishes the mouse events panes handle.
type MouseKind int

const (
	MouseLeftClick MouseKind = iota
	MouseDoubleClick
	MouseScrollUp
	MouseScrollDown
)

// MouseEvent is a mouse event in frame coordinates.
type MouseEvent struct {
	Kind MouseKind
	X, Y int
}

// QueryResult is the outcome of a query a pane scheduled.
type QueryResult struct {
	ID   string
	Data any
	Err  error
}
