// Package app hosts the Bubble Tea loop: it refreshes the player status,
// arranges the configured layout every frame, routes input to panes and runs
// the backend work panes schedule.
package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/ui"
	"github.com/zhubert/stave/internal/ui/panes"
)

// Model is the main Bubble Tea model
type Model struct {
	cfg      *config.Config
	client   mpd.Client
	ctx      *ui.Context
	registry *panes.Registry

	// root is the parent of every query context; cancelled by Close.
	root   context.Context
	cancel context.CancelFunc
	// inline runs queries on the calling goroutine; see Headless.
	inline bool

	width  int
	height int

	tab int
	// focus is the key of the pane receiving key presses.
	focus string
	// layout is the arrangement of the last frame.
	layout *arrangement
	// layoutErr is the failure of the last arrangement.
	layoutErr error
	// err is the failure of the last frame.
	err error

	flash    string
	flashSeq int

	// help is the keybinding overlay while it is open.
	help *ui.Help

	lastClick click

	// ready is set after the first status refresh.
	ready bool
	// animating is set while an animation tick is pending.
	animating bool
}

type click struct {
	x, y int
	at   time.Time
}

// New creates a new app model over client.
func New(cfg *config.Config, client mpd.Client) *Model {
	ui.SetThemeByName(cfg.Theme)

	root, cancel := context.WithCancel(context.Background())
	m := &Model{
		cfg:      cfg,
		client:   client,
		ctx:      ui.NewContext(cfg),
		registry: panes.NewRegistry(cfg),
		root:     root,
		cancel:   cancel,
	}
	if names := cfg.TabNames(); len(names) > 0 {
		m.ctx.Snapshot.ActiveTab = names[0]
	}
	return m
}

// Close cancels every in-flight query.
func (m *Model) Close() {
	m.ctx.Scheduler.CancelAll()
	m.cancel()
}

// Init starts the status refresh loop.
func (m *Model) Init() tea.Cmd {
	logger.WithComponent("app").Info("starting", "tabs", len(m.cfg.Tabs), "theme", m.cfg.Theme)
	m.arrange()
	return tea.Batch(m.refreshStatus(true), m.runQueries())
}

// ActiveTab returns the name of the visible tab.
func (m *Model) ActiveTab() string {
	return m.ctx.ActiveTab()
}

// Focused returns the key of the focused pane.
func (m *Model) Focused() string {
	return m.focus
}

// Context returns the state panes see.
func (m *Model) Context() *ui.Context {
	return m.ctx
}

// HelpOpen reports whether the keybinding overlay is shown.
func (m *Model) HelpOpen() bool {
	return m.help != nil
}

// Err returns the error shown instead of the last frame, if any.
func (m *Model) Err() error {
	return m.err
}
