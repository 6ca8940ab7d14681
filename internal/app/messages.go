package app

import (
	"time"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/mpd"
)

// StatusTickMsg triggers a status refresh.
type StatusTickMsg time.Time

// AnimationTickMsg redraws animated panes.
type AnimationTickMsg time.Time

// StatusMsg carries a fresh status and queue from the backend.
type StatusMsg struct {
	Status mpd.Status
	Queue  []mpd.Song
	Err    error

	// tick marks refreshes of the periodic loop, which schedule the next
	// one.
	tick bool
}

// QueryFinishedMsg carries the result of a scheduled query. Target is nil
// for commands.
type QueryFinishedMsg struct {
	ID     string
	Ticket uint64
	Target *config.PaneType
	Data   any
	Err    error
}

// FlashExpiredMsg clears the flash message it was scheduled for.
type FlashExpiredMsg struct {
	seq int
}

const (
	flashDuration     = 3 * time.Second
	animationInterval = 100 * time.Millisecond
	doubleClickWindow = 400 * time.Millisecond
	volumeStep        = 5
	maxRefreshRounds  = 8
)
