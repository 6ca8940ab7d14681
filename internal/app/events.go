package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/notification"
	"github.com/zhubert/stave/internal/property"
	"github.com/zhubert/stave/internal/ui/panes"
)

// handleStatus replaces the snapshot and broadcasts what changed.
func (m *Model) handleStatus(msg StatusMsg) tea.Cmd {
	log := logger.WithComponent("app")
	if msg.Err != nil {
		log.Warn("status refresh failed", "error", msg.Err)
		return m.showFlash("Status: " + msg.Err.Error())
	}

	prev := m.ctx.Snapshot
	st := msg.Status
	next := &property.Snapshot{
		Status:    &st,
		Queue:     msg.Queue,
		ActiveTab: prev.ActiveTab,
		Now:       time.Now(),
	}
	if st.UpdatingDB != nil {
		next.ScanStart = prev.ScanStart
		if next.ScanStart == nil {
			start := next.Now
			next.ScanStart = &start
		}
	}
	m.ctx.Snapshot = next

	events := detectEvents(prev, next, m.ready)
	for _, ev := range events {
		if err := m.registry.Broadcast(ev, m.ctx); err != nil {
			log.Warn("event broadcast failed", "event", ev.String(), "error", err)
		}
	}

	var cmds []tea.Cmd
	if m.cfg.Notifications && m.ready && hasEvent(events, panes.EventSongChanged) {
		cmds = append(cmds, m.notifySong())
	}
	m.ready = true
	return tea.Batch(cmds...)
}

// detectEvents compares two snapshots. Every refresh yields EventStatus; the
// first one also counts as a song and queue change.
func detectEvents(prev, next *property.Snapshot, ready bool) []panes.Event {
	events := []panes.Event{panes.EventStatus}
	if !ready || !sameID(prev.Status.SongID, next.Status.SongID) {
		events = append(events, panes.EventSongChanged)
	}
	if !ready || !sameQueue(prev.Queue, next.Queue) {
		events = append(events, panes.EventQueueChanged)
	}
	if ready && prev.Status.UpdatingDB != nil && next.Status.UpdatingDB == nil {
		events = append(events, panes.EventDatabaseChanged)
	}
	return events
}

func hasEvent(events []panes.Event, ev panes.Event) bool {
	for _, e := range events {
		if e == ev {
			return true
		}
	}
	return false
}

func sameID(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// sameQueue compares queue entries by id and file.
func sameQueue(a, b []mpd.Song) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].File != b[i].File {
			return false
		}
	}
	return true
}

// notifySong sends the desktop notification for the current song off the
// loop.
func (m *Model) notifySong() tea.Cmd {
	song, ok := m.ctx.CurrentSong()
	if !ok {
		return nil
	}
	sep := m.cfg.TagSeparator
	title := song.TitleOr(sep, song.File)
	artist := song.ArtistOr(sep, "")
	return func() tea.Msg {
		if err := notification.SongChanged(title, artist); err != nil {
			logger.WithComponent("app").Debug("notification failed", "error", err)
		}
		return nil
	}
}
