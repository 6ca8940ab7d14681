package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// showFlash displays a message on the bottom row and returns a command that
// clears it after flashDuration.
func (m *Model) showFlash(text string) tea.Cmd {
	m.flash = text
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(_ time.Time) tea.Msg {
		return FlashExpiredMsg{seq: seq}
	})
}

// Flash returns the message currently shown.
func (m *Model) Flash() string {
	return m.flash
}

func (m *Model) handleFlashExpired(msg FlashExpiredMsg) {
	if msg.seq == m.flashSeq {
		m.flash = ""
	}
}
