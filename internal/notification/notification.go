// Package notification sends desktop notifications when the playing song
// changes. It uses the beeep library on macOS, Linux and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/stave/internal/logger"
)

// AppName is the title every notification carries.
const AppName = "stave"

type notifyFunc func(title, message string, icon any) error

var notify notifyFunc = beeep.Notify

// SetNotifier replaces the function that delivers notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores delivery through beeep.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// An empty icon lets beeep use the platform default.
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// SongChanged announces the song that started playing. Either part may be
// empty.
func SongChanged(title, artist string) error {
	msg := title
	switch {
	case title == "" && artist == "":
		return nil
	case title == "":
		msg = artist
	case artist != "":
		msg = title + " · " + artist
	}
	return Send(AppName, msg)
}
