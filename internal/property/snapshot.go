package property

import (
	"time"

	"github.com/zhubert/stave/internal/mpd"
)

// Snapshot is the read-only state status properties resolve against. It is
// replaced wholesale on every refresh.
type Snapshot struct {
	Status    *mpd.Status
	Queue     []mpd.Song
	ActiveTab string
	ScanStart *time.Time // set while a database scan runs
	Now       time.Time
}

// CurrentIndex returns the queue position of the playing song.
func (s *Snapshot) CurrentIndex() (int, bool) {
	if s == nil || s.Status == nil || s.Status.SongID == nil {
		return 0, false
	}
	for i := range s.Queue {
		if s.Queue[i].ID == *s.Status.SongID {
			return i, true
		}
	}
	return 0, false
}

// CurrentSong returns the playing song.
func (s *Snapshot) CurrentSong() (*mpd.Song, bool) {
	i, ok := s.CurrentIndex()
	if !ok {
		return nil, false
	}
	return &s.Queue[i], true
}
