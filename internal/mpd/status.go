package mpd

import "time"

// State is the playback state.
type State int

const (
	StateStop State = iota
	StatePlay
	StatePause
)

func (s State) String() string {
	switch s {
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	default:
		return "stop"
	}
}

// OnOffOneshot is the tri-state used by consume and single. Oneshot turns
// itself off after the current song.
type OnOffOneshot int

const (
	Off OnOffOneshot = iota
	On
	Oneshot
)

func (o OnOffOneshot) String() string {
	switch o {
	case On:
		return "on"
	case Oneshot:
		return "oneshot"
	default:
		return "off"
	}
}

// Next cycles off -> on -> oneshot -> off.
func (o OnOffOneshot) Next() OnOffOneshot {
	switch o {
	case Off:
		return On
	case On:
		return Oneshot
	default:
		return Off
	}
}

// Volume is bounded to 0..100.
type Volume uint8

// MaxVolume is the upper bound of Volume.
const MaxVolume = 100

// NewVolume clamps v into range.
func NewVolume(v int) Volume {
	if v < 0 {
		return 0
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return Volume(v)
}

// Value returns the volume as an int.
func (v Volume) Value() int {
	return int(v)
}

// Add returns the volume changed by delta, clamped.
func (v Volume) Add(delta int) Volume {
	return NewVolume(int(v) + delta)
}

// Status is the player status snapshot. It is replaced wholesale on every
// refresh and never mutated by the UI.
type Status struct {
	State      State
	Volume     Volume
	Repeat     bool
	Random     bool
	Single     OnOffOneshot
	Consume    OnOffOneshot
	Bitrate    *uint32
	Crossfade  *uint32
	Elapsed    time.Duration
	Duration   time.Duration
	SongID     *uint32
	UpdatingDB *uint32
}

// U32 is a convenience for building a *uint32.
func U32(v uint32) *uint32 {
	return &v
}
