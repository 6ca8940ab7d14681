package property

import (
	"fmt"
	"strings"
)

// Spec is one node of a format specification. Specs are built when the
// configuration loads and are never mutated afterwards.
type Spec struct {
	Kind    Kind
	Style   Style
	Default *Spec
}

// Kind is the closed set of things a Spec can resolve.
type Kind interface {
	isKind()
}

// Text is a literal. It always resolves and never consults its default.
type Text struct {
	Value string
}

// Sticker looks up a key in the song's sticker map.
type Sticker struct {
	Key string
}

// Group resolves only when every member resolves.
type Group struct {
	Members []*Spec
}

// SongField enumerates the song-derived properties.
type SongField int

const (
	FieldTitle SongField = iota
	FieldArtist
	FieldAlbum
	FieldFilename
	FieldFileExtension
	FieldFile
	FieldDuration
	FieldTrack
	FieldDisc
	FieldOther
)

var songFieldNames = map[SongField]string{
	FieldTitle:         "title",
	FieldArtist:        "artist",
	FieldAlbum:         "album",
	FieldFilename:      "filename",
	FieldFileExtension: "file_extension",
	FieldFile:          "file",
	FieldDuration:      "duration",
	FieldTrack:         "track",
	FieldDisc:          "disc",
	FieldOther:         "other",
}

func (f SongField) String() string {
	if n, ok := songFieldNames[f]; ok {
		return n
	}
	return fmt.Sprintf("SongField(%d)", int(f))
}

// SongProperty is a song-derived value. Tag names the metadata key when
// Field is FieldOther.
type SongProperty struct {
	Field SongField
	Tag   string
}

// Song returns a SongProperty for field.
func Song(field SongField) SongProperty {
	return SongProperty{Field: field}
}

// Tag returns a SongProperty reading an arbitrary metadata tag.
func Tag(name string) SongProperty {
	return SongProperty{Field: FieldOther, Tag: name}
}

// ParseSongProperty accepts a field name or any other string, which is taken
// as a metadata tag. Tag names are lower-cased to match the backend keys.
func ParseSongProperty(name string) SongProperty {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, fn := range songFieldNames {
		if f != FieldOther && fn == n {
			return Song(f)
		}
	}
	return Tag(n)
}

func (p SongProperty) String() string {
	if p.Field == FieldOther {
		return p.Tag
	}
	return p.Field.String()
}

// StatusField enumerates the plain status-derived values.
type StatusField int

const (
	StatusElapsed StatusField = iota
	StatusDuration
	StatusVolume
	StatusBitrate
	StatusCrossfade
	StatusActiveTab
)

// StatusValue renders a single status field. Bitrate and crossfade fail to
// resolve when the backend did not report them.
type StatusValue struct {
	Field StatusField
}

// PlaybackState renders a label per playback state. A nil per-state style
// falls back to the spec's style.
type PlaybackState struct {
	PlayingLabel string
	PausedLabel  string
	StoppedLabel string
	PlayingStyle *Style
	PausedStyle  *Style
	StoppedStyle *Style
}

// Toggle identifies one of the boolean playback options.
type Toggle int

const (
	ToggleRepeat Toggle = iota
	ToggleRandom
)

// OnOff renders an on/off label for repeat or random.
type OnOff struct {
	Toggle   Toggle
	OnLabel  string
	OffLabel string
	OnStyle  *Style
	OffStyle *Style
}

// TriToggle identifies one of the on/off/oneshot playback options.
type TriToggle int

const (
	TriConsume TriToggle = iota
	TriSingle
)

// OnOffOneshot renders a label for consume or single.
type OnOffOneshot struct {
	Toggle       TriToggle
	OnLabel      string
	OffLabel     string
	OneshotLabel string
	OnStyle      *Style
	OffStyle     *Style
	OneshotStyle *Style
}

// QueueLength renders the number of queued songs.
type QueueLength struct {
	ThousandsSeparator string
}

// QueueTimeTotal renders the summed duration of the queue.
type QueueTimeTotal struct {
	Separator string
}

// QueueTimeRemaining renders the summed duration of the queue from the
// current song onward. It is zero when nothing is playing.
type QueueTimeRemaining struct {
	Separator string
}

// VolumeWidget renders a volume gauge.
type VolumeWidget struct{}

// StatesWidget renders "Repeat / Random / Consume / Single" with each label
// styled by whether the option is active.
type StatesWidget struct {
	ActiveStyle    Style
	SeparatorStyle Style
}

// ScanStatusWidget renders a spinner while a database scan runs.
type ScanStatusWidget struct{}

func (Text) isKind()               {}
func (Sticker) isKind()            {}
func (Group) isKind()              {}
func (SongProperty) isKind()       {}
func (StatusValue) isKind()        {}
func (PlaybackState) isKind()      {}
func (OnOff) isKind()              {}
func (OnOffOneshot) isKind()       {}
func (QueueLength) isKind()        {}
func (QueueTimeTotal) isKind()     {}
func (QueueTimeRemaining) isKind() {}
func (VolumeWidget) isKind()       {}
func (StatesWidget) isKind()       {}
func (ScanStatusWidget) isKind()   {}

// Convenience constructors for building specs in code and tests.

// NewText returns a literal spec.
func NewText(v string) *Spec {
	return &Spec{Kind: Text{Value: v}}
}

// NewSong returns a song property spec.
func NewSong(p SongProperty) *Spec {
	return &Spec{Kind: p}
}

// NewGroup returns a group spec.
func NewGroup(members ...*Spec) *Spec {
	return &Spec{Kind: Group{Members: members}}
}

// WithDefault sets the default and returns s.
func (s *Spec) WithDefault(d *Spec) *Spec {
	s.Default = d
	return s
}

// WithStyle sets the style and returns s.
func (s *Spec) WithStyle(st Style) *Spec {
	s.Style = st
	return s
}
