package config

import (
	"fmt"
	"time"
)

// File is the on-disk configuration. Every field is optional; unset fields
// take their value from the built-in defaults.
type File struct {
	Theme                string              `yaml:"theme"`
	Notifications        *bool               `yaml:"notifications"`
	StatusUpdateInterval *Duration           `yaml:"status_update_interval"`
	TagSeparator         *string             `yaml:"tag_separator"`
	TagResolution        string              `yaml:"tag_resolution"`
	Symbols              SymbolsFile         `yaml:"symbols"`
	SongTable            []ColumnFile        `yaml:"song_table"`
	Header               []HeaderRowFile     `yaml:"header"`
	Layout               *PaneFile           `yaml:"layout"`
	Tabs                 []TabFile           `yaml:"tabs"`
	Keybinds             map[string][]string `yaml:"keybinds"`
}

// SymbolsFile holds the glyphs used across panes.
type SymbolsFile struct {
	Ellipsis        string `yaml:"ellipsis"`
	Marker          string `yaml:"marker"`
	Dir             string `yaml:"dir"`
	Song            string `yaml:"song"`
	ProgressElapsed string `yaml:"progress_elapsed"`
	ProgressThumb   string `yaml:"progress_thumb"`
	ProgressTrack   string `yaml:"progress_track"`
}

// ColumnFile is one column of the song table.
type ColumnFile struct {
	Label string       `yaml:"label"`
	Width string       `yaml:"width"`
	Align string       `yaml:"align"`
	Prop  PropertyFile `yaml:"prop"`
}

// HeaderRowFile is one line of the header pane.
type HeaderRowFile struct {
	Left   []PropertyFile `yaml:"left"`
	Center []PropertyFile `yaml:"center"`
	Right  []PropertyFile `yaml:"right"`
}

// TabFile is a named pane tree.
type TabFile struct {
	Name string   `yaml:"name"`
	Pane PaneFile `yaml:"pane"`
}

// PaneFile is a layout node. A node with Pane set is a leaf; a node with
// Panes set is a split. Size is read by the parent split.
type PaneFile struct {
	Size      string     `yaml:"size"`
	Borders   []string   `yaml:"borders"`
	Pane      string     `yaml:"pane"`
	Direction string     `yaml:"direction"`
	Panes     []PaneFile `yaml:"panes"`

	// Browser
	RootTag   string  `yaml:"root_tag"`
	Separator *string `yaml:"separator"`

	// Property
	Content     []PropertyFile `yaml:"content"`
	Align       string         `yaml:"align"`
	ScrollSpeed int            `yaml:"scroll_speed"`
}

// PropertyFile is a format node. Exactly one of Text, Song, Status, Widget,
// Sticker or Group must be set.
type PropertyFile struct {
	Text    *string         `yaml:"text"`
	Song    string          `yaml:"song"`
	Status  *NamedFile      `yaml:"status"`
	Widget  *NamedFile      `yaml:"widget"`
	Sticker string          `yaml:"sticker"`
	Group   *[]PropertyFile `yaml:"group"`
	Style   *StyleFile      `yaml:"style"`
	Default *PropertyFile   `yaml:"default"`
}

// StyleFile is a text style. Unset attributes inherit from the parent.
type StyleFile struct {
	Fg            string `yaml:"fg"`
	Bg            string `yaml:"bg"`
	Bold          *bool  `yaml:"bold"`
	Italic        *bool  `yaml:"italic"`
	Underline     *bool  `yaml:"underline"`
	Dim           *bool  `yaml:"dim"`
	Reversed      *bool  `yaml:"reversed"`
	Strikethrough *bool  `yaml:"strikethrough"`
}

// NamedFile is a status or widget reference written either as a bare name
// ("elapsed") or as a single-key mapping carrying options
// ("state: {playing_label: ▶}").
type NamedFile struct {
	Name    string
	Options OptionsFile
}

// OptionsFile holds the options of every status and widget property. Each
// kind reads only the fields it needs.
type OptionsFile struct {
	PlayingLabel *string    `yaml:"playing_label"`
	PausedLabel  *string    `yaml:"paused_label"`
	StoppedLabel *string    `yaml:"stopped_label"`
	PlayingStyle *StyleFile `yaml:"playing_style"`
	PausedStyle  *StyleFile `yaml:"paused_style"`
	StoppedStyle *StyleFile `yaml:"stopped_style"`

	OnLabel      *string    `yaml:"on_label"`
	OffLabel     *string    `yaml:"off_label"`
	OneshotLabel *string    `yaml:"oneshot_label"`
	OnStyle      *StyleFile `yaml:"on_style"`
	OffStyle     *StyleFile `yaml:"off_style"`
	OneshotStyle *StyleFile `yaml:"oneshot_style"`

	ThousandsSeparator *string `yaml:"thousands_separator"`
	Separator          *string `yaml:"separator"`

	ActiveStyle    *StyleFile `yaml:"active_style"`
	SeparatorStyle *StyleFile `yaml:"separator_style"`
}

// UnmarshalYAML implements yaml.Unmarshaler for NamedFile.
func (n *NamedFile) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		n.Name = name
		return nil
	}

	var m map[string]OptionsFile
	if err := unmarshal(&m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("expected a name or a single-key mapping, got %d keys", len(m))
	}
	for k, v := range m {
		n.Name, n.Options = k, v
	}
	return nil
}

// Duration is a wrapper around time.Duration that implements YAML unmarshaling
// from human-readable strings like "500ms", "1s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}
