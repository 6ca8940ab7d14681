package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultFile returns the built-in configuration.
func DefaultFile() *File {
	var f File
	if err := yaml.Unmarshal(defaultYAML, &f); err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return &f
}

// Merge fills unset fields in partial from defaults. Lists and the layout
// replace the default wholesale when present; symbols merge per glyph and
// keybinds per action.
func Merge(partial, defaults *File) *File {
	if partial == nil {
		return defaults
	}
	if defaults == nil {
		return partial
	}

	result := *partial

	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.Notifications == nil {
		result.Notifications = defaults.Notifications
	}
	if result.StatusUpdateInterval == nil {
		result.StatusUpdateInterval = defaults.StatusUpdateInterval
	}
	if result.TagSeparator == nil {
		result.TagSeparator = defaults.TagSeparator
	}
	if result.TagResolution == "" {
		result.TagResolution = defaults.TagResolution
	}

	result.Symbols = mergeSymbols(partial.Symbols, defaults.Symbols)

	if len(result.SongTable) == 0 {
		result.SongTable = defaults.SongTable
	}
	if len(result.Header) == 0 {
		result.Header = defaults.Header
	}
	if result.Layout == nil {
		result.Layout = defaults.Layout
	}
	if len(result.Tabs) == 0 {
		result.Tabs = defaults.Tabs
	}

	if len(defaults.Keybinds) > 0 {
		merged := make(map[string][]string, len(defaults.Keybinds)+len(partial.Keybinds))
		for k, v := range defaults.Keybinds {
			merged[k] = v
		}
		for k, v := range partial.Keybinds {
			merged[k] = v
		}
		result.Keybinds = merged
	}

	return &result
}

func mergeSymbols(partial, defaults SymbolsFile) SymbolsFile {
	pick := func(p, d string) string {
		if p == "" {
			return d
		}
		return p
	}
	return SymbolsFile{
		Ellipsis:        pick(partial.Ellipsis, defaults.Ellipsis),
		Marker:          pick(partial.Marker, defaults.Marker),
		Dir:             pick(partial.Dir, defaults.Dir),
		Song:            pick(partial.Song, defaults.Song),
		ProgressElapsed: pick(partial.ProgressElapsed, defaults.ProgressElapsed),
		ProgressThumb:   pick(partial.ProgressThumb, defaults.ProgressThumb),
		ProgressTrack:   pick(partial.ProgressTrack, defaults.ProgressTrack),
	}
}
