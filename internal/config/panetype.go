package config

import (
	"fmt"
	"strings"

	"github.com/zhubert/stave/internal/property"
)

// PaneKind is the closed set of panes a layout leaf can hold.
type PaneKind int

const (
	PaneQueue PaneKind = iota
	PaneDirectories
	PaneArtists
	PaneAlbumArtists
	PaneAlbums
	PanePlaylists
	PaneSearch
	PaneAlbumArt
	PaneLyrics
	PaneProgressBar
	PaneHeader
	PaneTabs
	PaneTabContent
	PaneCava
	PaneFrameCount

	// Parameterized kinds.
	PaneBrowser
	PaneProperty
)

var paneKindNames = []string{
	PaneQueue:        "queue",
	PaneDirectories:  "directories",
	PaneArtists:      "artists",
	PaneAlbumArtists: "album_artists",
	PaneAlbums:       "albums",
	PanePlaylists:    "playlists",
	PaneSearch:       "search",
	PaneAlbumArt:     "album_art",
	PaneLyrics:       "lyrics",
	PaneProgressBar:  "progress_bar",
	PaneHeader:       "header",
	PaneTabs:         "tabs",
	PaneTabContent:   "tab_content",
	PaneCava:         "cava",
	PaneFrameCount:   "frame_count",
	PaneBrowser:      "browser",
	PaneProperty:     "property",
}

func (k PaneKind) String() string {
	if k >= 0 && int(k) < len(paneKindNames) {
		return paneKindNames[k]
	}
	return fmt.Sprintf("PaneKind(%d)", int(k))
}

// IsStatic reports whether exactly one instance of the kind exists.
func (k PaneKind) IsStatic() bool {
	return k < PaneBrowser
}

// StaticKinds returns every kind with a single long-lived instance.
func StaticKinds() []PaneKind {
	out := make([]PaneKind, 0, int(PaneBrowser))
	for k := PaneQueue; k < PaneBrowser; k++ {
		out = append(out, k)
	}
	return out
}

// ParsePaneKind parses a pane name.
func ParsePaneKind(s string) (PaneKind, error) {
	for i, n := range paneKindNames {
		if n == s {
			return PaneKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pane %q", s)
}

// Alignment positions text inside its area.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment parses "left", "center" or "right". Empty means left.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
}

// PropertyPane is the inline content of a property pane.
type PropertyPane struct {
	Content     []*property.Spec
	Align       Alignment
	ScrollSpeed int // cells per second, 0 disables scrolling
}

// PaneType identifies what occupies a layout leaf.
type PaneType struct {
	Kind PaneKind

	// Browser
	RootTag   string
	Separator string

	// Property
	Property *PropertyPane
}

// Pane returns the PaneType of a static kind.
func Pane(k PaneKind) PaneType {
	return PaneType{Kind: k}
}

// Browser returns the PaneType of a tag browser rooted at tag.
func Browser(tag, separator string) PaneType {
	return PaneType{Kind: PaneBrowser, RootTag: tag, Separator: separator}
}

// Key identifies the instance serving p. Browser panes with the same root
// tag and separator share an instance.
func (p PaneType) Key() string {
	if p.Kind == PaneBrowser {
		return fmt.Sprintf("browser(%s,%q)", p.RootTag, p.Separator)
	}
	return p.Kind.String()
}

func (p PaneType) String() string {
	return p.Key()
}
