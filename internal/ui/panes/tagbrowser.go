package panes

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/property"
)

// TagBrowser lists the values of one tag and the songs carrying each value.
// It serves the artist, album artist and album panes as well as configured
// browser panes.
type TagBrowser struct {
	browser
	tag string
}

// NewTagBrowser returns a browser over tag. A non-empty separator splits
// multi-artist style values ("A, B") into separate entries.
func NewTagBrowser(typ config.PaneType, tag, separator string) *TagBrowser {
	return &TagBrowser{
		browser: newBrowser(typ, browserTitle(typ, tag), tagSource{tag: tag, separator: separator}),
		tag:     tag,
	}
}

func browserTitle(typ config.PaneType, tag string) string {
	switch typ.Kind {
	case config.PaneArtists:
		return "Artists"
	case config.PaneAlbumArtists:
		return "Album Artists"
	case config.PaneAlbums:
		return "Albums"
	}
	return cases.Title(language.Und).String(tag)
}

// Tag returns the browsed tag.
func (b *TagBrowser) Tag() string {
	return b.tag
}

type tagSource struct {
	tag       string
	separator string
}

func (s tagSource) split(value string) []string {
	if s.separator == "" {
		return []string{value}
	}
	var out []string
	for _, part := range strings.Split(value, s.separator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s tagSource) children(ctx context.Context, c mpd.Client, path []string) ([]item, error) {
	if len(path) == 0 {
		values, err := c.ListTag(ctx, s.tag)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		var labels []string
		for _, v := range values {
			for _, part := range s.split(v) {
				if !seen[part] {
					seen[part] = true
					labels = append(labels, part)
				}
			}
		}
		slices.SortStableFunc(labels, property.CompareFold)
		items := make([]item, len(labels))
		for i, l := range labels {
			items[i] = item{Label: l}
		}
		return items, nil
	}

	songs, err := s.songs(ctx, c, path)
	if err != nil {
		return nil, err
	}
	items := make([]item, len(songs))
	for i := range songs {
		title := songs[i].TitleOr(", ", songs[i].File)
		items[i] = item{Label: title, Song: &songs[i]}
	}
	return items, nil
}

// songs returns the songs whose tag holds path[0], ordered by album, disc and
// track.
func (s tagSource) songs(ctx context.Context, c mpd.Client, path []string) ([]mpd.Song, error) {
	if len(path) == 0 {
		return nil, nil
	}
	value := path[0]

	var songs []mpd.Song
	if s.separator == "" {
		found, err := c.Find(ctx, mpd.Filter{Tag: s.tag, Value: value})
		if err != nil {
			return nil, err
		}
		songs = found
	} else {
		raw, err := c.ListTag(ctx, s.tag)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		for _, v := range raw {
			if !slices.Contains(s.split(v), value) {
				continue
			}
			found, err := c.Find(ctx, mpd.Filter{Tag: s.tag, Value: v})
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				if !seen[f.File] {
					seen[f.File] = true
					songs = append(songs, f)
				}
			}
		}
	}

	order := []property.SongProperty{
		property.Song(property.FieldAlbum),
		property.Song(property.FieldDisc),
		property.Song(property.FieldTrack),
		property.Song(property.FieldTitle),
	}
	slices.SortStableFunc(songs, func(a, b mpd.Song) int {
		for _, p := range order {
			if d := property.Compare(&a, &b, p); d != 0 {
				return d
			}
		}
		return 0
	})
	return songs, nil
}

func (tagSource) refreshOn(ev Event) bool {
	return ev == EventDatabaseChanged
}
