package mpd

import (
	"slices"
	"strconv"
	"time"
)

// PreviewLine is one key/value row of a song preview.
type PreviewLine struct {
	Key   string
	Value string
}

// PreviewGroup is a titled block of preview rows.
type PreviewGroup struct {
	Title string
	Lines []PreviewLine
}

// Preview groups titles used by Song.Preview.
const (
	PreviewInfo     = "Info"
	PreviewTags     = "Tags"
	PreviewStickers = "Stickers"
)

// Preview describes s for the preview column of a browser. The Info group
// always comes first; Tags holds every remaining tag sorted by key and
// Stickers is present only when stickers were fetched and exist.
func (s *Song) Preview() []PreviewGroup {
	info := PreviewGroup{Title: PreviewInfo}
	add := func(g *PreviewGroup, key, value string) {
		g.Lines = append(g.Lines, PreviewLine{Key: key, Value: value})
	}

	add(&info, "File", s.File)
	if name, ok := s.FileName(); ok {
		add(&info, "Filename", name)
	}
	for _, tag := range []struct{ key, label string }{
		{TagTitle, "Title"},
		{TagArtist, "Artist"},
		{TagAlbum, "Album"},
	} {
		values, _ := s.Metadata.Get(tag.key)
		for _, v := range values {
			add(&info, tag.label, v)
		}
	}
	if s.Duration != nil {
		add(&info, "Duration", strconv.FormatInt(int64(s.Duration.Seconds()), 10))
	}
	if !s.LastModified.IsZero() {
		add(&info, "Last Modified", s.LastModified.UTC().Format(time.RFC3339))
	}
	if s.Added != nil {
		add(&info, "Added", s.Added.UTC().Format(time.RFC3339))
	}
	groups := []PreviewGroup{info}

	tags := PreviewGroup{Title: PreviewTags}
	keys := s.Metadata.Keys()
	slices.Sort(keys)
	for _, key := range keys {
		switch key {
		case TagTitle, TagArtist, TagAlbum, "duration":
			continue
		}
		values, _ := s.Metadata.Get(key)
		for _, v := range values {
			add(&tags, key, v)
		}
	}
	if len(tags.Lines) > 0 {
		groups = append(groups, tags)
	}

	if len(s.Stickers) > 0 {
		stickers := PreviewGroup{Title: PreviewStickers}
		names := make([]string, 0, len(s.Stickers))
		for name := range s.Stickers {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			add(&stickers, name, s.Stickers[name])
		}
		groups = append(groups, stickers)
	}
	return groups
}
