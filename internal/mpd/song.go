package mpd

import (
	"path"
	"strings"
	"time"
)

// Common tag names.
const (
	TagTitle       = "title"
	TagArtist      = "artist"
	TagAlbum       = "album"
	TagAlbumArtist = "albumartist"
	TagTrack       = "track"
	TagDisc        = "disc"
	TagGenre       = "genre"
	TagDate        = "date"
)

// Song is a single entity in the library or queue.
type Song struct {
	ID           uint32
	File         string
	Duration     *time.Duration
	Metadata     Metadata
	Stickers     map[string]string // nil when stickers were not fetched
	LastModified time.Time
	Added        *time.Time
}

// Dur is a convenience for building a *time.Duration.
func Dur(d time.Duration) *time.Duration {
	return &d
}

// FileName returns the final path element without its extension.
func (s *Song) FileName() (string, bool) {
	base := path.Base(s.File)
	if base == "." || base == "/" || base == "" {
		return "", false
	}
	if ext := path.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base, true
}

// FileExt returns the extension of the file without the leading dot.
func (s *Song) FileExt() (string, bool) {
	base := path.Base(s.File)
	ext := path.Ext(base)
	if ext == "" || ext == base {
		return "", false
	}
	return strings.TrimPrefix(ext, "."), true
}

// Sticker returns the sticker stored under key.
func (s *Song) Sticker(key string) (string, bool) {
	if s.Stickers == nil {
		return "", false
	}
	v, ok := s.Stickers[key]
	return v, ok
}

// TitleOr returns the joined title, or fallback when the song has none.
func (s *Song) TitleOr(separator, fallback string) string {
	if v, ok := s.Metadata.Get(TagTitle); ok {
		return strings.Join(v, separator)
	}
	return fallback
}

// ArtistOr returns the joined artist, or fallback when the song has none.
func (s *Song) ArtistOr(separator, fallback string) string {
	if v, ok := s.Metadata.Get(TagArtist); ok {
		return strings.Join(v, separator)
	}
	return fallback
}

// Entry is a single item of a directory listing.
type Entry struct {
	Dir  string // set for directories
	Song *Song  // set for files
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Song == nil
}

// Name returns the display name of the entry.
func (e Entry) Name() string {
	if e.Song != nil {
		return path.Base(e.Song.File)
	}
	return path.Base(e.Dir)
}
