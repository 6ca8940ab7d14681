// Package demo provides a seeded in-memory library and scripted scenarios
// that drive the UI without a server. The same infrastructure backs
// `stave demo` and documentation captures.
package demo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/stave/internal/errors"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/mpd"
)

// Library is the content loaded into a MemoryClient.
type Library struct {
	Songs     []mpd.Song
	Playlists map[string][]string
	// Lyrics maps song files to plain or LRC lyrics.
	Lyrics map[string]string
	// Art maps song files to album art; every song in the same directory
	// shares it.
	Art map[string][]byte
}

type seedAlbum struct {
	artist, album, genre, date string
	tracks                     []string
}

var seed = []seedAlbum{
	{"Ada Lovelace Trio", "Analytical Engines", "Jazz", "2019", []string{"Bernoulli Numbers", "Punched Cards", "Difference", "Note G"}},
	{"Ada Lovelace Trio", "Poetical Science", "Jazz", "2022", []string{"Flyology", "Enchantress", "Calculus Waltz"}},
	{"The Halting Problems", "Undecidable", "Rock", "2017", []string{"Loop Forever", "Oracle", "Busy Beaver", "Diagonal"}},
	{"The Halting Problems", "Turing Complete", "Rock", "2020", []string{"Tape Head", "State Machine", "Accept", "Reject"}},
	{"Mira Okafor", "Low Tide", "Folk", "2021", []string{"Salt", "Harbour Lights", "Driftwood"}},
	{"Kernel Panic", "Segfault Serenade", "Electronic", "2023", []string{"Null Pointer", "Stack Overflow", "Heap Spray", "Core Dump"}},
}

// albumColors tints the generated album art.
var albumColors = []color.RGBA{
	{0x7d, 0x56, 0xf4, 0xff},
	{0xf2, 0x5d, 0x94, 0xff},
	{0x2e, 0xc4, 0xb6, 0xff},
	{0xff, 0x9f, 0x1c, 0xff},
	{0x3a, 0x86, 0xff, 0xff},
	{0x8a, 0xc9, 0x26, 0xff},
}

// Seeded returns the built-in library. Its content is deterministic.
func Seeded() *Library {
	lib := &Library{
		Playlists: make(map[string][]string),
		Lyrics:    make(map[string]string),
		Art:       make(map[string][]byte),
	}
	n := 0
	for ai, a := range seed {
		for ti, title := range a.tracks {
			file := fmt.Sprintf("%s/%s/%02d %s.flac", a.artist, a.album, ti+1, title)
			secs := 150 + (n*37)%120
			lib.Songs = append(lib.Songs, mpd.Song{
				File:     file,
				Duration: mpd.Dur(time.Duration(secs) * time.Second),
				Metadata: mpd.NewMetadata(
					mpd.TagArtist, a.artist,
					mpd.TagAlbumArtist, a.artist,
					mpd.TagAlbum, a.album,
					mpd.TagTitle, title,
					mpd.TagTrack, fmt.Sprint(ti+1),
					mpd.TagGenre, a.genre,
					mpd.TagDate, a.date,
				),
				LastModified: time.Date(2024, 1, 1+n, 12, 0, 0, 0, time.UTC),
			})
			if ti == 0 {
				lib.Lyrics[file] = seededLyrics(title, secs)
				if art, err := albumArt(albumColors[ai%len(albumColors)]); err == nil {
					lib.Art[file] = art
				}
			}
			n++
		}
	}
	lib.Playlists["Focus"] = []string{lib.Songs[0].File, lib.Songs[4].File, lib.Songs[8].File}
	lib.Playlists["Road Trip"] = []string{lib.Songs[9].File, lib.Songs[14].File, lib.Songs[18].File, lib.Songs[20].File}
	return lib
}

// seededLyrics returns timed lyrics spread evenly across the song.
func seededLyrics(title string, secs int) string {
	lines := []string{
		"[ti:" + title + "]",
	}
	verses := []string{
		title + ", " + title,
		"counting cycles in the dark",
		"every state a little spark",
		"halt, or carry on",
		"until the tape is gone",
		title + " again",
	}
	step := secs / (len(verses) + 1)
	for i, v := range verses {
		at := (i + 1) * step
		lines = append(lines, fmt.Sprintf("[%02d:%02d.00]%s", at/60, at%60, v))
	}
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// albumArt renders a small gradient square.
func albumArt(c color.RGBA) ([]byte, error) {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			f := float64(x+y) / float64(2*size)
			img.Set(x, y, color.RGBA{
				R: uint8(float64(c.R) * (1 - f/2)),
				G: uint8(float64(c.G) * (1 - f/2)),
				B: uint8(float64(c.B) * (1 - f/2)),
				A: 0xff,
			})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// libraryFile is the YAML form of a library.
type libraryFile struct {
	Songs     []songFile          `yaml:"songs"`
	Playlists map[string][]string `yaml:"playlists"`
}

type songFile struct {
	File     string              `yaml:"file"`
	Duration string              `yaml:"duration"`
	Tags     map[string][]string `yaml:"tags"`
	Lyrics   string              `yaml:"lyrics"`
	Art      string              `yaml:"art"`
}

// LoadLibrary reads a library from a YAML file. Art paths are read relative
// to the working directory.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.E(errors.Op("demo.LoadLibrary"), errors.KindIO, "reading "+path, err)
	}
	return ParseLibrary(data)
}

// ParseLibrary builds a library from YAML.
func ParseLibrary(data []byte) (*Library, error) {
	op := errors.Op("demo.ParseLibrary")
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.E(op, errors.KindInvalid, "parsing yaml", err)
	}

	lib := &Library{
		Playlists: f.Playlists,
		Lyrics:    make(map[string]string),
		Art:       make(map[string][]byte),
	}
	if lib.Playlists == nil {
		lib.Playlists = make(map[string][]string)
	}
	seen := make(map[string]bool)
	for i, s := range f.Songs {
		if s.File == "" {
			return nil, errors.E(op, errors.KindInvalid, fmt.Sprintf("songs[%d]: file is required", i))
		}
		if seen[s.File] {
			return nil, errors.E(op, errors.KindInvalid, fmt.Sprintf("songs[%d]: duplicate file %q", i, s.File))
		}
		seen[s.File] = true

		song := mpd.Song{File: s.File}
		if s.Duration != "" {
			d, err := time.ParseDuration(s.Duration)
			if err != nil {
				return nil, errors.E(op, errors.KindInvalid, fmt.Sprintf("songs[%d]: duration", i), err)
			}
			song.Duration = mpd.Dur(d)
		}
		for _, key := range slices.Sorted(maps.Keys(s.Tags)) {
			song.Metadata.Set(key, s.Tags[key]...)
		}
		if s.Lyrics != "" {
			lib.Lyrics[s.File] = s.Lyrics
		}
		if s.Art != "" {
			art, err := os.ReadFile(s.Art)
			if err != nil {
				return nil, errors.E(op, errors.KindIO, fmt.Sprintf("songs[%d]: art", i), err)
			}
			lib.Art[s.File] = art
		}
		lib.Songs = append(lib.Songs, song)
	}
	for name, files := range lib.Playlists {
		for _, file := range files {
			if !seen[file] {
				return nil, errors.E(op, errors.KindInvalid, fmt.Sprintf("playlist %q: unknown file %q", name, file))
			}
		}
	}
	return lib, nil
}

// NewClient loads lib into a MemoryClient, queues the first album and starts
// playing it.
func NewClient(lib *Library) (*mpd.MemoryClient, error) {
	c := mpd.NewMemoryClient(lib.Songs)
	for name, files := range lib.Playlists {
		c.AddPlaylist(name, files...)
	}
	for file, text := range lib.Lyrics {
		c.SetLyrics(file, text)
	}
	for file, data := range lib.Art {
		c.SetAlbumArt(file, data)
	}

	ctx := context.Background()
	queued := 0
	for _, s := range firstAlbum(lib.Songs) {
		if err := c.Add(ctx, s.File); err != nil {
			return nil, err
		}
		queued++
	}
	if queued > 0 {
		queue, err := c.Queue(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.PlayID(ctx, queue[0].ID); err != nil {
			return nil, err
		}
	}
	logger.WithComponent("demo").Info("library loaded", "songs", len(lib.Songs), "queued", queued)
	return c, nil
}

// firstAlbum returns the songs sharing the first song's album, in library
// order. Songs without an album tag queue on their own.
func firstAlbum(songs []mpd.Song) []mpd.Song {
	if len(songs) == 0 {
		return nil
	}
	album, ok := songs[0].Metadata.Last(mpd.TagAlbum)
	if !ok {
		return songs[:1]
	}
	var out []mpd.Song
	for _, s := range songs {
		if a, ok := s.Metadata.Last(mpd.TagAlbum); ok && a == album {
			out = append(out, s)
		}
	}
	return out
}

// Play advances c in real time until ctx is done.
func Play(ctx context.Context, c *mpd.MemoryClient, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Advance(interval)
		}
	}
}
