package ui

import (
	"testing"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/property"
)

func testSong() *mpd.Song {
	return &mpd.Song{
		ID:       1,
		File:     "a/b/song.flac",
		Metadata: mpd.NewMetadata("title", "Song", "artist", "A", "artist", "B"),
	}
}

func TestContext_TextUsesConfiguredTagSettings(t *testing.T) {
	cfg := config.Default()
	ctx := NewContext(cfg)

	got, ok := ctx.Text(property.NewSong(property.Song(property.FieldArtist)), testSong())
	if !ok || got != "A | B" {
		t.Errorf("Text() = %q, %v, want %q", got, ok, "A | B")
	}

	cfg.Strategy = property.Last
	got, _ = ctx.Text(property.NewSong(property.Song(property.FieldArtist)), testSong())
	if got != "B" {
		t.Errorf("Text() with last strategy = %q, want B", got)
	}
}

func TestContext_LineSpansSkipsUnresolved(t *testing.T) {
	ctx := NewContext(config.Default())

	specs := []*property.Spec{
		property.NewText("["),
		property.NewSong(property.Tag("genre")),
		property.NewSong(property.Song(property.FieldTitle)),
		property.NewText("]"),
	}
	got := property.Plain(ctx.LineSpans(specs, testSong()))
	if got != "[Song]" {
		t.Errorf("LineSpans() = %q, want [Song]", got)
	}
}

func TestContext_Ellipsized(t *testing.T) {
	ctx := NewContext(config.Default())

	spans, ok := ctx.Ellipsized(property.NewText("abcdefgh"), nil, 5)
	if !ok || property.Plain(spans) != "abcd…" {
		t.Errorf("Ellipsized() = %q, %v", property.Plain(spans), ok)
	}
}

func TestContext_CurrentSong(t *testing.T) {
	ctx := NewContext(config.Default())
	if _, ok := ctx.CurrentSong(); ok {
		t.Error("CurrentSong() on empty snapshot ok = true")
	}

	ctx.Snapshot.Queue = []mpd.Song{*testSong()}
	ctx.Snapshot.Status = &mpd.Status{State: mpd.StatePlay, SongID: mpd.U32(1)}
	s, ok := ctx.CurrentSong()
	if !ok || s.File != "a/b/song.flac" {
		t.Errorf("CurrentSong() = %v, %v", s, ok)
	}
}
