package panes

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/ui"
)

func testLibrary() []mpd.Song {
	song := func(file, artist, album, title, track string, secs int) mpd.Song {
		return mpd.Song{
			File:     file,
			Duration: mpd.Dur(time.Duration(secs) * time.Second),
			Metadata: mpd.NewMetadata(
				mpd.TagArtist, artist,
				mpd.TagAlbumArtist, artist,
				mpd.TagAlbum, album,
				mpd.TagTitle, title,
				mpd.TagTrack, track,
			),
		}
	}
	return []mpd.Song{
		song("alpha/first/01.flac", "Alpha", "First", "Opening", "1", 180),
		song("alpha/first/02.flac", "Alpha", "First", "Middle", "2", 200),
		song("beta/second/01.flac", "beta", "Second", "Closing", "1", 240),
	}
}

// newTestContext returns a context over the default configuration with the
// given queue, the first song playing.
func newTestContext(t *testing.T, queue []mpd.Song) *ui.Context {
	t.Helper()
	ctx := ui.NewContext(config.Default())
	for i := range queue {
		queue[i].ID = uint32(i + 1)
	}
	ctx.Snapshot.Queue = queue
	if len(queue) > 0 {
		ctx.Snapshot.Status = &mpd.Status{State: mpd.StatePlay, SongID: mpd.U32(1), Duration: 3 * time.Minute}
	}
	ctx.Snapshot.ActiveTab = "Queue"
	return ctx
}

// deliverer receives query results, usually a Registry or a single pane.
type deliverer func(target config.PaneType, res QueryResult) error

// runQueries runs every scheduled query against c synchronously and hands
// targeted results to deliver. It returns the ids of the commands it ran.
func runQueries(t *testing.T, ctx *ui.Context, c mpd.Client, deliver deliverer) []string {
	t.Helper()
	var commands []string
	for {
		pending := ctx.Scheduler.Drain()
		if len(pending) == 0 {
			return commands
		}
		for _, q := range pending {
			qctx, ticket := ctx.Scheduler.Start(context.Background(), q)
			data, err := q.Run(qctx, c)
			if !ctx.Scheduler.Finish(q.ID, ticket) {
				continue
			}
			if q.Target == nil {
				if err != nil {
					t.Fatalf("command %s: %v", q.ID, err)
				}
				commands = append(commands, q.ID)
				continue
			}
			if err := deliver(*q.Target, QueryResult{ID: q.ID, Data: data, Err: err}); err != nil {
				t.Fatalf("deliver %s: %v", q.ID, err)
			}
		}
	}
}

// to delivers every result to p.
func to(p Pane, ctx *ui.Context) deliverer {
	return func(_ config.PaneType, res QueryResult) error {
		return p.OnQueryFinished(res, true, ctx)
	}
}

func action(a keys.Action) *KeyEvent {
	return &KeyEvent{Action: a, Bound: true}
}

func typed(text string) *KeyEvent {
	return &KeyEvent{Key: tea.KeyPressMsg{Code: []rune(text)[0], Text: text}}
}

func pressed(code rune) *KeyEvent {
	return &KeyEvent{Key: tea.KeyPressMsg{Code: code}}
}
