package panes

import (
	"context"
	"fmt"
	"strings"

	"github.com/zhubert/stave/internal/clipboard"
	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/ui"
)

// copyImage is swapped out in tests.
var copyImage = clipboard.WriteImage

// AlbumArt fetches the cover of the current song. Drawing images is left to
// the terminal layer; the pane shows what it fetched.
type AlbumArt struct {
	Base

	// pending is the id of the in-flight fetch, empty when idle.
	pending string
	// file is the song the shown or pending art belongs to.
	file  string
	data  []byte
	image *clipboard.ImageData
	stale bool
	area  layout.Rect
}

// NewAlbumArt returns an album art pane with nothing fetched.
func NewAlbumArt() *AlbumArt {
	return &AlbumArt{stale: true}
}

// Pending returns the id of the in-flight fetch.
func (a *AlbumArt) Pending() (string, bool) {
	return a.pending, a.pending != ""
}

// Data returns the fetched image bytes.
func (a *AlbumArt) Data() []byte {
	return a.data
}

// fetch requests the cover of the current song, cancelling any earlier
// request.
func (a *AlbumArt) fetch(ctx *ui.Context) {
	a.cancel(ctx)
	a.stale = false

	song, ok := ctx.CurrentSong()
	if !ok {
		a.file, a.data, a.image = "", nil, nil
		return
	}
	if song.File == a.file && a.data != nil {
		return
	}

	file := song.File
	a.file = file
	a.data, a.image = nil, nil
	a.pending = ui.NewQueryID("albumart")
	ctx.Scheduler.Query(a.pending, config.Pane(config.PaneAlbumArt), func(qctx context.Context, c mpd.Client) (any, error) {
		return c.AlbumArt(qctx, file)
	})
}

func (a *AlbumArt) cancel(ctx *ui.Context) {
	if a.pending == "" {
		return
	}
	ctx.Scheduler.Cancel(a.pending)
	a.pending = ""
}

func (a *AlbumArt) BeforeShow(ctx *ui.Context) error {
	if a.stale {
		a.fetch(ctx)
	}
	return nil
}

func (a *AlbumArt) OnHide(ctx *ui.Context) error {
	if a.pending != "" {
		a.cancel(ctx)
		a.stale = true
	}
	return nil
}

func (a *AlbumArt) OnEvent(ev Event, visible bool, ctx *ui.Context) error {
	if ev != EventSongChanged {
		return nil
	}
	if visible {
		a.fetch(ctx)
	} else {
		a.stale = true
	}
	return nil
}

func (a *AlbumArt) OnQueryFinished(res QueryResult, visible bool, ctx *ui.Context) error {
	if res.ID != a.pending {
		logger.WithPane("album_art").Debug("dropping stale album art", "id", res.ID)
		return nil
	}
	a.pending = ""
	if res.Err != nil {
		return res.Err
	}
	data, ok := res.Data.([]byte)
	if !ok {
		return fmt.Errorf("unexpected result %T for %s", res.Data, res.ID)
	}
	a.data = data
	a.image = nil
	if len(data) > 0 {
		img, err := clipboard.DecodeImage(data)
		if err != nil {
			logger.WithPane("album_art").Debug("album art is not a known image", "file", a.file, "error", err)
		} else {
			a.image = img
		}
	}
	return nil
}

func (a *AlbumArt) Resize(area layout.Rect, ctx *ui.Context) error {
	a.area = area
	return nil
}

func (a *AlbumArt) CalculateAreas(area layout.Rect, ctx *ui.Context) error {
	a.area = area
	return nil
}

func (a *AlbumArt) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	if !ev.Is(keys.CopyPath) || len(a.data) == 0 {
		return nil
	}
	ev.Consume()
	if err := copyImage(a.data); err != nil {
		return fmt.Errorf("copy album art: %w", err)
	}
	ctx.Scheduler.Flash("Copied album art")
	return nil
}

// label describes what the pane holds.
func (a *AlbumArt) label() string {
	switch {
	case a.pending != "":
		return "Loading album art…"
	case a.file == "":
		return "Nothing playing"
	case len(a.data) == 0:
		return "No album art"
	case a.image != nil:
		return fmt.Sprintf("%d×%d %s · %d KiB", a.image.Width, a.image.Height, strings.ToUpper(a.image.Format), a.image.SizeKB())
	default:
		return fmt.Sprintf("Album art · %d KiB", len(a.data)/1024)
	}
}

func (a *AlbumArt) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	a.area = area
	if area.Height <= 0 {
		return nil
	}
	f.DrawSpans(area, area.Height/2, rendered(ui.MutedStyle.Render(a.label())), config.AlignCenter)
	return nil
}
