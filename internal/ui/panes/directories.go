package panes

import (
	"context"
	"path"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/mpd"
)

// Directories browses the music directory tree.
type Directories struct {
	browser
}

func NewDirectories() *Directories {
	return &Directories{browser: newBrowser(config.Pane(config.PaneDirectories), "Directories", dirSource{})}
}

type dirSource struct{}

func (dirSource) children(ctx context.Context, c mpd.Client, p []string) ([]item, error) {
	entries, err := c.LsInfo(ctx, path.Join(p...))
	if err != nil {
		return nil, err
	}
	items := make([]item, 0, len(entries))
	for _, e := range entries {
		it := item{Label: e.Name()}
		if !e.IsDir() {
			it.Song = e.Song
		}
		items = append(items, it)
	}
	return items, nil
}

// songs walks the tree below p depth first.
func (dirSource) songs(ctx context.Context, c mpd.Client, p []string) ([]mpd.Song, error) {
	var out []mpd.Song
	stack := []string{path.Join(p...)}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := c.LsInfo(ctx, dir)
		if err != nil {
			return nil, err
		}
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].IsDir() {
				stack = append(stack, entries[i].Dir)
			}
		}
		for _, e := range entries {
			if !e.IsDir() {
				out = append(out, *e.Song)
			}
		}
	}
	return out, nil
}

func (dirSource) refreshOn(ev Event) bool {
	return ev == EventDatabaseChanged
}
