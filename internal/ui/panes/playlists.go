package panes

import (
	"context"
	"slices"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/property"
)

// Playlists lists stored playlists and their songs.
type Playlists struct {
	browser
}

func NewPlaylists() *Playlists {
	return &Playlists{browser: newBrowser(config.Pane(config.PanePlaylists), "Playlists", playlistSource{})}
}

type playlistSource struct{}

func (playlistSource) children(ctx context.Context, c mpd.Client, path []string) ([]item, error) {
	if len(path) == 0 {
		names, err := c.Playlists(ctx)
		if err != nil {
			return nil, err
		}
		slices.SortFunc(names, property.CompareFold)
		items := make([]item, len(names))
		for i, n := range names {
			items[i] = item{Label: n}
		}
		return items, nil
	}

	songs, err := c.PlaylistSongs(ctx, path[0])
	if err != nil {
		return nil, err
	}
	items := make([]item, len(songs))
	for i := range songs {
		items[i] = item{Label: songs[i].TitleOr(", ", songs[i].File), Song: &songs[i]}
	}
	return items, nil
}

func (playlistSource) songs(ctx context.Context, c mpd.Client, path []string) ([]mpd.Song, error) {
	if len(path) == 0 {
		return nil, nil
	}
	return c.PlaylistSongs(ctx, path[0])
}

func (playlistSource) refreshOn(ev Event) bool {
	return ev == EventPlaylistsChanged || ev == EventDatabaseChanged
}
