package mpd

import "context"

// Filter restricts a query to songs whose tag equals Value.
type Filter struct {
	Tag   string
	Value string
}

// Client is the backend surface the UI queries. Every method may block and is
// therefore only ever called off the UI loop.
type Client interface {
	Status(ctx context.Context) (Status, error)
	Queue(ctx context.Context) ([]Song, error)

	ListTag(ctx context.Context, tag string, filters ...Filter) ([]string, error)
	Find(ctx context.Context, filters ...Filter) ([]Song, error)
	Search(ctx context.Context, term string) ([]Song, error)
	LsInfo(ctx context.Context, dir string) ([]Entry, error)
	Playlists(ctx context.Context) ([]string, error)
	PlaylistSongs(ctx context.Context, name string) ([]Song, error)
	AlbumArt(ctx context.Context, file string) ([]byte, error)
	Lyrics(ctx context.Context, file string) (string, error)

	PlayID(ctx context.Context, id uint32) error
	TogglePause(ctx context.Context) error
	SetVolume(ctx context.Context, v Volume) error
	SetRepeat(ctx context.Context, on bool) error
	SetRandom(ctx context.Context, on bool) error
	SetConsume(ctx context.Context, v OnOffOneshot) error
	SetSingle(ctx context.Context, v OnOffOneshot) error
	Add(ctx context.Context, file string) error
	Update(ctx context.Context) error
}
