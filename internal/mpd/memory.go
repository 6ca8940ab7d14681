package mpd

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned by MemoryClient when an item does not exist.
var ErrNotFound = fmt.Errorf("not found")

// MemoryClient is an in-process Client backed by a fixed library. It is safe
// for concurrent use because queries run off the UI loop.
type MemoryClient struct {
	mu        sync.Mutex
	library   []Song
	queue     []Song
	playlists map[string][]string
	art       map[string][]byte
	lyrics    map[string]string
	status    Status
	nextID    uint32
	scanUntil time.Time
	now       func() time.Time
}

// NewMemoryClient creates a client over library. Songs are copied.
func NewMemoryClient(library []Song) *MemoryClient {
	c := &MemoryClient{
		library:   append([]Song(nil), library...),
		playlists: make(map[string][]string),
		art:       make(map[string][]byte),
		lyrics:    make(map[string]string),
		nextID:    1,
		now:       time.Now,
	}
	c.status.Volume = 50
	return c
}

// AddPlaylist registers a stored playlist of file paths.
func (c *MemoryClient) AddPlaylist(name string, files ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playlists[name] = append([]string(nil), files...)
}

// SetAlbumArt registers image bytes for the directory of file.
func (c *MemoryClient) SetAlbumArt(file string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.art[path.Dir(file)] = data
}

// SetLyrics registers lyrics for file.
func (c *MemoryClient) SetLyrics(file, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lyrics[file] = text
}

func (c *MemoryClient) Status(ctx context.Context) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.status
	if !c.scanUntil.IsZero() && c.now().Before(c.scanUntil) {
		st.UpdatingDB = U32(1)
	}
	return st, nil
}

func (c *MemoryClient) Queue(ctx context.Context) ([]Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Song(nil), c.queue...), nil
}

func (c *MemoryClient) ListTag(ctx context.Context, tag string, filters ...Filter) ([]string, error) {
	songs, err := c.Find(ctx, filters...)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, s := range songs {
		values, _ := s.Metadata.Get(tag)
		for _, v := range values {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func (c *MemoryClient) Find(ctx context.Context, filters ...Filter) ([]Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Song
	for _, s := range c.library {
		if matchesFilters(&s, filters) {
			out = append(out, s)
		}
	}
	return out, nil
}

func matchesFilters(s *Song, filters []Filter) bool {
	for _, f := range filters {
		values, _ := s.Metadata.Get(f.Tag)
		found := false
		for _, v := range values {
			if v == f.Value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (c *MemoryClient) Search(ctx context.Context, term string) ([]Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	term = strings.ToLower(term)
	var out []Song
	for _, s := range c.library {
		if strings.Contains(strings.ToLower(s.File), term) {
			out = append(out, s)
			continue
		}
		for _, k := range s.Metadata.Keys() {
			values, _ := s.Metadata.Get(k)
			if containsFold(values, term) {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func containsFold(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func (c *MemoryClient) LsInfo(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dir = strings.Trim(dir, "/")
	dirs := make(map[string]bool)
	var entries []Entry
	for i := range c.library {
		s := c.library[i]
		rel := s.File
		if dir != "" {
			if !strings.HasPrefix(rel, dir+"/") {
				continue
			}
			rel = strings.TrimPrefix(rel, dir+"/")
		}
		if idx := strings.Index(rel, "/"); idx >= 0 {
			sub := path.Join(dir, rel[:idx])
			if !dirs[sub] {
				dirs[sub] = true
				entries = append(entries, Entry{Dir: sub})
			}
			continue
		}
		entries = append(entries, Entry{Song: &s})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

func (c *MemoryClient) Playlists(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.playlists))
	for name := range c.playlists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (c *MemoryClient) PlaylistSongs(ctx context.Context, name string) ([]Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	files, ok := c.playlists[name]
	if !ok {
		return nil, fmt.Errorf("playlist %q: %w", name, ErrNotFound)
	}
	var out []Song
	for _, f := range files {
		if s, ok := c.songLocked(f); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *MemoryClient) songLocked(file string) (Song, bool) {
	for _, s := range c.library {
		if s.File == file {
			return s, true
		}
	}
	return Song{}, false
}

func (c *MemoryClient) AlbumArt(ctx context.Context, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.art[path.Dir(file)]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (c *MemoryClient) Lyrics(ctx context.Context, file string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lyrics[file], nil
}

func (c *MemoryClient) PlayID(ctx context.Context, id uint32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.queue {
		if s.ID == id {
			c.status.SongID = U32(id)
			c.status.State = StatePlay
			c.status.Elapsed = 0
			c.status.Duration = 0
			if s.Duration != nil {
				c.status.Duration = *s.Duration
			}
			return nil
		}
	}
	return fmt.Errorf("song id %d: %w", id, ErrNotFound)
}

func (c *MemoryClient) TogglePause(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.status.State {
	case StatePlay:
		c.status.State = StatePause
	case StatePause:
		c.status.State = StatePlay
	}
	return nil
}

func (c *MemoryClient) SetVolume(ctx context.Context, v Volume) error {
	return c.mutate(ctx, func(st *Status) { st.Volume = v })
}

func (c *MemoryClient) SetRepeat(ctx context.Context, on bool) error {
	return c.mutate(ctx, func(st *Status) { st.Repeat = on })
}

func (c *MemoryClient) SetRandom(ctx context.Context, on bool) error {
	return c.mutate(ctx, func(st *Status) { st.Random = on })
}

func (c *MemoryClient) SetConsume(ctx context.Context, v OnOffOneshot) error {
	return c.mutate(ctx, func(st *Status) { st.Consume = v })
}

func (c *MemoryClient) SetSingle(ctx context.Context, v OnOffOneshot) error {
	return c.mutate(ctx, func(st *Status) { st.Single = v })
}

func (c *MemoryClient) mutate(ctx context.Context, fn func(*Status)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.status)
	return nil
}

func (c *MemoryClient) Add(ctx context.Context, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.songLocked(file)
	if !ok {
		return fmt.Errorf("file %q: %w", file, ErrNotFound)
	}
	s.ID = c.nextID
	c.nextID++
	c.queue = append(c.queue, s)
	return nil
}

// Update starts a simulated database scan lasting a few seconds.
func (c *MemoryClient) Update(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scanUntil = c.now().Add(3 * time.Second)
	return nil
}

// Advance moves playback forward by d, moving to the next queued song when the
// current one ends. The demo ticker drives it.
func (c *MemoryClient) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status.State != StatePlay || c.status.SongID == nil {
		return
	}
	c.status.Elapsed += d
	if c.status.Duration == 0 || c.status.Elapsed < c.status.Duration {
		return
	}
	for i, s := range c.queue {
		if s.ID != *c.status.SongID {
			continue
		}
		if i+1 >= len(c.queue) {
			c.status.State = StateStop
			c.status.Elapsed = 0
			return
		}
		next := c.queue[i+1]
		c.status.SongID = U32(next.ID)
		c.status.Elapsed = 0
		c.status.Duration = 0
		if next.Duration != nil {
			c.status.Duration = *next.Duration
		}
		return
	}
}

var _ Client = (*MemoryClient)(nil)
