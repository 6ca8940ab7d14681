package panes

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/property"
	"github.com/zhubert/stave/internal/ui"
)

// item is one row of a browser level: a container to descend into, or a song.
type item struct {
	Label string
	Song  *mpd.Song
}

// source lists the contents of a browsable hierarchy.
type source interface {
	// children lists the items under path; the root is the empty path.
	children(ctx context.Context, c mpd.Client, path []string) ([]item, error)
	// songs lists every song under the container at path.
	songs(ctx context.Context, c mpd.Client, path []string) ([]mpd.Song, error)
	// refreshOn reports whether ev invalidates the loaded items.
	refreshOn(ev Event) bool
}

type level struct {
	path   []string
	items  []item
	loaded bool
	list   list
}

// browser is the stack-of-levels navigation shared by the directory, tag and
// playlist panes.
type browser struct {
	Base

	typ    config.PaneType
	title  string
	src    source
	levels []*level
	stale  bool
	area   layout.Rect
}

var songTitle = property.NewSong(property.Song(property.FieldTitle)).
	WithDefault(property.NewSong(property.Song(property.FieldFilename)))

func newBrowser(typ config.PaneType, title string, src source) browser {
	return browser{typ: typ, title: title, src: src, stale: true}
}

func (b *browser) current() *level {
	if len(b.levels) == 0 {
		return nil
	}
	return b.levels[len(b.levels)-1]
}

func (b *browser) queryID(path []string) string {
	return b.typ.Key() + ":" + strings.Join(path, "/")
}

func (b *browser) load(ctx *ui.Context, path []string) {
	src := b.src
	p := append([]string(nil), path...)
	ctx.Scheduler.Query(b.queryID(p), b.typ, func(qctx context.Context, c mpd.Client) (any, error) {
		return src.children(qctx, c, p)
	})
}

func (b *browser) reset(ctx *ui.Context) {
	for _, l := range b.levels {
		ctx.Scheduler.Cancel(b.queryID(l.path))
	}
	b.levels = []*level{{}}
	b.stale = false
	b.load(ctx, nil)
}

func (b *browser) BeforeShow(ctx *ui.Context) error {
	if b.stale || len(b.levels) == 0 {
		b.reset(ctx)
	}
	return nil
}

func (b *browser) OnEvent(ev Event, visible bool, ctx *ui.Context) error {
	if !b.src.refreshOn(ev) {
		return nil
	}
	if visible {
		b.reset(ctx)
	} else {
		b.stale = true
	}
	return nil
}

func (b *browser) OnQueryFinished(res QueryResult, visible bool, ctx *ui.Context) error {
	for _, l := range b.levels {
		if b.queryID(l.path) != res.ID {
			continue
		}
		if res.Err != nil {
			return res.Err
		}
		items, ok := res.Data.([]item)
		if !ok {
			return fmt.Errorf("unexpected result %T for %s", res.Data, res.ID)
		}
		l.items = items
		l.loaded = true
		l.list.clamp(len(items))
		return nil
	}
	return nil
}

func (b *browser) CalculateAreas(area layout.Rect, ctx *ui.Context) error {
	b.area = area
	return nil
}

func (b *browser) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	l := b.current()
	if l == nil || !ev.Bound {
		return nil
	}
	if l.list.navigate(ev.Action, len(l.items)) {
		ev.Consume()
		return nil
	}

	switch ev.Action {
	case keys.Confirm:
		ev.Consume()
		b.open(ctx)
	case keys.Back:
		if len(b.levels) > 1 {
			ev.Consume()
			ctx.Scheduler.Cancel(b.queryID(l.path))
			b.levels = b.levels[:len(b.levels)-1]
		}
	case keys.AddSong:
		ev.Consume()
		b.add(ctx)
	}
	return nil
}

func (b *browser) HandleMouseEvent(ev MouseEvent, ctx *ui.Context) error {
	l := b.current()
	if l == nil {
		return nil
	}
	list := b.listArea()
	switch ev.Kind {
	case MouseScrollUp:
		l.list.scroll(-1, len(l.items))
	case MouseScrollDown:
		l.list.scroll(1, len(l.items))
	case MouseLeftClick, MouseDoubleClick:
		hit, again := l.list.click(list, ev, len(l.items))
		if hit && (again || ev.Kind == MouseDoubleClick) {
			b.open(ctx)
		}
	}
	return nil
}

// open descends into the selected container or adds the selected song.
func (b *browser) open(ctx *ui.Context) {
	l := b.current()
	if l == nil || len(l.items) == 0 {
		return
	}
	it := l.items[l.list.selected]
	if it.Song != nil {
		b.addSongs(ctx, it.Song.File)
		return
	}
	next := &level{path: append(append([]string(nil), l.path...), it.Label)}
	b.levels = append(b.levels, next)
	b.load(ctx, next.path)
}

// add queues the selected song, or every song under the selected container.
func (b *browser) add(ctx *ui.Context) {
	l := b.current()
	if l == nil || len(l.items) == 0 {
		return
	}
	it := l.items[l.list.selected]
	if it.Song != nil {
		b.addSongs(ctx, it.Song.File)
		return
	}
	src := b.src
	path := append(append([]string(nil), l.path...), it.Label)
	ctx.Scheduler.Command("add:"+b.queryID(path), func(qctx context.Context, c mpd.Client) error {
		songs, err := src.songs(qctx, c, path)
		if err != nil {
			return err
		}
		for _, s := range songs {
			if err := c.Add(qctx, s.File); err != nil {
				return err
			}
		}
		return nil
	})
	ctx.Scheduler.Flash(fmt.Sprintf("Added %s", it.Label))
}

func (b *browser) addSongs(ctx *ui.Context, files ...string) {
	ctx.Scheduler.Command("add:"+strings.Join(files, ","), func(qctx context.Context, c mpd.Client) error {
		for _, f := range files {
			if err := c.Add(qctx, f); err != nil {
				return err
			}
		}
		return nil
	})
	if len(files) == 1 {
		ctx.Scheduler.Flash(fmt.Sprintf("Added %s", files[0]))
	}
}

// previewMinWidth is the narrowest pane that gets a preview column.
const previewMinWidth = 60

// bodyArea is the part of the pane below the breadcrumb row.
func (b *browser) bodyArea() layout.Rect {
	a := b.area
	if a.Height > 1 {
		a.Y++
		a.Height--
	}
	return a
}

// listArea is the column holding the items. Wide panes give the right half
// to the preview of the selected song.
func (b *browser) listArea() layout.Rect {
	a := b.bodyArea()
	if a.Width >= previewMinWidth {
		a.Width /= 2
	}
	return a
}

// previewArea is the column right of the list and its divider, empty when
// the pane is too narrow.
func (b *browser) previewArea() layout.Rect {
	body, list := b.bodyArea(), b.listArea()
	if list.Width == body.Width {
		return layout.Rect{}
	}
	x := list.X + list.Width + 2
	return layout.NewRect(x, body.Y, max(body.X+body.Width-x, 0), body.Height)
}

// renderPreview draws the info, tag and sticker groups of song.
func (b *browser) renderPreview(f *ui.Frame, song *mpd.Song, ctx *ui.Context) {
	area := b.previewArea()
	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	for y := range area.Height {
		f.DrawString(layout.NewRect(area.X-2, area.Y+y, 1, 1), ui.BorderStyle.Render("│"))
	}
	if song == nil {
		return
	}

	ellipsis := ctx.Config.Symbols.Ellipsis
	y := 0
	for i, g := range song.Preview() {
		if i > 0 {
			y++
		}
		f.DrawLine(area, y, ui.ColumnHeaderStyle.Render(property.Ellipsize("--- ["+g.Title+"]", area.Width, ellipsis)))
		y++
		for _, line := range g.Lines {
			key := line.Key + ": "
			value := property.Ellipsize(line.Value, max(area.Width-runewidth.StringWidth(key), 0), ellipsis)
			f.DrawLine(area, y, ui.MutedStyle.Render(key)+ui.TextStyle.Render(value))
			y++
		}
	}
}

func (b *browser) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	b.area = area
	l := b.current()
	if l == nil {
		return nil
	}

	if area.Height > 1 {
		crumb := append([]string{b.title}, l.path...)
		f.DrawLine(area, 0, ui.MutedStyle.Render(property.Ellipsize(strings.Join(crumb, " › "), area.Width, ctx.Config.Symbols.Ellipsis)))
	}
	list := b.listArea()

	if !l.loaded {
		f.DrawLine(list, 0, ui.MutedStyle.Render("Loading…"))
		return nil
	}
	if len(l.items) == 0 {
		f.DrawLine(list, 0, ui.MutedStyle.Render("Empty"))
		return nil
	}

	start, end := l.list.window(list.Height, len(l.items))
	for i := start; i < end; i++ {
		it := l.items[i]
		var text string
		if it.Song != nil {
			title, _ := ctx.Text(songTitle, it.Song)
			text = ctx.Config.Symbols.Song + " " + title
		} else {
			text = ctx.Config.Symbols.Dir + " " + it.Label
		}
		text = property.Ellipsize(text, list.Width, ctx.Config.Symbols.Ellipsis)

		style := ui.DirStyle
		if it.Song != nil {
			style = ui.TextStyle
		}
		if i == l.list.selected {
			style = ui.SelectedStyle
			text = runewidth.FillRight(text, list.Width)
		}
		f.DrawLine(list, i-start, style.Render(text))
	}
	b.renderPreview(f, l.items[l.list.selected].Song, ctx)
	return nil
}

// Selected returns the selected item label and whether a level is loaded.
func (b *browser) Selected() (string, bool) {
	l := b.current()
	if l == nil || len(l.items) == 0 {
		return "", false
	}
	return l.items[l.list.selected].Label, true
}

// Path returns the labels of the containers opened so far.
func (b *browser) Path() []string {
	l := b.current()
	if l == nil {
		return nil
	}
	return append([]string(nil), l.path...)
}
