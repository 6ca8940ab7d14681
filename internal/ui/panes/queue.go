package panes

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zhubert/stave/internal/clipboard"
	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/property"
	"github.com/zhubert/stave/internal/ui"
)

// copyText is swapped out in tests.
var copyText = clipboard.WriteText

// Queue shows the play queue as a table of the configured song columns.
type Queue struct {
	Base

	list   list
	filter prompt
	// rows maps visible rows to queue indexes while a filter is set.
	rows []int
	area layout.Rect
}

// NewQueue returns an empty queue pane.
func NewQueue() *Queue {
	return &Queue{filter: newPrompt("/", "filter")}
}

// Filter returns the active filter text.
func (q *Queue) Filter() string {
	return q.filter.value()
}

// SelectedSong returns the song under the cursor.
func (q *Queue) SelectedSong(ctx *ui.Context) (*mpd.Song, bool) {
	q.refilter(ctx)
	if len(q.rows) == 0 {
		return nil, false
	}
	return &ctx.Queue()[q.rows[q.list.selected]], true
}

// refilter recomputes rows from the queue and the filter text.
func (q *Queue) refilter(ctx *ui.Context) {
	queue := ctx.Queue()
	q.rows = q.rows[:0]
	term := q.filter.value()
	specs := columnSpecs(ctx.Config.Columns)
	for i := range queue {
		if term == "" || property.Matches(&queue[i], specs, term) {
			q.rows = append(q.rows, i)
		}
	}
	q.list.clamp(len(q.rows))
}

func columnSpecs(cols []config.Column) []*property.Spec {
	specs := make([]*property.Spec, len(cols))
	for i, c := range cols {
		specs[i] = c.Prop
	}
	return specs
}

func (q *Queue) OnEvent(ev Event, visible bool, ctx *ui.Context) error {
	switch ev {
	case EventQueueChanged:
		q.refilter(ctx)
	case EventSongChanged:
		// Follow the playing song unless the user is filtering.
		if q.filter.value() != "" {
			return nil
		}
		if i, ok := ctx.Snapshot.CurrentIndex(); ok {
			q.refilter(ctx)
			q.list.selected = i
			q.list.clamp(len(q.rows))
		}
	}
	return nil
}

func (q *Queue) CalculateAreas(area layout.Rect, ctx *ui.Context) error {
	q.area = area
	return nil
}

func (q *Queue) HandleAction(ev *KeyEvent, ctx *ui.Context) error {
	if q.filter.focused() {
		if q.filter.handle(ev) == promptCancelled {
			q.filter.clear()
		}
		q.refilter(ctx)
		return nil
	}
	if !ev.Bound {
		return nil
	}

	q.refilter(ctx)
	if q.list.navigate(ev.Action, len(q.rows)) {
		ev.Consume()
		return nil
	}
	switch ev.Action {
	case keys.Filter:
		ev.Consume()
		q.filter.focus()
	case keys.Back:
		if q.filter.value() != "" {
			ev.Consume()
			q.filter.clear()
			q.refilter(ctx)
		}
	case keys.Confirm:
		ev.Consume()
		q.play(ctx)
	case keys.CopyPath:
		ev.Consume()
		song, ok := q.SelectedSong(ctx)
		if !ok {
			return nil
		}
		if err := copyText(song.File); err != nil {
			return fmt.Errorf("copy path: %w", err)
		}
		ctx.Scheduler.Flash("Copied " + song.File)
	}
	return nil
}

func (q *Queue) play(ctx *ui.Context) {
	song, ok := q.SelectedSong(ctx)
	if !ok {
		return
	}
	id := song.ID
	ctx.Scheduler.Command(fmt.Sprintf("play:%d", id), func(qctx context.Context, c mpd.Client) error {
		return c.PlayID(qctx, id)
	})
}

func (q *Queue) HandleMouseEvent(ev MouseEvent, ctx *ui.Context) error {
	q.refilter(ctx)
	switch ev.Kind {
	case MouseScrollUp:
		q.list.scroll(-1, len(q.rows))
	case MouseScrollDown:
		q.list.scroll(1, len(q.rows))
	case MouseLeftClick, MouseDoubleClick:
		hit, again := q.list.click(q.tableArea(), ev, len(q.rows))
		if hit && (again || ev.Kind == MouseDoubleClick) {
			q.play(ctx)
		}
	}
	return nil
}

// tableArea is the part of the pane below the column header and above the
// filter prompt.
func (q *Queue) tableArea() layout.Rect {
	a := q.area
	if a.Height > 1 {
		a.Y++
		a.Height--
	}
	if q.showPrompt() && a.Height > 1 {
		a.Height--
	}
	return a
}

func (q *Queue) showPrompt() bool {
	return q.filter.focused() || q.filter.value() != ""
}

// columnWidths splits width among the configured columns.
func columnWidths(cols []config.Column, width, height int) []int {
	cs := make([]layout.Constraint, len(cols))
	for i, c := range cols {
		cs[i] = c.Width.Constraint(height)
	}
	return layout.Partition(cs, width)
}

func (q *Queue) Render(f *ui.Frame, area layout.Rect, ctx *ui.Context) error {
	q.area = area
	q.refilter(ctx)

	cols := ctx.Config.Columns
	marker := ctx.Config.Symbols.Marker
	gutter := runewidth.StringWidth(marker) + 1
	widths := columnWidths(cols, max(area.Width-gutter, 0), area.Height)

	if area.Height > 1 {
		spans := []property.Span{{Text: strings.Repeat(" ", gutter)}}
		for i, c := range cols {
			spans = append(spans, cell(c, []property.Span{{Text: c.Label}}, widths[i], ctx)...)
		}
		f.DrawString(layout.NewRect(area.X, area.Y, area.Width, 1), ui.ColumnHeaderStyle.Render(property.Plain(spans)))
	}
	if q.showPrompt() {
		f.DrawLine(area, area.Height-1, q.filter.view(area.Width))
	}

	table := q.tableArea()
	if len(q.rows) == 0 {
		msg := "Queue is empty"
		if q.filter.value() != "" {
			msg = "No matches"
		}
		f.DrawLine(table, 0, ui.MutedStyle.Render(msg))
		return nil
	}

	theme := ui.CurrentTheme()
	current, playing := ctx.Snapshot.CurrentIndex()
	queue := ctx.Queue()

	start, end := q.list.window(table.Height, len(q.rows))
	for r := start; r < end; r++ {
		idx := q.rows[r]
		song := &queue[idx]

		var rowStyle property.Style
		lead := strings.Repeat(" ", gutter)
		if playing && idx == current {
			rowStyle = rowStyle.Patch(property.Style{Fg: theme.Playing, Bold: property.Flag(true)})
			lead = marker + " "
		}
		if r == q.list.selected {
			rowStyle = rowStyle.Patch(property.Style{Bg: theme.GetBgSelected(), Fg: theme.TextInverse, Bold: property.Flag(true)})
		}

		spans := []property.Span{{Text: lead}}
		for i, c := range cols {
			resolved, ok := ctx.Ellipsized(c.Prop, song, max(widths[i]-1, 0))
			if !ok {
				resolved = nil
			}
			spans = append(spans, cell(c, resolved, widths[i], ctx)...)
		}
		for i := range spans {
			spans[i].Style = rowStyle.Patch(spans[i].Style)
		}
		f.DrawSpans(table, r-start, spans, config.AlignLeft)
	}
	return nil
}

// cell pads spans to width, aligned as the column asks. The last cell of
// every column is a single space gap.
func cell(c config.Column, spans []property.Span, width int, ctx *ui.Context) []property.Span {
	if width <= 0 {
		return nil
	}
	inner := width - 1
	if property.Width(spans) > inner {
		text := property.Ellipsize(property.Plain(spans), inner, ctx.Config.Symbols.Ellipsis)
		spans = []property.Span{{Text: text}}
	}
	pad := max(inner-property.Width(spans), 0)

	var left, right int
	switch c.Align {
	case config.AlignRight:
		left = pad
	case config.AlignCenter:
		left = pad / 2
		right = pad - left
	default:
		right = pad
	}
	out := make([]property.Span, 0, len(spans)+2)
	out = append(out, property.Span{Text: strings.Repeat(" ", left)})
	out = append(out, spans...)
	out = append(out, property.Span{Text: strings.Repeat(" ", right+1)})
	return out
}
