package panes

import (
	"strings"
	"testing"
	"time"

	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/mpd"
)

func TestParseLyrics(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTimed bool
		want      []lyricLine
	}{
		{
			name:      "plain",
			text:      "\nfirst line\n\nsecond line\n\n",
			wantTimed: false,
			want:      []lyricLine{{-1, "first line"}, {-1, ""}, {-1, "second line"}},
		},
		{
			name:      "timed",
			text:      "[ar:Alpha]\n[00:01.50]one\n[00:03.00]two",
			wantTimed: true,
			want:      []lyricLine{{1500 * time.Millisecond, "one"}, {3 * time.Second, "two"}},
		},
		{
			name:      "repeated stamps are sorted",
			text:      "[00:05]chorus[00:01]\n[00:02]verse",
			wantTimed: true,
			want:      []lyricLine{{2 * time.Second, "verse"}, {5 * time.Second, "chorus[00:01]"}},
		},
		{
			name:      "several leading stamps",
			text:      "[00:05][00:01]chorus\n[00:03]verse",
			wantTimed: true,
			want:      []lyricLine{{time.Second, "chorus"}, {3 * time.Second, "verse"}, {5 * time.Second, "chorus"}},
		},
		{
			name:      "offset and milliseconds",
			text:      "[offset:500]\n[01:00.250]late",
			wantTimed: true,
			want:      []lyricLine{{59750 * time.Millisecond, "late"}},
		},
		{
			name:      "crlf",
			text:      "[00:01.5]a\r\n[00:02]b\r\n",
			wantTimed: true,
			want:      []lyricLine{{1500 * time.Millisecond, "a"}, {2 * time.Second, "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, timed := parseLyrics(tt.text)
			if timed != tt.wantTimed {
				t.Errorf("timed = %v, want %v", timed, tt.wantTimed)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseLyrics() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCurrentLyric(t *testing.T) {
	lines := []lyricLine{{time.Second, "a"}, {3 * time.Second, "b"}, {5 * time.Second, "c"}}
	tests := []struct {
		elapsed time.Duration
		want    int
		ok      bool
	}{
		{0, 0, false},
		{time.Second, 0, true},
		{4 * time.Second, 1, true},
		{time.Minute, 2, true},
	}
	for _, tt := range tests {
		got, ok := currentLyric(lines, tt.elapsed)
		if got != tt.want || ok != tt.ok {
			t.Errorf("currentLyric(%v) = %d, %v, want %d, %v", tt.elapsed, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWrapLyrics(t *testing.T) {
	rows := wrapLyrics([]lyricLine{{-1, "the quick brown fox"}, {-1, ""}, {-1, "end"}}, 10)
	var got []string
	for _, r := range rows {
		got = append(got, r.text)
	}
	want := "the quick|brown fox||end"
	if strings.Join(got, "|") != want {
		t.Errorf("rows = %q, want %q", strings.Join(got, "|"), want)
	}
	if rows[1].line != 0 || rows[3].line != 2 {
		t.Errorf("row origins = %+v", rows)
	}
}

func TestLyrics_Timed(t *testing.T) {
	ctx := newTestContext(t, testLibrary())
	client := mpd.NewMemoryClient(testLibrary())
	client.SetLyrics("alpha/first/01.flac", "[00:01]one\n[00:02]two\n[00:03]three")
	l := NewLyrics()

	_ = l.BeforeShow(ctx)
	if got := renderLine(t, l, ctx, 20, 3); got != "Loading lyrics…" {
		t.Errorf("render while loading = %q", got)
	}
	runQueries(t, ctx, client, to(l, ctx))

	ctx.Snapshot.Status.Elapsed = 2500 * time.Millisecond
	got := renderLine(t, l, ctx, 20, 3)
	rows := strings.Split(got, "\n")
	// The current line sits in the middle row.
	if len(rows) != 3 || strings.TrimSpace(rows[1]) != "two" {
		t.Errorf("render =\n%s", got)
	}

	ev := action(keys.MoveDown)
	_ = l.HandleAction(ev, ctx)
	if ev.Consumed() {
		t.Error("timed lyrics should not scroll by hand")
	}
}

func TestLyrics_PlainScroll(t *testing.T) {
	ctx := newTestContext(t, testLibrary())
	client := mpd.NewMemoryClient(testLibrary())
	client.SetLyrics("alpha/first/01.flac", "a\nb\nc\nd")
	l := NewLyrics()
	_ = l.BeforeShow(ctx)
	runQueries(t, ctx, client, to(l, ctx))

	_ = l.HandleAction(action(keys.MoveDown), ctx)
	got := strings.Fields(renderLine(t, l, ctx, 5, 2))
	if strings.Join(got, ",") != "b,c" {
		t.Errorf("rows after scrolling = %q, want b,c", got)
	}
}

func TestLyrics_NoneAndNothingPlaying(t *testing.T) {
	ctx := newTestContext(t, testLibrary())
	client := mpd.NewMemoryClient(testLibrary())
	l := NewLyrics()
	_ = l.BeforeShow(ctx)
	runQueries(t, ctx, client, to(l, ctx))
	if got := renderLine(t, l, ctx, 20, 1); got != "No lyrics" {
		t.Errorf("render = %q", got)
	}

	ctx.Snapshot.Status.SongID = nil
	_ = l.OnEvent(EventSongChanged, true, ctx)
	if got := renderLine(t, l, ctx, 20, 1); got != "Nothing playing" {
		t.Errorf("render = %q", got)
	}
}
