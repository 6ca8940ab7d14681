package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/mpd"
	"github.com/zhubert/stave/internal/notification"
)

// cmdTimeout bounds how long pump waits for a command. Ticks take longer and
// are dropped, so pumping never loops on the refresh or animation timers.
const cmdTimeout = 50 * time.Millisecond

func testLibrary() []mpd.Song {
	song := func(file, artist, album, title string, secs int) mpd.Song {
		return mpd.Song{
			File:     file,
			Duration: mpd.Dur(time.Duration(secs) * time.Second),
			Metadata: mpd.NewMetadata(
				mpd.TagArtist, artist,
				mpd.TagAlbumArtist, artist,
				mpd.TagAlbum, album,
				mpd.TagTitle, title,
				mpd.TagGenre, "Rock",
			),
		}
	}
	return []mpd.Song{
		song("alpha/first/01.flac", "Alpha", "First", "Opening", 180),
		song("alpha/first/02.flac", "Alpha", "First", "Middle", 200),
		song("beta/second/01.flac", "Beta", "Second", "Closing", 240),
	}
}

// testClient returns a client with the whole library queued and the first
// song playing.
func testClient(t *testing.T) *mpd.MemoryClient {
	t.Helper()
	c := mpd.NewMemoryClient(testLibrary())
	ctx := context.Background()
	for _, s := range testLibrary() {
		if err := c.Add(ctx, s.File); err != nil {
			t.Fatalf("add %s: %v", s.File, err)
		}
	}
	if err := c.PlayID(ctx, 1); err != nil {
		t.Fatalf("play: %v", err)
	}
	return c
}

// notified records desktop notifications sent during a test.
type notified struct {
	titles   []string
	messages []string
}

func captureNotifications(t *testing.T) *notified {
	t.Helper()
	n := &notified{}
	notification.SetNotifier(func(title, message string, _ any) error {
		n.titles = append(n.titles, title)
		n.messages = append(n.messages, message)
		return nil
	})
	t.Cleanup(notification.ResetNotifier)
	return n
}

// testModel creates a started model of the given size over cfg and c.
func testModel(t *testing.T, cfg *config.Config, c mpd.Client, width, height int) *Model {
	t.Helper()
	captureNotifications(t)
	m := New(cfg, c)
	t.Cleanup(m.Close)
	pump(t, m, m.Init())
	pump(t, m, update(m, tea.WindowSizeMsg{Width: width, Height: height}))
	return m
}

// defaultModel is testModel over the default configuration at 120x30.
func defaultModel(t *testing.T) (*Model, *mpd.MemoryClient) {
	t.Helper()
	c := testClient(t)
	return testModel(t, config.Default(), c, 120, 30), c
}

func update(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

// pump runs cmd and feeds every message it produces back into the model
// until nothing is left to do.
func pump(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 1000 {
			t.Fatal("pump did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg, ok := run(next)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
		default:
			queue = append(queue, update(m, msg))
		}
	}
}

// run executes cmd, giving up after cmdTimeout.
func run(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press and runs everything it triggers.
func sendKey(t *testing.T, m *Model, key string) {
	t.Helper()
	pump(t, m, update(m, keyPress(key)))
}

// typeText sends each character of text as a key press.
func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	for _, r := range text {
		sendKey(t, m, string(r))
	}
}

// click sends a left click at x, y and runs everything it triggers.
func clickAt(t *testing.T, m *Model, x, y int) {
	t.Helper()
	pump(t, m, update(m, tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}))
}

// locate returns the cell where text first appears in the rendered frame.
func locate(t *testing.T, m *Model, text string) (int, int) {
	t.Helper()
	for y, line := range strings.Split(m.RenderToString(), "\n") {
		if i := strings.Index(line, text); i >= 0 {
			return ansi.StringWidth(line[:i]), y
		}
	}
	t.Fatalf("%q not rendered:\n%s", text, m.RenderToString())
	return 0, 0
}

// status returns the client's current status.
func status(t *testing.T, c mpd.Client) mpd.Status {
	t.Helper()
	st, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	return st
}
