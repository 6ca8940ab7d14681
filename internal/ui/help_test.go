package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/stave/internal/keys"
)

func TestNewHelp_ListsBoundActions(t *testing.T) {
	h := NewHelp(keys.DefaultKeymap())

	k, desc, ok := h.Selected()
	if !ok {
		t.Fatal("expected a shortcut to be selected")
	}
	if k != "q/ctrl+c" || desc != "quit" {
		t.Errorf("first shortcut = %q %q, want q/ctrl+c quit", k, desc)
	}

	f := NewFrame(80, 40)
	h.Render(f)
	out := f.String()
	for _, want := range []string{"Keyboard Shortcuts", "General", "Playback", "toggle repeat", "esc: close"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q:\n%s", want, out)
		}
	}
}

func TestNewHelp_SkipsDisabled(t *testing.T) {
	km, err := keys.NewKeymap(map[string][]string{"update_db": {}})
	if err != nil {
		t.Fatal(err)
	}
	f := NewFrame(80, 40)
	NewHelp(km).Render(f)
	if strings.Contains(f.String(), "update database") {
		t.Error("disabled action listed")
	}
}

func TestHelp_Update(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyPressMsg
		wantClose bool
	}{
		{"escape closes", tea.KeyPressMsg{Code: tea.KeyEscape}, true},
		{"q closes", tea.KeyPressMsg{Code: 'q', Text: "q"}, true},
		{"question mark closes", tea.KeyPressMsg{Code: '?', Text: "?"}, true},
		{"down stays open", tea.KeyPressMsg{Code: tea.KeyDown}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHelp(keys.DefaultKeymap())
			if got := h.Update(tt.key); got != tt.wantClose {
				t.Errorf("Update() = %v, want %v", got, tt.wantClose)
			}
		})
	}
}

func TestHelp_Navigate(t *testing.T) {
	h := NewHelp(keys.DefaultKeymap())
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, desc, ok := h.Selected()
	if !ok || desc != "show this help" {
		t.Errorf("after down selected %q, want show this help", desc)
	}
}

func TestHelp_RenderTinyFrame(t *testing.T) {
	f := NewFrame(2, 2)
	NewHelp(keys.DefaultKeymap()).Render(f)
	if strings.TrimSpace(f.String()) != "" {
		t.Errorf("expected nothing drawn, got %q", f.String())
	}
}
