package keys

import (
	"fmt"
	"sort"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Action is a logical command a key press maps to.
type Action string

const (
	Quit         Action = "quit"
	NextTab      Action = "next_tab"
	PrevTab      Action = "prev_tab"
	NextPane     Action = "next_pane"
	MoveUp       Action = "up"
	MoveDown     Action = "down"
	PageUp       Action = "page_up"
	PageDown     Action = "page_down"
	Top          Action = "top"
	Bottom       Action = "bottom"
	Confirm      Action = "confirm"
	Back         Action = "back"
	Filter       Action = "filter"
	AddSong      Action = "add"
	CopyPath     Action = "copy_path"
	TogglePause  Action = "toggle_pause"
	VolumeUp     Action = "volume_up"
	VolumeDown   Action = "volume_down"
	ToggleRepeat Action = "toggle_repeat"
	ToggleRandom Action = "toggle_random"
	CycleConsume Action = "cycle_consume"
	CycleSingle  Action = "cycle_single"
	UpdateDB     Action = "update_db"
	Help         Action = "help"
)

// order fixes the precedence when two actions share a key.
var order = []Action{
	Quit, NextTab, PrevTab, NextPane, Help,
	MoveUp, MoveDown, PageUp, PageDown, Top, Bottom,
	Confirm, Back, Filter, AddSong, CopyPath,
	TogglePause, VolumeUp, VolumeDown,
	ToggleRepeat, ToggleRandom, CycleConsume, CycleSingle, UpdateDB,
}

var defaults = map[Action][]string{
	Quit:         {"q", CtrlC},
	NextTab:      {Tab},
	PrevTab:      {ShiftTab},
	NextPane:     {"w"},
	MoveUp:       {Up, "k"},
	MoveDown:     {Down, "j"},
	PageUp:       {PgUp, CtrlU},
	PageDown:     {PgDown, CtrlD},
	Top:          {Home, "g"},
	Bottom:       {End, "G"},
	Confirm:      {Enter, Right, "l"},
	Back:         {Escape, Backspace, Left, "h"},
	Filter:       {"/"},
	AddSong:      {"a"},
	CopyPath:     {"y"},
	TogglePause:  {"p", Space},
	VolumeUp:     {"+", "="},
	VolumeDown:   {"-"},
	ToggleRepeat: {"r"},
	ToggleRandom: {"z"},
	CycleConsume: {"c"},
	CycleSingle:  {"s"},
	UpdateDB:     {"u"},
	Help:         {"?"},
}

// Keymap resolves key presses to actions.
type Keymap struct {
	bindings map[Action]key.Binding
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() Keymap {
	km, _ := NewKeymap(nil)
	return km
}

// NewKeymap returns the default bindings with overrides applied. An override
// replaces every key of its action.
func NewKeymap(overrides map[string][]string) (Keymap, error) {
	km := Keymap{bindings: make(map[Action]key.Binding, len(defaults))}
	for a, ks := range defaults {
		km.bindings[a] = key.NewBinding(key.WithKeys(ks...), key.WithHelp(ks[0], string(a)))
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a := Action(name)
		if _, ok := defaults[a]; !ok {
			return Keymap{}, fmt.Errorf("unknown action %q", name)
		}
		ks := overrides[name]
		if len(ks) == 0 {
			km.bindings[a] = key.NewBinding(key.WithDisabled())
			continue
		}
		km.bindings[a] = key.NewBinding(key.WithKeys(ks...), key.WithHelp(ks[0], name))
	}
	return km, nil
}

// Lookup returns the action bound to msg.
func (km Keymap) Lookup(msg tea.KeyPressMsg) (Action, bool) {
	for _, a := range order {
		if b, ok := km.bindings[a]; ok && key.Matches(msg, b) {
			return a, true
		}
	}
	return "", false
}

// Binding returns the binding of a.
func (km Keymap) Binding(a Action) key.Binding {
	return km.bindings[a]
}

// Actions returns every known action in precedence order.
func Actions() []Action {
	return append([]Action(nil), order...)
}
