package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
)

// Help overlay dimensions
const (
	HelpWidth      = 56
	helpKeyWidth   = 16
	helpChromeRows = 5 // border top/bottom, title, filter, hint
)

// helpSection groups related actions under a title.
type helpSection struct {
	title   string
	actions []keys.Action
}

var helpSections = []helpSection{
	{"General", []keys.Action{keys.Quit, keys.Help, keys.NextTab, keys.PrevTab, keys.NextPane}},
	{"Navigation", []keys.Action{keys.MoveUp, keys.MoveDown, keys.PageUp, keys.PageDown, keys.Top, keys.Bottom, keys.Confirm, keys.Back}},
	{"Lists", []keys.Action{keys.Filter, keys.AddSong, keys.CopyPath}},
	{"Playback", []keys.Action{keys.TogglePause, keys.VolumeUp, keys.VolumeDown, keys.ToggleRepeat, keys.ToggleRandom, keys.CycleConsume, keys.CycleSingle, keys.UpdateDB}},
}

var helpDescriptions = map[keys.Action]string{
	keys.Quit:         "quit",
	keys.Help:         "show this help",
	keys.NextTab:      "next tab",
	keys.PrevTab:      "previous tab",
	keys.NextPane:     "focus next pane",
	keys.MoveUp:       "move up",
	keys.MoveDown:     "move down",
	keys.PageUp:       "page up",
	keys.PageDown:     "page down",
	keys.Top:          "jump to top",
	keys.Bottom:       "jump to bottom",
	keys.Confirm:      "open or play",
	keys.Back:         "go back",
	keys.Filter:       "filter list",
	keys.AddSong:      "add to queue",
	keys.CopyPath:     "copy song path",
	keys.TogglePause:  "play or pause",
	keys.VolumeUp:     "volume up",
	keys.VolumeDown:   "volume down",
	keys.ToggleRepeat: "toggle repeat",
	keys.ToggleRandom: "toggle random",
	keys.CycleConsume: "cycle consume",
	keys.CycleSingle:  "cycle single",
	keys.UpdateDB:     "update database",
}

// helpShortcutItem is one bound action in the help list.
type helpShortcutItem struct {
	keys string
	desc string
}

func (i helpShortcutItem) FilterValue() string {
	return i.keys + " " + i.desc
}

// helpSectionItem is a section title. It is not filterable.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

type helpDelegate struct{}

func (d helpDelegate) Height() int                             { return 1 }
func (d helpDelegate) Spacing() int                            { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(i.title))
	case helpShortcutItem:
		keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Width(helpKeyWidth)
		descStyle := TextStyle
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = SelectedStyle
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.keys)+descStyle.Render(i.desc))
	}
}

// Help is the keybinding overlay. It lists every bound action of a keymap
// and can be filtered with the list's own filter key.
type Help struct {
	list list.Model
}

// NewHelp builds the overlay for km. Disabled actions are left out.
func NewHelp(km keys.Keymap) *Help {
	var items []list.Item
	for _, section := range helpSections {
		var shortcuts []list.Item
		for _, a := range section.actions {
			b := km.Binding(a)
			if !b.Enabled() {
				continue
			}
			shortcuts = append(shortcuts, helpShortcutItem{
				keys: strings.Join(b.Keys(), "/"),
				desc: helpDescriptions[a],
			})
		}
		if len(shortcuts) == 0 {
			continue
		}
		items = append(items, helpSectionItem{title: section.title})
		items = append(items, shortcuts...)
	}

	l := list.New(items, helpDelegate{}, HelpWidth, len(items))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)
	l.Styles.TitleBar = lipgloss.NewStyle()

	// Start on the first shortcut, skipping the leading section title.
	for i, item := range items {
		if _, ok := item.(helpShortcutItem); ok {
			l.Select(i)
			break
		}
	}
	return &Help{list: l}
}

// Update handles a key press. It reports whether the overlay should close.
func (h *Help) Update(msg tea.KeyPressMsg) bool {
	if !h.list.SettingFilter() {
		switch msg.String() {
		case keys.Escape, "q", "?":
			if h.list.IsFiltered() {
				h.list.ResetFilter()
				return false
			}
			return true
		}
	}
	h.list, _ = h.list.Update(msg)
	return false
}

// Selected returns the keys and description of the selected shortcut.
func (h *Help) Selected() (string, string, bool) {
	if i, ok := h.list.SelectedItem().(helpShortcutItem); ok {
		return i.keys, i.desc, true
	}
	return "", "", false
}

// Render draws the overlay centered in f.
func (h *Help) Render(f *Frame) {
	area := f.Area()
	w := min(HelpWidth+2, area.Width)
	height := min(len(h.list.Items())+helpChromeRows, area.Height)
	outer := layout.NewRect(area.X+(area.Width-w)/2, area.Y+(area.Height-height)/2, w, height)
	if outer.Width < 3 || outer.Height < helpChromeRows {
		return
	}

	f.Clear(outer)
	f.DrawBorder(outer, layout.BordersAll, BorderFocusStyle)
	inner := outer.Inner(layout.BordersAll)
	h.list.SetSize(inner.Width, inner.Height-2)

	f.DrawLine(inner, 0, lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render("Keyboard Shortcuts"))
	f.DrawString(layout.NewRect(inner.X, inner.Y+1, inner.Width, inner.Height-2), h.list.View())
	hint := "/: filter  up/down: navigate  esc: close"
	if h.list.SettingFilter() {
		hint = "type to filter  enter: apply  esc: cancel"
	}
	f.DrawLine(inner, inner.Height-1, MutedStyle.Render(hint))
}
