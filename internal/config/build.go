package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/property"
)

// build converts a merged File into a Config, collecting every problem.
func build(f *File) (*Config, []ValidationError) {
	v := &validator{}
	cfg := &Config{
		Theme:         f.Theme,
		Notifications: f.Notifications == nil || *f.Notifications,
		Symbols:       Symbols(f.Symbols),
	}

	if !slices.Contains(Themes, f.Theme) {
		v.add("theme", "unknown theme %q (must be one of %v)", f.Theme, Themes)
	}

	cfg.StatusInterval = time.Second
	if f.StatusUpdateInterval != nil {
		cfg.StatusInterval = f.StatusUpdateInterval.Duration
		if cfg.StatusInterval <= 0 {
			v.add("status_update_interval", "must be positive")
		}
	}
	if f.TagSeparator != nil {
		cfg.TagSeparator = *f.TagSeparator
	}

	strategy, err := property.ParseStrategy(f.TagResolution)
	if err != nil {
		v.add("tag_resolution", "%v", err)
	}
	cfg.Strategy = strategy

	for i, c := range f.SongTable {
		cfg.Columns = append(cfg.Columns, buildColumn(v, fmt.Sprintf("song_table[%d]", i), c))
	}
	for i, row := range f.Header {
		field := fmt.Sprintf("header[%d]", i)
		cfg.Header = append(cfg.Header, HeaderRow{
			Left:   buildProperties(v, field+".left", row.Left),
			Center: buildProperties(v, field+".center", row.Center),
			Right:  buildProperties(v, field+".right", row.Right),
		})
	}

	if f.Layout == nil {
		v.add("layout", "layout is required")
	} else {
		cfg.Layout = buildPane(v, "layout", *f.Layout, true)
		if cfg.Layout != nil && !slices.ContainsFunc(layout.Leaves(cfg.Layout), isTabContent) {
			v.add("layout", "layout must contain a tab_content pane")
		}
	}

	if len(f.Tabs) == 0 {
		v.add("tabs", "at least one tab is required")
	}
	seen := make(map[string]bool, len(f.Tabs))
	for i, t := range f.Tabs {
		field := fmt.Sprintf("tabs[%d]", i)
		if t.Name == "" {
			v.add(field+".name", "name is required")
		} else if seen[t.Name] {
			v.add(field+".name", "duplicate tab %q", t.Name)
		}
		seen[t.Name] = true
		cfg.Tabs = append(cfg.Tabs, Tab{Name: t.Name, Root: buildPane(v, field+".pane", t.Pane, false)})
	}

	km, err := keys.NewKeymap(f.Keybinds)
	if err != nil {
		v.add("keybinds", "%v", err)
	}
	cfg.Keymap = km

	return cfg, v.errs
}

func isTabContent(p PaneType) bool {
	return p.Kind == PaneTabContent
}

func buildColumn(v *validator, field string, c ColumnFile) Column {
	col := Column{Label: c.Label, Width: layout.Ratio(1)}
	if c.Width != "" {
		size, err := layout.ParseSize(c.Width)
		switch {
		case err != nil:
			v.add(field+".width", "%v", err)
		case size.Kind == layout.SizeOtherPercent:
			v.add(field+".width", "column widths cannot be relative to the other axis")
		default:
			col.Width = size
		}
	}
	align, err := ParseAlignment(c.Align)
	if err != nil {
		v.add(field+".align", "%v", err)
	}
	col.Align = align
	col.Prop = buildProperty(v, field+".prop", c.Prop)
	return col
}

func buildPane(v *validator, field string, p PaneFile, root bool) *layout.Node[PaneType] {
	borders, err := layout.ParseBorders(p.Borders)
	if err != nil {
		v.add(field+".borders", "%v", err)
	}

	switch {
	case p.Pane != "" && len(p.Panes) > 0:
		v.add(field, "a node cannot have both pane and panes")
		return nil
	case p.Pane == "" && len(p.Panes) == 0:
		v.add(field, "a node needs either pane or panes")
		return nil
	case len(p.Panes) > 0:
		dir, err := layout.ParseDirection(p.Direction)
		if err != nil {
			v.add(field+".direction", "%v", err)
		}
		children := make([]layout.Child[PaneType], 0, len(p.Panes))
		for i, c := range p.Panes {
			cf := fmt.Sprintf("%s.panes[%d]", field, i)
			size, err := layout.ParseSize(c.Size)
			if err != nil {
				v.add(cf+".size", "%v", err)
			}
			child := buildPane(v, cf, c, root)
			if child == nil {
				continue
			}
			children = append(children, layout.Sized(size, child))
		}
		return layout.NewSplit(dir, borders, children...)
	}

	kind, err := ParsePaneKind(p.Pane)
	if err != nil {
		v.add(field+".pane", "%v", err)
		return nil
	}
	pt := PaneType{Kind: kind}
	switch kind {
	case PaneTabContent:
		if !root {
			v.add(field+".pane", "tab_content is only allowed in the root layout")
		}
	case PaneBrowser:
		if p.RootTag == "" {
			v.add(field+".root_tag", "root_tag is required for browser panes")
		}
		pt.RootTag = p.RootTag
		pt.Separator = ", "
		if p.Separator != nil {
			pt.Separator = *p.Separator
		}
	case PaneProperty:
		align, err := ParseAlignment(p.Align)
		if err != nil {
			v.add(field+".align", "%v", err)
		}
		if p.ScrollSpeed < 0 {
			v.add(field+".scroll_speed", "must not be negative")
		}
		if len(p.Content) == 0 {
			v.add(field+".content", "property panes need content")
		}
		pt.Property = &PropertyPane{
			Content:     buildProperties(v, field+".content", p.Content),
			Align:       align,
			ScrollSpeed: p.ScrollSpeed,
		}
	}
	return layout.Leaf(pt, borders)
}

func buildProperties(v *validator, field string, pfs []PropertyFile) []*property.Spec {
	out := make([]*property.Spec, 0, len(pfs))
	for i, pf := range pfs {
		if spec := buildProperty(v, fmt.Sprintf("%s[%d]", field, i), pf); spec != nil {
			out = append(out, spec)
		}
	}
	return out
}

// buildProperty converts pf and checks the finished tree once. Colors are
// reported by buildStyle with their exact field.
func buildProperty(v *validator, field string, pf PropertyFile) *property.Spec {
	spec := buildSpec(v, field, pf)
	if spec == nil {
		return nil
	}
	if err := property.Validate(spec); err != nil && !errors.Is(err, property.ErrBadColor) {
		v.add(field, "%v", err)
	}
	return spec
}

func buildSpec(v *validator, field string, pf PropertyFile) *property.Spec {
	set := 0
	for _, ok := range []bool{pf.Text != nil, pf.Song != "", pf.Status != nil, pf.Widget != nil, pf.Sticker != "", pf.Group != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		v.add(field, "exactly one of text, song, status, widget, sticker or group must be set")
		return nil
	}

	spec := &property.Spec{}
	switch {
	case pf.Text != nil:
		spec.Kind = property.Text{Value: *pf.Text}
	case pf.Song != "":
		spec.Kind = property.ParseSongProperty(pf.Song)
	case pf.Sticker != "":
		spec.Kind = property.Sticker{Key: pf.Sticker}
	case pf.Group != nil:
		members := make([]*property.Spec, 0, len(*pf.Group))
		for i, mf := range *pf.Group {
			if m := buildSpec(v, fmt.Sprintf("%s.group[%d]", field, i), mf); m != nil {
				members = append(members, m)
			}
		}
		spec.Kind = property.Group{Members: members}
	case pf.Status != nil:
		spec.Kind = buildStatus(v, field+".status", *pf.Status)
	case pf.Widget != nil:
		spec.Kind = buildWidget(v, field+".widget", *pf.Widget)
	}
	if spec.Kind == nil {
		return nil
	}

	if pf.Style != nil {
		spec.Style = buildStyle(v, field+".style", *pf.Style)
	}
	if pf.Default != nil {
		spec.Default = buildSpec(v, field+".default", *pf.Default)
	}
	return spec
}

func buildStatus(v *validator, field string, n NamedFile) property.Kind {
	o := n.Options
	switch n.Name {
	case "state":
		return property.PlaybackState{
			PlayingLabel: or(o.PlayingLabel, "Playing"),
			PausedLabel:  or(o.PausedLabel, "Paused"),
			StoppedLabel: or(o.StoppedLabel, "Stopped"),
			PlayingStyle: buildOptionalStyle(v, field+".playing_style", o.PlayingStyle),
			PausedStyle:  buildOptionalStyle(v, field+".paused_style", o.PausedStyle),
			StoppedStyle: buildOptionalStyle(v, field+".stopped_style", o.StoppedStyle),
		}
	case "elapsed":
		return property.StatusValue{Field: property.StatusElapsed}
	case "duration":
		return property.StatusValue{Field: property.StatusDuration}
	case "volume":
		return property.StatusValue{Field: property.StatusVolume}
	case "bitrate":
		return property.StatusValue{Field: property.StatusBitrate}
	case "crossfade":
		return property.StatusValue{Field: property.StatusCrossfade}
	case "active_tab":
		return property.StatusValue{Field: property.StatusActiveTab}
	case "repeat", "random":
		toggle := property.ToggleRepeat
		if n.Name == "random" {
			toggle = property.ToggleRandom
		}
		return property.OnOff{
			Toggle:   toggle,
			OnLabel:  or(o.OnLabel, "On"),
			OffLabel: or(o.OffLabel, "Off"),
			OnStyle:  buildOptionalStyle(v, field+".on_style", o.OnStyle),
			OffStyle: buildOptionalStyle(v, field+".off_style", o.OffStyle),
		}
	case "consume", "single":
		toggle := property.TriConsume
		if n.Name == "single" {
			toggle = property.TriSingle
		}
		return property.OnOffOneshot{
			Toggle:       toggle,
			OnLabel:      or(o.OnLabel, "On"),
			OffLabel:     or(o.OffLabel, "Off"),
			OneshotLabel: or(o.OneshotLabel, "OS"),
			OnStyle:      buildOptionalStyle(v, field+".on_style", o.OnStyle),
			OffStyle:     buildOptionalStyle(v, field+".off_style", o.OffStyle),
			OneshotStyle: buildOptionalStyle(v, field+".oneshot_style", o.OneshotStyle),
		}
	case "queue_length":
		return property.QueueLength{ThousandsSeparator: or(o.ThousandsSeparator, ",")}
	case "queue_time_total":
		return property.QueueTimeTotal{Separator: or(o.Separator, " ")}
	case "queue_time_remaining":
		return property.QueueTimeRemaining{Separator: or(o.Separator, " ")}
	}
	v.add(field, "unknown status property %q", n.Name)
	return nil
}

func buildWidget(v *validator, field string, n NamedFile) property.Kind {
	switch n.Name {
	case "volume":
		return property.VolumeWidget{}
	case "states":
		var w property.StatesWidget
		if s := buildOptionalStyle(v, field+".active_style", n.Options.ActiveStyle); s != nil {
			w.ActiveStyle = *s
		}
		if s := buildOptionalStyle(v, field+".separator_style", n.Options.SeparatorStyle); s != nil {
			w.SeparatorStyle = *s
		}
		return w
	case "scan_status":
		return property.ScanStatusWidget{}
	}
	v.add(field, "unknown widget %q", n.Name)
	return nil
}

func buildStyle(v *validator, field string, sf StyleFile) property.Style {
	if sf.Fg != "" && !property.ValidColor(sf.Fg) {
		v.add(field+".fg", "invalid color %q", sf.Fg)
	}
	if sf.Bg != "" && !property.ValidColor(sf.Bg) {
		v.add(field+".bg", "invalid color %q", sf.Bg)
	}
	return property.Style{
		Fg:            sf.Fg,
		Bg:            sf.Bg,
		Bold:          sf.Bold,
		Italic:        sf.Italic,
		Underline:     sf.Underline,
		Dim:           sf.Dim,
		Reversed:      sf.Reversed,
		Strikethrough: sf.Strikethrough,
	}
}

func buildOptionalStyle(v *validator, field string, sf *StyleFile) *property.Style {
	if sf == nil {
		return nil
	}
	s := buildStyle(v, field, *sf)
	return &s
}

func or(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
