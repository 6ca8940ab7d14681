package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/stave/internal/errors"
	"github.com/zhubert/stave/internal/keys"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/property"
)

// Config is the validated runtime configuration. It is built once at
// startup and never modified.
type Config struct {
	Theme          string
	Notifications  bool
	StatusInterval time.Duration
	TagSeparator   string
	Strategy       property.Strategy
	Symbols        Symbols
	Columns        []Column
	Header         []HeaderRow
	Layout         *layout.Node[PaneType]
	Tabs           []Tab
	Keymap         keys.Keymap

	path string
}

// Symbols holds the glyphs used across panes.
type Symbols SymbolsFile

// Column is one column of the song table.
type Column struct {
	Label string
	Prop  *property.Spec
	Width layout.Size
	Align Alignment
}

// HeaderRow is one line of the header pane.
type HeaderRow struct {
	Left, Center, Right []*property.Spec
}

// Tab is a named pane tree shown in the tab_content area.
type Tab struct {
	Name string
	Root *layout.Node[PaneType]
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, errs := build(DefaultFile())
	if len(errs) > 0 {
		panic(fmt.Sprintf("config: embedded default is invalid: %s", joinErrors(errs)))
	}
	return cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/stave/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "stave", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "stave", "config.yaml"), nil
}

// Load reads the config at path, or at DefaultPath when path is empty, and
// merges it over the built-in defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.path = path
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Parse builds a Config from YAML merged over the built-in defaults.
func Parse(data []byte) (*Config, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.ConfigInvalid(fmt.Sprintf("parsing yaml: %v", err))
	}

	cfg, errs := build(Merge(&f, DefaultFile()))
	if len(errs) > 0 {
		return nil, errors.ConfigInvalid(joinErrors(errs))
	}
	return cfg, nil
}

// WriteDefault writes the built-in configuration to path, creating parent
// directories. An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.ConfigLoadFailed(path, os.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, defaultYAML, 0644)
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Tab returns the tab named name.
func (c *Config) Tab(name string) (Tab, bool) {
	for _, t := range c.Tabs {
		if t.Name == name {
			return t, true
		}
	}
	return Tab{}, false
}

// TabNames returns tab names in configured order.
func (c *Config) TabNames() []string {
	names := make([]string, len(c.Tabs))
	for i, t := range c.Tabs {
		names[i] = t.Name
	}
	return names
}

// BrowserPanes returns every distinct browser pane across the root layout
// and all tabs, in first-seen order.
func (c *Config) BrowserPanes() []PaneType {
	var out []PaneType
	seen := make(map[string]bool)
	collect := func(root *layout.Node[PaneType]) {
		for _, p := range layout.Leaves(root) {
			if p.Kind == PaneBrowser && !seen[p.Key()] {
				seen[p.Key()] = true
				out = append(out, p)
			}
		}
	}
	collect(c.Layout)
	for _, t := range c.Tabs {
		collect(t.Root)
	}
	return out
}
