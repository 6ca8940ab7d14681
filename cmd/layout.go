package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/stave/internal/app"
	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/mpd"
)

var (
	layoutWidth  int
	layoutHeight int
	layoutTab    string
	layoutRender bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print where each pane lands for a terminal size",
	Long: `Partitions the configured layout for the given terminal size and prints
the inner rectangle of every visible pane as WIDTHxHEIGHT+X+Y.

Use --tab to pick which tab fills the tab content area and --render to
print the rendered screen below the rectangles.`,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().IntVarP(&layoutWidth, "width", "w", 120, "Terminal width")
	layoutCmd.Flags().IntVarP(&layoutHeight, "height", "H", 40, "Terminal height")
	layoutCmd.Flags().StringVarP(&layoutTab, "tab", "t", "", "Tab to show (default first tab)")
	layoutCmd.Flags().BoolVar(&layoutRender, "render", false, "Also print the rendered screen")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := loadClient()
	if err != nil {
		return err
	}
	return printLayout(cmd.OutOrStdout(), cfg, client, layoutWidth, layoutHeight, layoutTab, layoutRender)
}

// printLayout arranges cfg at width x height and writes one line per pane.
func printLayout(w io.Writer, cfg *config.Config, client mpd.Client, width, height int, tab string, render bool) error {
	m := app.New(cfg, client)
	defer m.Close()
	m.Headless()

	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	if tab != "" && !m.SelectTab(tab) {
		return fmt.Errorf("unknown tab %q (have %v)", tab, cfg.TabNames())
	}
	if err := m.Refresh(); err != nil {
		return err
	}
	// Render once so layout errors surface.
	screen := m.RenderToString()
	if err := m.Err(); err != nil {
		return err
	}

	areas := m.Areas()
	if len(areas) == 0 {
		return fmt.Errorf("terminal %dx%d is too small for the layout", width, height)
	}
	keys := make([]string, 0, len(areas))
	for k := range areas {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		ra, rb := areas[a], areas[b]
		if ra.Y != rb.Y {
			return ra.Y - rb.Y
		}
		if ra.X != rb.X {
			return ra.X - rb.X
		}
		return strings.Compare(a, b)
	})

	fmt.Fprintf(w, "Tab: %s (%dx%d)\n", m.ActiveTab(), width, height)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-24s %s\n", k, areas[k])
	}
	if render {
		fmt.Fprintln(w)
		fmt.Fprintln(w, screen)
	}
	return nil
}
