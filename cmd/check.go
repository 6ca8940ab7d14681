package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/layout"
	"github.com/zhubert/stave/internal/logger"
)

var writeDefault bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration file",
	Long: `Loads the configuration, merges it over the built-in defaults and reports
every problem found: unknown panes, bad sizes, unknown themes, duplicate or
missing tabs and default chains that loop.

With --write-default the built-in configuration is written to the config
path first, unless a file is already there.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&writeDefault, "write-default", false, "Write the built-in config to the config path if none exists")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if writeDefault {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("error finding config path: %w", err)
			}
			path = p
		}
		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("error writing default config: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
		logger.Info("wrote default config to %s", path)
		configPath = path
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Warn("config check failed: %v", err)
		return err
	}
	printSummary(out, cfg)
	if p := logger.Path(); p != "" {
		fmt.Fprintf(out, "  log:      %s\n", p)
	}
	return nil
}

// printSummary writes what the loaded config amounts to.
func printSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Config OK: %s\n", cfg.Path())
	fmt.Fprintf(w, "  theme:    %s\n", cfg.Theme)
	fmt.Fprintf(w, "  refresh:  %s\n", cfg.StatusInterval)
	fmt.Fprintf(w, "  columns:  %d\n", len(cfg.Columns))
	fmt.Fprintf(w, "  layout:   %d panes, depth %d\n", len(layout.Leaves(cfg.Layout)), layout.Depth(cfg.Layout))
	fmt.Fprintf(w, "  tabs:\n")
	for _, t := range cfg.Tabs {
		fmt.Fprintf(w, "    %-16s %d panes\n", t.Name, len(layout.Leaves(t.Root)))
	}
	if browsers := cfg.BrowserPanes(); len(browsers) > 0 {
		fmt.Fprintf(w, "  browsers:\n")
		for _, b := range browsers {
			fmt.Fprintf(w, "    %s\n", b)
		}
	}
}
