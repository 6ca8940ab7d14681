package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/stave/internal/app"
	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/demo"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/mpd"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	libraryPath           string
	logPath               string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "stave",
	Short: "Terminal client for the Music Player Daemon",
	Long: `Stave is a terminal client for the Music Player Daemon.
Its screen is a configurable tree of panes: the queue, library browsers,
lyrics, album art and status lines, arranged per tab in config.yaml.

Without a running daemon stave plays an in-memory library, either the
built-in one or the YAML file passed with --library.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/stave/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "", "YAML library for the in-memory player (default built-in library)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", logger.DefaultLogPath, "Debug log file")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
	if logPath != "" {
		if err := logger.Init(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("stave %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("stave %s\n", version)
}

// loadConfig loads the config named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// loadClient builds the in-memory player from --library.
func loadClient() (*mpd.MemoryClient, error) {
	lib := demo.Seeded()
	if libraryPath != "" {
		l, err := demo.LoadLibrary(libraryPath)
		if err != nil {
			return nil, fmt.Errorf("error loading library: %w", err)
		}
		lib = l
	}
	return demo.NewClient(lib)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := loadClient()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	logger.Info("starting stave %s (config %s, %d tabs)", version, cfg.Path(), len(cfg.Tabs))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go demo.Play(ctx, client, time.Second)

	// Create and run the app
	m := app.New(cfg, client)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited: %v", err)
		return fmt.Errorf("error running app: %w", err)
	}
	logger.Info("stave exited")
	return nil
}
