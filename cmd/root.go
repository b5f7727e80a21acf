// Package cmd implements the hstreak CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/hstreak/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagDebug   bool
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "hstreak",
	Short: "Habit streak tracker",
	Long:  "Track habits for a session: back-fill past completions, mark today done, and see how consistent you have been.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")
}

// loadConfig is the shared config path used by all commands. A config that
// cannot be read falls back to defaults so the tool always starts.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %s\n", err)
		cfg = config.DefaultConfig()
	}

	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagDebug {
		cfg.Logging.Level = "debug"
	}
	return cfg
}
