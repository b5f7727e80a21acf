package cmd

import (
	"fmt"

	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/model"
	"github.com/theirongolddev/hstreak/internal/suggest"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagDebug {
		cfg.Logging.Level = "debug"
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default frequency:   %s\n", model.FrequencyLabel(cfg.DefaultFrequencyDays()))
	fmt.Printf("    Default input mode:  %s\n", cfg.General.DefaultInputMode)
	fmt.Printf("    Default start:       %d days ago\n", cfg.General.DefaultStartOffsetDays)
	fmt.Printf("    Default day count:   %d\n", cfg.General.DefaultDayCount)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", config.GetTheme(cfg))
	fmt.Println()

	fmt.Println("  [Suggestions]")
	if len(cfg.Suggestions.Pool) > 0 {
		fmt.Printf("    Pool: %d custom\n", len(cfg.SuggestionPool(suggest.DefaultPool)))
	} else {
		fmt.Printf("    Pool: %d built-in\n", len(suggest.DefaultPool))
	}
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Logging.File)
	} else {
		fmt.Println("    File:  disabled")
	}
	fmt.Println()

	fmt.Println("  Run `hstreak setup` to reconfigure.")
	return nil
}
