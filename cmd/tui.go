package cmd

import (
	"fmt"

	"github.com/theirongolddev/hstreak/internal/config"
	"github.com/theirongolddev/hstreak/internal/ledger"
	"github.com/theirongolddev/hstreak/internal/logging"
	"github.com/theirongolddev/hstreak/internal/store"
	"github.com/theirongolddev/hstreak/internal/tui"
	"github.com/theirongolddev/hstreak/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive habit tracker",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	theme.SetActive(config.GetTheme(cfg))

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	journal, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening session journal: %w", err)
	}
	defer func() { _ = journal.Close() }()

	logger.Info("Session started",
		zap.String("session_id", journal.SessionID()),
		zap.String("theme", theme.Active.Name),
	)

	l := ledger.New(ledger.WithLogger(logger))
	app := tui.NewApp(l, journal, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("Session ended", zap.Int("habits", l.Len()))
	return nil
}
