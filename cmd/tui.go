package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgy/internal/config"
	"github.com/theirongolddev/budgy/internal/ledger"
	"github.com/theirongolddev/budgy/internal/logging"
	"github.com/theirongolddev/budgy/internal/model"
	"github.com/theirongolddev/budgy/internal/tui"
	"github.com/theirongolddev/budgy/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive budget dashboard (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	logger, closeLog, err := logging.FromConfig(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	kind, err := model.ParseKind(cfg.General.DefaultKind)
	if err != nil {
		logger.Warn("invalid default_kind in config, using income", "value", cfg.General.DefaultKind)
		kind = model.Income
	}

	app := tui.NewApp(ledger.New(), tui.Options{
		DefaultKind: kind,
		FirstRun:    !config.Exists(),
		Logger:      logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info("starting dashboard", "theme", theme.Active.Name)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
