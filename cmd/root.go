package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/budgy/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagTheme    string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "budgy",
	Short: "Monthly budget tracker",
	Long:  "Track income and expenses for the month and see what is left to spend.",
	RunE:  runTUI,
	// Usage is noise on validation errors like a malformed --income pair.
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// loadConfig is the shared config path used by all commands: .env first, then
// the TOML file with env overrides, then command-line flags.
func loadConfig() (config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading %s: %w", config.Path(), err)
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	return cfg, nil
}
