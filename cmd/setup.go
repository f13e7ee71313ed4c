package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgy/internal/config"
	"github.com/theirongolddev/budgy/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	vals := tui.DefaultSetupValues()
	if err := tui.NewSetupForm(vals).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := tui.SaveSetup(*vals); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `budgy setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
