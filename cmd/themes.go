package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println()
	for _, t := range theme.All {
		marker := "  "
		if t.Name == cfg.Appearance.Theme {
			marker = "* "
		}
		swatch := lipgloss.NewStyle().Foreground(t.Income).Render("+ income") + "  " +
			lipgloss.NewStyle().Foreground(t.Expense).Render("- expense")
		fmt.Printf("  %s%-18s %s\n", marker, t.Name, swatch)
	}
	fmt.Println()
	return nil
}
