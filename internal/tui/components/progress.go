package components

import (
	"fmt"

	"github.com/theirongolddev/budgy/internal/cli"
	"github.com/theirongolddev/budgy/internal/model"
	"github.com/theirongolddev/budgy/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns income/yellow/warn/expense colors for a 0-1 spend fraction.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Expense)
	case pct >= 0.7:
		return string(t.Warn)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Income)
	}
}

// SpendBar renders how much of total income has been spent as a labeled bar.
// An undefined percentage renders an empty bar with the "---" label.
func SpendBar(b model.Budget, width int) string {
	t := theme.Active

	label := "Spent"
	pctStr := fmt.Sprintf("%4s", cli.FormatPercent(b.Percentage))
	barW := max(width-lipgloss.Width(label)-lipgloss.Width(pctStr)-2, 4)

	pct := b.SpentFraction()
	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)

	return labelStyle.Render(label) + " " + bar.ViewAs(pct) + " " + pctStyle.Render(pctStr)
}
