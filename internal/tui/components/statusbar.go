package components

import (
	"strings"

	"github.com/theirongolddev/budgy/internal/model"
	"github.com/theirongolddev/budgy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, the
// current entry mode and last message on the right.
func RenderStatusBar(width int, entryKind model.Kind, message string, isErr bool) string {
	t := theme.Active

	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	modeColor := t.Income
	if entryKind == model.Expense {
		modeColor = t.Expense
	}
	modeStyle := lipgloss.NewStyle().Foreground(modeColor).Bold(true)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	if isErr {
		msgStyle = msgStyle.Foreground(t.Warn)
	}

	left := hintStyle.Render(" [a]dd  [d]elete  [t]ype  [?]help  [q]uit")
	right := modeStyle.Render(entryKind.Label())
	if message != "" {
		right = msgStyle.Render(message) + "  " + right
	}
	right += " "

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Width(width).Render(left + strings.Repeat(" ", padding) + right)
}
