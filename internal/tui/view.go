package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgy/internal/cli"
	"github.com/theirongolddev/budgy/internal/model"
	"github.com/theirongolddev/budgy/internal/tui/components"
	"github.com/theirongolddev/budgy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.viewOverlay(a.setupForm.View())
	}
	if a.entryForm != nil {
		return a.viewOverlay(a.entryForm.View())
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  budgy needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewOverlay(body string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, formCard(body))
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Income).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"a / Enter", "Add an entry"},
		{"t", "Toggle default type (+/-)"},
		{"Tab ← →", "Switch between Income and Expenses"},
		{"j k", "Move selection"},
		{"g G", "First / last entry"},
		{"d x Del", "Delete selected entry"},
		{"Esc", "Cancel the entry form"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return a.viewOverlay(b.String())
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader(cw)
	statusBar := components.RenderStatusBar(w, a.entryKind, a.status, a.statusErr)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	// card borders + title + scroll hint take 4 lines
	listRows := contentH - 4
	if a.isCompactLayout() {
		listRows = (contentH - 8) / 2
	}
	content := a.renderLists(cw, max(listRows, 1))
	content = padHeight(truncateHeight(content, contentH), contentH)

	body := lipgloss.JoinVertical(lipgloss.Left, header, content)
	body = lipgloss.PlaceHorizontal(w, lipgloss.Center, body)

	output := lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderHeader renders the month heading, the available budget and the
// income/expense/spent cards.
func (a App) renderHeader(cw int) string {
	t := theme.Active
	b := a.budget

	monthStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	budgetColor := t.Expense
	if b.Budget > 0 {
		budgetColor = t.Income
	}
	budgetStyle := lipgloss.NewStyle().Foreground(budgetColor).Bold(true)

	title := lipgloss.JoinVertical(lipgloss.Center,
		monthStyle.Render("Available budget in "+cli.FormatMonth(a.now())),
		budgetStyle.Render(cli.FormatBudget(b.Budget)),
	)
	title = lipgloss.PlaceHorizontal(cw, lipgloss.Center, title)

	metrics := []components.Metric{
		{Label: "Income", Value: cli.FormatValue(b.TotalIncome, model.Income), Color: t.Income},
		{Label: "Expenses", Value: cli.FormatValue(b.TotalExpense, model.Expense), Note: cli.FormatPercent(b.Percentage) + " of income", Color: t.Expense},
	}
	cards := components.MetricCardRow(metrics, cw)
	bar := " " + components.SpendBar(b, cw-2)

	return title + "\n" + cards + "\n" + bar + "\n"
}

// renderLists renders the income and expense lists, side by side or stacked
// in compact layouts.
func (a App) renderLists(cw, maxRows int) string {
	t := theme.Active

	incRows := make([]components.ItemRow, len(a.incomes))
	for i, in := range a.incomes {
		incRows[i] = components.ItemRow{
			Description: in.Description,
			Value:       cli.FormatValue(in.Value, model.Income),
		}
	}

	expRows := make([]components.ItemRow, len(a.expenses))
	for i, e := range a.expenses {
		pct := model.Undefined
		if i < len(a.percentages) {
			pct = a.percentages[i]
		}
		expRows[i] = components.ItemRow{
			Description: e.Description,
			Value:       cli.FormatValue(e.Value, model.Expense),
			Badge:       cli.FormatPercent(pct),
		}
	}

	incTitle := fmt.Sprintf("Income (%d)", len(incRows))
	expTitle := fmt.Sprintf("Expenses (%d)", len(expRows))

	if a.isCompactLayout() {
		inc := components.ItemList(incTitle, incRows, a.incCursor, a.focus == model.Income, t.Income, cw, maxRows)
		exp := components.ItemList(expTitle, expRows, a.expCursor, a.focus == model.Expense, t.Expense, cw, maxRows)
		return inc + "\n" + exp
	}

	halves := components.LayoutRow(cw, 2)
	inc := components.ItemList(incTitle, incRows, a.incCursor, a.focus == model.Income, t.Income, halves[0], maxRows)
	exp := components.ItemList(expTitle, expRows, a.expCursor, a.focus == model.Expense, t.Expense, halves[1], maxRows)
	return components.CardRow([]string{inc, exp})
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
