package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ItemRow is one pre-formatted line of an item list.
type ItemRow struct {
	Description string
	Value       string
	Badge       string // per-expense percentage; empty for income rows
}

// ItemList renders rows inside a ContentCard. cursor highlights a row only
// when the list is focused. Rows past maxRows are scrolled so the cursor
// stays visible.
func ItemList(title string, rows []ItemRow, cursor int, focused bool, valueColor lipgloss.Color, outerWidth, maxRows int) string {
	t := theme.Active
	innerW := CardInnerWidth(outerWidth)

	descStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(valueColor)
	badgeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright)
	selStyle := lipgloss.NewStyle().Background(t.SurfaceBright)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(rows) == 0 {
		return ContentCard(title, dimStyle.Render("Nothing here yet"), focused, outerWidth)
	}

	start, end := visibleWindow(len(rows), cursor, maxRows)

	badgeW := 0
	valueW := 0
	for _, r := range rows {
		badgeW = max(badgeW, lipgloss.Width(r.Badge))
		valueW = max(valueW, lipgloss.Width(r.Value))
	}
	if badgeW > 0 {
		badgeW += 3 // separator + padding around the badge
	}
	descW := max(innerW-valueW-badgeW-3, 4)

	var b strings.Builder
	for i := start; i < end; i++ {
		r := rows[i]
		selected := focused && i == cursor

		marker := "  "
		if selected {
			marker = "▸ "
		}
		line := marker +
			descStyle.Render(fmt.Sprintf("%-*s", descW, truncate(r.Description, descW))) + " " +
			valueStyle.Render(fmt.Sprintf("%*s", valueW, r.Value))
		if badgeW > 0 {
			line += " " + badgeStyle.Render(fmt.Sprintf(" %*s ", badgeW-3, r.Badge))
		}
		if selected {
			line = selStyle.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if start > 0 || end < len(rows) {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(rows))))
	}

	return ContentCard(title, b.String(), focused, outerWidth)
}

// visibleWindow returns the [start, end) slice of n rows to show so that cursor
// is inside it. maxRows <= 0 shows everything.
func visibleWindow(n, cursor, maxRows int) (int, int) {
	if maxRows <= 0 || n <= maxRows {
		return 0, n
	}
	start := 0
	if cursor >= maxRows {
		start = cursor - maxRows + 1
	}
	return start, start + maxRows
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
