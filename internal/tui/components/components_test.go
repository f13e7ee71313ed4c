package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/budgy/internal/model"
	"github.com/theirongolddev/budgy/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{100, 3}, {81, 2}, {7, 7}, {10, 4}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total || len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) = %v", tc.total, tc.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := ContentCard("Short", "A", false, 22)
	tall := ContentCard("Tall", "A\nB\nC\nD", true, 22)

	joined := CardRow([]string{tall, short})
	if got, want := lipgloss.Height(joined), lipgloss.Height(tall); got != want {
		t.Fatalf("joined height = %d, want %d", got, want)
	}
	if got := lipgloss.Width(joined); got != 44 {
		t.Fatalf("joined width = %d, want 44", got)
	}
}

func TestVisibleWindowKeepsCursorVisible(t *testing.T) {
	cases := []struct {
		n, cursor, maxRows int
		start, end         int
	}{
		{5, 0, 10, 0, 5},
		{5, 4, 0, 0, 5},
		{20, 0, 5, 0, 5},
		{20, 4, 5, 0, 5},
		{20, 5, 5, 1, 6},
		{20, 19, 5, 15, 20},
	}
	for _, tc := range cases {
		start, end := visibleWindow(tc.n, tc.cursor, tc.maxRows)
		if start != tc.start || end != tc.end {
			t.Fatalf("visibleWindow(%d, %d, %d) = [%d, %d), want [%d, %d)",
				tc.n, tc.cursor, tc.maxRows, start, end, tc.start, tc.end)
		}
	}
}

func TestItemListRendersRowsAndBadges(t *testing.T) {
	rows := []ItemRow{
		{Description: "Rent", Value: "- 300.00", Badge: "30%"},
		{Description: "A very long description that will not fit", Value: "- 100.00", Badge: "---"},
	}
	out := ItemList("Expenses", rows, 1, true, theme.Active.Expense, 40, 10)
	for _, want := range []string{"Expenses", "Rent", "- 300.00", "30%", "---", "▸", "…"} {
		if !strings.Contains(out, want) {
			t.Fatalf("item list missing %q:\n%s", want, out)
		}
	}

	empty := ItemList("Income", nil, 0, false, theme.Active.Income, 40, 10)
	if !strings.Contains(empty, "Nothing here yet") {
		t.Fatalf("empty list placeholder missing:\n%s", empty)
	}
}

func TestSpendBarLabels(t *testing.T) {
	out := SpendBar(model.Budget{Percentage: 40}, 40)
	if !strings.Contains(out, "40%") || !strings.Contains(out, "Spent") {
		t.Fatalf("spend bar missing label:\n%s", out)
	}
	out = SpendBar(model.EmptyBudget(), 40)
	if !strings.Contains(out, "---") {
		t.Fatalf("undefined spend bar should show ---:\n%s", out)
	}
}

func TestStatusBarFillsWidth(t *testing.T) {
	bar := RenderStatusBar(100, model.Expense, "Deleted exp-0", false)
	if w := lipgloss.Width(bar); w != 100 {
		t.Fatalf("status bar width = %d, want 100", w)
	}
	if !strings.Contains(bar, "Expense") || !strings.Contains(bar, "Deleted exp-0") {
		t.Fatalf("status bar missing mode or message: %q", bar)
	}
}
