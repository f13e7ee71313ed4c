// Package cli provides parsing, formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/budgy/internal/model"
)

// NoPercent is shown in place of a percentage that is zero or undefined.
const NoPercent = "---"

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + groupDigits(strconv.FormatUint(uint64(-n), 10))
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

// groupDigits inserts a comma every three digits from the right.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatAmount renders the absolute value of v with exactly two decimals and
// comma thousands separators. e.g., -1234.5 -> "1,234.50"
// Grouping works on the decimal string, so amounts past the int64 range
// still render correctly.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	return groupDigits(whole) + "." + frac
}

// FormatValue prefixes FormatAmount with the kind's sign:
// "+ 1,000.00" for income, "- 300.00" for expense.
func FormatValue(v float64, kind model.Kind) string {
	sign := "+"
	if kind == model.Expense {
		sign = "-"
	}
	return sign + " " + FormatAmount(v)
}

// FormatBudget signs the available budget. Only a strictly positive budget
// gets "+"; zero renders as "- 0.00".
func FormatBudget(v float64) string {
	if v > 0 {
		return FormatValue(v, model.Income)
	}
	return FormatValue(v, model.Expense)
}

// FormatPercent renders a positive percentage as "N%" and anything else,
// including zero and the undefined sentinel, as NoPercent.
func FormatPercent(p model.Percent) string {
	if p > 0 {
		return fmt.Sprintf("%.0f%%", float64(p))
	}
	return NoPercent
}

// FormatMonth returns the "January 2006" heading for t.
func FormatMonth(t time.Time) string {
	return t.Format("January 2006")
}
