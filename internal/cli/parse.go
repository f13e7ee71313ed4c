package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/budgy/internal/model"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidEntry     = errors.New("invalid entry")
)

// MaxAmount is the largest amount ParseAmount accepts.
const MaxAmount = 1e13

// ParseAmount parses a positive decimal amount. Both "12.34" and "12,34" are
// accepted; signs, thousands separators, non-finite and non-positive values
// are rejected, as is anything above MaxAmount.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.Count(s, ".") > 1 {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return 0, ErrInvalidAmount
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || v <= 0 || v > MaxAmount {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ValidateDescription rejects blank descriptions.
func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Entry is a parsed (kind, description, value) triple ready for the ledger.
type Entry struct {
	Kind        model.Kind
	Description string
	Value       float64
}

// ParseEntry parses a "Description=Amount" flag value. The last "=" splits the
// pair so descriptions may contain "=".
func ParseEntry(kind model.Kind, s string) (Entry, error) {
	idx := strings.LastIndex(s, "=")
	if idx < 0 {
		return Entry{}, fmt.Errorf("%w: %q (want Description=Amount)", ErrInvalidEntry, s)
	}
	desc := strings.TrimSpace(s[:idx])
	if err := ValidateDescription(desc); err != nil {
		return Entry{}, fmt.Errorf("%w: %q", err, s)
	}
	v, err := ParseAmount(s[idx+1:])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %q", err, s)
	}
	return Entry{Kind: kind, Description: desc, Value: v}, nil
}
