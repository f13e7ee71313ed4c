package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Percent is a rounded percentage. Undefined marks a share that could not be
// computed because there was no income to divide by.
type Percent float64

// Undefined is the sentinel for a percentage that is not computable yet.
// It is distinct from zero.
const Undefined Percent = -1

// Defined reports whether p holds a computed value.
func (p Percent) Defined() bool {
	return p >= 0
}

// PercentOf returns round(100*part/whole), or Undefined when whole <= 0.
func PercentOf(part, whole float64) Percent {
	if whole > 0 {
		return Percent(math.Round(part / whole * 100))
	}
	return Undefined
}

// Item holds the fields shared by every ledger record.
type Item struct {
	ID          int
	Description string
	Value       float64
}

// Record is either an IncomeEntry or an ExpenseEntry.
type Record interface {
	Kind() Kind
	Base() Item
	Ref() string
}

// IncomeEntry is a single income record.
type IncomeEntry struct {
	Item
}

// ExpenseEntry is a single expense record. Percentage caches the expense's share of
// total income as of the last recompute pass.
type ExpenseEntry struct {
	Item
	Percentage Percent
}

// NewIncome builds an IncomeEntry with the given id.
func NewIncome(id int, description string, value float64) IncomeEntry {
	return IncomeEntry{Item: Item{ID: id, Description: description, Value: value}}
}

// NewExpense builds an ExpenseEntry with the given id and an Undefined percentage.
func NewExpense(id int, description string, value float64) ExpenseEntry {
	return ExpenseEntry{
		Item:       Item{ID: id, Description: description, Value: value},
		Percentage: Undefined,
	}
}

// Kind implements Record.
func (IncomeEntry) Kind() Kind { return Income }

// Base implements Record.
func (i IncomeEntry) Base() Item { return i.Item }

// Ref implements Record.
func (i IncomeEntry) Ref() string { return FormatRef(Income, i.ID) }

// Kind implements Record.
func (ExpenseEntry) Kind() Kind { return Expense }

// Base implements Record.
func (e ExpenseEntry) Base() Item { return e.Item }

// Ref implements Record.
func (e ExpenseEntry) Ref() string { return FormatRef(Expense, e.ID) }

// CalcPercentage refreshes the cached share of totalIncome.
func (e *ExpenseEntry) CalcPercentage(totalIncome float64) {
	e.Percentage = PercentOf(e.Value, totalIncome)
}

// ErrInvalidRef is returned by ParseRef for strings not shaped like "exp-3".
var ErrInvalidRef = errors.New("invalid item reference")

// FormatRef renders the "<kind>-<id>" handle used to address a record.
func FormatRef(k Kind, id int) string {
	return fmt.Sprintf("%s-%d", k, id)
}

// ParseRef splits a "<kind>-<id>" handle into its kind and id.
func ParseRef(ref string) (Kind, int, error) {
	kindPart, idPart, ok := strings.Cut(strings.TrimSpace(ref), "-")
	if !ok || kindPart == "" || idPart == "" {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	kind, err := ParseKind(kindPart)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", err, ref)
	}
	id, err := strconv.Atoi(idPart)
	if err != nil || id < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return kind, id, nil
}
