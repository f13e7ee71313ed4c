// Package ledger holds the in-memory income/expense store and its derived
// budget metrics.
//
// Aggregates are maintained explicitly: Add and Delete only touch the item
// collections, and Budget and Percentages keep returning the values from the
// last CalculateBudget / CalculatePercentages pass until those are run again.
// Callers mutate, then call Recompute (or the two Calculate methods in order),
// then read.
package ledger

import (
	"errors"
	"math"
	"strings"
	"sync"

	"github.com/theirongolddev/budgy/internal/model"
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidValue     = errors.New("invalid value")
)

// Ledger is a single budget: two ordered item collections plus the aggregates
// derived from them. The zero value is not usable; call New.
type Ledger struct {
	mu sync.Mutex

	incomes  []model.IncomeEntry
	expenses []model.ExpenseEntry

	totalIncome  float64
	totalExpense float64
	budget       float64
	percentage   model.Percent
}

// New returns an empty ledger with zeroed totals.
func New() *Ledger {
	return &Ledger{percentage: model.Undefined}
}

// Add appends a new record of the given kind and returns it. The id is one past
// the id of the last record of that kind, or 0 when the collection is empty.
// Aggregates are not recomputed. On error the ledger is left unchanged.
func (l *Ledger) Add(kind model.Kind, description string, value float64) (model.Record, error) {
	if !kind.Valid() {
		return nil, model.ErrInvalidKind
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return nil, ErrInvalidValue
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	switch kind {
	case model.Income:
		id := 0
		if n := len(l.incomes); n > 0 {
			id = l.incomes[n-1].ID + 1
		}
		item := model.NewIncome(id, description, value)
		l.incomes = append(l.incomes, item)
		return item, nil
	default:
		id := 0
		if n := len(l.expenses); n > 0 {
			id = l.expenses[n-1].ID + 1
		}
		item := model.NewExpense(id, description, value)
		l.expenses = append(l.expenses, item)
		return item, nil
	}
}

// Delete removes the record with the given id from kind's collection,
// preserving the order of the rest. Unknown ids are ignored.
func (l *Ledger) Delete(kind model.Kind, id int) error {
	if !kind.Valid() {
		return model.ErrInvalidKind
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if kind == model.Income {
		if idx := indexOf(l.incomes, id); idx >= 0 {
			l.incomes = append(l.incomes[:idx], l.incomes[idx+1:]...)
		}
		return nil
	}
	if idx := indexOf(l.expenses, id); idx >= 0 {
		l.expenses = append(l.expenses[:idx], l.expenses[idx+1:]...)
	}
	return nil
}

// CalculateBudget refreshes both totals, the budget and the overall percentage
// from the current collections.
func (l *Ledger) CalculateBudget() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calculateBudget()
}

// CalculatePercentages refreshes every expense's share of total income, using
// the totals from the last CalculateBudget.
func (l *Ledger) CalculatePercentages() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calculatePercentages()
}

// Recompute runs CalculateBudget then CalculatePercentages as one step.
func (l *Ledger) Recompute() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calculateBudget()
	l.calculatePercentages()
}

func (l *Ledger) calculateBudget() {
	l.totalIncome = sumValues(l.incomes)
	l.totalExpense = sumValues(l.expenses)
	l.budget = l.totalIncome - l.totalExpense
	l.percentage = model.PercentOf(l.totalExpense, l.totalIncome)
}

func (l *Ledger) calculatePercentages() {
	for i := range l.expenses {
		l.expenses[i].CalcPercentage(l.totalIncome)
	}
}

// Budget returns the aggregates as of the last recompute pass.
func (l *Ledger) Budget() model.Budget {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.Budget{
		Budget:       l.budget,
		TotalIncome:  l.totalIncome,
		TotalExpense: l.totalExpense,
		Percentage:   l.percentage,
	}
}

// Percentages returns each expense's cached percentage in expense order.
func (l *Ledger) Percentages() []model.Percent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Percent, len(l.expenses))
	for i, e := range l.expenses {
		out[i] = e.Percentage
	}
	return out
}

// Incomes returns a copy of the income collection in insertion order.
func (l *Ledger) Incomes() []model.IncomeEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.IncomeEntry, len(l.incomes))
	copy(out, l.incomes)
	return out
}

// Expenses returns a copy of the expense collection in insertion order.
func (l *Ledger) Expenses() []model.ExpenseEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.ExpenseEntry, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Len returns the number of records of the given kind. Invalid kinds have none.
func (l *Ledger) Len(kind model.Kind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch kind {
	case model.Income:
		return len(l.incomes)
	case model.Expense:
		return len(l.expenses)
	}
	return 0
}

// Find looks up a record by kind and id.
func (l *Ledger) Find(kind model.Kind, id int) (model.Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch kind {
	case model.Income:
		if idx := indexOf(l.incomes, id); idx >= 0 {
			return l.incomes[idx], true
		}
	case model.Expense:
		if idx := indexOf(l.expenses, id); idx >= 0 {
			return l.expenses[idx], true
		}
	}
	return nil, false
}

type record interface {
	model.IncomeEntry | model.ExpenseEntry
	Base() model.Item
}

func indexOf[T record](items []T, id int) int {
	for i, it := range items {
		if it.Base().ID == id {
			return i
		}
	}
	return -1
}

func sumValues[T record](items []T) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Base().Value
	}
	return sum
}
