package ledger

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/budgy/internal/model"
)

func mustAdd(t *testing.T, l *Ledger, kind model.Kind, desc string, value float64) model.Record {
	t.Helper()
	r, err := l.Add(kind, desc, value)
	require.NoError(t, err)
	return r
}

func TestNewLedgerIsEmpty(t *testing.T) {
	l := New()
	assert.Equal(t, model.EmptyBudget(), l.Budget())
	assert.Empty(t, l.Percentages())
	assert.Zero(t, l.Len(model.Income))
	assert.Zero(t, l.Len(model.Expense))
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	l := New()
	for n := 0; n < 5; n++ {
		r := mustAdd(t, l, model.Expense, "item", 1)
		assert.Equal(t, n, r.Base().ID)
	}
}

func TestIDsAreIndependentPerKind(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Income, "Salary", 1000)
	mustAdd(t, l, model.Income, "Bonus", 200)

	r := mustAdd(t, l, model.Expense, "Rent", 300)
	assert.Equal(t, 0, r.Base().ID)

	r = mustAdd(t, l, model.Income, "Gift", 50)
	assert.Equal(t, 2, r.Base().ID)
}

func TestDeleteNeverReclaimsIDs(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Expense, "a", 1)
	mustAdd(t, l, model.Expense, "b", 1)
	require.NoError(t, l.Delete(model.Expense, 0))

	r := mustAdd(t, l, model.Expense, "c", 1)
	assert.Equal(t, 2, r.Base().ID)
}

func TestIDFollowsLastElementAfterTailDelete(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Expense, "a", 1)
	mustAdd(t, l, model.Expense, "b", 1)
	mustAdd(t, l, model.Expense, "c", 1)
	require.NoError(t, l.Delete(model.Expense, 2))

	// next id is derived from the current last element
	r := mustAdd(t, l, model.Expense, "d", 1)
	assert.Equal(t, 2, r.Base().ID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Expense, "Rent", 300)
	mustAdd(t, l, model.Expense, "Food", 100)

	require.NoError(t, l.Delete(model.Expense, 0))
	before := l.Expenses()
	require.NoError(t, l.Delete(model.Expense, 0))
	assert.Equal(t, before, l.Expenses())
	require.Len(t, before, 1)
	assert.Equal(t, "Food", before[0].Description)
}

func TestDeletePreservesOrder(t *testing.T) {
	l := New()
	for _, d := range []string{"a", "b", "c", "d"} {
		mustAdd(t, l, model.Income, d, 1)
	}
	require.NoError(t, l.Delete(model.Income, 1))

	var got []string
	for _, in := range l.Incomes() {
		got = append(got, in.Description)
	}
	assert.Equal(t, []string{"a", "c", "d"}, got)
}

func TestInvalidKindIsRejected(t *testing.T) {
	l := New()
	_, err := l.Add(model.Kind("sav"), "x", 1)
	assert.ErrorIs(t, err, model.ErrInvalidKind)
	assert.ErrorIs(t, l.Delete(model.Kind(""), 0), model.ErrInvalidKind)
	assert.Zero(t, l.Len(model.Income)+l.Len(model.Expense))
}

func TestAddValidation(t *testing.T) {
	l := New()
	cases := []struct {
		desc  string
		value float64
		err   error
	}{
		{"", 10, ErrEmptyDescription},
		{"   ", 10, ErrEmptyDescription},
		{"x", 0, ErrInvalidValue},
		{"x", -5, ErrInvalidValue},
		{"x", math.NaN(), ErrInvalidValue},
		{"x", math.Inf(1), ErrInvalidValue},
	}
	for _, tc := range cases {
		_, err := l.Add(model.Income, tc.desc, tc.value)
		assert.ErrorIs(t, err, tc.err, "desc=%q value=%v", tc.desc, tc.value)
	}
	assert.Zero(t, l.Len(model.Income))

	// rejected adds do not consume ids
	r := mustAdd(t, l, model.Income, "ok", 1)
	assert.Equal(t, 0, r.Base().ID)
}

func TestAggregatesStayStaleUntilRecompute(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Income, "Salary", 1000)
	assert.Equal(t, model.EmptyBudget(), l.Budget())

	l.CalculateBudget()
	assert.Equal(t, 1000.0, l.Budget().TotalIncome)

	mustAdd(t, l, model.Expense, "Rent", 300)
	assert.Zero(t, l.Budget().TotalExpense)
	assert.Equal(t, []model.Percent{model.Undefined}, l.Percentages())
}

func TestTotalsAndBudgetIdentity(t *testing.T) {
	l := New()
	incomes := []float64{1000, 250.5, 49.5}
	expenses := []float64{300, 12.25, 0.75}
	for _, v := range incomes {
		mustAdd(t, l, model.Income, "in", v)
	}
	for _, v := range expenses {
		mustAdd(t, l, model.Expense, "out", v)
	}
	l.CalculateBudget()

	b := l.Budget()
	assert.Equal(t, 1300.0, b.TotalIncome)
	assert.Equal(t, 313.0, b.TotalExpense)
	assert.Equal(t, b.TotalIncome-b.TotalExpense, b.Budget)
	assert.Equal(t, model.Percent(24), b.Percentage)
}

func TestPercentageSentinelWithoutIncome(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Expense, "Misc", 50)
	mustAdd(t, l, model.Expense, "More", 20)
	l.Recompute()

	b := l.Budget()
	assert.Zero(t, b.TotalIncome)
	assert.Equal(t, model.Undefined, b.Percentage)
	assert.Equal(t, []model.Percent{model.Undefined, model.Undefined}, l.Percentages())
}

func TestCalculatePercentagesUsesCachedIncome(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Income, "Salary", 1000)
	mustAdd(t, l, model.Expense, "Rent", 300)

	// totals are still zero, so every share is undefined
	l.CalculatePercentages()
	assert.Equal(t, []model.Percent{model.Undefined}, l.Percentages())

	l.CalculateBudget()
	l.CalculatePercentages()
	assert.Equal(t, []model.Percent{30}, l.Percentages())
}

func TestAddDeleteRoundTrip(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Income, "Salary", 1000)
	mustAdd(t, l, model.Expense, "Rent", 300)
	l.Recompute()
	before := l.Budget()

	r := mustAdd(t, l, model.Expense, "Car", 4000)
	require.NoError(t, l.Delete(r.Kind(), r.Base().ID))
	l.Recompute()
	assert.Equal(t, before, l.Budget())
}

func TestScenarioIncomeOnly(t *testing.T) {
	l := New()
	r := mustAdd(t, l, model.Income, "Salary", 1000)
	assert.Equal(t, 0, r.Base().ID)

	l.CalculateBudget()
	b := l.Budget()
	assert.Equal(t, 1000.0, b.TotalIncome)
	assert.Equal(t, 1000.0, b.Budget)
	// 0% spent is a defined value, not the sentinel
	assert.Equal(t, model.Percent(0), b.Percentage)
	assert.True(t, b.Percentage.Defined())
}

func TestScenarioExpensesAndDelete(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Income, "Salary", 1000)
	rent := mustAdd(t, l, model.Expense, "Rent", 300)
	food := mustAdd(t, l, model.Expense, "Food", 100)
	assert.Equal(t, 0, rent.Base().ID)
	assert.Equal(t, 1, food.Base().ID)

	l.CalculateBudget()
	l.CalculatePercentages()
	b := l.Budget()
	assert.Equal(t, 400.0, b.TotalExpense)
	assert.Equal(t, 600.0, b.Budget)
	assert.Equal(t, []model.Percent{30, 10}, l.Percentages())

	require.NoError(t, l.Delete(model.Expense, 0))
	l.CalculateBudget()
	l.CalculatePercentages()
	b = l.Budget()
	assert.Equal(t, 100.0, b.TotalExpense)
	assert.Equal(t, 900.0, b.Budget)
	assert.Equal(t, []model.Percent{10}, l.Percentages())

	got, ok := l.Find(model.Expense, 1)
	require.True(t, ok)
	assert.Equal(t, model.Percent(10), got.(model.ExpenseEntry).Percentage)
}

func TestScenarioExpenseWithoutIncome(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Expense, "Misc", 50)
	l.CalculateBudget()
	assert.Equal(t, model.Undefined, l.Budget().Percentage)

	l.CalculatePercentages()
	got, ok := l.Find(model.Expense, 0)
	require.True(t, ok)
	assert.Equal(t, model.Undefined, got.(model.ExpenseEntry).Percentage)
}

func TestScenarioDeleteUnknownIncome(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Income, "Salary", 1000)
	l.Recompute()
	before := l.Budget()

	require.NoError(t, l.Delete(model.Income, 999))
	l.Recompute()
	assert.Equal(t, before, l.Budget())
	assert.Equal(t, 1, l.Len(model.Income))
}

func TestReadsReturnCopies(t *testing.T) {
	l := New()
	mustAdd(t, l, model.Expense, "Rent", 300)

	exps := l.Expenses()
	exps[0].Description = "changed"
	assert.Equal(t, "Rent", l.Expenses()[0].Description)

	_, ok := l.Find(model.Expense, 7)
	assert.False(t, ok)
}

func TestConcurrentAddsKeepIDsUnique(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.Add(model.Expense, "x", 1)
			l.Recompute()
		}()
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, e := range l.Expenses() {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
	l.Recompute()
	assert.Equal(t, 50.0, l.Budget().TotalExpense)
}
