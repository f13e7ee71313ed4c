package model

// Budget is a snapshot of the ledger aggregates as of the last recompute pass.
type Budget struct {
	Budget       float64
	TotalIncome  float64
	TotalExpense float64
	Percentage   Percent
}

// EmptyBudget is the state of a ledger before anything has been recomputed.
func EmptyBudget() Budget {
	return Budget{Percentage: Undefined}
}

// SpentFraction returns Percentage as a 0-1 fraction clamped to [0, 1], or 0
// when the percentage is undefined.
func (b Budget) SpentFraction() float64 {
	if !b.Percentage.Defined() {
		return 0
	}
	f := float64(b.Percentage) / 100
	if f > 1 {
		f = 1
	}
	return f
}
