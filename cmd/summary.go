package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/budgy/internal/cli"
	"github.com/theirongolddev/budgy/internal/ledger"
	"github.com/theirongolddev/budgy/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagIncomes  []string
	flagExpenses []string
	flagDeletes  []string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a one-shot budget summary",
	Long: `Build a ledger from the given entries and print the items and the budget.

  budgy summary --income "Salary=1000" --expense "Rent=300" --expense "Food=13"

Deletes (--delete exp-0) are applied after all adds.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringArrayVarP(&flagIncomes, "income", "i", nil, `Income entry "Description=Amount" (repeatable)`)
	summaryCmd.Flags().StringArrayVarP(&flagExpenses, "expense", "e", nil, `Expense entry "Description=Amount" (repeatable)`)
	summaryCmd.Flags().StringArrayVarP(&flagDeletes, "delete", "d", nil, "Item ref to delete, e.g. exp-0 (repeatable)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l, err := buildLedger(flagIncomes, flagExpenses, flagDeletes)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET  " + cli.FormatMonth(time.Now())))
	fmt.Println()

	if l.Len(model.Income)+l.Len(model.Expense) == 0 {
		fmt.Println("  No entries. Add some with --income and --expense.")
		fmt.Println()
	} else {
		fmt.Print(cli.RenderTable(itemTable(l)))
		fmt.Println()
	}

	fmt.Print(cli.RenderBudget(cli.FormatMonth(time.Now()), l.Budget()))
	return nil
}

// buildLedger adds every income and expense pair, deletes the given refs and
// runs the recompute pass.
func buildLedger(incomes, expenses, deletes []string) (*ledger.Ledger, error) {
	l := ledger.New()

	add := func(kind model.Kind, pairs []string) error {
		for _, p := range pairs {
			e, err := cli.ParseEntry(kind, p)
			if err != nil {
				return err
			}
			if _, err := l.Add(e.Kind, e.Description, e.Value); err != nil {
				return fmt.Errorf("adding %q: %w", p, err)
			}
		}
		return nil
	}
	if err := add(model.Income, incomes); err != nil {
		return nil, err
	}
	if err := add(model.Expense, expenses); err != nil {
		return nil, err
	}

	var errs []error
	for _, ref := range deletes {
		kind, id, err := model.ParseRef(ref)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := l.Delete(kind, id); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	l.Recompute()
	return l, nil
}

// itemTable lists incomes, then expenses with their share of total income.
func itemTable(l *ledger.Ledger) cli.Table {
	var rows [][]string
	for _, in := range l.Incomes() {
		rows = append(rows, []string{in.Ref(), in.Description, cli.FormatValue(in.Value, model.Income), ""})
	}

	expenses := l.Expenses()
	if len(rows) > 0 && len(expenses) > 0 {
		rows = append(rows, []string{"---"})
	}
	for _, e := range expenses {
		rows = append(rows, []string{e.Ref(), e.Description, cli.FormatValue(e.Value, model.Expense), cli.FormatPercent(e.Percentage)})
	}

	return cli.Table{
		Headers: []string{"Ref", "Description", "Value", "%"},
		Rows:    rows,
	}
}
