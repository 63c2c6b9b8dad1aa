package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the total of expenses" }
func (*summaryCmd) Usage() string {
	return `et summary [-month <1-12>]

  Displays the total of all expenses, or with -month the total of that month
  of the current year. Expenses with an unreadable date are left out of a
  month total.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.month, "month", 0, "Filter by month (1-12) of the current year")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := Currency()
	if err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}

	_, ledger, ok := DecodeLedger()
	if !ok {
		return subcommands.ExitFailure
	}

	if !visited(f)["month"] {
		fmt.Printf("Total expenses: %s\n", cur.Format(ledger.Total()))
		return subcommands.ExitSuccess
	}

	name, err := date.MonthName(c.month)
	if err != nil {
		printError(expense.ErrInvalidMonth)
		return subcommands.ExitFailure
	}
	total := ledger.MonthTotal(today().Year(), time.Month(c.month))
	fmt.Printf("Total expenses for %s: %s\n", name, cur.Format(total))
	return subcommands.ExitSuccess
}
