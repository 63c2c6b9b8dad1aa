package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id          int
	description string
	amount      decimalFlag
	date        string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update an existing expense" }
func (*updateCmd) Usage() string {
	return `et update -id <id> [-description <text>] [-amount <decimal>] [-date <YYYY-MM-DD>]

  Updates the given fields of an expense. Fields are checked in order
  description, amount, date; if any is invalid nothing is saved.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the expense to update (required)")
	f.StringVar(&c.description, "description", "", "New description")
	f.Var(&c.amount, "amount", "New amount")
	f.StringVar(&c.date, "date", "", "New date (YYYY-MM-DD)")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := visited(f)
	if !set["id"] {
		fmt.Println("Error: -id is required.")
		return subcommands.ExitUsageError
	}

	var patch expense.Patch
	if set["description"] {
		patch.Description = &c.description
	}
	if set["amount"] {
		patch.Amount = &c.amount.value
	}
	if set["date"] {
		patch.Date = &c.date
	}

	store, ledger, ok := DecodeLedger()
	if !ok {
		return subcommands.ExitFailure
	}

	if err := ledger.Update(c.id, patch); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			fmt.Printf("Error: Expense with ID %d not found.\n", c.id)
		} else {
			printError(err)
		}
		return subcommands.ExitFailure
	}

	if !EncodeLedger(store, ledger) {
		return subcommands.ExitFailure
	}
	fmt.Println("Expense updated successfully")
	return subcommands.ExitSuccess
}
