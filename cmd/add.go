package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type addCmd struct {
	description string
	amount      decimalFlag
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new expense dated today" }
func (*addCmd) Usage() string {
	return `et add -description <text> -amount <decimal>

  Adds a new expense dated today and prints its id.
  - description: what the money was spent on (required).
  - amount: a strictly positive decimal amount, e.g. 12.50 (required).
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "Expense description (required)")
	f.Var(&c.amount, "amount", "Expense amount (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.description == "" || !c.amount.set {
		fmt.Println("Error: -description and -amount are required.")
		return subcommands.ExitUsageError
	}
	// checked before touching the store.
	if err := expense.ValidateAmount(c.amount.value); err != nil {
		printError(err)
		return subcommands.ExitFailure
	}

	store, ledger, ok := DecodeLedger()
	if !ok {
		return subcommands.ExitFailure
	}

	e, err := ledger.Add(today(), c.description, c.amount.value)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}

	if !EncodeLedger(store, ledger) {
		return subcommands.ExitFailure
	}
	fmt.Printf("Expense added successfully (ID: %d)\n", e.ID)
	return subcommands.ExitSuccess
}
