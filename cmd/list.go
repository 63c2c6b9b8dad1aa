package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all expenses in a table" }
func (*listCmd) Usage() string {
	return `et list

  Lists all expenses in store order. Descriptions are cut to 20 characters.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Println("no arguments expected")
		return subcommands.ExitUsageError
	}
	cur, err := Currency()
	if err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}

	_, ledger, ok := DecodeLedger()
	if !ok {
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Println("No expenses found.")
		return subcommands.ExitSuccess
	}

	renderer.ExpenseTable(os.Stdout, ledger.Expenses(), cur)
	return subcommands.ExitSuccess
}
