package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an expense" }
func (*deleteCmd) Usage() string {
	return `et delete -id <id>

  Deletes the expense with the given id. The store is left untouched if
  there is no such expense.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "ID of the expense to delete (required)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !visited(f)["id"] {
		fmt.Println("Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store, ledger, ok := DecodeLedger()
	if !ok {
		return subcommands.ExitFailure
	}

	if err := ledger.Delete(c.id); err != nil {
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
	fmt.Println("Expense deleted successfully")
	return subcommands.ExitSuccess
}
