package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the store" }
func (*queryCmd) Usage() string {
	return `et query -path <jsonpath>

  Evaluates a JSONPath expression against the store document, a JSON array
  of {id, date, description, amount} objects, and prints the result as JSON.

Usage Examples:
$ et query -path '$[*].description'
$ et query -path '$[?(@.amount > 100)].id'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "JSONPath expression (required)")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.path == "" {
		fmt.Println("Error: -path is required.")
		return subcommands.ExitUsageError
	}

	_, ledger, ok := DecodeLedger()
	if !ok {
		return subcommands.ExitFailure
	}

	v, err := expense.Query(ledger, c.path)
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		printError(err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(data))
	return subcommands.ExitSuccess
}
