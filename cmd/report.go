package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	year int
	raw  bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a month by month report of a year" }
func (*reportCmd) Usage() string {
	return `et report [-year <yyyy>] [-raw]

  Displays, for each month of the year, the number of expenses and their
  total, followed by the yearly total and the largest expense.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", today().Year(), "Year of the report")
	f.BoolVar(&c.raw, "raw", false, "Print the raw markdown instead of rendering it")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := Currency()
	if err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}

	_, ledger, ok := DecodeLedger()
	if !ok {
		return subcommands.ExitFailure
	}

	md := renderer.RenderYearly(expense.NewYearlyReport(ledger, c.year), cur)
	if c.raw {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
