package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

// exportFile writes the export, tests replace it.
var exportFile = expense.ExportFile

type exportCmd struct {
	filename string
	format   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export expenses to a CSV file" }
func (*exportCmd) Usage() string {
	return `et export [-filename <file>] [-format csv|json|yaml]

  Writes all expenses to a file, with their raw stored values. The default
  is CSV with an id,date,description,amount header. No file is created when
  there is nothing to export.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filename, "filename", "expenses.csv", "Output filename")
	f.StringVar(&c.format, "format", string(expense.CSV), "Output format: csv, json or yaml")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := expense.ParseExportFormat(c.format)
	if err != nil {
		printError(err)
		return subcommands.ExitUsageError
	}

	_, ledger, ok := DecodeLedger()
	if !ok {
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Println("No expenses to export.")
		return subcommands.ExitSuccess
	}

	if err := exportFile(c.filename, ledger, format); err != nil {
		var xerr *expense.ExportError
		switch {
		case errors.Is(err, expense.ErrExportPermission):
			fmt.Printf("Error: Permission denied to write to %s\n", c.filename)
		case errors.As(err, &xerr):
			fmt.Printf("Error exporting expenses: %v\n", xerr.Err)
		default:
			fmt.Printf("Error exporting expenses: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully exported %d expenses to %s\n", ledger.Len(), c.filename)
	return subcommands.ExitSuccess
}
