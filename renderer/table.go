package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/expense"
)

// Column widths of the expense table.
const (
	idWidth          = 4
	dateWidth        = 10
	descriptionWidth = 20
	amountWidth      = 10
)

// ExpenseTable writes expenses as a fixed-width, left-aligned table with an
// ID, Date, Description and Amount column. Descriptions longer than the
// column are cut. Nothing is written for an empty list.
func ExpenseTable(w io.Writer, expenses []expense.Expense, cur expense.Currency) {
	row := func(id, day, description, amount string) {
		fmt.Fprintf(w, "%-*s %-*s %-*s %-*s\n",
			idWidth, id,
			dateWidth, day,
			descriptionWidth, description,
			amountWidth, amount)
	}

	section := Header(func(io.Writer) { row("ID", "Date", "Description", "Amount") })
	for _, e := range expenses {
		section.PrintHeader(w)
		row(fmt.Sprint(e.ID), e.Date, Truncate(e.Description, descriptionWidth), cur.Format(e.Amount))
	}
}
