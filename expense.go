package expense

import (
	"fmt"
	"slices"
	"time"

	"github.com/etnz/expense/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a single dated expense.
//
// Date is kept as the stored string: it is only validated when explicitly
// set by an update, so a store may contain dates that do not parse.
type Expense struct {
	ID          int             `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Day returns the parsed date of the expense.
func (e Expense) Day() (date.Date, error) { return date.Parse(e.Date) }

// Patch holds the optional fields of an update. A nil field is left untouched.
type Patch struct {
	Description *string
	Amount      *decimal.Decimal
	Date        *string
}

// Ledger represents the ordered list of expenses of a store.
//
// Order is insertion order: Add appends, Update patches in place and Delete
// compacts.
type Ledger struct {
	expenses []Expense
}

// NewLedger creates a ledger holding expenses in the given order.
func NewLedger(expenses ...Expense) *Ledger {
	return &Ledger{expenses: slices.Clone(expenses)}
}

// Len returns the number of expenses in the ledger.
func (l *Ledger) Len() int { return len(l.expenses) }

// Expenses returns a copy of the expenses in ledger order.
func (l *Ledger) Expenses() []Expense { return slices.Clone(l.expenses) }

// Get returns the first expense with the given id.
func (l *Ledger) Get(id int) (Expense, bool) {
	i := slices.IndexFunc(l.expenses, func(e Expense) bool { return e.ID == id })
	if i < 0 {
		return Expense{}, false
	}
	return l.expenses[i], true
}

// NextID returns the id to assign to a new expense: 1 for an empty list, the
// highest id plus one otherwise.
func NextID(expenses []Expense) int {
	next := 1
	for _, e := range expenses {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}

// NextID returns the id the next added expense will get.
func (l *Ledger) NextID() int { return NextID(l.expenses) }

// ValidateAmount returns ErrInvalidAmount unless amount is strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	return nil
}

// ValidateDate returns ErrInvalidDate unless s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := date.Parse(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return nil
}

// Add appends a new expense dated 'on' and returns it with its assigned id.
// The ledger is left unchanged if amount is not positive.
func (l *Ledger) Add(on date.Date, description string, amount decimal.Decimal) (Expense, error) {
	if err := ValidateAmount(amount); err != nil {
		return Expense{}, err
	}
	e := Expense{
		ID:          l.NextID(),
		Date:        on.String(),
		Description: description,
		Amount:      amount,
	}
	l.expenses = append(l.expenses, e)
	return e, nil
}

// Delete removes the expense with the given id, or returns ErrNotFound.
func (l *Ledger) Delete(id int) error {
	n := len(l.expenses)
	l.expenses = slices.DeleteFunc(l.expenses, func(e Expense) bool { return e.ID == id })
	if len(l.expenses) == n {
		return fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	return nil
}

// Update applies p to every expense with the given id.
//
// Fields are validated in order description, amount, date. The first
// failure is returned and nothing is changed. ErrNotFound is returned when no
// expense has the id.
func (l *Ledger) Update(id int, p Patch) error {
	if _, found := l.Get(id); !found {
		return fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	if p.Amount != nil {
		if err := ValidateAmount(*p.Amount); err != nil {
			return err
		}
	}
	if p.Date != nil {
		if err := ValidateDate(*p.Date); err != nil {
			return err
		}
	}

	// ids are unique when the store is only written by this package, but
	// every match is patched if a hand-edited store holds duplicates.
	for i := range l.expenses {
		e := &l.expenses[i]
		if e.ID != id {
			continue
		}
		if p.Description != nil {
			e.Description = *p.Description
		}
		if p.Amount != nil {
			e.Amount = *p.Amount
		}
		if p.Date != nil {
			e.Date = *p.Date
		}
	}
	return nil
}

// Total returns the sum of all amounts.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// MonthTotal returns the sum of the amounts dated in the given month of the
// given year. Expenses whose date does not parse are skipped.
func (l *Ledger) MonthTotal(year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		day, err := e.Day()
		if err != nil {
			continue
		}
		if day.In(year, month) {
			total = total.Add(e.Amount)
		}
	}
	return total
}
