package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthTotal aggregates the expenses of one month.
type MonthTotal struct {
	Month time.Month
	Count int
	Total decimal.Decimal
}

// YearlyReport aggregates the expenses of one calendar year, month by month.
type YearlyReport struct {
	Year    int
	Months  [12]MonthTotal // January first
	Count   int
	Total   decimal.Decimal
	Largest *Expense // nil when the year has no expense
	Skipped int      // expenses whose date does not parse
}

// NewYearlyReport computes the report of the given year.
// Month totals agree with Ledger.MonthTotal.
func NewYearlyReport(l *Ledger, year int) *YearlyReport {
	r := &YearlyReport{Year: year, Total: decimal.Zero}
	for i := range r.Months {
		r.Months[i] = MonthTotal{Month: time.Month(i + 1), Total: decimal.Zero}
	}

	for _, e := range l.expenses {
		day, err := e.Day()
		if err != nil {
			r.Skipped++
			continue
		}
		if day.Year() != year {
			continue
		}
		m := &r.Months[day.Month()-1]
		m.Count++
		m.Total = m.Total.Add(e.Amount)
		r.Count++
		r.Total = r.Total.Add(e.Amount)
		if r.Largest == nil || e.Amount.GreaterThan(r.Largest.Amount) {
			largest := e
			r.Largest = &largest
		}
	}
	return r
}
