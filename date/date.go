package date

import (
	"fmt"
	"time"
)

// Format is the ISO-8601 layout dates are written and read with.
// Month and day must be zero padded.
const Format = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in the local time zone.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// In reports whether d falls in the given month of the given year.
func (d Date) In(year int, month time.Month) bool { return d.y == year && d.m == month }

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from a string in the YYYY-MM-DD format.
//
// Parsing is strict: a four digit year, a two digit month in 01-12 and a two
// digit day that exists in that month.
func Parse(str string) (Date, error) {
	on, err := time.Parse(Format, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format YYYY-MM-DD: %w", str, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MonthName returns the full English name of month m, or an error if m is not in 1-12.
func MonthName(m int) (string, error) {
	if m < 1 || m > 12 {
		return "", fmt.Errorf("month %d out of range 1-12", m)
	}
	return time.Month(m).String(), nil
}
