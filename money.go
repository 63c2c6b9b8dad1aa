package expense

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency amounts are displayed in when none is configured.
const DefaultCurrency = money.USD

// Currency displays amounts with the symbol and layout of an ISO 4217 currency.
type Currency struct {
	cur *money.Currency
}

// LookupCurrency returns the Currency for an ISO 4217 code such as "USD" or "EUR".
func LookupCurrency(code string) (Currency, error) {
	c := money.GetCurrency(strings.ToUpper(code))
	if c == nil {
		return Currency{}, fmt.Errorf("unknown currency %q", code)
	}
	return Currency{cur: c}, nil
}

// Code returns the ISO 4217 code of the currency.
func (c Currency) Code() string {
	if c.cur == nil {
		return DefaultCurrency
	}
	return c.cur.Code
}

// Format renders amount as money.
//
// A whole amount is rendered without decimals ("$20"), any other amount is
// rounded to exactly two decimals ("$12.50") with the decimal separator of the
// currency. No thousands separator is used, so totals stay readable by scripts.
func (c Currency) Format(amount decimal.Decimal) string {
	cur := c.cur
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}

	value := amount.StringFixed(2)
	if amount.IsInteger() {
		value = amount.StringFixed(0)
	}
	value = strings.Replace(value, ".", cur.Decimal, 1)

	// go-money templates use "1" for the value and "$" for the symbol.
	s := strings.Replace(cur.Template, "1", value, 1)
	return strings.Replace(s, "$", cur.Grapheme, 1)
}

// FormatAmount renders amount in the default currency.
func FormatAmount(amount decimal.Decimal) string {
	return Currency{}.Format(amount)
}
