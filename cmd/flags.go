package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// decimalFlag is a flag.Value holding an exact decimal amount.
type decimalFlag struct {
	value decimal.Decimal
	set   bool
}

func (d *decimalFlag) String() string {
	if d == nil || !d.set {
		return ""
	}
	return d.value.String()
}

func (d *decimalFlag) Set(s string) error {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q", s)
	}
	d.value, d.set = v, true
	return nil
}
