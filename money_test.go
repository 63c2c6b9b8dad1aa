package expense

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		amount string
		want   string
	}{
		{"20", "$20"},
		{"20.0", "$20"},
		{"12.5", "$12.50"},
		{"15.99", "$15.99"},
		{"0", "$0"},
		{"1234", "$1234"},
		{"1234.5", "$1234.50"},
		{"0.001", "$0.00"},
		{"2.345", "$2.35"},
	}
	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatAmount(dec(tc.amount)))
		})
	}
}

func TestLookupCurrency(t *testing.T) {
	usd, err := LookupCurrency("usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Code())
	assert.Equal(t, "$3", usd.Format(dec("3")))

	eur, err := LookupCurrency("EUR")
	require.NoError(t, err)
	got := eur.Format(dec("12.5"))
	assert.True(t, strings.Contains(got, "€") && strings.Contains(got, "12.50"), "EUR format %q", got)

	brl, err := LookupCurrency("BRL")
	require.NoError(t, err)
	assert.Equal(t, "R$12,50", brl.Format(dec("12.5")))
	assert.Equal(t, "R$20", brl.Format(dec("20")))

	_, err = LookupCurrency("XXXX")
	assert.Error(t, err)
}
