package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyRate is an exchange multiplier for a named currency, sourced from the market per request.
type CurrencyRate struct {
	CurrencyName string          `json:"currencyName"`
	Rate         decimal.Decimal `json:"rate"`
}

// Matches reports whether the rate is for the given currency, ignoring case.
func (r CurrencyRate) Matches(currency string) bool {
	return strings.EqualFold(r.CurrencyName, currency)
}

// Convert applies the rate to an amount.
func (r CurrencyRate) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.Rate)
}
