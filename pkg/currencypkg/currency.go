// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/pkg/moneypkg"
)

// ErrUnknownCurrency indicates that a currency code is not in the rate table.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Constants for all supported currencies.
const (
	EUR = "EUR"
	USD = "USD"
	GBP = "GBP"
	JPY = "JPY"
	AUD = "AUD"
)

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	EUR,
	USD,
	GBP,
	JPY,
	AUD,
}

// IsSupportedCurrency returns true if the currency is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

// Table maps currency codes to their exchange rate relative to the pivot
// currency (EUR). A Table is built once at startup and never mutated
// afterwards; administrative rate updates replace the whole table.
type Table map[string]decimal.Decimal

// DefaultTable returns the rate table the system ships with.
func DefaultTable() Table {
	return Table{
		EUR: decimal.NewFromInt(1),
		USD: decimal.RequireFromString("1.1"),
		GBP: decimal.RequireFromString("0.85"),
		JPY: decimal.NewFromInt(130),
		AUD: decimal.RequireFromString("1.6"),
	}
}

// Converter converts monetary amounts between currencies using an injected
// immutable rate table.
type Converter struct {
	rates Table
}

// NewConverter returns a Converter backed by the given table.
func NewConverter(rates Table) Converter {
	return Converter{rates: rates}
}

// Convert converts amount from one currency to another through the pivot,
// rounding once at the conversion boundary. Converting a currency to itself
// returns the amount unchanged.
func (c Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		if _, ok := c.rates[from]; !ok {
			return decimal.Decimal{}, ErrUnknownCurrency
		}

		return amount, nil
	}

	fromRate, ok := c.rates[from]
	if !ok {
		return decimal.Decimal{}, ErrUnknownCurrency
	}

	toRate, ok := c.rates[to]
	if !ok {
		return decimal.Decimal{}, ErrUnknownCurrency
	}

	return moneypkg.Round(amount.Div(fromRate).Mul(toRate)), nil
}
