// Package moneypkg provides fixed-point money helpers shared by all ledger code.
package moneypkg

import "github.com/shopspring/decimal"

// Places is the number of fractional digits every persisted monetary value carries.
const Places = 2

// Round rounds a monetary value to the persisted precision.
// Balances, rates and converted amounts pass through here before any write.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}
