package domain

import "github.com/shopspring/decimal"

// SystemConfig is the singleton holding system-wide defaults for newly
// created accounts. Read-mostly; administrative updates replace single
// fields and are not linearized with ledger operations.
type SystemConfig struct {
	GlobalInterestRate    decimal.Decimal `json:"global_interest_rate"`
	DailyTransactionLimit decimal.Decimal `json:"daily_transaction_limit"`
}

// DefaultSystemConfig returns the configuration the system bootstraps with.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		GlobalInterestRate:    decimal.RequireFromString("0.05"),
		DailyTransactionLimit: decimal.NewFromInt(1000),
	}
}
