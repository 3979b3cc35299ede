// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/pkg/moneypkg"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountOwnerMismatch indicates that the requester does not own the account.
	ErrAccountOwnerMismatch = errors.New("account does not belong to the requester")
	// ErrInvalidAccountType indicates an unsupported account type.
	ErrInvalidAccountType = errors.New("account type must be SAVINGS or CURRENT")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates non-positive amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrDailyLimitExceeded indicates that the operation would exceed the
	// account's cumulative same-day outbound limit.
	ErrDailyLimitExceeded = errors.New("daily transaction limit exceeded")
	// ErrNonZeroBalance blocks deletion of an account still holding money.
	ErrNonZeroBalance = errors.New("cannot delete account with non-zero balance")
	// ErrPendingTransactions blocks deletion of an account referenced by
	// pending transactions.
	ErrPendingTransactions = errors.New("cannot delete account with pending transactions")
)

// AccountType discriminates savings accounts from current accounts.
type AccountType string

// Supported account types.
const (
	AccountSavings AccountType = "SAVINGS"
	AccountCurrent AccountType = "CURRENT"
)

// Account holds a user's balance for a specific currency.
//
// Balance carries exactly two fractional digits at every persistence
// boundary and never goes negative. AverageDailyBalance is maintained on
// interest application but does not drive interest computation.
type Account struct {
	ID                    string          `json:"id"`
	Owner                 string          `json:"owner"`
	Type                  AccountType     `json:"type"`
	Currency              string          `json:"currency"`
	Balance               decimal.Decimal `json:"balance"`
	AverageDailyBalance   decimal.Decimal `json:"average_daily_balance"`
	AnnualInterestRate    decimal.Decimal `json:"annual_interest_rate"`
	DailyTransactionLimit decimal.Decimal `json:"daily_transaction_limit"`
	LastInterestAt        time.Time       `json:"last_interest_calculation_date"`
	CreatedAt             time.Time       `json:"created_at"`
}

// CreateAccountParams is the input data for opening an account.
type CreateAccountParams struct {
	Owner                 string          `json:"owner"`
	Type                  AccountType     `json:"type"`
	Currency              string          `json:"currency"`
	InitialBalance        decimal.Decimal `json:"initial_balance"`
	AnnualInterestRate    decimal.Decimal `json:"annual_interest_rate"`
	DailyTransactionLimit decimal.Decimal `json:"daily_transaction_limit"`
}

// MonthlyInterest returns one month of interest on the current balance:
// balance × annualRate/1200, rounded to two digits.
func (a Account) MonthlyInterest() decimal.Decimal {
	return moneypkg.Round(a.Balance.Mul(a.AnnualInterestRate).Div(decimal.NewFromInt(1200)))
}
