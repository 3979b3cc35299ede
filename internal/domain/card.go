package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/pkg/moneypkg"
)

var (
	// ErrCardNotFound indicates that the card is not found.
	ErrCardNotFound = errors.New("card not found")
	// ErrCardOwnerMismatch indicates that the requester neither owns the
	// card nor holds an elevated role.
	ErrCardOwnerMismatch = errors.New("card does not belong to the requester")
	// ErrNotCreditCard indicates a credit-only operation on a debit card.
	ErrNotCreditCard = errors.New("operation is only valid for credit cards")
	// ErrCreditLimitExceeded indicates that a charge would push the balance
	// over the credit limit.
	ErrCreditLimitExceeded = errors.New("transaction would exceed credit limit")
	// ErrOverpaymentLimitExceeded indicates that a payment would push the
	// balance below the overpayment cap.
	ErrOverpaymentLimitExceeded = errors.New("payment exceeds the overpayment limit")
	// ErrOutstandingBalance blocks deletion of a credit card that still owes.
	ErrOutstandingBalance = errors.New("cannot delete credit card with outstanding balance")
	// ErrInvalidCardType indicates an unsupported card type.
	ErrInvalidCardType = errors.New("card type must be DEBIT or CREDIT")
	// ErrInvalidCreditLimit indicates a missing or non-positive credit limit.
	ErrInvalidCreditLimit = errors.New("credit card requires a positive credit limit")
	// ErrDebitRequiresCurrent indicates a debit card linked to a non-current account.
	ErrDebitRequiresCurrent = errors.New("debit cards can only be linked to current accounts")
)

// MaxOverpayment is how far below zero a credit card balance may go,
// representing prepaid credit.
var MaxOverpayment = decimal.NewFromInt(500)

// CardType discriminates debit cards from credit cards.
type CardType string

// Supported card types.
const (
	CardDebit  CardType = "DEBIT"
	CardCredit CardType = "CREDIT"
)

// CreditTerms holds the state a credit card carries on top of the common
// card fields. Debit cards have none: their money lives on the linked
// account.
type CreditTerms struct {
	Limit               decimal.Decimal `json:"credit_limit"`
	Balance             decimal.Decimal `json:"balance"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	LastInterestAt      time.Time       `json:"last_interest_calculation_date"`
}

// Card is issued against an existing account. Credit is nil exactly when
// the card is a debit card, so a debit card cannot carry a limit or a
// balance of its own.
type Card struct {
	ID             string       `json:"id"`
	Owner          string       `json:"owner"`
	AccountID      string       `json:"account_id"`
	Type           CardType     `json:"type"`
	Number         string       `json:"number"`
	ExpirationDate time.Time    `json:"expiration_date"`
	CVV            string       `json:"-"`
	Currency       string       `json:"currency"`
	CreatedAt      time.Time    `json:"created_at"`
	Credit         *CreditTerms `json:"credit,omitempty"`
}

// IsCredit reports whether the card carries credit terms.
func (c Card) IsCredit() bool {
	return c.Type == CardCredit && c.Credit != nil
}

// InterestAsOf returns the interest accrued since the last calculation:
// balance × (monthlyRate/30/100) × whole days elapsed, rounded to two
// digits. It returns zero for non-positive balances and for dates at or
// before the last calculation, so applying twice with the same date cannot
// double-charge.
func (ct CreditTerms) InterestAsOf(asOf time.Time) decimal.Decimal {
	if !ct.Balance.IsPositive() {
		return decimal.Zero
	}

	days := int64(asOf.Sub(ct.LastInterestAt).Hours() / 24)
	if days <= 0 {
		return decimal.Zero
	}

	// monthlyRate/30/100, assuming 30 days in a month
	dailyRate := ct.MonthlyInterestRate.Div(decimal.NewFromInt(3000))

	return moneypkg.Round(ct.Balance.Mul(dailyRate).Mul(decimal.NewFromInt(days)))
}

// ApplyInterest adds the accrued interest to the balance and advances the
// calculation date. It returns the applied interest. The calculation date
// never moves backwards: a call dated before the stored date accrues
// nothing and leaves the date alone, so already-billed days cannot be
// re-billed by a later forward-dated call.
func (ct *CreditTerms) ApplyInterest(asOf time.Time) decimal.Decimal {
	interest := ct.InterestAsOf(asOf)

	if interest.IsPositive() {
		ct.Balance = moneypkg.Round(ct.Balance.Add(interest))
	}

	if asOf.After(ct.LastInterestAt) {
		ct.LastInterestAt = asOf
	}

	return interest
}

// Charge increases the balance by amount, rejecting charges that would
// exceed the credit limit. The balance is unchanged on rejection.
func (ct *CreditTerms) Charge(amount decimal.Decimal) error {
	newBalance := moneypkg.Round(ct.Balance.Add(amount))
	if newBalance.GreaterThan(ct.Limit) {
		return ErrCreditLimitExceeded
	}

	ct.Balance = newBalance

	return nil
}

// Pay decreases the balance by amount. The balance may go negative down to
// -MaxOverpayment (prepaid credit); payments beyond that are rejected with
// no mutation.
func (ct *CreditTerms) Pay(amount decimal.Decimal) error {
	newBalance := moneypkg.Round(ct.Balance.Sub(amount))
	if newBalance.LessThan(MaxOverpayment.Neg()) {
		return ErrOverpaymentLimitExceeded
	}

	ct.Balance = newBalance

	return nil
}

// CreateCardParams is the input data for issuing a card.
type CreateCardParams struct {
	Owner               string          `json:"owner"`
	AccountID           string          `json:"account_id"`
	Type                CardType        `json:"type"`
	Currency            string          `json:"currency"`
	CreditLimit         decimal.Decimal `json:"credit_limit"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
}
