// Package statementservice builds monthly credit card statements.
package statementservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/currencypkg"
	"github.com/go-dana/core-bank/pkg/moneypkg"
)

// Cards provides the card reads statement generation needs.
//
//go:generate mockgen -source service.go -destination service_mock.go -package statementservice
type Cards interface {
	Get(ctx context.Context, id string) (domain.Card, error)
}

// Journal provides the date-range journal query for a card.
type Journal interface {
	ListByReference(ctx context.Context, refID string, from, to time.Time) ([]domain.Transaction, error)
}

// Ledger applies the coupled interest mutation under the card row lock.
type Ledger interface {
	ApplyCardInterest(ctx context.Context, cardID string, asOf time.Time) (domain.Card, decimal.Decimal, error)
}

// Line is one statement row in the requested display currency.
type Line struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"type"`
}

// Summary totals a statement in the requested display currency.
type Summary struct {
	PreviousBalance   decimal.Decimal `json:"previous_balance"`
	TotalCharges      decimal.Decimal `json:"total_charges"`
	TotalPayments     decimal.Decimal `json:"total_payments"`
	Interest          decimal.Decimal `json:"interest"`
	NewBalance        decimal.Decimal `json:"new_balance"`
	OverpaymentCredit decimal.Decimal `json:"overpayment_credit"`
}

// Statement is a monthly credit card statement.
type Statement struct {
	CardNumber      string          `json:"card_number"`
	PeriodFrom      time.Time       `json:"period_from"`
	PeriodTo        time.Time       `json:"period_to"`
	Transactions    []Line          `json:"transactions"`
	Summary         Summary         `json:"summary"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	Currency        string          `json:"currency"`
}

// Service facilitates statement generation.
type Service struct {
	cards     Cards
	journal   Journal
	ledger    Ledger
	converter currencypkg.Converter
}

// New returns statement service struct.
func New(c Cards, j Journal, l Ledger, conv currencypkg.Converter) *Service {
	return &Service{
		cards:     c,
		journal:   j,
		ledger:    l,
		converter: conv,
	}
}

// monthBounds returns the first instant of now's month and the last
// instant of its final day.
func monthBounds(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, 0).Add(-time.Millisecond)

	return first, last
}

// Generate builds the statement for the current month in the requested
// display currency. When the resulting balance is positive it applies one
// interest accrual to the card, dated at the period end, within its own
// unit of work; a negative result is reported as overpayment credit and
// the displayed balance clamps to zero.
func (s *Service) Generate(ctx context.Context, cardID, displayCurrency string, now time.Time) (Statement, error) {
	l := zerolog.Ctx(ctx)

	card, err := s.cards.Get(ctx, cardID)
	if err != nil {
		l.Info().Err(err).Send()
		return Statement{}, err
	}

	if !card.IsCredit() {
		return Statement{}, domain.ErrNotCreditCard
	}

	first, last := monthBounds(now)

	transactions, err := s.journal.ListByReference(ctx, card.ID, first, last)
	if err != nil {
		return Statement{}, err
	}

	var (
		lines         = []Line{}
		totalCharges  decimal.Decimal
		totalPayments decimal.Decimal
	)

	for _, t := range transactions {
		amount, err := s.converter.Convert(t.Amount, card.Currency, displayCurrency)
		if err != nil {
			return Statement{}, err
		}

		line := Line{Date: t.CreatedAt, Description: t.Description, Amount: amount}

		switch t.Type {
		case domain.TransactionPayment:
			totalCharges = totalCharges.Add(amount)
			line.Kind = "Charge"
		case domain.TransactionDeposit:
			totalPayments = totalPayments.Add(amount)
			line.Kind = "Payment"
		default:
			line.Kind = "Other"
		}

		lines = append(lines, line)
	}

	previousBalance, err := s.converter.Convert(card.Credit.Balance, card.Currency, displayCurrency)
	if err != nil {
		return Statement{}, err
	}

	newBalance := previousBalance.Add(totalCharges).Sub(totalPayments)

	// The summary always reports the interest accrued over the period,
	// even when the balance ends non-positive and nothing is charged.
	interest, err := s.converter.Convert(card.Credit.InterestAsOf(last), card.Currency, displayCurrency)
	if err != nil {
		return Statement{}, err
	}

	if newBalance.IsPositive() {
		// The one read path with a coupled mutation: exactly one
		// accrual per call, dated at the period end.
		_, applied, err := s.ledger.ApplyCardInterest(ctx, card.ID, last)
		if err != nil {
			return Statement{}, err
		}

		interest, err = s.converter.Convert(applied, card.Currency, displayCurrency)
		if err != nil {
			return Statement{}, err
		}

		newBalance = newBalance.Add(interest)
	}

	newBalance = moneypkg.Round(newBalance)

	overpaymentCredit := decimal.Zero
	if newBalance.IsNegative() {
		overpaymentCredit = newBalance.Abs()
		newBalance = decimal.Zero
	}

	creditLimit, err := s.converter.Convert(card.Credit.Limit, card.Currency, displayCurrency)
	if err != nil {
		return Statement{}, err
	}

	return Statement{
		CardNumber:   card.Number,
		PeriodFrom:   first,
		PeriodTo:     last,
		Transactions: lines,
		Summary: Summary{
			PreviousBalance:   previousBalance,
			TotalCharges:      moneypkg.Round(totalCharges),
			TotalPayments:     moneypkg.Round(totalPayments),
			Interest:          interest,
			NewBalance:        newBalance,
			OverpaymentCredit: overpaymentCredit,
		},
		CreditLimit:     creditLimit,
		AvailableCredit: moneypkg.Round(creditLimit.Sub(newBalance)),
		Currency:        displayCurrency,
	}, nil
}
