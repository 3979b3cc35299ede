// Package cardservice manages business logic layer of cards.
package cardservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/currencypkg"
	"github.com/go-dana/core-bank/pkg/moneypkg"
	"github.com/go-dana/core-bank/pkg/randompkg"
	"github.com/go-dana/core-bank/pkg/tokenpkg"
)

// defaultMonthlyInterestRate applies to credit cards issued without an
// explicit rate, in percent per month.
var defaultMonthlyInterestRate = decimal.NewFromInt(2)

// Repo provides data access layer interface needed by card service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package cardservice
type Repo interface {
	Create(ctx context.Context, card domain.Card) (domain.Card, error)
	Get(ctx context.Context, id string) (domain.Card, error)
	List(ctx context.Context, owner string, limit, offset int32) ([]domain.Card, error)
	Delete(ctx context.Context, id string) error
}

// Ledger provides the atomic unit of work for journaled card mutations.
type Ledger interface {
	ChargeCard(ctx context.Context, cardID string, amount decimal.Decimal, description string) (domain.CardTxResult, error)
	PayCard(ctx context.Context, cardID string, amount decimal.Decimal, description string) (domain.CardTxResult, error)
	AddCardFunds(ctx context.Context, cardID string, amount decimal.Decimal, description string) (domain.CardTxResult, error)
	ApplyCardInterest(ctx context.Context, cardID string, asOf time.Time) (domain.Card, decimal.Decimal, error)
}

// AccountGetter provides the account reads card issuance depends on.
type AccountGetter interface {
	Get(ctx context.Context, id string) (domain.Account, error)
}

// Service facilitates card service layer logic.
type Service struct {
	repo      Repo
	ledger    Ledger
	accounts  AccountGetter
	converter currencypkg.Converter
}

// New returns card service struct to manage card business logic.
func New(r Repo, l Ledger, a AccountGetter, c currencypkg.Converter) *Service {
	return &Service{
		repo:      r,
		ledger:    l,
		accounts:  a,
		converter: c,
	}
}

// Create issues a card against an existing account. Debit cards may only
// be linked to current accounts; credit cards require a positive limit and
// start with a zero balance.
func (s *Service) Create(ctx context.Context, arg domain.CreateCardParams) (domain.Card, error) {
	l := zerolog.Ctx(ctx)

	if !currencypkg.IsSupportedCurrency(arg.Currency) {
		return domain.Card{}, currencypkg.ErrUnknownCurrency
	}

	account, err := s.accounts.Get(ctx, arg.AccountID)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Card{}, err
	}

	card := domain.Card{
		ID:             uuid.NewString(),
		Owner:          arg.Owner,
		AccountID:      account.ID,
		Type:           arg.Type,
		Number:         randompkg.CardNumber(),
		ExpirationDate: randompkg.CardExpiration(),
		CVV:            randompkg.CVV(),
		Currency:       arg.Currency,
	}

	switch arg.Type {
	case domain.CardDebit:
		if account.Type != domain.AccountCurrent {
			return domain.Card{}, domain.ErrDebitRequiresCurrent
		}
	case domain.CardCredit:
		if !arg.CreditLimit.IsPositive() {
			return domain.Card{}, domain.ErrInvalidCreditLimit
		}

		rate := arg.MonthlyInterestRate
		if rate.IsZero() {
			rate = defaultMonthlyInterestRate
		}

		card.Credit = &domain.CreditTerms{
			Limit:               moneypkg.Round(arg.CreditLimit),
			Balance:             decimal.Zero,
			MonthlyInterestRate: moneypkg.Round(rate),
			LastInterestAt:      time.Now(),
		}
	default:
		return domain.Card{}, domain.ErrInvalidCardType
	}

	return s.repo.Create(ctx, card)
}

// Get returns the card with the given ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Card, error) {
	return s.repo.Get(ctx, id)
}

// List returns cards that are owned by the given user.
func (s *Service) List(ctx context.Context, owner string, pageSize, pageID int32) ([]domain.Card, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.List(ctx, owner, limit, offset)
}

// Charge applies a purchase to the card within one unit of work: credit
// cards carry it on their balance up to the limit, debit cards pass it
// through to the linked account.
func (s *Service) Charge(ctx context.Context, cardID string, amount decimal.Decimal, description string) (domain.CardTxResult, error) {
	if !amount.IsPositive() {
		return domain.CardTxResult{}, domain.ErrNegativeAmount
	}

	if _, err := s.repo.Get(ctx, cardID); err != nil {
		return domain.CardTxResult{}, err
	}

	return s.ledger.ChargeCard(ctx, cardID, moneypkg.Round(amount), description)
}

// Pay applies a payment to a credit card balance. The payment is converted
// into the card's currency first; the balance may go negative down to the
// overpayment cap.
func (s *Service) Pay(ctx context.Context, cardID string, amount decimal.Decimal, currencyCode string) (domain.CardTxResult, error) {
	l := zerolog.Ctx(ctx)

	if !amount.IsPositive() {
		return domain.CardTxResult{}, domain.ErrNegativeAmount
	}

	card, err := s.repo.Get(ctx, cardID)
	if err != nil {
		return domain.CardTxResult{}, err
	}

	if !card.IsCredit() {
		return domain.CardTxResult{}, domain.ErrNotCreditCard
	}

	converted, err := s.converter.Convert(moneypkg.Round(amount), currencyCode, card.Currency)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.CardTxResult{}, err
	}

	return s.ledger.PayCard(ctx, cardID, converted, "Card balance payment")
}

// AddFunds credits the card with an amount given in any supported
// currency: a credit card's balance decreases, a debit card's linked
// account balance increases.
func (s *Service) AddFunds(ctx context.Context, cardID string, amount decimal.Decimal, currencyCode, description string) (domain.CardTxResult, error) {
	l := zerolog.Ctx(ctx)

	if !amount.IsPositive() {
		return domain.CardTxResult{}, domain.ErrNegativeAmount
	}

	card, err := s.repo.Get(ctx, cardID)
	if err != nil {
		return domain.CardTxResult{}, err
	}

	converted, err := s.converter.Convert(moneypkg.Round(amount), currencyCode, card.Currency)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.CardTxResult{}, err
	}

	return s.ledger.AddCardFunds(ctx, cardID, converted, description)
}

// Delete removes a card. The requester must own the card or hold the
// admin role, and a credit card must not owe anything.
func (s *Service) Delete(ctx context.Context, cardID, requester, requesterRole string) error {
	card, err := s.repo.Get(ctx, cardID)
	if err != nil {
		return err
	}

	if card.Owner != requester && requesterRole != tokenpkg.RoleAdmin {
		return domain.ErrCardOwnerMismatch
	}

	if card.IsCredit() && card.Credit.Balance.IsPositive() {
		return domain.ErrOutstandingBalance
	}

	return s.repo.Delete(ctx, cardID)
}

// ApplyInterest accrues credit card interest as of the given date within
// one unit of work.
func (s *Service) ApplyInterest(ctx context.Context, cardID string, asOf time.Time) (domain.Card, decimal.Decimal, error) {
	return s.ledger.ApplyCardInterest(ctx, cardID, asOf)
}
