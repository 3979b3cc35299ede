// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/currencypkg"
	"github.com/go-dana/core-bank/pkg/moneypkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, id string, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	List(ctx context.Context, owner string, limit, offset int32) ([]domain.Account, error)
	SetBalance(ctx context.Context, id string, balance decimal.Decimal) (domain.Account, error)
}

// Ledger provides the atomic unit of work for account mutations. Deletion
// lives here too: its zero-balance and no-pending checks must run under
// the account row lock.
type Ledger interface {
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (domain.AccountTxResult, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description string) (domain.AccountTxResult, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// Journal provides the journal queries the account lifecycle depends on.
type Journal interface {
	ListByReference(ctx context.Context, refID string, from, to time.Time) ([]domain.Transaction, error)
}

// Config provides system-wide defaults for newly created accounts.
type Config interface {
	Get(ctx context.Context) (domain.SystemConfig, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo    Repo
	ledger  Ledger
	journal Journal
	config  Config
}

// New returns account service struct to manage account business logic.
func New(r Repo, l Ledger, j Journal, c Config) *Service {
	return &Service{
		repo:    r,
		ledger:  l,
		journal: j,
		config:  c,
	}
}

// Create opens an account for the given owner. Zero-valued rate and limit
// fall back to the system defaults; all monetary fields are stored rounded
// to two digits.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if arg.Type != domain.AccountSavings && arg.Type != domain.AccountCurrent {
		return domain.Account{}, domain.ErrInvalidAccountType
	}

	if !currencypkg.IsSupportedCurrency(arg.Currency) {
		return domain.Account{}, currencypkg.ErrUnknownCurrency
	}

	if arg.InitialBalance.IsNegative() || arg.AnnualInterestRate.IsNegative() || arg.DailyTransactionLimit.IsNegative() {
		return domain.Account{}, domain.ErrNegativeAmount
	}

	defaultRate := arg.Type == domain.AccountSavings && arg.AnnualInterestRate.IsZero()

	if arg.DailyTransactionLimit.IsZero() || defaultRate {
		cfg, err := s.config.Get(ctx)
		if err != nil {
			l.Error().Err(err).Send()
			return domain.Account{}, err
		}

		if arg.DailyTransactionLimit.IsZero() {
			arg.DailyTransactionLimit = cfg.DailyTransactionLimit
		}

		if defaultRate {
			arg.AnnualInterestRate = cfg.GlobalInterestRate
		}
	}

	arg.InitialBalance = moneypkg.Round(arg.InitialBalance)
	arg.AnnualInterestRate = moneypkg.Round(arg.AnnualInterestRate)
	arg.DailyTransactionLimit = moneypkg.Round(arg.DailyTransactionLimit)

	return s.repo.Create(ctx, uuid.NewString(), arg)
}

// Get returns account for the given account ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// List returns accounts that are owned by the given user.
func (s *Service) List(ctx context.Context, owner string, pageSize, pageID int32) ([]domain.Account, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.List(ctx, owner, limit, offset)
}

// UpdateBalance overwrites the account balance. This is the administrative
// override used by internal mutators; deposit and withdraw business rules
// do not apply, but the no-overdraft invariant still holds.
func (s *Service) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) (domain.Account, error) {
	if balance.IsNegative() {
		return domain.Account{}, domain.ErrNegativeAmount
	}

	return s.repo.SetBalance(ctx, id, moneypkg.Round(balance))
}

// Delete removes an account. It refuses while the account holds money or
// while any pending journal entry still references it; both checks run
// inside the ledger unit of work under the account's row lock.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.ledger.DeleteAccount(ctx, id)
}

// Transactions returns the journal entries referencing the account inside
// the given period, oldest first.
func (s *Service) Transactions(ctx context.Context, id string, from, to time.Time) ([]domain.Transaction, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	return s.journal.ListByReference(ctx, id, from, to)
}

// Deposit credits the account within one unit of work.
func (s *Service) Deposit(ctx context.Context, id string, amount decimal.Decimal, description string) (domain.AccountTxResult, error) {
	if !amount.IsPositive() {
		return domain.AccountTxResult{}, domain.ErrNegativeAmount
	}

	return s.ledger.Deposit(ctx, id, moneypkg.Round(amount), description)
}

// Withdraw debits the account within one unit of work, enforcing
// sufficient funds and the daily outbound limit.
func (s *Service) Withdraw(ctx context.Context, id string, amount decimal.Decimal, description string) (domain.AccountTxResult, error) {
	if !amount.IsPositive() {
		return domain.AccountTxResult{}, domain.ErrNegativeAmount
	}

	return s.ledger.Withdraw(ctx, id, moneypkg.Round(amount), description)
}
