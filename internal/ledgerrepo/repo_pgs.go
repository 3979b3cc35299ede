// Package ledgerrepo provides the atomic unit of work for ledger
// mutations.
//
// Every externally triggered balance mutation runs through exactly one
// method here: the method opens a database transaction, takes exclusive
// row locks on everything it touches, validates under those locks, applies
// the rounded deltas and appends the journal entry. Either all writes
// commit or none do.
package ledgerrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/accountrepo"
	"github.com/go-dana/core-bank/internal/cardrepo"
	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/internal/journalrepo"
	"github.com/go-dana/core-bank/pkg/errorspkg"
	"github.com/go-dana/core-bank/pkg/moneypkg"
)

// RepoPGS owns the database connection it starts transactions on.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: conn,
	}
}

// repos bundles tx-scoped repositories for use inside a unit of work.
type repos struct {
	accounts *accountrepo.RepoPGS
	cards    *cardrepo.RepoPGS
	journal  *journalrepo.RepoPGS
}

// execTx executes fn within a database transaction.
func (r *RepoPGS) execTx(ctx context.Context, fn func(q repos) error) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	q := repos{
		accounts: accountrepo.NewRepoPGS(tx),
		cards:    cardrepo.NewRepoPGS(tx),
		journal:  journalrepo.NewRepoPGS(tx),
	}

	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

// lockAccountPair takes both row locks in ascending id order so that
// opposite-direction transfers cannot deadlock.
func lockAccountPair(ctx context.Context, q repos, firstID, secondID string) (domain.Account, domain.Account, error) {
	if secondID < firstID {
		second, first, err := lockAccountPair(ctx, q, secondID, firstID)
		return first, second, err
	}

	first, err := q.accounts.GetForUpdate(ctx, firstID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	second, err := q.accounts.GetForUpdate(ctx, secondID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	return first, second, nil
}

// checkDailyLimit verifies that the account's cumulative same-day outbound
// amount plus the requested amount stays within its limit.
func checkDailyLimit(ctx context.Context, q repos, account domain.Account, amount decimal.Decimal) error {
	outbound, err := q.journal.SumOutboundToday(ctx, account.ID)
	if err != nil {
		return err
	}

	if outbound.Add(amount).GreaterThan(account.DailyTransactionLimit) {
		return domain.ErrDailyLimitExceeded
	}

	return nil
}

// Transfer moves money between two accounts as one unit of work: both
// balance deltas and exactly one COMPLETED TRANSFER journal entry, or
// nothing.
func (r *RepoPGS) Transfer(ctx context.Context, arg domain.TransferParams) (domain.TransferTxResult, error) {
	var result domain.TransferTxResult

	err := r.execTx(ctx, func(q repos) error {
		from, to, err := lockAccountPair(ctx, q, arg.FromAccountID, arg.ToAccountID)
		if err != nil {
			return err
		}

		if from.Balance.LessThan(arg.Amount) {
			return domain.ErrInsufficientBalance
		}

		if err := checkDailyLimit(ctx, q, from, arg.Amount); err != nil {
			return err
		}

		result.FromAccount, err = q.accounts.SetBalance(ctx, from.ID, moneypkg.Round(from.Balance.Sub(arg.Amount)))
		if err != nil {
			return err
		}

		result.ToAccount, err = q.accounts.SetBalance(ctx, to.ID, moneypkg.Round(to.Balance.Add(arg.ConvertedAmount)))
		if err != nil {
			return err
		}

		result.Transaction, err = q.journal.Create(ctx, domain.Transaction{
			ID:            uuid.NewString(),
			Type:          domain.TransactionTransfer,
			Amount:        arg.Amount,
			SourceID:      from.ID,
			DestinationID: to.ID,
			Description:   arg.Description,
			Currency:      from.Currency,
			Status:        domain.StatusCompleted,
		})

		return err
	})

	return result, err
}

// Deposit credits the account and journals a DEPOSIT entry.
func (r *RepoPGS) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description string) (domain.AccountTxResult, error) {
	var result domain.AccountTxResult

	err := r.execTx(ctx, func(q repos) error {
		account, err := q.accounts.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		result.Account, err = q.accounts.SetBalance(ctx, account.ID, moneypkg.Round(account.Balance.Add(amount)))
		if err != nil {
			return err
		}

		result.Transaction, err = q.journal.Create(ctx, domain.Transaction{
			ID:            uuid.NewString(),
			Type:          domain.TransactionDeposit,
			Amount:        amount,
			DestinationID: account.ID,
			Description:   description,
			Currency:      account.Currency,
			Status:        domain.StatusCompleted,
		})

		return err
	})

	return result, err
}

// DeleteAccount removes an account as one unit of work. The zero-balance
// and no-pending checks run under the account's row lock, so a deposit
// committing concurrently cannot slip money into an account mid-deletion.
func (r *RepoPGS) DeleteAccount(ctx context.Context, accountID string) error {
	return r.execTx(ctx, func(q repos) error {
		account, err := q.accounts.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		if !account.Balance.IsZero() {
			return domain.ErrNonZeroBalance
		}

		pending, err := q.journal.HasPending(ctx, account.ID)
		if err != nil {
			return err
		}

		if pending {
			return domain.ErrPendingTransactions
		}

		return q.accounts.Delete(ctx, account.ID)
	})
}

// Withdraw debits the account, enforcing sufficient funds and the daily
// outbound limit, and journals a WITHDRAWAL entry.
func (r *RepoPGS) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description string) (domain.AccountTxResult, error) {
	var result domain.AccountTxResult

	err := r.execTx(ctx, func(q repos) error {
		account, err := q.accounts.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		if account.Balance.LessThan(amount) {
			return domain.ErrInsufficientBalance
		}

		if err := checkDailyLimit(ctx, q, account, amount); err != nil {
			return err
		}

		result.Account, err = q.accounts.SetBalance(ctx, account.ID, moneypkg.Round(account.Balance.Sub(amount)))
		if err != nil {
			return err
		}

		result.Transaction, err = q.journal.Create(ctx, domain.Transaction{
			ID:          uuid.NewString(),
			Type:        domain.TransactionWithdrawal,
			Amount:      amount,
			SourceID:    account.ID,
			Description: description,
			Currency:    account.Currency,
			Status:      domain.StatusCompleted,
		})

		return err
	})

	return result, err
}

// ChargeCard applies a purchase to a card. A credit card carries the
// charge on its own balance up to its limit; a debit card passes the
// charge through to the linked account, which must cover it.
func (r *RepoPGS) ChargeCard(ctx context.Context, cardID string, amount decimal.Decimal, description string) (domain.CardTxResult, error) {
	var result domain.CardTxResult

	err := r.execTx(ctx, func(q repos) error {
		card, err := q.cards.GetForUpdate(ctx, cardID)
		if err != nil {
			return err
		}

		entry := domain.Transaction{
			ID:          uuid.NewString(),
			Amount:      amount,
			SourceID:    card.ID,
			Description: description,
			Currency:    card.Currency,
			Status:      domain.StatusCompleted,
		}

		if card.IsCredit() {
			if err := card.Credit.Charge(amount); err != nil {
				return err
			}

			result.Card, err = q.cards.UpdateCredit(ctx, card.ID, card.Credit.Balance, card.Credit.LastInterestAt)
			if err != nil {
				return err
			}

			entry.Type = domain.TransactionPayment
		} else {
			account, err := q.accounts.GetForUpdate(ctx, card.AccountID)
			if err != nil {
				return err
			}

			if account.Balance.LessThan(amount) {
				return domain.ErrInsufficientBalance
			}

			if _, err := q.accounts.SetBalance(ctx, account.ID, moneypkg.Round(account.Balance.Sub(amount))); err != nil {
				return err
			}

			result.Card = card
			entry.Type = domain.TransactionWithdrawal
		}

		result.Transaction, err = q.journal.Create(ctx, entry)

		return err
	})

	return result, err
}

// PayCard applies a payment to a credit card balance. The balance may go
// negative down to the overpayment cap.
func (r *RepoPGS) PayCard(ctx context.Context, cardID string, amount decimal.Decimal, description string) (domain.CardTxResult, error) {
	var result domain.CardTxResult

	err := r.execTx(ctx, func(q repos) error {
		card, err := q.cards.GetForUpdate(ctx, cardID)
		if err != nil {
			return err
		}

		if !card.IsCredit() {
			return domain.ErrNotCreditCard
		}

		if err := card.Credit.Pay(amount); err != nil {
			return err
		}

		result.Card, err = q.cards.UpdateCredit(ctx, card.ID, card.Credit.Balance, card.Credit.LastInterestAt)
		if err != nil {
			return err
		}

		result.Transaction, err = q.journal.Create(ctx, domain.Transaction{
			ID:            uuid.NewString(),
			Type:          domain.TransactionDeposit,
			Amount:        amount,
			DestinationID: card.ID,
			Description:   description,
			Currency:      card.Currency,
			Status:        domain.StatusCompleted,
		})

		return err
	})

	return result, err
}

// AddCardFunds credits a card with an amount already converted into the
// card's currency: a credit card's balance decreases, a debit card's
// linked account balance increases.
func (r *RepoPGS) AddCardFunds(ctx context.Context, cardID string, amount decimal.Decimal, description string) (domain.CardTxResult, error) {
	var result domain.CardTxResult

	err := r.execTx(ctx, func(q repos) error {
		card, err := q.cards.GetForUpdate(ctx, cardID)
		if err != nil {
			return err
		}

		if card.IsCredit() {
			card.Credit.Balance = moneypkg.Round(card.Credit.Balance.Sub(amount))

			result.Card, err = q.cards.UpdateCredit(ctx, card.ID, card.Credit.Balance, card.Credit.LastInterestAt)
			if err != nil {
				return err
			}
		} else {
			account, err := q.accounts.GetForUpdate(ctx, card.AccountID)
			if err != nil {
				return err
			}

			if _, err := q.accounts.SetBalance(ctx, account.ID, moneypkg.Round(account.Balance.Add(amount))); err != nil {
				return err
			}

			result.Card = card
		}

		result.Transaction, err = q.journal.Create(ctx, domain.Transaction{
			ID:            uuid.NewString(),
			Type:          domain.TransactionDeposit,
			Amount:        amount,
			DestinationID: card.AccountID,
			Description:   description,
			Currency:      card.Currency,
			Status:        domain.StatusCompleted,
		})

		return err
	})

	return result, err
}

// AccrueAccountInterest applies one month of interest to a savings
// account under its row lock and refreshes the average daily balance.
// Other accounts are returned unchanged with zero interest.
func (r *RepoPGS) AccrueAccountInterest(ctx context.Context, accountID string, asOf time.Time) (domain.Account, decimal.Decimal, error) {
	var (
		account  domain.Account
		interest decimal.Decimal
	)

	err := r.execTx(ctx, func(q repos) error {
		a, err := q.accounts.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		if a.Type != domain.AccountSavings {
			account = a
			return nil
		}

		interest = a.MonthlyInterest()
		newBalance := moneypkg.Round(a.Balance.Add(interest))

		account, err = q.accounts.ApplyInterest(ctx, a.ID, newBalance, newBalance, asOf)

		return err
	})

	return account, interest, err
}

// ApplyCardInterest accrues credit card interest as of the given date
// under the card's row lock. Calling twice with the same date applies
// nothing the second time.
func (r *RepoPGS) ApplyCardInterest(ctx context.Context, cardID string, asOf time.Time) (domain.Card, decimal.Decimal, error) {
	var (
		card     domain.Card
		interest decimal.Decimal
	)

	err := r.execTx(ctx, func(q repos) error {
		c, err := q.cards.GetForUpdate(ctx, cardID)
		if err != nil {
			return err
		}

		if !c.IsCredit() {
			return domain.ErrNotCreditCard
		}

		interest = c.Credit.ApplyInterest(asOf)

		card, err = q.cards.UpdateCredit(ctx, c.ID, c.Credit.Balance, c.Credit.LastInterestAt)

		return err
	})

	return card, interest, err
}
