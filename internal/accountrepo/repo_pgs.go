// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/dbpkg"
	"github.com/go-dana/core-bank/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const accountColumns = `
	id, owner, type, currency, balance, average_daily_balance,
	annual_interest_rate, daily_transaction_limit, last_interest_at, created_at
`

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.Owner,
		&a.Type,
		&a.Currency,
		&a.Balance,
		&a.AverageDailyBalance,
		&a.AnnualInterestRate,
		&a.DailyTransactionLimit,
		&a.LastInterestAt,
		&a.CreatedAt,
	)

	return a, err
}

const createQuery = `
INSERT INTO
    accounts (id, owner, type, currency, balance, average_daily_balance,
              annual_interest_rate, daily_transaction_limit)
VALUES
    ($1, $2, $3, $4, $5, $5, $6, $7)
RETURNING` + accountColumns

// Create creates the account and then returns it. The average daily
// balance starts at the initial balance.
func (r *RepoPGS) Create(ctx context.Context, id string, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		id,
		arg.Owner,
		arg.Type,
		arg.Currency,
		arg.InitialBalance,
		arg.AnnualInterestRate,
		arg.DailyTransactionLimit,
	)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %v, %+v)", id, arg)

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrNegativeAmount
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getForUpdateQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE id = $1
FOR UPDATE
`

// GetForUpdate returns the account with the given id holding an exclusive
// row lock until the surrounding transaction ends. Callers locking two
// accounts must do so in ascending id order.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getForUpdateQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE owner = $1
ORDER BY created_at
LIMIT $2 OFFSET $3
`

// List returns the specified number of accounts for the given user.
func (r *RepoPGS) List(ctx context.Context, owner string, limit, offset int32) ([]domain.Account, error) {
	return r.list(ctx, listQuery, owner, limit, offset)
}

const listByTypeQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE type = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// ListByType returns a page of accounts of the given type ordered by id,
// so a sweep can walk all of them deterministically.
func (r *RepoPGS) ListByType(ctx context.Context, accountType domain.AccountType, limit, offset int32) ([]domain.Account, error) {
	return r.list(ctx, listByTypeQuery, accountType, limit, offset)
}

func (r *RepoPGS) list(ctx context.Context, query string, key any, limit, offset int32) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, key, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(
			&a.ID,
			&a.Owner,
			&a.Type,
			&a.Currency,
			&a.Balance,
			&a.AverageDailyBalance,
			&a.AnnualInterestRate,
			&a.DailyTransactionLimit,
			&a.LastInterestAt,
			&a.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const setBalanceQuery = `
UPDATE accounts
SET balance = $1
WHERE id = $2
RETURNING` + accountColumns

// SetBalance overwrites the account's balance and returns the changed
// account. No limit rules apply here; business checks belong to the
// callers holding the row lock.
func (r *RepoPGS) SetBalance(ctx context.Context, id string, balance decimal.Decimal) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, setBalanceQuery, balance, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrInsufficientBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const applyInterestQuery = `
UPDATE accounts
SET balance = $1, average_daily_balance = $2, last_interest_at = $3
WHERE id = $4
RETURNING` + accountColumns

// ApplyInterest stores the post-accrual balance and advances the last
// interest calculation date.
func (r *RepoPGS) ApplyInterest(ctx context.Context, id string, balance, averageDailyBalance decimal.Decimal, asOf time.Time) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, applyInterestQuery, balance, averageDailyBalance, asOf, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const deleteQuery = `
DELETE FROM accounts
WHERE id = $1
`

// Delete removes the account with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id string) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}
