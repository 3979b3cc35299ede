// Package cardrepo manages repository layer of cards.
package cardrepo

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

// RepoPGS facilitates card repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns card RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const cardColumns = `
	id, owner, account_id, type, number, expiration_date, cvv, currency,
	credit_limit, balance, monthly_interest_rate, last_interest_at, created_at
`

type scanner interface {
	Scan(dest ...any) error
}

// The credit columns are NULL for debit cards; the schema enforces that
// they are set together for credit cards.
func scanCard(row scanner) (domain.Card, error) {
	var (
		c              domain.Card
		limit, balance decimal.NullDecimal
		monthlyRate    decimal.NullDecimal
		lastInterestAt sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.Owner,
		&c.AccountID,
		&c.Type,
		&c.Number,
		&c.ExpirationDate,
		&c.CVV,
		&c.Currency,
		&limit,
		&balance,
		&monthlyRate,
		&lastInterestAt,
		&c.CreatedAt,
	)
	if err != nil {
		return c, err
	}

	if c.Type == domain.CardCredit {
		c.Credit = &domain.CreditTerms{
			Limit:               limit.Decimal,
			Balance:             balance.Decimal,
			MonthlyInterestRate: monthlyRate.Decimal,
			LastInterestAt:      lastInterestAt.Time,
		}
	}

	return c, nil
}

const createQuery = `
INSERT INTO
    cards (id, owner, account_id, type, number, expiration_date, cvv, currency,
           credit_limit, balance, monthly_interest_rate, last_interest_at)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING` + cardColumns

// Create creates the card and then returns it.
func (r *RepoPGS) Create(ctx context.Context, card domain.Card) (domain.Card, error) {
	l := zerolog.Ctx(ctx)

	var (
		limit, balance decimal.NullDecimal
		monthlyRate    decimal.NullDecimal
		lastInterestAt sql.NullTime
	)

	if card.Credit != nil {
		limit = decimal.NullDecimal{Decimal: card.Credit.Limit, Valid: true}
		balance = decimal.NullDecimal{Decimal: card.Credit.Balance, Valid: true}
		monthlyRate = decimal.NullDecimal{Decimal: card.Credit.MonthlyInterestRate, Valid: true}
		lastInterestAt = sql.NullTime{Time: card.Credit.LastInterestAt, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, createQuery,
		card.ID,
		card.Owner,
		card.AccountID,
		card.Type,
		card.Number,
		card.ExpirationDate,
		card.CVV,
		card.Currency,
		limit,
		balance,
		monthlyRate,
		lastInterestAt,
	)

	c, err := scanCard(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", card)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "cards_account_id_fkey":
				return c, domain.ErrAccountNotFound
			case "cards_balance_limit_check":
				return c, domain.ErrCreditLimitExceeded
			}
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getQuery = `
SELECT` + cardColumns + `
FROM cards
WHERE id = $1
`

// Get returns the card with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Card, error) {
	return r.get(ctx, getQuery, id)
}

const getForUpdateQuery = `
SELECT` + cardColumns + `
FROM cards
WHERE id = $1
FOR UPDATE
`

// GetForUpdate returns the card with the given id holding an exclusive row
// lock until the surrounding transaction ends.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id string) (domain.Card, error) {
	return r.get(ctx, getForUpdateQuery, id)
}

func (r *RepoPGS) get(ctx context.Context, query, id string) (domain.Card, error) {
	l := zerolog.Ctx(ctx)

	c, err := scanCard(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCardNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listQuery = `
SELECT` + cardColumns + `
FROM cards
WHERE owner = $1
ORDER BY created_at
LIMIT $2 OFFSET $3
`

// List returns the specified number of cards for the given user.
func (r *RepoPGS) List(ctx context.Context, owner string, limit, offset int32) ([]domain.Card, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Card{}

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateCreditQuery = `
UPDATE cards
SET balance = $1, last_interest_at = $2
WHERE id = $3 AND type = 'CREDIT'
RETURNING` + cardColumns

// UpdateCredit stores a credit card's balance and interest calculation
// date. Callers must hold the row lock.
func (r *RepoPGS) UpdateCredit(ctx context.Context, id string, balance decimal.Decimal, lastInterestAt time.Time) (domain.Card, error) {
	l := zerolog.Ctx(ctx)

	c, err := scanCard(r.db.QueryRowContext(ctx, updateCreditQuery, balance, lastInterestAt, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCardNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "cards_balance_limit_check" {
				return c, domain.ErrCreditLimitExceeded
			}
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const deleteQuery = `
DELETE FROM cards
WHERE id = $1
`

// Delete removes the card with the given id.
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
		return domain.ErrCardNotFound
	}

	return nil
}
