// Package journalrepo manages the append-only transaction journal.
//
// Journal entries are only ever inserted; there is no update or delete
// path, and none should be added.
package journalrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/dbpkg"
	"github.com/go-dana/core-bank/pkg/errorspkg"
)

// RepoPGS facilitates journal repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns journal RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const transactionColumns = `
	id, type, amount, source_id, destination_id, description, currency, status, created_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (domain.Transaction, error) {
	var (
		t                     domain.Transaction
		sourceID, destination sql.NullString
	)

	err := row.Scan(
		&t.ID,
		&t.Type,
		&t.Amount,
		&sourceID,
		&destination,
		&t.Description,
		&t.Currency,
		&t.Status,
		&t.CreatedAt,
	)
	if err != nil {
		return t, err
	}

	t.SourceID = sourceID.String
	t.DestinationID = destination.String

	return t, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

const createQuery = `
INSERT INTO
    transactions (id, type, amount, source_id, destination_id, description, currency, status)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING` + transactionColumns

// Create appends the journal entry and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.ID,
		arg.Type,
		arg.Amount,
		nullable(arg.SourceID),
		nullable(arg.DestinationID),
		arg.Description,
		arg.Currency,
		arg.Status,
	)

	t, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT` + transactionColumns + `
FROM transactions
WHERE id = $1
`

// Get returns the journal entry with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	t, err := scanTransaction(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listByReferenceQuery = `
SELECT` + transactionColumns + `
FROM transactions
WHERE
    (source_id = $1 OR destination_id = $1)
    AND created_at BETWEEN $2 AND $3
ORDER BY created_at DESC
`

// ListByReference returns the entries referencing the given account or
// card on either leg within [from, to], newest first.
func (r *RepoPGS) ListByReference(ctx context.Context, refID string, from, to time.Time) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByReferenceQuery, refID, from, to)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const sumOutboundTodayQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM transactions
WHERE
    source_id = $1
    AND type IN ('WITHDRAWAL', 'TRANSFER')
    AND status = 'COMPLETED'
    AND created_at >= date_trunc('day', now())
`

// SumOutboundToday returns the cumulative amount withdrawn or transferred
// out of the account during the current calendar day. Running it inside
// the mutating transaction makes the daily-limit check race free.
func (r *RepoPGS) SumOutboundToday(ctx context.Context, accountID string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	var sum decimal.Decimal

	err := r.db.QueryRowContext(ctx, sumOutboundTodayQuery, accountID).Scan(&sum)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Decimal{}, errorspkg.ErrInternal
	}

	return sum, nil
}

const hasPendingQuery = `
SELECT EXISTS (
    SELECT 1
    FROM transactions
    WHERE (source_id = $1 OR destination_id = $1) AND status = 'PENDING'
)
`

// HasPending reports whether any pending entry still references the
// account or card.
func (r *RepoPGS) HasPending(ctx context.Context, refID string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var exists bool

	err := r.db.QueryRowContext(ctx, hasPendingQuery, refID).Scan(&exists)
	if err != nil {
		l.Error().Err(err).Send()
		return false, errorspkg.ErrInternal
	}

	return exists, nil
}
