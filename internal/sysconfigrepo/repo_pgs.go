// Package sysconfigrepo manages the singleton system configuration row.
package sysconfigrepo

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/dbpkg"
	"github.com/go-dana/core-bank/pkg/errorspkg"
)

// RepoPGS facilitates system config repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns sysconfig RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getQuery = `
SELECT global_interest_rate, daily_transaction_limit
FROM system_config
WHERE id = 1
`

// Get returns the system configuration.
func (r *RepoPGS) Get(ctx context.Context) (domain.SystemConfig, error) {
	l := zerolog.Ctx(ctx)

	var c domain.SystemConfig

	err := r.db.QueryRowContext(ctx, getQuery).Scan(
		&c.GlobalInterestRate,
		&c.DailyTransactionLimit,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const updateInterestRateQuery = `
UPDATE system_config
SET global_interest_rate = $1
WHERE id = 1
`

// UpdateGlobalInterestRate stores a new default interest rate for newly
// created accounts.
func (r *RepoPGS) UpdateGlobalInterestRate(ctx context.Context, rate decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, updateInterestRateQuery, rate); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const updateDailyLimitQuery = `
UPDATE system_config
SET daily_transaction_limit = $1
WHERE id = 1
`

// UpdateDailyTransactionLimit stores a new default daily limit for newly
// created accounts.
func (r *RepoPGS) UpdateDailyTransactionLimit(ctx context.Context, limit decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, updateDailyLimitQuery, limit); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
