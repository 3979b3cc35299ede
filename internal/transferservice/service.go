// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/currencypkg"
	"github.com/go-dana/core-bank/pkg/moneypkg"
)

// Ledger provides the atomic transfer unit of work.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Ledger interface {
	Transfer(ctx context.Context, arg domain.TransferParams) (domain.TransferTxResult, error)
}

// AccountGetter provides the account reads the coordinator needs before
// entering the unit of work.
type AccountGetter interface {
	Get(ctx context.Context, id string) (domain.Account, error)
}

// Service coordinates transfers between two accounts.
type Service struct {
	ledger    Ledger
	accounts  AccountGetter
	converter currencypkg.Converter
}

// New returns transfer service struct to manage transfer business logic.
func New(l Ledger, a AccountGetter, c currencypkg.Converter) *Service {
	return &Service{
		ledger:    l,
		accounts:  a,
		converter: c,
	}
}

// Transfer validates the request, converts the amount into the destination
// currency when needed, and executes the transfer as one atomic unit.
// Balance and daily-limit checks run again under the row locks inside the
// unit of work; the pre-checks here only reject doomed requests early.
func (s *Service) Transfer(ctx context.Context, fromUsername string, arg domain.TransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	if !arg.Amount.IsPositive() {
		return domain.TransferTxResult{}, domain.ErrNegativeAmount
	}

	arg.Amount = moneypkg.Round(arg.Amount)

	fromAccount, err := s.accounts.Get(ctx, arg.FromAccountID)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.TransferTxResult{}, err
	}

	if fromAccount.Owner != fromUsername {
		l.Info().Str("owner", fromAccount.Owner).Str("requester", fromUsername).Msg("transfer owner mismatch")
		return domain.TransferTxResult{}, domain.ErrAccountOwnerMismatch
	}

	if fromAccount.Balance.LessThan(arg.Amount) {
		return domain.TransferTxResult{}, domain.ErrInsufficientBalance
	}

	toAccount, err := s.accounts.Get(ctx, arg.ToAccountID)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.TransferTxResult{}, err
	}

	arg.ConvertedAmount = arg.Amount

	if fromAccount.Currency != toAccount.Currency {
		converted, err := s.converter.Convert(arg.Amount, fromAccount.Currency, toAccount.Currency)
		if err != nil {
			l.Info().Err(err).Send()
			return domain.TransferTxResult{}, err
		}

		arg.ConvertedAmount = converted
	}

	return s.ledger.Transfer(ctx, arg)
}
