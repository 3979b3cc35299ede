// Package admindelivery manages the administrative delivery layer: system
// configuration updates and the interest sweep trigger.
package admindelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/internal/interestservice"
	"github.com/go-dana/core-bank/pkg/errorspkg"
	"github.com/go-dana/core-bank/pkg/web"
)

// Config provides the system configuration operations exposed to admins.
//
//go:generate mockgen -source http.go -destination http_mock.go -package admindelivery
type Config interface {
	Get(ctx context.Context) (domain.SystemConfig, error)
	UpdateGlobalInterestRate(ctx context.Context, rate decimal.Decimal) error
	UpdateDailyTransactionLimit(ctx context.Context, limit decimal.Decimal) error
}

// Sweeper runs the savings interest sweep.
type Sweeper interface {
	ApplyMonthlyInterest(ctx context.Context) (interestservice.Result, error)
}

// Journal provides journal entry lookup for support investigations.
type Journal interface {
	Get(ctx context.Context, id string) (domain.Transaction, error)
}

// Handler facilitates administrative delivery layer logic.
type Handler struct {
	config  Config
	sweeper Sweeper
	journal Journal
}

// NewHandler returns admin handler.
func NewHandler(c Config, s Sweeper, j Journal) Handler {
	return Handler{config: c, sweeper: s, journal: j}
}

func bindErrMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}

type configData struct {
	Config domain.SystemConfig `json:"config"`
}
type configResponse struct {
	Data configData `json:"data,omitempty"`
}

// GetConfig handles http request to read the system configuration.
func (h *Handler) GetConfig(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	cfg, err := h.config.Get(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, configResponse{Data: configData{cfg}})
}

type updateConfigRequest struct {
	GlobalInterestRate    *decimal.Decimal `json:"global_interest_rate"`
	DailyTransactionLimit *decimal.Decimal `json:"daily_transaction_limit"`
}

// UpdateConfig handles http request to update system configuration fields.
// Only the fields present in the request change.
func (h *Handler) UpdateConfig(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req updateConfigRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	if req.GlobalInterestRate == nil && req.DailyTransactionLimit == nil {
		gctx.JSON(http.StatusBadRequest, web.Error(errors.New("no fields to update")))

		return
	}

	if req.GlobalInterestRate != nil {
		if req.GlobalInterestRate.IsNegative() {
			gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrNegativeAmount))
			return
		}

		if err := h.config.UpdateGlobalInterestRate(ctx, *req.GlobalInterestRate); err != nil {
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
			return
		}
	}

	if req.DailyTransactionLimit != nil {
		if !req.DailyTransactionLimit.IsPositive() {
			gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
			return
		}

		if err := h.config.UpdateDailyTransactionLimit(ctx, *req.DailyTransactionLimit); err != nil {
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
			return
		}
	}

	cfg, err := h.config.Get(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, configResponse{Data: configData{cfg}})
}

type sweepData struct {
	Sweep interestservice.Result `json:"sweep"`
}
type sweepResponse struct {
	Data sweepData `json:"data,omitempty"`
}

// RunInterestSweep handles http request to run the monthly savings
// interest sweep on demand.
func (h *Handler) RunInterestSweep(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	result, err := h.sweeper.ApplyMonthlyInterest(ctx)
	if err != nil {
		if err == interestservice.ErrSweepInProgress {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, sweepResponse{Data: sweepData{result}})
}

type getTransactionRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type transactionData struct {
	Transaction domain.Transaction `json:"transaction"`
}
type transactionResponse struct {
	Data transactionData `json:"data,omitempty"`
}

// GetTransaction handles http request to look up a single journal entry.
func (h *Handler) GetTransaction(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getTransactionRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	transaction, err := h.journal.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, transactionResponse{Data: transactionData{transaction}})
}
