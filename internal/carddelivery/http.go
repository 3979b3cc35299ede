// Package carddelivery manages delivery layer of cards.
package carddelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/internal/middleware"
	"github.com/go-dana/core-bank/internal/statementservice"
	"github.com/go-dana/core-bank/pkg/currencypkg"
	"github.com/go-dana/core-bank/pkg/errorspkg"
	"github.com/go-dana/core-bank/pkg/tokenpkg"
	"github.com/go-dana/core-bank/pkg/web"
)

// Service provides service layer interface needed by card delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package carddelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateCardParams) (domain.Card, error)
	Get(ctx context.Context, id string) (domain.Card, error)
	List(ctx context.Context, owner string, pageSize, pageID int32) ([]domain.Card, error)
	Charge(ctx context.Context, cardID string, amount decimal.Decimal, description string) (domain.CardTxResult, error)
	Pay(ctx context.Context, cardID string, amount decimal.Decimal, currencyCode string) (domain.CardTxResult, error)
	AddFunds(ctx context.Context, cardID string, amount decimal.Decimal, currencyCode, description string) (domain.CardTxResult, error)
	Delete(ctx context.Context, cardID, requester, requesterRole string) error
	ApplyInterest(ctx context.Context, cardID string, asOf time.Time) (domain.Card, decimal.Decimal, error)
}

// Statements provides the statement generation the card delivery exposes.
type Statements interface {
	Generate(ctx context.Context, cardID, displayCurrency string, now time.Time) (statementservice.Statement, error)
}

// Handler facilitates card delivery layer logic.
type Handler struct {
	service    Service
	statements Statements
}

// NewHandler returns card handler.
func NewHandler(cs Service, ss Statements) Handler {
	return Handler{service: cs, statements: ss}
}

func bindErrMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}

type data struct {
	Card domain.Card `json:"card"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	AccountID   string          `json:"account_id" binding:"required,uuid"`
	Type        string          `json:"type" binding:"required,oneof=DEBIT CREDIT"`
	Currency    string          `json:"currency" binding:"required,currency"`
	CreditLimit decimal.Decimal `json:"credit_limit"`

	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
}

// Create handles http request to issue a card.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	card, err := h.service.Create(ctx, domain.CreateCardParams{
		Owner:               authPayload.Username,
		AccountID:           req.AccountID,
		Type:                domain.CardType(req.Type),
		Currency:            req.Currency,
		CreditLimit:         req.CreditLimit,
		MonthlyInterestRate: req.MonthlyInterestRate,
	})
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidCardType, domain.ErrInvalidCreditLimit,
			domain.ErrDebitRequiresCurrent, currencypkg.ErrUnknownCurrency:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{card}})
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// getOwned loads the card and verifies the requester may act on it.
func (h *Handler) getOwned(gctx *gin.Context, id string) (domain.Card, bool) {
	ctx := gctx.Request.Context()

	card, err := h.service.Get(ctx, id)
	if err != nil {
		if err == domain.ErrCardNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return domain.Card{}, false
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return domain.Card{}, false
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	if card.Owner != authPayload.Username && authPayload.Role != tokenpkg.RoleAdmin {
		gctx.JSON(http.StatusUnauthorized, web.Error(domain.ErrCardOwnerMismatch))

		return domain.Card{}, false
	}

	return card, true
}

// Get handles http request to get a card.
func (h *Handler) Get(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	card, ok := h.getOwned(gctx, req.ID)
	if !ok {
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{card}})
}

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type dataCards struct {
	Cards []domain.Card `json:"cards"`
}
type responseCards struct {
	Data dataCards `json:"data,omitempty"`
}

// List handles http request to list the requester's cards.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	cards, err := h.service.List(ctx, authPayload.Username, req.PageSize, req.PageID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseCards{Data: dataCards{cards}})
}

type chargeRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
}

type txData struct {
	Card        domain.Card        `json:"card"`
	Transaction domain.Transaction `json:"transaction"`
}
type txResponse struct {
	Data txData `json:"data,omitempty"`
}

// Charge handles http request to apply a purchase to a card.
func (h *Handler) Charge(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	var req chargeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	if _, ok := h.getOwned(gctx, uri.ID); !ok {
		return
	}

	result, err := h.service.Charge(ctx, uri.ID, req.Amount, req.Description)
	if err != nil {
		switch err {
		case domain.ErrNegativeAmount, domain.ErrCreditLimitExceeded, domain.ErrInsufficientBalance:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, txResponse{Data: txData{result.Card, result.Transaction}})
}

type payRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,currency"`
}

// Pay handles http request to pay down a credit card balance.
func (h *Handler) Pay(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	var req payRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	if _, ok := h.getOwned(gctx, uri.ID); !ok {
		return
	}

	result, err := h.service.Pay(ctx, uri.ID, req.Amount, req.Currency)
	if err != nil {
		switch err {
		case domain.ErrNegativeAmount, domain.ErrNotCreditCard,
			domain.ErrOverpaymentLimitExceeded, currencypkg.ErrUnknownCurrency:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, txResponse{Data: txData{result.Card, result.Transaction}})
}

type addFundsRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,currency"`
	Description string          `json:"description" binding:"max=255"`
}

// AddFunds handles http request to credit a card.
func (h *Handler) AddFunds(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	var req addFundsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	if _, ok := h.getOwned(gctx, uri.ID); !ok {
		return
	}

	result, err := h.service.AddFunds(ctx, uri.ID, req.Amount, req.Currency, req.Description)
	if err != nil {
		switch err {
		case domain.ErrNegativeAmount, currencypkg.ErrUnknownCurrency:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, txResponse{Data: txData{result.Card, result.Transaction}})
}

// Delete handles http request to delete a card.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	err := h.service.Delete(ctx, req.ID, authPayload.Username, authPayload.Role)
	if err != nil {
		switch err {
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrCardOwnerMismatch:
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		case domain.ErrOutstandingBalance:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}

type statementRequest struct {
	Currency string `form:"currency" binding:"omitempty,currency"`
}

type statementData struct {
	Statement statementservice.Statement `json:"statement"`
}
type statementResponse struct {
	Data statementData `json:"data,omitempty"`
}

// Statement handles http request to generate the card's monthly statement.
func (h *Handler) Statement(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	var req statementRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	card, ok := h.getOwned(gctx, uri.ID)
	if !ok {
		return
	}

	displayCurrency := req.Currency
	if displayCurrency == "" {
		displayCurrency = card.Currency
	}

	statement, err := h.statements.Generate(ctx, uri.ID, displayCurrency, time.Now())
	if err != nil {
		switch err {
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrNotCreditCard, currencypkg.ErrUnknownCurrency:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statementResponse{Data: statementData{statement}})
}

type interestData struct {
	Card     domain.Card     `json:"card"`
	Interest decimal.Decimal `json:"interest"`
}
type interestResponse struct {
	Data interestData `json:"data,omitempty"`
}

// ApplyInterest handles http request to accrue credit card interest as of
// now. The route is restricted to admins by middleware.
func (h *Handler) ApplyInterest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindErrMsg(err)})

		return
	}

	card, interest, err := h.service.ApplyInterest(ctx, uri.ID, time.Now())
	if err != nil {
		switch err {
		case domain.ErrCardNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrNotCreditCard:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, interestResponse{Data: interestData{card, interest}})
}
