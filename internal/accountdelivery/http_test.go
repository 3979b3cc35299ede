package accountdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/internal/middleware"
	"github.com/go-dana/core-bank/pkg/currencypkg"
	"github.com/go-dana/core-bank/pkg/randompkg"
	"github.com/go-dana/core-bank/pkg/tokenpkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", ValidCurrency); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

func newTestServer(t *testing.T, service Service, tokenMaker tokenpkg.Maker) *gin.Engine {
	t.Helper()

	handler := NewHandler(service)

	server := gin.New()
	authRoutes := server.Group("/").Use(middleware.Auth(tokenMaker))

	authRoutes.POST("/accounts", handler.Create)
	authRoutes.GET("/accounts/:id", handler.Get)
	authRoutes.POST("/accounts/:id/deposits", handler.Deposit)

	return server
}

func newTokenMaker(t *testing.T) tokenpkg.Maker {
	t.Helper()

	tokenMaker, err := tokenpkg.NewJWTMaker(randompkg.String(32))
	require.NoError(t, err)

	return tokenMaker
}

func randomAccount(owner string) domain.Account {
	return domain.Account{
		ID:                    uuid.NewString(),
		Owner:                 owner,
		Type:                  domain.AccountCurrent,
		Currency:              currencypkg.EUR,
		Balance:               decimal.RequireFromString("1000.00"),
		DailyTransactionLimit: decimal.RequireFromString("1000.00"),
		CreatedAt:             time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreateAPI(t *testing.T) {
	username := randompkg.Owner()
	account := randomAccount(username)
	tokenMaker := newTokenMaker(t)

	testCases := []struct {
		name           string
		body           gin.H
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			body: gin.H{
				"type":     "CURRENT",
				"currency": account.Currency,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, middleware.AuthTypeBearer, username, tokenpkg.RoleUser, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NoAuthorization",
			body: gin.H{
				"type":     "CURRENT",
				"currency": account.Currency,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "InvalidCurrency",
			body: gin.H{
				"type":     "CURRENT",
				"currency": "XYZ",
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, middleware.AuthTypeBearer, username, tokenpkg.RoleUser, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "InvalidType",
			body: gin.H{
				"type":     "CHECKING",
				"currency": account.Currency,
			},
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, middleware.AuthTypeBearer, username, tokenpkg.RoleUser, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(t, service, tokenMaker)
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
			require.NoError(t, err)

			require.NoError(t, tc.setupAuth(t, request))
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestGetAPI(t *testing.T) {
	username := randompkg.Owner()
	account := randomAccount(username)
	tokenMaker := newTokenMaker(t)

	testCases := []struct {
		name           string
		accountID      string
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name:      "OK",
			accountID: account.ID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, middleware.AuthTypeBearer, username, tokenpkg.RoleUser, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "NotFound",
			accountID: account.ID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, middleware.AuthTypeBearer, username, tokenpkg.RoleUser, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:      "NotOwner",
			accountID: account.ID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, middleware.AuthTypeBearer, "someone-else", tokenpkg.RoleUser, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:      "AdminCanRead",
			accountID: account.ID,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, middleware.AuthTypeBearer, "back-office", tokenpkg.RoleAdmin, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "InvalidID",
			accountID: "not-a-uuid",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, middleware.AuthTypeBearer, username, tokenpkg.RoleUser, time.Minute)
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(t, service, tokenMaker)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/accounts/"+tc.accountID, nil)
			require.NoError(t, err)

			require.NoError(t, tc.setupAuth(t, request))
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestDepositAPI(t *testing.T) {
	username := randompkg.Owner()
	account := randomAccount(username)
	tokenMaker := newTokenMaker(t)

	result := domain.AccountTxResult{
		Account: account,
		Transaction: domain.Transaction{
			ID:            uuid.NewString(),
			Type:          domain.TransactionDeposit,
			Amount:        decimal.RequireFromString("50.00"),
			DestinationID: account.ID,
			Currency:      account.Currency,
			Status:        domain.StatusCompleted,
		},
	}

	testCases := []struct {
		name           string
		body           gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			body: gin.H{"amount": "50.00", "description": "salary"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
				service.EXPECT().
					Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Any(), gomock.Eq("salary")).
					Times(1).
					Return(result, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NegativeAmount",
			body: gin.H{"amount": "-50.00"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
				service.EXPECT().
					Deposit(gomock.Any(), gomock.Eq(account.ID), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.AccountTxResult{}, domain.ErrNegativeAmount)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "MissingAmount",
			body: gin.H{"description": "salary"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				service.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(t, service, tokenMaker)
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/accounts/"+account.ID+"/deposits", bytes.NewReader(body))
			require.NoError(t, err)

			require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, username, tokenpkg.RoleUser, time.Minute))
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}
