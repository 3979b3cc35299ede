package transferservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/currencypkg"
	"github.com/go-dana/core-bank/pkg/errorspkg"
	"github.com/go-dana/core-bank/pkg/randompkg"
)

func randomAccount(balance, currency string) domain.Account {
	return domain.Account{
		ID:        uuid.NewString(),
		Owner:     randompkg.Owner(),
		Type:      domain.AccountCurrent,
		Currency:  currency,
		Balance:   decimal.RequireFromString(balance),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestTransfer(t *testing.T) {
	testAccount1 := randomAccount("1000", currencypkg.USD)
	testAccount2 := randomAccount("1000", currencypkg.USD)
	testAccount3 := randomAccount("1000", currencypkg.EUR)
	testAmount := decimal.RequireFromString("100.00")

	testTxResult := domain.TransferTxResult{
		Transaction: domain.Transaction{
			ID:            uuid.NewString(),
			Type:          domain.TransactionTransfer,
			Amount:        testAmount,
			SourceID:      testAccount1.ID,
			DestinationID: testAccount2.ID,
			Currency:      testAccount1.Currency,
			Status:        domain.StatusCompleted,
		},
		FromAccount: testAccount1,
		ToAccount:   testAccount2,
	}

	type input struct {
		fromUsername string
		arg          domain.TransferParams
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(ledger *MockLedger, accounts *MockAccountGetter)
		checkResponse func(res domain.TransferTxResult, err error)
	}{
		{
			name: "NegativeAmount",
			input: input{
				fromUsername: testAccount1.Owner,
				arg: domain.TransferParams{
					FromAccountID: testAccount1.ID,
					ToAccountID:   testAccount2.ID,
					Amount:        decimal.RequireFromString("-100"),
				},
			},
			buildStubs: func(ledger *MockLedger, accounts *MockAccountGetter) {
				ledger.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
				accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrNegativeAmount)
			},
		},
		{
			name: "ZeroAmount",
			input: input{
				fromUsername: testAccount1.Owner,
				arg: domain.TransferParams{
					FromAccountID: testAccount1.ID,
					ToAccountID:   testAccount2.ID,
					Amount:        decimal.Zero,
				},
			},
			buildStubs: func(ledger *MockLedger, accounts *MockAccountGetter) {
				ledger.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
				accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrNegativeAmount)
			},
		},
		{
			name: "FromAccountErr",
			input: input{
				fromUsername: testAccount1.Owner,
				arg: domain.TransferParams{
					FromAccountID: testAccount1.ID,
					ToAccountID:   testAccount2.ID,
					Amount:        testAmount,
				},
			},
			buildStubs: func(ledger *MockLedger, accounts *MockAccountGetter) {
				ledger.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount1.ID)).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
		{
			name: "OwnerMismatch",
			input: input{
				fromUsername: testAccount1.Owner,
				arg: domain.TransferParams{
					FromAccountID: testAccount2.ID,
					ToAccountID:   testAccount1.ID,
					Amount:        testAmount,
				},
			},
			buildStubs: func(ledger *MockLedger, accounts *MockAccountGetter) {
				ledger.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount2.ID)).
					Times(1).
					Return(testAccount2, nil)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrAccountOwnerMismatch)
			},
		},
		{
			name: "InsufficientBalance",
			input: input{
				fromUsername: testAccount1.Owner,
				arg: domain.TransferParams{
					FromAccountID: testAccount1.ID,
					ToAccountID:   testAccount2.ID,
					Amount:        decimal.RequireFromString("10000"),
				},
			},
			buildStubs: func(ledger *MockLedger, accounts *MockAccountGetter) {
				ledger.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount1.ID)).
					Times(1).
					Return(testAccount1, nil)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInsufficientBalance)
			},
		},
		{
			name: "ToAccountErr",
			input: input{
				fromUsername: testAccount1.Owner,
				arg: domain.TransferParams{
					FromAccountID: testAccount1.ID,
					ToAccountID:   testAccount2.ID,
					Amount:        testAmount,
				},
			},
			buildStubs: func(ledger *MockLedger, accounts *MockAccountGetter) {
				ledger.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount1.ID)).
					Times(1).
					Return(testAccount1, nil)
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount2.ID)).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
		{
			name: "SameCurrency",
			input: input{
				fromUsername: testAccount1.Owner,
				arg: domain.TransferParams{
					FromAccountID: testAccount1.ID,
					ToAccountID:   testAccount2.ID,
					Amount:        testAmount,
				},
			},
			buildStubs: func(ledger *MockLedger, accounts *MockAccountGetter) {
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount1.ID)).
					Times(1).
					Return(testAccount1, nil)
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount2.ID)).
					Times(1).
					Return(testAccount2, nil)
				ledger.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(domain.TransferParams{
						FromAccountID:   testAccount1.ID,
						ToAccountID:     testAccount2.ID,
						Amount:          testAmount,
						ConvertedAmount: testAmount,
					})).
					Times(1).
					Return(testTxResult, nil)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, testTxResult, res)
			},
		},
		{
			name: "CrossCurrency",
			input: input{
				fromUsername: testAccount1.Owner,
				arg: domain.TransferParams{
					FromAccountID: testAccount1.ID,
					ToAccountID:   testAccount3.ID,
					Amount:        testAmount,
				},
			},
			buildStubs: func(ledger *MockLedger, accounts *MockAccountGetter) {
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount1.ID)).
					Times(1).
					Return(testAccount1, nil)
				accounts.EXPECT().Get(gomock.Any(), gomock.Eq(testAccount3.ID)).
					Times(1).
					Return(testAccount3, nil)
				ledger.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(domain.TransferParams{
						FromAccountID:   testAccount1.ID,
						ToAccountID:     testAccount3.ID,
						Amount:          testAmount,
						ConvertedAmount: decimal.RequireFromString("90.91"),
					})).
					Times(1).
					Return(testTxResult, nil)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, testTxResult, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := NewMockLedger(ctrl)
			accounts := NewMockAccountGetter(ctrl)
			service := New(ledger, accounts, currencypkg.NewConverter(currencypkg.DefaultTable()))

			tc.buildStubs(ledger, accounts)

			tc.checkResponse(service.Transfer(
				context.Background(),
				tc.input.fromUsername,
				tc.input.arg))
		})
	}
}
