package accountservice

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

func randomAccount(balance string) domain.Account {
	return domain.Account{
		ID:                    uuid.NewString(),
		Owner:                 randompkg.Owner(),
		Type:                  domain.AccountCurrent,
		Currency:              currencypkg.EUR,
		Balance:               decimal.RequireFromString(balance),
		DailyTransactionLimit: decimal.RequireFromString("1000.00"),
		CreatedAt:             time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreate(t *testing.T) {
	testOwner := randompkg.Owner()
	testConfig := domain.DefaultSystemConfig()

	testCases := []struct {
		name          string
		arg           domain.CreateAccountParams
		buildStubs    func(repo *MockRepo, config *MockConfig)
		checkResponse func(res domain.Account, err error)
	}{
		{
			name: "InvalidType",
			arg: domain.CreateAccountParams{
				Owner:    testOwner,
				Type:     "CHECKING",
				Currency: currencypkg.EUR,
			},
			buildStubs: func(repo *MockRepo, config *MockConfig) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidAccountType)
			},
		},
		{
			name: "UnknownCurrency",
			arg: domain.CreateAccountParams{
				Owner:    testOwner,
				Type:     domain.AccountCurrent,
				Currency: "XXX",
			},
			buildStubs: func(repo *MockRepo, config *MockConfig) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, currencypkg.ErrUnknownCurrency)
			},
		},
		{
			name: "NegativeInitialBalance",
			arg: domain.CreateAccountParams{
				Owner:          testOwner,
				Type:           domain.AccountCurrent,
				Currency:       currencypkg.EUR,
				InitialBalance: decimal.RequireFromString("-1"),
			},
			buildStubs: func(repo *MockRepo, config *MockConfig) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrNegativeAmount)
			},
		},
		{
			name: "ConfigErr",
			arg: domain.CreateAccountParams{
				Owner:    testOwner,
				Type:     domain.AccountCurrent,
				Currency: currencypkg.EUR,
			},
			buildStubs: func(repo *MockRepo, config *MockConfig) {
				config.EXPECT().Get(gomock.Any()).
					Times(1).
					Return(domain.SystemConfig{}, errorspkg.ErrInternal)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Account, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
		{
			name: "DefaultDailyLimit",
			arg: domain.CreateAccountParams{
				Owner:    testOwner,
				Type:     domain.AccountCurrent,
				Currency: currencypkg.EUR,
			},
			buildStubs: func(repo *MockRepo, config *MockConfig) {
				config.EXPECT().Get(gomock.Any()).
					Times(1).
					Return(testConfig, nil)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(domain.CreateAccountParams{})).
					Times(1).
					DoAndReturn(func(_ context.Context, id string, arg domain.CreateAccountParams) (domain.Account, error) {
						require.True(t, arg.DailyTransactionLimit.Equal(testConfig.DailyTransactionLimit))
						return domain.Account{ID: id, Owner: arg.Owner}, nil
					})
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, testOwner, res.Owner)
				require.NotEmpty(t, res.ID)
			},
		},
		{
			name: "DefaultSavingsRate",
			arg: domain.CreateAccountParams{
				Owner:                 testOwner,
				Type:                  domain.AccountSavings,
				Currency:              currencypkg.EUR,
				DailyTransactionLimit: decimal.RequireFromString("500"),
			},
			buildStubs: func(repo *MockRepo, config *MockConfig) {
				config.EXPECT().Get(gomock.Any()).
					Times(1).
					Return(testConfig, nil)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(domain.CreateAccountParams{})).
					Times(1).
					DoAndReturn(func(_ context.Context, id string, arg domain.CreateAccountParams) (domain.Account, error) {
						require.True(t, arg.AnnualInterestRate.Equal(testConfig.GlobalInterestRate))
						return domain.Account{ID: id, Owner: arg.Owner, Type: arg.Type}, nil
					})
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.AccountSavings, res.Type)
			},
		},
		{
			name: "OK",
			arg: domain.CreateAccountParams{
				Owner:                 testOwner,
				Type:                  domain.AccountSavings,
				Currency:              currencypkg.USD,
				InitialBalance:        decimal.RequireFromString("250.555"),
				AnnualInterestRate:    decimal.RequireFromString("3"),
				DailyTransactionLimit: decimal.RequireFromString("500"),
			},
			buildStubs: func(repo *MockRepo, config *MockConfig) {
				config.EXPECT().Get(gomock.Any()).Times(0)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(domain.CreateAccountParams{})).
					Times(1).
					DoAndReturn(func(_ context.Context, id string, arg domain.CreateAccountParams) (domain.Account, error) {
						require.Equal(t, "250.56", arg.InitialBalance.String())
						require.Equal(t, "500.00", arg.DailyTransactionLimit.StringFixed(2))
						return domain.Account{ID: id, Owner: arg.Owner, Type: arg.Type}, nil
					})
			},
			checkResponse: func(res domain.Account, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.AccountSavings, res.Type)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			ledger := NewMockLedger(ctrl)
			journal := NewMockJournal(ctrl)
			config := NewMockConfig(ctrl)
			service := New(repo, ledger, journal, config)

			tc.buildStubs(repo, config)

			tc.checkResponse(service.Create(context.Background(), tc.arg))
		})
	}
}

func TestDelete(t *testing.T) {
	testAccount := randomAccount("0")

	testCases := []struct {
		name    string
		wantErr error
	}{
		{name: "NotFound", wantErr: domain.ErrAccountNotFound},
		{name: "NonZeroBalance", wantErr: domain.ErrNonZeroBalance},
		{name: "PendingTransactions", wantErr: domain.ErrPendingTransactions},
		{name: "OK", wantErr: nil},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := NewMockLedger(ctrl)
			ledger.EXPECT().
				DeleteAccount(gomock.Any(), gomock.Eq(testAccount.ID)).
				Times(1).
				Return(tc.wantErr)

			service := New(NewMockRepo(ctrl), ledger, NewMockJournal(ctrl), NewMockConfig(ctrl))

			err := service.Delete(context.Background(), testAccount.ID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDepositWithdraw(t *testing.T) {
	testAccount := randomAccount("1000")
	testResult := domain.AccountTxResult{
		Account: testAccount,
		Transaction: domain.Transaction{
			ID:       uuid.NewString(),
			Type:     domain.TransactionDeposit,
			SourceID: testAccount.ID,
			Status:   domain.StatusCompleted,
		},
	}

	t.Run("DepositRejectsNonPositive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := NewMockLedger(ctrl)
		ledger.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		service := New(NewMockRepo(ctrl), ledger, NewMockJournal(ctrl), NewMockConfig(ctrl))

		_, err := service.Deposit(context.Background(), testAccount.ID, decimal.Zero, "salary")
		require.ErrorIs(t, err, domain.ErrNegativeAmount)
	})

	t.Run("DepositRoundsAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := NewMockLedger(ctrl)
		ledger.EXPECT().
			Deposit(gomock.Any(), gomock.Eq(testAccount.ID), gomock.Any(), gomock.Eq("salary")).
			Times(1).
			DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal, _ string) (domain.AccountTxResult, error) {
				require.Equal(t, "10.56", amount.String())
				return testResult, nil
			})
		service := New(NewMockRepo(ctrl), ledger, NewMockJournal(ctrl), NewMockConfig(ctrl))

		res, err := service.Deposit(context.Background(), testAccount.ID, decimal.RequireFromString("10.555"), "salary")
		require.NoError(t, err)
		require.Equal(t, testResult, res)
	})

	t.Run("WithdrawRejectsNegative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := NewMockLedger(ctrl)
		ledger.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		service := New(NewMockRepo(ctrl), ledger, NewMockJournal(ctrl), NewMockConfig(ctrl))

		_, err := service.Withdraw(context.Background(), testAccount.ID, decimal.RequireFromString("-5"), "rent")
		require.ErrorIs(t, err, domain.ErrNegativeAmount)
	})

	t.Run("WithdrawDelegates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := NewMockLedger(ctrl)
		ledger.EXPECT().
			Withdraw(gomock.Any(), gomock.Eq(testAccount.ID), gomock.Any(), gomock.Eq("rent")).
			Times(1).
			Return(testResult, nil)
		service := New(NewMockRepo(ctrl), ledger, NewMockJournal(ctrl), NewMockConfig(ctrl))

		res, err := service.Withdraw(context.Background(), testAccount.ID, decimal.RequireFromString("25.00"), "rent")
		require.NoError(t, err)
		require.Equal(t, testResult, res)
	})
}

func TestUpdateBalance(t *testing.T) {
	testAccount := randomAccount("100")

	t.Run("RejectsNegative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockRepo(ctrl)
		repo.EXPECT().SetBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		service := New(repo, NewMockLedger(ctrl), NewMockJournal(ctrl), NewMockConfig(ctrl))

		_, err := service.UpdateBalance(context.Background(), testAccount.ID, decimal.RequireFromString("-0.01"))
		require.ErrorIs(t, err, domain.ErrNegativeAmount)
	})

	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockRepo(ctrl)
		repo.EXPECT().
			SetBalance(gomock.Any(), gomock.Eq(testAccount.ID), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, _ string, balance decimal.Decimal) (domain.Account, error) {
				require.Equal(t, "55.13", balance.String())
				updated := testAccount
				updated.Balance = balance
				return updated, nil
			})
		service := New(repo, NewMockLedger(ctrl), NewMockJournal(ctrl), NewMockConfig(ctrl))

		res, err := service.UpdateBalance(context.Background(), testAccount.ID, decimal.RequireFromString("55.125"))
		require.NoError(t, err)
		require.Equal(t, "55.13", res.Balance.String())
	})
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testOwner := randompkg.Owner()
	testAccounts := []domain.Account{randomAccount("10"), randomAccount("20")}

	repo := NewMockRepo(ctrl)
	repo.EXPECT().
		List(gomock.Any(), gomock.Eq(testOwner), gomock.Eq(int32(5)), gomock.Eq(int32(10))).
		Times(1).
		Return(testAccounts, nil)
	service := New(repo, NewMockLedger(ctrl), NewMockJournal(ctrl), NewMockConfig(ctrl))

	res, err := service.List(context.Background(), testOwner, 5, 3)
	require.NoError(t, err)
	require.Equal(t, testAccounts, res)
}

func TestTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testAccount := randomAccount("100.00")
	from := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC)

	testTransactions := []domain.Transaction{
		{
			ID:       uuid.NewString(),
			Type:     domain.TransactionDeposit,
			Amount:   decimal.RequireFromString("25.00"),
			Currency: testAccount.Currency,
			Status:   domain.StatusCompleted,
		},
	}

	repo := NewMockRepo(ctrl)
	journal := NewMockJournal(ctrl)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Eq(testAccount.ID)).
		Times(1).
		Return(testAccount, nil)
	journal.EXPECT().
		ListByReference(gomock.Any(), gomock.Eq(testAccount.ID), gomock.Eq(from), gomock.Eq(to)).
		Times(1).
		Return(testTransactions, nil)

	service := New(repo, NewMockLedger(ctrl), journal, NewMockConfig(ctrl))

	res, err := service.Transactions(context.Background(), testAccount.ID, from, to)
	require.NoError(t, err)
	require.Equal(t, testTransactions, res)
}

func TestTransactionsAccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	journal := NewMockJournal(ctrl)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Times(1).
		Return(domain.Account{}, domain.ErrAccountNotFound)
	journal.EXPECT().
		ListByReference(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	service := New(repo, NewMockLedger(ctrl), journal, NewMockConfig(ctrl))

	res, err := service.Transactions(context.Background(), uuid.NewString(), time.Time{}, time.Time{})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	require.Nil(t, res)
}
