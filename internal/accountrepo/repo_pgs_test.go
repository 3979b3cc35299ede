package accountrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-dana/core-bank/internal/domain"
	"github.com/go-dana/core-bank/pkg/configpkg"
	"github.com/go-dana/core-bank/pkg/randompkg"
)

var testRepo *RepoPGS

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomAccount(t *testing.T) domain.Account {
	arg := domain.CreateAccountParams{
		Owner:                 randompkg.Owner(),
		Type:                  domain.AccountCurrent,
		Currency:              randompkg.Currency(),
		InitialBalance:        randompkg.MoneyAmountBetween(1_000, 10_000).Round(2),
		DailyTransactionLimit: decimal.NewFromInt(1_000),
	}

	account, err := testRepo.Create(context.Background(), uuid.NewString(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, account)

	require.Equal(t, arg.Owner, account.Owner)
	require.Equal(t, arg.Type, account.Type)
	require.Equal(t, arg.Currency, account.Currency)
	require.True(t, account.Balance.Equal(arg.InitialBalance))
	require.True(t, account.AverageDailyBalance.Equal(arg.InitialBalance))
	require.NotEmpty(t, account.ID)
	require.NotZero(t, account.CreatedAt)

	return account
}

func TestCreate(t *testing.T) {
	createRandomAccount(t)
}

func TestGet(t *testing.T) {
	account1 := createRandomAccount(t)

	account2, err := testRepo.Get(context.Background(), account1.ID)
	require.NoError(t, err)
	require.NotEmpty(t, account2)

	require.Equal(t, account1.ID, account2.ID)
	require.Equal(t, account1.Owner, account2.Owner)
	require.True(t, account1.Balance.Equal(account2.Balance))
	require.Equal(t, account1.Currency, account2.Currency)
	require.WithinDuration(t, account1.CreatedAt, account2.CreatedAt, time.Second)
}

func TestGetNotFound(t *testing.T) {
	_, err := testRepo.Get(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestList(t *testing.T) {
	var lastAccount domain.Account
	for i := 0; i < 5; i++ {
		lastAccount = createRandomAccount(t)
	}

	accounts, err := testRepo.List(context.Background(), lastAccount.Owner, 5, 0)
	require.NoError(t, err)
	require.NotEmpty(t, accounts)

	for _, account := range accounts {
		require.Equal(t, lastAccount.Owner, account.Owner)
	}
}

func TestListByType(t *testing.T) {
	savings, err := testRepo.Create(context.Background(), uuid.NewString(), domain.CreateAccountParams{
		Owner:                 randompkg.Owner(),
		Type:                  domain.AccountSavings,
		Currency:              randompkg.Currency(),
		InitialBalance:        decimal.NewFromInt(500),
		AnnualInterestRate:    decimal.NewFromInt(5),
		DailyTransactionLimit: decimal.NewFromInt(1_000),
	})
	require.NoError(t, err)

	found := false

	for offset := int32(0); !found; offset += 100 {
		accounts, err := testRepo.ListByType(context.Background(), domain.AccountSavings, 100, offset)
		require.NoError(t, err)

		if len(accounts) == 0 {
			break
		}

		for _, account := range accounts {
			require.Equal(t, domain.AccountSavings, account.Type)

			if account.ID == savings.ID {
				found = true
			}
		}
	}

	require.True(t, found)
}

func TestSetBalance(t *testing.T) {
	account := createRandomAccount(t)
	newBalance := decimal.NewFromInt(250)

	updated, err := testRepo.SetBalance(context.Background(), account.ID, newBalance)
	require.NoError(t, err)
	require.True(t, updated.Balance.Equal(newBalance))
}

func TestSetBalanceNoOverdraft(t *testing.T) {
	account := createRandomAccount(t)

	_, err := testRepo.SetBalance(context.Background(), account.ID, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestApplyInterest(t *testing.T) {
	account := createRandomAccount(t)

	newBalance := account.Balance.Add(decimal.NewFromInt(10))
	asOf := time.Now().UTC()

	updated, err := testRepo.ApplyInterest(context.Background(), account.ID, newBalance, newBalance, asOf)
	require.NoError(t, err)
	require.True(t, updated.Balance.Equal(newBalance))
	require.True(t, updated.AverageDailyBalance.Equal(newBalance))
	require.WithinDuration(t, asOf, updated.LastInterestAt, time.Second)
}

func TestDelete(t *testing.T) {
	account := createRandomAccount(t)

	_, err := testRepo.SetBalance(context.Background(), account.ID, decimal.Zero)
	require.NoError(t, err)

	err = testRepo.Delete(context.Background(), account.ID)
	require.NoError(t, err)

	_, err = testRepo.Get(context.Background(), account.ID)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	err := testRepo.Delete(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}
