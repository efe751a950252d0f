package domain

import (
	"testing"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newWalletDomainForTest() *walletDomain {
	return NewWalletDomain(
		repository.NewUserRepository(),
		repository.NewTransactionRepository(),
	)
}

func Test_walletDomain_Purchase(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWalletDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	resp, err := d.Purchase(authorizedCtx, &model.PurchaseGoldRequest{Amount: 100})
	require.NoError(t, err)
	require.Equal(t, testutil.User3.Gold+100, resp.Gold)

	transactionRepo := repository.NewTransactionRepository()
	transactions, err := transactionRepo.GetListByUser(
		ctx, testutil.User3.ID, []entity.TransactionType{entity.TransactionPurchase}, 0, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, int64(100), transactions[0].Amount)
}

func Test_walletDomain_Purchase_InvalidAmount(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWalletDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	for _, amount := range []int64{0, -50} {
		_, err := d.Purchase(authorizedCtx, &model.PurchaseGoldRequest{Amount: amount})
		require.Error(t, err)
		require.Equal(t, "Amount must be positive", err.Error())
	}

	// The balance is untouched.
	userRepo := repository.NewUserRepository()
	user, err := userRepo.GetByID(ctx, testutil.User3.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.User3.Gold, user.Gold)
}

func Test_walletDomain_CashOut(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWalletDomainForTest()

	// 750 gold: 700 is cashed out for a payout of 70, 50 stays.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.CashOut(authorizedCtx, &model.CashOutGoldRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(70), resp.Payout)
	require.Equal(t, int64(50), resp.Gold)

	userRepo := repository.NewUserRepository()
	user, err := userRepo.GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, int64(50), user.Gold)

	transactionRepo := repository.NewTransactionRepository()
	transactions, err := transactionRepo.GetListByUser(
		ctx, testutil.User2.ID, []entity.TransactionType{entity.TransactionCashOut}, 0, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, int64(-700), transactions[0].Amount)
}

func Test_walletDomain_CashOut_InsufficientBalance(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWalletDomainForTest()

	// 400 gold is below the minimum of 500.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err := d.CashOut(authorizedCtx, &model.CashOutGoldRequest{})
	require.Error(t, err)
	require.Equal(t, "Need at least 500 gold to cash out", err.Error())

	userRepo := repository.NewUserRepository()
	user, err := userRepo.GetByID(ctx, testutil.User3.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.User3.Gold, user.Gold)
}

func Test_walletDomain_GetTransactions(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newWalletDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := d.CashOut(authorizedCtx, &model.CashOutGoldRequest{})
	require.NoError(t, err)

	resp, err := d.GetTransactions(authorizedCtx, &model.GetTransactionsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Transactions, 1)
	require.Equal(t, "cash_out", resp.Transactions[0].Type)
	require.Equal(t, int64(50), resp.Gold)

	_, err = d.GetTransactions(authorizedCtx, &model.GetTransactionsRequest{Type: "bribe"})
	require.Error(t, err)
	require.Equal(t, "Invalid transaction type bribe", err.Error())
}
