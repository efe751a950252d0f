package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/enum"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
)

type WalletDomain interface {
	Purchase(xcontext.Context, *model.PurchaseGoldRequest) (*model.PurchaseGoldResponse, error)
	CashOut(xcontext.Context, *model.CashOutGoldRequest) (*model.CashOutGoldResponse, error)
	GetTransactions(xcontext.Context, *model.GetTransactionsRequest) (*model.GetTransactionsResponse, error)
}

type walletDomain struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
}

func NewWalletDomain(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
) *walletDomain {
	return &walletDomain{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

func (d *walletDomain) Purchase(
	ctx xcontext.Context, req *model.PurchaseGoldRequest,
) (*model.PurchaseGoldResponse, error) {
	if req.Amount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Amount must be positive")
	}

	userID := xcontext.GetRequestUserID(ctx)

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.userRepo.IncreaseBalance(ctx, userID, req.Amount, 0); err != nil {
		ctx.Logger().Errorf("Cannot increase the balance: %v", err)
		return nil, errorx.Unknown
	}

	err := d.transactionRepo.Create(ctx, &entity.Transaction{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: userID,
		Type:   entity.TransactionPurchase,
		Amount: req.Amount,
		Note:   fmt.Sprintf("Purchased %d gold", req.Amount),
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot create purchase transaction: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.PurchaseGoldResponse{Gold: user.Gold}, nil
}

func (d *walletDomain) CashOut(
	ctx xcontext.Context, req *model.CashOutGoldRequest,
) (*model.CashOutGoldResponse, error) {
	goldCfg := ctx.Configs().Gold
	userID := xcontext.GetRequestUserID(ctx)

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if user.Gold < goldCfg.MinCashOut {
		return nil, errorx.New(errorx.Unavailable,
			"Need at least %d gold to cash out", goldCfg.MinCashOut)
	}

	// Only whole units are cashed out, the remainder stays on the balance.
	eligible := user.Gold / goldCfg.CashOutUnit * goldCfg.CashOutUnit
	payout := eligible / goldCfg.CashOutUnit * goldCfg.PayoutPerUnit

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.userRepo.IncreaseBalance(ctx, userID, -eligible, 0); err != nil {
		ctx.Logger().Errorf("Cannot decrease the balance: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Insufficient balance")
	}

	err = d.transactionRepo.Create(ctx, &entity.Transaction{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: userID,
		Type:   entity.TransactionCashOut,
		Amount: -eligible,
		Note:   fmt.Sprintf("Cashed out %d gold for a payout of %d", eligible, payout),
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot create cash out transaction: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()

	return &model.CashOutGoldResponse{
		Payout: payout,
		Gold:   user.Gold - eligible,
	}, nil
}

func (d *walletDomain) GetTransactions(
	ctx xcontext.Context, req *model.GetTransactionsRequest,
) (*model.GetTransactionsResponse, error) {
	apiCfg := ctx.Configs().ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	var types []entity.TransactionType
	if req.Type != "" {
		transactionType, err := enum.ToEnum[entity.TransactionType](req.Type)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid transaction type %s", req.Type)
		}

		types = []entity.TransactionType{transactionType}
	}

	userID := xcontext.GetRequestUserID(ctx)
	transactions, err := d.transactionRepo.GetListByUser(ctx, userID, types, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get transactions: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Transaction{}
	for i := range transactions {
		resp = append(resp, model.ConvertTransaction(&transactions[i]))
	}

	return &model.GetTransactionsResponse{
		Transactions: resp,
		Gold:         user.Gold,
	}, nil
}
