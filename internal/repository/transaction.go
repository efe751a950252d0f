package repository

import (
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
)

type TransactionRepository interface {
	Create(ctx xcontext.Context, data *entity.Transaction) error
	GetListByUser(ctx xcontext.Context, userID string, types []entity.TransactionType, offset, limit int) ([]entity.Transaction, error)
}

type transactionRepository struct{}

func NewTransactionRepository() TransactionRepository {
	return &transactionRepository{}
}

func (r *transactionRepository) Create(ctx xcontext.Context, data *entity.Transaction) error {
	return ctx.DB().Create(data).Error
}

func (r *transactionRepository) GetListByUser(
	ctx xcontext.Context, userID string, types []entity.TransactionType, offset, limit int,
) ([]entity.Transaction, error) {
	tx := ctx.DB().
		Where("user_id=?", userID).
		Offset(offset).Limit(limit).
		Order("created_at DESC")

	if len(types) > 0 {
		tx = tx.Where("type IN (?)", types)
	}

	result := []entity.Transaction{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
