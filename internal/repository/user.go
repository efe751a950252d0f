package repository

import (
	"fmt"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx xcontext.Context, data *entity.User) error
	GetByID(ctx xcontext.Context, id string) (*entity.User, error)
	GetByIDs(ctx xcontext.Context, ids []string) ([]entity.User, error)
	GetByEmail(ctx xcontext.Context, email string) (*entity.User, error)
	GetByName(ctx xcontext.Context, name string) (*entity.User, error)
	GetList(ctx xcontext.Context, q string, offset, limit int) ([]entity.User, error)
	UpdateByID(ctx xcontext.Context, id string, data *entity.User) error
	IncreaseBalance(ctx xcontext.Context, id string, gold, xp int64) error
	SetBanned(ctx xcontext.Context, id string, banned bool) error
	Count(ctx xcontext.Context) (int64, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx xcontext.Context, data *entity.User) error {
	return ctx.DB().Create(data).Error
}

func (r *userRepository) GetByID(ctx xcontext.Context, id string) (*entity.User, error) {
	var record entity.User
	if err := ctx.DB().Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByIDs(ctx xcontext.Context, ids []string) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var records []entity.User
	if err := ctx.DB().Where("id IN (?)", ids).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *userRepository) GetByEmail(ctx xcontext.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := ctx.DB().Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByName(ctx xcontext.Context, name string) (*entity.User, error) {
	var record entity.User
	if err := ctx.DB().Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetList(ctx xcontext.Context, q string, offset, limit int) ([]entity.User, error) {
	tx := ctx.DB().Offset(offset).Limit(limit).Order("name ASC")
	if q != "" {
		tx = tx.Where("name LIKE ?", "%"+q+"%")
	}

	var records []entity.User
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *userRepository) UpdateByID(ctx xcontext.Context, id string, data *entity.User) error {
	updateMap := map[string]any{}
	if data.Bio != "" {
		updateMap["bio"] = data.Bio
	}

	if data.AvatarURL != "" {
		updateMap["avatar_url"] = data.AvatarURL
	}

	if len(updateMap) == 0 {
		return nil
	}

	return ctx.DB().Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
}

// IncreaseBalance applies signed gold and xp deltas. The update is refused
// when it would drive the gold balance below zero.
func (r *userRepository) IncreaseBalance(ctx xcontext.Context, id string, gold, xp int64) error {
	tx := ctx.DB().Model(&entity.User{}).
		Where("id=? AND gold + ? >= 0", id, gold).
		Updates(map[string]any{
			"gold": gorm.Expr("gold + ?", gold),
			"xp":   gorm.Expr("xp + ?", xp),
		})
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("insufficient balance or user not found")
	}

	return nil
}

func (r *userRepository) SetBanned(ctx xcontext.Context, id string, banned bool) error {
	tx := ctx.DB().Model(&entity.User{}).Where("id=?", id).Update("is_banned", banned)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) Count(ctx xcontext.Context) (int64, error) {
	var count int64
	if err := ctx.DB().Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
