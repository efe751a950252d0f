package repository

import (
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GuildFilter struct {
	Q              string
	Specialization string
	OwnerID        string
}

type GuildRepository interface {
	Create(ctx xcontext.Context, data *entity.Guild) error
	GetByID(ctx xcontext.Context, id string) (*entity.Guild, error)
	GetByName(ctx xcontext.Context, name string) (*entity.Guild, error)
	GetList(ctx xcontext.Context, filter *GuildFilter, offset, limit int) ([]entity.Guild, error)
	UpdateByID(ctx xcontext.Context, id string, data *entity.Guild) error
	IncreaseMembers(ctx xcontext.Context, id string, delta int) error
	DeleteByID(ctx xcontext.Context, id string) error
}

type guildRepository struct{}

func NewGuildRepository() GuildRepository {
	return &guildRepository{}
}

func (r *guildRepository) Create(ctx xcontext.Context, data *entity.Guild) error {
	return ctx.DB().Create(data).Error
}

func (r *guildRepository) GetByID(ctx xcontext.Context, id string) (*entity.Guild, error) {
	result := &entity.Guild{}
	if err := ctx.DB().Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildRepository) GetByName(ctx xcontext.Context, name string) (*entity.Guild, error) {
	result := &entity.Guild{}
	if err := ctx.DB().Take(result, "name=?", name).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildRepository) GetList(
	ctx xcontext.Context, filter *GuildFilter, offset, limit int,
) ([]entity.Guild, error) {
	tx := ctx.DB().Offset(offset).Limit(limit).Order("created_at DESC")

	if filter.Q != "" {
		tx = tx.Where("name LIKE ? OR description LIKE ?", "%"+filter.Q+"%", "%"+filter.Q+"%")
	}

	if filter.Specialization != "" {
		tx = tx.Where("specialization=?", filter.Specialization)
	}

	if filter.OwnerID != "" {
		tx = tx.Where("owner_id=?", filter.OwnerID)
	}

	var result []entity.Guild
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildRepository) UpdateByID(ctx xcontext.Context, id string, data *entity.Guild) error {
	updateMap := map[string]any{}
	if data.Description != "" {
		updateMap["description"] = data.Description
	}

	if data.Emblem != "" {
		updateMap["emblem"] = data.Emblem
	}

	if data.Specialization != "" {
		updateMap["specialization"] = data.Specialization
	}

	if data.Category != "" {
		updateMap["category"] = data.Category
	}

	if len(updateMap) == 0 {
		return nil
	}

	return ctx.DB().Model(&entity.Guild{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *guildRepository) IncreaseMembers(ctx xcontext.Context, id string, delta int) error {
	tx := ctx.DB().Model(&entity.Guild{}).
		Where("id=? AND members + ? >= 0", id, delta).
		Update("members", gorm.Expr("members + ?", delta))
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *guildRepository) DeleteByID(ctx xcontext.Context, id string) error {
	return ctx.DB().Delete(&entity.Guild{}, "id=?", id).Error
}
