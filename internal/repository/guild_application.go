package repository

import (
	"fmt"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
)

type GuildApplicationRepository interface {
	Create(ctx xcontext.Context, data *entity.GuildApplication) error
	GetByID(ctx xcontext.Context, id string) (*entity.GuildApplication, error)
	GetLatestByUserAndGuild(ctx xcontext.Context, userID, guildID string) (*entity.GuildApplication, error)
	GetListByGuild(ctx xcontext.Context, guildID string, status []entity.ApplicationStatus) ([]entity.GuildApplication, error)
	UpdateReviewByID(ctx xcontext.Context, id string, data *entity.GuildApplication) error
	DeleteByGuild(ctx xcontext.Context, guildID string) error
}

type guildApplicationRepository struct{}

func NewGuildApplicationRepository() GuildApplicationRepository {
	return &guildApplicationRepository{}
}

func (r *guildApplicationRepository) Create(ctx xcontext.Context, data *entity.GuildApplication) error {
	return ctx.DB().Create(data).Error
}

func (r *guildApplicationRepository) GetByID(ctx xcontext.Context, id string) (*entity.GuildApplication, error) {
	result := &entity.GuildApplication{}
	if err := ctx.DB().Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildApplicationRepository) GetLatestByUserAndGuild(
	ctx xcontext.Context, userID, guildID string,
) (*entity.GuildApplication, error) {
	result := &entity.GuildApplication{}
	if err := ctx.DB().
		Where("user_id=? AND guild_id=?", userID, guildID).
		Order("created_at DESC").
		Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildApplicationRepository) GetListByGuild(
	ctx xcontext.Context, guildID string, status []entity.ApplicationStatus,
) ([]entity.GuildApplication, error) {
	tx := ctx.DB().Where("guild_id=?", guildID).Order("created_at ASC")
	if len(status) > 0 {
		tx = tx.Where("status IN (?)", status)
	}

	result := []entity.GuildApplication{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildApplicationRepository) UpdateReviewByID(
	ctx xcontext.Context, id string, data *entity.GuildApplication,
) error {
	tx := ctx.DB().Model(&entity.GuildApplication{}).
		Where("id=? AND status=?", id, entity.ApplicationPending).
		Updates(map[string]any{
			"status":      data.Status,
			"reviewer_id": data.ReviewerID,
			"reviewed_at": data.ReviewedAt,
		})
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("application is not pending")
	}

	return nil
}

func (r *guildApplicationRepository) DeleteByGuild(ctx xcontext.Context, guildID string) error {
	return ctx.DB().Delete(&entity.GuildApplication{}, "guild_id=?", guildID).Error
}
