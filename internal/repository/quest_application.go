package repository

import (
	"fmt"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestApplicationRepository interface {
	Create(ctx xcontext.Context, data *entity.QuestApplication) error
	GetByID(ctx xcontext.Context, id string) (*entity.QuestApplication, error)
	GetByUserAndQuest(ctx xcontext.Context, userID, questID string) (*entity.QuestApplication, error)
	GetListByQuest(ctx xcontext.Context, questID string) ([]entity.QuestApplication, error)
	UpdateReviewByID(ctx xcontext.Context, id string, data *entity.QuestApplication) error
	RejectPendingByQuest(ctx xcontext.Context, questID, exceptID, reviewerID string) error
	DeleteByQuest(ctx xcontext.Context, questID string) error
}

type questApplicationRepository struct{}

func NewQuestApplicationRepository() QuestApplicationRepository {
	return &questApplicationRepository{}
}

func (r *questApplicationRepository) Create(ctx xcontext.Context, data *entity.QuestApplication) error {
	return ctx.DB().Create(data).Error
}

func (r *questApplicationRepository) GetByID(ctx xcontext.Context, id string) (*entity.QuestApplication, error) {
	result := &entity.QuestApplication{}
	if err := ctx.DB().Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questApplicationRepository) GetByUserAndQuest(
	ctx xcontext.Context, userID, questID string,
) (*entity.QuestApplication, error) {
	result := &entity.QuestApplication{}
	if err := ctx.DB().
		Where("user_id=? AND quest_id=?", userID, questID).
		Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questApplicationRepository) GetListByQuest(
	ctx xcontext.Context, questID string,
) ([]entity.QuestApplication, error) {
	result := []entity.QuestApplication{}
	if err := ctx.DB().
		Where("quest_id=?", questID).
		Order("created_at ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questApplicationRepository) UpdateReviewByID(
	ctx xcontext.Context, id string, data *entity.QuestApplication,
) error {
	tx := ctx.DB().Model(&entity.QuestApplication{}).
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

// RejectPendingByQuest rejects every pending application of the quest except
// the given one in a single statement.
func (r *questApplicationRepository) RejectPendingByQuest(
	ctx xcontext.Context, questID, exceptID, reviewerID string,
) error {
	return ctx.DB().Model(&entity.QuestApplication{}).
		Where("quest_id=? AND id<>? AND status=?", questID, exceptID, entity.ApplicationPending).
		Updates(map[string]any{
			"status":      entity.ApplicationRejected,
			"reviewer_id": reviewerID,
			"reviewed_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}).Error
}

func (r *questApplicationRepository) DeleteByQuest(ctx xcontext.Context, questID string) error {
	return ctx.DB().Delete(&entity.QuestApplication{}, "quest_id=?", questID).Error
}
