package repository

import (
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type QuestFilter struct {
	Q          string
	Category   string
	Difficulty []entity.QuestDifficulty
	Status     []entity.QuestStatus
	PosterID   string
}

type QuestRepository interface {
	Create(ctx xcontext.Context, data *entity.Quest) error
	GetByID(ctx xcontext.Context, id string) (*entity.Quest, error)
	GetList(ctx xcontext.Context, filter *QuestFilter, offset, limit int) ([]entity.Quest, error)
	UpdateByID(ctx xcontext.Context, id string, data *entity.Quest) error
	UpdateStatusByID(ctx xcontext.Context, id string, from, to entity.QuestStatus, data *entity.Quest) error
	DeleteByID(ctx xcontext.Context, id string) error
}

type questRepository struct{}

func NewQuestRepository() QuestRepository {
	return &questRepository{}
}

func (r *questRepository) Create(ctx xcontext.Context, data *entity.Quest) error {
	return ctx.DB().Create(data).Error
}

func (r *questRepository) GetByID(ctx xcontext.Context, id string) (*entity.Quest, error) {
	result := &entity.Quest{}
	if err := ctx.DB().Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questRepository) GetList(
	ctx xcontext.Context, filter *QuestFilter, offset, limit int,
) ([]entity.Quest, error) {
	tx := ctx.DB().Offset(offset).Limit(limit).Order("created_at DESC")

	if filter.Q != "" {
		tx = tx.Where("title LIKE ? OR description LIKE ?", "%"+filter.Q+"%", "%"+filter.Q+"%")
	}

	if filter.Category != "" {
		tx = tx.Where("category=?", filter.Category)
	}

	if len(filter.Difficulty) > 0 {
		tx = tx.Where("difficulty IN (?)", filter.Difficulty)
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	if filter.PosterID != "" {
		tx = tx.Where("poster_id=?", filter.PosterID)
	}

	var result []entity.Quest
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questRepository) UpdateByID(ctx xcontext.Context, id string, data *entity.Quest) error {
	return ctx.DB().Model(&entity.Quest{}).Where("id=?", id).Updates(data).Error
}

// UpdateStatusByID moves a quest from one status to another, optionally
// updating other fields in the same statement. The transition fails with
// ErrRecordNotFound when the quest is not in the expected status, which keeps
// status transitions race free.
func (r *questRepository) UpdateStatusByID(
	ctx xcontext.Context, id string, from, to entity.QuestStatus, data *entity.Quest,
) error {
	updateMap := map[string]any{"status": to}
	if data != nil {
		if data.AssignedTo.Valid {
			updateMap["assigned_to"] = data.AssignedTo
		}

		if data.CompletedAt.Valid {
			updateMap["completed_at"] = data.CompletedAt
		}
	}

	tx := ctx.DB().Model(&entity.Quest{}).
		Where("id=? AND status=?", id, from).
		Updates(updateMap)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *questRepository) DeleteByID(ctx xcontext.Context, id string) error {
	return ctx.DB().Delete(&entity.Quest{}, "id=?", id).Error
}
