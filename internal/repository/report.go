package repository

import (
	"fmt"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
)

type ReportRepository interface {
	Create(ctx xcontext.Context, data *entity.Report) error
	GetByID(ctx xcontext.Context, id string) (*entity.Report, error)
	GetList(ctx xcontext.Context, status []entity.ReportStatus, offset, limit int) ([]entity.Report, error)
	UpdateStatusByID(ctx xcontext.Context, id string, status entity.ReportStatus) error
}

type reportRepository struct{}

func NewReportRepository() ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(ctx xcontext.Context, data *entity.Report) error {
	return ctx.DB().Create(data).Error
}

func (r *reportRepository) GetByID(ctx xcontext.Context, id string) (*entity.Report, error) {
	result := &entity.Report{}
	if err := ctx.DB().Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *reportRepository) GetList(
	ctx xcontext.Context, status []entity.ReportStatus, offset, limit int,
) ([]entity.Report, error) {
	tx := ctx.DB().Offset(offset).Limit(limit).Order("created_at DESC")
	if len(status) > 0 {
		tx = tx.Where("status IN (?)", status)
	}

	result := []entity.Report{}
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *reportRepository) UpdateStatusByID(
	ctx xcontext.Context, id string, status entity.ReportStatus,
) error {
	tx := ctx.DB().Model(&entity.Report{}).
		Where("id=? AND status=?", id, entity.ReportPending).
		Update("status", status)
	if err := tx.Error; err != nil {
		return err
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("report is not pending")
	}

	return nil
}
