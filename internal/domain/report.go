package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/peerquest/backend/internal/common"
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/enum"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ReportDomain interface {
	Create(xcontext.Context, *model.CreateReportRequest) (*model.CreateReportResponse, error)
	GetList(xcontext.Context, *model.GetReportsRequest) (*model.GetReportsResponse, error)
	Review(xcontext.Context, *model.ReviewReportRequest) (*model.ReviewReportResponse, error)
}

type reportDomain struct {
	reportRepo         repository.ReportRepository
	userRepo           repository.UserRepository
	questRepo          repository.QuestRepository
	guildRepo          repository.GuildRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewReportDomain(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	questRepo repository.QuestRepository,
	guildRepo repository.GuildRepository,
) *reportDomain {
	return &reportDomain{
		reportRepo:         reportRepo,
		userRepo:           userRepo,
		questRepo:          questRepo,
		guildRepo:          guildRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *reportDomain) Create(
	ctx xcontext.Context, req *model.CreateReportRequest,
) (*model.CreateReportResponse, error) {
	if req.Reason == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty reason")
	}

	target, err := enum.ToEnum[entity.ReportTarget](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid report type %s", req.Type)
	}

	targetName, err := d.getTargetName(ctx, target, req.TargetID)
	if err != nil {
		return nil, err
	}

	report := &entity.Report{
		Base:       entity.Base{ID: uuid.NewString()},
		Type:       target,
		TargetID:   req.TargetID,
		TargetName: targetName,
		Reason:     req.Reason,
		ReportedBy: xcontext.GetRequestUserID(ctx),
		Status:     entity.ReportPending,
	}

	if err := d.reportRepo.Create(ctx, report); err != nil {
		ctx.Logger().Errorf("Cannot create report: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateReportResponse{ID: report.ID}, nil
}

func (d *reportDomain) GetList(
	ctx xcontext.Context, req *model.GetReportsRequest,
) (*model.GetReportsResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		ctx.Logger().Debugf("Permission denied when getting reports: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

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

	var status []entity.ReportStatus
	if req.Status != "" {
		reportStatus, err := enum.ToEnum[entity.ReportStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		status = []entity.ReportStatus{reportStatus}
	}

	reports, err := d.reportRepo.GetList(ctx, status, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get reports: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Report{}
	for i := range reports {
		resp = append(resp, model.ConvertReport(&reports[i]))
	}

	return &model.GetReportsResponse{Reports: resp}, nil
}

func (d *reportDomain) Review(
	ctx xcontext.Context, req *model.ReviewReportRequest,
) (*model.ReviewReportResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		ctx.Logger().Debugf("Permission denied when reviewing report: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	var status entity.ReportStatus
	switch req.Action {
	case "resolve":
		status = entity.ReportResolved
	case "dismiss":
		status = entity.ReportDismissed
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid action %s", req.Action)
	}

	if _, err := d.reportRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found report")
		}

		ctx.Logger().Errorf("Cannot get report: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.reportRepo.UpdateStatusByID(ctx, req.ID, status); err != nil {
		ctx.Logger().Debugf("Cannot review report: %v", err)
		return nil, errorx.New(errorx.BadRequest, "The report is already reviewed")
	}

	return &model.ReviewReportResponse{}, nil
}

func (d *reportDomain) getTargetName(
	ctx xcontext.Context, target entity.ReportTarget, targetID string,
) (string, error) {
	var name string
	var err error
	switch target {
	case entity.ReportTargetUser:
		var user *entity.User
		if user, err = d.userRepo.GetByID(ctx, targetID); err == nil {
			name = user.Name
		}

	case entity.ReportTargetQuest:
		var quest *entity.Quest
		if quest, err = d.questRepo.GetByID(ctx, targetID); err == nil {
			name = quest.Title
		}

	case entity.ReportTargetGuild:
		var guild *entity.Guild
		if guild, err = d.guildRepo.GetByID(ctx, targetID); err == nil {
			name = guild.Name
		}
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errorx.New(errorx.NotFound, "Not found the reported %s", target)
		}

		ctx.Logger().Errorf("Cannot get the reported %s: %v", target, err)
		return "", errorx.Unknown
	}

	return name, nil
}
