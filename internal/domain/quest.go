package domain

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peerquest/backend/internal/common"
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/enum"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
	"github.com/peerquest/backend/pkg/xredis"
	"gorm.io/gorm"
)

const xpLeaderboardKey = "leaderboard:xp"

type QuestDomain interface {
	Create(xcontext.Context, *model.CreateQuestRequest) (*model.CreateQuestResponse, error)
	Get(xcontext.Context, *model.GetQuestRequest) (*model.GetQuestResponse, error)
	GetList(xcontext.Context, *model.GetQuestsRequest) (*model.GetQuestsResponse, error)
	Update(xcontext.Context, *model.UpdateQuestRequest) (*model.UpdateQuestResponse, error)
	Delete(xcontext.Context, *model.DeleteQuestRequest) (*model.DeleteQuestResponse, error)
	Apply(xcontext.Context, *model.ApplyQuestRequest) (*model.ApplyQuestResponse, error)
	GetApplications(xcontext.Context, *model.GetQuestApplicationsRequest) (*model.GetQuestApplicationsResponse, error)
	Approve(xcontext.Context, *model.ApproveQuestApplicationRequest) (*model.ApproveQuestApplicationResponse, error)
	Reject(xcontext.Context, *model.RejectQuestApplicationRequest) (*model.RejectQuestApplicationResponse, error)
	Complete(xcontext.Context, *model.CompleteQuestRequest) (*model.CompleteQuestResponse, error)
	Cancel(xcontext.Context, *model.CancelQuestRequest) (*model.CancelQuestResponse, error)
}

type questDomain struct {
	questRepo          repository.QuestRepository
	applicationRepo    repository.QuestApplicationRepository
	userRepo           repository.UserRepository
	transactionRepo    repository.TransactionRepository
	redisClient        xredis.Client
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewQuestDomain(
	questRepo repository.QuestRepository,
	applicationRepo repository.QuestApplicationRepository,
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	redisClient xredis.Client,
) *questDomain {
	return &questDomain{
		questRepo:          questRepo,
		applicationRepo:    applicationRepo,
		userRepo:           userRepo,
		transactionRepo:    transactionRepo,
		redisClient:        redisClient,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *questDomain) Create(
	ctx xcontext.Context, req *model.CreateQuestRequest,
) (*model.CreateQuestResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if req.Reward < 0 || req.XP < 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow a negative reward")
	}

	difficulty, err := enum.ToEnum[entity.QuestDifficulty](req.Difficulty)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid difficulty %s", req.Difficulty)
	}

	deadline, err := time.Parse(model.DefaultTimeLayout, req.Deadline)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid deadline")
	}

	quest := &entity.Quest{
		Base:        entity.Base{ID: uuid.NewString()},
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  difficulty,
		Reward:      req.Reward,
		XP:          req.XP,
		Status:      entity.QuestOpen,
		PosterID:    xcontext.GetRequestUserID(ctx),
		Deadline:    deadline,
	}

	if err := d.questRepo.Create(ctx, quest); err != nil {
		ctx.Logger().Errorf("Cannot create quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateQuestResponse{ID: quest.ID}, nil
}

func (d *questDomain) Get(
	ctx xcontext.Context, req *model.GetQuestRequest,
) (*model.GetQuestResponse, error) {
	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	poster, err := d.userRepo.GetByID(ctx, quest.PosterID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get the poster: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetQuestResponse{Quest: model.ConvertQuest(quest, poster)}

	// Applications are visible to the poster only.
	if xcontext.GetRequestUserID(ctx) == quest.PosterID {
		applications, err := d.applicationRepo.GetListByQuest(ctx, quest.ID)
		if err != nil {
			ctx.Logger().Errorf("Cannot get applications: %v", err)
			return nil, errorx.Unknown
		}

		for i := range applications {
			resp.Applications = append(resp.Applications, model.ConvertQuestApplication(&applications[i]))
		}
	}

	return resp, nil
}

func (d *questDomain) GetList(
	ctx xcontext.Context, req *model.GetQuestsRequest,
) (*model.GetQuestsResponse, error) {
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

	filter := &repository.QuestFilter{
		Q:        req.Q,
		Category: req.Category,
		PosterID: req.PosterID,
	}

	if req.Difficulty != "" {
		difficulty, err := enum.ToEnum[entity.QuestDifficulty](req.Difficulty)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid difficulty %s", req.Difficulty)
		}

		filter.Difficulty = []entity.QuestDifficulty{difficulty}
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.QuestStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = []entity.QuestStatus{status}
	}

	quests, err := d.questRepo.GetList(ctx, filter, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest list: %v", err)
		return nil, errorx.Unknown
	}

	posterIDs := []string{}
	for i := range quests {
		posterIDs = append(posterIDs, quests[i].PosterID)
	}

	posters, err := d.userRepo.GetByIDs(ctx, posterIDs)
	if err != nil {
		ctx.Logger().Errorf("Cannot get posters: %v", err)
		return nil, errorx.Unknown
	}

	posterMap := map[string]*entity.User{}
	for i := range posters {
		posterMap[posters[i].ID] = &posters[i]
	}

	resp := []model.Quest{}
	for i := range quests {
		resp = append(resp, model.ConvertQuest(&quests[i], posterMap[quests[i].PosterID]))
	}

	return &model.GetQuestsResponse{Quests: resp}, nil
}

func (d *questDomain) Update(
	ctx xcontext.Context, req *model.UpdateQuestRequest,
) (*model.UpdateQuestResponse, error) {
	quest, err := d.getQuestOfRequester(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if quest.Status != entity.QuestOpen {
		return nil, errorx.New(errorx.Unavailable, "Only allow to update an open quest")
	}

	data := &entity.Quest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Reward:      req.Reward,
		XP:          req.XP,
	}

	if req.Difficulty != "" {
		difficulty, err := enum.ToEnum[entity.QuestDifficulty](req.Difficulty)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid difficulty %s", req.Difficulty)
		}

		data.Difficulty = difficulty
	}

	if req.Deadline != "" {
		deadline, err := time.Parse(model.DefaultTimeLayout, req.Deadline)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid deadline")
		}

		data.Deadline = deadline
	}

	if err := d.questRepo.UpdateByID(ctx, quest.ID, data); err != nil {
		ctx.Logger().Errorf("Cannot update quest: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.questRepo.GetByID(ctx, quest.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateQuestResponse{Quest: model.ConvertQuest(updated, nil)}, nil
}

func (d *questDomain) Delete(
	ctx xcontext.Context, req *model.DeleteQuestRequest,
) (*model.DeleteQuestResponse, error) {
	quest, err := d.getQuestOfRequester(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.applicationRepo.DeleteByQuest(ctx, quest.ID); err != nil {
		ctx.Logger().Errorf("Cannot delete applications: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.questRepo.DeleteByID(ctx, quest.ID); err != nil {
		ctx.Logger().Errorf("Cannot delete quest: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()

	return &model.DeleteQuestResponse{}, nil
}

func (d *questDomain) Apply(
	ctx xcontext.Context, req *model.ApplyQuestRequest,
) (*model.ApplyQuestResponse, error) {
	quest, err := d.questRepo.GetByID(ctx, req.QuestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	if quest.Status != entity.QuestOpen {
		return nil, errorx.New(errorx.Unavailable, "Only allow to apply for an open quest")
	}

	userID := xcontext.GetRequestUserID(ctx)
	if quest.PosterID == userID {
		return nil, errorx.New(errorx.BadRequest, "Not allow to apply for your own quest")
	}

	_, err = d.applicationRepo.GetByUserAndQuest(ctx, userID, quest.ID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You have already applied for this quest")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.Logger().Errorf("Cannot get the previous application: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get the applicant: %v", err)
		return nil, errorx.Unknown
	}

	application := &entity.QuestApplication{
		Base:      entity.Base{ID: uuid.NewString()},
		QuestID:   quest.ID,
		UserID:    userID,
		Username:  user.Name,
		AvatarURL: user.AvatarURL,
		Message:   req.Message,
		Status:    entity.ApplicationPending,
	}

	if err := d.applicationRepo.Create(ctx, application); err != nil {
		ctx.Logger().Errorf("Cannot create application: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ApplyQuestResponse{
		ID:     application.ID,
		Status: string(application.Status),
	}, nil
}

func (d *questDomain) GetApplications(
	ctx xcontext.Context, req *model.GetQuestApplicationsRequest,
) (*model.GetQuestApplicationsResponse, error) {
	quest, err := d.getQuestOfRequester(ctx, req.QuestID)
	if err != nil {
		return nil, err
	}

	applications, err := d.applicationRepo.GetListByQuest(ctx, quest.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get applications: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.QuestApplication{}
	for i := range applications {
		resp = append(resp, model.ConvertQuestApplication(&applications[i]))
	}

	return &model.GetQuestApplicationsResponse{Applications: resp}, nil
}

func (d *questDomain) Approve(
	ctx xcontext.Context, req *model.ApproveQuestApplicationRequest,
) (*model.ApproveQuestApplicationResponse, error) {
	application, err := d.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found application")
		}

		ctx.Logger().Errorf("Cannot get application: %v", err)
		return nil, errorx.Unknown
	}

	quest, err := d.getQuestOfRequester(ctx, application.QuestID)
	if err != nil {
		return nil, err
	}

	if application.Status != entity.ApplicationPending {
		return nil, errorx.New(errorx.BadRequest, "The application is already reviewed")
	}

	reviewerID := xcontext.GetRequestUserID(ctx)

	ctx.BeginTx()
	defer ctx.RollbackTx()

	err = d.applicationRepo.UpdateReviewByID(ctx, application.ID, &entity.QuestApplication{
		Status:     entity.ApplicationAccepted,
		ReviewerID: reviewerID,
		ReviewedAt: time.Now(),
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot accept application: %v", err)
		return nil, errorx.New(errorx.BadRequest, "The application is already reviewed")
	}

	if err := d.applicationRepo.RejectPendingByQuest(ctx, quest.ID, application.ID, reviewerID); err != nil {
		ctx.Logger().Errorf("Cannot reject other applications: %v", err)
		return nil, errorx.Unknown
	}

	err = d.questRepo.UpdateStatusByID(ctx, quest.ID, entity.QuestOpen, entity.QuestInProgress,
		&entity.Quest{AssignedTo: sql.NullString{Valid: true, String: application.UserID}})
	if err != nil {
		ctx.Logger().Errorf("Cannot move quest to in-progress: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Only allow to approve applications of an open quest")
	}

	ctx.CommitTx()

	updated, err := d.questRepo.GetByID(ctx, quest.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ApproveQuestApplicationResponse{Quest: model.ConvertQuest(updated, nil)}, nil
}

func (d *questDomain) Reject(
	ctx xcontext.Context, req *model.RejectQuestApplicationRequest,
) (*model.RejectQuestApplicationResponse, error) {
	application, err := d.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found application")
		}

		ctx.Logger().Errorf("Cannot get application: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.getQuestOfRequester(ctx, application.QuestID); err != nil {
		return nil, err
	}

	err = d.applicationRepo.UpdateReviewByID(ctx, application.ID, &entity.QuestApplication{
		Status:     entity.ApplicationRejected,
		ReviewerID: xcontext.GetRequestUserID(ctx),
		ReviewedAt: time.Now(),
	})
	if err != nil {
		ctx.Logger().Debugf("Cannot reject application: %v", err)
		return nil, errorx.New(errorx.BadRequest, "The application is already reviewed")
	}

	return &model.RejectQuestApplicationResponse{}, nil
}

func (d *questDomain) Complete(
	ctx xcontext.Context, req *model.CompleteQuestRequest,
) (*model.CompleteQuestResponse, error) {
	quest, err := d.getQuestOfRequester(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !quest.AssignedTo.Valid {
		return nil, errorx.New(errorx.Unavailable, "The quest has no assignee")
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	completedAt := time.Now()
	err = d.questRepo.UpdateStatusByID(ctx, quest.ID, entity.QuestInProgress, entity.QuestCompleted,
		&entity.Quest{CompletedAt: sql.NullTime{Valid: true, Time: completedAt}})
	if err != nil {
		ctx.Logger().Debugf("Cannot complete quest: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Only allow to complete an in-progress quest")
	}

	assigneeID := quest.AssignedTo.String
	if err := d.userRepo.IncreaseBalance(ctx, assigneeID, quest.Reward, quest.XP); err != nil {
		ctx.Logger().Errorf("Cannot pay the reward: %v", err)
		return nil, errorx.Unknown
	}

	err = d.transactionRepo.Create(ctx, &entity.Transaction{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: assigneeID,
		Type:   entity.TransactionQuestReward,
		Amount: quest.Reward,
		Note:   fmt.Sprintf("Reward of quest %s", quest.Title),
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot create reward transaction: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()

	if quest.XP > 0 {
		if err := d.redisClient.ZIncrBy(ctx, xpLeaderboardKey, quest.XP, assigneeID); err != nil {
			ctx.Logger().Errorf("Cannot update the leaderboard: %v", err)
		}
	}

	updated, err := d.questRepo.GetByID(ctx, quest.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CompleteQuestResponse{Quest: model.ConvertQuest(updated, nil)}, nil
}

func (d *questDomain) Cancel(
	ctx xcontext.Context, req *model.CancelQuestRequest,
) (*model.CancelQuestResponse, error) {
	quest, err := d.getQuestOfRequester(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	err = d.questRepo.UpdateStatusByID(ctx, quest.ID, entity.QuestOpen, entity.QuestCancelled, nil)
	if err != nil {
		ctx.Logger().Debugf("Cannot cancel quest: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Only allow to cancel an open quest")
	}

	err = d.applicationRepo.RejectPendingByQuest(ctx, quest.ID, "", xcontext.GetRequestUserID(ctx))
	if err != nil {
		ctx.Logger().Errorf("Cannot reject pending applications: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()

	updated, err := d.questRepo.GetByID(ctx, quest.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CancelQuestResponse{Quest: model.ConvertQuest(updated, nil)}, nil
}

// getQuestOfRequester loads the quest and ensures the request user is its
// poster or a global admin.
func (d *questDomain) getQuestOfRequester(ctx xcontext.Context, questID string) (*entity.Quest, error) {
	quest, err := d.questRepo.GetByID(ctx, questID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found quest")
		}

		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	if quest.PosterID != xcontext.GetRequestUserID(ctx) {
		if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}
	}

	return quest, nil
}
