package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/peerquest/backend/internal/common"
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type GuildDomain interface {
	Create(xcontext.Context, *model.CreateGuildRequest) (*model.CreateGuildResponse, error)
	Get(xcontext.Context, *model.GetGuildRequest) (*model.GetGuildResponse, error)
	GetList(xcontext.Context, *model.GetGuildsRequest) (*model.GetGuildsResponse, error)
	Update(xcontext.Context, *model.UpdateGuildRequest) (*model.UpdateGuildResponse, error)
	Delete(xcontext.Context, *model.DeleteGuildRequest) (*model.DeleteGuildResponse, error)
	Apply(xcontext.Context, *model.ApplyGuildRequest) (*model.ApplyGuildResponse, error)
	GetApplications(xcontext.Context, *model.GetGuildApplicationsRequest) (*model.GetGuildApplicationsResponse, error)
	ApproveApplication(xcontext.Context, *model.ApproveGuildApplicationRequest) (*model.ApproveGuildApplicationResponse, error)
	RejectApplication(xcontext.Context, *model.RejectGuildApplicationRequest) (*model.RejectGuildApplicationResponse, error)
	GetMembers(xcontext.Context, *model.GetGuildMembersRequest) (*model.GetGuildMembersResponse, error)
}

type guildDomain struct {
	guildRepo          repository.GuildRepository
	memberRepo         repository.GuildMemberRepository
	applicationRepo    repository.GuildApplicationRepository
	userRepo           repository.UserRepository
	guildRoleVerifier  *common.GuildRoleVerifier
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewGuildDomain(
	guildRepo repository.GuildRepository,
	memberRepo repository.GuildMemberRepository,
	applicationRepo repository.GuildApplicationRepository,
	userRepo repository.UserRepository,
) *guildDomain {
	return &guildDomain{
		guildRepo:          guildRepo,
		memberRepo:         memberRepo,
		applicationRepo:    applicationRepo,
		userRepo:           userRepo,
		guildRoleVerifier:  common.NewGuildRoleVerifier(memberRepo, userRepo),
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *guildDomain) Create(
	ctx xcontext.Context, req *model.CreateGuildRequest,
) (*model.CreateGuildResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty guild name")
	}

	if _, err := d.guildRepo.GetByName(ctx, req.Name); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "The guild name is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.Logger().Errorf("Cannot check the existing guild name: %v", err)
		return nil, errorx.Unknown
	}

	ownerID := xcontext.GetRequestUserID(ctx)
	guild := &entity.Guild{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           req.Name,
		Description:    req.Description,
		Emblem:         req.Emblem,
		Specialization: req.Specialization,
		Category:       req.Category,
		OwnerID:        ownerID,
		Members:        1,
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.guildRepo.Create(ctx, guild); err != nil {
		ctx.Logger().Errorf("Cannot create guild: %v", err)
		return nil, errorx.Unknown
	}

	err := d.memberRepo.Create(ctx, &entity.GuildMember{
		UserID:  ownerID,
		GuildID: guild.ID,
		Role:    entity.GuildRoleAdmin,
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot create the owner membership: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()

	return &model.CreateGuildResponse{ID: guild.ID}, nil
}

func (d *guildDomain) Get(
	ctx xcontext.Context, req *model.GetGuildRequest,
) (*model.GetGuildResponse, error) {
	guild, err := d.guildRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found guild")
		}

		ctx.Logger().Errorf("Cannot get guild: %v", err)
		return nil, errorx.Unknown
	}

	owner, err := d.userRepo.GetByID(ctx, guild.OwnerID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get the owner: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetGuildResponse{Guild: model.ConvertGuild(guild, owner)}, nil
}

func (d *guildDomain) GetList(
	ctx xcontext.Context, req *model.GetGuildsRequest,
) (*model.GetGuildsResponse, error) {
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

	guilds, err := d.guildRepo.GetList(ctx, &repository.GuildFilter{
		Q:              req.Q,
		Specialization: req.Specialization,
	}, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get guild list: %v", err)
		return nil, errorx.Unknown
	}

	ownerIDs := []string{}
	for i := range guilds {
		ownerIDs = append(ownerIDs, guilds[i].OwnerID)
	}

	owners, err := d.userRepo.GetByIDs(ctx, ownerIDs)
	if err != nil {
		ctx.Logger().Errorf("Cannot get owners: %v", err)
		return nil, errorx.Unknown
	}

	ownerMap := map[string]*entity.User{}
	for i := range owners {
		ownerMap[owners[i].ID] = &owners[i]
	}

	resp := []model.Guild{}
	for i := range guilds {
		resp = append(resp, model.ConvertGuild(&guilds[i], ownerMap[guilds[i].OwnerID]))
	}

	return &model.GetGuildsResponse{Guilds: resp}, nil
}

func (d *guildDomain) Update(
	ctx xcontext.Context, req *model.UpdateGuildRequest,
) (*model.UpdateGuildResponse, error) {
	if err := d.guildRoleVerifier.Verify(ctx, req.ID, entity.GuildRoleAdmin); err != nil {
		ctx.Logger().Debugf("Permission denied when updating guild: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	err := d.guildRepo.UpdateByID(ctx, req.ID, &entity.Guild{
		Description:    req.Description,
		Emblem:         req.Emblem,
		Specialization: req.Specialization,
		Category:       req.Category,
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot update guild: %v", err)
		return nil, errorx.Unknown
	}

	guild, err := d.guildRepo.GetByID(ctx, req.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get guild: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateGuildResponse{Guild: model.ConvertGuild(guild, nil)}, nil
}

func (d *guildDomain) Delete(
	ctx xcontext.Context, req *model.DeleteGuildRequest,
) (*model.DeleteGuildResponse, error) {
	guild, err := d.guildRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found guild")
		}

		ctx.Logger().Errorf("Cannot get guild: %v", err)
		return nil, errorx.Unknown
	}

	if guild.OwnerID != xcontext.GetRequestUserID(ctx) {
		if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.memberRepo.DeleteByGuild(ctx, guild.ID); err != nil {
		ctx.Logger().Errorf("Cannot delete members: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.applicationRepo.DeleteByGuild(ctx, guild.ID); err != nil {
		ctx.Logger().Errorf("Cannot delete applications: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.guildRepo.DeleteByID(ctx, guild.ID); err != nil {
		ctx.Logger().Errorf("Cannot delete guild: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()

	return &model.DeleteGuildResponse{}, nil
}

func (d *guildDomain) Apply(
	ctx xcontext.Context, req *model.ApplyGuildRequest,
) (*model.ApplyGuildResponse, error) {
	guild, err := d.guildRepo.GetByID(ctx, req.GuildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found guild")
		}

		ctx.Logger().Errorf("Cannot get guild: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.GetRequestUserID(ctx)
	if _, err := d.memberRepo.Get(ctx, userID, guild.ID); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You are already a member of this guild")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.Logger().Errorf("Cannot get the membership: %v", err)
		return nil, errorx.Unknown
	}

	previous, err := d.applicationRepo.GetLatestByUserAndGuild(ctx, userID, guild.ID)
	if err == nil && previous.Status == entity.ApplicationPending {
		return nil, errorx.New(errorx.AlreadyExists, "You have already applied for this guild")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.Logger().Errorf("Cannot get the previous application: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get the applicant: %v", err)
		return nil, errorx.Unknown
	}

	application := &entity.GuildApplication{
		Base:      entity.Base{ID: uuid.NewString()},
		GuildID:   guild.ID,
		UserID:    userID,
		Username:  user.Name,
		AvatarURL: user.AvatarURL,
		Skills:    req.Skills,
		Message:   req.Message,
		Status:    entity.ApplicationPending,
	}

	if err := d.applicationRepo.Create(ctx, application); err != nil {
		ctx.Logger().Errorf("Cannot create application: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ApplyGuildResponse{
		ID:     application.ID,
		Status: string(application.Status),
	}, nil
}

func (d *guildDomain) GetApplications(
	ctx xcontext.Context, req *model.GetGuildApplicationsRequest,
) (*model.GetGuildApplicationsResponse, error) {
	if err := d.guildRoleVerifier.Verify(ctx, req.GuildID, entity.GuildRoleAdmin); err != nil {
		ctx.Logger().Debugf("Permission denied when getting applications: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	applications, err := d.applicationRepo.GetListByGuild(ctx, req.GuildID, nil)
	if err != nil {
		ctx.Logger().Errorf("Cannot get applications: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.GuildApplication{}
	for i := range applications {
		resp = append(resp, model.ConvertGuildApplication(&applications[i]))
	}

	return &model.GetGuildApplicationsResponse{Applications: resp}, nil
}

func (d *guildDomain) ApproveApplication(
	ctx xcontext.Context, req *model.ApproveGuildApplicationRequest,
) (*model.ApproveGuildApplicationResponse, error) {
	application, err := d.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found application")
		}

		ctx.Logger().Errorf("Cannot get application: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.guildRoleVerifier.Verify(ctx, application.GuildID, entity.GuildRoleAdmin); err != nil {
		ctx.Logger().Debugf("Permission denied when approving application: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	err = d.applicationRepo.UpdateReviewByID(ctx, application.ID, &entity.GuildApplication{
		Status:     entity.ApplicationAccepted,
		ReviewerID: xcontext.GetRequestUserID(ctx),
		ReviewedAt: time.Now(),
	})
	if err != nil {
		ctx.Logger().Debugf("Cannot accept application: %v", err)
		return nil, errorx.New(errorx.BadRequest, "The application is already reviewed")
	}

	// The member row may already exist if the user was re-added through
	// another path. Members is bumped only when the row is really created.
	_, err = d.memberRepo.Get(ctx, application.UserID, application.GuildID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.Logger().Errorf("Cannot get the membership: %v", err)
			return nil, errorx.Unknown
		}

		err = d.memberRepo.Create(ctx, &entity.GuildMember{
			UserID:  application.UserID,
			GuildID: application.GuildID,
			Role:    entity.GuildRoleMember,
		})
		if err != nil {
			ctx.Logger().Errorf("Cannot create the membership: %v", err)
			return nil, errorx.Unknown
		}

		if err := d.guildRepo.IncreaseMembers(ctx, application.GuildID, 1); err != nil {
			ctx.Logger().Errorf("Cannot increase the members counter: %v", err)
			return nil, errorx.Unknown
		}
	}

	ctx.CommitTx()

	guild, err := d.guildRepo.GetByID(ctx, application.GuildID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get guild: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ApproveGuildApplicationResponse{Guild: model.ConvertGuild(guild, nil)}, nil
}

func (d *guildDomain) RejectApplication(
	ctx xcontext.Context, req *model.RejectGuildApplicationRequest,
) (*model.RejectGuildApplicationResponse, error) {
	application, err := d.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found application")
		}

		ctx.Logger().Errorf("Cannot get application: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.guildRoleVerifier.Verify(ctx, application.GuildID, entity.GuildRoleAdmin); err != nil {
		ctx.Logger().Debugf("Permission denied when rejecting application: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	err = d.applicationRepo.UpdateReviewByID(ctx, application.ID, &entity.GuildApplication{
		Status:     entity.ApplicationRejected,
		ReviewerID: xcontext.GetRequestUserID(ctx),
		ReviewedAt: time.Now(),
	})
	if err != nil {
		ctx.Logger().Debugf("Cannot reject application: %v", err)
		return nil, errorx.New(errorx.BadRequest, "The application is already reviewed")
	}

	return &model.RejectGuildApplicationResponse{}, nil
}

func (d *guildDomain) GetMembers(
	ctx xcontext.Context, req *model.GetGuildMembersRequest,
) (*model.GetGuildMembersResponse, error) {
	members, err := d.memberRepo.GetListByGuild(ctx, req.GuildID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get members: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{}
	for i := range members {
		userIDs = append(userIDs, members[i].UserID)
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		ctx.Logger().Errorf("Cannot get member users: %v", err)
		return nil, errorx.Unknown
	}

	userMap := map[string]*entity.User{}
	for i := range users {
		userMap[users[i].ID] = &users[i]
	}

	resp := []model.GuildMember{}
	for i := range members {
		resp = append(resp, model.ConvertGuildMember(&members[i], userMap[members[i].UserID]))
	}

	return &model.GetGuildMembersResponse{Members: resp}, nil
}
