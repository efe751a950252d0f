package domain

import (
	"errors"

	"github.com/peerquest/backend/internal/common"
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(xcontext.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(xcontext.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	GetUsers(xcontext.Context, *model.GetUsersRequest) (*model.GetUsersResponse, error)
	Update(xcontext.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	Ban(xcontext.Context, *model.BanUserRequest) (*model.BanUserResponse, error)
}

type userDomain struct {
	userRepo           repository.UserRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewUserDomain(userRepo repository.UserRepository) *userDomain {
	return &userDomain{
		userRepo:           userRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *userDomain) GetMe(
	ctx xcontext.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.GetRequestUserID(ctx))
	if err != nil {
		ctx.Logger().Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMeResponse{User: model.ConvertUser(user, true)}, nil
}

func (d *userDomain) GetUser(
	ctx xcontext.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		ctx.Logger().Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserResponse{User: model.ConvertUser(user, false)}, nil
}

func (d *userDomain) GetUsers(
	ctx xcontext.Context, req *model.GetUsersRequest,
) (*model.GetUsersResponse, error) {
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

	users, err := d.userRepo.GetList(ctx, req.Q, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get user list: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.User{}
	for i := range users {
		resp = append(resp, model.ConvertUser(&users[i], false))
	}

	return &model.GetUsersResponse{Users: resp}, nil
}

func (d *userDomain) Update(
	ctx xcontext.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)
	err := d.userRepo.UpdateByID(ctx, userID, &entity.User{
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateUserResponse{User: model.ConvertUser(user, true)}, nil
}

func (d *userDomain) Ban(
	ctx xcontext.Context, req *model.BanUserRequest,
) (*model.BanUserResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		ctx.Logger().Debugf("Permission denied when banning user: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.ID == xcontext.GetRequestUserID(ctx) {
		return nil, errorx.New(errorx.BadRequest, "Not allow to ban yourself")
	}

	if err := d.userRepo.SetBanned(ctx, req.ID, true); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		ctx.Logger().Errorf("Cannot ban user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.BanUserResponse{}, nil
}
