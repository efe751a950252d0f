package domain

import (
	"errors"

	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
	"github.com/peerquest/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

type StatisticDomain interface {
	GetLeaderboard(xcontext.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	GetMyRank(xcontext.Context, *model.GetMyRankRequest) (*model.GetMyRankResponse, error)
}

type statisticDomain struct {
	userRepo    repository.UserRepository
	redisClient xredis.Client
}

func NewStatisticDomain(
	userRepo repository.UserRepository,
	redisClient xredis.Client,
) *statisticDomain {
	return &statisticDomain{
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

func (d *statisticDomain) GetLeaderboard(
	ctx xcontext.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
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

	scores, err := d.redisClient.ZRevRangeWithScores(ctx, xpLeaderboardKey, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get the leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{}
	for _, z := range scores {
		userIDs = append(userIDs, z.Member.(string))
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		ctx.Logger().Errorf("Cannot get leaderboard users: %v", err)
		return nil, errorx.Unknown
	}

	userMap := map[string]*model.ShortUser{}
	for i := range users {
		shortUser := model.ConvertShortUser(&users[i])
		userMap[users[i].ID] = &shortUser
	}

	leaderboard := []model.UserStatistic{}
	for i, z := range scores {
		statistic := model.UserStatistic{
			Value:       int64(z.Score),
			CurrentRank: uint64(req.Offset + i + 1),
		}

		if user, ok := userMap[z.Member.(string)]; ok {
			statistic.User = *user
		}

		leaderboard = append(leaderboard, statistic)
	}

	return &model.GetLeaderboardResponse{Leaderboard: leaderboard}, nil
}

func (d *statisticDomain) GetMyRank(
	ctx xcontext.Context, req *model.GetMyRankRequest,
) (*model.GetMyRankResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get the requester: %v", err)
		return nil, errorx.Unknown
	}

	rank, err := d.redisClient.ZRevRank(ctx, xpLeaderboardKey, userID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorx.New(errorx.NotFound, "You have no rank yet")
		}

		ctx.Logger().Errorf("Cannot get the rank: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMyRankResponse{
		Statistic: model.UserStatistic{
			User:        model.ConvertShortUser(user),
			Value:       user.XP,
			CurrentRank: rank + 1,
		},
	}, nil
}
