package domain

import (
	"context"
	"testing"

	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	redisClient := &testutil.MockRedisClient{
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			return []redis.Z{
				{Member: testutil.User1.ID, Score: 120},
				{Member: testutil.User2.ID, Score: 40},
			}, nil
		},
	}

	d := NewStatisticDomain(repository.NewUserRepository(), redisClient)
	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 2)

	require.Equal(t, testutil.User1.Name, resp.Leaderboard[0].User.Name)
	require.Equal(t, int64(120), resp.Leaderboard[0].Value)
	require.Equal(t, uint64(1), resp.Leaderboard[0].CurrentRank)

	require.Equal(t, testutil.User2.Name, resp.Leaderboard[1].User.Name)
	require.Equal(t, uint64(2), resp.Leaderboard[1].CurrentRank)
}

func Test_statisticDomain_GetMyRank(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	redisClient := &testutil.MockRedisClient{
		ZRevRankFunc: func(ctx context.Context, key string, member string) (uint64, error) {
			require.Equal(t, testutil.User2.ID, member)
			return 1, nil
		},
	}

	d := NewStatisticDomain(repository.NewUserRepository(), redisClient)
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.GetMyRank(authorizedCtx, &model.GetMyRankRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.Name, resp.Statistic.User.Name)
	require.Equal(t, testutil.User2.XP, resp.Statistic.Value)
	require.Equal(t, uint64(2), resp.Statistic.CurrentRank)
}

func Test_statisticDomain_GetMyRank_Unranked(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	redisClient := &testutil.MockRedisClient{
		ZRevRankFunc: func(ctx context.Context, key string, member string) (uint64, error) {
			return 0, redis.Nil
		},
	}

	d := NewStatisticDomain(repository.NewUserRepository(), redisClient)
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err := d.GetMyRank(authorizedCtx, &model.GetMyRankRequest{})
	require.Error(t, err)
	require.Equal(t, "You have no rank yet", err.Error())
}

func Test_statisticDomain_GetLeaderboard_Empty(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	d := NewStatisticDomain(repository.NewUserRepository(), &testutil.MockRedisClient{})
	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Leaderboard)
}
