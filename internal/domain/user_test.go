package domain

import (
	"testing"

	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_GetMeAndGetUser(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewUserDomain(repository.NewUserRepository())

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	me, err := d.GetMe(authorizedCtx, &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Email, me.User.Email)
	require.Equal(t, testutil.User1.Gold, me.User.Gold)

	// Another user's email stays private.
	other, err := d.GetUser(authorizedCtx, &model.GetUserRequest{ID: testutil.User2.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.Name, other.User.Name)
	require.Empty(t, other.User.Email)

	_, err = d.GetUser(authorizedCtx, &model.GetUserRequest{ID: "unknown"})
	require.Error(t, err)
	require.Equal(t, "Not found user", err.Error())
}

func Test_userDomain_Update(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewUserDomain(repository.NewUserRepository())

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Update(authorizedCtx, &model.UpdateUserRequest{
		Bio:       "Caravan guard for hire",
		AvatarURL: "https://example.com/avatar.png",
	})
	require.NoError(t, err)
	require.Equal(t, "Caravan guard for hire", resp.User.Bio)
	require.Equal(t, "https://example.com/avatar.png", resp.User.AvatarURL)
}

func Test_userDomain_Ban(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewUserDomain(repository.NewUserRepository())

	// Only admins ban.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Ban(authorizedCtx, &model.BanUserRequest{ID: testutil.User2.ID})
	require.Error(t, err)
	require.Equal(t, "Permission denied", err.Error())

	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	_, err = d.Ban(adminCtx, &model.BanUserRequest{ID: testutil.User2.ID})
	require.NoError(t, err)

	userRepo := repository.NewUserRepository()
	user, err := userRepo.GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.True(t, user.IsBanned)

	_, err = d.Ban(adminCtx, &model.BanUserRequest{ID: testutil.Admin.ID})
	require.Error(t, err)
	require.Equal(t, "Not allow to ban yourself", err.Error())
}
