package domain

import (
	"testing"

	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_RegisterAndLogin(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewAuthDomain(repository.NewUserRepository())

	registered, err := d.Register(ctx, &model.RegisterRequest{
		Name:     "frodo",
		Email:    "frodo@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	require.Equal(t, "frodo", registered.User.Name)
	require.Equal(t, int64(0), registered.User.Gold)
	require.Equal(t, 1, registered.User.Level)

	resp, err := d.Login(ctx, &model.LoginRequest{
		Email:    "frodo@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	info, err := ctx.AccessTokenEngine().Verify(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, info.ID)
	require.Equal(t, "frodo", info.Name)

	_, err = d.Login(ctx, &model.LoginRequest{
		Email:    "frodo@example.com",
		Password: "wrong password",
	})
	require.Error(t, err)
	require.Equal(t, "Invalid email or password", err.Error())
}

func Test_authDomain_Register_Duplicate(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewAuthDomain(repository.NewUserRepository())

	_, err := d.Register(ctx, &model.RegisterRequest{
		Name:     "somebody",
		Email:    testutil.User1.Email,
		Password: "longenough",
	})
	require.Error(t, err)
	require.Equal(t, "This email is already registered", err.Error())

	_, err = d.Register(ctx, &model.RegisterRequest{
		Name:     testutil.User1.Name,
		Email:    "somebody@example.com",
		Password: "longenough",
	})
	require.Error(t, err)
	require.Equal(t, "This name is already taken", err.Error())

	_, err = d.Register(ctx, &model.RegisterRequest{
		Name:     "somebody",
		Email:    "somebody@example.com",
		Password: "short",
	})
	require.Error(t, err)
	require.Equal(t, "Password must contain at least 8 characters", err.Error())
}

func Test_authDomain_Login_Banned(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewAuthDomain(repository.NewUserRepository())

	_, err := d.Register(ctx, &model.RegisterRequest{
		Name:     "trouble",
		Email:    "trouble@example.com",
		Password: "longenough",
	})
	require.NoError(t, err)

	userRepo := repository.NewUserRepository()
	user, err := userRepo.GetByEmail(ctx, "trouble@example.com")
	require.NoError(t, err)
	require.NoError(t, userRepo.SetBanned(ctx, user.ID, true))

	_, err = d.Login(ctx, &model.LoginRequest{
		Email:    "trouble@example.com",
		Password: "longenough",
	})
	require.Error(t, err)
	require.Equal(t, "Your account is banned", err.Error())
}
