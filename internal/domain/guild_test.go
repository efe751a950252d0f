package domain

import (
	"errors"
	"testing"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGuildDomainForTest() *guildDomain {
	return NewGuildDomain(
		repository.NewGuildRepository(),
		repository.NewGuildMemberRepository(),
		repository.NewGuildApplicationRepository(),
		repository.NewUserRepository(),
	)
}

func Test_guildDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newGuildDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.Create(authorizedCtx, &model.CreateGuildRequest{
		Name:           "Silver Hand",
		Specialization: "healing",
	})
	require.NoError(t, err)

	// The creator becomes the single admin member.
	memberRepo := repository.NewGuildMemberRepository()
	member, err := memberRepo.Get(ctx, testutil.User2.ID, resp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.GuildRoleAdmin, member.Role)

	guildRepo := repository.NewGuildRepository()
	guild, err := guildRepo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, 1, guild.Members)

	_, err = d.Create(authorizedCtx, &model.CreateGuildRequest{Name: "Silver Hand"})
	require.Error(t, err)
	require.Equal(t, "The guild name is already taken", err.Error())
}

func Test_guildDomain_Apply_AlreadyMember(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newGuildDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Apply(authorizedCtx, &model.ApplyGuildRequest{GuildID: testutil.Guild1.ID})
	require.Error(t, err)
	require.Equal(t, "You are already a member of this guild", err.Error())

	// User2 already has a pending application.
	authorizedCtx = testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err = d.Apply(authorizedCtx, &model.ApplyGuildRequest{GuildID: testutil.Guild1.ID})
	require.Error(t, err)
	require.Equal(t, "You have already applied for this guild", err.Error())

	authorizedCtx = testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	resp, err := d.Apply(authorizedCtx, &model.ApplyGuildRequest{
		GuildID: testutil.Guild1.ID,
		Skills:  []string{"archery"},
	})
	require.NoError(t, err)
	require.Equal(t, "pending", resp.Status)
}

func Test_guildDomain_Apply_AfterRejection(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newGuildDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.RejectApplication(authorizedCtx, &model.RejectGuildApplicationRequest{
		ApplicationID: testutil.GuildApplication1.ID,
	})
	require.NoError(t, err)

	// A rejected applicant can apply again with a fresh application.
	authorizedCtx = testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.Apply(authorizedCtx, &model.ApplyGuildRequest{
		GuildID: testutil.Guild1.ID,
		Message: "Let me try again",
	})
	require.NoError(t, err)
	require.NotEqual(t, testutil.GuildApplication1.ID, resp.ID)
	require.Equal(t, "pending", resp.Status)

	applicationRepo := repository.NewGuildApplicationRepository()
	application, err := applicationRepo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ApplicationPending, application.Status)

	// The new pending application blocks a third attempt.
	_, err = d.Apply(authorizedCtx, &model.ApplyGuildRequest{GuildID: testutil.Guild1.ID})
	require.Error(t, err)
	require.Equal(t, "You have already applied for this guild", err.Error())
}

func Test_guildDomain_ApproveApplication(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newGuildDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.ApproveApplication(authorizedCtx, &model.ApproveGuildApplicationRequest{
		ApplicationID: testutil.GuildApplication1.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Guild.Members)

	memberRepo := repository.NewGuildMemberRepository()
	member, err := memberRepo.Get(ctx, testutil.User2.ID, testutil.Guild1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.GuildRoleMember, member.Role)

	// The member count matches the member rows.
	count, err := memberRepo.Count(ctx, testutil.Guild1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	// A second approve neither succeeds nor double-increments.
	_, err = d.ApproveApplication(authorizedCtx, &model.ApproveGuildApplicationRequest{
		ApplicationID: testutil.GuildApplication1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "The application is already reviewed", err.Error())

	guildRepo := repository.NewGuildRepository()
	guild, err := guildRepo.GetByID(ctx, testutil.Guild1.ID)
	require.NoError(t, err)
	require.Equal(t, 2, guild.Members)
}

func Test_guildDomain_ApproveApplication_PermissionDenied(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newGuildDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err := d.ApproveApplication(authorizedCtx, &model.ApproveGuildApplicationRequest{
		ApplicationID: testutil.GuildApplication1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "Permission denied", err.Error())
}

func Test_guildDomain_RejectApplication(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newGuildDomainForTest()

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.RejectApplication(authorizedCtx, &model.RejectGuildApplicationRequest{
		ApplicationID: testutil.GuildApplication1.ID,
	})
	require.NoError(t, err)

	applicationRepo := repository.NewGuildApplicationRepository()
	application, err := applicationRepo.GetByID(ctx, testutil.GuildApplication1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ApplicationRejected, application.Status)

	// No member row was created and the counter is untouched.
	guildRepo := repository.NewGuildRepository()
	guild, err := guildRepo.GetByID(ctx, testutil.Guild1.ID)
	require.NoError(t, err)
	require.Equal(t, 1, guild.Members)

	_, err = d.RejectApplication(authorizedCtx, &model.RejectGuildApplicationRequest{
		ApplicationID: testutil.GuildApplication1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "The application is already reviewed", err.Error())
}

func Test_guildDomain_Delete_Cascade(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newGuildDomainForTest()

	// Only the owner or a global admin may delete.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := d.Delete(authorizedCtx, &model.DeleteGuildRequest{ID: testutil.Guild1.ID})
	require.Error(t, err)
	require.Equal(t, "Permission denied", err.Error())

	authorizedCtx = testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err = d.Delete(authorizedCtx, &model.DeleteGuildRequest{ID: testutil.Guild1.ID})
	require.NoError(t, err)

	guildRepo := repository.NewGuildRepository()
	_, err = guildRepo.GetByID(ctx, testutil.Guild1.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	memberRepo := repository.NewGuildMemberRepository()
	count, err := memberRepo.Count(ctx, testutil.Guild1.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	applicationRepo := repository.NewGuildApplicationRepository()
	applications, err := applicationRepo.GetListByGuild(ctx, testutil.Guild1.ID, nil)
	require.NoError(t, err)
	require.Empty(t, applications)
}
