package domain

import (
	"context"
	"testing"
	"time"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newQuestDomainForTest(redisClient *testutil.MockRedisClient) *questDomain {
	if redisClient == nil {
		redisClient = &testutil.MockRedisClient{}
	}

	return NewQuestDomain(
		repository.NewQuestRepository(),
		repository.NewQuestApplicationRepository(),
		repository.NewUserRepository(),
		repository.NewTransactionRepository(),
		redisClient,
	)
}

func Test_questDomain_Apply_Duplicate(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	// User2 already has a pending application on Quest1.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	_, err := d.Apply(authorizedCtx, &model.ApplyQuestRequest{
		QuestID: testutil.Quest1.ID,
		Message: "Second try",
	})
	require.Error(t, err)
	require.Equal(t, "You have already applied for this quest", err.Error())

	// User3 applies for the first time.
	authorizedCtx = testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	resp, err := d.Apply(authorizedCtx, &model.ApplyQuestRequest{
		QuestID: testutil.Quest1.ID,
		Message: "Take me instead",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", resp.Status)
}

func Test_questDomain_Apply_OwnQuest(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Apply(authorizedCtx, &model.ApplyQuestRequest{
		QuestID: testutil.Quest1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "Not allow to apply for your own quest", err.Error())
}

func Test_questDomain_Approve(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	// A second pending application on the same quest.
	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	otherResp, err := d.Apply(authorizedCtx, &model.ApplyQuestRequest{
		QuestID: testutil.Quest1.ID,
		Message: "Take me instead",
	})
	require.NoError(t, err)

	authorizedCtx = testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Approve(authorizedCtx, &model.ApproveQuestApplicationRequest{
		ApplicationID: testutil.QuestApplication1.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "in-progress", resp.Quest.Status)
	require.Equal(t, testutil.User2.ID, resp.Quest.AssignedTo)

	applicationRepo := repository.NewQuestApplicationRepository()
	accepted, err := applicationRepo.GetByID(ctx, testutil.QuestApplication1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ApplicationAccepted, accepted.Status)
	require.Equal(t, testutil.User1.ID, accepted.ReviewerID)

	rejected, err := applicationRepo.GetByID(ctx, otherResp.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ApplicationRejected, rejected.Status)
}

func Test_questDomain_Review_Terminal(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Approve(authorizedCtx, &model.ApproveQuestApplicationRequest{
		ApplicationID: testutil.QuestApplication1.ID,
	})
	require.NoError(t, err)

	// Accepted applications cannot be reviewed again.
	_, err = d.Reject(authorizedCtx, &model.RejectQuestApplicationRequest{
		ApplicationID: testutil.QuestApplication1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "The application is already reviewed", err.Error())

	_, err = d.Approve(authorizedCtx, &model.ApproveQuestApplicationRequest{
		ApplicationID: testutil.QuestApplication1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "The application is already reviewed", err.Error())
}

func Test_questDomain_Approve_PermissionDenied(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User3.ID)
	_, err := d.Approve(authorizedCtx, &model.ApproveQuestApplicationRequest{
		ApplicationID: testutil.QuestApplication1.ID,
	})
	require.Error(t, err)
	require.Equal(t, "Permission denied", err.Error())
}

func Test_questDomain_Complete(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	var leaderboardXP int64
	var leaderboardMember string
	redisClient := &testutil.MockRedisClient{
		ZIncrByFunc: func(ctx context.Context, key string, incr int64, member string) error {
			leaderboardXP = incr
			leaderboardMember = member
			return nil
		},
	}
	d := newQuestDomainForTest(redisClient)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Complete(authorizedCtx, &model.CompleteQuestRequest{ID: testutil.Quest2.ID})
	require.NoError(t, err)
	require.Equal(t, "completed", resp.Quest.Status)

	// Completion timestamp never precedes the creation timestamp.
	questRepo := repository.NewQuestRepository()
	quest, err := questRepo.GetByID(ctx, testutil.Quest2.ID)
	require.NoError(t, err)
	require.True(t, quest.CompletedAt.Valid)
	require.False(t, quest.CompletedAt.Time.Before(quest.CreatedAt))

	// The assignee got the reward and the xp.
	userRepo := repository.NewUserRepository()
	assignee, err := userRepo.GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.User2.Gold+testutil.Quest2.Reward, assignee.Gold)
	require.Equal(t, testutil.User2.XP+testutil.Quest2.XP, assignee.XP)

	transactionRepo := repository.NewTransactionRepository()
	transactions, err := transactionRepo.GetListByUser(
		ctx, testutil.User2.ID, []entity.TransactionType{entity.TransactionQuestReward}, 0, 10)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	require.Equal(t, testutil.Quest2.Reward, transactions[0].Amount)

	require.Equal(t, testutil.Quest2.XP, leaderboardXP)
	require.Equal(t, testutil.User2.ID, leaderboardMember)

	// A completed quest cannot be completed again.
	_, err = d.Complete(authorizedCtx, &model.CompleteQuestRequest{ID: testutil.Quest2.ID})
	require.Error(t, err)
	require.Equal(t, "Only allow to complete an in-progress quest", err.Error())
}

func Test_questDomain_Complete_NoAssignee(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	_, err := d.Complete(authorizedCtx, &model.CompleteQuestRequest{ID: testutil.Quest1.ID})
	require.Error(t, err)
	require.Equal(t, "The quest has no assignee", err.Error())
}

func Test_questDomain_Cancel(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	resp, err := d.Cancel(authorizedCtx, &model.CancelQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Equal(t, "cancelled", resp.Quest.Status)

	// Cancelling rejects the outstanding pending applications.
	applicationRepo := repository.NewQuestApplicationRepository()
	application, err := applicationRepo.GetByID(ctx, testutil.QuestApplication1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ApplicationRejected, application.Status)

	// In-progress quests cannot be cancelled.
	_, err = d.Cancel(authorizedCtx, &model.CancelQuestRequest{ID: testutil.Quest2.ID})
	require.Error(t, err)
	require.Equal(t, "Only allow to cancel an open quest", err.Error())
}

func Test_questDomain_CreateAndGet(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User1.ID)
	created, err := d.Create(authorizedCtx, &model.CreateQuestRequest{
		Title:      "Clear the cellar",
		Category:   "combat",
		Difficulty: "easy",
		Reward:     50,
		XP:         20,
		Deadline:   time.Now().AddDate(0, 0, 7).Format(model.DefaultTimeLayout),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	resp, err := d.Get(authorizedCtx, &model.GetQuestRequest{ID: created.ID})
	require.NoError(t, err)
	require.Equal(t, "Clear the cellar", resp.Quest.Title)
	require.Equal(t, "open", resp.Quest.Status)
	require.Equal(t, testutil.User1.ID, resp.Quest.Poster.ID)

	_, err = d.Create(authorizedCtx, &model.CreateQuestRequest{
		Title:      "Bad difficulty",
		Difficulty: "legendary",
		Deadline:   time.Now().Format(model.DefaultTimeLayout),
	})
	require.Error(t, err)
	require.Equal(t, "Invalid difficulty legendary", err.Error())
}

func Test_questDomain_GetList_Filter(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newQuestDomainForTest(nil)

	authorizedCtx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.GetList(authorizedCtx, &model.GetQuestsRequest{Status: "open"})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 1)
	require.Equal(t, testutil.Quest1.ID, resp.Quests[0].ID)

	resp, err = d.GetList(authorizedCtx, &model.GetQuestsRequest{Q: "mine"})
	require.NoError(t, err)
	require.Len(t, resp.Quests, 1)
	require.Equal(t, testutil.Quest2.ID, resp.Quests[0].ID)

	_, err = d.GetList(authorizedCtx, &model.GetQuestsRequest{Limit: 100})
	require.Error(t, err)
	require.Equal(t, "Exceed the maximum of limit (50)", err.Error())
}
