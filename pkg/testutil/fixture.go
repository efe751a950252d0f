package testutil

import (
	"database/sql"
	"time"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/xcontext"
)

var (
	User1 = entity.User{
		Base:           entity.Base{ID: "user1"},
		Name:           "thorin",
		Email:          "thorin@example.com",
		HashedPassword: "$2a$10$invalidhashinvalidhashinvalidhashinvalidhashinvalidha",
		Role:           entity.RoleUser,
		Gold:           1000,
		XP:             120,
		Level:          2,
	}

	User2 = entity.User{
		Base:  entity.Base{ID: "user2"},
		Name:  "bilbo",
		Email: "bilbo@example.com",
		Role:  entity.RoleUser,
		Gold:  750,
		XP:    40,
		Level: 1,
	}

	User3 = entity.User{
		Base:  entity.Base{ID: "user3"},
		Name:  "samwise",
		Email: "samwise@example.com",
		Role:  entity.RoleUser,
		Gold:  400,
	}

	Admin = entity.User{
		Base:  entity.Base{ID: "admin"},
		Name:  "elrond",
		Email: "elrond@example.com",
		Role:  entity.RoleAdmin,
	}

	BannedUser = entity.User{
		Base:     entity.Base{ID: "banned_user"},
		Name:     "grima",
		Email:    "grima@example.com",
		Role:     entity.RoleUser,
		IsBanned: true,
	}
)

var (
	// Quest1 is an open quest of User1 with no application yet.
	Quest1 = entity.Quest{
		Base:        entity.Base{ID: "quest1"},
		Title:       "Escort the caravan",
		Description: "Escort a merchant caravan through the mountain pass.",
		Category:    "escort",
		Difficulty:  entity.DifficultyMedium,
		Reward:      100,
		XP:          50,
		Status:      entity.QuestOpen,
		PosterID:    User1.ID,
		Deadline:    time.Now().AddDate(0, 1, 0),
	}

	// Quest2 is in progress, assigned to User2 via QuestApplication2.
	Quest2 = entity.Quest{
		Base:        entity.Base{ID: "quest2"},
		Title:       "Map the old mine",
		Description: "Survey and map the abandoned mine below the keep.",
		Category:    "exploration",
		Difficulty:  entity.DifficultyHard,
		Reward:      250,
		XP:          120,
		Status:      entity.QuestInProgress,
		PosterID:    User1.ID,
		Deadline:    time.Now().AddDate(0, 1, 0),
		AssignedTo:  sql.NullString{Valid: true, String: User2.ID},
	}

	// QuestApplication1 is a pending application of User2 on Quest1.
	QuestApplication1 = entity.QuestApplication{
		Base:     entity.Base{ID: "quest_application1"},
		QuestID:  Quest1.ID,
		UserID:   User2.ID,
		Username: User2.Name,
		Message:  "I have a sword and I know the pass.",
		Status:   entity.ApplicationPending,
	}

	// QuestApplication2 is the accepted application behind Quest2.
	QuestApplication2 = entity.QuestApplication{
		Base:       entity.Base{ID: "quest_application2"},
		QuestID:    Quest2.ID,
		UserID:     User2.ID,
		Username:   User2.Name,
		Message:    "Mapped three mines before.",
		Status:     entity.ApplicationAccepted,
		ReviewerID: User1.ID,
		ReviewedAt: time.Now(),
	}
)

var (
	// Guild1 is owned by User1 who is its only member.
	Guild1 = entity.Guild{
		Base:           entity.Base{ID: "guild1"},
		Name:           "Iron Banner",
		Description:    "A guild of caravan guards.",
		Specialization: "escort",
		Category:       "combat",
		OwnerID:        User1.ID,
		Members:        1,
	}

	GuildMember1 = entity.GuildMember{
		UserID:  User1.ID,
		GuildID: Guild1.ID,
		Role:    entity.GuildRoleAdmin,
	}

	// GuildApplication1 is a pending application of User2 on Guild1.
	GuildApplication1 = entity.GuildApplication{
		Base:     entity.Base{ID: "guild_application1"},
		GuildID:  Guild1.ID,
		UserID:   User2.ID,
		Username: User2.Name,
		Skills:   []string{"tracking", "swordplay"},
		Message:  "Looking for steady contracts.",
		Status:   entity.ApplicationPending,
	}
)

// CreateFixtureDb inserts the fixture records above into the database of ctx.
func CreateFixtureDb(ctx xcontext.Context) {
	insertUsers(ctx)
	insertQuests(ctx)
	insertGuilds(ctx)
}

func insertUsers(ctx xcontext.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3, Admin, BannedUser} {
		u := user
		if err := userRepo.Create(ctx, &u); err != nil {
			panic(err)
		}
	}
}

func insertQuests(ctx xcontext.Context) {
	questRepo := repository.NewQuestRepository()
	for _, quest := range []entity.Quest{Quest1, Quest2} {
		q := quest
		if err := questRepo.Create(ctx, &q); err != nil {
			panic(err)
		}
	}

	applicationRepo := repository.NewQuestApplicationRepository()
	for _, application := range []entity.QuestApplication{QuestApplication1, QuestApplication2} {
		a := application
		if err := applicationRepo.Create(ctx, &a); err != nil {
			panic(err)
		}
	}
}

func insertGuilds(ctx xcontext.Context) {
	guildRepo := repository.NewGuildRepository()
	g := Guild1
	if err := guildRepo.Create(ctx, &g); err != nil {
		panic(err)
	}

	memberRepo := repository.NewGuildMemberRepository()
	m := GuildMember1
	if err := memberRepo.Create(ctx, &m); err != nil {
		panic(err)
	}

	applicationRepo := repository.NewGuildApplicationRepository()
	a := GuildApplication1
	if err := applicationRepo.Create(ctx, &a); err != nil {
		panic(err)
	}
}
