package common

import (
	"errors"
	"fmt"

	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

type GlobalRoleVerifier struct {
	userRepo repository.UserRepository
}

func NewGlobalRoleVerifier(userRepo repository.UserRepository) *GlobalRoleVerifier {
	return &GlobalRoleVerifier{userRepo: userRepo}
}

func (verifier *GlobalRoleVerifier) Verify(ctx xcontext.Context, requiredRoles ...entity.GlobalRole) error {
	userID := xcontext.GetRequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if !slices.Contains(requiredRoles, u.Role) {
		return errors.New("user role does not have permission")
	}

	return nil
}

type GuildRoleVerifier struct {
	guildMemberRepo repository.GuildMemberRepository
	userRepo        repository.UserRepository
}

func NewGuildRoleVerifier(
	guildMemberRepo repository.GuildMemberRepository,
	userRepo repository.UserRepository,
) *GuildRoleVerifier {
	return &GuildRoleVerifier{guildMemberRepo: guildMemberRepo, userRepo: userRepo}
}

// Verify checks the request user holds one of the guild roles. Global admins
// pass every guild check.
func (verifier *GuildRoleVerifier) Verify(
	ctx xcontext.Context, guildID string, requiredRoles ...entity.GuildRole,
) error {
	userID := xcontext.GetRequestUserID(ctx)
	u, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user is not valid")
	}

	if u.Role == entity.RoleAdmin {
		return nil
	}

	member, err := verifier.guildMemberRepo.Get(ctx, userID, guildID)
	if err != nil {
		return errors.New("user is not a guild member")
	}

	if !slices.Contains(requiredRoles, member.Role) {
		return errors.New("user role does not have permission")
	}

	return nil
}
