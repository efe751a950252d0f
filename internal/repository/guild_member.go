package repository

import (
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
)

type GuildMemberRepository interface {
	Create(ctx xcontext.Context, data *entity.GuildMember) error
	Get(ctx xcontext.Context, userID, guildID string) (*entity.GuildMember, error)
	GetListByGuild(ctx xcontext.Context, guildID string) ([]entity.GuildMember, error)
	GetListByUser(ctx xcontext.Context, userID string) ([]entity.GuildMember, error)
	Count(ctx xcontext.Context, guildID string) (int64, error)
	Delete(ctx xcontext.Context, userID, guildID string) error
	DeleteByGuild(ctx xcontext.Context, guildID string) error
}

type guildMemberRepository struct{}

func NewGuildMemberRepository() GuildMemberRepository {
	return &guildMemberRepository{}
}

func (r *guildMemberRepository) Create(ctx xcontext.Context, data *entity.GuildMember) error {
	return ctx.DB().Create(data).Error
}

func (r *guildMemberRepository) Get(ctx xcontext.Context, userID, guildID string) (*entity.GuildMember, error) {
	result := &entity.GuildMember{}
	if err := ctx.DB().
		Where("user_id=? AND guild_id=?", userID, guildID).
		Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildMemberRepository) GetListByGuild(
	ctx xcontext.Context, guildID string,
) ([]entity.GuildMember, error) {
	result := []entity.GuildMember{}
	if err := ctx.DB().
		Where("guild_id=?", guildID).
		Order("created_at ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildMemberRepository) GetListByUser(
	ctx xcontext.Context, userID string,
) ([]entity.GuildMember, error) {
	result := []entity.GuildMember{}
	if err := ctx.DB().
		Where("user_id=?", userID).
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *guildMemberRepository) Count(ctx xcontext.Context, guildID string) (int64, error) {
	var count int64
	if err := ctx.DB().Model(&entity.GuildMember{}).
		Where("guild_id=?", guildID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *guildMemberRepository) Delete(ctx xcontext.Context, userID, guildID string) error {
	return ctx.DB().
		Where("user_id=? AND guild_id=?", userID, guildID).
		Delete(&entity.GuildMember{}).Error
}

func (r *guildMemberRepository) DeleteByGuild(ctx xcontext.Context, guildID string) error {
	return ctx.DB().Delete(&entity.GuildMember{}, "guild_id=?", guildID).Error
}
