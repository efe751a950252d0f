package entity

import (
	"time"

	"github.com/peerquest/backend/pkg/enum"
	"gorm.io/gorm"
)

type GuildRole string

var (
	GuildRoleAdmin  = enum.New(GuildRole("admin"))
	GuildRoleMember = enum.New(GuildRole("member"))
)

type GuildMember struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	GuildID string `gorm:"primaryKey"`
	Guild   Guild  `gorm:"foreignKey:GuildID"`

	Role GuildRole `gorm:"default:member"`
}
