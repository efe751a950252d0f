package entity

import "github.com/peerquest/backend/pkg/enum"

type GlobalRole string

var (
	RoleAdmin = enum.New(GlobalRole("admin"))
	RoleUser  = enum.New(GlobalRole("user"))
)

var GlobalAdminRoles = []GlobalRole{RoleAdmin}

type User struct {
	Base

	Name           string `gorm:"unique"`
	Email          string `gorm:"unique"`
	HashedPassword string
	AvatarURL      string
	Bio            string
	Role           GlobalRole `gorm:"default:user"`

	Gold  int64 `gorm:"default:0"`
	XP    int64 `gorm:"default:0"`
	Level int   `gorm:"default:1"`

	IsBanned bool `gorm:"default:false"`
}
