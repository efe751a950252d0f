package entity

import "time"

type GuildApplication struct {
	Base

	// A user may hold several applications for the same guild over time,
	// one per attempt. Only the latest one matters for re-applying.
	GuildID string `gorm:"index:idx_guild_user"`
	Guild   Guild  `gorm:"foreignKey:GuildID"`

	UserID string `gorm:"index:idx_guild_user"`
	User   User   `gorm:"foreignKey:UserID"`

	// Snapshot of the applicant profile at application time.
	Username  string
	AvatarURL string
	Skills    Array[string] `gorm:"type:text"`

	Message string `gorm:"type:text"`
	Status  ApplicationStatus

	ReviewerID string
	ReviewedAt time.Time
}
