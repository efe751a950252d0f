package entity

import (
	"time"

	"github.com/peerquest/backend/pkg/enum"
)

type ApplicationStatus string

var (
	ApplicationPending  = enum.New(ApplicationStatus("pending"))
	ApplicationAccepted = enum.New(ApplicationStatus("accepted"))
	ApplicationRejected = enum.New(ApplicationStatus("rejected"))
)

type QuestApplication struct {
	Base

	QuestID string `gorm:"index:idx_quest_user,unique"`
	Quest   Quest  `gorm:"foreignKey:QuestID"`

	UserID string `gorm:"index:idx_quest_user,unique"`
	User   User   `gorm:"foreignKey:UserID"`

	// Username and AvatarURL are snapshots of the applicant profile taken
	// when the application was created. They are never re-synced.
	Username  string
	AvatarURL string

	Message string `gorm:"type:text"`
	Status  ApplicationStatus

	ReviewerID string
	ReviewedAt time.Time
}
