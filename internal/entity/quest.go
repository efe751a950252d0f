package entity

import (
	"database/sql"
	"time"

	"github.com/peerquest/backend/pkg/enum"
)

type QuestDifficulty string

var (
	DifficultyEasy   = enum.New(QuestDifficulty("easy"))
	DifficultyMedium = enum.New(QuestDifficulty("medium"))
	DifficultyHard   = enum.New(QuestDifficulty("hard"))
)

type QuestStatus string

var (
	QuestOpen       = enum.New(QuestStatus("open"))
	QuestInProgress = enum.New(QuestStatus("in-progress"))
	QuestCompleted  = enum.New(QuestStatus("completed"))
	QuestCancelled  = enum.New(QuestStatus("cancelled"))
)

type Quest struct {
	Base

	Title       string
	Description string `gorm:"type:text"`
	Category    string
	Difficulty  QuestDifficulty
	Reward      int64
	XP          int64
	Status      QuestStatus `gorm:"default:open"`

	PosterID string
	Poster   User `gorm:"foreignKey:PosterID"`

	Deadline    time.Time
	CompletedAt sql.NullTime

	// AssignedTo holds the accepted applicant's user id while the quest is
	// in progress.
	AssignedTo sql.NullString
}
