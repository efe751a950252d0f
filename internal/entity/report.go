package entity

import "github.com/peerquest/backend/pkg/enum"

type ReportTarget string

var (
	ReportTargetUser  = enum.New(ReportTarget("user"))
	ReportTargetQuest = enum.New(ReportTarget("quest"))
	ReportTargetGuild = enum.New(ReportTarget("guild"))
)

type ReportStatus string

var (
	ReportPending   = enum.New(ReportStatus("pending"))
	ReportResolved  = enum.New(ReportStatus("resolved"))
	ReportDismissed = enum.New(ReportStatus("dismissed"))
)

type Report struct {
	Base

	Type       ReportTarget
	TargetID   string
	TargetName string
	Reason     string `gorm:"type:text"`

	ReportedBy string
	Reporter   User `gorm:"foreignKey:ReportedBy"`

	Status ReportStatus `gorm:"default:pending"`
}
