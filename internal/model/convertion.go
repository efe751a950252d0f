package model

import (
	"time"

	"github.com/peerquest/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertShortUser(user *entity.User) ShortUser {
	if user == nil {
		return ShortUser{}
	}

	return ShortUser{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
	}
}

func ConvertUser(user *entity.User, includeSensitive bool) User {
	if user == nil {
		return User{}
	}

	resp := User{
		ShortUser: ConvertShortUser(user),
		Bio:       user.Bio,
		Gold:      user.Gold,
		XP:        user.XP,
		Level:     user.Level,
		CreatedAt: user.CreatedAt.Format(DefaultTimeLayout),
	}

	if includeSensitive {
		resp.Email = user.Email
		resp.Role = string(user.Role)
		resp.IsBanned = user.IsBanned
	}

	return resp
}

func ConvertQuest(quest *entity.Quest, poster *entity.User) Quest {
	if quest == nil {
		return Quest{}
	}

	resp := Quest{
		ID:          quest.ID,
		Title:       quest.Title,
		Description: quest.Description,
		Category:    quest.Category,
		Difficulty:  string(quest.Difficulty),
		Reward:      quest.Reward,
		XP:          quest.XP,
		Status:      string(quest.Status),
		Poster:      ConvertShortUser(poster),
		Deadline:    quest.Deadline.Format(DefaultTimeLayout),
		CreatedAt:   quest.CreatedAt.Format(DefaultTimeLayout),
		AssignedTo:  quest.AssignedTo.String,
	}

	if quest.CompletedAt.Valid {
		resp.CompletedAt = quest.CompletedAt.Time.Format(DefaultTimeLayout)
	}

	return resp
}

func ConvertQuestApplication(application *entity.QuestApplication) QuestApplication {
	if application == nil {
		return QuestApplication{}
	}

	return QuestApplication{
		ID:        application.ID,
		QuestID:   application.QuestID,
		UserID:    application.UserID,
		Username:  application.Username,
		AvatarURL: application.AvatarURL,
		Message:   application.Message,
		Status:    string(application.Status),
		AppliedAt: application.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertGuild(guild *entity.Guild, owner *entity.User) Guild {
	if guild == nil {
		return Guild{}
	}

	return Guild{
		ID:             guild.ID,
		Name:           guild.Name,
		Description:    guild.Description,
		Emblem:         guild.Emblem,
		Specialization: guild.Specialization,
		Category:       guild.Category,
		Owner:          ConvertShortUser(owner),
		Members:        guild.Members,
		CreatedAt:      guild.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertGuildMember(member *entity.GuildMember, user *entity.User) GuildMember {
	if member == nil {
		return GuildMember{}
	}

	resp := GuildMember{
		UserID:   member.UserID,
		Role:     string(member.Role),
		JoinedAt: member.CreatedAt.Format(DefaultTimeLayout),
	}

	if user != nil {
		resp.Name = user.Name
		resp.AvatarURL = user.AvatarURL
	}

	return resp
}

func ConvertGuildApplication(application *entity.GuildApplication) GuildApplication {
	if application == nil {
		return GuildApplication{}
	}

	return GuildApplication{
		ID:        application.ID,
		GuildID:   application.GuildID,
		UserID:    application.UserID,
		Username:  application.Username,
		AvatarURL: application.AvatarURL,
		Skills:    application.Skills,
		Message:   application.Message,
		Status:    string(application.Status),
		AppliedAt: application.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertTransaction(tx *entity.Transaction) Transaction {
	if tx == nil {
		return Transaction{}
	}

	return Transaction{
		ID:        tx.ID,
		Type:      string(tx.Type),
		Amount:    tx.Amount,
		Note:      tx.Note,
		CreatedAt: tx.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertMessage(message *entity.Message) Message {
	if message == nil {
		return Message{}
	}

	return Message{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		IsRead:     message.IsRead,
		CreatedAt:  message.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertReport(report *entity.Report) Report {
	if report == nil {
		return Report{}
	}

	return Report{
		ID:         report.ID,
		Type:       string(report.Type),
		TargetID:   report.TargetID,
		TargetName: report.TargetName,
		Reason:     report.Reason,
		ReportedBy: report.ReportedBy,
		Status:     string(report.Status),
		CreatedAt:  report.CreatedAt.Format(DefaultTimeLayout),
	}
}
