package entity

import "gorm.io/gorm"

func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Quest{},
		&QuestApplication{},
		&Guild{},
		&GuildMember{},
		&GuildApplication{},
		&Transaction{},
		&Message{},
		&Report{},
	)
}
