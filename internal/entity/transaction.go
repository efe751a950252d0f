package entity

import "github.com/peerquest/backend/pkg/enum"

type TransactionType string

var (
	TransactionPurchase    = enum.New(TransactionType("purchase"))
	TransactionCashOut     = enum.New(TransactionType("cash_out"))
	TransactionQuestReward = enum.New(TransactionType("quest_reward"))
)

// Transaction records a single gold balance change of a user. Amount is the
// signed delta applied to the balance.
type Transaction struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	Type   TransactionType
	Amount int64
	Note   string
}
