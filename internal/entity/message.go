package entity

type Message struct {
	Base

	SenderID string
	Sender   User `gorm:"foreignKey:SenderID"`

	ReceiverID string
	Receiver   User `gorm:"foreignKey:ReceiverID"`

	Content string `gorm:"type:text"`
	IsRead  bool   `gorm:"default:false"`
}
