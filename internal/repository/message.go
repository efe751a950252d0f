package repository

import (
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/xcontext"
)

type MessageRepository interface {
	Create(ctx xcontext.Context, data *entity.Message) error
	GetConversation(ctx xcontext.Context, userID, otherID string, offset, limit int) ([]entity.Message, error)
	MarkRead(ctx xcontext.Context, receiverID, senderID string) error
}

type messageRepository struct{}

func NewMessageRepository() MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(ctx xcontext.Context, data *entity.Message) error {
	return ctx.DB().Create(data).Error
}

func (r *messageRepository) GetConversation(
	ctx xcontext.Context, userID, otherID string, offset, limit int,
) ([]entity.Message, error) {
	result := []entity.Message{}
	if err := ctx.DB().
		Where("(sender_id=? AND receiver_id=?) OR (sender_id=? AND receiver_id=?)",
			userID, otherID, otherID, userID).
		Offset(offset).Limit(limit).
		Order("created_at ASC").
		Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *messageRepository) MarkRead(ctx xcontext.Context, receiverID, senderID string) error {
	return ctx.DB().Model(&entity.Message{}).
		Where("receiver_id=? AND sender_id=? AND is_read=?", receiverID, senderID, false).
		Update("is_read", true).Error
}
