package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/model"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type MessageDomain interface {
	Send(xcontext.Context, *model.SendMessageRequest) (*model.SendMessageResponse, error)
	GetConversation(xcontext.Context, *model.GetConversationRequest) (*model.GetConversationResponse, error)
	MarkRead(xcontext.Context, *model.MarkMessagesReadRequest) (*model.MarkMessagesReadResponse, error)
}

type messageDomain struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageDomain(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) *messageDomain {
	return &messageDomain{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (d *messageDomain) Send(
	ctx xcontext.Context, req *model.SendMessageRequest,
) (*model.SendMessageResponse, error) {
	if req.Content == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty message")
	}

	senderID := xcontext.GetRequestUserID(ctx)
	if req.ReceiverID == senderID {
		return nil, errorx.New(errorx.BadRequest, "Not allow to message yourself")
	}

	if _, err := d.userRepo.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found receiver")
		}

		ctx.Logger().Errorf("Cannot get the receiver: %v", err)
		return nil, errorx.Unknown
	}

	message := &entity.Message{
		Base:       entity.Base{ID: uuid.NewString()},
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	if err := d.messageRepo.Create(ctx, message); err != nil {
		ctx.Logger().Errorf("Cannot create message: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SendMessageResponse{ID: message.ID}, nil
}

func (d *messageDomain) GetConversation(
	ctx xcontext.Context, req *model.GetConversationRequest,
) (*model.GetConversationResponse, error) {
	apiCfg := ctx.Configs().ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	messages, err := d.messageRepo.GetConversation(
		ctx, xcontext.GetRequestUserID(ctx), req.UserID, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get conversation: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Message{}
	for i := range messages {
		resp = append(resp, model.ConvertMessage(&messages[i]))
	}

	return &model.GetConversationResponse{Messages: resp}, nil
}

func (d *messageDomain) MarkRead(
	ctx xcontext.Context, req *model.MarkMessagesReadRequest,
) (*model.MarkMessagesReadResponse, error) {
	err := d.messageRepo.MarkRead(ctx, xcontext.GetRequestUserID(ctx), req.SenderID)
	if err != nil {
		ctx.Logger().Errorf("Cannot mark messages as read: %v", err)
		return nil, errorx.Unknown
	}

	return &model.MarkMessagesReadResponse{}, nil
}
