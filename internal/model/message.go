package model

type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

type SendMessageResponse struct {
	ID string `json:"id"`
}

type GetConversationRequest struct {
	UserID string `json:"user_id" form:"user_id"`
	Offset int    `json:"offset" form:"offset"`
	Limit  int    `json:"limit" form:"limit"`
}

type GetConversationResponse struct {
	Messages []Message `json:"messages"`
}

type MarkMessagesReadRequest struct {
	SenderID string `json:"sender_id"`
}

type MarkMessagesReadResponse struct{}
