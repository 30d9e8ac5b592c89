package dto

import (
	"strings"
	"time"

	messageModel "sekolahku_backend/internals/features/school/messages/model"
)

type SendMessageRequest struct {
	ReceiverID int    `json:"receiver_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required,max=5000"`
}

func (r *SendMessageRequest) Normalize() {
	r.Content = strings.TrimSpace(r.Content)
}

func (r *SendMessageRequest) ToModel(senderID int) *messageModel.MessageModel {
	return &messageModel.MessageModel{
		SenderID:   senderID,
		ReceiverID: r.ReceiverID,
		Content:    r.Content,
	}
}

type MessageResponse struct {
	ID           int       `json:"id"`
	SenderID     int       `json:"sender_id"`
	SenderName   string    `json:"sender_name,omitempty"`
	ReceiverID   int       `json:"receiver_id"`
	ReceiverName string    `json:"receiver_name,omitempty"`
	Content      string    `json:"content"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewMessageResponse(m *messageModel.MessageModel) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}

func NewMessageResponses(ms []messageModel.MessageModel) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewMessageResponse(&ms[i]))
	}
	return out
}
