package dto

import (
	"strings"
	"time"

	notificationModel "sekolahku_backend/internals/features/school/notifications/model"
)

// Mode penerima pengiriman notifikasi.
const (
	ReceiverAllStudents = "all_students"
	ReceiverClass       = "class"
	ReceiverIndividual  = "individual"
)

type SendNotificationRequest struct {
	ReceiverType string `json:"receiver_type" validate:"required,oneof=all_students class individual"`
	ClassID      *int   `json:"class_id" validate:"omitempty,gt=0"`
	StudentID    *int   `json:"student_id" validate:"omitempty,gt=0"`
	Title        string `json:"title" validate:"required,max=200"`
	Message      string `json:"message" validate:"required,max=5000"`
}

func (r *SendNotificationRequest) Normalize() {
	r.ReceiverType = strings.TrimSpace(strings.ToLower(r.ReceiverType))
	r.Title = strings.TrimSpace(r.Title)
	r.Message = strings.TrimSpace(r.Message)
}

// TargetMissing memeriksa kelengkapan target sesuai mode.
func (r *SendNotificationRequest) TargetMissing() string {
	switch r.ReceiverType {
	case ReceiverClass:
		if r.ClassID == nil {
			return "class_id wajib diisi untuk mode class"
		}
	case ReceiverIndividual:
		if r.StudentID == nil {
			return "student_id wajib diisi untuk mode individual"
		}
	}
	return ""
}

type NotificationResponse struct {
	ID         int       `json:"id"`
	SenderID   int       `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewNotificationResponse(m *notificationModel.NotificationModel) *NotificationResponse {
	if m == nil {
		return nil
	}
	return &NotificationResponse{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Title:     m.Title,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func NewNotificationResponses(ms []notificationModel.NotificationModel) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewNotificationResponse(&ms[i]))
	}
	return out
}
