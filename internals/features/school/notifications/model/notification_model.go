package model

import "time"

// NotificationModel merepresentasikan tabel notifications: inbox polling,
// satu baris per penerima hasil fan-out (tidak ada push).
type NotificationModel struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	SenderID   int       `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID int       `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
