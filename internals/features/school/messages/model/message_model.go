package model

import "time"

// MessageModel merepresentasikan tabel messages: pesan langsung antar user,
// dibaca lewat polling inbox.
type MessageModel struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	SenderID   int       `gorm:"column:sender_id;not null;index" json:"sender_id"`
	ReceiverID int       `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}
