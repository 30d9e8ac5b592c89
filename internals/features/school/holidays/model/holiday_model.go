package model

import (
	"time"

	"gorm.io/datatypes"
)

// HolidayModel merepresentasikan tabel holidays (rentang tanggal inklusif).
type HolidayModel struct {
	ID          int            `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	StartDate   datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate     datatypes.Date `gorm:"not null" json:"end_date"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (HolidayModel) TableName() string {
	return "holidays"
}
