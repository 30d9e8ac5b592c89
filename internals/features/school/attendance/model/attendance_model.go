package model

import (
	"time"

	"gorm.io/datatypes"
)

// Status kehadiran (closed set)
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusExcused = "excused"
)

// AttendanceModel merepresentasikan tabel attendance: satu siswa, satu
// tanggal, satu status.
type AttendanceModel struct {
	ID        int            `gorm:"primaryKey" json:"id"`
	StudentID int            `gorm:"column:student_id;not null;index" json:"student_id"`
	Date      datatypes.Date `gorm:"not null" json:"date"`
	Status    string         `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
