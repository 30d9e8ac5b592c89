package model

import "time"

// ClassModel merepresentasikan tabel classes.
// teacher_id = wali kelas (paling banyak satu per kelas).
type ClassModel struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	TeacherID *int      `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}
