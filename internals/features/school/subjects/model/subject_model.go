package model

import "time"

// SubjectModel merepresentasikan tabel subjects.
// Satu mapel milik tepat satu kelas dan diajar tepat satu guru.
type SubjectModel struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	ClassID   int       `gorm:"column:class_id;not null;index" json:"class_id"`
	TeacherID int       `gorm:"column:teacher_id;not null;index" json:"teacher_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
