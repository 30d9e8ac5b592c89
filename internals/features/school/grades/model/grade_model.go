package model

import (
	"time"

	"gorm.io/datatypes"
)

// GradeModel merepresentasikan tabel grades.
type GradeModel struct {
	ID        int            `gorm:"primaryKey" json:"id"`
	StudentID int            `gorm:"column:student_id;not null;index" json:"student_id"`
	SubjectID int            `gorm:"column:subject_id;not null;index" json:"subject_id"`
	Grade     int            `gorm:"not null" json:"grade"`
	Date      datatypes.Date `gorm:"not null" json:"date"`
	Comment   *string        `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (GradeModel) TableName() string {
	return "grades"
}
