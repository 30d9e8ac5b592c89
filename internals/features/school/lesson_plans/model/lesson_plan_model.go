package model

import (
	"time"

	"gorm.io/datatypes"
)

// LessonPlanModel merepresentasikan tabel lesson_plans: rencana pembelajaran
// per mapel per pekan.
type LessonPlanModel struct {
	ID         int             `gorm:"primaryKey" json:"id"`
	SubjectID  int             `gorm:"column:subject_id;not null;index" json:"subject_id"`
	Week       int             `gorm:"not null" json:"week"`
	Date       *datatypes.Date `json:"date,omitempty"`
	Topic      string          `gorm:"size:200;not null" json:"topic"`
	Objectives *string         `gorm:"type:text" json:"objectives,omitempty"`
	Homework   *string         `gorm:"type:text" json:"homework,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (LessonPlanModel) TableName() string {
	return "lesson_plans"
}
