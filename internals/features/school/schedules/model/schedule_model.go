package model

import "time"

// ScheduleModel merepresentasikan tabel schedules: satu slot pelajaran pada
// grid jadwal mingguan sebuah kelas. (class_id, day_of_week, lesson_number)
// unik — double booking ditolak di DB dan di controller.
type ScheduleModel struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	ClassID      int       `gorm:"column:class_id;not null;index" json:"class_id"`
	DayOfWeek    string    `gorm:"size:20;not null" json:"day_of_week"` // Monday..Saturday
	LessonNumber int       `gorm:"not null" json:"lesson_number"`
	SubjectID    int       `gorm:"column:subject_id;not null;index" json:"subject_id"`
	StartTime    string    `gorm:"size:10;not null" json:"start_time"` // "08:00"
	EndTime      string    `gorm:"size:10;not null" json:"end_time"`   // "08:45"
	IsBreak      bool      `gorm:"not null;default:false" json:"is_break"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}
