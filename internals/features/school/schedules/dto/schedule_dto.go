package dto

import (
	"strings"

	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
)

// CreateScheduleRequest — class_id datang dari path, sisanya dari body.
type CreateScheduleRequest struct {
	DayOfWeek    string `json:"day_of_week" validate:"required"`
	LessonNumber int    `json:"lesson_number" validate:"required,gte=1,lte=12"`
	SubjectID    int    `json:"subject_id" validate:"required,gt=0"`
	StartTime    string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string `json:"end_time" validate:"required,datetime=15:04"`
	IsBreak      *bool  `json:"is_break,omitempty"`
}

func (r *CreateScheduleRequest) Normalize() {
	r.DayOfWeek = strings.TrimSpace(r.DayOfWeek)
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
}

func (r *CreateScheduleRequest) ToModel(classID int) *scheduleModel.ScheduleModel {
	m := &scheduleModel.ScheduleModel{
		ClassID:      classID,
		DayOfWeek:    r.DayOfWeek,
		LessonNumber: r.LessonNumber,
		SubjectID:    r.SubjectID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
	}
	if r.IsBreak != nil {
		m.IsBreak = *r.IsBreak
	}
	return m
}

// ScheduleEntryResponse — satu slot pada grid jadwal, sudah dianotasi nama
// mapel + guru untuk tampilan.
type ScheduleEntryResponse struct {
	ID           int    `json:"id"`
	ClassID      int    `json:"class_id"`
	ClassName    string `json:"class_name,omitempty"`
	DayOfWeek    string `json:"day_of_week"`
	LessonNumber int    `json:"lesson_number"`
	SubjectID    int    `json:"subject_id"`
	SubjectName  string `json:"subject_name,omitempty"`
	TeacherName  string `json:"teacher_name,omitempty"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsBreak      bool   `json:"is_break"`
}

func NewScheduleEntryResponse(m *scheduleModel.ScheduleModel) *ScheduleEntryResponse {
	if m == nil {
		return nil
	}
	return &ScheduleEntryResponse{
		ID:           m.ID,
		ClassID:      m.ClassID,
		DayOfWeek:    m.DayOfWeek,
		LessonNumber: m.LessonNumber,
		SubjectID:    m.SubjectID,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		IsBreak:      m.IsBreak,
	}
}

// DayScheduleResponse — satu kolom grid (hari + slot terurut).
type DayScheduleResponse struct {
	Day     string                   `json:"day"`
	Entries []*ScheduleEntryResponse `json:"entries"`
}
