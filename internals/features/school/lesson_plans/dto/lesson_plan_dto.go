package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	lessonPlanModel "sekolahku_backend/internals/features/school/lesson_plans/model"
)

type CreateLessonPlanRequest struct {
	SubjectID  int     `json:"subject_id" validate:"required,gt=0"`
	Week       int     `json:"week" validate:"required,gte=1,lte=53"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Topic      string  `json:"topic" validate:"required,max=200"`
	Objectives *string `json:"objectives" validate:"omitempty,max=2000"`
	Homework   *string `json:"homework" validate:"omitempty,max=2000"`
}

func (r *CreateLessonPlanRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Objectives = trimOptional(r.Objectives)
	r.Homework = trimOptional(r.Homework)
	if r.Date != nil && strings.TrimSpace(*r.Date) == "" {
		r.Date = nil
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *CreateLessonPlanRequest) ToModel() (*lessonPlanModel.LessonPlanModel, error) {
	m := &lessonPlanModel.LessonPlanModel{
		SubjectID:  r.SubjectID,
		Week:       r.Week,
		Topic:      r.Topic,
		Objectives: r.Objectives,
		Homework:   r.Homework,
	}
	if r.Date != nil {
		d, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return nil, err
		}
		dd := datatypes.Date(d)
		m.Date = &dd
	}
	return m, nil
}

type LessonPlanResponse struct {
	ID          int       `json:"id"`
	SubjectID   int       `json:"subject_id"`
	SubjectName string    `json:"subject_name,omitempty"`
	Week        int       `json:"week"`
	Date        *string   `json:"date,omitempty"`
	Topic       string    `json:"topic"`
	Objectives  *string   `json:"objectives,omitempty"`
	Homework    *string   `json:"homework,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewLessonPlanResponse(m *lessonPlanModel.LessonPlanModel) *LessonPlanResponse {
	if m == nil {
		return nil
	}
	resp := &LessonPlanResponse{
		ID:         m.ID,
		SubjectID:  m.SubjectID,
		Week:       m.Week,
		Topic:      m.Topic,
		Objectives: m.Objectives,
		Homework:   m.Homework,
		CreatedAt:  m.CreatedAt,
	}
	if m.Date != nil {
		d := time.Time(*m.Date).Format("2006-01-02")
		resp.Date = &d
	}
	return resp
}

func NewLessonPlanResponses(ms []lessonPlanModel.LessonPlanModel) []*LessonPlanResponse {
	out := make([]*LessonPlanResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewLessonPlanResponse(&ms[i]))
	}
	return out
}
