package dto

import (
	"strings"
	"time"

	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

type CreateSubjectRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	ClassID   int    `json:"class_id" validate:"required,gt=0"`
	TeacherID int    `json:"teacher_id" validate:"required,gt=0"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateSubjectRequest) ToModel() *subjectModel.SubjectModel {
	return &subjectModel.SubjectModel{
		Name:      r.Name,
		ClassID:   r.ClassID,
		TeacherID: r.TeacherID,
	}
}

type SubjectResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ClassID     int       `json:"class_id"`
	ClassName   string    `json:"class_name,omitempty"`
	TeacherID   int       `json:"teacher_id"`
	TeacherName string    `json:"teacher_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSubjectResponse(m *subjectModel.SubjectModel) *SubjectResponse {
	if m == nil {
		return nil
	}
	return &SubjectResponse{
		ID:        m.ID,
		Name:      m.Name,
		ClassID:   m.ClassID,
		TeacherID: m.TeacherID,
		CreatedAt: m.CreatedAt,
	}
}

func NewSubjectResponses(ms []subjectModel.SubjectModel) []*SubjectResponse {
	out := make([]*SubjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewSubjectResponse(&ms[i]))
	}
	return out
}
