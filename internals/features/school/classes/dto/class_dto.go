package dto

import (
	"strings"
	"time"

	classModel "sekolahku_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	TeacherID *int   `json:"teacher_id,omitempty"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateClassRequest) ToModel() *classModel.ClassModel {
	return &classModel.ClassModel{
		Name:      r.Name,
		TeacherID: r.TeacherID,
	}
}

type ClassResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	TeacherID   *int      `json:"teacher_id,omitempty"`
	TeacherName string    `json:"teacher_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewClassResponse(m *classModel.ClassModel) *ClassResponse {
	if m == nil {
		return nil
	}
	return &ClassResponse{
		ID:        m.ID,
		Name:      m.Name,
		TeacherID: m.TeacherID,
		CreatedAt: m.CreatedAt,
	}
}

func NewClassResponses(ms []classModel.ClassModel) []*ClassResponse {
	out := make([]*ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewClassResponse(&ms[i]))
	}
	return out
}
