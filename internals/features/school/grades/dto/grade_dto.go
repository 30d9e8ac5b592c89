package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	gradeModel "sekolahku_backend/internals/features/school/grades/model"
)

type CreateGradeRequest struct {
	StudentID int     `json:"student_id" validate:"required,gt=0"`
	SubjectID int     `json:"subject_id" validate:"required,gt=0"`
	Grade     int     `json:"grade" validate:"required,gte=1,lte=100"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Comment   *string `json:"comment" validate:"omitempty,max=500"`
}

func (r *CreateGradeRequest) Normalize() {
	if r.Date != nil {
		d := strings.TrimSpace(*r.Date)
		if d == "" {
			r.Date = nil
		} else {
			r.Date = &d
		}
	}
	if r.Comment != nil {
		c := strings.TrimSpace(*r.Comment)
		if c == "" {
			r.Comment = nil
		} else {
			r.Comment = &c
		}
	}
}

// ToModel memakai tanggal hari ini bila date tidak dikirim.
func (r *CreateGradeRequest) ToModel() (*gradeModel.GradeModel, error) {
	now := time.Now()
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if r.Date != nil {
		parsed, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return nil, err
		}
		d = parsed
	}
	return &gradeModel.GradeModel{
		StudentID: r.StudentID,
		SubjectID: r.SubjectID,
		Grade:     r.Grade,
		Date:      datatypes.Date(d),
		Comment:   r.Comment,
	}, nil
}

type GradeResponse struct {
	ID          int       `json:"id"`
	StudentID   int       `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	SubjectID   int       `json:"subject_id"`
	SubjectName string    `json:"subject_name,omitempty"`
	Grade       int       `json:"grade"`
	Date        string    `json:"date"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewGradeResponse(m *gradeModel.GradeModel) *GradeResponse {
	if m == nil {
		return nil
	}
	return &GradeResponse{
		ID:        m.ID,
		StudentID: m.StudentID,
		SubjectID: m.SubjectID,
		Grade:     m.Grade,
		Date:      time.Time(m.Date).Format("2006-01-02"),
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

func NewGradeResponses(ms []gradeModel.GradeModel) []*GradeResponse {
	out := make([]*GradeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewGradeResponse(&ms[i]))
	}
	return out
}
