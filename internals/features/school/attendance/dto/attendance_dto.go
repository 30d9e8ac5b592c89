package dto

import (
	"strings"
	"time"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
)

// RecordAttendanceRequest — satu tanggal, banyak siswa sekaligus.
type RecordAttendanceRequest struct {
	Date    string            `json:"date" validate:"required,datetime=2006-01-02"`
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

type AttendanceEntry struct {
	StudentID int    `json:"student_id" validate:"required,gt=0"`
	Status    string `json:"status" validate:"required,oneof=present absent late excused"`
}

func (r *RecordAttendanceRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	for i := range r.Entries {
		r.Entries[i].Status = strings.TrimSpace(r.Entries[i].Status)
	}
}

type AttendanceResponse struct {
	ID          int       `json:"id"`
	StudentID   int       `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewAttendanceResponse(m *attendanceModel.AttendanceModel) *AttendanceResponse {
	if m == nil {
		return nil
	}
	return &AttendanceResponse{
		ID:        m.ID,
		StudentID: m.StudentID,
		Date:      time.Time(m.Date).Format("2006-01-02"),
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func NewAttendanceResponses(ms []attendanceModel.AttendanceModel) []*AttendanceResponse {
	out := make([]*AttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewAttendanceResponse(&ms[i]))
	}
	return out
}
