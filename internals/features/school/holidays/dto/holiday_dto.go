package dto

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"

	holidayModel "sekolahku_backend/internals/features/school/holidays/model"
)

var ErrEndBeforeStart = errors.New("tanggal selesai sebelum tanggal mulai")

type CreateHolidayRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (r *CreateHolidayRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

func (r *CreateHolidayRequest) ToModel() (*holidayModel.HolidayModel, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	return &holidayModel.HolidayModel{
		Name:        r.Name,
		StartDate:   datatypes.Date(start),
		EndDate:     datatypes.Date(end),
		Description: r.Description,
	}, nil
}

type HolidayResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewHolidayResponse(m *holidayModel.HolidayModel) *HolidayResponse {
	if m == nil {
		return nil
	}
	return &HolidayResponse{
		ID:          m.ID,
		Name:        m.Name,
		StartDate:   time.Time(m.StartDate).Format("2006-01-02"),
		EndDate:     time.Time(m.EndDate).Format("2006-01-02"),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func NewHolidayResponses(ms []holidayModel.HolidayModel) []*HolidayResponse {
	out := make([]*HolidayResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewHolidayResponse(&ms[i]))
	}
	return out
}
