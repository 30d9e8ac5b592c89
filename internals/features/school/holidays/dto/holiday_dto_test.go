package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHolidayRequestToModel(t *testing.T) {
	req := CreateHolidayRequest{
		Name:      "Libur semester",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-14",
	}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", time.Time(m.StartDate).Format("2006-01-02"))
	assert.Equal(t, "2024-06-14", time.Time(m.EndDate).Format("2006-01-02"))
}

func TestCreateHolidayRequestRejectsEndBeforeStart(t *testing.T) {
	req := CreateHolidayRequest{
		Name:      "Terbalik",
		StartDate: "2024-06-14",
		EndDate:   "2024-06-10",
	}

	_, err := req.ToModel()
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestCreateHolidayRequestSingleDay(t *testing.T) {
	req := CreateHolidayRequest{
		Name:      "Satu hari",
		StartDate: "2024-08-17",
		EndDate:   "2024-08-17",
	}

	_, err := req.ToModel()
	assert.NoError(t, err, "libur satu hari (start == end) sah")
}

func TestCreateHolidayRequestNormalizeEmptiesBlankDescription(t *testing.T) {
	blank := "   "
	req := CreateHolidayRequest{Description: &blank}
	req.Normalize()
	assert.Nil(t, req.Description)
}
