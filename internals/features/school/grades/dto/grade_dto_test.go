package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGradeToModelDefaultsToToday(t *testing.T) {
	req := CreateGradeRequest{StudentID: 1, SubjectID: 2, Grade: 85}
	req.Normalize()

	m, err := req.ToModel()
	require.NoError(t, err)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, time.Time(m.Date))
	assert.Equal(t, 85, m.Grade)
}

func TestCreateGradeToModelExplicitDate(t *testing.T) {
	date := "2026-03-15"
	req := CreateGradeRequest{StudentID: 1, SubjectID: 2, Grade: 70, Date: &date}

	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", time.Time(m.Date).Format("2006-01-02"))
}

func TestCreateGradeToModelBadDate(t *testing.T) {
	date := "15-03-2026"
	req := CreateGradeRequest{StudentID: 1, SubjectID: 2, Grade: 70, Date: &date}

	_, err := req.ToModel()
	assert.Error(t, err)
}

func TestCreateGradeNormalize(t *testing.T) {
	blank := "   "
	comment := "  bagus sekali  "
	req := CreateGradeRequest{Date: &blank, Comment: &comment}
	req.Normalize()

	assert.Nil(t, req.Date)
	require.NotNil(t, req.Comment)
	assert.Equal(t, "bagus sekali", *req.Comment)
}
