package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	holidayModel "sekolahku_backend/internals/features/school/holidays/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func holiday(name string, start, end time.Time) holidayModel.HolidayModel {
	return holidayModel.HolidayModel{
		Name:      name,
		StartDate: datatypes.Date(start),
		EndDate:   datatypes.Date(end),
	}
}

func TestInUpcomingWindowBoundaries(t *testing.T) {
	today := day(2024, 6, 1)

	assert.True(t, InUpcomingWindow(today, day(2024, 6, 1)), "hari ini termasuk")
	assert.True(t, InUpcomingWindow(today, day(2024, 6, 5)))
	assert.True(t, InUpcomingWindow(today, day(2024, 6, 8)), "hari ke-7 termasuk")
	assert.False(t, InUpcomingWindow(today, day(2024, 6, 9)), "hari ke-8 di luar jendela")
	assert.False(t, InUpcomingWindow(today, day(2024, 5, 31)), "kemarin di luar jendela")
}

func TestInUpcomingWindowIgnoresClock(t *testing.T) {
	today := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	start := time.Date(2024, 6, 8, 1, 0, 0, 0, time.UTC)
	assert.True(t, InUpcomingWindow(today, start))
}

func TestFilterUpcomingKeepsOrder(t *testing.T) {
	today := day(2024, 6, 1)
	holidays := []holidayModel.HolidayModel{
		holiday("Lewat", day(2024, 5, 20), day(2024, 5, 21)),
		holiday("Besok", day(2024, 6, 2), day(2024, 6, 2)),
		holiday("Minggu depan", day(2024, 6, 7), day(2024, 6, 10)),
		holiday("Bulan depan", day(2024, 7, 1), day(2024, 7, 3)),
	}

	upcoming := FilterUpcoming(today, holidays)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "Besok", upcoming[0].Name)
	assert.Equal(t, "Minggu depan", upcoming[1].Name)
}

func TestIsHolidayDateInclusiveRange(t *testing.T) {
	holidays := []holidayModel.HolidayModel{
		holiday("Libur semester", day(2024, 6, 10), day(2024, 6, 14)),
	}

	assert.True(t, IsHolidayDate(day(2024, 6, 10), holidays), "hari pertama")
	assert.True(t, IsHolidayDate(day(2024, 6, 12), holidays))
	assert.True(t, IsHolidayDate(day(2024, 6, 14), holidays), "hari terakhir")
	assert.False(t, IsHolidayDate(day(2024, 6, 9), holidays))
	assert.False(t, IsHolidayDate(day(2024, 6, 15), holidays))
}
