// internals/features/school/holidays/service/holiday_service.go
package service

import (
	"time"

	holidayModel "sekolahku_backend/internals/features/school/holidays/model"
)

// UpcomingWindowDays: libur "akan datang" = mulai dalam 7 hari ke depan.
const UpcomingWindowDays = 7

// InUpcomingWindow: true bila start_date jatuh pada rentang
// [today, today+7] inklusif kedua ujungnya. Hanya tanggal yang dibandingkan,
// komponen jam diabaikan.
func InUpcomingWindow(today, start time.Time) bool {
	t := truncateDate(today)
	s := truncateDate(start)
	end := t.AddDate(0, 0, UpcomingWindowDays)
	return !s.Before(t) && !s.After(end)
}

// FilterUpcoming menyaring libur yang masuk jendela 7 hari, urutan input
// dipertahankan (controller mengurutkan per start_date dari query).
func FilterUpcoming(today time.Time, holidays []holidayModel.HolidayModel) []holidayModel.HolidayModel {
	out := make([]holidayModel.HolidayModel, 0, len(holidays))
	for _, h := range holidays {
		if InUpcomingWindow(today, time.Time(h.StartDate)) {
			out = append(out, h)
		}
	}
	return out
}

// IsHolidayDate: true bila tanggal berada pada rentang salah satu libur
// (start_date..end_date inklusif).
func IsHolidayDate(date time.Time, holidays []holidayModel.HolidayModel) bool {
	d := truncateDate(date)
	for _, h := range holidays {
		start := truncateDate(time.Time(h.StartDate))
		end := truncateDate(time.Time(h.EndDate))
		if !d.Before(start) && !d.After(end) {
			return true
		}
	}
	return false
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
