package constants

import "time"

// SchoolWeekdays adalah urutan hari sekolah (Senin–Sabtu, tanpa Minggu).
// Satu-satunya sumber kebenaran untuk grid jadwal 6 kolom.
var SchoolWeekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

func IsSchoolWeekday(day string) bool {
	for _, d := range SchoolWeekdays {
		if d == day {
			return true
		}
	}
	return false
}

// WeekdayName mengembalikan nama hari untuk tanggal tertentu ("Monday" dst).
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}
