// internals/features/school/schedules/service/timetable_service.go
//
// Penyusunan grid jadwal mingguan: fungsi murni tanpa akses database supaya
// mudah diuji. Controller yang bertanggung jawab mengambil baris dari DB.
package service

import (
	"sort"

	"sekolahku_backend/internals/constants"
	scheduleDto "sekolahku_backend/internals/features/school/schedules/dto"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
)

// Annotation memberi label nama pada entri jadwal (nama mapel / guru / kelas).
type Annotation struct {
	ClassName   string
	SubjectName string
	TeacherName string
}

// AnnotationLookup memetakan subject_id → label tampilan.
type AnnotationLookup map[int]Annotation

// BuildWeekTimetable menyusun entri jadwal menjadi 6 kelompok hari tetap
// (Senin–Sabtu). Hari tanpa pelajaran tetap muncul dengan entri kosong,
// dan entri tiap hari terurut menaik menurut lesson_number.
func BuildWeekTimetable(entries []scheduleModel.ScheduleModel, lookup AnnotationLookup) []*scheduleDto.DayScheduleResponse {
	byDay := make(map[string][]*scheduleDto.ScheduleEntryResponse, len(constants.SchoolWeekdays))
	for i := range entries {
		e := &entries[i]
		resp := annotate(e, lookup)
		byDay[e.DayOfWeek] = append(byDay[e.DayOfWeek], resp)
	}

	week := make([]*scheduleDto.DayScheduleResponse, 0, len(constants.SchoolWeekdays))
	for _, day := range constants.SchoolWeekdays {
		dayEntries := byDay[day]
		sort.SliceStable(dayEntries, func(i, j int) bool {
			return dayEntries[i].LessonNumber < dayEntries[j].LessonNumber
		})
		if dayEntries == nil {
			dayEntries = []*scheduleDto.ScheduleEntryResponse{}
		}
		week = append(week, &scheduleDto.DayScheduleResponse{Day: day, Entries: dayEntries})
	}
	return week
}

// DayEntries menyaring entri satu hari tertentu, terurut per lesson_number.
func DayEntries(entries []scheduleModel.ScheduleModel, day string, lookup AnnotationLookup) []*scheduleDto.ScheduleEntryResponse {
	out := []*scheduleDto.ScheduleEntryResponse{}
	for i := range entries {
		if entries[i].DayOfWeek != day {
			continue
		}
		out = append(out, annotate(&entries[i], lookup))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LessonNumber < out[j].LessonNumber
	})
	return out
}

// SlotTaken memeriksa apakah slot (day, lesson_number) sudah terpakai.
func SlotTaken(entries []scheduleModel.ScheduleModel, day string, lessonNumber int) bool {
	for i := range entries {
		if entries[i].DayOfWeek == day && entries[i].LessonNumber == lessonNumber {
			return true
		}
	}
	return false
}

func annotate(m *scheduleModel.ScheduleModel, lookup AnnotationLookup) *scheduleDto.ScheduleEntryResponse {
	resp := scheduleDto.NewScheduleEntryResponse(m)
	if lookup != nil {
		if a, ok := lookup[m.SubjectID]; ok {
			resp.ClassName = a.ClassName
			resp.SubjectName = a.SubjectName
			resp.TeacherName = a.TeacherName
		}
	}
	return resp
}
