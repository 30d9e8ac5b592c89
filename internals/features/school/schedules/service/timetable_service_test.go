package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
)

func entry(day string, lesson, subjectID int) scheduleModel.ScheduleModel {
	return scheduleModel.ScheduleModel{
		ClassID:      1,
		DayOfWeek:    day,
		LessonNumber: lesson,
		SubjectID:    subjectID,
		StartTime:    "07:00",
		EndTime:      "07:45",
	}
}

func TestBuildWeekTimetableAlwaysHasSixDays(t *testing.T) {
	week := BuildWeekTimetable(nil, nil)
	require.Len(t, week, 6)

	expected := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	for i, day := range week {
		assert.Equal(t, expected[i], day.Day)
		assert.NotNil(t, day.Entries)
		assert.Empty(t, day.Entries)
	}
}

func TestBuildWeekTimetableSortsByLessonNumber(t *testing.T) {
	entries := []scheduleModel.ScheduleModel{
		entry("Monday", 3, 10),
		entry("Monday", 1, 11),
		entry("Monday", 2, 12),
		entry("Friday", 1, 13),
	}

	week := BuildWeekTimetable(entries, nil)
	require.Len(t, week, 6)

	monday := week[0]
	require.Len(t, monday.Entries, 3)
	assert.Equal(t, 1, monday.Entries[0].LessonNumber)
	assert.Equal(t, 2, monday.Entries[1].LessonNumber)
	assert.Equal(t, 3, monday.Entries[2].LessonNumber)

	friday := week[4]
	require.Len(t, friday.Entries, 1)
	assert.Equal(t, 13, friday.Entries[0].SubjectID)

	// Hari tanpa pelajaran tetap hadir, tidak hilang dari grid
	assert.Empty(t, week[1].Entries) // Tuesday
	assert.Empty(t, week[5].Entries) // Saturday
}

func TestBuildWeekTimetableAppliesAnnotations(t *testing.T) {
	entries := []scheduleModel.ScheduleModel{entry("Monday", 1, 7)}
	lookup := AnnotationLookup{
		7: {ClassName: "1A", SubjectName: "Matematika", TeacherName: "Bu Sari"},
	}

	week := BuildWeekTimetable(entries, lookup)
	e := week[0].Entries[0]
	assert.Equal(t, "Matematika", e.SubjectName)
	assert.Equal(t, "Bu Sari", e.TeacherName)
	assert.Equal(t, "1A", e.ClassName)
}

func TestDayEntriesFiltersAndSorts(t *testing.T) {
	entries := []scheduleModel.ScheduleModel{
		entry("Monday", 2, 1),
		entry("Tuesday", 1, 2),
		entry("Monday", 1, 3),
	}

	monday := DayEntries(entries, "Monday", nil)
	require.Len(t, monday, 2)
	assert.Equal(t, 1, monday[0].LessonNumber)
	assert.Equal(t, 2, monday[1].LessonNumber)

	sunday := DayEntries(entries, "Sunday", nil)
	assert.Empty(t, sunday)
}

func TestSlotTaken(t *testing.T) {
	entries := []scheduleModel.ScheduleModel{entry("Monday", 1, 1)}

	assert.True(t, SlotTaken(entries, "Monday", 1))
	assert.False(t, SlotTaken(entries, "Monday", 2))
	assert.False(t, SlotTaken(entries, "Tuesday", 1))
}
