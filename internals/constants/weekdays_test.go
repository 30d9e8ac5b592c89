package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolWeekMondayThroughSaturday(t *testing.T) {
	require.Len(t, SchoolWeekdays, 6)
	assert.Equal(t, "Monday", SchoolWeekdays[0])
	assert.Equal(t, "Saturday", SchoolWeekdays[5])

	assert.True(t, IsSchoolWeekday("Wednesday"))
	assert.False(t, IsSchoolWeekday("Sunday"), "Minggu bukan hari sekolah")
	assert.False(t, IsSchoolWeekday("monday"), "nama hari case-sensitive")
}

func TestWeekdayName(t *testing.T) {
	// 17 Agustus 2024 jatuh pada Sabtu
	assert.Equal(t, "Saturday", WeekdayName(time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)))
}
