package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
)

func TestDecideDirectorOperations(t *testing.T) {
	for _, action := range []Action{
		ActionUserManage, ActionClassManage, ActionSubjectManage,
		ActionScheduleManage, ActionHolidayManage, ActionParentLink,
		ActionNotifyBroadcast,
	} {
		assert.True(t, Decide(constants.RoleDirector, action).Allowed, string(action))
		assert.False(t, Decide(constants.RoleTeacher, action).Allowed, string(action))
		assert.False(t, Decide(constants.RoleStudent, action).Allowed, string(action))
		assert.False(t, Decide(constants.RoleParent, action).Allowed, string(action))
	}
}

func TestDecideTeacherOperations(t *testing.T) {
	for _, action := range []Action{
		ActionGradeWrite, ActionAttendanceWrite, ActionLessonPlanWrite,
		ActionStudentListOwn, ActionScheduleTeach,
	} {
		assert.True(t, Decide(constants.RoleTeacher, action).Allowed, string(action))
		assert.False(t, Decide(constants.RoleStudent, action).Allowed, string(action))
		assert.False(t, Decide(constants.RoleParent, action).Allowed, string(action))
	}
}

func TestDecideNotifyClassAllowsStaffOnly(t *testing.T) {
	assert.True(t, Decide(constants.RoleDirector, ActionNotifyClass).Allowed)
	assert.True(t, Decide(constants.RoleTeacher, ActionNotifyClass).Allowed)
	assert.False(t, Decide(constants.RoleStudent, ActionNotifyClass).Allowed)
	assert.False(t, Decide(constants.RoleParent, ActionNotifyClass).Allowed)
}

func TestDecideStudentAndParentOperations(t *testing.T) {
	assert.True(t, Decide(constants.RoleStudent, ActionGradeViewOwn).Allowed)
	assert.True(t, Decide(constants.RoleStudent, ActionInboxView).Allowed)
	assert.False(t, Decide(constants.RoleTeacher, ActionGradeViewOwn).Allowed)

	assert.True(t, Decide(constants.RoleParent, ActionChildView).Allowed)
	assert.False(t, Decide(constants.RoleStudent, ActionChildView).Allowed)
}

func TestDecideDeniedComesWithReason(t *testing.T) {
	d := Decide(constants.RoleStudent, ActionUserManage)
	require.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason)

	allowed := Decide(constants.RoleDirector, ActionUserManage)
	assert.True(t, allowed.Allowed)
	assert.Empty(t, allowed.Reason)
}

func TestDecideDenialUsesRoleTemplate(t *testing.T) {
	d := Decide(constants.RoleStudent, ActionUserManage)
	require.False(t, d.Allowed)
	assert.Equal(t, constants.RoleErrorDirector(string(ActionUserManage)), d.Reason)

	d = Decide(constants.RoleDirector, ActionGradeWrite)
	require.False(t, d.Allowed)
	assert.Equal(t, constants.RoleErrorTeacher(string(ActionGradeWrite)), d.Reason)

	d = Decide(constants.RoleTeacher, ActionChildView)
	require.False(t, d.Allowed)
	assert.Equal(t, constants.RoleErrorParent(string(ActionChildView)), d.Reason)

	// action multi-role tidak pakai template per-role
	d = Decide(constants.RoleParent, ActionNotifyClass)
	require.False(t, d.Allowed)
	assert.Contains(t, d.Reason, string(ActionNotifyClass))
}

func TestDecideEmptyRoleIsDenied(t *testing.T) {
	d := Decide("", ActionGradeViewOwn)
	assert.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason)
}

func TestDecideUnknownActionIsDenied(t *testing.T) {
	d := Decide(constants.RoleDirector, Action("tidak.ada"))
	assert.False(t, d.Allowed)
}

// Setiap action terdaftar harus punya minimal satu role yang diizinkan —
// action tanpa pemilik berarti tabel kebijakan salah ketik.
func TestEveryActionHasAnAllowedRole(t *testing.T) {
	for _, action := range Actions() {
		granted := false
		for _, role := range constants.AllRoles {
			if Decide(role, action).Allowed {
				granted = true
				break
			}
		}
		assert.True(t, granted, "action %q tidak dimiliki role manapun", action)
	}
}
