// internals/policy/policy.go
//
// Satu tabel kebijakan akses untuk seluruh operasi. Semua pengecekan role
// lewat Decide — tidak ada perbandingan string role yang tersebar di controller.
package policy

import (
	"fmt"

	"sekolahku_backend/internals/constants"
)

// Action adalah operasi yang dimintakan izin.
type Action string

const (
	// Director
	ActionUserManage      Action = "user.manage"
	ActionClassManage     Action = "class.manage"
	ActionSubjectManage   Action = "subject.manage"
	ActionScheduleManage  Action = "schedule.manage"
	ActionHolidayManage   Action = "holiday.manage"
	ActionParentLink      Action = "parent.link"
	ActionNotifyBroadcast Action = "notify.broadcast"

	// Teacher (scope kepemilikan dicek terpisah di controller)
	ActionGradeWrite      Action = "grade.write"
	ActionAttendanceWrite Action = "attendance.write"
	ActionLessonPlanWrite Action = "lesson_plan.write"
	ActionStudentListOwn  Action = "student.list_own"
	ActionNotifyClass     Action = "notify.class"
	ActionScheduleTeach   Action = "schedule.view_teaching"

	// Student
	ActionGradeViewOwn      Action = "grade.view_own"
	ActionAttendanceViewOwn Action = "attendance.view_own"
	ActionLessonPlanViewOwn Action = "lesson_plan.view_own"
	ActionScheduleViewClass Action = "schedule.view_class"
	ActionInboxView         Action = "inbox.view"

	// Parent
	ActionChildView Action = "child.view"

	// Dashboard per role
	ActionDashboardDirector Action = "dashboard.director"
	ActionDashboardTeacher  Action = "dashboard.teacher"
	ActionDashboardStudent  Action = "dashboard.student"
	ActionDashboardParent   Action = "dashboard.parent"
)

// table: action → role yang diizinkan (closed set).
var table = map[Action][]string{
	ActionUserManage:      constants.DirectorOnly,
	ActionClassManage:     constants.DirectorOnly,
	ActionSubjectManage:   constants.DirectorOnly,
	ActionScheduleManage:  constants.DirectorOnly,
	ActionHolidayManage:   constants.DirectorOnly,
	ActionParentLink:      constants.DirectorOnly,
	ActionNotifyBroadcast: constants.DirectorOnly,

	ActionGradeWrite:      constants.TeacherOnly,
	ActionAttendanceWrite: constants.TeacherOnly,
	ActionLessonPlanWrite: constants.TeacherOnly,
	ActionStudentListOwn:  constants.TeacherOnly,
	ActionNotifyClass:     constants.StaffRoles,
	ActionScheduleTeach:   constants.TeacherOnly,

	ActionGradeViewOwn:      constants.StudentOnly,
	ActionAttendanceViewOwn: constants.StudentOnly,
	ActionLessonPlanViewOwn: constants.StudentOnly,
	ActionScheduleViewClass: constants.StudentOnly,
	ActionInboxView:         constants.StudentOnly,

	ActionChildView: constants.ParentOnly,

	ActionDashboardDirector: constants.DirectorOnly,
	ActionDashboardTeacher:  constants.TeacherOnly,
	ActionDashboardStudent:  constants.StudentOnly,
	ActionDashboardParent:   constants.ParentOnly,
}

// Decision adalah hasil evaluasi kebijakan: izin + alasan saat ditolak.
type Decision struct {
	Allowed bool
	Reason  string
}

// Decide mengevaluasi (role, action). Role kosong = belum login.
func Decide(role string, action Action) Decision {
	if role == "" {
		return Decision{Allowed: false, Reason: "belum login"}
	}
	allowed, ok := table[action]
	if !ok {
		return Decision{Allowed: false, Reason: fmt.Sprintf("operasi %q tidak dikenal", action)}
	}
	for _, r := range allowed {
		if r == role {
			return Decision{Allowed: true}
		}
	}
	return Decision{Allowed: false, Reason: denialReason(allowed, action)}
}

// denialReason memakai template pesan per-role bila action milik satu role saja.
func denialReason(allowed []string, action Action) string {
	if len(allowed) == 1 {
		switch allowed[0] {
		case constants.RoleDirector:
			return constants.RoleErrorDirector(string(action))
		case constants.RoleTeacher:
			return constants.RoleErrorTeacher(string(action))
		case constants.RoleStudent:
			return constants.RoleErrorStudent(string(action))
		case constants.RoleParent:
			return constants.RoleErrorParent(string(action))
		}
	}
	return fmt.Sprintf("role Anda tidak berhak menjalankan %q", action)
}

// Actions mengembalikan seluruh action terdaftar (untuk pengujian kelengkapan).
func Actions() []Action {
	out := make([]Action, 0, len(table))
	for a := range table {
		out = append(out, a)
	}
	return out
}
