package constants

import "fmt"

// Role yang dikenal sistem (closed set)
const (
	RoleDirector = "director"
	RoleTeacher  = "teacher"
	RoleStudent  = "student"
	RoleParent   = "parent"
)

// Template pesan error role
const (
	ErrOnlyDirectorCanAccess = "Hanya direktur yang boleh mengakses fitur %s."
	ErrOnlyTeacherCanAccess  = "Hanya guru yang boleh mengakses fitur %s."
	ErrOnlyStudentCanAccess  = "Hanya siswa yang boleh mengakses fitur %s."
	ErrOnlyParentCanAccess   = "Hanya orang tua yang boleh mengakses fitur %s."
)

func RoleErrorDirector(feature string) string {
	return fmt.Sprintf(ErrOnlyDirectorCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeacherCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentCanAccess, feature)
}

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleDirector,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}

	DirectorOnly = []string{RoleDirector}
	TeacherOnly  = []string{RoleTeacher}
	StudentOnly  = []string{RoleStudent}
	ParentOnly   = []string{RoleParent}

	StaffRoles = []string{
		RoleDirector,
		RoleTeacher,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
