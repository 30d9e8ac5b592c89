// internals/route/details/teacher_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
	dashboardController "sekolahku_backend/internals/features/school/dashboard/controller"
	gradeController "sekolahku_backend/internals/features/school/grades/controller"
	lessonPlanController "sekolahku_backend/internals/features/school/lesson_plans/controller"
	scheduleController "sekolahku_backend/internals/features/school/schedules/controller"
	teacherController "sekolahku_backend/internals/features/users/teacher/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/policy"
)

// TeacherRoutes: /api/t — operasi guru, di-scope ke mapel/kelas yang diampu.
func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	grades := gradeController.NewGradeController(db)
	attendance := attendanceController.NewAttendanceController(db)
	lessonPlans := lessonPlanController.NewLessonPlanController(db)
	schedules := scheduleController.NewScheduleController(db)
	teachers := teacherController.NewTeacherController(db)
	dashboard := dashboardController.NewDashboardController(db)

	t := api.Group("/t", authMiddleware.AuthMiddleware(db))

	// Nilai
	gradeGroup := t.Group("/grades", authMiddleware.RequireAction(policy.ActionGradeWrite))
	gradeGroup.Get("/", grades.ListForTeacher)
	gradeGroup.Post("/", grades.CreateGrade)
	gradeGroup.Delete("/:id", grades.DeleteGrade)

	// Absensi
	attGroup := t.Group("/attendance", authMiddleware.RequireAction(policy.ActionAttendanceWrite))
	attGroup.Get("/", attendance.ListForTeacher)
	attGroup.Post("/", attendance.RecordAttendance)

	// RPP
	planGroup := t.Group("/lesson-plans", authMiddleware.RequireAction(policy.ActionLessonPlanWrite))
	planGroup.Get("/", lessonPlans.ListForTeacher)
	planGroup.Post("/", lessonPlans.CreateLessonPlan)
	planGroup.Put("/:id", lessonPlans.UpdateLessonPlan)
	planGroup.Delete("/:id", lessonPlans.DeleteLessonPlan)

	// Siswa & jadwal mengajar
	t.Get("/students",
		authMiddleware.RequireAction(policy.ActionStudentListOwn),
		teachers.ListOwnStudents)
	t.Get("/schedule",
		authMiddleware.RequireAction(policy.ActionScheduleTeach),
		schedules.GetTeachingTimetable)

	// Dashboard
	t.Get("/dashboard",
		authMiddleware.RequireAction(policy.ActionDashboardTeacher),
		dashboard.TeacherDashboard)
}
