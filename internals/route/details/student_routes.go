// internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "sekolahku_backend/internals/features/school/attendance/controller"
	dashboardController "sekolahku_backend/internals/features/school/dashboard/controller"
	gradeController "sekolahku_backend/internals/features/school/grades/controller"
	lessonPlanController "sekolahku_backend/internals/features/school/lesson_plans/controller"
	notificationController "sekolahku_backend/internals/features/school/notifications/controller"
	scheduleController "sekolahku_backend/internals/features/school/schedules/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/policy"
)

// StudentRoutes: /api/s — siswa hanya membaca data miliknya sendiri.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	grades := gradeController.NewGradeController(db)
	attendance := attendanceController.NewAttendanceController(db)
	lessonPlans := lessonPlanController.NewLessonPlanController(db)
	schedules := scheduleController.NewScheduleController(db)
	notifications := notificationController.NewNotificationController(db)
	dashboard := dashboardController.NewDashboardController(db)

	s := api.Group("/s", authMiddleware.AuthMiddleware(db))

	s.Get("/grades",
		authMiddleware.RequireAction(policy.ActionGradeViewOwn),
		grades.ListOwn)
	s.Get("/attendance",
		authMiddleware.RequireAction(policy.ActionAttendanceViewOwn),
		attendance.ListOwn)
	s.Get("/lesson-plans",
		authMiddleware.RequireAction(policy.ActionLessonPlanViewOwn),
		lessonPlans.ListForStudent)
	s.Get("/schedule",
		authMiddleware.RequireAction(policy.ActionScheduleViewClass),
		schedules.GetOwnClassTimetable)

	notifGroup := s.Group("/notifications", authMiddleware.RequireAction(policy.ActionInboxView))
	notifGroup.Get("/", notifications.Inbox)
	notifGroup.Put("/:id/read", notifications.MarkRead)

	s.Get("/dashboard",
		authMiddleware.RequireAction(policy.ActionDashboardStudent),
		dashboard.StudentDashboard)
}
