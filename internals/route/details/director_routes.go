// internals/route/details/director_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classController "sekolahku_backend/internals/features/school/classes/controller"
	dashboardController "sekolahku_backend/internals/features/school/dashboard/controller"
	holidayController "sekolahku_backend/internals/features/school/holidays/controller"
	scheduleController "sekolahku_backend/internals/features/school/schedules/controller"
	subjectController "sekolahku_backend/internals/features/school/subjects/controller"
	userController "sekolahku_backend/internals/features/users/user/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/policy"
)

// DirectorRoutes: /api/d — seluruh operasi administratif direktur.
func DirectorRoutes(api fiber.Router, db *gorm.DB) {
	users := userController.NewUserController(db)
	classes := classController.NewClassController(db)
	subjects := subjectController.NewSubjectController(db)
	schedules := scheduleController.NewScheduleController(db)
	holidays := holidayController.NewHolidayController(db)
	dashboard := dashboardController.NewDashboardController(db)

	d := api.Group("/d", authMiddleware.AuthMiddleware(db))

	// Manajemen akun
	userGroup := d.Group("/users", authMiddleware.RequireAction(policy.ActionUserManage))
	userGroup.Get("/", users.ListUsers)
	userGroup.Get("/:id", users.GetUser)
	userGroup.Post("/", users.CreateUser)
	userGroup.Put("/:id", users.UpdateUser)
	userGroup.Delete("/:id", users.DeleteUser)

	// Tautan orang tua ↔ anak
	linkGroup := d.Group("/parent-links", authMiddleware.RequireAction(policy.ActionParentLink))
	linkGroup.Post("/", users.AttachParent)
	linkGroup.Delete("/:student_id", users.DetachParent)

	// Kelas
	classGroup := d.Group("/classes", authMiddleware.RequireAction(policy.ActionClassManage))
	classGroup.Get("/", classes.ListClasses)
	classGroup.Post("/", classes.CreateClass)
	classGroup.Delete("/:id", classes.DeleteClass)

	// Jadwal per kelas (grid Senin–Sabtu)
	requireSchedule := authMiddleware.RequireAction(policy.ActionScheduleManage)
	d.Get("/classes/:class_id/schedules", requireSchedule, schedules.GetClassTimetable)
	d.Post("/classes/:class_id/schedules", requireSchedule, schedules.CreateSchedule)
	d.Delete("/schedules/:id", requireSchedule, schedules.DeleteSchedule)

	// Mata pelajaran
	subjGroup := d.Group("/subjects", authMiddleware.RequireAction(policy.ActionSubjectManage))
	subjGroup.Get("/", subjects.ListSubjects)
	subjGroup.Post("/", subjects.CreateSubject)
	subjGroup.Delete("/:id", subjects.DeleteSubject)

	// Hari libur
	holidayGroup := d.Group("/holidays", authMiddleware.RequireAction(policy.ActionHolidayManage))
	holidayGroup.Get("/", holidays.ListHolidays)
	holidayGroup.Post("/", holidays.CreateHoliday)
	holidayGroup.Delete("/:id", holidays.DeleteHoliday)

	// Dashboard
	d.Get("/dashboard",
		authMiddleware.RequireAction(policy.ActionDashboardDirector),
		dashboard.DirectorDashboard)
}
