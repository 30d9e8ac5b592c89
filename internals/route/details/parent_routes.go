// internals/route/details/parent_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "sekolahku_backend/internals/features/school/dashboard/controller"
	parentController "sekolahku_backend/internals/features/users/parent/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/policy"
)

// ParentRoutes: /api/p — orang tua hanya melihat data anak yang tertaut.
func ParentRoutes(api fiber.Router, db *gorm.DB) {
	parents := parentController.NewParentController(db)
	dashboard := dashboardController.NewDashboardController(db)

	p := api.Group("/p", authMiddleware.AuthMiddleware(db))

	children := p.Group("/children", authMiddleware.RequireAction(policy.ActionChildView))
	children.Get("/", parents.ListChildren)
	children.Get("/:id/grades", parents.ChildGrades)
	children.Get("/:id/attendance", parents.ChildAttendance)
	children.Get("/:id/schedule", parents.ChildTimetable)

	p.Get("/dashboard",
		authMiddleware.RequireAction(policy.ActionDashboardParent),
		dashboard.ParentDashboard)
}
