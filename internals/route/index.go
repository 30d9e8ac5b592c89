// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/route/details"
)

// SetupRoutes merangkai seluruh rute aplikasi di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.AuthRoutes(api, db)
	details.DirectorRoutes(api, db)
	details.TeacherRoutes(api, db)
	details.StudentRoutes(api, db)
	details.ParentRoutes(api, db)
	details.UserRoutes(api, db)
}
