// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayController "sekolahku_backend/internals/features/school/holidays/controller"
	messageController "sekolahku_backend/internals/features/school/messages/controller"
	notificationController "sekolahku_backend/internals/features/school/notifications/controller"
	userController "sekolahku_backend/internals/features/users/user/controller"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/policy"
)

// UserRoutes: /api/u — fitur lintas role untuk semua user login: pesan
// pribadi, foto profil, libur terdekat, dan pengiriman notifikasi (dibatasi
// kebijakan notify.class).
func UserRoutes(api fiber.Router, db *gorm.DB) {
	messages := messageController.NewMessageController(db)
	notifications := notificationController.NewNotificationController(db)
	holidays := holidayController.NewHolidayController(db)
	users := userController.NewUserController(db)

	u := api.Group("/u", authMiddleware.AuthMiddleware(db))

	msgGroup := u.Group("/messages")
	msgGroup.Post("/", messages.SendMessage)
	msgGroup.Get("/inbox", messages.Inbox)
	msgGroup.Get("/sent", messages.Sent)
	msgGroup.Put("/:id/read", messages.MarkRead)

	u.Post("/notifications",
		authMiddleware.RequireAction(policy.ActionNotifyClass),
		notifications.SendNotification)

	u.Get("/holidays/upcoming", holidays.ListUpcoming)
	u.Post("/photo", users.UploadPhoto)
}
