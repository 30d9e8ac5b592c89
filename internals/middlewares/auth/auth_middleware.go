// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// AuthMiddleware memverifikasi JWT, menolak token blacklist, lalu memuat user
// dari DB supaya role/kelas yang dipakai selalu segar (bukan klaim basi).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		// Cek blacklist (logout)
		var blacklisted authModel.TokenBlacklist
		if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&blacklisted).Error; err == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token sudah tidak berlaku")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] DB error saat cek blacklist:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := helper.ParseTokenClaims(secret, tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid atau kedaluwarsa")
		}
		if typ, _ := claims["typ"].(string); typ != "access" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Bukan access token")
		}

		userID, ok := helper.ClaimInt(claims, "user_id")
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Klaim user_id tidak ada")
		}

		var user userModel.UserModel
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !user.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		helper.SetRawAccessToken(c, tokenString)
		helperAuth.StorePrincipal(c, helperAuth.Principal{
			UserID:   user.ID,
			Role:     user.Role,
			FullName: user.FullName,
			ClassID:  user.ClassID,
		})

		return c.Next()
	}
}
