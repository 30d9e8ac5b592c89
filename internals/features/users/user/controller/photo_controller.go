// internals/features/users/user/controller/photo_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

const (
	photoDir       = "./uploads"
	photoFolder    = "profile"
	maxPhotoSizeMB = 5
)

// UploadPhoto menyimpan foto profil user yang sedang login. File dikonversi
// ke WebP dan diperkecil ke sisi terpanjang 512px.
// POST /api/u/photo (multipart field "photo")
func (ctrl *UserController) UploadPhoto(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File foto tidak ada")
	}
	if fileHeader.Size > maxPhotoSizeMB*1024*1024 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran foto maksimal 5 MB")
	}

	path, err := helper.SaveUploadAsWebP(photoDir, photoFolder, fileHeader)
	if err != nil {
		log.Println("[ERROR] konversi foto:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Format foto tidak didukung")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", p.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	if err := ctrl.DB.Model(&user).Update("photo_url", path).Error; err != nil {
		log.Println("[ERROR] simpan photo_url:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}

	return helper.JsonUpdated(c, "Foto profil diperbarui", fiber.Map{"photo_url": path})
}
