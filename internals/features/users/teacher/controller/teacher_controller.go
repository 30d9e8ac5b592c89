// internals/features/users/teacher/controller/teacher_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userDto "sekolahku_backend/internals/features/users/user/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

// ===================== DAFTAR SISWA =====================
// GET /api/t/students?class_id= — siswa dari kelas yang diampu guru login.
func (ctrl *TeacherController) ListOwnStudents(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	taught := ctrl.DB.Table("subjects").Select("class_id").Where("teacher_id = ?", p.UserID)
	q := ctrl.DB.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleStudent).
		Where("class_id IN (?)", taught)
	if classID := c.QueryInt("class_id"); classID > 0 {
		q = q.Where("class_id = ?", classID)
	}

	var students []userModel.UserModel
	if err := q.Order("class_id, full_name").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}
	return helper.JsonList(c, "Siswa yang Anda ajar", userDto.NewUserResponses(students), nil)
}
