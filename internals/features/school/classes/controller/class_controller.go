// internals/features/school/classes/controller/class_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classDto "sekolahku_backend/internals/features/school/classes/dto"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// ===================== LIST =====================
// GET /api/d/classes
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	var classes []classModel.ClassModel
	if err := ctrl.DB.Order("name").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}

	resp := classDto.NewClassResponses(classes)
	teacherNames, err := ctrl.teacherNames(classes)
	if err == nil {
		for _, r := range resp {
			if r.TeacherID != nil {
				r.TeacherName = teacherNames[*r.TeacherID]
			}
		}
	}
	return helper.JsonList(c, "Daftar kelas", resp, nil)
}

// ===================== CREATE =====================
// POST /api/d/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req classDto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.TeacherID != nil {
		var n int64
		if err := ctrl.DB.Model(&userModel.UserModel{}).
			Where("id = ? AND role = ?", *req.TeacherID, constants.RoleTeacher).
			Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa wali kelas")
		}
		if n == 0 {
			return helper.JsonValidationError(c, map[string][]string{
				"teacher_id": {"guru tidak ditemukan"},
			})
		}
	}

	class := req.ToModel()
	if err := ctrl.DB.Create(class).Error; err != nil {
		log.Println("[ERROR] create class:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", classDto.NewClassResponse(class))
}

// ===================== DELETE =====================
// DELETE /api/d/classes/:id — mapel & jadwal kelas ikut terhapus (cascade),
// siswa kehilangan penempatan (class_id jadi NULL).
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Delete(&classModel.ClassModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] delete class:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"id": id})
}

func (ctrl *ClassController) teacherNames(classes []classModel.ClassModel) (map[int]string, error) {
	ids := make([]int, 0, len(classes))
	for _, cl := range classes {
		if cl.TeacherID != nil {
			ids = append(ids, *cl.TeacherID)
		}
	}
	names := map[int]string{}
	if len(ids) == 0 {
		return names, nil
	}
	var teachers []userModel.UserModel
	if err := ctrl.DB.Select("id, full_name").Where("id IN ?", ids).Find(&teachers).Error; err != nil {
		return nil, err
	}
	for _, t := range teachers {
		names[t.ID] = t.FullName
	}
	return names, nil
}
