// internals/features/users/user/controller/user_controller.go
//
// Manajemen akun oleh direktur: CRUD user semua role, penempatan kelas siswa,
// dan tautan orang tua ↔ anak.
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userDto "sekolahku_backend/internals/features/users/user/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// ===================== LIST =====================
// GET /api/d/users?role=&class_id=&page=&per_page=
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&userModel.UserModel{})
	if role := c.Query("role"); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
		q = q.Where("role = ?", role)
	}
	if classID, err := strconv.Atoi(c.Query("class_id")); err == nil && classID > 0 {
		q = q.Where("class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []userModel.UserModel
	if err := q.Order("role, full_name").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	return helper.JsonList(c, "Daftar user", userDto.NewUserResponses(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== DETAIL =====================
// GET /api/d/users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "ok", userDto.NewUserResponse(&user))
}

// ===================== CREATE =====================
// POST /api/d/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req userDto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user := req.ToModel()
	if err := user.SetPassword(req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if user.ClassID != nil {
		if ok, err := ctrl.classExists(*user.ClassID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
		} else if !ok {
			return helper.JsonValidationError(c, map[string][]string{
				"class_id": {"kelas tidak ditemukan"},
			})
		}
	}

	if err := ctrl.DB.Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, map[string][]string{
				"username": {"username sudah dipakai"},
			})
		}
		log.Println("[ERROR] create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", userDto.NewUserResponse(user))
}

// ===================== UPDATE =====================
// PUT /api/d/users/:id — partial; password hanya diganti bila dikirim.
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req userDto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.ClassID != nil {
		if ok, err := ctrl.classExists(*req.ClassID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
		} else if !ok {
			return helper.JsonValidationError(c, map[string][]string{
				"class_id": {"kelas tidak ditemukan"},
			})
		}
		user.ClassID = req.ClassID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
	}
	user.NormalizeRoleFields()

	if err := ctrl.DB.Save(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, map[string][]string{
				"username": {"username sudah dipakai"},
			})
		}
		log.Println("[ERROR] update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", userDto.NewUserResponse(&user))
}

// ===================== DELETE =====================
// DELETE /api/d/users/:id — baris anak (nilai, absensi, pesan) ikut terhapus
// lewat FK cascade.
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Delete(&userModel.UserModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] delete user:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}

// ===================== PARENT LINK =====================

type parentLinkRequest struct {
	StudentID int `json:"student_id" validate:"required,gt=0"`
	ParentID  int `json:"parent_id" validate:"required,gt=0"`
}

// POST /api/d/parent-links — menimpa tautan lama bila ada.
func (ctrl *UserController) AttachParent(c *fiber.Ctx) error {
	var req parentLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := ctrl.findByRole(req.StudentID, constants.RoleStudent)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	if _, err := ctrl.findByRole(req.ParentID, constants.RoleParent); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Orang tua tidak ditemukan")
	}

	if err := ctrl.DB.Model(student).Update("parent_id", req.ParentID).Error; err != nil {
		log.Println("[ERROR] attach parent:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan orang tua")
	}
	student.AttachParentLink(req.ParentID)
	return helper.JsonUpdated(c, "Orang tua berhasil ditautkan", userDto.NewUserResponse(student))
}

// DELETE /api/d/parent-links/:student_id
func (ctrl *UserController) DetachParent(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("student_id")
	if err != nil || studentID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	student, err := ctrl.findByRole(studentID, constants.RoleStudent)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	if err := ctrl.DB.Model(student).Update("parent_id", nil).Error; err != nil {
		log.Println("[ERROR] detach parent:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melepas tautan")
	}
	student.DetachParentLink()
	return helper.JsonUpdated(c, "Tautan orang tua dilepas", userDto.NewUserResponse(student))
}

func (ctrl *UserController) findByRole(id int, role string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ? AND role = ?", id, role).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ctrl *UserController) classExists(id int) (bool, error) {
	var n int64
	if err := ctrl.DB.Table("classes").Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
