// internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	subjectDto "sekolahku_backend/internals/features/school/subjects/dto"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

// ===================== LIST =====================
// GET /api/d/subjects?class_id=&teacher_id=
func (ctrl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&subjectModel.SubjectModel{})
	if classID, err := strconv.Atoi(c.Query("class_id")); err == nil && classID > 0 {
		q = q.Where("class_id = ?", classID)
	}
	if teacherID, err := strconv.Atoi(c.Query("teacher_id")); err == nil && teacherID > 0 {
		q = q.Where("teacher_id = ?", teacherID)
	}

	var subjects []subjectModel.SubjectModel
	if err := q.Order("class_id, name").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar mapel")
	}

	resp := subjectDto.NewSubjectResponses(subjects)
	ctrl.annotate(resp)
	return helper.JsonList(c, "Daftar mata pelajaran", resp, nil)
}

// ===================== CREATE =====================
// POST /api/d/subjects
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req subjectDto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	fieldErrors := map[string][]string{}
	var n int64
	if err := ctrl.DB.Table("classes").Where("id = ?", req.ClassID).Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	} else if n == 0 {
		fieldErrors["class_id"] = append(fieldErrors["class_id"], "kelas tidak ditemukan")
	}
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ? AND role = ?", req.TeacherID, constants.RoleTeacher).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa guru")
	} else if n == 0 {
		fieldErrors["teacher_id"] = append(fieldErrors["teacher_id"], "guru tidak ditemukan")
	}
	if len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}

	subject := req.ToModel()
	if err := ctrl.DB.Create(subject).Error; err != nil {
		log.Println("[ERROR] create subject:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}
	return helper.JsonCreated(c, "Mata pelajaran berhasil dibuat", subjectDto.NewSubjectResponse(subject))
}

// ===================== DELETE =====================
// DELETE /api/d/subjects/:id — jadwal, nilai, dan RPP mapel ikut terhapus.
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Delete(&subjectModel.SubjectModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] delete subject:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mata pelajaran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mata pelajaran berhasil dihapus", fiber.Map{"id": id})
}

// annotate mengisi class_name & teacher_name untuk tampilan daftar.
func (ctrl *SubjectController) annotate(resp []*subjectDto.SubjectResponse) {
	classIDs := map[int]struct{}{}
	teacherIDs := map[int]struct{}{}
	for _, r := range resp {
		classIDs[r.ClassID] = struct{}{}
		teacherIDs[r.TeacherID] = struct{}{}
	}

	classNames := map[int]string{}
	var classes []struct {
		ID   int
		Name string
	}
	if err := ctrl.DB.Table("classes").Where("id IN ?", keys(classIDs)).Find(&classes).Error; err == nil {
		for _, cl := range classes {
			classNames[cl.ID] = cl.Name
		}
	}

	teacherNames := map[int]string{}
	var teachers []userModel.UserModel
	if err := ctrl.DB.Select("id, full_name").Where("id IN ?", keys(teacherIDs)).Find(&teachers).Error; err == nil {
		for _, t := range teachers {
			teacherNames[t.ID] = t.FullName
		}
	}

	for _, r := range resp {
		r.ClassName = classNames[r.ClassID]
		r.TeacherName = teacherNames[r.TeacherID]
	}
}

func keys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
