// internals/features/school/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	gradeDto "sekolahku_backend/internals/features/school/grades/dto"
	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

var validate = validator.New()

// ===================== CREATE (GURU) =====================
// POST /api/t/grades — guru hanya boleh menilai mapel yang diampunya,
// dan siswa harus berada di kelas mapel tersebut.
func (ctrl *GradeController) CreateGrade(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var req gradeDto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	subject, err := ctrl.ensureSubjectBelongsToTeacher(req.SubjectID, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mata pelajaran tidak ditemukan")
		}
		if errors.Is(err, errNotOwner) {
			return helper.JsonError(c, fiber.StatusForbidden, "Mata pelajaran bukan yang Anda ampu")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa mapel")
	}

	var student userModel.UserModel
	if err := ctrl.DB.First(&student, "id = ? AND role = ?", req.StudentID, constants.RoleStudent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	if student.ClassID == nil || *student.ClassID != subject.ClassID {
		return helper.JsonError(c, fiber.StatusForbidden, "Siswa bukan dari kelas mapel ini")
	}

	grade, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"format tanggal tidak valid (YYYY-MM-DD)"},
		})
	}
	if err := ctrl.DB.Create(grade).Error; err != nil {
		log.Println("[ERROR] create grade:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonCreated(c, "Nilai tersimpan", gradeDto.NewGradeResponse(grade))
}

// ===================== DELETE (GURU) =====================
// DELETE /api/t/grades/:id — hanya nilai mapel yang diampu.
func (ctrl *GradeController) DeleteGrade(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var grade gradeModel.GradeModel
	if err := ctrl.DB.First(&grade, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	if _, err := ctrl.ensureSubjectBelongsToTeacher(grade.SubjectID, p.UserID); err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Nilai bukan dari mapel yang Anda ampu")
	}

	if err := ctrl.DB.Delete(&grade).Error; err != nil {
		log.Println("[ERROR] delete grade:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	return helper.JsonDeleted(c, "Nilai dihapus", fiber.Map{"id": id})
}

// ===================== LIST (GURU) =====================
// GET /api/t/grades?subject_id=&student_id=
func (ctrl *GradeController) ListForTeacher(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	q := ctrl.DB.Model(&gradeModel.GradeModel{}).
		Where("subject_id IN (?)",
			ctrl.DB.Model(&subjectModel.SubjectModel{}).Select("id").Where("teacher_id = ?", p.UserID))
	if subjectID, err := strconv.Atoi(c.Query("subject_id")); err == nil && subjectID > 0 {
		q = q.Where("subject_id = ?", subjectID)
	}
	if studentID, err := strconv.Atoi(c.Query("student_id")); err == nil && studentID > 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var rows []gradeModel.GradeModel
	if err := q.Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	resp := gradeDto.NewGradeResponses(rows)
	ctrl.annotate(resp)
	return helper.JsonList(c, "Daftar nilai", resp, nil)
}

// ===================== VIEW SENDIRI (SISWA) =====================
// GET /api/s/grades
func (ctrl *GradeController) ListOwn(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	var rows []gradeModel.GradeModel
	if err := ctrl.DB.Where("student_id = ?", p.UserID).
		Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	resp := gradeDto.NewGradeResponses(rows)
	ctrl.annotate(resp)
	return helper.JsonList(c, "Nilai Anda", resp, nil)
}

var errNotOwner = errors.New("bukan pengampu mapel")

func (ctrl *GradeController) ensureSubjectBelongsToTeacher(subjectID, teacherID int) (*subjectModel.SubjectModel, error) {
	var subject subjectModel.SubjectModel
	if err := ctrl.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		return nil, err
	}
	if subject.TeacherID != teacherID {
		return nil, errNotOwner
	}
	return &subject, nil
}

// annotate mengisi nama siswa & mapel untuk tampilan daftar.
func (ctrl *GradeController) annotate(resp []*gradeDto.GradeResponse) {
	if len(resp) == 0 {
		return
	}
	studentIDs := map[int]struct{}{}
	subjectIDs := map[int]struct{}{}
	for _, r := range resp {
		studentIDs[r.StudentID] = struct{}{}
		subjectIDs[r.SubjectID] = struct{}{}
	}

	studentNames := map[int]string{}
	var students []userModel.UserModel
	if err := ctrl.DB.Select("id, full_name").Where("id IN ?", setKeys(studentIDs)).Find(&students).Error; err == nil {
		for _, s := range students {
			studentNames[s.ID] = s.FullName
		}
	}
	subjectNames := map[int]string{}
	var subjects []subjectModel.SubjectModel
	if err := ctrl.DB.Select("id, name").Where("id IN ?", setKeys(subjectIDs)).Find(&subjects).Error; err == nil {
		for _, s := range subjects {
			subjectNames[s.ID] = s.Name
		}
	}

	for _, r := range resp {
		r.StudentName = studentNames[r.StudentID]
		r.SubjectName = subjectNames[r.SubjectID]
	}
}

func setKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
