// internals/features/school/lesson_plans/controller/lesson_plan_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonPlanDto "sekolahku_backend/internals/features/school/lesson_plans/dto"
	lessonPlanModel "sekolahku_backend/internals/features/school/lesson_plans/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type LessonPlanController struct {
	DB *gorm.DB
}

func NewLessonPlanController(db *gorm.DB) *LessonPlanController {
	return &LessonPlanController{DB: db}
}

var validate = validator.New()

var errNotOwner = errors.New("bukan pengampu mapel")

// ===================== CREATE (GURU) =====================
// POST /api/t/lesson-plans — hanya untuk mapel yang diampu.
func (ctrl *LessonPlanController) CreateLessonPlan(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var req lessonPlanDto.CreateLessonPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.ensureOwnedSubject(req.SubjectID, p.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mata pelajaran tidak ditemukan")
		}
		if errors.Is(err, errNotOwner) {
			return helper.JsonError(c, fiber.StatusForbidden, "Mata pelajaran bukan yang Anda ampu")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa mapel")
	}

	plan, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"format tanggal tidak valid (YYYY-MM-DD)"},
		})
	}
	if err := ctrl.DB.Create(plan).Error; err != nil {
		log.Println("[ERROR] create lesson plan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan RPP")
	}
	return helper.JsonCreated(c, "RPP tersimpan", lessonPlanDto.NewLessonPlanResponse(plan))
}

// ===================== UPDATE (GURU) =====================
// PUT /api/t/lesson-plans/:id
func (ctrl *LessonPlanController) UpdateLessonPlan(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	plan, err := ctrl.loadOwnedPlan(id, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "RPP tidak ditemukan")
		}
		if errors.Is(err, errNotOwner) {
			return helper.JsonError(c, fiber.StatusForbidden, "RPP bukan dari mapel yang Anda ampu")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil RPP")
	}

	var req lessonPlanDto.CreateLessonPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.SubjectID != plan.SubjectID {
		if err := ctrl.ensureOwnedSubject(req.SubjectID, p.UserID); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Mata pelajaran bukan yang Anda ampu")
		}
	}

	updated, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"format tanggal tidak valid (YYYY-MM-DD)"},
		})
	}
	updated.ID = plan.ID
	updated.CreatedAt = plan.CreatedAt
	if err := ctrl.DB.Save(updated).Error; err != nil {
		log.Println("[ERROR] update lesson plan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui RPP")
	}
	return helper.JsonUpdated(c, "RPP diperbarui", lessonPlanDto.NewLessonPlanResponse(updated))
}

// ===================== DELETE (GURU) =====================
// DELETE /api/t/lesson-plans/:id
func (ctrl *LessonPlanController) DeleteLessonPlan(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	plan, err := ctrl.loadOwnedPlan(id, p.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "RPP tidak ditemukan")
		}
		if errors.Is(err, errNotOwner) {
			return helper.JsonError(c, fiber.StatusForbidden, "RPP bukan dari mapel yang Anda ampu")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil RPP")
	}

	if err := ctrl.DB.Delete(plan).Error; err != nil {
		log.Println("[ERROR] delete lesson plan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus RPP")
	}
	return helper.JsonDeleted(c, "RPP dihapus", fiber.Map{"id": id})
}

// ===================== LIST (GURU) =====================
// GET /api/t/lesson-plans?subject_id=&week=
func (ctrl *LessonPlanController) ListForTeacher(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	q := ctrl.DB.Model(&lessonPlanModel.LessonPlanModel{}).
		Where("subject_id IN (?)", ctrl.ownedSubjectIDs(p.UserID))
	return ctrl.respondList(c, q, "Daftar RPP")
}

// ===================== VIEW (SISWA) =====================
// GET /api/s/lesson-plans?subject_id=&week= — hanya mapel kelas sendiri.
func (ctrl *LessonPlanController) ListForStudent(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	if p.ClassID == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anda belum ditempatkan di kelas")
	}
	q := ctrl.DB.Model(&lessonPlanModel.LessonPlanModel{}).
		Where("subject_id IN (?)",
			ctrl.DB.Model(&subjectModel.SubjectModel{}).Select("id").Where("class_id = ?", *p.ClassID))
	return ctrl.respondList(c, q, "RPP kelas Anda")
}

func (ctrl *LessonPlanController) respondList(c *fiber.Ctx, q *gorm.DB, message string) error {
	if subjectID, err := strconv.Atoi(c.Query("subject_id")); err == nil && subjectID > 0 {
		q = q.Where("subject_id = ?", subjectID)
	}
	if week, err := strconv.Atoi(c.Query("week")); err == nil && week > 0 {
		q = q.Where("week = ?", week)
	}

	var rows []lessonPlanModel.LessonPlanModel
	if err := q.Order("week, subject_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil RPP")
	}

	resp := lessonPlanDto.NewLessonPlanResponses(rows)
	ctrl.fillSubjectNames(resp)
	return helper.JsonList(c, message, resp, nil)
}

func (ctrl *LessonPlanController) ensureOwnedSubject(subjectID, teacherID int) error {
	var subject subjectModel.SubjectModel
	if err := ctrl.DB.First(&subject, "id = ?", subjectID).Error; err != nil {
		return err
	}
	if subject.TeacherID != teacherID {
		return errNotOwner
	}
	return nil
}

func (ctrl *LessonPlanController) loadOwnedPlan(id, teacherID int) (*lessonPlanModel.LessonPlanModel, error) {
	var plan lessonPlanModel.LessonPlanModel
	if err := ctrl.DB.First(&plan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := ctrl.ensureOwnedSubject(plan.SubjectID, teacherID); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (ctrl *LessonPlanController) ownedSubjectIDs(teacherID int) *gorm.DB {
	return ctrl.DB.Model(&subjectModel.SubjectModel{}).Select("id").Where("teacher_id = ?", teacherID)
}

func (ctrl *LessonPlanController) fillSubjectNames(resp []*lessonPlanDto.LessonPlanResponse) {
	if len(resp) == 0 {
		return
	}
	ids := map[int]struct{}{}
	for _, r := range resp {
		ids[r.SubjectID] = struct{}{}
	}
	list := make([]int, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	var subjects []subjectModel.SubjectModel
	if err := ctrl.DB.Select("id, name").Where("id IN ?", list).Find(&subjects).Error; err != nil {
		return
	}
	names := map[int]string{}
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	for _, r := range resp {
		r.SubjectName = names[r.SubjectID]
	}
}
