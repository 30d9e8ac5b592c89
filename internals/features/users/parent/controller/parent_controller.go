// internals/features/users/parent/controller/parent_controller.go
//
// Akses orang tua: daftar anak yang tertaut, lalu nilai / absensi / jadwal
// per anak. Setiap endpoint memverifikasi tautan parent_id lebih dulu.
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attendanceDto "sekolahku_backend/internals/features/school/attendance/dto"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	gradeDto "sekolahku_backend/internals/features/school/grades/dto"
	gradeModel "sekolahku_backend/internals/features/school/grades/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	scheduleService "sekolahku_backend/internals/features/school/schedules/service"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	userDto "sekolahku_backend/internals/features/users/user/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

// ===================== DAFTAR ANAK =====================
// GET /api/p/children
func (ctrl *ParentController) ListChildren(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	var children []userModel.UserModel
	if err := ctrl.DB.
		Where("role = ? AND parent_id = ?", constants.RoleStudent, p.UserID).
		Order("full_name").Find(&children).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar anak")
	}
	return helper.JsonList(c, "Anak Anda", userDto.NewUserResponses(children), nil)
}

// ===================== NILAI ANAK =====================
// GET /api/p/children/:id/grades
func (ctrl *ParentController) ChildGrades(c *fiber.Ctx) error {
	child, errResp := ctrl.ensureChild(c)
	if child == nil {
		return errResp
	}

	var rows []gradeModel.GradeModel
	if err := ctrl.DB.Where("student_id = ?", child.ID).
		Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	resp := gradeDto.NewGradeResponses(rows)
	ctrl.fillSubjectNames(resp)
	return helper.JsonList(c, "Nilai anak", resp, nil)
}

// ===================== ABSENSI ANAK =====================
// GET /api/p/children/:id/attendance
func (ctrl *ParentController) ChildAttendance(c *fiber.Ctx) error {
	child, errResp := ctrl.ensureChild(c)
	if child == nil {
		return errResp
	}

	var rows []attendanceModel.AttendanceModel
	if err := ctrl.DB.Where("student_id = ?", child.ID).
		Order("date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	return helper.JsonList(c, "Absensi anak", attendanceDto.NewAttendanceResponses(rows), nil)
}

// ===================== JADWAL ANAK =====================
// GET /api/p/children/:id/schedule
func (ctrl *ParentController) ChildTimetable(c *fiber.Ctx) error {
	child, errResp := ctrl.ensureChild(c)
	if child == nil {
		return errResp
	}
	if child.ClassID == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anak belum ditempatkan di kelas")
	}

	var entries []scheduleModel.ScheduleModel
	if err := ctrl.DB.Where("class_id = ?", *child.ClassID).Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	lookup, _ := ctrl.subjectLookup(entries)
	return helper.JsonOK(c, "Jadwal anak", scheduleService.BuildWeekTimetable(entries, lookup))
}

// ensureChild memuat siswa :id dan memastikan tertaut ke orang tua login.
// Anak orang lain dijawab 404, bukan 403, supaya keberadaannya tidak bocor.
// Bila child nil, response error sudah ditulis dan err tinggal dikembalikan.
func (ctrl *ParentController) ensureChild(c *fiber.Ctx) (*userModel.UserModel, error) {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var child userModel.UserModel
	err = ctrl.DB.First(&child,
		"id = ? AND role = ? AND parent_id = ?", id, constants.RoleStudent, p.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Anak tidak ditemukan")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}
	return &child, nil
}

func (ctrl *ParentController) fillSubjectNames(resp []*gradeDto.GradeResponse) {
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

func (ctrl *ParentController) subjectLookup(entries []scheduleModel.ScheduleModel) (scheduleService.AnnotationLookup, error) {
	lookup := scheduleService.AnnotationLookup{}
	if len(entries) == 0 {
		return lookup, nil
	}
	ids := map[int]struct{}{}
	for _, e := range entries {
		ids[e.SubjectID] = struct{}{}
	}
	list := make([]int, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	var subjects []subjectModel.SubjectModel
	if err := ctrl.DB.Select("id, name").Where("id IN ?", list).Find(&subjects).Error; err != nil {
		return lookup, err
	}
	for _, s := range subjects {
		lookup[s.ID] = scheduleService.Annotation{SubjectName: s.Name}
	}
	return lookup, nil
}
