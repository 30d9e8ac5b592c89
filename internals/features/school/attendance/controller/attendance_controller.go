// internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attendanceDto "sekolahku_backend/internals/features/school/attendance/dto"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

// ===================== RECORD (GURU) =====================
// POST /api/t/attendance — satu tanggal, banyak siswa. Pencatatan ulang
// untuk (siswa, tanggal) yang sama menimpa status lama. Semua-atau-batal.
func (ctrl *AttendanceController) RecordAttendance(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var req attendanceDto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"date": {"format tanggal tidak valid (YYYY-MM-DD)"},
		})
	}

	// Semua siswa dalam payload harus milik kelas yang diajar guru ini.
	for _, entry := range req.Entries {
		ok, err := ctrl.teacherOwnsStudent(p.UserID, entry.StudentID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa siswa")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "Siswa bukan dari kelas yang Anda ajar")
		}
	}

	rows := make([]attendanceModel.AttendanceModel, 0, len(req.Entries))
	studentIDs := make([]int, 0, len(req.Entries))
	for _, entry := range req.Entries {
		studentIDs = append(studentIDs, entry.StudentID)
		rows = append(rows, attendanceModel.AttendanceModel{
			StudentID: entry.StudentID,
			Date:      datatypes.Date(date),
			Status:    entry.Status,
		})
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id IN ? AND date = ?", studentIDs, datatypes.Date(date)).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Println("[ERROR] record attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonCreated(c, "Absensi tersimpan", attendanceDto.NewAttendanceResponses(rows))
}

// ===================== LIST (GURU) =====================
// GET /api/t/attendance?date=&student_id= — absensi siswa yang diajar.
func (ctrl *AttendanceController) ListForTeacher(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	q := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("student_id IN (?)", ctrl.taughtStudentIDs(p.UserID))
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid")
		}
		q = q.Where("date = ?", datatypes.Date(date))
	}
	if studentID, err := strconv.Atoi(c.Query("student_id")); err == nil && studentID > 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var rows []attendanceModel.AttendanceModel
	if err := q.Order("date DESC, student_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	resp := attendanceDto.NewAttendanceResponses(rows)
	ctrl.fillStudentNames(resp)
	return helper.JsonList(c, "Daftar absensi", resp, nil)
}

// ===================== VIEW SENDIRI (SISWA) =====================
// GET /api/s/attendance
func (ctrl *AttendanceController) ListOwn(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	var rows []attendanceModel.AttendanceModel
	if err := ctrl.DB.Where("student_id = ?", p.UserID).
		Order("date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	return helper.JsonList(c, "Absensi Anda", attendanceDto.NewAttendanceResponses(rows), nil)
}

// teacherOwnsStudent: siswa berada di kelas yang diajar (punya mapel) atau
// diwalikan guru bersangkutan.
func (ctrl *AttendanceController) teacherOwnsStudent(teacherID, studentID int) (bool, error) {
	var n int64
	err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ? AND role = ?", studentID, constants.RoleStudent).
		Where("class_id IN (?)", ctrl.taughtClassIDs(teacherID)).
		Count(&n).Error
	return n > 0, err
}

// taughtClassIDs: kelas tempat guru mengampu minimal satu mapel.
func (ctrl *AttendanceController) taughtClassIDs(teacherID int) *gorm.DB {
	return ctrl.DB.Table("subjects").Select("class_id").Where("teacher_id = ?", teacherID)
}

func (ctrl *AttendanceController) taughtStudentIDs(teacherID int) *gorm.DB {
	return ctrl.DB.Model(&userModel.UserModel{}).Select("id").
		Where("role = ?", constants.RoleStudent).
		Where("class_id IN (?)", ctrl.taughtClassIDs(teacherID))
}

func (ctrl *AttendanceController) fillStudentNames(resp []*attendanceDto.AttendanceResponse) {
	ids := map[int]struct{}{}
	for _, r := range resp {
		ids[r.StudentID] = struct{}{}
	}
	if len(ids) == 0 {
		return
	}
	list := make([]int, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	var students []userModel.UserModel
	if err := ctrl.DB.Select("id, full_name").Where("id IN ?", list).Find(&students).Error; err != nil {
		return
	}
	names := map[int]string{}
	for _, s := range students {
		names[s.ID] = s.FullName
	}
	for _, r := range resp {
		r.StudentName = names[r.StudentID]
	}
}
