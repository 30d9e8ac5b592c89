// internals/features/school/dashboard/controller/dashboard_controller.go
//
// Dashboard per role: ringkasan yang tampil setelah login. Isi panel
// berbeda-beda per role, tapi semuanya membaca tabel yang sama.
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	holidayDto "sekolahku_backend/internals/features/school/holidays/dto"
	holidayModel "sekolahku_backend/internals/features/school/holidays/model"
	holidayService "sekolahku_backend/internals/features/school/holidays/service"
	notificationModel "sekolahku_backend/internals/features/school/notifications/model"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	scheduleService "sekolahku_backend/internals/features/school/schedules/service"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	userDto "sekolahku_backend/internals/features/users/user/dto"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// ===================== DIREKTUR =====================
// GET /api/d/dashboard — statistik agregat sekolah.
func (ctrl *DashboardController) DirectorDashboard(c *fiber.Ctx) error {
	stats := fiber.Map{}
	for role, key := range map[string]string{
		constants.RoleDirector: "directors",
		constants.RoleTeacher:  "teachers",
		constants.RoleStudent:  "students",
		constants.RoleParent:   "parents",
	} {
		var n int64
		if err := ctrl.DB.Model(&userModel.UserModel{}).
			Where("role = ?", role).Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
		}
		stats[key] = n
	}

	var classCount, subjectCount int64
	if err := ctrl.DB.Table("classes").Count(&classCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kelas")
	}
	if err := ctrl.DB.Model(&subjectModel.SubjectModel{}).Count(&subjectCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung mapel")
	}
	stats["classes"] = classCount
	stats["subjects"] = subjectCount

	upcoming, err := ctrl.upcomingHolidays()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil libur")
	}

	return helper.JsonOK(c, "Dashboard direktur", fiber.Map{
		"stats":             stats,
		"upcoming_holidays": holidayDto.NewHolidayResponses(upcoming),
	})
}

// ===================== GURU =====================
// GET /api/t/dashboard — pelajaran hari ini dari mapel yang diampu,
// kosong bila hari ini libur.
func (ctrl *DashboardController) TeacherDashboard(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var entries []scheduleModel.ScheduleModel
	if err := ctrl.DB.
		Where("subject_id IN (?)",
			ctrl.DB.Model(&subjectModel.SubjectModel{}).Select("id").Where("teacher_id = ?", p.UserID)).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return ctrl.respondToday(c, "Dashboard guru", entries)
}

// ===================== SISWA =====================
// GET /api/s/dashboard — pelajaran hari ini + jumlah notifikasi belum
// terbaca.
func (ctrl *DashboardController) StudentDashboard(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var entries []scheduleModel.ScheduleModel
	if p.ClassID != nil {
		if err := ctrl.DB.Where("class_id = ?", *p.ClassID).Find(&entries).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
		}
	}

	var unread int64
	if err := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("receiver_id = ? AND is_read = ?", p.UserID, false).
		Count(&unread).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	return ctrl.respondToday(c, "Dashboard siswa", entries, fiber.Map{
		"unread_notifications": unread,
	})
}

// ===================== ORANG TUA =====================
// GET /api/p/dashboard — daftar anak tertaut + libur terdekat.
func (ctrl *DashboardController) ParentDashboard(c *fiber.Ctx) error {
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

	upcoming, err := ctrl.upcomingHolidays()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil libur")
	}

	return helper.JsonOK(c, "Dashboard orang tua", fiber.Map{
		"children":          userDto.NewUserResponses(children),
		"upcoming_holidays": holidayDto.NewHolidayResponses(upcoming),
	})
}

// respondToday menyusun panel "hari ini": pelajaran hari ini (kosong saat
// libur atau Minggu) + libur terdekat.
func (ctrl *DashboardController) respondToday(c *fiber.Ctx, message string, entries []scheduleModel.ScheduleModel, extra ...fiber.Map) error {
	now := time.Now()
	today := constants.WeekdayName(now)

	var allHolidays []holidayModel.HolidayModel
	if err := ctrl.DB.Order("start_date").Find(&allHolidays).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil libur")
	}

	isHoliday := holidayService.IsHolidayDate(now, allHolidays)
	todayLessons := []interface{}{}
	if !isHoliday && constants.IsSchoolWeekday(today) {
		lookup, err := ctrl.subjectLookup(entries)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melengkapi jadwal")
		}
		for _, e := range scheduleService.DayEntries(entries, today, lookup) {
			todayLessons = append(todayLessons, e)
		}
	}

	body := fiber.Map{
		"today":             today,
		"is_holiday":        isHoliday,
		"today_lessons":     todayLessons,
		"upcoming_holidays": holidayDto.NewHolidayResponses(holidayService.FilterUpcoming(now, allHolidays)),
	}
	for _, m := range extra {
		for k, v := range m {
			body[k] = v
		}
	}
	return helper.JsonOK(c, message, body)
}

func (ctrl *DashboardController) upcomingHolidays() ([]holidayModel.HolidayModel, error) {
	var holidays []holidayModel.HolidayModel
	if err := ctrl.DB.Order("start_date").Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidayService.FilterUpcoming(time.Now(), holidays), nil
}

func (ctrl *DashboardController) subjectLookup(entries []scheduleModel.ScheduleModel) (scheduleService.AnnotationLookup, error) {
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
	if err := ctrl.DB.Where("id IN ?", list).Find(&subjects).Error; err != nil {
		return nil, err
	}
	teacherIDs := make([]int, 0, len(subjects))
	for _, s := range subjects {
		teacherIDs = append(teacherIDs, s.TeacherID)
	}
	teacherNames := map[int]string{}
	var teachers []userModel.UserModel
	if err := ctrl.DB.Select("id, full_name").Where("id IN ?", teacherIDs).Find(&teachers).Error; err != nil {
		return nil, err
	}
	for _, t := range teachers {
		teacherNames[t.ID] = t.FullName
	}
	for _, s := range subjects {
		lookup[s.ID] = scheduleService.Annotation{
			SubjectName: s.Name,
			TeacherName: teacherNames[s.TeacherID],
		}
	}
	return lookup, nil
}
