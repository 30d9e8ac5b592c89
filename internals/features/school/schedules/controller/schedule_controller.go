// internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	scheduleDto "sekolahku_backend/internals/features/school/schedules/dto"
	scheduleModel "sekolahku_backend/internals/features/school/schedules/model"
	scheduleService "sekolahku_backend/internals/features/school/schedules/service"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

// ===================== GRID KELAS =====================
// GET /api/d/classes/:class_id/schedules — grid Senin–Sabtu satu kelas.
func (ctrl *ScheduleController) GetClassTimetable(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("class_id")
	if err != nil || classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	if ok, err := ctrl.classExists(classID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return ctrl.respondTimetable(c, classID)
}

// GET /api/s/schedule — grid kelas siswa yang sedang login.
func (ctrl *ScheduleController) GetOwnClassTimetable(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	if p.ClassID == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anda belum ditempatkan di kelas")
	}
	return ctrl.respondTimetable(c, *p.ClassID)
}

// GET /api/t/schedule — seluruh entri mapel yang diampu guru login,
// dikelompokkan per hari.
func (ctrl *ScheduleController) GetTeachingTimetable(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var entries []scheduleModel.ScheduleModel
	if err := ctrl.DB.
		Where("subject_id IN (?)",
			ctrl.DB.Model(&subjectModel.SubjectModel{}).Select("id").Where("teacher_id = ?", p.UserID)).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal mengajar")
	}

	lookup, err := ctrl.buildLookup(entries)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melengkapi jadwal")
	}
	return helper.JsonOK(c, "Jadwal mengajar", scheduleService.BuildWeekTimetable(entries, lookup))
}

// ===================== CREATE =====================
// POST /api/d/classes/:class_id/schedules — slot (kelas, hari, jam ke-)
// harus kosong; tabrakan ditolak 409.
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("class_id")
	if err != nil || classID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req scheduleDto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsSchoolWeekday(req.DayOfWeek) {
		return helper.JsonValidationError(c, map[string][]string{
			"day_of_week": {"hari harus Senin–Sabtu (Monday..Saturday)"},
		})
	}

	if ok, err := ctrl.classExists(classID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas")
	} else if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.First(&subject, "id = ?", req.SubjectID).Error; err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"subject_id": {"mata pelajaran tidak ditemukan"},
		})
	}
	if subject.ClassID != classID {
		return helper.JsonValidationError(c, map[string][]string{
			"subject_id": {"mata pelajaran bukan milik kelas ini"},
		})
	}

	entry := req.ToModel(classID)
	if err := ctrl.DB.Create(entry).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Slot jadwal sudah terisi untuk hari dan jam tersebut")
		}
		log.Println("[ERROR] create schedule:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jadwal")
	}
	return helper.JsonCreated(c, "Jadwal berhasil dibuat", scheduleDto.NewScheduleEntryResponse(entry))
}

// ===================== DELETE =====================
// DELETE /api/d/schedules/:id
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Delete(&scheduleModel.ScheduleModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] delete schedule:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"id": id})
}

func (ctrl *ScheduleController) respondTimetable(c *fiber.Ctx, classID int) error {
	var entries []scheduleModel.ScheduleModel
	if err := ctrl.DB.Where("class_id = ?", classID).Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	lookup, err := ctrl.buildLookup(entries)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melengkapi jadwal")
	}
	return helper.JsonOK(c, "Jadwal mingguan", scheduleService.BuildWeekTimetable(entries, lookup))
}

// buildLookup memuat nama mapel, kelas, dan guru untuk entri yang tampil.
func (ctrl *ScheduleController) buildLookup(entries []scheduleModel.ScheduleModel) (scheduleService.AnnotationLookup, error) {
	lookup := scheduleService.AnnotationLookup{}
	if len(entries) == 0 {
		return lookup, nil
	}

	subjectIDs := map[int]struct{}{}
	for _, e := range entries {
		subjectIDs[e.SubjectID] = struct{}{}
	}
	ids := make([]int, 0, len(subjectIDs))
	for id := range subjectIDs {
		ids = append(ids, id)
	}

	var subjects []subjectModel.SubjectModel
	if err := ctrl.DB.Where("id IN ?", ids).Find(&subjects).Error; err != nil {
		return nil, err
	}

	teacherNames := map[int]string{}
	classNames := map[int]string{}
	{
		teacherIDs := make([]int, 0, len(subjects))
		classIDs := make([]int, 0, len(subjects))
		for _, s := range subjects {
			teacherIDs = append(teacherIDs, s.TeacherID)
			classIDs = append(classIDs, s.ClassID)
		}
		var teachers []userModel.UserModel
		if err := ctrl.DB.Select("id, full_name").Where("id IN ?", teacherIDs).Find(&teachers).Error; err != nil {
			return nil, err
		}
		for _, t := range teachers {
			teacherNames[t.ID] = t.FullName
		}
		var classes []struct {
			ID   int
			Name string
		}
		if err := ctrl.DB.Table("classes").Where("id IN ?", classIDs).Find(&classes).Error; err != nil {
			return nil, err
		}
		for _, cl := range classes {
			classNames[cl.ID] = cl.Name
		}
	}

	for _, s := range subjects {
		lookup[s.ID] = scheduleService.Annotation{
			ClassName:   classNames[s.ClassID],
			SubjectName: s.Name,
			TeacherName: teacherNames[s.TeacherID],
		}
	}
	return lookup, nil
}

func (ctrl *ScheduleController) classExists(id int) (bool, error) {
	var n int64
	if err := ctrl.DB.Table("classes").Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
