// internals/features/school/holidays/controller/holiday_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayDto "sekolahku_backend/internals/features/school/holidays/dto"
	holidayModel "sekolahku_backend/internals/features/school/holidays/model"
	holidayService "sekolahku_backend/internals/features/school/holidays/service"
	helper "sekolahku_backend/internals/helpers"
)

type HolidayController struct {
	DB *gorm.DB
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db}
}

var validate = validator.New()

// ===================== LIST =====================
// GET /api/d/holidays — seluruh libur, terurut per tanggal mulai.
func (ctrl *HolidayController) ListHolidays(c *fiber.Ctx) error {
	var holidays []holidayModel.HolidayModel
	if err := ctrl.DB.Order("start_date").Find(&holidays).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar libur")
	}
	return helper.JsonList(c, "Daftar hari libur", holidayDto.NewHolidayResponses(holidays), nil)
}

// ===================== UPCOMING =====================
// GET /api/u/holidays/upcoming — libur yang mulai dalam 7 hari ke depan.
func (ctrl *HolidayController) ListUpcoming(c *fiber.Ctx) error {
	var holidays []holidayModel.HolidayModel
	if err := ctrl.DB.Order("start_date").Find(&holidays).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar libur")
	}
	upcoming := holidayService.FilterUpcoming(time.Now(), holidays)
	return helper.JsonList(c, "Libur terdekat", holidayDto.NewHolidayResponses(upcoming), nil)
}

// ===================== CREATE =====================
// POST /api/d/holidays
func (ctrl *HolidayController) CreateHoliday(c *fiber.Ctx) error {
	var req holidayDto.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	holiday, err := req.ToModel()
	if err != nil {
		if errors.Is(err, holidayDto.ErrEndBeforeStart) {
			return helper.JsonValidationError(c, map[string][]string{
				"end_date": {"tanggal selesai tidak boleh sebelum tanggal mulai"},
			})
		}
		return helper.JsonValidationError(c, map[string][]string{
			"start_date": {"format tanggal tidak valid (YYYY-MM-DD)"},
		})
	}

	if err := ctrl.DB.Create(holiday).Error; err != nil {
		log.Println("[ERROR] create holiday:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan hari libur")
	}
	return helper.JsonCreated(c, "Hari libur tersimpan", holidayDto.NewHolidayResponse(holiday))
}

// ===================== DELETE =====================
// DELETE /api/d/holidays/:id
func (ctrl *HolidayController) DeleteHoliday(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctrl.DB.Delete(&holidayModel.HolidayModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] delete holiday:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus hari libur")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Hari libur tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Hari libur dihapus", fiber.Map{"id": id})
}
