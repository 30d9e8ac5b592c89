// internals/features/school/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	notificationDto "sekolahku_backend/internals/features/school/notifications/dto"
	notificationModel "sekolahku_backend/internals/features/school/notifications/model"
	fanout "sekolahku_backend/internals/features/school/notifications/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	"sekolahku_backend/internals/policy"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

var validate = validator.New()

// ===================== SEND =====================
// POST /api/u/notifications — fan-out: satu kiriman jadi satu baris per
// penerima. Direktur boleh semua mode; guru hanya ke kelas / siswa yang
// diajarnya (mode all_students ditolak).
func (ctrl *NotificationController) SendNotification(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var req notificationDto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if msg := req.TargetMissing(); msg != "" {
		return helper.JsonValidationError(c, map[string][]string{
			"receiver_type": {msg},
		})
	}

	receiverIDs, err := ctrl.resolveReceivers(p, &req)
	if err != nil {
		switch {
		case errors.Is(err, errModeForbidden):
			return helper.JsonError(c, fiber.StatusForbidden, "Mode pengiriman ini hanya untuk direktur")
		case errors.Is(err, errTargetForbidden):
			return helper.JsonError(c, fiber.StatusForbidden, "Target bukan dari kelas yang Anda ajar")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Target tidak ditemukan")
		default:
			log.Println("[ERROR] resolve penerima notifikasi:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menentukan penerima")
		}
	}

	sent, err := fanout.Deliver(ctrl.DB, p.UserID, req.Title, req.Message, receiverIDs)
	if err != nil {
		if errors.Is(err, fanout.ErrNoRecipients) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada penerima untuk target ini")
		}
		log.Println("[ERROR] kirim notifikasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim notifikasi")
	}

	return helper.JsonCreated(c, "Notifikasi terkirim", fiber.Map{"sent": sent})
}

// ===================== INBOX (SISWA) =====================
// GET /api/s/notifications
func (ctrl *NotificationController) Inbox(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&notificationModel.NotificationModel{}).Where("receiver_id = ?", p.UserID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var rows []notificationModel.NotificationModel
	if err := q.Order("created_at DESC, id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	resp := notificationDto.NewNotificationResponses(rows)
	ctrl.fillSenderNames(resp)
	return helper.JsonList(c, "Kotak masuk", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== MARK READ (SISWA) =====================
// PUT /api/s/notifications/:id/read — hanya notifikasi milik sendiri.
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("id = ? AND receiver_id = ?", id, p.UserID).
		Update("is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Notifikasi ditandai terbaca", fiber.Map{"id": id})
}

var (
	errModeForbidden   = errors.New("mode hanya untuk direktur")
	errTargetForbidden = errors.New("target di luar kelas yang diajar")
)

func (ctrl *NotificationController) resolveReceivers(p helperAuth.Principal, req *notificationDto.SendNotificationRequest) ([]int, error) {
	isDirector := p.Role == constants.RoleDirector

	switch req.ReceiverType {
	case notificationDto.ReceiverAllStudents:
		if d := policy.Decide(p.Role, policy.ActionNotifyBroadcast); !d.Allowed {
			return nil, errModeForbidden
		}
		return fanout.ResolveAllStudents(ctrl.DB)

	case notificationDto.ReceiverClass:
		if !isDirector {
			if ok, err := ctrl.teacherTeachesClass(p.UserID, *req.ClassID); err != nil {
				return nil, err
			} else if !ok {
				return nil, errTargetForbidden
			}
		}
		return fanout.ResolveClassStudents(ctrl.DB, *req.ClassID)

	case notificationDto.ReceiverIndividual:
		var student userModel.UserModel
		if err := ctrl.DB.First(&student, "id = ? AND role = ?", *req.StudentID, constants.RoleStudent).Error; err != nil {
			return nil, err
		}
		if !isDirector {
			if student.ClassID == nil {
				return nil, errTargetForbidden
			}
			if ok, err := ctrl.teacherTeachesClass(p.UserID, *student.ClassID); err != nil {
				return nil, err
			} else if !ok {
				return nil, errTargetForbidden
			}
		}
		return []int{student.ID}, nil
	}
	return nil, errors.New("mode penerima tidak dikenal")
}

func (ctrl *NotificationController) teacherTeachesClass(teacherID, classID int) (bool, error) {
	var n int64
	err := ctrl.DB.Table("subjects").
		Where("teacher_id = ? AND class_id = ?", teacherID, classID).
		Count(&n).Error
	return n > 0, err
}

func (ctrl *NotificationController) fillSenderNames(resp []*notificationDto.NotificationResponse) {
	if len(resp) == 0 {
		return
	}
	ids := map[int]struct{}{}
	for _, r := range resp {
		ids[r.SenderID] = struct{}{}
	}
	list := make([]int, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	var senders []userModel.UserModel
	if err := ctrl.DB.Select("id, full_name").Where("id IN ?", list).Find(&senders).Error; err != nil {
		return
	}
	names := map[int]string{}
	for _, s := range senders {
		names[s.ID] = s.FullName
	}
	for _, r := range resp {
		r.SenderName = names[r.SenderID]
	}
}
