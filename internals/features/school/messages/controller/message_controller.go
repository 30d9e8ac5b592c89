// internals/features/school/messages/controller/message_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageDto "sekolahku_backend/internals/features/school/messages/dto"
	messageModel "sekolahku_backend/internals/features/school/messages/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

var validate = validator.New()

// ===================== SEND =====================
// POST /api/u/messages — pesan pribadi antar user terdaftar.
func (ctrl *MessageController) SendMessage(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var req messageDto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.ReceiverID == p.UserID {
		return helper.JsonValidationError(c, map[string][]string{
			"receiver_id": {"tidak bisa mengirim pesan ke diri sendiri"},
		})
	}

	var n int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ? AND is_active = ?", req.ReceiverID, true).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa penerima")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Penerima tidak ditemukan")
	}

	msg := req.ToModel(p.UserID)
	if err := ctrl.DB.Create(msg).Error; err != nil {
		log.Println("[ERROR] kirim pesan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}
	return helper.JsonCreated(c, "Pesan terkirim", messageDto.NewMessageResponse(msg))
}

// ===================== INBOX =====================
// GET /api/u/messages/inbox
func (ctrl *MessageController) Inbox(c *fiber.Ctx) error {
	return ctrl.listByColumn(c, "receiver_id", "Kotak masuk")
}

// ===================== SENT =====================
// GET /api/u/messages/sent
func (ctrl *MessageController) Sent(c *fiber.Ctx) error {
	return ctrl.listByColumn(c, "sender_id", "Pesan terkirim")
}

// ===================== MARK READ =====================
// PUT /api/u/messages/:id/read — hanya penerima yang boleh menandai.
func (ctrl *MessageController) MarkRead(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Model(&messageModel.MessageModel{}).
		Where("id = ? AND receiver_id = ?", id, p.UserID).
		Update("is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai pesan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Pesan ditandai terbaca", fiber.Map{"id": id})
}

func (ctrl *MessageController) listByColumn(c *fiber.Ctx, column, message string) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&messageModel.MessageModel{}).Where(column+" = ?", p.UserID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}

	var rows []messageModel.MessageModel
	if err := q.Order("created_at DESC, id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	resp := messageDto.NewMessageResponses(rows)
	ctrl.fillNames(resp)
	return helper.JsonList(c, message, resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *MessageController) fillNames(resp []*messageDto.MessageResponse) {
	if len(resp) == 0 {
		return
	}
	ids := map[int]struct{}{}
	for _, r := range resp {
		ids[r.SenderID] = struct{}{}
		ids[r.ReceiverID] = struct{}{}
	}
	list := make([]int, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	var users []userModel.UserModel
	if err := ctrl.DB.Select("id, full_name").Where("id IN ?", list).Find(&users).Error; err != nil {
		return
	}
	names := map[int]string{}
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	for _, r := range resp {
		r.SenderName = names[r.SenderID]
		r.ReceiverName = names[r.ReceiverID]
	}
}
