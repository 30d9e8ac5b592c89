// internals/features/school/notifications/service/fanout_service.go
//
// Fan-out notifikasi: satu kiriman menjadi N baris (satu per penerima).
// Penyusunan baris dipisah sebagai fungsi murni; penulisan DB dibungkus
// satu transaksi — gagal sebagian berarti batal seluruhnya.
package service

import (
	"errors"

	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	notificationModel "sekolahku_backend/internals/features/school/notifications/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

var ErrNoRecipients = errors.New("tidak ada penerima untuk notifikasi ini")

// BuildRows menyusun baris notifikasi untuk tiap penerima. Semua baris
// lahir belum terbaca.
func BuildRows(senderID int, title, message string, receiverIDs []int) []notificationModel.NotificationModel {
	rows := make([]notificationModel.NotificationModel, 0, len(receiverIDs))
	for _, rid := range receiverIDs {
		rows = append(rows, notificationModel.NotificationModel{
			SenderID:   senderID,
			ReceiverID: rid,
			Title:      title,
			Message:    message,
			IsRead:     false,
		})
	}
	return rows
}

// ResolveAllStudents mengambil id seluruh siswa aktif.
func ResolveAllStudents(db *gorm.DB) ([]int, error) {
	var ids []int
	err := db.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = ?", constants.RoleStudent, true).
		Pluck("id", &ids).Error
	return ids, err
}

// ResolveClassStudents mengambil id siswa aktif satu kelas.
func ResolveClassStudents(db *gorm.DB, classID int) ([]int, error) {
	var ids []int
	err := db.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = ? AND class_id = ?", constants.RoleStudent, true, classID).
		Pluck("id", &ids).Error
	return ids, err
}

// Deliver menulis seluruh baris dalam satu transaksi dan mengembalikan
// jumlah notifikasi terkirim.
func Deliver(db *gorm.DB, senderID int, title, message string, receiverIDs []int) (int, error) {
	if len(receiverIDs) == 0 {
		return 0, ErrNoRecipients
	}
	rows := BuildRows(senderID, title, message, receiverIDs)
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	}); err != nil {
		return 0, err
	}
	return len(rows), nil
}
