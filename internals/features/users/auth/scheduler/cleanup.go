// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "sekolahku_backend/internals/features/users/auth/model"
)

// StartTokenCleanup menghapus token blacklist yang sudah kedaluwarsa secara
// berkala supaya tabelnya tidak membengkak. Berhenti saat stop ditutup.
func StartTokenCleanup(db *gorm.DB, interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				res := db.Unscoped().
					Where("expired_at < ?", time.Now()).
					Delete(&authModel.TokenBlacklist{})
				if res.Error != nil {
					log.Println("[ERROR] bersihkan token blacklist:", res.Error)
				} else if res.RowsAffected > 0 {
					log.Printf("[INFO] %d token kedaluwarsa dihapus dari blacklist", res.RowsAffected)
				}
			case <-stop:
				return
			}
		}
	}()
}
