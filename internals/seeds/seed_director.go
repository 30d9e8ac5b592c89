// internals/seeds/seed_director.go
package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// SeedDefaultDirector membuat akun direktur awal bila belum ada, supaya
// instalasi baru bisa langsung login dan membuat akun lain.
func SeedDefaultDirector(db *gorm.DB) error {
	var existing userModel.UserModel
	err := db.Where("username = ?", "director").First(&existing).Error
	if err == nil {
		log.Println("[INFO] Akun direktur sudah ada, seed dilewati")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	director := userModel.UserModel{
		Username: "director",
		FullName: "Direktur Sekolah",
		Role:     constants.RoleDirector,
		IsActive: true,
	}
	if err := director.SetPassword("director123"); err != nil {
		return err
	}
	if err := db.Create(&director).Error; err != nil {
		return err
	}
	log.Println("[INFO] Akun direktur default dibuat (username: director)")
	return nil
}
