package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"sekolahku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database.
// class_id hanya bermakna untuk siswa (penempatan kelas); parent_id hanya
// bermakna untuk siswa (tautan orang tua).
type UserModel struct {
	ID       int     `gorm:"primaryKey" json:"id"`
	Username string  `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Password string  `gorm:"size:200;not null" json:"-"`
	FullName string  `gorm:"size:100;not null" json:"full_name"`
	Role     string  `gorm:"type:varchar(20);not null" json:"role"`
	ClassID  *int    `gorm:"column:class_id" json:"class_id,omitempty"`
	ParentID *int    `gorm:"column:parent_id" json:"parent_id,omitempty"`
	GoogleID *string `gorm:"size:255;uniqueIndex" json:"-"`
	PhotoURL *string `gorm:"size:255" json:"photo_url,omitempty"`
	IsActive bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetPassword meng-hash password plaintext dengan bcrypt.
func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword membandingkan password plaintext dengan hash tersimpan.
func (u *UserModel) CheckPassword(plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain))
}

func (u *UserModel) IsDirector() bool { return u.Role == constants.RoleDirector }
func (u *UserModel) IsTeacher() bool  { return u.Role == constants.RoleTeacher }
func (u *UserModel) IsStudent() bool  { return u.Role == constants.RoleStudent }
func (u *UserModel) IsParent() bool   { return u.Role == constants.RoleParent }

// AttachParentLink menautkan orang tua ke siswa; tautan lama tertimpa.
func (u *UserModel) AttachParentLink(parentID int) {
	u.ParentID = &parentID
}

// DetachParentLink melepas tautan orang tua tanpa menyentuh data siswa lain.
func (u *UserModel) DetachParentLink() {
	u.ParentID = nil
}

// NormalizeRoleFields mengosongkan field yang tidak bermakna untuk role
// bersangkutan: non-siswa tidak boleh membawa penempatan kelas / tautan
// orang tua.
func (u *UserModel) NormalizeRoleFields() {
	if !u.IsStudent() {
		u.ClassID = nil
		u.ParentID = nil
	}
}
