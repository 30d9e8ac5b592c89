package dto

import (
	"strings"
	"time"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=6,max=100"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=100"`
}

// LoginResponse dikirim saat login / refresh berhasil.
type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *ProfileBrief `json:"user"`
}

// ProfileBrief adalah ringkasan identitas yang aman dikirim ke klien.
type ProfileBrief struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	ClassID   *int      `json:"class_id,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProfileBrief(u *userModel.UserModel) *ProfileBrief {
	if u == nil {
		return nil
	}
	return &ProfileBrief{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		ClassID:   u.ClassID,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
	}
}
