package dto

import (
	"strings"
	"time"

	uModel "sekolahku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — create by director
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Role     string `json:"role" validate:"required,oneof=director teacher student parent"`
	ClassID  *int   `json:"class_id,omitempty"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateUserRequest) Normalize() {
	r.Username = strings.TrimSpace(strings.ToLower(r.Username))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Role = strings.TrimSpace(r.Role)
}

// ToModel — konversi ke model (hash password di controller!)
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	m := &uModel.UserModel{
		Username: r.Username,
		FullName: r.FullName,
		Role:     r.Role,
		ClassID:  r.ClassID,
		IsActive: true,
	}
	m.NormalizeRoleFields()
	return m
}

// UpdateUserRequest — partial update (pointer agar bisa bedakan omit vs null)
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=80"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // opsional saat edit
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=director teacher student parent"`
	ClassID  *int    `json:"class_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.Username != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Username))
		r.Username = &v
	}
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Role != nil {
		v := strings.TrimSpace(*r.Role)
		r.Role = &v
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	ClassID   *int      `json:"class_id,omitempty"`
	ParentID  *int      `json:"parent_id,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(m *uModel.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:        m.ID,
		Username:  m.Username,
		FullName:  m.FullName,
		Role:      m.Role,
		ClassID:   m.ClassID,
		ParentID:  m.ParentID,
		PhotoURL:  m.PhotoURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func NewUserResponses(ms []uModel.UserModel) []*UserResponse {
	out := make([]*UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewUserResponse(&ms[i]))
	}
	return out
}
