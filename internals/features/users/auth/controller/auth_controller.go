// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDto "sekolahku_backend/internals/features/users/auth/dto"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB      *gorm.DB
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Service: authService.NewAuthService(db)}
}

var validate = validator.New()

// ===================== LOGIN =====================
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ac.Service.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrBadCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, authService.ErrAccountInactive):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			log.Println("[ERROR] login:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
	}

	setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	return helper.JsonOK(c, "Login berhasil", resp)
}

// ===================== LOGIN GOOGLE =====================
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDto.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ac.Service.LoginGoogle(&req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrGoogleToken):
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, authService.ErrBadCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Akun Google belum terdaftar")
		case errors.Is(err, authService.ErrAccountInactive):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			log.Println("[ERROR] login-google:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
	}

	setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	return helper.JsonOK(c, "Login berhasil", resp)
}

// ===================== REFRESH =====================
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	refresh := helper.GetRefreshTokenFromCookie(c)
	if refresh == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refresh = body.RefreshToken
	}
	if refresh == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	resp, err := ac.Service.RefreshToken(refresh)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrInvalidToken), errors.Is(err, authService.ErrBadCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
		case errors.Is(err, authService.ErrAccountInactive):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		default:
			log.Println("[ERROR] refresh:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui token")
		}
	}

	setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	return helper.JsonOK(c, "Token diperbarui", resp)
}

// ===================== LOGOUT =====================
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		if err := ac.Service.Logout(raw); err != nil {
			log.Println("[ERROR] blacklist token:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}
	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ===================== ME =====================
func (ac *AuthController) Me(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}
	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", p.UserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", authDto.NewProfileBrief(&user))
}

// ===================== CHANGE PASSWORD =====================
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	p, err := helperAuth.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Belum login")
	}

	var req authDto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ac.Service.ChangePassword(p.UserID, &req); err != nil {
		if errors.Is(err, authService.ErrWrongPassword) {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		log.Println("[ERROR] change-password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}
	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  time.Now().Add(helper.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  time.Now().Add(helper.RefreshTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
}
