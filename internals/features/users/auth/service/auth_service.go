// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authDto "sekolahku_backend/internals/features/users/auth/dto"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

var (
	ErrBadCredentials  = errors.New("username atau password salah")
	ErrAccountInactive = errors.New("akun Anda telah dinonaktifkan")
	ErrGoogleToken     = errors.New("token Google tidak valid")
	ErrWrongPassword   = errors.New("password lama salah")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login memverifikasi kredensial dan menerbitkan pasangan token.
func (s *AuthService) Login(req *authDto.LoginRequest) (*authDto.LoginResponse, error) {
	var user userModel.UserModel
	if err := s.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrBadCredentials
	}
	return s.issueTokens(&user)
}

// LoginGoogle memverifikasi id_token Google lalu mencocokkan google_id / email
// dengan user yang sudah terdaftar. Tidak ada pendaftaran mandiri: akun harus
// dibuat direktur lebih dulu.
func (s *AuthService) LoginGoogle(req *authDto.LoginGoogleRequest) (*authDto.LoginResponse, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return nil, ErrGoogleToken
	}
	claims, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return nil, ErrGoogleToken
	}

	var user userModel.UserModel
	err = s.DB.Where("google_id = ?", claims.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) && claims.Email != "" {
		// belum tertaut: cocokkan lewat username = email, lalu tautkan
		err = s.DB.Where("username = ?", strings.ToLower(claims.Email)).First(&user).Error
		if err == nil {
			sub := claims.Sub
			if uerr := s.DB.Model(&user).Update("google_id", sub).Error; uerr != nil {
				return nil, uerr
			}
			user.GoogleID = &sub
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	return s.issueTokens(&user)
}

// RefreshToken menukar refresh token yang masih sah dengan pasangan baru.
func (s *AuthService) RefreshToken(refreshToken string) (*authDto.LoginResponse, error) {
	claims, err := helper.ParseTokenClaims(configs.JWTRefreshSecret, refreshToken)
	if err != nil {
		return nil, helper.ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return nil, helper.ErrInvalidToken
	}
	userID, ok := helper.ClaimInt(claims, "user_id")
	if !ok {
		return nil, helper.ErrInvalidToken
	}

	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	return s.issueTokens(&user)
}

// Logout memasukkan access token ke blacklist sampai exp-nya lewat.
func (s *AuthService) Logout(rawToken string) error {
	expiredAt := time.Now().Add(helper.AccessTokenTTL)
	if claims, err := helper.ParseTokenClaims(configs.JWTSecret, rawToken); err == nil {
		if exp, ok := helper.ClaimInt(claims, "exp"); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}
	return s.DB.Create(&authModel.TokenBlacklist{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}).Error
}

// ChangePassword memverifikasi password lama lalu mengganti hash.
func (s *AuthService) ChangePassword(userID int, req *authDto.ChangePasswordRequest) error {
	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	if err := user.CheckPassword(req.OldPassword); err != nil {
		return ErrWrongPassword
	}
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return s.DB.Model(&user).Update("password", user.Password).Error
}

func (s *AuthService) issueTokens(user *userModel.UserModel) (*authDto.LoginResponse, error) {
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	access, err := helper.GenerateAccessToken(configs.JWTSecret, helper.TokenSubject{
		UserID:   user.ID,
		Role:     user.Role,
		FullName: user.FullName,
		ClassID:  user.ClassID,
	})
	if err != nil {
		return nil, err
	}
	refresh, err := helper.GenerateRefreshToken(configs.JWTRefreshSecret, user.ID)
	if err != nil {
		return nil, err
	}
	return &authDto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDto.NewProfileBrief(user),
	}, nil
}
