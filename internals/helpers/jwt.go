// internals/helpers/jwt.go
package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("token tidak valid")

// TokenSubject adalah isi klaim yang kita tanam di access token.
type TokenSubject struct {
	UserID   int
	Role     string
	FullName string
	ClassID  *int
}

// GenerateAccessToken menandatangani access token HS256 berisi identitas principal.
func GenerateAccessToken(secret string, sub TokenSubject) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"typ":       "access",
		"user_id":   sub.UserID,
		"role":      sub.Role,
		"full_name": sub.FullName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	if sub.ClassID != nil {
		claims["class_id"] = *sub.ClassID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// GenerateRefreshToken menandatangani refresh token dengan jti acak.
func GenerateRefreshToken(secret string, userID int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"typ":     "refresh",
		"user_id": userID,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(RefreshTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseTokenClaims memverifikasi tanda tangan + exp lalu mengembalikan klaim.
func ParseTokenClaims(secret, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ClaimInt membaca klaim numerik (JSON number → float64) sebagai int.
func ClaimInt(claims jwt.MapClaims, key string) (int, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
