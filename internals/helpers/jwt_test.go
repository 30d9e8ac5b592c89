package helper

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "rahasia-uji"

func TestAccessTokenRoundtrip(t *testing.T) {
	classID := 3
	token, err := GenerateAccessToken(testSecret, TokenSubject{
		UserID:   42,
		Role:     "student",
		FullName: "Budi",
		ClassID:  &classID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseTokenClaims(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, "student", claims["role"])
	assert.Equal(t, "Budi", claims["full_name"])

	userID, ok := ClaimInt(claims, "user_id")
	require.True(t, ok)
	assert.Equal(t, 42, userID)

	cid, ok := ClaimInt(claims, "class_id")
	require.True(t, ok)
	assert.Equal(t, 3, cid)
}

func TestAccessTokenWithoutClassOmitsClaim(t *testing.T) {
	token, err := GenerateAccessToken(testSecret, TokenSubject{UserID: 1, Role: "teacher"})
	require.NoError(t, err)

	claims, err := ParseTokenClaims(testSecret, token)
	require.NoError(t, err)

	_, ok := ClaimInt(claims, "class_id")
	assert.False(t, ok)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testSecret, TokenSubject{UserID: 1, Role: "director"})
	require.NoError(t, err)

	_, err = ParseTokenClaims("secret-lain", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseTokenClaims(testSecret, "bukan.token.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokenHasTypeAndJti(t *testing.T) {
	token, err := GenerateRefreshToken(testSecret, 7)
	require.NoError(t, err)

	claims, err := ParseTokenClaims(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, "refresh", claims["typ"])
	assert.NotEmpty(t, claims["jti"])

	userID, ok := ClaimInt(claims, "user_id")
	require.True(t, ok)
	assert.Equal(t, 7, userID)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	a, err := GenerateRefreshToken(testSecret, 1)
	require.NoError(t, err)
	b, err := GenerateRefreshToken(testSecret, 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "jti acak harus membedakan dua refresh token")
}

func TestClaimIntTypes(t *testing.T) {
	claims := jwt.MapClaims{"f": float64(9), "i": 9, "s": "9"}

	v, ok := ClaimInt(claims, "f")
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	v, ok = ClaimInt(claims, "i")
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = ClaimInt(claims, "s")
	assert.False(t, ok)

	_, ok = ClaimInt(claims, "hilang")
	assert.False(t, ok)
}
