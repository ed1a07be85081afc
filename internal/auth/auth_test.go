package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henryjobel/evi-learnig-server-site/internal/auth"
)

var secret = []byte("test-secret")

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := auth.GenerateJWT("student@example.com", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.ValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", claims.Email)

	// Expiry should be a year out, give or take.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 364*24*time.Hour)
	assert.LessOrEqual(t, remaining, 366*24*time.Hour)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := auth.GenerateJWT("student@example.com", secret)
	require.NoError(t, err)

	_, err = auth.ValidateJWT(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := auth.ValidateJWT("not-a-token", secret)
	assert.Error(t, err)
}

func TestValidateJWT_RejectsUnexpectedAlgorithm(t *testing.T) {
	// Correct secret, wrong signing method: verification must fail on the
	// method, not fall through to a key-type mismatch.
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, &auth.Claims{Email: "student@example.com"})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = auth.ValidateJWT(signed, secret)
	assert.Error(t, err)
}

func TestSetTokenCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.SetTokenCookie(rec, "tok123", false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, auth.TokenCookieName, cookie.Name)
	assert.Equal(t, "tok123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.WithinDuration(t, time.Now().Add(auth.TokenValidity), cookie.Expires, time.Minute)
}

func TestSetTokenCookie_Production(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.SetTokenCookie(rec, "tok123", true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestClearTokenCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.ClearTokenCookie(rec, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, auth.TokenCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestEmailFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, ok := auth.EmailFromContext(req.Context())
	assert.False(t, ok)
}
