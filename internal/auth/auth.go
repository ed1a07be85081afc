package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenCookieName is the cookie that carries the session JWT.
	TokenCookieName = "token"
	// TokenValidity matches the issuing endpoint's 365-day expiry.
	TokenValidity = 365 * 24 * time.Hour
)

type contextKey string

const claimsContextKey contextKey = "claims"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a session token for the given email, valid for a year.
func GenerateJWT(email string, secret []byte) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateJWT parses and validates a session token
func ValidateJWT(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// WithClaims attaches verified claims to the request context.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// EmailFromContext returns the verified email attached by the auth middleware.
func EmailFromContext(ctx context.Context) (string, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok {
		return "", false
	}
	return claims.Email, true
}

// SetTokenCookie writes the session cookie. Production gets Secure plus
// SameSite=None so the cross-site frontend can send it; development keeps
// SameSite=Strict over plain HTTP.
func SetTokenCookie(w http.ResponseWriter, token string, production bool) {
	cookie := &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(TokenValidity),
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)
}

// ClearTokenCookie expires the session cookie immediately.
func ClearTokenCookie(w http.ResponseWriter, production bool) {
	cookie := &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   production,
		SameSite: http.SameSiteStrictMode,
	}
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, cookie)
}
