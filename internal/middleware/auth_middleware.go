package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/henryjobel/evi-learnig-server-site/internal/auth"
)

// VerifyToken guards protected routes. It extracts the session JWT from the
// token cookie, verifies it against the shared secret, and attaches the
// decoded claims to the request context before the handler runs. Missing or
// invalid tokens are rejected with 401 before any handler logic executes.
func VerifyToken(secret []byte, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.TokenCookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			claims, err := auth.ValidateJWT(cookie.Value, secret)
			if err != nil {
				logger.Debugw("token verification failed", "error", err)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized access"})
}
