package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/henryjobel/evi-learnig-server-site/internal/auth"
)

type AuthHandler struct {
	secret     []byte
	production bool
	logger     *zap.SugaredLogger
}

func NewAuthHandler(secret []byte, production bool, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		secret:     secret,
		production: production,
		logger:     logger,
	}
}

// IssueToken signs a session JWT for the posted identity and sets it back as
// the token cookie. The endpoint is unauthenticated; the frontend calls it
// right after its own login flow completes.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var identity struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}
	if identity.Email == "" {
		writeError(w, http.StatusBadRequest, errors.New("email is required"))
		return
	}

	token, err := auth.GenerateJWT(identity.Email, h.secret)
	if err != nil {
		h.logger.Errorw("failed to sign token", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	auth.SetTokenCookie(w, token, h.production)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w, h.production)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
