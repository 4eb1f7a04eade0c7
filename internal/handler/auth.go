package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shinyfy/shinyfy/internal/auth"
	"github.com/shinyfy/shinyfy/internal/handler/dto"
	"github.com/shinyfy/shinyfy/internal/metrics"
)

// AuthHandler handles the session lifecycle endpoints.
type AuthHandler struct {
	authn   *auth.Authenticator
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authn *auth.Authenticator, recorder metrics.Recorder, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authn: authn, metrics: recorder, logger: logger}
}

// CreateSession handles POST /api/auth/session. It exchanges the provider
// session id for a user and a session token, sets the session cookie and
// returns both.
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_SESSION_ID", "session_id is required")
		return
	}

	user, token, err := h.authn.Login(r.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, "INVALID_SESSION", "Session could not be verified")
			return
		}
		h.logger.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	h.metrics.IncUserLogin()
	auth.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, dto.SessionResponse{User: user, SessionToken: token})
}

// Me handles GET /api/auth/me. Requires the session middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, auth.MustUserFromContext(r.Context()))
}

// Logout handles POST /api/auth/logout. The session record is deleted when
// one is presented; the cookie is cleared either way.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := auth.TokenFromRequest(r); token != "" {
		if err := h.authn.EndSession(r.Context(), token); err != nil {
			h.logger.Warn("session delete failed", "error", err)
		}
	}
	auth.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
