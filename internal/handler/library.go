package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shinyfy/shinyfy/internal/auth"
	"github.com/shinyfy/shinyfy/internal/handler/dto"
	"github.com/shinyfy/shinyfy/internal/service"
)

// LibraryHandler handles the per-user library endpoints. All of them sit
// behind the session middleware.
type LibraryHandler struct {
	library *service.LibraryService
	logger  *slog.Logger
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(library *service.LibraryService, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{library: library, logger: logger}
}

// LikedSongs handles GET /api/library/liked-songs.
func (h *LibraryHandler) LikedSongs(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	songs, err := h.library.LikedSongs(r.Context(), user)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, songs)
}

// Like handles POST /api/library/liked-songs/{songID}.
func (h *LibraryHandler) Like(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	if err := h.library.Like(r.Context(), user.UserID, chi.URLParam(r, "songID")); err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Song liked"})
}

// Unlike handles DELETE /api/library/liked-songs/{songID}.
func (h *LibraryHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	if err := h.library.Unlike(r.Context(), user.UserID, chi.URLParam(r, "songID")); err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Song unliked"})
}

// Playlists handles GET /api/library/playlists.
func (h *LibraryHandler) Playlists(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	playlists, err := h.library.Playlists(r.Context(), user)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playlists)
}

// RecentlyPlayed handles GET /api/library/recently-played.
func (h *LibraryHandler) RecentlyPlayed(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	songs, err := h.library.RecentlyPlayed(r.Context(), user)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, songs)
}

func (h *LibraryHandler) handleError(w http.ResponseWriter, err error) {
	h.logger.Error("library handler error", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
}
