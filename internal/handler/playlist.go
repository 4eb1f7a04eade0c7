package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shinyfy/shinyfy/internal/auth"
	"github.com/shinyfy/shinyfy/internal/handler/dto"
	"github.com/shinyfy/shinyfy/internal/service"
	"github.com/shinyfy/shinyfy/internal/store"
)

// PlaylistHandler handles playlist endpoints. Reads are public; every
// mutation sits behind the session middleware.
type PlaylistHandler struct {
	playlists *service.PlaylistService
	logger    *slog.Logger
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(playlists *service.PlaylistService, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists, logger: logger}
}

// List handles GET /api/playlists.
func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseSkipLimit(r)
	playlists, err := h.playlists.ListPublic(r.Context(), skip, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playlists)
}

// Get handles GET /api/playlists/{playlistID}.
func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.playlists.Get(r.Context(), chi.URLParam(r, "playlistID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Create handles POST /api/playlists.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	// Playlists are public unless the request says otherwise.
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	user := auth.MustUserFromContext(r.Context())
	playlist, err := h.playlists.Create(r.Context(), user.UserID, service.CreatePlaylistInput{
		Name:        req.Name,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		IsPublic:    isPublic,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

// Update handles PUT /api/playlists/{playlistID}.
func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user := auth.MustUserFromContext(r.Context())
	err := h.playlists.Update(r.Context(), user.UserID, chi.URLParam(r, "playlistID"), store.PlaylistUpdate{
		Name:        req.Name,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Playlist updated"})
}

// Delete handles DELETE /api/playlists/{playlistID}.
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	if err := h.playlists.Delete(r.Context(), user.UserID, chi.URLParam(r, "playlistID")); err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Playlist deleted"})
}

// AddSong handles POST /api/playlists/{playlistID}/songs?song_id=.
func (h *PlaylistHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	songID := r.URL.Query().Get("song_id")
	if songID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_SONG_ID", "song_id is required")
		return
	}

	user := auth.MustUserFromContext(r.Context())
	if err := h.playlists.AddSong(r.Context(), user.UserID, chi.URLParam(r, "playlistID"), songID); err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Song added to playlist"})
}

// RemoveSong handles DELETE /api/playlists/{playlistID}/songs/{songID}.
func (h *PlaylistHandler) RemoveSong(w http.ResponseWriter, r *http.Request) {
	user := auth.MustUserFromContext(r.Context())
	err := h.playlists.RemoveSong(r.Context(), user.UserID, chi.URLParam(r, "playlistID"), chi.URLParam(r, "songID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Song removed from playlist"})
}

func (h *PlaylistHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound):
		writeError(w, http.StatusNotFound, "PLAYLIST_NOT_FOUND", "Playlist not found")
	case errors.Is(err, service.ErrSongNotFound):
		writeError(w, http.StatusNotFound, "SONG_NOT_FOUND", "Song not found")
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, "NOT_OWNER", "Not authorized")
	case errors.Is(err, service.ErrNameRequired):
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "Playlist name is required")
	default:
		h.logger.Error("playlist handler error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
