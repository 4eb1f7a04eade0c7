package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shinyfy/shinyfy/internal/auth"
	"github.com/shinyfy/shinyfy/internal/handler/dto"
	"github.com/shinyfy/shinyfy/internal/service"
	"github.com/shinyfy/shinyfy/internal/store"
)

// SongHandler handles catalog song endpoints.
type SongHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewSongHandler creates a new SongHandler.
func NewSongHandler(catalog *service.CatalogService, logger *slog.Logger) *SongHandler {
	return &SongHandler{catalog: catalog, logger: logger}
}

// List handles GET /api/songs.
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseSkipLimit(r)
	query := r.URL.Query()

	songs, err := h.catalog.ListSongs(r.Context(), store.SongFilter{
		Region: query.Get("region"),
		Genre:  query.Get("genre"),
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, songs)
}

// Search handles GET /api/songs/search.
func (h *SongHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "MISSING_QUERY", "q is required")
		return
	}

	result, err := h.catalog.Search(r.Context(), q)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/songs/{songID}.
func (h *SongHandler) Get(w http.ResponseWriter, r *http.Request) {
	song, err := h.catalog.Song(r.Context(), chi.URLParam(r, "songID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

// TrackPlay handles POST /api/songs/{songID}/play. Works anonymously; with a
// session the play also lands in the user's recently-played list.
func (h *SongHandler) TrackPlay(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if err := h.catalog.TrackPlay(r.Context(), chi.URLParam(r, "songID"), user); err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Play tracked"})
}

// Lyrics handles GET /api/songs/{songID}/lyrics.
func (h *SongHandler) Lyrics(w http.ResponseWriter, r *http.Request) {
	lyrics, err := h.catalog.Lyrics(r.Context(), chi.URLParam(r, "songID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LyricsResponse{Lyrics: lyrics})
}

func (h *SongHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSongNotFound):
		writeError(w, http.StatusNotFound, "SONG_NOT_FOUND", "Song not found")
	default:
		h.logger.Error("song handler error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
