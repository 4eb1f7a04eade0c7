package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shinyfy/shinyfy/internal/service"
)

// ArtistHandler handles the read-only artist endpoints.
type ArtistHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewArtistHandler creates a new ArtistHandler.
func NewArtistHandler(catalog *service.CatalogService, logger *slog.Logger) *ArtistHandler {
	return &ArtistHandler{catalog: catalog, logger: logger}
}

// List handles GET /api/artists.
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseSkipLimit(r)
	artists, err := h.catalog.ListArtists(r.Context(), skip, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

// Get handles GET /api/artists/{artistID}.
func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	artist, err := h.catalog.Artist(r.Context(), chi.URLParam(r, "artistID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

// TopSongs handles GET /api/artists/{artistID}/top-songs.
func (h *ArtistHandler) TopSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.catalog.ArtistTopSongs(r.Context(), chi.URLParam(r, "artistID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, songs)
}

func (h *ArtistHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrArtistNotFound):
		writeError(w, http.StatusNotFound, "ARTIST_NOT_FOUND", "Artist not found")
	default:
		h.logger.Error("artist handler error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
