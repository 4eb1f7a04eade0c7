package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shinyfy/shinyfy/internal/handler/dto"
	"github.com/shinyfy/shinyfy/internal/metrics"
	"github.com/shinyfy/shinyfy/internal/youtube"
)

// Provider result bounds.
const (
	defaultSearchResults = 10
	maxSearchResults     = 50
	defaultRelated       = 5
	maxRelated           = 20
)

// VideoProvider is the provider surface the video endpoints need.
// *youtube.Client satisfies it.
type VideoProvider interface {
	SearchMusic(ctx context.Context, query string, maxResults int) ([]youtube.Video, error)
	VideoDetails(ctx context.Context, videoID string) (*youtube.Video, error)
	Related(ctx context.Context, videoID string, maxResults int) ([]youtube.Video, error)
}

// VideoHandler proxies the video provider endpoints.
type VideoHandler struct {
	client  VideoProvider
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(client VideoProvider, recorder metrics.Recorder, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{client: client, metrics: recorder, logger: logger}
}

// Search handles GET /api/youtube/search. A provider failure is surfaced as
// an upstream error; this is the only provider endpoint that fails loudly.
func (h *VideoHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "MISSING_QUERY", "q is required")
		return
	}
	maxResults, ok := parseMaxResults(r, defaultSearchResults, maxSearchResults)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_MAX_RESULTS", "max_results out of range")
		return
	}

	h.metrics.IncVideoSearch()
	videos, err := h.client.SearchMusic(r.Context(), q, maxResults)
	if err != nil {
		h.metrics.IncVideoSearchError()
		h.logger.Error("video search failed", "query", q, "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Video search failed")
		return
	}
	writeJSON(w, http.StatusOK, dto.VideosResponse{Videos: videos})
}

// Video handles GET /api/youtube/video/{videoID}.
func (h *VideoHandler) Video(w http.ResponseWriter, r *http.Request) {
	video, err := h.client.VideoDetails(r.Context(), chi.URLParam(r, "videoID"))
	if err != nil {
		h.logger.Error("video details failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}
	if video == nil {
		writeError(w, http.StatusNotFound, "VIDEO_NOT_FOUND", "Video not found")
		return
	}
	writeJSON(w, http.StatusOK, video)
}

// Related handles GET /api/youtube/related/{videoID}. Provider failures show
// up as an empty list, never as an error.
func (h *VideoHandler) Related(w http.ResponseWriter, r *http.Request) {
	maxResults, ok := parseMaxResults(r, defaultRelated, maxRelated)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_MAX_RESULTS", "max_results out of range")
		return
	}

	videos, err := h.client.Related(r.Context(), chi.URLParam(r, "videoID"), maxResults)
	if err != nil {
		h.logger.Error("related videos failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}
	writeJSON(w, http.StatusOK, dto.VideosResponse{Videos: videos})
}

// parseMaxResults reads max_results with a default and an upper bound.
// Explicit out-of-range values are rejected rather than clamped.
func parseMaxResults(r *http.Request, def, max int) (int, bool) {
	raw := r.URL.Query().Get("max_results")
	if raw == "" {
		return def, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 || parsed > max {
		return 0, false
	}
	return parsed, true
}
