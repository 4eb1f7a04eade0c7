// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shinyfy/shinyfy/internal/handler/dto"
)

// Pagination bounds shared by the listing endpoints.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Hello is the API root endpoint.
// GET /api/
func Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Shinyfy API"})
}

// NotFound handles 404 responses for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// parseSkipLimit reads skip/limit query parameters with defaults and bounds.
// Out-of-range values fall back to the defaults rather than erroring, matching
// lenient listing behavior.
func parseSkipLimit(r *http.Request) (skip, limit int64) {
	skip, limit = 0, defaultListLimit
	query := r.URL.Query()
	if s := query.Get("skip"); s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	if l := query.Get("limit"); l != "" {
		if parsed, err := strconv.ParseInt(l, 10, 64); err == nil && parsed >= 1 && parsed <= maxListLimit {
			limit = parsed
		}
	}
	return skip, limit
}
