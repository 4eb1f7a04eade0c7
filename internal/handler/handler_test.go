package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shinyfy/shinyfy/internal/auth"
	"github.com/shinyfy/shinyfy/internal/handler/dto"
	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser attaches an authenticated user to the request context, standing in
// for the session middleware.
func asUser(r *http.Request, user *model.User) *http.Request {
	return r.WithContext(auth.ContextWithUser(r.Context(), user))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

func newUser(t *testing.T, ms *testutil.MemStore, userID string) *model.User {
	t.Helper()
	user := &model.User{
		UserID:         userID,
		Email:          userID + "@example.com",
		Name:           "Test User",
		LikedSongs:     []string{},
		Playlists:      []string{},
		RecentlyPlayed: []string{},
		Preferences:    model.DefaultPreferences(),
	}
	if err := ms.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

// routeParam builds a request whose chi route context carries the given URL
// parameters.
func routeParam(r *http.Request, pairs ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rctx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHello(t *testing.T) {
	rec := httptest.NewRecorder()
	Hello(rec, httptest.NewRequest(http.MethodGet, "/api/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %s", ct)
	}

	var resp dto.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Shinyfy API" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if got := decodeError(t, rec).Code; got != "NOT_FOUND" {
		t.Errorf("unexpected code %q", got)
	}

	rec = httptest.NewRecorder()
	MethodNotAllowed(rec, httptest.NewRequest(http.MethodPatch, "/api/songs", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestParseSkipLimit(t *testing.T) {
	tests := []struct {
		url       string
		wantSkip  int64
		wantLimit int64
	}{
		{"/api/songs", 0, 20},
		{"/api/songs?skip=40&limit=10", 40, 10},
		{"/api/songs?skip=-1&limit=0", 0, 20},
		{"/api/songs?limit=500", 0, 20},
		{"/api/songs?skip=abc&limit=xyz", 0, 20},
		{"/api/songs?limit=100", 0, 100},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, tt.url, nil)
		skip, limit := parseSkipLimit(r)
		if skip != tt.wantSkip || limit != tt.wantLimit {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", tt.url, skip, limit, tt.wantSkip, tt.wantLimit)
		}
	}
}
