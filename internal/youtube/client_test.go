package youtube

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

const searchJSON = `{
	"items": [
		{"id": {"videoId": "vid1"}, "snippet": {"title": "Song One", "channelTitle": "ChannelA", "publishedAt": "2020-01-01T00:00:00Z", "thumbnails": {"high": {"url": "https://img/1.jpg"}}}},
		{"id": {"videoId": "vid2"}, "snippet": {"title": "Song Two", "channelTitle": "ChannelB", "publishedAt": "2021-01-01T00:00:00Z", "thumbnails": {"high": {"url": "https://img/2.jpg"}}}}
	]
}`

const videosJSON = `{
	"items": [
		{"id": "vid1", "snippet": {"title": "Song One", "channelTitle": "ChannelA", "publishedAt": "2020-01-01T00:00:00Z", "thumbnails": {"high": {"url": "https://img/1.jpg"}}}, "contentDetails": {"duration": "PT3M20S"}, "statistics": {"viewCount": "12345"}},
		{"id": "vid2", "snippet": {"title": "Song Two", "channelTitle": "ChannelB", "publishedAt": "2021-01-01T00:00:00Z", "thumbnails": {"high": {"url": "https://img/2.jpg"}}}, "contentDetails": {"duration": "PT4M1S"}, "statistics": {"viewCount": "999"}}
	]
}`

func newTestClient(t *testing.T, keys []string, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewClient(keys, logger)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	c.baseURL = srv.URL
	return c
}

func TestNewClient_EmptyPool(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := NewClient(nil, logger); err == nil {
		t.Fatal("expected error for empty key pool")
	}
}

func TestSearchMusic_MergesBatchDetails(t *testing.T) {
	var usedKeys []string
	c := newTestClient(t, []string{"key-a", "key-b"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usedKeys = append(usedKeys, r.URL.Query().Get("key"))
		switch r.URL.Path {
		case "/search":
			if got := r.URL.Query().Get("videoCategoryId"); got != "10" {
				t.Errorf("expected music category, got %q", got)
			}
			if got := r.URL.Query().Get("q"); got != "dua lipa official music video" {
				t.Errorf("unexpected query %q", got)
			}
			io.WriteString(w, searchJSON)
		case "/videos":
			if got := r.URL.Query().Get("id"); got != "vid1,vid2" {
				t.Errorf("expected batched id lookup, got %q", got)
			}
			io.WriteString(w, videosJSON)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	videos, err := c.SearchMusic(context.Background(), "dua lipa", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].Duration != "PT3M20S" {
		t.Errorf("expected merged duration, got %q", videos[0].Duration)
	}
	if videos[0].ViewCount != 12345 {
		t.Errorf("expected merged view count, got %d", videos[0].ViewCount)
	}
	for _, k := range usedKeys {
		if k != "key-a" {
			t.Errorf("expected first key before any failure, got %q", k)
		}
	}
}

func TestSearchMusic_ErrorRotatesAndPropagates(t *testing.T) {
	c := newTestClient(t, []string{"key-a", "key-b", "key-c"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"error": {"message": "quota exceeded"}}`)
	}))

	before := c.cursor.Load()
	_, err := c.SearchMusic(context.Background(), "anything", 5)
	if err == nil {
		t.Fatal("expected error to propagate")
	}
	if got := c.cursor.Load(); got != before+1 {
		t.Errorf("expected cursor to advance by exactly one, got %d -> %d", before, got)
	}
}

func TestSearchMusic_RotationWrapsModulo(t *testing.T) {
	c := newTestClient(t, []string{"key-a", "key-b"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	for i := 0; i < 2; i++ {
		if _, err := c.SearchMusic(context.Background(), "q", 1); err == nil {
			t.Fatal("expected error")
		}
	}
	if got := c.currentKey(); got != "key-a" {
		t.Errorf("expected cursor to wrap back to first key, got %q", got)
	}
}

func TestVideoDetails_ErrorSwallowedNoRotation(t *testing.T) {
	c := newTestClient(t, []string{"key-a", "key-b"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	before := c.cursor.Load()
	video, err := c.VideoDetails(context.Background(), "vid1")
	if err != nil {
		t.Fatalf("expected provider error swallowed, got %v", err)
	}
	if video != nil {
		t.Error("expected absent video")
	}
	if got := c.cursor.Load(); got != before {
		t.Errorf("expected cursor untouched, got %d -> %d", before, got)
	}
}

func TestVideoDetails_FoundAndAbsent(t *testing.T) {
	c := newTestClient(t, []string{"key-a"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "vid1" {
			io.WriteString(w, videosJSON)
			return
		}
		io.WriteString(w, `{"items": []}`)
	}))

	video, err := c.VideoDetails(context.Background(), "vid1")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if video == nil || video.Title != "Song One" {
		t.Fatalf("expected Song One, got %+v", video)
	}

	video, err = c.VideoDetails(context.Background(), "missing")
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if video != nil {
		t.Error("expected absent result for unknown id")
	}
}

func TestRelated_EmptyDurationAndSwallowedErrors(t *testing.T) {
	fail := false
	c := newTestClient(t, []string{"key-a", "key-b"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if got := r.URL.Query().Get("relatedToVideoId"); got != "vid1" {
			t.Errorf("expected related lookup for vid1, got %q", got)
		}
		io.WriteString(w, searchJSON)
	}))

	videos, err := c.Related(context.Background(), "vid1", 5)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 related videos, got %d", len(videos))
	}
	if videos[0].Duration != "" {
		t.Errorf("expected empty duration for related results, got %q", videos[0].Duration)
	}

	fail = true
	before := c.cursor.Load()
	videos, err = c.Related(context.Background(), "vid1", 5)
	if err != nil {
		t.Fatalf("expected provider error swallowed, got %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("expected empty list on provider error, got %d", len(videos))
	}
	if got := c.cursor.Load(); got != before {
		t.Errorf("expected cursor untouched, got %d -> %d", before, got)
	}
}
