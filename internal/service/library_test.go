package service

import (
	"context"
	"slices"
	"testing"

	"github.com/shinyfy/shinyfy/internal/metrics"
	"github.com/shinyfy/shinyfy/internal/testutil"
)

func TestLibrary_LikeDedupes(t *testing.T) {
	ms := testutil.NewMemStore()
	rec := metrics.NewInMemory()
	svc := NewLibraryService(ms, rec, testLogger())
	seedUser(t, ms, "user_aaaaaaaaaaaa")
	seedSong(t, ms, "song_aaaaaaaaaaaa", "Track")

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := svc.Like(ctx, "user_aaaaaaaaaaaa", "song_aaaaaaaaaaaa"); err != nil {
			t.Fatalf("like: %v", err)
		}
	}

	user, err := ms.UserByID(ctx, "user_aaaaaaaaaaaa")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	if !slices.Equal(user.LikedSongs, []string{"song_aaaaaaaaaaaa"}) {
		t.Errorf("expected single liked entry, got %v", user.LikedSongs)
	}
	if got := rec.Snapshot().SongsLiked; got != 2 {
		t.Errorf("expected 2 recorded like calls, got %d", got)
	}
}

func TestLibrary_UnlikeIsIdempotent(t *testing.T) {
	ms := testutil.NewMemStore()
	svc := NewLibraryService(ms, nil, testLogger())
	seedUser(t, ms, "user_aaaaaaaaaaaa")

	ctx := context.Background()
	if err := svc.Like(ctx, "user_aaaaaaaaaaaa", "song_aaaaaaaaaaaa"); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := svc.Unlike(ctx, "user_aaaaaaaaaaaa", "song_aaaaaaaaaaaa"); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if err := svc.Unlike(ctx, "user_aaaaaaaaaaaa", "song_aaaaaaaaaaaa"); err != nil {
		t.Fatalf("second unlike: %v", err)
	}

	user, err := ms.UserByID(ctx, "user_aaaaaaaaaaaa")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	if len(user.LikedSongs) != 0 {
		t.Errorf("expected no liked songs, got %v", user.LikedSongs)
	}
}

func TestLibrary_LikedSongsDropsDeleted(t *testing.T) {
	ms := testutil.NewMemStore()
	svc := NewLibraryService(ms, nil, testLogger())
	user := seedUser(t, ms, "user_aaaaaaaaaaaa")
	seedSong(t, ms, "song_aaaaaaaaaaaa", "Kept")

	ctx := context.Background()
	if err := svc.Like(ctx, user.UserID, "song_aaaaaaaaaaaa"); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := svc.Like(ctx, user.UserID, "song_gone00000000"); err != nil {
		t.Fatalf("like: %v", err)
	}

	user, err := ms.UserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	songs, err := svc.LikedSongs(ctx, user)
	if err != nil {
		t.Fatalf("liked songs: %v", err)
	}
	if len(songs) != 1 || songs[0].Title != "Kept" {
		t.Errorf("expected only the surviving song, got %+v", songs)
	}
}

func TestLibrary_PlaylistsIncludePrivate(t *testing.T) {
	ms := testutil.NewMemStore()
	svc := NewLibraryService(ms, nil, testLogger())
	user := seedUser(t, ms, "user_aaaaaaaaaaaa")

	seedPlaylist(t, ms, "playlist_aaaaaaaaaaaa", user.UserID, true)
	seedPlaylist(t, ms, "playlist_bbbbbbbbbbbb", user.UserID, false)

	ctx := context.Background()
	if err := ms.LinkPlaylist(ctx, user.UserID, "playlist_aaaaaaaaaaaa"); err != nil {
		t.Fatalf("link: %v", err)
	}
	if err := ms.LinkPlaylist(ctx, user.UserID, "playlist_bbbbbbbbbbbb"); err != nil {
		t.Fatalf("link: %v", err)
	}

	user, err := ms.UserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	playlists, err := svc.Playlists(ctx, user)
	if err != nil {
		t.Fatalf("playlists: %v", err)
	}
	if len(playlists) != 2 {
		t.Errorf("expected both playlists, private included, got %d", len(playlists))
	}
}

func TestLibrary_RecentlyPlayedPreservesOrder(t *testing.T) {
	ms := testutil.NewMemStore()
	svc := NewLibraryService(ms, nil, testLogger())
	user := seedUser(t, ms, "user_aaaaaaaaaaaa")

	// Insertion order differs from play order on purpose.
	seedSong(t, ms, "song_aaaaaaaaaaaa", "First Played")
	seedSong(t, ms, "song_bbbbbbbbbbbb", "Last Played")
	seedSong(t, ms, "song_cccccccccccc", "Middle Played")

	ctx := context.Background()
	recent := []string{"song_bbbbbbbbbbbb", "song_cccccccccccc", "song_gone00000000", "song_aaaaaaaaaaaa"}
	if err := ms.SetRecentlyPlayed(ctx, user.UserID, recent); err != nil {
		t.Fatalf("set: %v", err)
	}

	user, err := ms.UserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	songs, err := svc.RecentlyPlayed(ctx, user)
	if err != nil {
		t.Fatalf("recently played: %v", err)
	}

	want := []string{"song_bbbbbbbbbbbb", "song_cccccccccccc", "song_aaaaaaaaaaaa"}
	if len(songs) != len(want) {
		t.Fatalf("expected %d songs, got %d", len(want), len(songs))
	}
	for i, id := range want {
		if songs[i].SongID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, songs[i].SongID)
		}
	}
}

func TestLibrary_EmptyStateReturnsEmptySlices(t *testing.T) {
	ms := testutil.NewMemStore()
	svc := NewLibraryService(ms, nil, testLogger())
	user := seedUser(t, ms, "user_aaaaaaaaaaaa")

	ctx := context.Background()
	songs, err := svc.LikedSongs(ctx, user)
	if err != nil || songs == nil || len(songs) != 0 {
		t.Errorf("liked songs: expected empty slice, got %v (%v)", songs, err)
	}
	playlists, err := svc.Playlists(ctx, user)
	if err != nil || playlists == nil || len(playlists) != 0 {
		t.Errorf("playlists: expected empty slice, got %v (%v)", playlists, err)
	}
	recent, err := svc.RecentlyPlayed(ctx, user)
	if err != nil || recent == nil || len(recent) != 0 {
		t.Errorf("recently played: expected empty slice, got %v (%v)", recent, err)
	}
}
