package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedUser(t *testing.T, ms *testutil.MemStore, userID string) *model.User {
	t.Helper()
	user := &model.User{
		UserID:         userID,
		Email:          userID + "@example.com",
		Name:           "Test User",
		CreatedAt:      time.Now().UTC(),
		LikedSongs:     []string{},
		Playlists:      []string{},
		RecentlyPlayed: []string{},
		Preferences:    model.DefaultPreferences(),
	}
	if err := ms.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedSong(t *testing.T, ms *testutil.MemStore, songID, title string) *model.Song {
	t.Helper()
	song := &model.Song{
		SongID: songID,
		Title:  title,
		Artist: "Some Artist",
		Album:  "Some Album",
		Region: "global",
		Genre:  "pop",
	}
	if err := ms.InsertSong(context.Background(), song); err != nil {
		t.Fatalf("seed song: %v", err)
	}
	return song
}

func seedPlaylist(t *testing.T, ms *testutil.MemStore, playlistID, owner string, public bool) *model.Playlist {
	t.Helper()
	now := time.Now().UTC()
	playlist := &model.Playlist{
		PlaylistID: playlistID,
		Name:       "Seeded Playlist",
		Songs:      []string{},
		Owner:      owner,
		Region:     "global",
		IsPublic:   public,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := ms.CreatePlaylist(context.Background(), playlist); err != nil {
		t.Fatalf("seed playlist: %v", err)
	}
	return playlist
}

func seedArtist(t *testing.T, ms *testutil.MemStore, artistID, name string, topSongs []string) *model.Artist {
	t.Helper()
	artist := &model.Artist{
		ArtistID: artistID,
		Name:     name,
		TopSongs: topSongs,
	}
	if err := ms.InsertArtist(context.Background(), artist); err != nil {
		t.Fatalf("seed artist: %v", err)
	}
	return artist
}
