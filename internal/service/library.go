package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shinyfy/shinyfy/internal/metrics"
	"github.com/shinyfy/shinyfy/internal/model"
)

// LibraryService serves per-user library state: liked songs, owned playlists
// and the recently-played list.
type LibraryService struct {
	store   Store
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(st Store, recorder metrics.Recorder, logger *slog.Logger) *LibraryService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &LibraryService{store: st, metrics: recorder, logger: logger}
}

// LikedSongs resolves the user's liked song ids to documents. Ids pointing at
// deleted songs are silently dropped.
func (s *LibraryService) LikedSongs(ctx context.Context, user *model.User) ([]*model.Song, error) {
	if len(user.LikedSongs) == 0 {
		return []*model.Song{}, nil
	}
	songs, err := s.store.SongsByIDs(ctx, user.LikedSongs)
	if err != nil {
		return nil, fmt.Errorf("resolve liked songs: %w", err)
	}
	return songs, nil
}

// Like records a liked song. Liking twice keeps a single entry. The song id
// is not checked against the catalog.
func (s *LibraryService) Like(ctx context.Context, userID, songID string) error {
	if err := s.store.AddLikedSong(ctx, userID, songID); err != nil {
		return fmt.Errorf("like song: %w", err)
	}
	s.metrics.IncSongLiked()
	return nil
}

// Unlike removes a liked song. Unliking a song that is not liked is a no-op.
func (s *LibraryService) Unlike(ctx context.Context, userID, songID string) error {
	if err := s.store.RemoveLikedSong(ctx, userID, songID); err != nil {
		return fmt.Errorf("unlike song: %w", err)
	}
	s.metrics.IncSongUnliked()
	return nil
}

// Playlists resolves the user's playlist ids to documents, private ones
// included.
func (s *LibraryService) Playlists(ctx context.Context, user *model.User) ([]*model.Playlist, error) {
	if len(user.Playlists) == 0 {
		return []*model.Playlist{}, nil
	}
	playlists, err := s.store.PlaylistsByIDs(ctx, user.Playlists)
	if err != nil {
		return nil, fmt.Errorf("resolve playlists: %w", err)
	}
	return playlists, nil
}

// RecentlyPlayed resolves the user's recently-played ids to documents,
// preserving most-recent-first order. Ids pointing at deleted songs are
// dropped without disturbing the order of the rest.
func (s *LibraryService) RecentlyPlayed(ctx context.Context, user *model.User) ([]*model.Song, error) {
	if len(user.RecentlyPlayed) == 0 {
		return []*model.Song{}, nil
	}
	songs, err := s.store.SongsByIDs(ctx, user.RecentlyPlayed)
	if err != nil {
		return nil, fmt.Errorf("resolve recently played: %w", err)
	}

	byID := make(map[string]*model.Song, len(songs))
	for _, song := range songs {
		byID[song.SongID] = song
	}
	ordered := make([]*model.Song, 0, len(user.RecentlyPlayed))
	for _, id := range user.RecentlyPlayed {
		if song, ok := byID[id]; ok {
			ordered = append(ordered, song)
		}
	}
	return ordered, nil
}
