package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shinyfy/shinyfy/internal/metrics"
	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/store"
)

// DefaultPlaylistCover is used when a create request carries no cover art.
const DefaultPlaylistCover = "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=300&h=300&fit=crop"

// PlaylistDetail is a playlist with its song ids resolved to documents.
type PlaylistDetail struct {
	*model.Playlist
	SongDetails []*model.Song `json:"song_details"`
}

// CreatePlaylistInput defines input for creating a playlist.
type CreatePlaylistInput struct {
	Name        string
	Description string
	CoverURL    string
	IsPublic    bool
}

// PlaylistService handles playlist business logic. All mutations are gated on
// ownership.
type PlaylistService struct {
	store   Store
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(st Store, recorder metrics.Recorder, logger *slog.Logger) *PlaylistService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &PlaylistService{store: st, metrics: recorder, logger: logger}
}

// ListPublic returns a page of public playlists.
func (s *PlaylistService) ListPublic(ctx context.Context, skip, limit int64) ([]*model.Playlist, error) {
	return s.store.ListPublicPlaylists(ctx, skip, limit)
}

// Get returns a playlist with resolved song documents. Visibility is not
// checked; any caller who knows the id can read a private playlist.
func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*PlaylistDetail, error) {
	playlist, err := s.store.PlaylistByID(ctx, playlistID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}

	songs := []*model.Song{}
	if len(playlist.Songs) > 0 {
		songs, err = s.store.SongsByIDs(ctx, playlist.Songs)
		if err != nil {
			return nil, fmt.Errorf("resolve playlist songs: %w", err)
		}
	}
	return &PlaylistDetail{Playlist: playlist, SongDetails: songs}, nil
}

// Create inserts a new playlist owned by ownerID, then links it into the
// owner's library. The playlist document is written first so a crash between
// the two writes leaves an unlinked playlist rather than a dangling id.
func (s *PlaylistService) Create(ctx context.Context, ownerID string, input CreatePlaylistInput) (*model.Playlist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	cover := input.CoverURL
	if cover == "" {
		cover = DefaultPlaylistCover
	}

	now := time.Now().UTC()
	playlist := &model.Playlist{
		PlaylistID:  model.NewPlaylistID(),
		Name:        name,
		Description: input.Description,
		CoverURL:    cover,
		Songs:       []string{},
		Owner:       ownerID,
		Followers:   0,
		Region:      "global",
		IsPublic:    input.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreatePlaylist(ctx, playlist); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	if err := s.store.LinkPlaylist(ctx, ownerID, playlist.PlaylistID); err != nil {
		return nil, fmt.Errorf("link playlist to owner: %w", err)
	}

	s.metrics.IncPlaylistCreated()
	s.logger.Info("playlist created", "playlist_id", playlist.PlaylistID, "owner", ownerID)
	return playlist, nil
}

// Update applies the provided fields to an owned playlist.
func (s *PlaylistService) Update(ctx context.Context, userID, playlistID string, upd store.PlaylistUpdate) error {
	if err := s.requireOwner(ctx, userID, playlistID); err != nil {
		return err
	}
	if err := s.store.UpdatePlaylist(ctx, playlistID, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	s.metrics.IncPlaylistUpdated()
	return nil
}

// Delete removes an owned playlist. The library link is removed first so the
// user never references a deleted playlist.
func (s *PlaylistService) Delete(ctx context.Context, userID, playlistID string) error {
	if err := s.requireOwner(ctx, userID, playlistID); err != nil {
		return err
	}
	if err := s.store.UnlinkPlaylist(ctx, userID, playlistID); err != nil {
		return fmt.Errorf("unlink playlist: %w", err)
	}
	if err := s.store.DeletePlaylist(ctx, playlistID); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	s.metrics.IncPlaylistDeleted()
	s.logger.Info("playlist deleted", "playlist_id", playlistID, "owner", userID)
	return nil
}

// AddSong adds an existing catalog song to an owned playlist. Adding a song
// already present is a no-op.
func (s *PlaylistService) AddSong(ctx context.Context, userID, playlistID, songID string) error {
	if err := s.requireOwner(ctx, userID, playlistID); err != nil {
		return err
	}
	if _, err := s.store.SongByID(ctx, songID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSongNotFound
		}
		return err
	}
	return s.store.AddPlaylistSong(ctx, playlistID, songID)
}

// RemoveSong removes a song from an owned playlist.
func (s *PlaylistService) RemoveSong(ctx context.Context, userID, playlistID, songID string) error {
	if err := s.requireOwner(ctx, userID, playlistID); err != nil {
		return err
	}
	return s.store.RemovePlaylistSong(ctx, playlistID, songID)
}

func (s *PlaylistService) requireOwner(ctx context.Context, userID, playlistID string) error {
	playlist, err := s.store.PlaylistByID(ctx, playlistID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPlaylistNotFound
	}
	if err != nil {
		return err
	}
	if !playlist.OwnedBy(userID) {
		return ErrNotOwner
	}
	return nil
}
