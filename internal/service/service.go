// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/store"
)

// Service errors.
var (
	ErrNotOwner         = errors.New("not the playlist owner")
	ErrNameRequired     = errors.New("playlist name is required")
	ErrSongNotFound     = fmt.Errorf("song %w", store.ErrNotFound)
	ErrPlaylistNotFound = fmt.Errorf("playlist %w", store.ErrNotFound)
	ErrArtistNotFound   = fmt.Errorf("artist %w", store.ErrNotFound)
)

// Store is the persistence surface the services depend on. *store.Store
// satisfies it.
type Store interface {
	ListSongs(ctx context.Context, filter store.SongFilter) ([]*model.Song, error)
	SongByID(ctx context.Context, songID string) (*model.Song, error)
	SongsByIDs(ctx context.Context, songIDs []string) ([]*model.Song, error)
	SearchSongs(ctx context.Context, q string, limit int64) ([]*model.Song, error)
	IncrementPlays(ctx context.Context, songID string) error

	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	PlaylistByID(ctx context.Context, playlistID string) (*model.Playlist, error)
	ListPublicPlaylists(ctx context.Context, skip, limit int64) ([]*model.Playlist, error)
	PlaylistsByIDs(ctx context.Context, playlistIDs []string) ([]*model.Playlist, error)
	SearchPlaylists(ctx context.Context, q string, limit int64) ([]*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID string, upd store.PlaylistUpdate) error
	DeletePlaylist(ctx context.Context, playlistID string) error
	AddPlaylistSong(ctx context.Context, playlistID, songID string) error
	RemovePlaylistSong(ctx context.Context, playlistID, songID string) error

	UserByID(ctx context.Context, userID string) (*model.User, error)
	AddLikedSong(ctx context.Context, userID, songID string) error
	RemoveLikedSong(ctx context.Context, userID, songID string) error
	LinkPlaylist(ctx context.Context, userID, playlistID string) error
	UnlinkPlaylist(ctx context.Context, userID, playlistID string) error
	SetRecentlyPlayed(ctx context.Context, userID string, songIDs []string) error

	ListArtists(ctx context.Context, skip, limit int64) ([]*model.Artist, error)
	ArtistByID(ctx context.Context, artistID string) (*model.Artist, error)
	SearchArtists(ctx context.Context, q string, limit int64) ([]*model.Artist, error)
}
