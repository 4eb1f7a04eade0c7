package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/shinyfy/shinyfy/internal/metrics"
	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/store"
)

// Search result limits mirror the catalog's weighting: songs first, then a
// handful of playlists and artists.
const (
	searchSongLimit     = 10
	searchPlaylistLimit = 5
	searchArtistLimit   = 5
)

// SearchResult groups the three collection searches for one query.
type SearchResult struct {
	Songs     []*model.Song     `json:"songs"`
	Playlists []*model.Playlist `json:"playlists"`
	Artists   []*model.Artist   `json:"artists"`
}

// CatalogService serves songs and artists.
type CatalogService struct {
	store   Store
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(st Store, recorder metrics.Recorder, logger *slog.Logger) *CatalogService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CatalogService{store: st, metrics: recorder, logger: logger}
}

// ListSongs returns a catalog page.
func (s *CatalogService) ListSongs(ctx context.Context, filter store.SongFilter) ([]*model.Song, error) {
	return s.store.ListSongs(ctx, filter)
}

// Song returns one song by id.
func (s *CatalogService) Song(ctx context.Context, songID string) (*model.Song, error) {
	song, err := s.store.SongByID(ctx, songID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSongNotFound
	}
	return song, err
}

// Search runs a case-insensitive substring search across songs, playlists and
// artists concurrently and merges the three result sets.
func (s *CatalogService) Search(ctx context.Context, q string) (*SearchResult, error) {
	s.metrics.IncCatalogSearch()

	var result SearchResult
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		songs, err := s.store.SearchSongs(ctx, q, searchSongLimit)
		if err != nil {
			return fmt.Errorf("search songs: %w", err)
		}
		result.Songs = songs
		return nil
	})
	g.Go(func() error {
		playlists, err := s.store.SearchPlaylists(ctx, q, searchPlaylistLimit)
		if err != nil {
			return fmt.Errorf("search playlists: %w", err)
		}
		result.Playlists = playlists
		return nil
	})
	g.Go(func() error {
		artists, err := s.store.SearchArtists(ctx, q, searchArtistLimit)
		if err != nil {
			return fmt.Errorf("search artists: %w", err)
		}
		result.Artists = artists
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if result.Songs == nil {
		result.Songs = []*model.Song{}
	}
	if result.Playlists == nil {
		result.Playlists = []*model.Playlist{}
	}
	if result.Artists == nil {
		result.Artists = []*model.Artist{}
	}
	return &result, nil
}

// TrackPlay increments a song's play counter and, when user is non-nil,
// rewrites the user's recently-played list. The increment is a no-op for
// unknown songs; a failed recently-played rewrite does not fail the call.
func (s *CatalogService) TrackPlay(ctx context.Context, songID string, user *model.User) error {
	if err := s.store.IncrementPlays(ctx, songID); err != nil {
		return fmt.Errorf("increment plays: %w", err)
	}
	s.metrics.IncSongPlayed()

	if user == nil {
		return nil
	}
	recent := user.RecentlyPlayedWith(songID)
	if err := s.store.SetRecentlyPlayed(ctx, user.UserID, recent); err != nil {
		s.logger.Warn("recently played rewrite failed", "user_id", user.UserID, "song_id", songID, "error", err)
	}
	return nil
}

// Lyrics returns a song's timed lyric lines, empty when the song has none.
func (s *CatalogService) Lyrics(ctx context.Context, songID string) ([]model.LyricLine, error) {
	song, err := s.store.SongByID(ctx, songID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSongNotFound
	}
	if err != nil {
		return nil, err
	}
	if song.Lyrics == nil {
		return []model.LyricLine{}, nil
	}
	return song.Lyrics, nil
}

// ListArtists returns an artist page.
func (s *CatalogService) ListArtists(ctx context.Context, skip, limit int64) ([]*model.Artist, error) {
	return s.store.ListArtists(ctx, skip, limit)
}

// Artist returns one artist by id.
func (s *CatalogService) Artist(ctx context.Context, artistID string) (*model.Artist, error) {
	artist, err := s.store.ArtistByID(ctx, artistID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrArtistNotFound
	}
	return artist, err
}

// ArtistTopSongs resolves an artist's top_songs ids to song documents.
func (s *CatalogService) ArtistTopSongs(ctx context.Context, artistID string) ([]*model.Song, error) {
	artist, err := s.Artist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if len(artist.TopSongs) == 0 {
		return []*model.Song{}, nil
	}
	songs, err := s.store.SongsByIDs(ctx, artist.TopSongs)
	if err != nil {
		return nil, fmt.Errorf("resolve top songs: %w", err)
	}
	return songs, nil
}
