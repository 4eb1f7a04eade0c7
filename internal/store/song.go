package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shinyfy/shinyfy/internal/model"
)

// SongFilter narrows a song listing.
type SongFilter struct {
	Region string
	Genre  string
	Skip   int64
	Limit  int64
}

// InsertSong inserts a song document. Used by the seeder only.
func (s *Store) InsertSong(ctx context.Context, song *model.Song) error {
	if _, err := s.songs.InsertOne(ctx, song); err != nil {
		return fmt.Errorf("insert song: %w", err)
	}
	return nil
}

// CountSongs returns the number of song documents.
func (s *Store) CountSongs(ctx context.Context) (int64, error) {
	n, err := s.songs.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count songs: %w", err)
	}
	return n, nil
}

// ListSongs returns songs matching the filter. A region of "global" (or empty)
// matches all regions.
func (s *Store) ListSongs(ctx context.Context, filter SongFilter) ([]*model.Song, error) {
	query := bson.M{}
	if filter.Region != "" && filter.Region != "global" {
		query["region"] = filter.Region
	}
	if filter.Genre != "" {
		query["genre"] = filter.Genre
	}

	opts := options.Find().SetSkip(filter.Skip).SetLimit(filter.Limit)
	cur, err := s.songs.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer cur.Close(ctx)

	songs := []*model.Song{}
	if err := cur.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("decode songs: %w", err)
	}
	return songs, nil
}

// SongByID returns the song with the given identifier.
func (s *Store) SongByID(ctx context.Context, songID string) (*model.Song, error) {
	var song model.Song
	err := s.songs.FindOne(ctx, bson.M{"song_id": songID}).Decode(&song)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find song: %w", err)
	}
	return &song, nil
}

// SongsByIDs returns the songs whose identifiers are in songIDs. Missing
// identifiers are silently skipped; order is not guaranteed.
func (s *Store) SongsByIDs(ctx context.Context, songIDs []string) ([]*model.Song, error) {
	if len(songIDs) == 0 {
		return []*model.Song{}, nil
	}

	cur, err := s.songs.Find(ctx, bson.M{"song_id": bson.M{"$in": songIDs}})
	if err != nil {
		return nil, fmt.Errorf("find songs by ids: %w", err)
	}
	defer cur.Close(ctx)

	songs := []*model.Song{}
	if err := cur.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("decode songs: %w", err)
	}
	return songs, nil
}

// SearchSongs returns up to limit songs whose title, artist or album matches
// the case-insensitive substring query.
func (s *Store) SearchSongs(ctx context.Context, q string, limit int64) ([]*model.Song, error) {
	pattern := bson.M{"$regex": q, "$options": "i"}
	query := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"artist": pattern},
		bson.M{"album": pattern},
	}}

	cur, err := s.songs.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("search songs: %w", err)
	}
	defer cur.Close(ctx)

	songs := []*model.Song{}
	if err := cur.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("decode songs: %w", err)
	}
	return songs, nil
}

// IncrementPlays adds one to the song's play counter. Incrementing an unknown
// song is a no-op, matching the tracking endpoint's fire-and-forget contract.
func (s *Store) IncrementPlays(ctx context.Context, songID string) error {
	_, err := s.songs.UpdateOne(ctx,
		bson.M{"song_id": songID},
		bson.M{"$inc": bson.M{"plays": 1}},
	)
	if err != nil {
		return fmt.Errorf("increment plays: %w", err)
	}
	return nil
}
