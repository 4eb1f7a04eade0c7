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

// InsertArtist inserts an artist document. Used by the seeder only.
func (s *Store) InsertArtist(ctx context.Context, artist *model.Artist) error {
	if _, err := s.artists.InsertOne(ctx, artist); err != nil {
		return fmt.Errorf("insert artist: %w", err)
	}
	return nil
}

// ListArtists returns artists with skip/limit pagination.
func (s *Store) ListArtists(ctx context.Context, skip, limit int64) ([]*model.Artist, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := s.artists.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer cur.Close(ctx)

	artists := []*model.Artist{}
	if err := cur.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("decode artists: %w", err)
	}
	return artists, nil
}

// ArtistByID returns the artist with the given identifier.
func (s *Store) ArtistByID(ctx context.Context, artistID string) (*model.Artist, error) {
	var artist model.Artist
	err := s.artists.FindOne(ctx, bson.M{"artist_id": artistID}).Decode(&artist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find artist: %w", err)
	}
	return &artist, nil
}

// SearchArtists returns up to limit artists whose name matches the
// case-insensitive substring query.
func (s *Store) SearchArtists(ctx context.Context, q string, limit int64) ([]*model.Artist, error) {
	query := bson.M{"name": bson.M{"$regex": q, "$options": "i"}}

	cur, err := s.artists.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer cur.Close(ctx)

	artists := []*model.Artist{}
	if err := cur.All(ctx, &artists); err != nil {
		return nil, fmt.Errorf("decode artists: %w", err)
	}
	return artists, nil
}
