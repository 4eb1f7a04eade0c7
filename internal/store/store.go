// Package store provides the MongoDB access layer.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// Collection names.
const (
	usersCollection     = "users"
	sessionsCollection  = "user_sessions"
	songsCollection     = "songs"
	playlistsCollection = "playlists"
	artistsCollection   = "artists"
)

// Store provides document database access methods.
type Store struct {
	client    *mongo.Client
	users     *mongo.Collection
	sessions  *mongo.Collection
	songs     *mongo.Collection
	playlists *mongo.Collection
	artists   *mongo.Collection
}

// Connect establishes a MongoDB connection and verifies it with a ping,
// retrying with exponential backoff while the database comes up.
func Connect(ctx context.Context, mongoURL, dbName string) (*Store, error) {
	opts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	if err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := client.Ping(ctx, nil); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		client:    client,
		users:     db.Collection(usersCollection),
		sessions:  db.Collection(sessionsCollection),
		songs:     db.Collection(songsCollection),
		playlists: db.Collection(playlistsCollection),
		artists:   db.Collection(artistsCollection),
	}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects from the database.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
