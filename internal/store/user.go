package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shinyfy/shinyfy/internal/model"
)

// CreateUser inserts a new user document.
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UserByID returns the user with the given identifier.
func (s *Store) UserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// UserByEmail returns the user with the given email. The match is exact and
// case-sensitive.
func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// UpdateUserIdentity overwrites the identity-provider fields of the user with
// the given email. Library fields are untouched.
func (s *Store) UpdateUserIdentity(ctx context.Context, email, name, picture, googleID string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"name":      name,
			"picture":   picture,
			"google_id": googleID,
		}},
	)
	if err != nil {
		return fmt.Errorf("update user identity: %w", err)
	}
	return nil
}

// AddLikedSong adds songID to the user's liked songs, suppressing duplicates.
func (s *Store) AddLikedSong(ctx context.Context, userID, songID string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$addToSet": bson.M{"liked_songs": songID}},
	)
	if err != nil {
		return fmt.Errorf("add liked song: %w", err)
	}
	return nil
}

// RemoveLikedSong removes songID from the user's liked songs.
func (s *Store) RemoveLikedSong(ctx context.Context, userID, songID string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$pull": bson.M{"liked_songs": songID}},
	)
	if err != nil {
		return fmt.Errorf("remove liked song: %w", err)
	}
	return nil
}

// LinkPlaylist appends playlistID to the user's owned playlists.
func (s *Store) LinkPlaylist(ctx context.Context, userID, playlistID string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$push": bson.M{"playlists": playlistID}},
	)
	if err != nil {
		return fmt.Errorf("link playlist: %w", err)
	}
	return nil
}

// UnlinkPlaylist removes playlistID from the user's owned playlists.
func (s *Store) UnlinkPlaylist(ctx context.Context, userID, playlistID string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$pull": bson.M{"playlists": playlistID}},
	)
	if err != nil {
		return fmt.Errorf("unlink playlist: %w", err)
	}
	return nil
}

// SetRecentlyPlayed replaces the user's recently-played list.
func (s *Store) SetRecentlyPlayed(ctx context.Context, userID string, songIDs []string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"recently_played": songIDs}},
	)
	if err != nil {
		return fmt.Errorf("set recently played: %w", err)
	}
	return nil
}
