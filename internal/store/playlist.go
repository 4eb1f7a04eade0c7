package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shinyfy/shinyfy/internal/model"
)

// PlaylistUpdate holds the mutable playlist metadata fields. Nil fields are
// left unchanged.
type PlaylistUpdate struct {
	Name        *string
	Description *string
	CoverURL    *string
	IsPublic    *bool
}

// CreatePlaylist inserts a playlist document.
func (s *Store) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if _, err := s.playlists.InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("insert playlist: %w", err)
	}
	return nil
}

// PlaylistByID returns the playlist with the given identifier.
func (s *Store) PlaylistByID(ctx context.Context, playlistID string) (*model.Playlist, error) {
	var playlist model.Playlist
	err := s.playlists.FindOne(ctx, bson.M{"playlist_id": playlistID}).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find playlist: %w", err)
	}
	return &playlist, nil
}

// ListPublicPlaylists returns public playlists with skip/limit pagination.
func (s *Store) ListPublicPlaylists(ctx context.Context, skip, limit int64) ([]*model.Playlist, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := s.playlists.Find(ctx, bson.M{"is_public": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer cur.Close(ctx)

	playlists := []*model.Playlist{}
	if err := cur.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("decode playlists: %w", err)
	}
	return playlists, nil
}

// PlaylistsByIDs returns the playlists whose identifiers are in playlistIDs.
func (s *Store) PlaylistsByIDs(ctx context.Context, playlistIDs []string) ([]*model.Playlist, error) {
	if len(playlistIDs) == 0 {
		return []*model.Playlist{}, nil
	}

	cur, err := s.playlists.Find(ctx, bson.M{"playlist_id": bson.M{"$in": playlistIDs}})
	if err != nil {
		return nil, fmt.Errorf("find playlists by ids: %w", err)
	}
	defer cur.Close(ctx)

	playlists := []*model.Playlist{}
	if err := cur.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("decode playlists: %w", err)
	}
	return playlists, nil
}

// SearchPlaylists returns up to limit playlists whose name or description
// matches the case-insensitive substring query.
func (s *Store) SearchPlaylists(ctx context.Context, q string, limit int64) ([]*model.Playlist, error) {
	pattern := bson.M{"$regex": q, "$options": "i"}
	query := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}

	cur, err := s.playlists.Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("search playlists: %w", err)
	}
	defer cur.Close(ctx)

	playlists := []*model.Playlist{}
	if err := cur.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("decode playlists: %w", err)
	}
	return playlists, nil
}

// UpdatePlaylist applies the non-nil fields of upd and bumps updated_at.
func (s *Store) UpdatePlaylist(ctx context.Context, playlistID string, upd PlaylistUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.CoverURL != nil {
		set["cover_url"] = *upd.CoverURL
	}
	if upd.IsPublic != nil {
		set["is_public"] = *upd.IsPublic
	}

	res, err := s.playlists.UpdateOne(ctx, bson.M{"playlist_id": playlistID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlaylist removes the playlist document.
func (s *Store) DeletePlaylist(ctx context.Context, playlistID string) error {
	if _, err := s.playlists.DeleteOne(ctx, bson.M{"playlist_id": playlistID}); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	return nil
}

// AddPlaylistSong adds songID to the playlist's song set, suppressing
// duplicates while preserving insertion order.
func (s *Store) AddPlaylistSong(ctx context.Context, playlistID, songID string) error {
	_, err := s.playlists.UpdateOne(ctx,
		bson.M{"playlist_id": playlistID},
		bson.M{"$addToSet": bson.M{"songs": songID}},
	)
	if err != nil {
		return fmt.Errorf("add playlist song: %w", err)
	}
	return nil
}

// RemovePlaylistSong removes songID from the playlist's song set.
func (s *Store) RemovePlaylistSong(ctx context.Context, playlistID, songID string) error {
	_, err := s.playlists.UpdateOne(ctx,
		bson.M{"playlist_id": playlistID},
		bson.M{"$pull": bson.M{"songs": songID}},
	)
	if err != nil {
		return fmt.Errorf("remove playlist song: %w", err)
	}
	return nil
}
