package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shinyfy/shinyfy/internal/model"
)

// CreateSession inserts a session document. Multiple concurrent sessions per
// user are permitted.
func (s *Store) CreateSession(ctx context.Context, session *model.Session) error {
	if _, err := s.sessions.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// SessionByToken returns the session with the given token.
func (s *Store) SessionByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	err := s.sessions.FindOne(ctx, bson.M{"session_token": token}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes the session with the given token. Deleting an absent
// session is not an error.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.sessions.DeleteOne(ctx, bson.M{"session_token": token}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
