// Package auth implements delegated session authentication: external session
// identifiers are exchanged with the identity provider for a durable token,
// which is stored server-side and resolved back to a user on every request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/store"
)

// ErrUnauthenticated is returned for any authentication failure: a missing,
// unknown or expired token, or an identity-provider rejection. Callers get a
// single classification regardless of cause; the cause is only logged.
var ErrUnauthenticated = errors.New("unauthenticated")

// Store is the persistence surface the authenticator needs.
type Store interface {
	CreateUser(ctx context.Context, user *model.User) error
	UserByID(ctx context.Context, userID string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserIdentity(ctx context.Context, email, name, picture, googleID string) error
	CreateSession(ctx context.Context, session *model.Session) error
	SessionByToken(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// Authenticator establishes and validates the mapping between client-held
// session tokens and user identities.
type Authenticator struct {
	store    Store
	identity *IdentityClient
	ttl      time.Duration
	logger   *slog.Logger
}

// NewAuthenticator creates an Authenticator. A non-positive ttl falls back to
// the default seven-day session lifetime.
func NewAuthenticator(st Store, identity *IdentityClient, ttl time.Duration, logger *slog.Logger) *Authenticator {
	if ttl <= 0 {
		ttl = model.SessionTTL
	}
	return &Authenticator{
		store:    st,
		identity: identity,
		ttl:      ttl,
		logger:   logger,
	}
}

// ExchangeSession forwards the external session identifier to the identity
// provider and returns the identity payload.
func (a *Authenticator) ExchangeSession(ctx context.Context, sessionID string) (*IdentityPayload, error) {
	return a.identity.SessionData(ctx, sessionID)
}

// UpsertUser creates or updates the user for an identity payload, keyed by
// email. An existing user gets its identity fields overwritten while library
// fields are preserved; a new user starts with an empty library.
func (a *Authenticator) UpsertUser(ctx context.Context, payload *IdentityPayload) (string, error) {
	existing, err := a.store.UserByEmail(ctx, payload.Email)
	switch {
	case err == nil:
		if err := a.store.UpdateUserIdentity(ctx, payload.Email, payload.Name, payload.Picture, payload.ID); err != nil {
			return "", fmt.Errorf("update user: %w", err)
		}
		return existing.UserID, nil

	case errors.Is(err, store.ErrNotFound):
		user := &model.User{
			UserID:         model.NewUserID(),
			Email:          payload.Email,
			Name:           payload.Name,
			Picture:        payload.Picture,
			GoogleID:       payload.ID,
			CreatedAt:      time.Now().UTC(),
			LikedSongs:     []string{},
			Playlists:      []string{},
			RecentlyPlayed: []string{},
			Preferences:    model.DefaultPreferences(),
		}
		if err := a.store.CreateUser(ctx, user); err != nil {
			return "", fmt.Errorf("create user: %w", err)
		}
		return user.UserID, nil

	default:
		return "", fmt.Errorf("lookup user: %w", err)
	}
}

// CreateSession persists a session carrying the provider-issued token with
// expiry now + TTL.
func (a *Authenticator) CreateSession(ctx context.Context, userID, token string) error {
	now := time.Now().UTC()
	session := &model.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: model.FlexTime{Time: now.Add(a.ttl)},
		CreatedAt: now,
	}
	if err := a.store.CreateSession(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Login runs the full exchange: identity lookup, user upsert, session create.
// It returns the stored user record and the session token to hand the client.
func (a *Authenticator) Login(ctx context.Context, sessionID string) (*model.User, string, error) {
	payload, err := a.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	userID, err := a.UpsertUser(ctx, payload)
	if err != nil {
		return nil, "", err
	}

	if err := a.CreateSession(ctx, userID, payload.SessionToken); err != nil {
		return nil, "", err
	}

	user, err := a.store.UserByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("load user after login: %w", err)
	}

	a.logger.Info("user logged in", "user_id", userID, "email", payload.Email)
	return user, payload.SessionToken, nil
}

// ResolveSession maps a session token back to its user. An empty, unknown or
// expired token yields ErrUnauthenticated. A live session whose user row is
// missing yields store.ErrNotFound.
func (a *Authenticator) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		a.logger.Warn("session resolve failed", "reason", "missing_token")
		return nil, fmt.Errorf("%w: no session token", ErrUnauthenticated)
	}

	session, err := a.store.SessionByToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		a.logger.Warn("session resolve failed", "reason", "unknown_token")
		return nil, fmt.Errorf("%w: invalid session", ErrUnauthenticated)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		a.logger.Warn("session resolve failed", "reason", "expired", "user_id", session.UserID)
		return nil, fmt.Errorf("%w: session expired", ErrUnauthenticated)
	}

	user, err := a.store.UserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrNotFound) {
		a.logger.Warn("orphaned session", "user_id", session.UserID)
		return nil, fmt.Errorf("user for session: %w", store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	return user, nil
}

// EndSession deletes the session unconditionally; an absent token is not an
// error.
func (a *Authenticator) EndSession(ctx context.Context, token string) error {
	return a.store.DeleteSession(ctx, token)
}
