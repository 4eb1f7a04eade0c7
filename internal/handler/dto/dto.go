// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/youtube"
)

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// MessageResponse is the generic acknowledgment body for mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// SessionRequest carries the provider session id from the OAuth callback.
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

// SessionResponse is returned after a successful login. The token is also set
// as a cookie; it is echoed in the body for clients that prefer the
// Authorization header.
type SessionResponse struct {
	User         *model.User `json:"user"`
	SessionToken string      `json:"session_token"`
}

// CreatePlaylistRequest represents the request body for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
	IsPublic    *bool  `json:"is_public,omitempty"`
}

// UpdatePlaylistRequest represents the request body for updating a playlist.
// Absent fields are left untouched.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// LyricsResponse wraps a song's timed lyric lines.
type LyricsResponse struct {
	Lyrics []model.LyricLine `json:"lyrics"`
}

// VideosResponse wraps a list of provider videos.
type VideosResponse struct {
	Videos []youtube.Video `json:"videos"`
}
