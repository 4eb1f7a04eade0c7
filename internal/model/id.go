package model

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// idSuffixLen is the number of lowercase hex characters after the prefix.
const idSuffixLen = 12

// NewID generates an entity identifier of the form "<prefix>_<12 hex chars>".
// Uniqueness relies on the randomness of the suffix, not on a sequence.
func NewID(prefix string) string {
	raw := uuid.New()
	return prefix + "_" + hex.EncodeToString(raw[:])[:idSuffixLen]
}

// NewUserID generates a fresh user identifier.
func NewUserID() string { return NewID("user") }

// NewSongID generates a fresh song identifier.
func NewSongID() string { return NewID("song") }

// NewPlaylistID generates a fresh playlist identifier.
func NewPlaylistID() string { return NewID("playlist") }

// NewArtistID generates a fresh artist identifier.
func NewArtistID() string { return NewID("artist") }
