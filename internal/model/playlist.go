package model

import "time"

// Playlist represents a user-owned, ordered set of songs. The owner field is
// fixed at creation; only the owner may mutate membership or metadata.
type Playlist struct {
	PlaylistID  string    `bson:"playlist_id" json:"playlist_id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	CoverURL    string    `bson:"cover_url" json:"cover_url"`
	Songs       []string  `bson:"songs" json:"songs"`
	Owner       string    `bson:"owner" json:"owner"`
	Followers   int64     `bson:"followers" json:"followers"`
	Region      string    `bson:"region" json:"region"`
	IsPublic    bool      `bson:"is_public" json:"is_public"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// OwnedBy reports whether userID owns the playlist.
func (p *Playlist) OwnedBy(userID string) bool {
	return p.Owner == userID
}
