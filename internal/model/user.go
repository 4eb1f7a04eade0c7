// Package model defines domain entities for the application.
package model

import "time"

// RecentlyPlayedCap is the maximum number of entries kept in a user's
// recently-played list.
const RecentlyPlayedCap = 20

// Preferences holds per-user catalog preferences.
type Preferences struct {
	Region         string   `bson:"region" json:"region"`
	FavoriteGenres []string `bson:"favorite_genres" json:"favorite_genres"`
}

// DefaultPreferences returns the preferences assigned to a new user.
func DefaultPreferences() Preferences {
	return Preferences{Region: "global", FavoriteGenres: []string{}}
}

// User represents a registered listener. Users are created and updated by the
// session authenticator on login; library operations mutate the list fields.
// Users are never deleted.
type User struct {
	UserID         string      `bson:"user_id" json:"user_id"`
	Email          string      `bson:"email" json:"email"`
	Name           string      `bson:"name" json:"name"`
	Picture        string      `bson:"picture" json:"picture,omitempty"`
	GoogleID       string      `bson:"google_id" json:"google_id,omitempty"`
	CreatedAt      time.Time   `bson:"created_at" json:"created_at"`
	LikedSongs     []string    `bson:"liked_songs" json:"liked_songs"`
	Playlists      []string    `bson:"playlists" json:"playlists"`
	RecentlyPlayed []string    `bson:"recently_played" json:"recently_played"`
	Preferences    Preferences `bson:"preferences" json:"preferences"`
}

// RecentlyPlayedWith returns the recently-played list after recording songID:
// the song moves to the front, any older occurrence is dropped, and the list
// is capped at RecentlyPlayedCap entries.
func (u *User) RecentlyPlayedWith(songID string) []string {
	out := make([]string, 0, len(u.RecentlyPlayed)+1)
	out = append(out, songID)
	for _, id := range u.RecentlyPlayed {
		if id == songID {
			continue
		}
		out = append(out, id)
		if len(out) == RecentlyPlayedCap {
			break
		}
	}
	return out
}
