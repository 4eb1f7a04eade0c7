package model

// Artist represents a catalog artist. Artists are read-only through the API;
// rows are created by the seeder.
type Artist struct {
	ArtistID  string   `bson:"artist_id" json:"artist_id"`
	Name      string   `bson:"name" json:"name"`
	ImageURL  string   `bson:"image_url" json:"image_url"`
	Followers int64    `bson:"followers" json:"followers"`
	Verified  bool     `bson:"verified" json:"verified"`
	TopSongs  []string `bson:"top_songs" json:"top_songs"`
	Bio       string   `bson:"bio" json:"bio"`
	Genres    []string `bson:"genres" json:"genres"`
}
