package model

// LyricLine is a single timed lyric line for karaoke display.
type LyricLine struct {
	Time int    `bson:"time" json:"time"`
	Text string `bson:"text" json:"text"`
}

// Song represents a catalog track. Songs are immutable except for the play
// counter, which only ever increments.
type Song struct {
	SongID          string      `bson:"song_id" json:"song_id"`
	Title           string      `bson:"title" json:"title"`
	Artist          string      `bson:"artist" json:"artist"`
	Album           string      `bson:"album" json:"album"`
	Duration        string      `bson:"duration" json:"duration"`
	DurationSeconds int         `bson:"duration_seconds" json:"duration_seconds"`
	CoverURL        string      `bson:"cover_url" json:"cover_url"`
	YouTubeID       string      `bson:"youtube_id" json:"youtube_id"`
	Genre           string      `bson:"genre" json:"genre"`
	Region          string      `bson:"region" json:"region"`
	Plays           int64       `bson:"plays" json:"plays"`
	ReleaseYear     int         `bson:"release_year" json:"release_year"`
	Lyrics          []LyricLine `bson:"lyrics" json:"lyrics"`
	Source          string      `bson:"source" json:"source"`
}
