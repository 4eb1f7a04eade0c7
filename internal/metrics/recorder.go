// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Catalog metrics
	IncSongPlayed()
	IncCatalogSearch()

	// Playlist management metrics
	IncPlaylistCreated()
	IncPlaylistUpdated()
	IncPlaylistDeleted()

	// Library metrics
	IncSongLiked()
	IncSongUnliked()

	// Video provider metrics
	IncVideoSearch()
	IncVideoSearchError()

	// Auth metrics
	IncUserLogin()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
