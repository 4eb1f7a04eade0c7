package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	SongsPlayed       uint64
	CatalogSearches   uint64
	PlaylistsCreated  uint64
	PlaylistsUpdated  uint64
	PlaylistsDeleted  uint64
	SongsLiked        uint64
	SongsUnliked      uint64
	VideoSearches     uint64
	VideoSearchErrors uint64
	UserLogins        uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	songsPlayed       uint64
	catalogSearches   uint64
	playlistsCreated  uint64
	playlistsUpdated  uint64
	playlistsDeleted  uint64
	songsLiked        uint64
	songsUnliked      uint64
	videoSearches     uint64
	videoSearchErrors uint64
	userLogins        uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		SongsPlayed:       atomic.LoadUint64(&m.songsPlayed),
		CatalogSearches:   atomic.LoadUint64(&m.catalogSearches),
		PlaylistsCreated:  atomic.LoadUint64(&m.playlistsCreated),
		PlaylistsUpdated:  atomic.LoadUint64(&m.playlistsUpdated),
		PlaylistsDeleted:  atomic.LoadUint64(&m.playlistsDeleted),
		SongsLiked:        atomic.LoadUint64(&m.songsLiked),
		SongsUnliked:      atomic.LoadUint64(&m.songsUnliked),
		VideoSearches:     atomic.LoadUint64(&m.videoSearches),
		VideoSearchErrors: atomic.LoadUint64(&m.videoSearchErrors),
		UserLogins:        atomic.LoadUint64(&m.userLogins),
	}
}

// IncSongPlayed increments the play counter.
func (m *InMemoryRecorder) IncSongPlayed() {
	atomic.AddUint64(&m.songsPlayed, 1)
}

// IncCatalogSearch increments the catalog search counter.
func (m *InMemoryRecorder) IncCatalogSearch() {
	atomic.AddUint64(&m.catalogSearches, 1)
}

// IncPlaylistCreated increments the playlist created counter.
func (m *InMemoryRecorder) IncPlaylistCreated() {
	atomic.AddUint64(&m.playlistsCreated, 1)
}

// IncPlaylistUpdated increments the playlist updated counter.
func (m *InMemoryRecorder) IncPlaylistUpdated() {
	atomic.AddUint64(&m.playlistsUpdated, 1)
}

// IncPlaylistDeleted increments the playlist deleted counter.
func (m *InMemoryRecorder) IncPlaylistDeleted() {
	atomic.AddUint64(&m.playlistsDeleted, 1)
}

// IncSongLiked increments the liked counter.
func (m *InMemoryRecorder) IncSongLiked() {
	atomic.AddUint64(&m.songsLiked, 1)
}

// IncSongUnliked increments the unliked counter.
func (m *InMemoryRecorder) IncSongUnliked() {
	atomic.AddUint64(&m.songsUnliked, 1)
}

// IncVideoSearch increments the provider search counter.
func (m *InMemoryRecorder) IncVideoSearch() {
	atomic.AddUint64(&m.videoSearches, 1)
}

// IncVideoSearchError increments the provider error counter.
func (m *InMemoryRecorder) IncVideoSearchError() {
	atomic.AddUint64(&m.videoSearchErrors, 1)
}

// IncUserLogin increments the login counter.
func (m *InMemoryRecorder) IncUserLogin() {
	atomic.AddUint64(&m.userLogins, 1)
}
