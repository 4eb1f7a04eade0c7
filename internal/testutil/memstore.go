package testutil

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/store"
)

// MemStore is an in-memory stand-in for store.Store. It reproduces the
// document semantics the services rely on ($addToSet deduplication, $pull,
// $inc, insertion-order listings) without a running MongoDB.
type MemStore struct {
	mu sync.Mutex

	users    map[string]*model.User    // by user_id
	sessions map[string]*model.Session // by token

	songs     map[string]*model.Song
	songOrder []string

	playlists     map[string]*model.Playlist
	playlistOrder []string

	artists     map[string]*model.Artist
	artistOrder []string
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		users:     make(map[string]*model.User),
		sessions:  make(map[string]*model.Session),
		songs:     make(map[string]*model.Song),
		playlists: make(map[string]*model.Playlist),
		artists:   make(map[string]*model.Artist),
	}
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.LikedSongs = slices.Clone(u.LikedSongs)
	c.Playlists = slices.Clone(u.Playlists)
	c.RecentlyPlayed = slices.Clone(u.RecentlyPlayed)
	c.Preferences.FavoriteGenres = slices.Clone(u.Preferences.FavoriteGenres)
	return &c
}

func clonePlaylist(p *model.Playlist) *model.Playlist {
	c := *p
	c.Songs = slices.Clone(p.Songs)
	return &c
}

// --- users ---

func (m *MemStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.UserID] = cloneUser(user)
	return nil
}

func (m *MemStore) UserByID(_ context.Context, userID string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneUser(u), nil
}

func (m *MemStore) UserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemStore) UpdateUserIdentity(_ context.Context, email, name, picture, googleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u.Name = name
			u.Picture = picture
			u.GoogleID = googleID
			return nil
		}
	}
	return nil
}

func (m *MemStore) AddLikedSong(_ context.Context, userID, songID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	if !slices.Contains(u.LikedSongs, songID) {
		u.LikedSongs = append(u.LikedSongs, songID)
	}
	return nil
}

func (m *MemStore) RemoveLikedSong(_ context.Context, userID, songID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.LikedSongs = slices.DeleteFunc(u.LikedSongs, func(id string) bool { return id == songID })
	}
	return nil
}

func (m *MemStore) LinkPlaylist(_ context.Context, userID, playlistID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.Playlists = append(u.Playlists, playlistID)
	}
	return nil
}

func (m *MemStore) UnlinkPlaylist(_ context.Context, userID, playlistID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.Playlists = slices.DeleteFunc(u.Playlists, func(id string) bool { return id == playlistID })
	}
	return nil
}

func (m *MemStore) SetRecentlyPlayed(_ context.Context, userID string, songIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[userID]; ok {
		u.RecentlyPlayed = slices.Clone(songIDs)
	}
	return nil
}

// --- sessions ---

func (m *MemStore) CreateSession(_ context.Context, session *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *session
	m.sessions[session.Token] = &c
	return nil
}

func (m *MemStore) SessionByToken(_ context.Context, token string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (m *MemStore) DeleteSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// SessionCount reports the number of stored sessions.
func (m *MemStore) SessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// ExpireSession rewrites a stored session's expiry, for tests exercising
// read-time expiry enforcement.
func (m *MemStore) ExpireSession(token string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[token]; ok {
		s.ExpiresAt = model.FlexTime{Time: at}
	}
}

// --- songs ---

func (m *MemStore) InsertSong(_ context.Context, song *model.Song) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *song
	m.songs[song.SongID] = &c
	m.songOrder = append(m.songOrder, song.SongID)
	return nil
}

func (m *MemStore) CountSongs(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.songs)), nil
}

func (m *MemStore) ListSongs(_ context.Context, filter store.SongFilter) ([]*model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []*model.Song{}
	for _, id := range m.songOrder {
		s := m.songs[id]
		if filter.Region != "" && filter.Region != "global" && s.Region != filter.Region {
			continue
		}
		if filter.Genre != "" && s.Genre != filter.Genre {
			continue
		}
		matched = append(matched, s)
	}
	return paginate(matched, filter.Skip, filter.Limit), nil
}

func (m *MemStore) SongByID(_ context.Context, songID string) (*model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.songs[songID]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *s
	return &c, nil
}

func (m *MemStore) SongsByIDs(_ context.Context, songIDs []string) ([]*model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	songs := []*model.Song{}
	for _, id := range m.songOrder {
		if slices.Contains(songIDs, id) {
			c := *m.songs[id]
			songs = append(songs, &c)
		}
	}
	return songs, nil
}

func (m *MemStore) SearchSongs(_ context.Context, q string, limit int64) ([]*model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q = strings.ToLower(q)
	matched := []*model.Song{}
	for _, id := range m.songOrder {
		s := m.songs[id]
		if containsFold(s.Title, q) || containsFold(s.Artist, q) || containsFold(s.Album, q) {
			matched = append(matched, s)
		}
	}
	return paginate(matched, 0, limit), nil
}

func (m *MemStore) IncrementPlays(_ context.Context, songID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.songs[songID]; ok {
		s.Plays++
	}
	return nil
}

// --- playlists ---

func (m *MemStore) CreatePlaylist(_ context.Context, playlist *model.Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playlists[playlist.PlaylistID] = clonePlaylist(playlist)
	m.playlistOrder = append(m.playlistOrder, playlist.PlaylistID)
	return nil
}

func (m *MemStore) PlaylistByID(_ context.Context, playlistID string) (*model.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.playlists[playlistID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clonePlaylist(p), nil
}

func (m *MemStore) ListPublicPlaylists(_ context.Context, skip, limit int64) ([]*model.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := []*model.Playlist{}
	for _, id := range m.playlistOrder {
		if p := m.playlists[id]; p.IsPublic {
			matched = append(matched, p)
		}
	}
	return paginate(matched, skip, limit), nil
}

func (m *MemStore) PlaylistsByIDs(_ context.Context, playlistIDs []string) ([]*model.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	playlists := []*model.Playlist{}
	for _, id := range m.playlistOrder {
		if slices.Contains(playlistIDs, id) {
			playlists = append(playlists, clonePlaylist(m.playlists[id]))
		}
	}
	return playlists, nil
}

func (m *MemStore) SearchPlaylists(_ context.Context, q string, limit int64) ([]*model.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q = strings.ToLower(q)
	matched := []*model.Playlist{}
	for _, id := range m.playlistOrder {
		p := m.playlists[id]
		if containsFold(p.Name, q) || containsFold(p.Description, q) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, 0, limit), nil
}

func (m *MemStore) UpdatePlaylist(_ context.Context, playlistID string, upd store.PlaylistUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.playlists[playlistID]
	if !ok {
		return store.ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.CoverURL != nil {
		p.CoverURL = *upd.CoverURL
	}
	if upd.IsPublic != nil {
		p.IsPublic = *upd.IsPublic
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemStore) DeletePlaylist(_ context.Context, playlistID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.playlists, playlistID)
	m.playlistOrder = slices.DeleteFunc(m.playlistOrder, func(id string) bool { return id == playlistID })
	return nil
}

func (m *MemStore) AddPlaylistSong(_ context.Context, playlistID, songID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.playlists[playlistID]; ok {
		if !slices.Contains(p.Songs, songID) {
			p.Songs = append(p.Songs, songID)
		}
	}
	return nil
}

func (m *MemStore) RemovePlaylistSong(_ context.Context, playlistID, songID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.playlists[playlistID]; ok {
		p.Songs = slices.DeleteFunc(p.Songs, func(id string) bool { return id == songID })
	}
	return nil
}

// --- artists ---

func (m *MemStore) InsertArtist(_ context.Context, artist *model.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *artist
	m.artists[artist.ArtistID] = &c
	m.artistOrder = append(m.artistOrder, artist.ArtistID)
	return nil
}

func (m *MemStore) ListArtists(_ context.Context, skip, limit int64) ([]*model.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := []*model.Artist{}
	for _, id := range m.artistOrder {
		matched = append(matched, m.artists[id])
	}
	return paginate(matched, skip, limit), nil
}

func (m *MemStore) ArtistByID(_ context.Context, artistID string) (*model.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.artists[artistID]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *a
	return &c, nil
}

func (m *MemStore) SearchArtists(_ context.Context, q string, limit int64) ([]*model.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q = strings.ToLower(q)
	matched := []*model.Artist{}
	for _, id := range m.artistOrder {
		if a := m.artists[id]; containsFold(a.Name, q) {
			matched = append(matched, a)
		}
	}
	return paginate(matched, 0, limit), nil
}

// --- helpers ---

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

func paginate[T any](items []T, skip, limit int64) []T {
	if skip >= int64(len(items)) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return slices.Clone(items)
}
