package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

func (NoopRecorder) IncSongPlayed()       {}
func (NoopRecorder) IncCatalogSearch()    {}
func (NoopRecorder) IncPlaylistCreated()  {}
func (NoopRecorder) IncPlaylistUpdated()  {}
func (NoopRecorder) IncPlaylistDeleted()  {}
func (NoopRecorder) IncSongLiked()        {}
func (NoopRecorder) IncSongUnliked()      {}
func (NoopRecorder) IncVideoSearch()      {}
func (NoopRecorder) IncVideoSearchError() {}
func (NoopRecorder) IncUserLogin()        {}
