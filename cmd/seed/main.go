// Command seed populates the catalog collections from a TOML fixture file.
// It is a no-op when the songs collection already has documents.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v3"

	"github.com/shinyfy/shinyfy/internal/model"
	"github.com/shinyfy/shinyfy/internal/store"
)

type fixtures struct {
	Songs     []songFixture     `toml:"songs"`
	Playlists []playlistFixture `toml:"playlists"`
	Artists   []artistFixture   `toml:"artists"`
}

type songFixture struct {
	Ref             string            `toml:"ref"`
	Title           string            `toml:"title"`
	Artist          string            `toml:"artist"`
	Album           string            `toml:"album"`
	Duration        string            `toml:"duration"`
	DurationSeconds int               `toml:"duration_seconds"`
	CoverURL        string            `toml:"cover_url"`
	YouTubeID       string            `toml:"youtube_id"`
	Genre           string            `toml:"genre"`
	Region          string            `toml:"region"`
	Plays           int64             `toml:"plays"`
	ReleaseYear     int               `toml:"release_year"`
	Source          string            `toml:"source"`
	Lyrics          []model.LyricLine `toml:"lyrics"`
}

type playlistFixture struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	CoverURL    string   `toml:"cover_url"`
	Songs       []string `toml:"songs"`
	Followers   int64    `toml:"followers"`
	Region      string   `toml:"region"`
}

type artistFixture struct {
	Name      string   `toml:"name"`
	ImageURL  string   `toml:"image_url"`
	Followers int64    `toml:"followers"`
	Verified  bool     `toml:"verified"`
	TopSongs  []string `toml:"top_songs"`
	Bio       string   `toml:"bio"`
	Genres    []string `toml:"genres"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cmd := &cli.Command{
		Name:  "seed",
		Usage: "Seed the Shinyfy catalog with fixture data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mongo-url",
				Usage:   "MongoDB connection string",
				Sources: cli.EnvVars("MONGO_URL"),
				Value:   "mongodb://localhost:27017",
			},
			&cli.StringFlag{
				Name:    "db-name",
				Usage:   "Database name",
				Sources: cli.EnvVars("DB_NAME"),
				Value:   "shinyfy_db",
			},
			&cli.StringFlag{
				Name:  "fixtures",
				Usage: "Path to the fixture file",
				Value: "seed/fixtures.toml",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, c.String("mongo-url"), c.String("db-name"), c.String("fixtures"), logger)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, mongoURL, dbName, fixturePath string, logger *slog.Logger) error {
	fx, err := loadFixtures(fixturePath)
	if err != nil {
		return err
	}

	st, err := store.Connect(ctx, mongoURL, dbName)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			logger.Warn("closing store", "error", err)
		}
	}()

	count, err := st.CountSongs(ctx)
	if err != nil {
		return fmt.Errorf("count songs: %w", err)
	}
	if count > 0 {
		logger.Info("database already seeded, skipping", "songs", count)
		return nil
	}

	// Fixtures reference songs by ref; assign real IDs first so playlists
	// and artists can resolve them.
	songIDs := make(map[string]string, len(fx.Songs))
	for _, sf := range fx.Songs {
		song := &model.Song{
			SongID:          model.NewSongID(),
			Title:           sf.Title,
			Artist:          sf.Artist,
			Album:           sf.Album,
			Duration:        sf.Duration,
			DurationSeconds: sf.DurationSeconds,
			CoverURL:        sf.CoverURL,
			YouTubeID:       sf.YouTubeID,
			Genre:           sf.Genre,
			Region:          sf.Region,
			Plays:           sf.Plays,
			ReleaseYear:     sf.ReleaseYear,
			Lyrics:          sf.Lyrics,
			Source:          sf.Source,
		}
		if song.Lyrics == nil {
			song.Lyrics = []model.LyricLine{}
		}
		if err := st.InsertSong(ctx, song); err != nil {
			return fmt.Errorf("insert song %q: %w", sf.Title, err)
		}
		songIDs[sf.Ref] = song.SongID
	}
	logger.Info("inserted songs", "count", len(fx.Songs))

	now := time.Now().UTC()
	for _, pf := range fx.Playlists {
		ids, err := resolveRefs(pf.Songs, songIDs)
		if err != nil {
			return fmt.Errorf("playlist %q: %w", pf.Name, err)
		}
		playlist := &model.Playlist{
			PlaylistID:  model.NewPlaylistID(),
			Name:        pf.Name,
			Description: pf.Description,
			CoverURL:    pf.CoverURL,
			Songs:       ids,
			Owner:       "system",
			Followers:   pf.Followers,
			Region:      pf.Region,
			IsPublic:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := st.CreatePlaylist(ctx, playlist); err != nil {
			return fmt.Errorf("insert playlist %q: %w", pf.Name, err)
		}
	}
	logger.Info("inserted playlists", "count", len(fx.Playlists))

	for _, af := range fx.Artists {
		ids, err := resolveRefs(af.TopSongs, songIDs)
		if err != nil {
			return fmt.Errorf("artist %q: %w", af.Name, err)
		}
		artist := &model.Artist{
			ArtistID:  model.NewArtistID(),
			Name:      af.Name,
			ImageURL:  af.ImageURL,
			Followers: af.Followers,
			Verified:  af.Verified,
			TopSongs:  ids,
			Bio:       af.Bio,
			Genres:    af.Genres,
		}
		if err := st.InsertArtist(ctx, artist); err != nil {
			return fmt.Errorf("insert artist %q: %w", af.Name, err)
		}
	}
	logger.Info("inserted artists", "count", len(fx.Artists))

	logger.Info("seeding complete",
		"songs", len(fx.Songs),
		"playlists", len(fx.Playlists),
		"artists", len(fx.Artists),
	)
	return nil
}

func loadFixtures(path string) (*fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var fx fixtures
	if err := toml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &fx, nil
}

func resolveRefs(refs []string, songIDs map[string]string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, ok := songIDs[ref]
		if !ok {
			return nil, fmt.Errorf("unknown song ref %q", ref)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
