// Package main is the entrypoint for the Shinyfy API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shinyfy/shinyfy/internal/auth"
	"github.com/shinyfy/shinyfy/internal/config"
	"github.com/shinyfy/shinyfy/internal/handler"
	"github.com/shinyfy/shinyfy/internal/metrics"
	"github.com/shinyfy/shinyfy/internal/middleware"
	"github.com/shinyfy/shinyfy/internal/server"
	"github.com/shinyfy/shinyfy/internal/service"
	"github.com/shinyfy/shinyfy/internal/store"
	"github.com/shinyfy/shinyfy/internal/youtube"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	st, err := store.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		logger.Error("failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("connected to MongoDB", "db", cfg.DBName)

	ytClient, err := youtube.NewClient(cfg.YouTubeAPIKeys, logger)
	if err != nil {
		logger.Error("failed to initialize video provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	authn := auth.NewAuthenticator(st, auth.NewIdentityClient(cfg.AuthServiceURL), cfg.SessionTTL, logger)

	recorder := metrics.NewInMemory()
	catalog := service.NewCatalogService(st, recorder, logger)
	playlists := service.NewPlaylistService(st, recorder, logger)
	library := service.NewLibraryService(st, recorder, logger)

	r := setupRouter(routerDeps{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		authn:     authn,
		metrics:   recorder,
		catalog:   catalog,
		playlists: playlists,
		library:   library,
		videos:    ytClient,
	})

	srv := server.New(r, cfg.AppPort, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)
	srv.OnShutdown("mongodb", st.Close)

	logger.Info("starting server", "port", cfg.AppPort, "env", cfg.AppEnv)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

type routerDeps struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *store.Store
	authn     *auth.Authenticator
	metrics   metrics.Recorder
	catalog   *service.CatalogService
	playlists *service.PlaylistService
	library   *service.LibraryService
	videos    *youtube.Client
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.Security(deps.cfg.IsDevelopment()))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	healthHandler := handler.NewHealthHandler(deps.store)
	authHandler := handler.NewAuthHandler(deps.authn, deps.metrics, deps.logger)
	songHandler := handler.NewSongHandler(deps.catalog, deps.logger)
	playlistHandler := handler.NewPlaylistHandler(deps.playlists, deps.logger)
	libraryHandler := handler.NewLibraryHandler(deps.library, deps.logger)
	artistHandler := handler.NewArtistHandler(deps.catalog, deps.logger)
	videoHandler := handler.NewVideoHandler(deps.videos, deps.metrics, deps.logger)

	requireSession := middleware.RequireSession(deps.authn, deps.logger)
	optionalSession := middleware.OptionalSession(deps.authn)

	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handler.Hello)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/session", authHandler.CreateSession)
			r.With(requireSession).Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})

		r.Route("/songs", func(r chi.Router) {
			r.Get("/", songHandler.List)
			r.Get("/search", songHandler.Search)
			r.Get("/{songID}", songHandler.Get)
			r.With(optionalSession).Post("/{songID}/play", songHandler.TrackPlay)
			r.Get("/{songID}/lyrics", songHandler.Lyrics)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Get("/", playlistHandler.List)
			r.Get("/{playlistID}", playlistHandler.Get)
			r.With(requireSession).Post("/", playlistHandler.Create)
			r.With(requireSession).Put("/{playlistID}", playlistHandler.Update)
			r.With(requireSession).Delete("/{playlistID}", playlistHandler.Delete)
			r.With(requireSession).Post("/{playlistID}/songs", playlistHandler.AddSong)
			r.With(requireSession).Delete("/{playlistID}/songs/{songID}", playlistHandler.RemoveSong)
		})

		r.Route("/library", func(r chi.Router) {
			r.Use(requireSession)
			r.Get("/liked-songs", libraryHandler.LikedSongs)
			r.Post("/liked-songs/{songID}", libraryHandler.Like)
			r.Delete("/liked-songs/{songID}", libraryHandler.Unlike)
			r.Get("/playlists", libraryHandler.Playlists)
			r.Get("/recently-played", libraryHandler.RecentlyPlayed)
		})

		r.Route("/artists", func(r chi.Router) {
			r.Get("/", artistHandler.List)
			r.Get("/{artistID}", artistHandler.Get)
			r.Get("/{artistID}/top-songs", artistHandler.TopSongs)
		})

		r.Route("/youtube", func(r chi.Router) {
			r.Get("/search", videoHandler.Search)
			r.Get("/video/{videoID}", videoHandler.Video)
			r.Get("/related/{videoID}", videoHandler.Related)
		})
	})

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
