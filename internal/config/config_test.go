package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_WithRequiredVars(t *testing.T) {
	os.Setenv("MONGO_URL", "mongodb://localhost:27017")
	defer os.Unsetenv("MONGO_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MongoURL != "mongodb://localhost:27017" {
		t.Errorf("expected MongoURL to be set, got %s", cfg.MongoURL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("MONGO_URL")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required vars, got nil")
	}
}

func TestConfig_Defaults(t *testing.T) {
	os.Setenv("MONGO_URL", "mongodb://localhost:27017")
	defer os.Unsetenv("MONGO_URL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 8080 {
		t.Errorf("expected default AppPort 8080, got %d", cfg.AppPort)
	}

	if cfg.DBName != "shinyfy_db" {
		t.Errorf("expected default DBName 'shinyfy_db', got %s", cfg.DBName)
	}

	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("expected default SessionTTL 168h, got %s", cfg.SessionTTL)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("expected default LogFormat 'json', got %s", cfg.LogFormat)
	}
}

func TestConfig_YouTubeKeyPool(t *testing.T) {
	os.Setenv("MONGO_URL", "mongodb://localhost:27017")
	os.Setenv("YOUTUBE_API_KEYS", "key-one,key-two,key-three")
	defer func() {
		os.Unsetenv("MONGO_URL")
		os.Unsetenv("YOUTUBE_API_KEYS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(cfg.YouTubeAPIKeys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(cfg.YouTubeAPIKeys))
	}
	if cfg.YouTubeAPIKeys[1] != "key-two" {
		t.Errorf("expected second key 'key-two', got %s", cfg.YouTubeAPIKeys[1])
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "https://app.example.com, https://example.com ,"}

	origins := cfg.GetCORSAllowedOrigins()
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(origins))
	}
	if origins[0] != "https://app.example.com" {
		t.Errorf("unexpected origin: %s", origins[0])
	}

	cfg = &Config{}
	if cfg.GetCORSAllowedOrigins() != nil {
		t.Error("expected nil origins for empty config")
	}
}
