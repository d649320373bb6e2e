package config

import (
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.App.DefaultFormat != "standard" {
		t.Errorf("default format = %q, want standard", cfg.App.DefaultFormat)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.API.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad sync ttl", func(c *Config) { c.Database.SyncTTL = "soon" }},
		{"bad request timeout", func(c *Config) { c.Scrape.RequestTimeout = "fast" }},
		{"zero rate limit", func(c *Config) { c.Scrape.RequestsPerSecond = 0 }},
		{"zero workers", func(c *Config) { c.Ingest.Workers = 0 }},
		{"port out of range", func(c *Config) { c.API.Port = 70000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Database.SyncTTL != "168h" {
		t.Errorf("sync ttl = %q, want 168h", cfg.Database.SyncTTL)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.App.DefaultFormat = "commander"
	cfg.API.Port = 9090
	cfg.Ingest.DropDir = "/tmp/decks"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.App.DefaultFormat != "commander" {
		t.Errorf("default format = %q, want commander", loaded.App.DefaultFormat)
	}
	if loaded.API.Port != 9090 {
		t.Errorf("port = %d, want 9090", loaded.API.Port)
	}
	if loaded.Ingest.DropDir != "/tmp/decks" {
		t.Errorf("drop dir = %q, want /tmp/decks", loaded.Ingest.DropDir)
	}
}

func TestDatabasePathFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error: %v", err)
	}
	if path == "" {
		t.Fatal("DatabasePath() returned empty path")
	}

	cfg.Database.Path = "/var/lib/mtgcards/cards.db"
	path, err = cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() error: %v", err)
	}
	if path != "/var/lib/mtgcards/cards.db" {
		t.Errorf("DatabasePath() = %q, want configured path", path)
	}
}
