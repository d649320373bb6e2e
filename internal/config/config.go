package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Card database configuration
	Database DatabaseConfig `toml:"database"`

	// Scraping configuration
	Scrape ScrapeConfig `toml:"scrape"`

	// Drop-directory ingestion configuration
	Ingest IngestConfig `toml:"ingest"`

	// HTTP API configuration
	API APIConfig `toml:"api"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// DatabaseConfig contains local card database settings.
type DatabaseConfig struct {
	Path    string `toml:"path"`     // Path to the SQLite database file
	SyncTTL string `toml:"sync_ttl"` // Max age of the card dataset before re-sync (e.g., "168h")
}

// ScrapeConfig contains deck scraping settings.
type ScrapeConfig struct {
	RequestTimeout    string  `toml:"request_timeout"`     // Per-request timeout (e.g., "30s")
	RequestsPerSecond float64 `toml:"requests_per_second"` // Rate limit per host
}

// IngestConfig contains batch and watcher ingestion settings.
type IngestConfig struct {
	DropDir string `toml:"drop_dir"` // Directory watched for decklist files
	Workers int    `toml:"workers"`  // Concurrent ingestion workers
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `toml:"port"` // Listen port
}

// AppConfig contains general application settings.
type AppConfig struct {
	DefaultFormat string `toml:"default_format"` // Format assumed when a decklist doesn't declare one
	DebugMode     bool   `toml:"debug_mode"`     // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:    "",
			SyncTTL: "168h",
		},
		Scrape: ScrapeConfig{
			RequestTimeout:    "30s",
			RequestsPerSecond: 2,
		},
		Ingest: IngestConfig{
			DropDir: "",
			Workers: 4,
		},
		API: APIConfig{
			Port: 8080,
		},
		App: AppConfig{
			DefaultFormat: "standard",
			DebugMode:     false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".mtgcards")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// DatabasePath returns the configured database path, falling back to a file
// next to the config when unset.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".mtgcards", "cards.db"), nil
}

// Load loads the configuration from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Database.SyncTTL); err != nil {
		return fmt.Errorf("invalid sync TTL %q: %w", c.Database.SyncTTL, err)
	}

	if _, err := time.ParseDuration(c.Scrape.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request timeout %q: %w", c.Scrape.RequestTimeout, err)
	}

	if c.Scrape.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests per second must be positive: %v", c.Scrape.RequestsPerSecond)
	}

	if c.Ingest.Workers < 1 {
		return fmt.Errorf("ingest workers must be at least 1: %d", c.Ingest.Workers)
	}

	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("invalid API port: %d", c.API.Port)
	}

	return nil
}

// GetSyncTTL returns the card dataset sync TTL as a duration.
func (c *Config) GetSyncTTL() (time.Duration, error) {
	return time.ParseDuration(c.Database.SyncTTL)
}

// GetScrapeTimeout returns the scrape request timeout as a duration.
func (c *Config) GetScrapeTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Scrape.RequestTimeout)
}
