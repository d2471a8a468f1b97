// Package file loads the application configuration from a TOML file
// into an explicit Config struct. The struct is constructed once in
// main and passed by parameter; there is no process-wide lookup.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigDir is the directory under $HOME holding config, token
// and index data when no explicit paths are configured.
const DefaultConfigDir = ".driveindex"

// Config holds all application settings.
type Config struct {
	// Drive configures the Google Drive file source.
	Drive DriveConfig `toml:"drive"`

	// Index configures the search index.
	Index IndexConfig `toml:"index"`

	// API configures the read-only HTTP query surface.
	API APIConfig `toml:"api"`

	// Extract configures text extraction.
	Extract ExtractConfig `toml:"extract"`
}

// DriveConfig holds Google Drive OAuth and sync settings.
type DriveConfig struct {
	// ClientID is the OAuth client id.
	ClientID string `toml:"client_id"`

	// ClientSecret is the OAuth client secret.
	ClientSecret string `toml:"client_secret"`

	// FolderID is the Drive folder to sync, traversed transitively.
	FolderID string `toml:"folder_id"`

	// TokenFile is where the OAuth token is persisted.
	TokenFile string `toml:"token_file"`
}

// IndexConfig holds search index settings.
type IndexConfig struct {
	// Path is the on-disk location of the index.
	Path string `toml:"path"`
}

// APIConfig holds HTTP query surface settings.
type APIConfig struct {
	// Host is the listen address.
	Host string `toml:"host"`

	// Port is the listen port.
	Port int `toml:"port"`
}

// ExtractConfig holds extraction settings.
type ExtractConfig struct {
	// OCR enables the image OCR extractor (requires tesseract).
	OCR bool `toml:"ocr"`
}

// Load reads the config file at path, or the default location when
// path is empty, and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, DefaultConfigDir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// Missing file means defaults; required fields are checked by
		// Validate before any adapter is built.
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// defaults returns a config with every optional field filled in.
func defaults() *Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, DefaultConfigDir)

	return &Config{
		Drive: DriveConfig{
			TokenFile: filepath.Join(base, "token.json"),
		},
		Index: IndexConfig{
			Path: filepath.Join(base, "index.bleve"),
		},
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
	}
}

// Validate checks the fields required to reach the file source.
func (c *Config) Validate() error {
	if c.Drive.ClientID == "" || c.Drive.ClientSecret == "" {
		return fmt.Errorf("drive.client_id and drive.client_secret are required")
	}
	if c.Drive.FolderID == "" {
		return fmt.Errorf("drive.folder_id is required")
	}
	return nil
}
