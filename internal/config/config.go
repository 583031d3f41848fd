// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all vetprofile configuration.
type Config struct {
	Storage Storage `yaml:"storage"`
	Seed    Seed    `yaml:"seed"`
	Log     Log     `yaml:"log"`
}

// Storage holds durable storage settings.
type Storage struct {
	Backend string `yaml:"backend"`  // "file" | "sqlite" | "memory"
	DataDir string `yaml:"data_dir"` // Scope of the stored values
	Key     string `yaml:"key"`      // Key of the profile override
}

// Seed holds seed resource settings.
type Seed struct {
	Dir string `yaml:"dir"` // Checked for client_profile.json before the embedded copy
}

// Log holds log file settings.
type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // Empty disables logging
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: Storage{
			Backend: BackendFile,
			DataDir: ".vetprofile/data",
			Key:     "clientProfile",
		},
		Seed: Seed{
			Dir: ".vetprofile/seed",
		},
		Log: Log{
			Level:      "info",
			File:       ".vetprofile/logs/vetprofile.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// SQLitePath returns the database path used by the sqlite backend.
func (s Storage) SQLitePath() string {
	return filepath.Join(s.DataDir, "vetprofile.db")
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
		if c.Storage.DataDir == "" {
			return fmt.Errorf("config: storage.data_dir cannot be empty for the %s backend", c.Storage.Backend)
		}
	case BackendMemory:
		// no directory needed
	default:
		return fmt.Errorf("config: storage.backend must be \"file\", \"sqlite\", or \"memory\", got %q", c.Storage.Backend)
	}
	if c.Storage.Key == "" {
		return errors.New("config: storage.key cannot be empty")
	}
	if c.Storage.Key != filepath.Base(c.Storage.Key) || c.Storage.Key == "." || c.Storage.Key == ".." {
		return fmt.Errorf("config: storage.key must not contain path components, got %q", c.Storage.Key)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn, or error, got %q", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("config: log.max_size_mb must be non-negative, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("config: log.max_backups must be non-negative, got %d", c.Log.MaxBackups)
	}
	if c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("config: log.max_age_days must be non-negative, got %d", c.Log.MaxAgeDays)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: VETPROFILE_STORAGE_BACKEND, VETPROFILE_DATA_DIR,
// VETPROFILE_LOG_LEVEL, VETPROFILE_LOG_FILE.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("VETPROFILE_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("VETPROFILE_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("VETPROFILE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("VETPROFILE_LOG_FILE"); ok {
		c.Log.File = v
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Storage *rawStorage `yaml:"storage"`
	Seed    *rawSeed    `yaml:"seed"`
	Log     *rawLog     `yaml:"log"`
}

type rawStorage struct {
	Backend *string `yaml:"backend"`
	DataDir *string `yaml:"data_dir"`
	Key     *string `yaml:"key"`
}

type rawSeed struct {
	Dir *string `yaml:"dir"`
}

type rawLog struct {
	Level      *string `yaml:"level"`
	File       *string `yaml:"file"`
	MaxSizeMB  *int    `yaml:"max_size_mb"`
	MaxBackups *int    `yaml:"max_backups"`
	MaxAgeDays *int    `yaml:"max_age_days"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Storage != nil {
		setString(&c.Storage.Backend, layer.Storage.Backend)
		setString(&c.Storage.DataDir, layer.Storage.DataDir)
		setString(&c.Storage.Key, layer.Storage.Key)
	}
	if layer.Seed != nil {
		setString(&c.Seed.Dir, layer.Seed.Dir)
	}
	if layer.Log != nil {
		setString(&c.Log.Level, layer.Log.Level)
		setString(&c.Log.File, layer.Log.File)
		setInt(&c.Log.MaxSizeMB, layer.Log.MaxSizeMB)
		setInt(&c.Log.MaxBackups, layer.Log.MaxBackups)
		setInt(&c.Log.MaxAgeDays, layer.Log.MaxAgeDays)
	}
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst, src *int) {
	if src != nil {
		*dst = *src
	}
}
