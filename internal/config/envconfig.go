// Package config provides environment-driven configuration for the CLI and
// the HTTP server. A .env file in the working directory is honored when
// present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvPort        = "CVWIZARD_PORT"
	EnvDataDir     = "CVWIZARD_DATA_DIR"
	EnvDatabaseURL = "DATABASE_URL"
	EnvChromePath  = "CHROME_PATH"
	EnvDebounceMS  = "CVWIZARD_SAVE_DEBOUNCE_MS"
	EnvUndoDepth   = "CVWIZARD_UNDO_DEPTH"
)

// Defaults.
const (
	DefaultPort     = 8080
	DefaultDataDir  = "data"
	DefaultDebounce = 300 * time.Millisecond
	DefaultUndo     = 60
)

// Config is the resolved runtime configuration.
type Config struct {
	Port         int           // HTTP listen port
	DataDir      string        // snapshot directory for the file store
	DatabaseURL  string        // optional; switches persistence to Postgres
	ChromePath   string        // optional headless Chrome binary override
	SaveDebounce time.Duration // trailing window for debounced saves
	UndoDepth    int           // undo stack capacity per session
}

// Load reads the environment (after loading .env when present) and validates
// the result.
func Load() (*Config, error) {
	// A missing .env file is not an error; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         DefaultPort,
		DataDir:      DefaultDataDir,
		DatabaseURL:  os.Getenv(EnvDatabaseURL),
		ChromePath:   os.Getenv(EnvChromePath),
		SaveDebounce: DefaultDebounce,
		UndoDepth:    DefaultUndo,
	}

	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvDebounceMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvDebounceMS, err)
		}
		cfg.SaveDebounce = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv(EnvUndoDepth); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvUndoDepth, err)
		}
		cfg.UndoDepth = depth
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks numeric ranges.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port must be in 1-65535, got %d", c.Port)
	}
	if c.SaveDebounce < 0 {
		return fmt.Errorf("config error: save debounce must be non-negative")
	}
	if c.UndoDepth < 1 {
		return fmt.Errorf("config error: undo depth must be at least 1")
	}
	return nil
}
