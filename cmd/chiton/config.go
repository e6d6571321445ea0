package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chiton/gridgraph"
)

var (
	// ErrBadTiles indicates a tiling factor below one.
	ErrBadTiles = errors.New("chiton: tiles must be at least 1")
	// ErrBadLogLevel indicates an unknown log level name.
	ErrBadLogLevel = errors.New("chiton: unknown log level")
)

// Config holds the tunables read from an optional YAML file.
// Flags that are set explicitly on the command line override it.
type Config struct {
	Tiles    int    `yaml:"tiles"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Tiles:    gridgraph.DefaultTiles,
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Tiles < 1 {
		return fmt.Errorf("%w: got %d", ErrBadTiles, c.Tiles)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// parseLevel maps debug|info|warn|error (case-insensitive) to a slog.Level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLogLevel, s)
	}
}
