// Package config loads the dogbrowser client configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the client settings; zero values are replaced by defaults in Load.
type Config struct {
	DogAPIBase    string
	AuthAPIBase   string
	DBPath        string
	LogLevel      string
	BreedCacheTTL time.Duration
	Tracing       bool
}

const (
	// DefaultConfigPath is read when no -config flag is given
	DefaultConfigPath = "~/.config/dogbrowser/config.toml"

	defaultDogAPIBase    = "https://dog.ceo/api"
	defaultAuthAPIBase   = "https://dummyjson.com/auth"
	defaultDBPath        = "~/.local/share/dogbrowser/tokens.db"
	defaultLogLevel      = "warn"
	defaultBreedCacheTTL = 5 * time.Minute
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DogAPIBase:    defaultDogAPIBase,
		AuthAPIBase:   defaultAuthAPIBase,
		DBPath:        mustExpand(defaultDBPath),
		LogLevel:      defaultLogLevel,
		BreedCacheTTL: defaultBreedCacheTTL,
	}
}

// Load reads the config file at path (DefaultConfigPath when empty).
// A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DogAPIBase    string `toml:"dog_api_base"`
		AuthAPIBase   string `toml:"auth_api_base"`
		DBPath        string `toml:"db_path"`
		LogLevel      string `toml:"log_level"`
		BreedCacheTTL string `toml:"breed_cache_ttl"`
		Tracing       bool   `toml:"tracing"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DogAPIBase); v != "" {
		cfg.DogAPIBase = v
	}
	if v := strings.TrimSpace(raw.AuthAPIBase); v != "" {
		cfg.AuthAPIBase = v
	}
	if v := strings.TrimSpace(raw.DBPath); v != "" {
		cfg.DBPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(raw.BreedCacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse breed_cache_ttl: %w", err)
		}
		if ttl <= 0 {
			return Config{}, fmt.Errorf("breed_cache_ttl must be positive, got %s", v)
		}
		cfg.BreedCacheTTL = ttl
	}
	cfg.Tracing = raw.Tracing

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	return l, nil
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(DefaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
