// Package config handles the client configuration file, stored at
// ~/.config/prashikshan/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Backend selects the local persistence implementation.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the client configuration.
type Config struct {
	APIURL         string `toml:"api_url"`
	DataDir        string `toml:"data_dir"`
	Backend        string `toml:"backend"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

const (
	defaultConfigPath = "~/.config/prashikshan/config.toml"
	defaultAPIURL     = "http://localhost:8000"
	defaultDataDir    = "~/.local/share/prashikshan"
	defaultTimeout    = 15
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

func defaults() Config {
	return Config{
		APIURL:         defaultAPIURL,
		DataDir:        defaultDataDir,
		Backend:        BackendJSON,
		TimeoutSeconds: defaultTimeout,
	}
}

// Load reads the configuration from the given path, falling back to
// defaults when the file is missing or unreadable.
func Load(path string) (Config, error) {
	cfg := defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, nil // Graceful degradation
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaults(), nil // Graceful degradation
	}

	if strings.TrimSpace(cfg.APIURL) == "" {
		cfg.APIURL = defaultAPIURL
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = defaultDataDir
	}
	if cfg.Backend != BackendJSON && cfg.Backend != BackendSQLite {
		cfg.Backend = BackendJSON
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeout
	}

	return cfg, nil
}

// Save writes the configuration to the given path, creating directories
// as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// ResolveDataDir expands the configured data directory to an absolute
// path.
func (c Config) ResolveDataDir() (string, error) {
	return expandPath(c.DataDir)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
