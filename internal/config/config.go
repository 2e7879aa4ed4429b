// Package config loads and stores the formatter's presentation preferences.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultDirName  = "ktfmt"
	defaultFileName = "config.json"
	currentVersion  = 1
	envConfigPath   = "KTFMT_CONFIG"
	envConfigDir    = "KTFMT_CONFIG_DIR"
)

// Color modes accepted in the config file and by `ktfmt config color`.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrConfigNotFound indicates the config file does not exist yet.
var ErrConfigNotFound = errors.New("config file not found")

// Config is the persisted ktfmt configuration. It only carries presentation
// preferences; formatting behavior comes from command-line flags alone.
type Config struct {
	Version        int    `json:"version"`
	Color          string `json:"color,omitempty"`
	RenderMarkdown bool   `json:"render_markdown"`
}

// ResolvePath resolves the config file path from a CLI override, the
// environment, or the default location.
func ResolvePath(pathOverride string) (string, error) {
	if path := strings.TrimSpace(pathOverride); path != "" {
		return filepath.Clean(path), nil
	}
	if path := strings.TrimSpace(os.Getenv(envConfigPath)); path != "" {
		return filepath.Clean(path), nil
	}
	return DefaultPath()
}

// DefaultDir returns the directory where ktfmt stores its config.
func DefaultDir() (string, error) {
	if custom := strings.TrimSpace(os.Getenv(envConfigDir)); custom != "" {
		return filepath.Clean(custom), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}
	return filepath.Join(home, "."+defaultDirName), nil
}

// DefaultPath returns the default full path to config.json.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultFileName), nil
}

// Load reads config from path. When missing, it returns DefaultConfig and
// ErrConfigNotFound.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), ErrConfigNotFound
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save persists config to path in normalized form.
func Save(path string, cfg *Config) error {
	cfg.normalize()
	return writeSecureJSON(path, cfg)
}

// DefaultConfig returns a new default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version:        currentVersion,
		Color:          ColorAuto,
		RenderMarkdown: true,
	}
}

func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = currentVersion
	}
	switch strings.ToLower(strings.TrimSpace(c.Color)) {
	case ColorAlways:
		c.Color = ColorAlways
	case ColorNever:
		c.Color = ColorNever
	default:
		c.Color = ColorAuto
	}
}

// ValidColorMode reports whether mode is one of auto, always, or never.
func ValidColorMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

func writeSecureJSON(path string, payload any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
