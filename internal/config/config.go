package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the optional costgraph configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Theme    ThemeConfig    `toml:"theme"`
}

// DefaultsConfig holds persistent flag defaults.
type DefaultsConfig struct {
	Mode    *string `toml:"mode"`
	Width   *int    `toml:"width"`
	Height  *int    `toml:"height"`
	Padding *string `toml:"padding"`
	Summary *bool   `toml:"summary"`
	Color   *string `toml:"color"`
}

// ThemeConfig holds optional color overrides.
type ThemeConfig struct {
	Line  *string `toml:"line"`
	Point *string `toml:"point"`
	Bar   *string `toml:"bar"`
	Axis  *string `toml:"axis"`
	Label *string `toml:"label"`
}

// Path returns the resolved path to the config file.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "costgraph", "config.toml")
}

// Load reads the config file from the XDG path. Returns a zero Config
// (no error) if the file does not exist. Config is always optional.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path. A missing file yields a zero Config.
func LoadFile(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg to path, creating the parent directory if needed.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644) //nolint:gosec // G306: config is not secret
}

// Sample returns a config populated with the built-in defaults, suitable
// as a starting point for a config file.
func Sample() Config {
	mode, color, padding := "line", "auto", ""
	width, height := 60, 10
	summary := false
	line, point, bar, axis, label := "#89b4fa", "#cba6f7", "#a6e3a1", "#5a6278", "#cdd6f4"
	return Config{
		Defaults: DefaultsConfig{
			Mode:    &mode,
			Width:   &width,
			Height:  &height,
			Padding: &padding,
			Summary: &summary,
			Color:   &color,
		},
		Theme: ThemeConfig{
			Line:  &line,
			Point: &point,
			Bar:   &bar,
			Axis:  &axis,
			Label: &label,
		},
	}
}
