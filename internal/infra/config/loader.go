// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the settings file name inside the config directory.
const ConfigFileName = "config.toml"

// DefaultFileName is the suggested file name for a first save.
const DefaultFileName = "todo_list_save.json"

// Settings holds the user-tunable application settings.
type Settings struct {
	DefaultFileName string `toml:"default_file_name"`
	LogLevel        string `toml:"log_level"`
	DarkMode        bool   `toml:"dark_mode"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		DefaultFileName: DefaultFileName,
		LogLevel:        "info",
		DarkMode:        false,
	}
}

// Loader loads settings from a TOML file in the user config directory.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader using the XDG config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dolist")
}

// Path returns the settings file path.
func (l *Loader) Path() string {
	return filepath.Join(l.confDir, ConfigFileName)
}

// Load returns the settings file merged over defaults. A missing file
// yields the defaults.
func (l *Loader) Load() (Settings, error) {
	settings := Default()
	if l.confDir == "" {
		return settings, nil
	}

	content, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(content, &settings); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	if settings.DefaultFileName == "" {
		settings.DefaultFileName = DefaultFileName
	}
	return settings, nil
}

// Write persists settings to the config file, creating the directory as
// needed.
func (l *Loader) Write(settings Settings) error {
	if l.confDir == "" {
		return errors.New("config directory unavailable")
	}
	if err := os.MkdirAll(l.confDir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	content, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(l.Path(), content, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
