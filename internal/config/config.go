// Package config provides the TOML file configuration and default paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Storage StorageConfig `toml:"storage"`
	Quiz    QuizConfig    `toml:"quiz"`
	Tasks   TasksConfig   `toml:"tasks"`
}

// StorageConfig maps storage-related settings.
type StorageConfig struct {
	Path *string `toml:"path"`
}

// QuizConfig maps quiz-related settings.
type QuizConfig struct {
	DurationMinutes *int `toml:"duration-minutes"`
}

// TasksConfig maps task-related settings.
type TasksConfig struct {
	DefaultCategory *string `toml:"default-category"`
}

// Load reads a TOML config from the given path. A missing file is not an
// error; defaults apply.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "taskmaster", "config.toml")
}
