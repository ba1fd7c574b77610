package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the configuration loaded from config.toml.
// Zero values leave the corresponding Config field untouched.
type FileConfig struct {
	// DataFile overrides the tasks file location. A leading ~/ is expanded.
	DataFile string `toml:"data_file"`

	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme"`

	// DeleteDuration is a Go duration string such as "400ms".
	DeleteDuration string `toml:"delete_duration"`

	// FrameRate is the animation frame rate.
	FrameRate int `toml:"frame_rate"`

	// Log configures the debug log.
	Log LogConfig `toml:"log"`
}

// LogConfig is the [log] table of config.toml.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DefaultConfigPath returns the user-level config file path.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".tickit", "config.toml")
	}
	return filepath.Join(dir, "tickit", "config.toml")
}

// LoadFileConfig reads configuration from the default config path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfig() (*FileConfig, error) {
	return LoadFileConfigFrom(DefaultConfigPath())
}

// LoadFileConfigFrom reads configuration from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfigFrom(configPath string) (*FileConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply copies the non-zero file settings onto cfg.
func (fc *FileConfig) Apply(cfg *Config) error {
	if fc == nil {
		return nil
	}
	if fc.DataFile != "" {
		cfg.DataFile = expandHome(fc.DataFile)
	}
	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	if fc.DeleteDuration != "" {
		d, err := time.ParseDuration(fc.DeleteDuration)
		if err != nil {
			return fmt.Errorf("invalid delete_duration %q: %w", fc.DeleteDuration, err)
		}
		cfg.DeleteDuration = d
	}
	if fc.FrameRate != 0 {
		cfg.FrameRate = fc.FrameRate
	}
	if fc.Log.File != "" {
		cfg.LogFile = expandHome(fc.Log.File)
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	return nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
