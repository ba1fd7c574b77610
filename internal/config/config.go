// Package config provides configuration management for tickit.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Config holds the runtime configuration.
type Config struct {
	// DataFile is the JSON file holding the tasks (default: ~/.tickit/todos.json).
	DataFile string

	// Theme is the colour theme for the TUI: "auto", "dark", or "light".
	// "auto" detects the terminal background colour automatically.
	Theme string

	// DeleteDuration is how long the slide-out takes before a deleted task
	// is removed (default: 400ms).
	DeleteDuration time.Duration

	// FrameRate is the number of animation frames per second (default: 60).
	FrameRate int

	// LogFile receives debug logs. Empty disables logging, since the TUI
	// owns the terminal.
	LogFile string

	// LogLevel is one of debug, info, warn, error (default: info).
	LogLevel string
}

// DefaultDeleteDuration matches the slide-out duration of the task list.
const DefaultDeleteDuration = 400 * time.Millisecond

// DefaultFrameRate is the default animation frame rate.
const DefaultFrameRate = 60

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataFile:       DefaultDataFile(),
		Theme:          "auto",
		DeleteDuration: DefaultDeleteDuration,
		FrameRate:      DefaultFrameRate,
		LogLevel:       "info",
	}
}

// DefaultDataFile returns ~/.tickit/todos.json, falling back to the working
// directory when the home directory is unknown.
func DefaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".tickit", "todos.json")
	}
	return filepath.Join(home, ".tickit", "todos.json")
}

// FrameInterval returns the delay between animation frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Validate checks that the configuration is valid.
// Returns an error if validation fails.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return errors.New("data file is required")
	}
	switch c.Theme {
	case "auto", "dark", "light":
	default:
		return errors.New("theme must be auto, dark or light")
	}
	if c.DeleteDuration < 0 {
		return errors.New("delete duration cannot be negative")
	}
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		return errors.New("frame rate must be between 1 and 240")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("log level must be debug, info, warn or error")
	}
	return nil
}
