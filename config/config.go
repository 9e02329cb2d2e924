// Package config loads and stores the editor's settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user settings.
type Config struct {
	// Prompt is shown before each command.
	Prompt string `yaml:"prompt"`
	// InitialCapacity is the slot hint for new buffers.
	InitialCapacity int `yaml:"initial_capacity"`
	// ListWidth truncates listed lines to this many cells; 0 uses the
	// terminal width, or no limit when output is not a terminal.
	ListWidth    int    `yaml:"list_width"`
	EnableLogger bool   `yaml:"enable_logger"`
	LogFile      string `yaml:"log_file"`
	HistoryFile  string `yaml:"history_file"`
	UseReadline  bool   `yaml:"use_readline"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() Config {
	return Config{
		Prompt:          "> ",
		InitialCapacity: 4,
		EnableLogger:    false,
		LogFile:         "lined.log",
		UseReadline:     true,
	}
}

// Path returns the default location of the settings file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lined", "config.yaml"), nil
}

// Load reads the settings at path. Fields missing from the file keep
// their default values; unknown fields are an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = DefaultConfig().InitialCapacity
	}
	return cfg, nil
}

// LoadConfig reads the settings from the default location, falling
// back to DefaultConfig when the file is missing or invalid.
func LoadConfig() Config {
	path, err := Path()
	if err != nil {
		log.Printf("config: %v", err)
		return DefaultConfig()
	}
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: %v", err)
		}
		return DefaultConfig()
	}
	return cfg
}

// Save writes cfg to path, creating the parent directory.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveConfig writes cfg to the default location.
func SaveConfig(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := Save(cfg, path); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", path)
	return nil
}
