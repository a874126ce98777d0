// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config loads the application configuration and resolves the
// database location that both entry points share.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDBPath is used when neither a flag nor the config file names a database.
const DefaultDBPath = "bathtubs.db"

// Config represents the top-level application configuration
type Config struct {
	// DBPath is the SQLite database file holding the bathtubs table
	DBPath string `yaml:"db_path,omitempty"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty"`

	// LogFile overrides the default log file location (optional)
	LogFile string `yaml:"log_file,omitempty"`
}

// Overrides are values given on the command line. Empty fields do not override.
type Overrides struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "bathtub-manager", "config.yaml"), nil
}

// LoadConfig reads the config file at path. A missing file yields an empty Config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func SaveConfig(path string, cfg Config) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(path, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Resolve builds the effective configuration: command-line overrides win over
// the config file, which wins over the built-in defaults. An explicitly named
// config file must exist.
func Resolve(o Overrides) (Config, error) {
	path := o.ConfigPath
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			// Without a config dir there is simply no config file.
			path = ""
		}
	} else if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	var cfg Config
	if path != "" {
		var err error
		cfg, err = LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
	}

	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}

	var err error
	cfg.DBPath, err = ResolvePath(cfg.DBPath)
	if err != nil {
		return Config{}, err
	}
	if cfg.LogFile != "" {
		cfg.LogFile, err = ResolvePath(cfg.LogFile)
		if err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
