package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"vincit.fi/exif-renamer/common/constants"
	"vincit.fi/exif-renamer/common/logger"
)

// Config is read from a YAML file. Keys the program does not know are
// ignored.
type Config struct {
	DefaultFolder     string `yaml:"default_folder"`
	LogLevel          string `yaml:"log_level"`
	HistoryDir        string `yaml:"history_dir"`
	EventBusQueueSize int    `yaml:"event_bus_queue_size"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultFolder:     "",
		LogLevel:          constants.DefaultLogLevel,
		HistoryDir:        "",
		EventBusQueueSize: constants.EventBusQueue,
	}
}

// LoadConfig reads the configuration from path. A missing file is not an
// error: the defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug.Printf("No configuration file '%s', using defaults", path)
		return config, nil
	} else if err != nil {
		return config, fmt.Errorf("reading configuration %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing configuration %s: %w", path, err)
	}
	config.applyDefaults()

	logger.Debug.Printf("Loaded configuration from '%s'", path)
	return config, nil
}

func (s *Config) applyDefaults() {
	defaults := DefaultConfig()
	if s.LogLevel == "" {
		s.LogLevel = defaults.LogLevel
	}
	if s.EventBusQueueSize <= 0 {
		s.EventBusQueueSize = defaults.EventBusQueueSize
	}
}

// DefaultConfigPath is the configuration file in the user's application
// directory.
func DefaultConfigPath() string {
	if home, err := os.UserHomeDir(); err != nil {
		return constants.ConfigFile
	} else {
		return filepath.Join(home, constants.AppDir, constants.ConfigFile)
	}
}

// ResolveLogLevel prefers the command line over the configuration file.
func (s *Config) ResolveLogLevel(params *Params) logger.LogLevel {
	if params != nil && params.LogLevel() != "" {
		return logger.StringToLogLevel(params.LogLevel())
	}
	return logger.StringToLogLevel(s.LogLevel)
}

// ResolveFolder returns the folder to browse: the command line argument,
// then the configured default folder, then the working directory.
func (s *Config) ResolveFolder(params *Params) (string, error) {
	if params != nil && params.RootPath() != "" {
		return params.RootPath(), nil
	}
	if s.DefaultFolder != "" {
		return s.DefaultFolder, nil
	}
	return os.Getwd()
}

// ResolveHistoryDir returns the directory that holds the rename journal.
func (s *Config) ResolveHistoryDir() (string, error) {
	if s.HistoryDir != "" {
		return s.HistoryDir, nil
	}
	return os.UserHomeDir()
}
