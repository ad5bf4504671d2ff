package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Station StationConfig
	Search  SearchConfig
	Logging LogConfig
}

// StationConfig holds station data layout defaults.
type StationConfig struct {
	DataDir      string `envconfig:"DFN_DATA_DIR" default:"."`
	LogExtension string `envconfig:"DFN_LOG_EXT" default:"txt"`
}

// SearchConfig holds recursive log search settings.
type SearchConfig struct {
	Backend string `envconfig:"DFN_SEARCH_BACKEND" default:"walk"`
	FindBin string `envconfig:"DFN_FIND_BIN" default:"find"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Station: StationConfig{
			DataDir:      ".",
			LogExtension: "txt",
		},
		Search: SearchConfig{
			Backend: "walk",
			FindBin: "find",
		},
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
		},
	}
}
