// Package config provides 12-factor configuration for the station tools.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Station: default data directory and log file extension
//   - Search: recursive log search backend (walk or find)
//   - Logging: log level and output format
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	finder := locate.NewFinder(locate.Backend(cfg.Search.Backend), logger)
//
// Environment Variables:
//   - DFN_DATA_DIR, DFN_LOG_EXT
//   - DFN_SEARCH_BACKEND, DFN_FIND_BIN
//   - LOG_LEVEL, LOG_DEV
package config
