// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Both write to stderr by default; stdout is reserved for command results.
//
// Example Usage:
//
//	logger, err := logging.NewAtLevel("warn", false)
//	if err != nil {
//		return err
//	}
//	logger.Warn("Several camera config files found", zap.Strings("candidates", files))
package logging
