// Package logger provides a structured logging facility based on Zap.
//
// All output goes to stderr: stdout is reserved for the listing itself, and the
// diagnostic channel carries page failures and run summaries.
//
// # Run Correlation
//
// WithRunID attaches a random run_id to a logger so that every line emitted by one
// invocation can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Warn("Listing truncated", zap.Error(err))
package logger
