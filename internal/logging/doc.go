// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

// Package logging provides centralized zerolog-based structured logging for Featurelens.
//
// This package implements a unified logging layer using zerolog, providing
// zero-allocation structured JSON logging for production and human-readable
// console output for interactive runs. Every pipeline stage logs through the
// package-level functions, so a single Init call from main controls level,
// format and destination for the whole process.
//
// # Quick Start
//
//	import "github.com/tomtom215/featurelens/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log messages with structured fields
//	logging.Info().Int("ratings", n).Msg("Parsed ratings table")
//	logging.Error().Err(err).Str("url", url).Msg("Download failed")
//
// # Configuration
//
// Environment Variables (wired through internal/config):
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// Programmatic Configuration:
//
//	logging.Init(logging.Config{
//	    Level:     "debug",    // trace, debug, info, warn, error, fatal
//	    Format:    "console",  // json or console
//	    Caller:    true,       // Include caller info
//	    Timestamp: true,       // Include timestamps
//	    Output:    os.Stderr,  // Output writer
//	})
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(); an unterminated chain
// is silently dropped by zerolog:
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting so log consumers can
// filter on them:
//
//	logging.Info().Int("rows", n).Str("stage", "join").Msg("stage done")  // Correct
//	logging.Info().Msgf("join produced %d rows", n)                       // Avoid
//
// # Testing
//
// Tests capture output by swapping the global logger:
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
package logging
