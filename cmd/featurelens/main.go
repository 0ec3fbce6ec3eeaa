// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

// Package main is the entry point for the featurelens pipeline.
//
// Featurelens downloads the MovieLens ml-1m archive, parses its three
// tables, derives the classic categorical and text encodings, joins
// everything into one denormalized table and writes train/test partitions
// plus the vocabulary maps to disk.
//
// # Pipeline Stages
//
// A run executes the stages strictly in order:
//
//  1. Fetch: ensure ml-1m.zip exists under DATA_DIR, downloading and
//     MD5-verifying it when absent
//  2. Parse: read users.dat, movies.dat and ratings.dat out of the archive
//  3. Encode: gender/age indices, genre multi-hot, title word vectors
//  4. Join: denormalize ratings with user and movie features via DuckDB
//  5. Split: seeded 80/20 train/test partition
//  6. Persist: write meta.p, users.p, movies.p, data.p and manifest.json
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (DATA_DIR, DATASET_URL, SPLIT_SEED, ...)
//   - Config file (config.yaml or CONFIG_PATH)
//   - Built-in defaults that reproduce the reference ml-1m run
//
// # Example Usage
//
// Default run (downloads into ./data):
//
//	./featurelens
//
// Re-split an already downloaded archive with a different seed:
//
//	export DATA_DIR=/srv/ml-1m
//	export SPLIT_SEED=42
//	./featurelens
//
// # Exit Behavior
//
// The process exits 0 after all artifacts are written. Any stage failure
// (checksum mismatch, malformed record, title without a year) logs the
// failing stage and exits non-zero. SIGINT and SIGTERM cancel the run;
// a partial download is removed, already-written artifacts are kept.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/featurelens/internal/config"
	"github.com/tomtom215/featurelens/internal/logging"
	"github.com/tomtom215/featurelens/internal/pipeline"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("data_dir", cfg.DataDir).
		Str("dataset_url", cfg.Dataset.URL).
		Int64("split_seed", cfg.Split.Seed).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Pipeline failed")
	}

	logging.Info().
		Str("run_id", result.RunID).
		Str("archive", result.ArchivePath).
		Int("joined_rows", result.Joined).
		Int("train_rows", result.Train).
		Int("test_rows", result.Test).
		Msg("All artifacts written")
}
