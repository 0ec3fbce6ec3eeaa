// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package config

import (
	"fmt"

	"github.com/tomtom215/featurelens/internal/validation"
)

// Config holds all pipeline configuration.
//
// Loading order (Koanf v2):
//  1. Defaults: built-in values that reproduce the reference ml-1m run exactly
//  2. Config file: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment variables: override any setting
//
// A bare `featurelens` invocation therefore needs no configuration at all:
// it downloads ml-1m.zip into ./data and writes meta.p, users.p, movies.p,
// data.p and manifest.json next to it.
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	// DataDir is the base directory for the downloaded archive and all
	// pipeline outputs. Created if missing.
	DataDir string `koanf:"data_dir" validate:"required"`

	Dataset  DatasetConfig  `koanf:"dataset"`
	Encode   EncodeConfig   `koanf:"encode"`
	Split    SplitConfig    `koanf:"split"`
	Database DatabaseConfig `koanf:"database"`
	Manifest ManifestConfig `koanf:"manifest"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig identifies the source archive.
//
// Environment Variables:
//   - DATASET_URL: archive URL (default: the GroupLens ml-1m mirror)
//   - DATASET_MD5: expected MD5 of the archive, hex (default: published ml-1m value)
//   - DATASET_ARCHIVE: local archive filename under DataDir (default: ml-1m.zip)
type DatasetConfig struct {
	// URL is the fixed remote location of the zip archive.
	URL string `koanf:"url" validate:"required,url"`

	// MD5 is the expected content hash of a fresh download, lowercase hex.
	// A mismatch aborts the run. Pre-existing archives are not re-hashed.
	MD5 string `koanf:"md5" validate:"required,len=32,hexadecimal"`

	// ArchiveName is the filename the archive is stored under inside DataDir.
	ArchiveName string `koanf:"archive_name" validate:"required"`
}

// EncodeConfig tunes the derived encodings.
type EncodeConfig struct {
	// TitleVectorLength is the fixed length of the title word-index vector.
	// The reference pipeline uses 15; consumers trained against it depend
	// on this width.
	TitleVectorLength int `koanf:"title_vector_length" validate:"required,min=1"`
}

// SplitConfig controls the train/test partition.
type SplitConfig struct {
	// TestFraction is the share of joined rows assigned to the test set.
	TestFraction float64 `koanf:"test_fraction" validate:"required,gt=0,lt=1"`

	// Seed drives the shuffle. Same seed + same input order = same membership.
	Seed int64 `koanf:"seed"`
}

// DatabaseConfig holds DuckDB settings for the join stage.
// The engine is transient: tables live only for the duration of the join.
type DatabaseConfig struct {
	// Path is the database file. Empty means in-memory (the default; the
	// join needs no persistence). Set a path to inspect the loaded tables
	// with the duckdb CLI after a run.
	Path string `koanf:"path"`

	// Threads caps DuckDB's internal parallelism. 0 = runtime.NumCPU().
	Threads int `koanf:"threads" validate:"gte=0"`

	// MaxMemory is DuckDB's memory limit, e.g. "2GB". Empty = engine default.
	MaxMemory string `koanf:"max_memory"`
}

// ManifestConfig controls the supplementary JSON run manifest.
type ManifestConfig struct {
	// Enabled writes manifest.json after a successful run.
	Enabled bool `koanf:"enabled"`

	// Filename is the manifest name under DataDir.
	Filename string `koanf:"filename" validate:"required"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=trace debug info warn warning error fatal disabled"`
	Format string `koanf:"format" validate:"required,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load loads the configuration from defaults, optional YAML file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("invalid configuration: %w", verr)
	}
	return nil
}
