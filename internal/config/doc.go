// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

/*
Package config provides centralized configuration management for Featurelens.

Configuration is loaded through three Koanf v2 layers with clear precedence
(ENV > file > defaults). The defaults reproduce the reference ml-1m
pre-processing run exactly, so running the tool with no configuration at all
is the common case.

# Configuration Sources

  - Built-in defaults (always present)
  - Optional YAML file: ./config.yaml, ./config.yml,
    /etc/featurelens/config.{yaml,yml}, or the file named by CONFIG_PATH
  - Environment variables (highest priority)

# Environment Variables

Dataset:
  - DATASET_URL: archive URL
    (default: http://files.grouplens.org/datasets/movielens/ml-1m.zip)
  - DATASET_MD5: expected archive MD5, 32 hex chars
  - DATASET_ARCHIVE: local archive filename (default: ml-1m.zip)

Pipeline:
  - DATA_DIR: base output directory (default: ./data)
  - TITLE_VECTOR_LENGTH: title word-vector width (default: 15)
  - TEST_FRACTION: test partition share (default: 0.2)
  - SPLIT_SEED: shuffle seed (default: 0)

Join engine:
  - DUCKDB_PATH: database file; empty = in-memory (default)
  - DUCKDB_THREADS: engine threads; 0 = CPU count
  - DUCKDB_MAX_MEMORY: engine memory limit, e.g. "2GB"; empty = engine default

Output:
  - MANIFEST_ENABLED: write manifest.json after a run (default: true)
  - MANIFEST_FILENAME: manifest name under DATA_DIR (default: manifest.json)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("failed to load config")
	}
	fetcher := fetch.New(cfg.Dataset, nil)

# Validation

Load() validates the assembled configuration with struct tags via the
validation package: URL format, 32-hex MD5, fraction in (0,1), vector
length >= 1, and log level/format membership. A validation failure lists
every offending field in one error.
*/
package config
