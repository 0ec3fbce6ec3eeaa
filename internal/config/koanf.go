// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/featurelens/config.yaml",
	"/etc/featurelens/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default filled in. These values
// reproduce the reference ml-1m pre-processing run without any overrides.
func defaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Dataset: DatasetConfig{
			URL:         "http://files.grouplens.org/datasets/movielens/ml-1m.zip",
			MD5:         "c4d9eecfca2ab87c1945afe126590906",
			ArchiveName: "ml-1m.zip",
		},
		Encode: EncodeConfig{
			TitleVectorLength: 15,
		},
		Split: SplitConfig{
			TestFraction: 0.2,
			Seed:         0,
		},
		Database: DatabaseConfig{
			Path:      "", // in-memory
			Threads:   0,  // runtime.NumCPU()
			MaxMemory: "",
		},
		Manifest: ManifestConfig{
			Enabled:  true,
			Filename: "manifest.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in values
//  2. Config file: optional YAML file (if found)
//  3. Environment variables: highest priority
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	// DATASET_URL -> dataset.url, LOG_LEVEL -> logging.level, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches CONFIG_PATH and then the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps environment variable names to koanf config paths.
// Unmapped variables are skipped so that unrelated environment noise never
// reaches the configuration tree.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		"data_dir": "data_dir",

		// Dataset mappings
		"dataset_url":     "dataset.url",
		"dataset_md5":     "dataset.md5",
		"dataset_archive": "dataset.archive_name",

		// Encoding mappings
		"title_vector_length": "encode.title_vector_length",

		// Split mappings
		"test_fraction": "split.test_fraction",
		"split_seed":    "split.seed",

		// Database mappings
		"duckdb_path":       "database.path",
		"duckdb_threads":    "database.threads",
		"duckdb_max_memory": "database.max_memory",

		// Manifest mappings
		"manifest_enabled":  "manifest.enabled",
		"manifest_filename": "manifest.filename",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	return ""
}
