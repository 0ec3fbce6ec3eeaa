// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

/*
Package main is the entry point for the featurelens pipeline.

Featurelens turns the raw MovieLens ml-1m archive into training-ready
artifacts: dense categorical encodings, a genre multi-hot vector and a
fixed-length title word vector per movie, one denormalized feature row per
rating, and a seeded 80/20 train/test split. The output matches the classic
pandas pre-processing recipe used by recommender tutorials, including its
documented quirks, so models trained against either produce the same
results.

# Pipeline Stages

A run executes six stages strictly in order; the first error aborts the run
and nothing downstream is written:

	fetch    ensure ml-1m.zip exists, download + MD5 verify when absent
	parse    read users.dat, movies.dat, ratings.dat out of the archive
	encode   gender/age indices, genre multi-hot, title word vectors
	join     denormalize ratings with user and movie features (DuckDB)
	split    seeded permutation into train and test partitions
	persist  write artifacts and the run manifest

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority
wins):

	Priority: Environment variables > Config file > Defaults

The built-in defaults reproduce the reference ml-1m run, so a bare
invocation needs no configuration at all. Environment variables:

	# Paths
	DATA_DIR=./data              # archive, artifacts and manifest live here
	CONFIG_PATH=config.yaml      # optional explicit config file location

	# Dataset
	DATASET_URL=http://files.grouplens.org/datasets/movielens/ml-1m.zip
	DATASET_MD5=c4d9eecfca2ab87c1945afe126590906
	DATASET_ARCHIVE=ml-1m.zip    # file name under DATA_DIR

	# Encoding and split
	TITLE_VECTOR_LENGTH=15       # title word vector length
	TEST_FRACTION=0.2            # test share, exclusive (0,1)
	SPLIT_SEED=0                 # permutation seed

	# DuckDB staging
	DUCKDB_PATH=                 # empty = in-memory
	DUCKDB_THREADS=0             # 0 = one per CPU
	DUCKDB_MAX_MEMORY=           # empty = engine default (e.g. 4GB)

	# Manifest
	MANIFEST_ENABLED=true
	MANIFEST_FILENAME=manifest.json

	# Logging
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	LOG_CALLER=false

# Output Artifacts

All outputs land under DATA_DIR:

	ml-1m.zip        the verified source archive (kept for re-runs)
	meta.p           the four vocabulary maps (age, gender, genre, word)
	users.p          users with encoded gender/age indices
	movies.p         movies with title/year split, multi-hot, word vector
	data.p           train/test feature rows and rating labels
	manifest.json    run id, timings, row counts, artifact checksums

The .p artifacts are opaque binary blobs; reload them through the persist
package, which verifies a SHA-256 checksum embedded at write time.

# Signal Handling

SIGINT and SIGTERM cancel the run. A partial download is removed so the
next run starts clean; artifacts already written keep their contents from
the previous completed run.

# Usage Examples

Default run (downloads ~6M ratings into ./data on first use):

	./featurelens

Re-split an existing archive with a different seed, console logs:

	export DATA_DIR=/srv/ml-1m
	export SPLIT_SEED=42
	export LOG_FORMAT=console
	./featurelens

Spill the join to disk on small machines:

	export DUCKDB_PATH=/tmp/featurelens.db
	export DUCKDB_MAX_MEMORY=1GB
	./featurelens
*/
package main
