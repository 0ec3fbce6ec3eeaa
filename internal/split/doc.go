// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

// Package split partitions the joined feature rows into train and test
// sets with a seeded permutation, so a fixed seed reproduces the exact
// partition membership run after run.
package split
