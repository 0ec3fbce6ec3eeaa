// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

/*
Package models defines data structures for the Featurelens pipeline.

This package contains the typed forms of the three MovieLens ml-1m tables,
the vocabulary maps produced by the encoder, the denormalized feature rows
produced by the join, and the train/test partition. It serves as the single
source of truth for data structure definitions; every other package imports
it and none of them redefine these shapes.

Key Components:

  - User: one users.dat row plus GenderIndex/AgeIndex
  - Movie: one movies.dat row plus TitleWithoutYear, Year, GenresMultiHot,
    TitleIndex
  - Rating: one ratings.dat row (timestamp dropped)
  - Meta: the four vocabulary maps (age, gender, genre, word)
  - FeatureRow: one joined row with the rating removed
  - Split: TrainX/TrainY/TestX/TestY partition

Data Flow:

	dataset.Load    -> []User, []Movie, []Rating   (raw columns only)
	encode.*        -> fills encoded fields, returns Meta
	database.Join   -> []FeatureRow + []float64 labels
	split.TrainTest -> Split
	persist.Store   -> meta.p, users.p, movies.p, data.p

Serialization:

All models are flat value types serialized two ways:
  - gob inside the persist envelope (meta.p, users.p, movies.p, data.p)
  - JSON in the run manifest (vocabulary sizes and row counts only)

Thread Safety:

All models are plain data structures with no internal synchronization.
They are built once by their producing stage and read-only afterwards.
Per-movie slices in FeatureRow share backing arrays across rows of the
same movie; callers must not mutate them.
*/
package models
