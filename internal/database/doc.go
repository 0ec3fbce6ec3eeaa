// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

/*
Package database stages the parsed MovieLens tables in DuckDB and runs the
denormalizing join that turns ratings into feature rows.

# Overview

The pipeline is batch-shaped: it loads the users, movies and ratings tables
once, runs a single join, and discards the database. New opens an embedded
DuckDB instance (in-memory unless a path is configured), LoadTables inserts
the three tables inside one transaction, and JoinRatings produces one
denormalized row per rating that references a known user and a known movie.

# Row Order

Downstream train/test splitting is a seeded permutation over row positions,
so join output order must be reproducible. Each rating is inserted with a
seq column recording its position in ratings.dat, and the join orders by it.
DuckDB parallelizes joins and does not guarantee result order otherwise.

# Vector Features

The genre multi-hot and title word vectors never enter the database. They
are attached to each joined row from the encoded movie set after scanning,
keyed by movie_id.
*/
package database
