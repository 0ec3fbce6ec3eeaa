// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package database

import (
	"context"
	"fmt"
)

// createTables creates the three source tables. Vector features
// (GenresMultiHot, TitleIndex) never enter the database; they are
// reattached from the in-memory movie slice after the join.
func (db *DB) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id      INTEGER PRIMARY KEY,
			gender       TEXT NOT NULL,
			age          INTEGER NOT NULL,
			job_id       INTEGER NOT NULL,
			gender_index INTEGER NOT NULL,
			age_index    INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS movies (
			movie_id           INTEGER PRIMARY KEY,
			title              TEXT NOT NULL,
			genres             TEXT NOT NULL,
			title_without_year TEXT NOT NULL,
			year               INTEGER NOT NULL
		)`,

		// seq records the position of each rating in ratings.dat so the
		// join can restore file order regardless of execution plan.
		`CREATE TABLE IF NOT EXISTS ratings (
			seq      BIGINT NOT NULL,
			user_id  INTEGER NOT NULL,
			movie_id INTEGER NOT NULL,
			rating   DOUBLE NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}
