// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/featurelens/internal/logging"
	"github.com/tomtom215/featurelens/internal/models"
)

// LoadTables inserts the three encoded tables in a single transaction.
// Ratings keep their file position in the seq column.
func (db *DB) LoadTables(ctx context.Context, users []models.User, movies []models.Movie, ratings []models.Rating) (err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Msg("Transaction rollback failed")
			}
		}
	}()

	if err = insertUsers(ctx, tx, users); err != nil {
		return err
	}
	if err = insertMovies(ctx, tx, movies); err != nil {
		return err
	}
	if err = insertRatings(ctx, tx, ratings); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logging.Info().
		Int("users", len(users)).
		Int("movies", len(movies)).
		Int("ratings", len(ratings)).
		Msg("Loaded tables into join database")

	return nil
}

func insertUsers(ctx context.Context, tx *sql.Tx, users []models.User) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO users (user_id, gender, age, job_id, gender_index, age_index)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare users insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, u := range users {
		if _, err := stmt.ExecContext(ctx, u.UserID, u.Gender, u.Age, u.JobID, u.GenderIndex, u.AgeIndex); err != nil {
			return fmt.Errorf("failed to insert user %d: %w", u.UserID, err)
		}
	}
	return nil
}

func insertMovies(ctx context.Context, tx *sql.Tx, movies []models.Movie) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO movies (movie_id, title, genres, title_without_year, year)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare movies insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, m := range movies {
		if _, err := stmt.ExecContext(ctx, m.MovieID, m.Title, m.Genres, m.TitleWithoutYear, m.Year); err != nil {
			return fmt.Errorf("failed to insert movie %d: %w", m.MovieID, err)
		}
	}
	return nil
}

func insertRatings(ctx context.Context, tx *sql.Tx, ratings []models.Rating) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO ratings (seq, user_id, movie_id, rating)
		 VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare ratings insert: %w", err)
	}
	defer closeQuietly(stmt)

	for i, r := range ratings {
		if _, err := stmt.ExecContext(ctx, i, r.UserID, r.MovieID, r.Rating); err != nil {
			return fmt.Errorf("failed to insert rating %d: %w", i, err)
		}
	}
	return nil
}
