// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/featurelens/internal/logging"
	"github.com/tomtom215/featurelens/internal/models"
)

// joinQuery denormalizes ratings with user and movie attributes. Both
// joins are inner, so a rating pointing at a missing user or movie
// silently drops out. ORDER BY seq restores ratings-file order.
const joinQuery = `
	SELECT r.rating,
	       r.user_id, r.movie_id,
	       u.gender, u.age, u.job_id, u.gender_index, u.age_index,
	       m.title, m.genres, m.title_without_year, m.year
	FROM ratings r
	JOIN users  u ON u.user_id  = r.user_id
	JOIN movies m ON m.movie_id = r.movie_id
	ORDER BY r.seq`

// JoinRatings runs the two-way inner join and materializes one feature row
// plus one label per surviving rating, in ratings-file order. The movies
// slice supplies the vector features, which never went through SQL; rows
// for the same movie share those slices.
func (db *DB) JoinRatings(ctx context.Context, movies []models.Movie) ([]models.FeatureRow, []float64, error) {
	byID := make(map[int]*models.Movie, len(movies))
	for i := range movies {
		byID[movies[i].MovieID] = &movies[i]
	}

	rows, err := db.conn.QueryContext(ctx, joinQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to join ratings: %w", err)
	}
	defer closeQuietly(rows)

	var features []models.FeatureRow
	var labels []float64
	for rows.Next() {
		var fr models.FeatureRow
		var label float64
		if err := rows.Scan(
			&label,
			&fr.UserID, &fr.MovieID,
			&fr.Gender, &fr.Age, &fr.JobID, &fr.GenderIndex, &fr.AgeIndex,
			&fr.Title, &fr.Genres, &fr.TitleWithoutYear, &fr.Year,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan joined row: %w", err)
		}
		m, ok := byID[fr.MovieID]
		if !ok {
			return nil, nil, fmt.Errorf("joined row references movie %d not present in encoded set", fr.MovieID)
		}
		fr.GenresMultiHot = m.GenresMultiHot
		fr.TitleIndex = m.TitleIndex
		features = append(features, fr)
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read join result: %w", err)
	}

	logging.Info().
		Int("rows", len(features)).
		Msg("Joined ratings with user and movie features")

	return features, labels, nil
}
