// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/featurelens/internal/config"
	"github.com/tomtom215/featurelens/internal/database"
	"github.com/tomtom215/featurelens/internal/dataset"
	"github.com/tomtom215/featurelens/internal/encode"
	"github.com/tomtom215/featurelens/internal/fetch"
	"github.com/tomtom215/featurelens/internal/logging"
	"github.com/tomtom215/featurelens/internal/models"
	"github.com/tomtom215/featurelens/internal/persist"
	"github.com/tomtom215/featurelens/internal/split"
)

// RatingStats summarizes the label column of the joined table.
type RatingStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// StageTiming records how long one pipeline stage took.
type StageTiming struct {
	Name       string `json:"name"`
	DurationMS int64  `json:"duration_ms"`
}

// Result summarizes a completed pipeline run.
type Result struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	DurationMS int64     `json:"duration_ms"`

	ArchivePath string `json:"archive_path"`

	Users   int `json:"users"`
	Movies  int `json:"movies"`
	Ratings int `json:"ratings"`
	Joined  int `json:"joined_rows"`
	Train   int `json:"train_rows"`
	Test    int `json:"test_rows"`

	Vocab       models.VocabSizes      `json:"vocab_sizes"`
	RatingStats RatingStats            `json:"rating_stats"`
	Stages      []StageTiming          `json:"stages"`
	Artifacts   []persist.ArtifactInfo `json:"artifacts"`
}

func (r *Result) recordStage(name string, started time.Time) {
	r.Stages = append(r.Stages, StageTiming{
		Name:       name,
		DurationMS: time.Since(started).Milliseconds(),
	})
}

// Run executes the full pipeline: ensure the archive, parse the three
// tables, encode features, join, split, and persist the four artifacts.
// Stages run strictly in that order; the first failing stage aborts the
// run with nothing retried.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	started := time.Now()
	result := &Result{RunID: uuid.NewString(), StartedAt: started}

	logging.Info().
		Str("run_id", result.RunID).
		Str("data_dir", cfg.DataDir).
		Msg("Pipeline starting")

	stageStart := time.Now()
	fetcher := fetch.New(cfg.Dataset, nil)
	archivePath, err := fetcher.Ensure(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("fetch stage: %w", err)
	}
	result.ArchivePath = archivePath
	result.recordStage("fetch", stageStart)

	stageStart = time.Now()
	tables, err := dataset.Load(archivePath)
	if err != nil {
		return nil, fmt.Errorf("parse stage: %w", err)
	}
	result.Users = len(tables.Users)
	result.Movies = len(tables.Movies)
	result.Ratings = len(tables.Ratings)
	result.recordStage("parse", stageStart)

	stageStart = time.Now()
	genderIndex, ageIndex, err := encode.EncodeUsers(tables.Users)
	if err != nil {
		return nil, fmt.Errorf("encode stage: %w", err)
	}
	genreIndex, wordIndex, err := encode.EncodeMovies(tables.Movies, cfg.Encode.TitleVectorLength)
	if err != nil {
		return nil, fmt.Errorf("encode stage: %w", err)
	}
	meta := models.Meta{
		AgeIndex:    ageIndex,
		GenderIndex: genderIndex,
		GenreIndex:  genreIndex,
		WordIndex:   wordIndex,
	}
	result.Vocab = meta.Sizes()
	result.recordStage("encode", stageStart)

	stageStart = time.Now()
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("join stage: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Join database close failed")
		}
	}()

	if err := db.LoadTables(ctx, tables.Users, tables.Movies, tables.Ratings); err != nil {
		return nil, fmt.Errorf("join stage: %w", err)
	}
	features, labels, err := db.JoinRatings(ctx, tables.Movies)
	if err != nil {
		return nil, fmt.Errorf("join stage: %w", err)
	}
	result.Joined = len(features)
	result.RatingStats = ratingStats(labels)
	result.recordStage("join", stageStart)

	stageStart = time.Now()
	partition, err := split.TrainTest(features, labels, cfg.Split.TestFraction, cfg.Split.Seed)
	if err != nil {
		return nil, fmt.Errorf("split stage: %w", err)
	}
	result.Train = partition.TrainLen()
	result.Test = partition.TestLen()
	result.recordStage("split", stageStart)

	stageStart = time.Now()
	store, err := persist.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("persist stage: %w", err)
	}
	artifacts := []struct {
		name string
		data interface{}
	}{
		{persist.FileMeta, meta},
		{persist.FileUsers, tables.Users},
		{persist.FileMovies, tables.Movies},
		{persist.FileData, partition},
	}
	for _, a := range artifacts {
		info, err := store.Save(ctx, a.name, a.data)
		if err != nil {
			return nil, fmt.Errorf("persist stage: %w", err)
		}
		result.Artifacts = append(result.Artifacts, *info)
	}
	result.recordStage("persist", stageStart)

	result.FinishedAt = time.Now()
	result.DurationMS = result.FinishedAt.Sub(started).Milliseconds()

	if cfg.Manifest.Enabled {
		if err := writeManifest(cfg, result); err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
	}

	logging.Info().
		Str("run_id", result.RunID).
		Int("joined_rows", result.Joined).
		Int("train", result.Train).
		Int("test", result.Test).
		Int64("duration_ms", result.DurationMS).
		Msg("Pipeline finished")

	return result, nil
}

// ratingStats computes the label distribution. StdDev needs at least two
// samples; below that it stays 0 so the manifest never carries a NaN.
func ratingStats(labels []float64) RatingStats {
	if len(labels) == 0 {
		return RatingStats{}
	}
	rs := RatingStats{
		Mean: stat.Mean(labels, nil),
		Min:  floats.Min(labels),
		Max:  floats.Max(labels),
	}
	if len(labels) > 1 {
		rs.StdDev = stat.StdDev(labels, nil)
	}

	logging.Info().
		Float64("mean", rs.Mean).
		Float64("std_dev", rs.StdDev).
		Float64("min", rs.Min).
		Float64("max", rs.Max).
		Msg("Rating distribution")

	return rs
}
