// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestMetaSizes(t *testing.T) {
	t.Parallel()

	meta := Meta{
		AgeIndex:    map[int]int{1: 0, 18: 1, 25: 2},
		GenderIndex: map[string]int{"F": 0, "M": 1},
		GenreIndex:  map[string]int{"Animation": 0, "Comedy": 1, "Drama": 2, "Thriller": 3},
		WordIndex:   map[string]int{"Toy": 1, "Story": 2},
	}

	sizes := meta.Sizes()
	if sizes.Ages != 3 {
		t.Errorf("Sizes().Ages = %d, want 3", sizes.Ages)
	}
	if sizes.Genders != 2 {
		t.Errorf("Sizes().Genders = %d, want 2", sizes.Genders)
	}
	if sizes.Genres != 4 {
		t.Errorf("Sizes().Genres = %d, want 4", sizes.Genres)
	}
	if sizes.Words != 2 {
		t.Errorf("Sizes().Words = %d, want 2", sizes.Words)
	}
}

func TestMetaSizes_Empty(t *testing.T) {
	t.Parallel()

	var meta Meta
	sizes := meta.Sizes()
	if sizes != (VocabSizes{}) {
		t.Errorf("Sizes() on zero Meta = %+v, want all zero", sizes)
	}
}

func TestSplitLengths(t *testing.T) {
	t.Parallel()

	s := Split{
		TrainX: make([]FeatureRow, 8),
		TrainY: make([]float64, 8),
		TestX:  make([]FeatureRow, 2),
		TestY:  make([]float64, 2),
	}

	if s.TrainLen() != 8 {
		t.Errorf("TrainLen() = %d, want 8", s.TrainLen())
	}
	if s.TestLen() != 2 {
		t.Errorf("TestLen() = %d, want 2", s.TestLen())
	}
	if s.Total() != 10 {
		t.Errorf("Total() = %d, want 10", s.Total())
	}
}

func TestFeatureRowJSON(t *testing.T) {
	t.Parallel()

	row := FeatureRow{
		UserID:           1,
		MovieID:          1193,
		Gender:           "F",
		Age:              1,
		JobID:            10,
		GenderIndex:      0,
		AgeIndex:         0,
		Title:            "One Flew Over the Cuckoo's Nest (1975)",
		Genres:           "Drama",
		TitleWithoutYear: "One Flew Over the Cuckoo's Nest ",
		Year:             1975,
		GenresMultiHot:   []float64{0, 0, 1},
		TitleIndex:       []int{4, 9, 2, 7, 3, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded FeatureRow
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.TitleWithoutYear != "One Flew Over the Cuckoo's Nest " {
		t.Errorf("TitleWithoutYear lost its trailing space: %q", decoded.TitleWithoutYear)
	}
	if decoded.Year != 1975 {
		t.Errorf("Year = %d, want 1975", decoded.Year)
	}
	if len(decoded.GenresMultiHot) != 3 || decoded.GenresMultiHot[2] != 1 {
		t.Errorf("GenresMultiHot = %v", decoded.GenresMultiHot)
	}
	if len(decoded.TitleIndex) != 15 {
		t.Errorf("len(TitleIndex) = %d, want 15", len(decoded.TitleIndex))
	}
}
