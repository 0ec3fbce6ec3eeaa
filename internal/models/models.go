// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package models

// User represents one row of ml-1m/users.dat plus its encoded features.
//
// The raw file carries five columns (UserID, Gender, Age, JobID, Zip-code);
// the Zip-code column is parsed past and dropped. GenderIndex and AgeIndex
// are filled in by the encoder:
//   - GenderIndex: fixed mapping F=0, M=1
//   - AgeIndex: dense zero-based index over observed age brackets,
//     first-appearance order
type User struct {
	UserID int    `json:"user_id"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
	JobID  int    `json:"job_id"`

	// Encoded features
	GenderIndex int `json:"gender_index"`
	AgeIndex    int `json:"age_index"`
}

// Movie represents one row of ml-1m/movies.dat plus its encoded features.
//
// The raw columns are MovieID, Title (with an embedded "(year)" suffix) and
// Genres (pipe-delimited). The encoder derives:
//   - TitleWithoutYear: Title with the "(year)" suffix stripped; a trailing
//     space before the parenthesis is kept
//   - Year: the four digits inside the parenthesis
//   - GenresMultiHot: one slot per known genre, 1 where the movie carries it
//   - TitleIndex: fixed-length vector of word-vocabulary indices, 0-padded
type Movie struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
	Genres  string `json:"genres"`

	// Encoded features
	TitleWithoutYear string    `json:"title_without_year"`
	Year             int       `json:"year"`
	GenresMultiHot   []float64 `json:"genres_multi_hot"`
	TitleIndex       []int     `json:"title_index"`
}

// Rating represents one row of ml-1m/ratings.dat. The timestamp column is
// parsed past and dropped.
type Rating struct {
	UserID  int     `json:"user_id"`
	MovieID int     `json:"movie_id"`
	Rating  float64 `json:"rating"`
}

// Meta bundles the four vocabulary maps computed from the full corpus.
// Downstream consumers need the identical mappings to interpret the encoded
// feature vectors, so Meta is persisted alongside the data.
//
// Field order matches the serialized tuple: age, gender, genre, word.
type Meta struct {
	AgeIndex    map[int]int    `json:"age_index"`
	GenderIndex map[string]int `json:"gender_index"`
	GenreIndex  map[string]int `json:"genre_index"`
	WordIndex   map[string]int `json:"word_index"`
}

// VocabSizes summarizes the cardinality of each vocabulary in Meta.
type VocabSizes struct {
	Ages    int `json:"ages"`
	Genders int `json:"genders"`
	Genres  int `json:"genres"`
	Words   int `json:"words"`
}

// Sizes returns the cardinality of each vocabulary map.
func (m *Meta) Sizes() VocabSizes {
	return VocabSizes{
		Ages:    len(m.AgeIndex),
		Genders: len(m.GenderIndex),
		Genres:  len(m.GenreIndex),
		Words:   len(m.WordIndex),
	}
}

// FeatureRow is one denormalized row of the joined ratings-users-movies
// table, with the rating itself removed into the parallel labels slice.
//
// Field order follows the join: the two keys from the ratings table, the
// user columns, then the movie columns. Per-movie slices (GenresMultiHot,
// TitleIndex) share backing arrays across rows for the same movie; rows are
// read-only after the join.
type FeatureRow struct {
	UserID  int `json:"user_id"`
	MovieID int `json:"movie_id"`

	// User columns
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	JobID       int    `json:"job_id"`
	GenderIndex int    `json:"gender_index"`
	AgeIndex    int    `json:"age_index"`

	// Movie columns
	Title            string    `json:"title"`
	Genres           string    `json:"genres"`
	TitleWithoutYear string    `json:"title_without_year"`
	Year             int       `json:"year"`
	GenresMultiHot   []float64 `json:"genres_multi_hot"`
	TitleIndex       []int     `json:"title_index"`
}

// Split holds the shuffled 80/20 partition of the joined corpus.
// X slices carry feature rows, Y slices the matching rating labels;
// TrainX[i] pairs with TrainY[i], TestX[i] with TestY[i].
type Split struct {
	TrainX []FeatureRow `json:"train_x"`
	TrainY []float64    `json:"train_y"`
	TestX  []FeatureRow `json:"test_x"`
	TestY  []float64    `json:"test_y"`
}

// TrainLen returns the number of training rows.
func (s *Split) TrainLen() int { return len(s.TrainX) }

// TestLen returns the number of holdout rows.
func (s *Split) TestLen() int { return len(s.TestX) }

// Total returns the number of rows across both partitions.
func (s *Split) Total() int { return len(s.TrainX) + len(s.TestX) }
