// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package encode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tomtom215/featurelens/internal/logging"
	"github.com/tomtom215/featurelens/internal/models"
)

// titlePattern splits "<text>(<year>)" anchored at both ends. The leading
// group is greedy, so a title with several parenthesized groups keeps all
// but the last one, and any text before the final "(" survives verbatim,
// trailing space included.
var titlePattern = regexp.MustCompile(`^(.*)\((\d+)\)$`)

var (
	// ErrTitleFormat reports a movie title without the parenthesized year
	// suffix. The pipeline treats this as fatal rather than guessing a year.
	ErrTitleFormat = errors.New("title does not match \"<text> (<year>)\"")

	// ErrUnknownToken reports a value missing from its vocabulary map.
	// Unreachable when vocabularies are built from the same corpus they are
	// applied to, but callers reusing a persisted vocabulary can hit it.
	ErrUnknownToken = errors.New("token not in vocabulary")
)

// EncodeUsers fills GenderIndex and AgeIndex on every user in place and
// returns the two vocabulary maps. Gender uses the fixed {F:0, M:1}
// mapping; age brackets get dense indices in order of first appearance.
func EncodeUsers(users []models.User) (map[string]int, map[int]int, error) {
	genderIndex := map[string]int{"F": 0, "M": 1}
	ageIndex := make(map[int]int)

	for i := range users {
		u := &users[i]
		gi, ok := genderIndex[u.Gender]
		if !ok {
			return nil, nil, fmt.Errorf("user %d: gender %q: %w", u.UserID, u.Gender, ErrUnknownToken)
		}
		ai, ok := ageIndex[u.Age]
		if !ok {
			ai = len(ageIndex)
			ageIndex[u.Age] = ai
		}
		u.GenderIndex = gi
		u.AgeIndex = ai
	}

	logging.Info().
		Int("users", len(users)).
		Int("age_brackets", len(ageIndex)).
		Msg("Encoded user features")

	return genderIndex, ageIndex, nil
}

// EncodeMovies derives TitleWithoutYear, Year, GenresMultiHot and
// TitleIndex on every movie in place and returns the genre and word
// vocabulary maps. Genre indices start at 0; word indices start at 1 with
// 0 reserved as the title vector padding value. Both vocabularies assign
// indices in order of first appearance across the corpus, so the same
// archive always yields the same maps.
func EncodeMovies(movies []models.Movie, titleLength int) (map[string]int, map[string]int, error) {
	if titleLength < 1 {
		return nil, nil, fmt.Errorf("title vector length %d, want at least 1", titleLength)
	}

	for i := range movies {
		m := &movies[i]
		base, year, err := SplitTitle(m.Title)
		if err != nil {
			return nil, nil, fmt.Errorf("movie %d: %w", m.MovieID, err)
		}
		m.TitleWithoutYear = base
		m.Year = year
	}

	genreIndex := make(map[string]int)
	for i := range movies {
		for _, g := range strings.Split(movies[i].Genres, "|") {
			if _, ok := genreIndex[g]; !ok {
				genreIndex[g] = len(genreIndex)
			}
		}
	}

	wordIndex := make(map[string]int)
	for i := range movies {
		for _, w := range strings.Fields(movies[i].TitleWithoutYear) {
			if _, ok := wordIndex[w]; !ok {
				wordIndex[w] = len(wordIndex) + 1
			}
		}
	}

	for i := range movies {
		m := &movies[i]
		multiHot, err := GenresVector(m.Genres, genreIndex)
		if err != nil {
			return nil, nil, fmt.Errorf("movie %d: %w", m.MovieID, err)
		}
		titleVec, err := TitleVector(m.TitleWithoutYear, wordIndex, titleLength)
		if err != nil {
			return nil, nil, fmt.Errorf("movie %d: %w", m.MovieID, err)
		}
		m.GenresMultiHot = multiHot
		m.TitleIndex = titleVec
	}

	logging.Info().
		Int("movies", len(movies)).
		Int("genres", len(genreIndex)).
		Int("title_words", len(wordIndex)).
		Msg("Encoded movie features")

	return genreIndex, wordIndex, nil
}

// SplitTitle separates the parenthesized year suffix from a movie title.
// The returned base keeps whatever whitespace preceded the year group.
func SplitTitle(title string) (string, int, error) {
	m := titlePattern.FindStringSubmatch(title)
	if m == nil {
		return "", 0, fmt.Errorf("%q: %w", title, ErrTitleFormat)
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, fmt.Errorf("%q: year %q: %w", title, m[2], ErrTitleFormat)
	}
	return m[1], year, nil
}

// GenresVector expands a pipe-delimited genre list into a multi-hot vector
// over the full genre vocabulary, one element set to 1 per genre.
func GenresVector(genres string, genreIndex map[string]int) ([]float64, error) {
	vec := make([]float64, len(genreIndex))
	for _, g := range strings.Split(genres, "|") {
		idx, ok := genreIndex[g]
		if !ok {
			return nil, fmt.Errorf("genre %q: %w", g, ErrUnknownToken)
		}
		vec[idx] = 1
	}
	return vec, nil
}

// TitleVector converts a year-stripped title into a fixed-length vector of
// word vocabulary indices, zero-padded past the last word.
//
// Titles with more than length words take the overflow branch below
// instead of indexing their word list.
func TitleVector(titleWithoutYear string, wordIndex map[string]int, length int) ([]int, error) {
	words := strings.Fields(titleWithoutYear)
	if len(words) > length {
		return overflowTitleVector(titleWithoutYear, length), nil
	}
	vec := make([]int, length)
	for i, w := range words {
		idx, ok := wordIndex[w]
		if !ok {
			return nil, fmt.Errorf("title word %q: %w", w, ErrUnknownToken)
		}
		vec[i] = idx
	}
	return vec, nil
}

// overflowTitleVector fills the vector with the code points of the first
// length characters of the raw title. Compatibility constraint: the pandas
// recipe this pipeline reproduces indexes the title string itself, not the
// word list, whenever the word count exceeds the vector length, and encoded
// output must match it byte for byte. Kept bug-for-bug.
func overflowTitleVector(title string, length int) []int {
	vec := make([]int, length)
	for i, r := range []rune(title) {
		if i == length {
			break
		}
		vec[i] = int(r)
	}
	return vec
}
