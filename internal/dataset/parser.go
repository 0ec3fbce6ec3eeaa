// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package dataset

import (
	"archive/zip"
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/tomtom215/featurelens/internal/logging"
	"github.com/tomtom215/featurelens/internal/models"
)

// Archive entry names inside ml-1m.zip.
const (
	UsersEntry   = "ml-1m/users.dat"
	MoviesEntry  = "ml-1m/movies.dat"
	RatingsEntry = "ml-1m/ratings.dat"
)

// Expected field counts per record, before column dropping.
const (
	userFields   = 5 // UserID::Gender::Age::JobID::Zip-code
	movieFields  = 3 // MovieID::Title::Genres
	ratingFields = 4 // UserID::MovieID::Rating::Timestamp
)

// maxLineSize bounds a single .dat record; the longest ml-1m line is well
// under 1 KiB but a corrupt archive must not OOM the scanner.
const maxLineSize = 1024 * 1024

// Tables holds the three parsed source tables with raw columns only;
// encoded fields are zero until the encoder fills them.
type Tables struct {
	Users   []models.User
	Movies  []models.Movie
	Ratings []models.Rating
}

// Load opens the archive and parses the three .dat entries directly from
// the zip reader, never extracting to disk. Entries are ISO-8859-1 and are
// decoded to UTF-8 on read.
func Load(archivePath string) (*Tables, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer zr.Close()

	users, err := loadUsers(&zr.Reader)
	if err != nil {
		return nil, err
	}
	movies, err := loadMovies(&zr.Reader)
	if err != nil {
		return nil, err
	}
	ratings, err := loadRatings(&zr.Reader)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int("users", len(users)).
		Int("movies", len(movies)).
		Int("ratings", len(ratings)).
		Msg("Parsed dataset tables")

	return &Tables{Users: users, Movies: movies, Ratings: ratings}, nil
}

// loadUsers parses ml-1m/users.dat. The trailing Zip-code column is parsed
// past and dropped.
func loadUsers(zr *zip.Reader) ([]models.User, error) {
	var users []models.User
	err := forEachRecord(zr, UsersEntry, userFields, func(lineNo int, f []string) error {
		id, err := strconv.Atoi(f[0])
		if err != nil {
			return fmt.Errorf("%s line %d: invalid user id %q", UsersEntry, lineNo, f[0])
		}
		age, err := strconv.Atoi(f[2])
		if err != nil {
			return fmt.Errorf("%s line %d: invalid age %q", UsersEntry, lineNo, f[2])
		}
		job, err := strconv.Atoi(f[3])
		if err != nil {
			return fmt.Errorf("%s line %d: invalid job id %q", UsersEntry, lineNo, f[3])
		}
		users = append(users, models.User{
			UserID: id,
			Gender: f[1],
			Age:    age,
			JobID:  job,
		})
		return nil
	})
	return users, err
}

// loadMovies parses ml-1m/movies.dat. Title and Genres stay raw; the
// encoder derives the year split and the vector features.
func loadMovies(zr *zip.Reader) ([]models.Movie, error) {
	var movies []models.Movie
	err := forEachRecord(zr, MoviesEntry, movieFields, func(lineNo int, f []string) error {
		id, err := strconv.Atoi(f[0])
		if err != nil {
			return fmt.Errorf("%s line %d: invalid movie id %q", MoviesEntry, lineNo, f[0])
		}
		movies = append(movies, models.Movie{
			MovieID: id,
			Title:   f[1],
			Genres:  f[2],
		})
		return nil
	})
	return movies, err
}

// loadRatings parses ml-1m/ratings.dat. The trailing Timestamp column is
// parsed past and dropped.
func loadRatings(zr *zip.Reader) ([]models.Rating, error) {
	var ratings []models.Rating
	err := forEachRecord(zr, RatingsEntry, ratingFields, func(lineNo int, f []string) error {
		uid, err := strconv.Atoi(f[0])
		if err != nil {
			return fmt.Errorf("%s line %d: invalid user id %q", RatingsEntry, lineNo, f[0])
		}
		mid, err := strconv.Atoi(f[1])
		if err != nil {
			return fmt.Errorf("%s line %d: invalid movie id %q", RatingsEntry, lineNo, f[1])
		}
		val, err := strconv.ParseFloat(f[2], 64)
		if err != nil {
			return fmt.Errorf("%s line %d: invalid rating %q", RatingsEntry, lineNo, f[2])
		}
		ratings = append(ratings, models.Rating{
			UserID:  uid,
			MovieID: mid,
			Rating:  val,
		})
		return nil
	})
	return ratings, err
}

// forEachRecord streams one archive entry line by line, splitting each
// record on the literal "::" delimiter and checking the field count.
// Blank lines are skipped; a trailing \r is stripped so CRLF archives
// parse identically. fn receives the 1-based line number for error
// messages.
func forEachRecord(zr *zip.Reader, entry string, wantFields int, fn func(lineNo int, fields []string) error) error {
	rc, err := zr.Open(entry)
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry, err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(rc))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "::")
		if len(fields) != wantFields {
			return fmt.Errorf("%s line %d: %d fields, want %d", entry, lineNo, len(fields), wantFields)
		}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", entry, err)
	}
	return nil
}
