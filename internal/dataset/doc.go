// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

/*
Package dataset parses the three ml-1m source tables out of the downloaded
archive.

Records are read straight from the zip entries; nothing is extracted to
disk. Each entry is a "::"-delimited table in ISO-8859-1:

	ml-1m/users.dat    UserID::Gender::Age::JobID::Zip-code
	ml-1m/movies.dat   MovieID::Title::Genres
	ml-1m/ratings.dat  UserID::MovieID::Rating::Timestamp

Zip-code and Timestamp are parsed past and dropped. Titles are decoded to
UTF-8 so accented characters (for example "Les Misérables") survive the
trip into the word vocabulary.

Any malformed record aborts the load with an error naming the entry and
the 1-based line number. Blank lines are tolerated; a wrong field count or
a non-numeric key column is not. Row order within each table is preserved
exactly as it appears in the archive, which the join stage later relies on.
*/
package dataset
