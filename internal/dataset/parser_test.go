// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package dataset

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeArchive builds a zip file under t.TempDir containing the given
// entries with raw (undecoded) bytes, mirroring the ml-1m layout.
func writeArchive(t *testing.T, entries map[string][]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ml-1m.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return path
}

func validEntries() map[string][]byte {
	return map[string][]byte{
		UsersEntry: []byte(
			"1::F::1::10::48067\n" +
				"2::M::56::16::70072\n"),
		MoviesEntry: []byte(
			"1::Toy Story (1995)::Animation|Children's|Comedy\n" +
				"2::Jumanji (1995)::Adventure|Children's|Fantasy\n"),
		RatingsEntry: []byte(
			"1::1::5::978300760\n" +
				"1::2::3::978302109\n" +
				"2::1::4::978301968\n"),
	}
}

func TestLoadParsesAllTables(t *testing.T) {
	path := writeArchive(t, validEntries())

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(tables.Users) != 2 {
		t.Fatalf("users = %d, want 2", len(tables.Users))
	}
	u := tables.Users[0]
	if u.UserID != 1 || u.Gender != "F" || u.Age != 1 || u.JobID != 10 {
		t.Errorf("user[0] = %+v, want {1 F 1 10}", u)
	}

	if len(tables.Movies) != 2 {
		t.Fatalf("movies = %d, want 2", len(tables.Movies))
	}
	m := tables.Movies[1]
	if m.MovieID != 2 || m.Title != "Jumanji (1995)" || m.Genres != "Adventure|Children's|Fantasy" {
		t.Errorf("movie[1] = %+v", m)
	}

	if len(tables.Ratings) != 3 {
		t.Fatalf("ratings = %d, want 3", len(tables.Ratings))
	}
	r := tables.Ratings[2]
	if r.UserID != 2 || r.MovieID != 1 || r.Rating != 4 {
		t.Errorf("rating[2] = %+v, want {2 1 4}", r)
	}
}

func TestLoadPreservesRowOrder(t *testing.T) {
	entries := validEntries()
	entries[RatingsEntry] = []byte(
		"2::2::1::978300760\n" +
			"1::1::5::978300761\n" +
			"2::1::4::978300762\n" +
			"1::2::2::978300763\n")
	path := writeArchive(t, entries)

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantUsers := []int{2, 1, 2, 1}
	for i, r := range tables.Ratings {
		if r.UserID != wantUsers[i] {
			t.Errorf("rating[%d].UserID = %d, want %d", i, r.UserID, wantUsers[i])
		}
	}
}

func TestLoadDecodesLatin1Titles(t *testing.T) {
	entries := validEntries()
	// "Misérables" with é as the single ISO-8859-1 byte 0xE9.
	entries[MoviesEntry] = []byte("1::Mis\xe9rables, Les (1995)::Drama\n")
	path := writeArchive(t, entries)

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := tables.Movies[0].Title, "Misérables, Les (1995)"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	entries := validEntries()
	entries[UsersEntry] = []byte("1::F::1::10::48067\n\n\n2::M::56::16::70072\n\n")
	path := writeArchive(t, entries)

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tables.Users) != 2 {
		t.Errorf("users = %d, want 2", len(tables.Users))
	}
}

func TestLoadHandlesCRLF(t *testing.T) {
	entries := validEntries()
	entries[UsersEntry] = []byte("1::F::1::10::48067\r\n2::M::56::16::70072\r\n")
	path := writeArchive(t, entries)

	tables, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tables.Users[1].JobID; got != 16 {
		t.Errorf("user[1].JobID = %d, want 16", got)
	}
}

func TestLoadFieldCountError(t *testing.T) {
	entries := validEntries()
	entries[MoviesEntry] = []byte(
		"1::Toy Story (1995)::Animation\n" +
			"2::Broken Record\n")
	path := writeArchive(t, entries)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load succeeded, want field count error")
	}
	if !strings.Contains(err.Error(), MoviesEntry) {
		t.Errorf("error %q does not name entry %s", err, MoviesEntry)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name line 2", err)
	}
	if !strings.Contains(err.Error(), "want 3") {
		t.Errorf("error %q does not state expected field count", err)
	}
}

func TestLoadInvalidNumberError(t *testing.T) {
	entries := validEntries()
	entries[RatingsEntry] = []byte("1::1::five::978300760\n")
	path := writeArchive(t, entries)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load succeeded, want parse error")
	}
	if !strings.Contains(err.Error(), RatingsEntry) || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error %q does not name entry and line", err)
	}
	if !strings.Contains(err.Error(), `"five"`) {
		t.Errorf("error %q does not quote the bad value", err)
	}
}

func TestLoadMissingEntry(t *testing.T) {
	entries := validEntries()
	delete(entries, RatingsEntry)
	path := writeArchive(t, entries)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load succeeded, want missing entry error")
	}
	if !strings.Contains(err.Error(), RatingsEntry) {
		t.Errorf("error %q does not name missing entry", err)
	}
}

func TestLoadMissingArchive(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.zip"))
	if err == nil {
		t.Fatal("Load succeeded, want open error")
	}
}
