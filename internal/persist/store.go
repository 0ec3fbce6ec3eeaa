// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package persist

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tomtom215/featurelens/internal/logging"
)

// Artifact names, fixed relative to the store's base directory. Consumers
// of the pipeline output address them by these exact names.
const (
	FileMeta   = "meta.p"   // vocabulary maps (age, gender, genre, word)
	FileUsers  = "users.p"  // encoded users table
	FileMovies = "movies.p" // encoded movies table
	FileData   = "data.p"   // train/test feature and label partitions
)

// ErrChecksumMismatch reports a stored artifact whose payload no longer
// matches its recorded checksum.
var ErrChecksumMismatch = errors.New("artifact checksum mismatch")

// ArtifactInfo describes a persisted artifact.
type ArtifactInfo struct {
	// Name is the artifact filename, e.g. "meta.p".
	Name string `json:"name"`

	// SavedAt is when the artifact was written.
	SavedAt time.Time `json:"saved_at"`

	// Checksum is the SHA-256 of the uncompressed gob payload.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed payload size.
	SizeBytes int64 `json:"size_bytes"`
}

// storedArtifact is the on-disk format.
type storedArtifact struct {
	Info           ArtifactInfo
	CompressedData []byte
}

// Store persists pipeline artifacts in a single directory. Saving an
// artifact that already exists overwrites it without comment; re-running
// the pipeline refreshes all four files.
type Store struct {
	baseDir string
	mu      sync.RWMutex
}

// NewStore creates an artifact store rooted at baseDir.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil { //nolint:gosec // 0750 is acceptable for artifact storage
		return nil, fmt.Errorf("create artifact directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save gob-encodes data, records its checksum, compresses it and writes it
// under the given artifact name.
func (s *Store) Save(ctx context.Context, name string, data interface{}) (*ArtifactInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	rawData := buf.Bytes()

	hash := sha256.Sum256(rawData)

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(rawData); err != nil {
		return nil, fmt.Errorf("compress %s: %w", name, err)
	}
	if err := gzw.Close(); err != nil {
		return nil, fmt.Errorf("finalize compression of %s: %w", name, err)
	}

	info := ArtifactInfo{
		Name:      name,
		SavedAt:   time.Now(),
		Checksum:  hex.EncodeToString(hash[:]),
		SizeBytes: int64(compressed.Len()),
	}

	path := s.artifactPath(name)
	f, err := os.Create(path) //nolint:gosec // path is built from fixed artifact names
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // error on close after write is not actionable

	sf := storedArtifact{Info: info, CompressedData: compressed.Bytes()}
	if err := gob.NewEncoder(f).Encode(sf); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	logging.Debug().
		Str("artifact", name).
		Int64("size_bytes", info.SizeBytes).
		Msg("Saved artifact")

	return &info, nil
}

// Load reads an artifact, verifies its checksum and gob-decodes it into
// target, which must be a pointer to the type that was saved.
func (s *Store) Load(ctx context.Context, name string, target interface{}) (*ArtifactInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.artifactPath(name)
	f, err := os.Open(path) //nolint:gosec // path is built from fixed artifact names
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // error on close after read is not actionable

	var sf storedArtifact
	if err := gob.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	gzr, err := gzip.NewReader(bytes.NewReader(sf.CompressedData))
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", name, err)
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // error on gzip close after read is not actionable

	rawData, err := io.ReadAll(gzr)
	if err != nil {
		return nil, fmt.Errorf("read decompressed %s: %w", name, err)
	}

	hash := sha256.Sum256(rawData)
	if sum := hex.EncodeToString(hash[:]); sum != sf.Info.Checksum {
		return nil, fmt.Errorf("%s: stored checksum %s, computed %s: %w", name, sf.Info.Checksum, sum, ErrChecksumMismatch)
	}

	if err := gob.NewDecoder(bytes.NewReader(rawData)).Decode(target); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return &sf.Info, nil
}

// artifactPath returns the file path for an artifact name.
func (s *Store) artifactPath(name string) string {
	return filepath.Join(s.baseDir, name)
}
