// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package fetch

import (
	"context"
	"crypto/md5" //nolint:gosec // the published dataset fingerprint is MD5
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomtom215/featurelens/internal/config"
	"github.com/tomtom215/featurelens/internal/logging"
)

const (
	// blockSize is the unit of one progress callback during download.
	blockSize = 32 * 1024

	// maxErrorBodySize limits how much of an error response body is read
	// for diagnostics. Prevents unbounded allocation on large error pages.
	maxErrorBodySize = 64 * 1024
)

// ErrChecksumMismatch is returned (wrapped) when a freshly downloaded
// archive does not hash to the expected MD5 fingerprint.
var ErrChecksumMismatch = errors.New("archive checksum mismatch")

// ProgressFunc is called once when the connection is established (with zero
// blocks received) and once after each block read thereafter. totalBytes is
// -1 when the server sends no Content-Length. The callback runs on the
// download goroutine; it must not block.
type ProgressFunc func(blocksReceived int, blockSize int, totalBytes int64)

// Fetcher ensures a validated local copy of the dataset archive.
type Fetcher struct {
	cfg      config.DatasetConfig
	client   *http.Client
	progress ProgressFunc
}

// New creates a Fetcher. A nil progress hook installs a default that logs
// throttled progress lines. The HTTP client carries no timeout; the
// caller's context is the cancellation mechanism.
func New(cfg config.DatasetConfig, progress ProgressFunc) *Fetcher {
	if progress == nil {
		progress = logProgress()
	}
	return &Fetcher{
		cfg:      cfg,
		client:   &http.Client{},
		progress: progress,
	}
}

// Ensure guarantees a validated archive at <dir>/<archive_name> and returns
// that path. The directory is created when missing. An already existing
// file is trusted as-is: no re-download, no re-hash. A fresh download is
// verified against the configured MD5 and the file is left in place on
// mismatch so it can be inspected before removal.
func (f *Fetcher) Ensure(ctx context.Context, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create data directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, f.cfg.ArchiveName)

	if _, err := os.Stat(path); err == nil {
		logging.Info().Str("path", path).Msg("Archive already present, skipping download")
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat archive %s: %w", path, err)
	}

	logging.Info().Str("url", f.cfg.URL).Str("path", path).Msg("Downloading archive")
	if err := f.download(ctx, path); err != nil {
		return "", err
	}

	if err := f.verify(path); err != nil {
		return "", err
	}

	logging.Info().Str("path", path).Msg("Archive downloaded and verified")
	return path, nil
}

// download streams the archive to path in blockSize units, invoking the
// progress hook per block. A partial file is removed on error so a later
// run does not mistake it for a complete archive.
func (f *Fetcher) download(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", f.cfg.URL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", f.cfg.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return fmt.Errorf("download %s: unexpected status %d: %s", f.cfg.URL, resp.StatusCode, string(body))
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive file %s: %w", path, err)
	}

	total := resp.ContentLength // -1 when the server sends no Content-Length
	f.progress(0, blockSize, total)

	buf := make([]byte, blockSize)
	blocks := 0
	for {
		n, rerr := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				_ = out.Close()
				f.discard(path)
				return fmt.Errorf("write archive %s: %w", path, werr)
			}
			blocks++
			f.progress(blocks, blockSize, total)
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			_ = out.Close()
			f.discard(path)
			return fmt.Errorf("read response body: %w", rerr)
		}
	}

	if err := out.Close(); err != nil {
		f.discard(path)
		return fmt.Errorf("close archive file %s: %w", path, err)
	}
	return nil
}

// verify hashes the downloaded file and compares it to the configured
// fingerprint. A mismatching file is deliberately not removed.
func (f *Fetcher) verify(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open archive for verification %s: %w", path, err)
	}
	defer fh.Close()

	h := md5.New() //nolint:gosec // integrity check against the published fingerprint, not a security boundary
	if _, err := io.Copy(h, fh); err != nil {
		return fmt.Errorf("hash archive %s: %w", path, err)
	}

	sum := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(sum, f.cfg.MD5) {
		return fmt.Errorf("%s is corrupted (md5 %s, want %s), remove the file and try again: %w",
			path, sum, f.cfg.MD5, ErrChecksumMismatch)
	}
	return nil
}

// discard removes a partial download, best effort.
func (f *Fetcher) discard(path string) {
	if err := os.Remove(path); err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Failed to remove partial download")
	}
}

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns the body content or a placeholder message if reading fails.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// logProgress returns the default progress hook: one log line per decile
// when the total size is known, one per 32 MiB otherwise.
func logProgress() ProgressFunc {
	lastDecile := -1
	lastLoggedBlocks := 0
	return func(blocks, size int, total int64) {
		received := int64(blocks) * int64(size)
		if total > 0 {
			if received > total {
				received = total
			}
			decile := int(received * 10 / total)
			if decile > lastDecile {
				lastDecile = decile
				logging.Info().
					Int("percent", decile*10).
					Int64("bytes", received).
					Int64("total", total).
					Msg("Download progress")
			}
			return
		}
		if blocks-lastLoggedBlocks >= 1024 {
			lastLoggedBlocks = blocks
			logging.Info().Int64("bytes", received).Msg("Download progress")
		}
	}
}
