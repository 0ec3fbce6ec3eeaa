// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

/*
Package fetch ensures a validated local copy of the MovieLens archive.

Ensure is the single entry point: it creates the data directory, skips the
download entirely when the archive file already exists (trusting it without
re-hashing), and otherwise streams the configured URL to disk in 32 KiB
blocks with a per-block progress callback, then verifies the MD5
fingerprint.

Behavior notes:

  - An existing file is never re-validated. A corrupted file that was
    placed there by an earlier interrupted run (or by hand) is only caught
    when a later stage fails to open it as a zip.
  - A fresh download that fails its checksum is left on disk and the error
    wraps ErrChecksumMismatch with instructions to remove the file.
  - A download aborted mid-stream removes the partial file so the next run
    does not trust it.
  - The HTTP client has no timeout; cancellation comes from the caller's
    context.

The progress callback mirrors a reporthook: it fires once on connection
establishment with zero blocks and once per received block with the
cumulative block count, the block size, and the total byte count (-1 when
unknown).
*/
package fetch
