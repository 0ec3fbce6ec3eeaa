// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

// Package persist writes the four pipeline artifacts (meta.p, users.p,
// movies.p, data.p) to the data directory and reads them back.
//
// Artifacts are gob-encoded, checksummed with SHA-256 and gzip-compressed
// inside a small envelope. The checksum is verified on every load, so a
// truncated or bit-flipped file surfaces as ErrChecksumMismatch instead of
// quietly decoding into garbage. The exact byte layout is internal; only
// round-trip fidelity through this package is guaranteed.
package persist
