// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/featurelens/internal/config"
	"github.com/tomtom215/featurelens/internal/logging"
)

// manifestVersion bumps when the manifest layout changes shape.
const manifestVersion = 1

// AppVersion is set at build time
var AppVersion = "dev"

// Manifest is the JSON run summary written next to the artifacts. It lets
// downstream consumers check which dataset produced the .p files and
// verify artifact checksums without decoding them.
type Manifest struct {
	ManifestVersion int             `json:"manifest_version"`
	AppVersion      string          `json:"app_version"`
	Dataset         ManifestDataset `json:"dataset"`
	Run             *Result         `json:"run"`
}

// ManifestDataset echoes the dataset identity the run was configured with.
type ManifestDataset struct {
	URL         string `json:"url"`
	MD5         string `json:"md5"`
	ArchiveName string `json:"archive_name"`
}

// writeManifest writes the manifest under cfg.DataDir, replacing any
// manifest from a previous run.
func writeManifest(cfg *config.Config, result *Result) error {
	m := Manifest{
		ManifestVersion: manifestVersion,
		AppVersion:      AppVersion,
		Dataset: ManifestDataset{
			URL:         cfg.Dataset.URL,
			MD5:         cfg.Dataset.MD5,
			ArchiveName: cfg.Dataset.ArchiveName,
		},
		Run: result,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(cfg.DataDir, cfg.Manifest.Filename)
	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:gosec // manifest permissions intentionally restricted
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	logging.Info().Str("path", path).Msg("Wrote run manifest")
	return nil
}
