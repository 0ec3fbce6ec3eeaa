// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

package split

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tomtom215/featurelens/internal/logging"
	"github.com/tomtom215/featurelens/internal/models"
)

// TrainTest partitions features and labels jointly into train and test
// sets. The test set takes ceil(fraction * n) rows; both partitions come
// back in permuted order, not input order. The same seed over the same
// input always yields the same membership and the same ordering.
func TrainTest(features []models.FeatureRow, labels []float64, fraction float64, seed int64) (models.Split, error) {
	if len(features) != len(labels) {
		return models.Split{}, fmt.Errorf("features and labels disagree: %d rows vs %d labels", len(features), len(labels))
	}
	if fraction <= 0 || fraction >= 1 {
		return models.Split{}, fmt.Errorf("test fraction %v, want strictly between 0 and 1", fraction)
	}

	n := len(features)
	nTest := int(math.Ceil(fraction * float64(n)))

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: seeded permutation for reproducible splits, not security
	perm := rng.Perm(n)
	testIdx, trainIdx := perm[:nTest], perm[nTest:]

	out := models.Split{
		TrainX: make([]models.FeatureRow, len(trainIdx)),
		TrainY: make([]float64, len(trainIdx)),
		TestX:  make([]models.FeatureRow, len(testIdx)),
		TestY:  make([]float64, len(testIdx)),
	}
	for i, idx := range trainIdx {
		out.TrainX[i] = features[idx]
		out.TrainY[i] = labels[idx]
	}
	for i, idx := range testIdx {
		out.TestX[i] = features[idx]
		out.TestY[i] = labels[idx]
	}

	logging.Info().
		Int("train", out.TrainLen()).
		Int("test", out.TestLen()).
		Float64("fraction", fraction).
		Int64("seed", seed).
		Msg("Split features into train and test partitions")

	return out, nil
}
