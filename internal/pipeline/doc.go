// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

/*
Package pipeline wires the stages together and owns the run lifecycle.

A run flows strictly forward:

	fetch -> parse -> encode -> join -> split -> persist

Each stage consumes the previous stage's output exactly once; nothing is
re-entered or retried. The run produces four artifacts under the data
directory (meta.p, users.p, movies.p, data.p), an optional manifest.json
describing the run, and a Result value with counts, vocabulary sizes,
rating distribution and per-stage timings.

Failures abort the run at the failing stage with the stage name wrapped
into the error. Artifacts are only written at the end, so an aborted run
leaves any previous run's outputs untouched (the downloaded archive being
the one exception).
*/
package pipeline
