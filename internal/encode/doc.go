// Featurelens - MovieLens Feature Engineering Pipeline
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/featurelens

/*
Package encode derives the categorical and text features consumed by the
join stage.

Users get a fixed gender index ({F:0, M:1}) and a dense age bracket index.
Movies get a (title, year) split, a multi-hot genre vector sized to the
full genre vocabulary, and a fixed-length vector of title word indices
where 0 is the padding value and real words start at 1.

All vocabulary maps assign indices in order of first appearance while
scanning the corpus in file order, so a given archive always produces the
same maps. The maps are returned to the caller for persistence; encoded
features are meaningless without them.

A title missing its parenthesized year suffix is a fatal error. So is a
token absent from its vocabulary, which only happens when a persisted
vocabulary is applied to a different corpus.
*/
package encode
