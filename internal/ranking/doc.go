// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package ranking implements the multi-factor post scorer and the priority
// classifier.
//
// The scorer combines five component scores (user signal, content signal,
// keyword relevance, engagement ratio, recency) into one final importance
// score using fixed weights that sum to 1.0. The prioritizer maps a post and
// its score onto a discrete HIGH/MEDIUM/LOW level through an ordered decision
// tree with human-readable reasons.
//
// Both components are deterministic and total: every input produces a result,
// and neither mutates the posts it is given. Thresholds and weights are
// immutable configuration supplied at construction.
package ranking
