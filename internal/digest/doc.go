// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package digest selects the top daily posts from a feed snapshot.
//
// The selector orchestrates the scorer, prioritizer and categorizer: it
// partitions the snapshot to today's posts (falling back to the most recent
// ones when today is empty), ranks candidates by final score, and walks the
// ranked list under a per-author diversity cap with a near-duplicate caption
// guard. Each call recomputes from scratch against the supplied snapshot;
// nothing is cached or mutated between invocations.
package digest
