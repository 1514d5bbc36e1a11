// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package models defines the shared value objects for Feedscope.
//
// The central type is Post, the normalized feed item every other component
// operates on. Posts are constructed once from a snapshot and never mutated;
// derived data (event signals, scores, categories) is returned as separate
// values rather than written back onto the Post.
//
// The package also provides the standardized API response envelope
// (APIResponse, Metadata, APIError) used by all HTTP endpoints.
package models
