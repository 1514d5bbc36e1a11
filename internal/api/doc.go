// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package api exposes the ranking engine over HTTP using the Chi router.
//
// Endpoints live under /api/v1 and return the envelope defined in
// internal/models: a status string, a data payload, response metadata and an
// optional structured error. Scoring and categorization are pure functions
// of the request body; the digest endpoints additionally read the most
// recent collector snapshot from disk.
package api
