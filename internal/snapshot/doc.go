// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package snapshot loads collected feed snapshots from disk.
//
// Snapshots are JSON arrays written by the upstream collector as
// feed_posts_<timestamp>.json. The loader normalizes the collector's raw
// shape (nested user block, epoch timestamps, separate like/comment counts)
// into models.Post values. Acquiring feed data is out of scope; this package
// only reads what a collector already wrote.
package snapshot
