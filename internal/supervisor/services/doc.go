// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package services contains suture.Service wrappers for Feedscope's
// long-running components: the HTTP server and the snapshot watcher.
package services
