// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package services

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/feedscope/internal/logging"
	"github.com/tomtom215/feedscope/internal/metrics"
	"github.com/tomtom215/feedscope/internal/snapshot"
)

// defaultWatchInterval is how often the watcher polls for new snapshots.
const defaultWatchInterval = 5 * time.Minute

// SnapshotWatcherService periodically checks the snapshot directory for new
// collector output and keeps the snapshot gauges current. The collector is
// an external process; polling is the only coordination between the two.
type SnapshotWatcherService struct {
	loader   *snapshot.Loader
	interval time.Duration
	lastPath string
}

// NewSnapshotWatcherService creates a watcher over the given loader. A
// non-positive interval falls back to the 5 minute default.
func NewSnapshotWatcherService(loader *snapshot.Loader, interval time.Duration) *SnapshotWatcherService {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &SnapshotWatcherService{
		loader:   loader,
		interval: interval,
	}
}

// Serve implements suture.Service. It polls until the context is canceled;
// load failures are logged and counted but do not crash the service.
func (s *SnapshotWatcherService) Serve(ctx context.Context) error {
	s.check()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check()
		}
	}
}

// check loads the latest snapshot if it differs from the last one seen.
func (s *SnapshotWatcherService) check() {
	posts, path, err := s.loader.LoadLatest()
	if err != nil {
		if errors.Is(err, snapshot.ErrNoSnapshots) {
			logging.Debug().Str("dir", s.loader.Dir()).Msg("No feed snapshots yet")
			return
		}
		metrics.SnapshotLoadErrors.Inc()
		logging.Warn().Err(err).Str("dir", s.loader.Dir()).Msg("Snapshot load failed")
		return
	}

	if path == s.lastPath {
		return
	}
	s.lastPath = path

	metrics.SnapshotPostsLoaded.Set(float64(len(posts)))
	logging.Info().
		Str("path", path).
		Int("posts", len(posts)).
		Msg("New feed snapshot loaded")
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *SnapshotWatcherService) String() string {
	return "snapshot-watcher"
}
