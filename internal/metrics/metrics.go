// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package metrics provides Prometheus instrumentation for Feedscope:
// API latency and throughput, ranking computation timings, digest sizes and
// snapshot loads.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedscope_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedscope_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	// Ranking metrics
	PostsScoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedscope_posts_scored_total",
			Help: "Total number of posts scored",
		},
	)

	FinalScoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedscope_final_score",
			Help:    "Distribution of final importance scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11), // 0.0 to 1.0
		},
	)

	PriorityLevelsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedscope_priority_levels_total",
			Help: "Posts classified per priority level",
		},
		[]string{"level"},
	)

	// Digest metrics
	DigestComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedscope_digest_compute_duration_seconds",
			Help:    "Time to compute a top-daily digest",
			Buckets: prometheus.DefBuckets,
		},
	)

	DigestSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedscope_digest_size",
			Help:    "Number of posts in computed digests",
			Buckets: prometheus.LinearBuckets(0, 5, 11), // 0 to 50
		},
	)

	// Snapshot metrics
	SnapshotPostsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedscope_snapshot_posts_loaded",
			Help: "Posts loaded from the most recent snapshot",
		},
	)

	SnapshotLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedscope_snapshot_load_errors_total",
			Help: "Total number of snapshot load failures",
		},
	)
)

// ObserveAPIRequest records one completed API request.
func ObserveAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// ObserveDigest records one computed digest.
func ObserveDigest(size int, duration time.Duration) {
	DigestComputeDuration.Observe(duration.Seconds())
	DigestSize.Observe(float64(size))
}
