// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

// Package config loads and validates Feedscope configuration.
//
// Configuration is layered: struct defaults, then an optional YAML file,
// then environment variables (highest priority). The ranking section feeds
// directly into the scorer and prioritizer as immutable values.
package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/feedscope/internal/ranking"
)

// Config is the root configuration for the Feedscope server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Snapshot SnapshotConfig `koanf:"snapshot"`
	API      APIConfig      `koanf:"api"`
	Ranking  RankingConfig  `koanf:"ranking"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// Timeout bounds request read/write time.
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes file/line in log output.
	Caller bool `koanf:"caller"`
}

// SnapshotConfig points at the collector's output directory.
type SnapshotConfig struct {
	// Dir is where feed_posts_*.json files are read from.
	Dir string `koanf:"dir" validate:"required"`

	// WatchInterval is how often the watcher polls for new snapshots.
	WatchInterval time.Duration `koanf:"watch_interval"`
}

// APIConfig holds HTTP API settings.
type APIConfig struct {
	// CORSOrigins lists allowed CORS origins. Empty disallows browsers.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitRequests is the per-IP request budget per window.
	RateLimitRequests int `koanf:"rate_limit_requests" validate:"min=1"`

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// DefaultCount is the digest size when the caller does not specify one.
	DefaultCount int `koanf:"default_count" validate:"min=1"`

	// MaxCount bounds the digest size a caller may request.
	MaxCount int `koanf:"max_count" validate:"min=1"`
}

// RankingConfig holds the scoring weights and decision thresholds.
type RankingConfig struct {
	// Weights are the five component weights; they must sum to 1.0.
	Weights ranking.Weights `koanf:"weights"`

	// Engagement are the scorer's engagement-ratio buckets.
	Engagement ranking.EngagementThresholds `koanf:"engagement"`

	// Thresholds are the prioritizer's decision boundaries.
	Thresholds ranking.Thresholds `koanf:"thresholds"`
}

// Validate checks cross-field constraints the validator tags cannot express.
func (c *Config) Validate() error {
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Snapshot.WatchInterval <= 0 {
		return fmt.Errorf("snapshot.watch_interval must be positive, got %v", c.Snapshot.WatchInterval)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive, got %v", c.API.RateLimitWindow)
	}
	if c.API.MaxCount < c.API.DefaultCount {
		return fmt.Errorf("api.max_count must be >= api.default_count, got %d < %d", c.API.MaxCount, c.API.DefaultCount)
	}
	if err := c.Ranking.Weights.Validate(); err != nil {
		return fmt.Errorf("ranking.weights: %w", err)
	}
	if err := c.Ranking.Engagement.Validate(); err != nil {
		return fmt.Errorf("ranking.engagement: %w", err)
	}
	if err := c.Ranking.Thresholds.Validate(); err != nil {
		return fmt.Errorf("ranking.thresholds: %w", err)
	}
	return nil
}
