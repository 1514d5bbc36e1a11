// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8460 {
		t.Errorf("Server.Port = %d, want 8460", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if cfg.API.DefaultCount != 10 || cfg.API.MaxCount != 50 {
		t.Errorf("API counts = %d/%d, want 10/50", cfg.API.DefaultCount, cfg.API.MaxCount)
	}
	if got := cfg.Ranking.Weights.Sum(); got != 1.0 {
		t.Errorf("default weights sum = %v, want 1.0", got)
	}
	if cfg.Ranking.Thresholds.HighScore != 0.75 {
		t.Errorf("Thresholds.HighScore = %v, want 0.75", cfg.Ranking.Thresholds.HighScore)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FEEDSCOPE_SERVER_PORT", "9090")
	t.Setenv("FEEDSCOPE_LOGGING_LEVEL", "debug")
	t.Setenv("FEEDSCOPE_SNAPSHOT_DIR", "/tmp/feeds")
	t.Setenv("FEEDSCOPE_API_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("FEEDSCOPE_RANKING_THRESHOLDS_HIGH_SCORE", "0.8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Snapshot.Dir != "/tmp/feeds" {
		t.Errorf("Snapshot.Dir = %q, want /tmp/feeds", cfg.Snapshot.Dir)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.API.CORSOrigins, wantOrigins) {
		t.Errorf("CORSOrigins = %q, want %q", cfg.API.CORSOrigins, wantOrigins)
	}
	if cfg.Ranking.Thresholds.HighScore != 0.8 {
		t.Errorf("Thresholds.HighScore = %v, want 0.8", cfg.Ranking.Thresholds.HighScore)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 7070
snapshot:
  dir: /srv/feeds
api:
  default_count: 5
  max_count: 20
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Snapshot.Dir != "/srv/feeds" {
		t.Errorf("Snapshot.Dir = %q, want /srv/feeds", cfg.Snapshot.Dir)
	}
	if cfg.API.DefaultCount != 5 || cfg.API.MaxCount != 20 {
		t.Errorf("API counts = %d/%d, want 5/20", cfg.API.DefaultCount, cfg.API.MaxCount)
	}

	// Env still beats the file.
	t.Setenv("FEEDSCOPE_SERVER_PORT", "7071")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load with env: %v", err)
	}
	if cfg.Server.Port != 7071 {
		t.Errorf("Server.Port = %d, want env override 7071", cfg.Server.Port)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "FEEDSCOPE_SERVER_PORT", "99999"},
		{"unknown log level", "FEEDSCOPE_LOGGING_LEVEL", "verbose"},
		{"unknown log format", "FEEDSCOPE_LOGGING_FORMAT", "xml"},
		{"bad threshold ordering", "FEEDSCOPE_RANKING_THRESHOLDS_MEDIUM_SCORE", "0.9"},
		{"weights no longer sum to one", "FEEDSCOPE_RANKING_WEIGHTS_RECENCY", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load succeeded with %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestConfigValidateCrossFields(t *testing.T) {
	base := defaultConfig()

	cfg := *base
	cfg.API.MaxCount = 5
	cfg.API.DefaultCount = 10
	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate accepted max_count below default_count")
	}

	cfg = *base
	cfg.Server.Timeout = 0
	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate accepted zero server timeout")
	}

	cfg = *base
	cfg.Snapshot.WatchInterval = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate accepted negative watch interval")
	}
}
