// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package ranking

import (
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/feedscope/internal/models"
)

func newTestPrioritizer() *Prioritizer {
	return NewPrioritizer(DefaultThresholds(), WithPrioritizerClock(func() time.Time { return testNow }))
}

func TestPrioritizeDecisionTree(t *testing.T) {
	recent := testNow.AddDate(0, 0, -1)  // 1 day old, very recent
	stale := testNow.AddDate(0, 0, -10)  // past the very-recent window
	engaged := models.Post{EngagementCount: 50, FollowerCount: 1000}  // ratio 0.05
	quiet := models.Post{EngagementCount: 1, FollowerCount: 1000}     // ratio 0.001

	tests := []struct {
		name       string
		post       models.Post
		signals    models.EventSignals
		score      float64
		wantLevel  PriorityLevel
		wantReason string
	}{
		{
			name:       "close friend wins regardless of score",
			post:       models.Post{IsCloseFriend: true, CreatedAt: stale, EngagementCount: 1, FollowerCount: 1000},
			score:      0.1,
			wantLevel:  PriorityHigh,
			wantReason: ReasonCloseFriend,
		},
		{
			name:       "event indicators before score",
			post:       models.Post{CreatedAt: stale, EngagementCount: 1, FollowerCount: 1000},
			signals:    models.EventSignals{HasEventIndicators: true},
			score:      0.2,
			wantLevel:  PriorityHigh,
			wantReason: ReasonEventDetails,
		},
		{
			name:       "high score",
			post:       models.Post{CreatedAt: stale, EngagementCount: 1, FollowerCount: 1000},
			score:      0.8,
			wantLevel:  PriorityHigh,
			wantReason: ReasonHighScore,
		},
		{
			name:       "medium score lifted by recency",
			post:       models.Post{CreatedAt: recent, EngagementCount: 1, FollowerCount: 1000},
			score:      0.6,
			wantLevel:  PriorityHigh,
			wantReason: ReasonRecentGoodScore,
		},
		{
			name:       "medium score recency reason wins over engagement",
			post:       models.Post{CreatedAt: recent, EngagementCount: 50, FollowerCount: 1000},
			score:      0.6,
			wantLevel:  PriorityHigh,
			wantReason: ReasonRecentGoodScore,
		},
		{
			name:       "medium score lifted by engagement",
			post:       models.Post{CreatedAt: stale, EngagementCount: 50, FollowerCount: 1000},
			score:      0.6,
			wantLevel:  PriorityHigh,
			wantReason: ReasonHighEngagementPost,
		},
		{
			name:       "medium score stays medium",
			post:       models.Post{CreatedAt: stale, EngagementCount: 1, FollowerCount: 1000},
			score:      0.6,
			wantLevel:  PriorityMedium,
			wantReason: ReasonMediumScore,
		},
		{
			name:       "low score recent and engaged",
			post:       models.Post{CreatedAt: recent, EngagementCount: engaged.EngagementCount, FollowerCount: engaged.FollowerCount},
			score:      0.3,
			wantLevel:  PriorityMedium,
			wantReason: ReasonRecentHighEngage,
		},
		{
			name:       "low score recent only",
			post:       models.Post{CreatedAt: recent, EngagementCount: quiet.EngagementCount, FollowerCount: quiet.FollowerCount},
			score:      0.3,
			wantLevel:  PriorityMedium,
			wantReason: ReasonVeryRecent,
		},
		{
			name:       "low score engaged only",
			post:       models.Post{CreatedAt: stale, EngagementCount: engaged.EngagementCount, FollowerCount: engaged.FollowerCount},
			score:      0.3,
			wantLevel:  PriorityMedium,
			wantReason: ReasonHighEngagement,
		},
		{
			name:       "low score stale and quiet",
			post:       models.Post{CreatedAt: stale, EngagementCount: quiet.EngagementCount, FollowerCount: quiet.FollowerCount},
			score:      0.3,
			wantLevel:  PriorityLow,
			wantReason: ReasonLowScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPrioritizer()
			got := p.Prioritize(&tt.post, tt.signals, ScoreResult{FinalScore: tt.score})

			if got.Level != tt.wantLevel {
				t.Errorf("Level = %v, want %v", got.Level, tt.wantLevel)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if got.Score != tt.score {
				t.Errorf("Score = %v, want %v", got.Score, tt.score)
			}
		})
	}
}

func TestPrioritizeThresholdBoundaries(t *testing.T) {
	stale := testNow.AddDate(0, 0, -10)
	post := models.Post{CreatedAt: stale, EngagementCount: 1, FollowerCount: 1000}
	p := newTestPrioritizer()

	// Exactly at the high threshold counts as high.
	if got := p.Prioritize(&post, models.EventSignals{}, ScoreResult{FinalScore: 0.75}); got.Level != PriorityHigh {
		t.Errorf("score 0.75: Level = %v, want high", got.Level)
	}
	// Exactly at the medium threshold enters the medium branch.
	if got := p.Prioritize(&post, models.EventSignals{}, ScoreResult{FinalScore: 0.5}); got.Reason != ReasonMediumScore {
		t.Errorf("score 0.5: Reason = %q, want %q", got.Reason, ReasonMediumScore)
	}
	// Just below medium falls into the low branch.
	if got := p.Prioritize(&post, models.EventSignals{}, ScoreResult{FinalScore: 0.499}); got.Level != PriorityLow {
		t.Errorf("score 0.499: Level = %v, want low", got.Level)
	}
}

func TestPriorityLevelJSON(t *testing.T) {
	data, err := json.Marshal(PriorityHigh)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"high"` {
		t.Errorf("Marshal = %s, want %q", data, "high")
	}

	var l PriorityLevel
	if err := json.Unmarshal([]byte(`"medium"`), &l); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if l != PriorityMedium {
		t.Errorf("Unmarshal = %v, want medium", l)
	}

	// Unknown names resolve to low.
	if err := json.Unmarshal([]byte(`"urgent"`), &l); err != nil {
		t.Fatalf("Unmarshal unknown: %v", err)
	}
	if l != PriorityLow {
		t.Errorf("unknown level = %v, want low", l)
	}
}
