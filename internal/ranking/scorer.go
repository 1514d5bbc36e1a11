// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package ranking

import (
	"math"
	"time"

	"github.com/tomtom215/feedscope/internal/models"
)

// ComponentScores holds the five named sub-scores, each in [0, 1].
type ComponentScores struct {
	UserSignal       float64 `json:"user_signal"`
	ContentSignal    float64 `json:"content_signal"`
	KeywordRelevance float64 `json:"keyword_relevance"`
	EngagementRatio  float64 `json:"engagement_ratio"`
	Recency          float64 `json:"recency"`
}

// ScoreResult is the scorer's output: the component breakdown plus the
// weighted final score, rounded to 3 decimal places.
type ScoreResult struct {
	ComponentScores ComponentScores `json:"component_scores"`
	FinalScore      float64         `json:"final_score"`
}

// Scorer computes importance scores for posts. It is safe for concurrent
// use: all state is immutable after construction.
type Scorer struct {
	weights    Weights
	engagement EngagementThresholds
	now        func() time.Time
}

// ScorerOption customizes a Scorer.
type ScorerOption func(*Scorer)

// WithClock overrides the wall clock used for recency. Tests use this to
// pin "now".
func WithClock(now func() time.Time) ScorerOption {
	return func(s *Scorer) {
		s.now = now
	}
}

// NewScorer creates a Scorer with the given weights and engagement buckets.
// Zero-value configs are replaced with defaults.
func NewScorer(weights Weights, engagement EngagementThresholds, opts ...ScorerOption) *Scorer {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	if engagement == (EngagementThresholds{}) {
		engagement = DefaultEngagementThresholds()
	}
	s := &Scorer{
		weights:    weights,
		engagement: engagement,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScorePost derives event signals from the post's caption and scores the
// post. It never fails and never mutates the post; calling it twice on the
// same post yields identical results.
func (s *Scorer) ScorePost(post *models.Post) (ScoreResult, models.EventSignals) {
	signals := DetectEventSignals(post.Caption)
	return s.Score(post, signals), signals
}

// Score computes the weighted score for a post given already-derived event
// signals. Signals may be pre-seeded by the caller (keywords without the
// indicator flag), which the keyword-relevance component recognizes.
func (s *Scorer) Score(post *models.Post, signals models.EventSignals) ScoreResult {
	components := ComponentScores{
		UserSignal:       s.userSignal(post),
		ContentSignal:    s.contentSignal(post, signals),
		KeywordRelevance: s.keywordRelevance(signals),
		EngagementRatio:  s.engagementRatio(post),
		Recency:          s.recency(post),
	}

	final := components.UserSignal*s.weights.UserSignal +
		components.ContentSignal*s.weights.ContentSignal +
		components.KeywordRelevance*s.weights.KeywordRelevance +
		components.EngagementRatio*s.weights.EngagementRatio +
		components.Recency*s.weights.Recency

	return ScoreResult{
		ComponentScores: components,
		FinalScore:      round3(final),
	}
}

// userSignal ranks the author relationship. Close friends are maximally
// trusted; verified accounts are deliberately down-weighted below unknown
// accounts because broadcast accounts are less personally relevant.
func (s *Scorer) userSignal(post *models.Post) float64 {
	switch {
	case post.IsCloseFriend:
		return 1.0
	case post.IsVerified:
		return 0.3
	default:
		return 0.7
	}
}

func (s *Scorer) contentSignal(post *models.Post, signals models.EventSignals) float64 {
	if post.Caption == "" {
		// No caption: fall back to engagement strength.
		if post.EngagementRatio() >= s.engagement.High {
			return 0.4
		}
		return 0.2
	}
	if signals.HasEventIndicators {
		return 1.0
	}
	return 0.6
}

func (s *Scorer) keywordRelevance(signals models.EventSignals) float64 {
	switch {
	case signals.HasEventIndicators:
		return 1.0
	case len(signals.Keywords) > 0:
		return 0.8
	default:
		return 0.2
	}
}

func (s *Scorer) engagementRatio(post *models.Post) float64 {
	ratio := post.EngagementRatio()
	switch {
	case ratio >= s.engagement.High:
		return 0.8
	case ratio >= s.engagement.Medium:
		return 0.5
	default:
		return 0.2
	}
}

func (s *Scorer) recency(post *models.Post) float64 {
	days := daysSince(post.CreatedAt, s.now())
	switch {
	case days == 0:
		return 1.0
	case days <= 7:
		return 0.8
	case days <= 30:
		return 0.5
	default:
		return 0.2
	}
}

// daysSince returns whole days elapsed between then and now, floored so a
// future timestamp counts as a negative day rather than day zero.
func daysSince(then, now time.Time) int {
	return int(math.Floor(now.Sub(then).Hours() / 24))
}

// round3 rounds to 3 decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
