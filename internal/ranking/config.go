// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package ranking

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds floating-point drift when checking that the
// component weights sum to exactly 1.0.
const weightSumTolerance = 1e-9

// Weights defines the contribution of each component score to the final
// importance score. The five weights must sum to exactly 1.0.
type Weights struct {
	// UserSignal weights the author relationship (close friend, verified).
	UserSignal float64 `json:"user_signal" koanf:"user_signal"`

	// ContentSignal weights caption presence and event indicators.
	ContentSignal float64 `json:"content_signal" koanf:"content_signal"`

	// KeywordRelevance weights event keyword matches.
	KeywordRelevance float64 `json:"keyword_relevance" koanf:"keyword_relevance"`

	// EngagementRatio weights engagement relative to follower count.
	EngagementRatio float64 `json:"engagement_ratio" koanf:"engagement_ratio"`

	// Recency weights post age.
	Recency float64 `json:"recency" koanf:"recency"`
}

// DefaultWeights returns the production weight set.
func DefaultWeights() Weights {
	return Weights{
		UserSignal:       0.30,
		ContentSignal:    0.25,
		KeywordRelevance: 0.20,
		EngagementRatio:  0.15,
		Recency:          0.10,
	}
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.UserSignal + w.ContentSignal + w.KeywordRelevance + w.EngagementRatio + w.Recency
}

// Validate checks that every weight is in [0, 1] and the set sums to 1.0.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"user_signal":       w.UserSignal,
		"content_signal":    w.ContentSignal,
		"keyword_relevance": w.KeywordRelevance,
		"engagement_ratio":  w.EngagementRatio,
		"recency":           w.Recency,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("weight %s must be in [0, 1], got %f", name, v)
		}
	}
	if diff := math.Abs(w.Sum() - 1.0); diff > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %f", w.Sum())
	}
	return nil
}

// EngagementThresholds define the engagement-ratio buckets used by the
// scorer, expressed as fractions of the author's follower count.
type EngagementThresholds struct {
	// High marks strong engagement (default 0.05, i.e. 5% of followers).
	High float64 `json:"high" koanf:"high"`

	// Medium marks moderate engagement (default 0.02).
	Medium float64 `json:"medium" koanf:"medium"`
}

// DefaultEngagementThresholds returns the production engagement buckets.
func DefaultEngagementThresholds() EngagementThresholds {
	return EngagementThresholds{
		High:   0.05,
		Medium: 0.02,
	}
}

// Validate checks threshold ordering.
func (t EngagementThresholds) Validate() error {
	if t.High <= 0 || t.Medium <= 0 {
		return fmt.Errorf("engagement thresholds must be positive, got high=%f medium=%f", t.High, t.Medium)
	}
	if t.Medium >= t.High {
		return fmt.Errorf("engagement threshold medium must be below high, got medium=%f high=%f", t.Medium, t.High)
	}
	return nil
}

// Thresholds holds the prioritizer's decision boundaries. The prioritizer
// takes a Thresholds value at construction and never mutates it; per-call
// overrides are expressed by constructing another Prioritizer.
type Thresholds struct {
	// HighScore is the final-score cutoff for an unconditional HIGH (default 0.75).
	HighScore float64 `json:"high_score" koanf:"high_score"`

	// MediumScore is the final-score cutoff separating the medium and low
	// branches of the decision tree (default 0.5).
	MediumScore float64 `json:"medium_score" koanf:"medium_score"`

	// VeryRecentDays is the maximum age, in whole days, for a post to count
	// as very recent (default 2).
	VeryRecentDays int `json:"very_recent_days" koanf:"very_recent_days"`

	// HighEngagement is the engagement ratio marking high engagement for
	// prioritization (default 0.03, i.e. 3% of followers).
	HighEngagement float64 `json:"high_engagement" koanf:"high_engagement"`
}

// DefaultThresholds returns the production prioritizer boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighScore:      0.75,
		MediumScore:    0.5,
		VeryRecentDays: 2,
		HighEngagement: 0.03,
	}
}

// Validate checks threshold sanity.
func (t Thresholds) Validate() error {
	if t.HighScore <= 0 || t.HighScore > 1 {
		return fmt.Errorf("high_score must be in (0, 1], got %f", t.HighScore)
	}
	if t.MediumScore <= 0 || t.MediumScore >= t.HighScore {
		return fmt.Errorf("medium_score must be in (0, high_score), got %f", t.MediumScore)
	}
	if t.VeryRecentDays < 0 {
		return fmt.Errorf("very_recent_days must be non-negative, got %d", t.VeryRecentDays)
	}
	if t.HighEngagement <= 0 {
		return fmt.Errorf("high_engagement must be positive, got %f", t.HighEngagement)
	}
	return nil
}
