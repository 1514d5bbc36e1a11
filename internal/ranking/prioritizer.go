// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package ranking

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/feedscope/internal/models"
)

// PriorityLevel is the discrete importance classification of a post.
type PriorityLevel int

const (
	// PriorityLow marks posts that can be skipped.
	PriorityLow PriorityLevel = iota
	// PriorityMedium marks posts worth a look.
	PriorityMedium
	// PriorityHigh marks posts that must surface in the digest.
	PriorityHigh
)

// String returns a human-readable level name.
func (l PriorityLevel) String() string {
	switch l {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the level as its string name.
func (l PriorityLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses a string level name.
func (l *PriorityLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "high":
		*l = PriorityHigh
	case "medium":
		*l = PriorityMedium
	default:
		*l = PriorityLow
	}
	return nil
}

// The fixed set of priority reasons. Reasons are part of the API contract;
// clients match on these strings.
const (
	ReasonCloseFriend        = "From close friend"
	ReasonEventDetails       = "Contains event details"
	ReasonHighScore          = "High overall score"
	ReasonRecentGoodScore    = "Recent post with good score"
	ReasonHighEngagementPost = "High engagement post"
	ReasonMediumScore        = "Medium overall score"
	ReasonRecentHighEngage   = "Recent post with high engagement"
	ReasonVeryRecent         = "Very recent post"
	ReasonHighEngagement     = "Post with high engagement"
	ReasonLowScore           = "Low overall score"
)

// PriorityResult is the prioritizer's output.
type PriorityResult struct {
	// Level is the discrete priority classification.
	Level PriorityLevel `json:"level"`

	// Reason is the first matching justification from the decision tree.
	Reason string `json:"reason"`

	// Score copies the final score the decision was based on.
	Score float64 `json:"score"`
}

// Prioritizer maps a scored post onto a priority level via an ordered
// decision tree. Thresholds are fixed at construction; there is no mutable
// threshold state.
type Prioritizer struct {
	thresholds Thresholds
	now        func() time.Time
}

// PrioritizerOption customizes a Prioritizer.
type PrioritizerOption func(*Prioritizer)

// WithPrioritizerClock overrides the wall clock used for the very-recent check.
func WithPrioritizerClock(now func() time.Time) PrioritizerOption {
	return func(p *Prioritizer) {
		p.now = now
	}
}

// NewPrioritizer creates a Prioritizer. A zero-value Thresholds is replaced
// with DefaultThresholds.
func NewPrioritizer(thresholds Thresholds, opts ...PrioritizerOption) *Prioritizer {
	if thresholds == (Thresholds{}) {
		thresholds = DefaultThresholds()
	}
	p := &Prioritizer{
		thresholds: thresholds,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prioritize classifies a post. The rules are evaluated in order and the
// first match wins:
//
//  1. close friend -> HIGH
//  2. event indicators -> HIGH
//  3. score >= high threshold -> HIGH
//  4. score >= medium threshold: very recent or high engagement lifts to
//     HIGH (recency reason wins when both apply), otherwise MEDIUM
//  5. below medium threshold: recency/engagement combinations yield MEDIUM,
//     otherwise LOW
//
// The partial overlap between the branch-4 and branch-5 reason texts mirrors
// long-standing observed behavior and is kept as-is.
func (p *Prioritizer) Prioritize(post *models.Post, signals models.EventSignals, score ScoreResult) PriorityResult {
	final := score.FinalScore

	if post.IsCloseFriend {
		return PriorityResult{Level: PriorityHigh, Reason: ReasonCloseFriend, Score: final}
	}
	if signals.HasEventIndicators {
		return PriorityResult{Level: PriorityHigh, Reason: ReasonEventDetails, Score: final}
	}
	if final >= p.thresholds.HighScore {
		return PriorityResult{Level: PriorityHigh, Reason: ReasonHighScore, Score: final}
	}

	isVeryRecent := daysSince(post.CreatedAt, p.now()) <= p.thresholds.VeryRecentDays
	hasHighEngagement := post.EngagementRatio() >= p.thresholds.HighEngagement

	if final >= p.thresholds.MediumScore {
		if isVeryRecent {
			return PriorityResult{Level: PriorityHigh, Reason: ReasonRecentGoodScore, Score: final}
		}
		if hasHighEngagement {
			return PriorityResult{Level: PriorityHigh, Reason: ReasonHighEngagementPost, Score: final}
		}
		return PriorityResult{Level: PriorityMedium, Reason: ReasonMediumScore, Score: final}
	}

	switch {
	case isVeryRecent && hasHighEngagement:
		return PriorityResult{Level: PriorityMedium, Reason: ReasonRecentHighEngage, Score: final}
	case isVeryRecent:
		return PriorityResult{Level: PriorityMedium, Reason: ReasonVeryRecent, Score: final}
	case hasHighEngagement:
		return PriorityResult{Level: PriorityMedium, Reason: ReasonHighEngagement, Score: final}
	default:
		return PriorityResult{Level: PriorityLow, Reason: ReasonLowScore, Score: final}
	}
}
