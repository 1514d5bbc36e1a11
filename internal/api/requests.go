// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package api

import (
	"github.com/tomtom215/feedscope/internal/classify"
	"github.com/tomtom215/feedscope/internal/digest"
	"github.com/tomtom215/feedscope/internal/models"
	"github.com/tomtom215/feedscope/internal/ranking"
)

// ScoreRequest is the body of POST /api/v1/posts/score.
type ScoreRequest struct {
	Post models.Post `json:"post"`
}

// ScoreResponse is the data payload of POST /api/v1/posts/score.
type ScoreResponse struct {
	PostID          string                  `json:"post_id"`
	ComponentScores ranking.ComponentScores `json:"component_scores"`
	FinalScore      float64                 `json:"final_score"`
	Priority        PriorityPayload         `json:"priority"`
	EventSignals    models.EventSignals     `json:"event_signals"`
}

// PriorityPayload is the priority portion of a score response.
type PriorityPayload struct {
	Level  ranking.PriorityLevel `json:"level"`
	Reason string                `json:"reason"`
}

// CategorizeRequest is the body of POST /api/v1/posts/categorize.
type CategorizeRequest struct {
	Caption   string `json:"caption"`
	MediaType string `json:"media_type"`
}

// CategorizeResponse is the data payload of POST /api/v1/posts/categorize.
type CategorizeResponse struct {
	Categories   classify.CategoryResult `json:"categories"`
	EventSignals models.EventSignals     `json:"event_signals"`
}

// DigestRequest is the body of POST /api/v1/digest/top. Count falls back to
// the configured default when zero; missing or empty posts yield an empty
// digest rather than an error.
type DigestRequest struct {
	Posts []models.Post `json:"posts"`
	Count int           `json:"count" validate:"min=0"`
}

// DigestResponse is the data payload of the digest endpoints.
type DigestResponse struct {
	Posts []digest.TopPost `json:"posts"`
	Count int              `json:"count"`
	Total int              `json:"total_candidates"`
	Path  string           `json:"snapshot_path,omitempty"`
}
