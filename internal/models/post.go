// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPost indicates a post failed structural validation.
// Callers can match it with errors.Is to map the failure to an
// invalid-argument response.
var ErrInvalidPost = errors.New("invalid post")

// Post is a normalized feed item. It is immutable once constructed;
// scoring and classification return derived values instead of mutating it.
type Post struct {
	// PostID is the opaque, unique post identifier.
	PostID string `json:"post_id"`

	// UserID identifies the post author.
	UserID string `json:"user_id"`

	// Username is the author's display handle.
	Username string `json:"username,omitempty"`

	// IsCloseFriend indicates the author is on the viewer's close friends list.
	IsCloseFriend bool `json:"is_close_friend"`

	// IsVerified indicates the author has a verified account.
	IsVerified bool `json:"is_verified"`

	// Caption is the post text. Empty means no caption.
	Caption string `json:"caption,omitempty"`

	// MediaType is the content type (photo, video, album).
	MediaType string `json:"media_type,omitempty"`

	// EngagementCount is likes plus comments. Never negative.
	EngagementCount int `json:"engagement_count"`

	// FollowerCount is the author's follower count at collection time.
	// Treated as 1 in ratio computations when zero.
	FollowerCount int `json:"follower_count"`

	// CreatedAt is when the post was published.
	CreatedAt time.Time `json:"created_at"`

	// URL is the canonical link to the post.
	URL string `json:"url,omitempty"`
}

// Validate checks the post for malformed input. Optional fields (caption,
// username, URL) are never required; only impossible values are rejected.
func (p *Post) Validate() error {
	if p.PostID == "" {
		return fmt.Errorf("%w: post_id is required", ErrInvalidPost)
	}
	if p.EngagementCount < 0 {
		return fmt.Errorf("%w: engagement_count must be non-negative, got %d", ErrInvalidPost, p.EngagementCount)
	}
	if p.FollowerCount < 0 {
		return fmt.Errorf("%w: follower_count must be non-negative, got %d", ErrInvalidPost, p.FollowerCount)
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("%w: created_at is required", ErrInvalidPost)
	}
	return nil
}

// EngagementRatio returns engagement relative to follower count.
// A zero follower count is substituted with 1 to avoid division by zero.
func (p *Post) EngagementRatio() float64 {
	followers := p.FollowerCount
	if followers < 1 {
		followers = 1
	}
	return float64(p.EngagementCount) / float64(followers)
}

// EventSignals holds event indicators derived from a post caption.
// The scorer returns these instead of annotating the Post in place,
// so repeated scoring of the same post is trivially idempotent.
type EventSignals struct {
	// HasEventIndicators is true when any event pattern matched the caption.
	HasEventIndicators bool `json:"has_event_indicators"`

	// Keywords lists every matched substring, in pattern order then
	// match order. Duplicates are preserved.
	Keywords []string `json:"event_keywords,omitempty"`
}
