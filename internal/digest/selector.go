// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package digest

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/feedscope/internal/classify"
	"github.com/tomtom215/feedscope/internal/models"
	"github.com/tomtom215/feedscope/internal/ranking"
)

// duplicateCaptionPrefix is how many leading caption characters two posts
// from the same author may share before the second is treated as a repost.
const duplicateCaptionPrefix = 50

// Importance bundles the ranking outcome attached to a selected post.
type Importance struct {
	// Score is the final weighted importance score.
	Score float64 `json:"score"`

	// Priority is the discrete priority level.
	Priority ranking.PriorityLevel `json:"priority"`

	// Reason is the prioritizer's justification.
	Reason string `json:"reason"`
}

// TopPost is one entry of the daily digest.
type TopPost struct {
	models.Post

	// EventSignals are the indicators derived from the caption.
	EventSignals models.EventSignals `json:"event_signals"`

	// Importance is the ranking outcome.
	Importance Importance `json:"importance"`

	// ContentCategories is the caption classification.
	ContentCategories classify.CategoryResult `json:"content_categories"`

	// EngagementRatio is engagement relative to follower count.
	EngagementRatio float64 `json:"engagement_ratio"`
}

// Selector produces the daily digest. It is safe for concurrent use as long
// as concurrent calls operate on distinct snapshots.
type Selector struct {
	scorer      *ranking.Scorer
	prioritizer *ranking.Prioritizer
	categorizer *classify.Categorizer
	now         func() time.Time
}

// SelectorOption customizes a Selector.
type SelectorOption func(*Selector)

// WithSelectorClock overrides the wall clock used for the today partition.
func WithSelectorClock(now func() time.Time) SelectorOption {
	return func(s *Selector) {
		s.now = now
	}
}

// NewSelector creates a Selector from its three collaborators.
func NewSelector(scorer *ranking.Scorer, prioritizer *ranking.Prioritizer, categorizer *classify.Categorizer, opts ...SelectorOption) *Selector {
	s := &Selector{
		scorer:      scorer,
		prioritizer: prioritizer,
		categorizer: categorizer,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// scoredPost pairs a post with its ranking outcome during selection.
type scoredPost struct {
	post     *models.Post
	signals  models.EventSignals
	score    ranking.ScoreResult
	priority ranking.PriorityResult
}

// SelectTopDaily returns up to count digest entries for the given snapshot.
//
// An empty snapshot yields an empty slice, not an error. Malformed posts
// (negative counts, zero timestamps) fail fast with a models.ErrInvalidPost
// error rather than producing nonsensical scores.
func (s *Selector) SelectTopDaily(posts []models.Post, count int) ([]TopPost, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", models.ErrInvalidPost, count)
	}
	if len(posts) == 0 {
		return []TopPost{}, nil
	}
	for i := range posts {
		if err := posts[i].Validate(); err != nil {
			return nil, err
		}
	}

	candidates := s.todaysPosts(posts)
	if len(candidates) == 0 {
		candidates = s.recentFallback(posts, count)
	}

	ranked := make([]scoredPost, 0, len(candidates))
	for _, p := range candidates {
		score, signals := s.scorer.ScorePost(p)
		ranked = append(ranked, scoredPost{
			post:     p,
			signals:  signals,
			score:    score,
			priority: s.prioritizer.Prioritize(p, signals, score),
		})
	}

	// Stable sort keeps the snapshot's relative order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score.FinalScore > ranked[j].score.FinalScore
	})

	selected := s.applyDiversityCap(ranked, count)

	out := make([]TopPost, 0, len(selected))
	for _, sp := range selected {
		categories := s.categorizer.Categorize(sp.post.Caption, sp.post.MediaType, sp.signals.HasEventIndicators)
		out = append(out, TopPost{
			Post:         *sp.post,
			EventSignals: sp.signals,
			Importance: Importance{
				Score:    sp.score.FinalScore,
				Priority: sp.priority.Level,
				Reason:   sp.priority.Reason,
			},
			ContentCategories: categories,
			EngagementRatio:   sp.post.EngagementRatio(),
		})
	}
	return out, nil
}

// todaysPosts returns pointers to posts created on the current calendar day,
// using the local midnight boundary.
func (s *Selector) todaysPosts(posts []models.Post) []*models.Post {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var today []*models.Post
	for i := range posts {
		created := posts[i].CreatedAt
		if !created.Before(midnight) && created.Before(midnight.AddDate(0, 0, 1)) {
			today = append(today, &posts[i])
		}
	}
	return today
}

// recentFallback returns the min(count*2, len) most recently created posts.
// It exists so an empty "today" bucket still yields a usable digest.
func (s *Selector) recentFallback(posts []models.Post, count int) []*models.Post {
	refs := make([]*models.Post, 0, len(posts))
	for i := range posts {
		refs = append(refs, &posts[i])
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].CreatedAt.After(refs[j].CreatedAt)
	})

	limit := count * 2
	if limit > len(refs) {
		limit = len(refs)
	}
	return refs[:limit]
}

// applyDiversityCap walks the ranked list once, accepting posts under a
// per-author cap with a duplicate-caption guard, until count posts are
// accepted or the list is exhausted.
//
// The cap is 1 when the candidate pool has at least count distinct authors;
// otherwise ceil(count/authors) so the digest can still fill up.
func (s *Selector) applyDiversityCap(ranked []scoredPost, count int) []scoredPost {
	authors := make(map[string]struct{}, len(ranked))
	for _, sp := range ranked {
		authors[sp.post.UserID] = struct{}{}
	}

	perAuthor := 1
	if len(authors) < count && len(authors) > 0 {
		perAuthor = (count + len(authors) - 1) / len(authors)
	}

	accepted := make([]scoredPost, 0, count)
	perAuthorCount := make(map[string]int, len(authors))
	seenCaptions := make(map[string]map[string]struct{}, len(authors))

	for _, sp := range ranked {
		if len(accepted) >= count {
			break
		}
		author := sp.post.UserID
		if perAuthorCount[author] >= perAuthor {
			continue
		}

		prefix := captionPrefix(sp.post.Caption)
		if prefix != "" {
			if _, dup := seenCaptions[author][prefix]; dup {
				continue
			}
			if seenCaptions[author] == nil {
				seenCaptions[author] = make(map[string]struct{})
			}
			seenCaptions[author][prefix] = struct{}{}
		}

		perAuthorCount[author]++
		accepted = append(accepted, sp)
	}
	return accepted
}

// captionPrefix returns the first duplicateCaptionPrefix characters of a
// caption, rune-aware so multi-byte captions are not split mid-character.
func captionPrefix(caption string) string {
	runes := []rune(caption)
	if len(runes) > duplicateCaptionPrefix {
		runes = runes[:duplicateCaptionPrefix]
	}
	return string(runes)
}
