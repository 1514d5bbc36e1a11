// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package classify

import (
	"strings"
)

const (
	// otherConfidence is assigned when nothing matches.
	otherConfidence = 0.3

	// eventConfidence is assigned to generic event classifications.
	eventConfidence = 0.85

	// strongEventConfidence is assigned when an event sub-category matched
	// three or more distinct patterns.
	strongEventConfidence = 0.9

	// captionMatchScore is added per pattern match in the caption.
	captionMatchScore = 0.2

	// hashtagMatchScore is added per pattern match in the hashtag string.
	hashtagMatchScore = 0.3

	// selfieBonus is added to Selfie when a first-person pronoun appears.
	selfieBonus = 0.3

	// secondaryThreshold is the minimum score for reporting a secondary
	// category.
	secondaryThreshold = 0.3

	// strongMatchPatterns is how many distinct patterns an event
	// sub-category needs to override the generic Event primary.
	strongMatchPatterns = 2
)

// Categorizer classifies captions into content categories. It is stateless
// and safe for concurrent use.
type Categorizer struct{}

// NewCategorizer creates a Categorizer.
func NewCategorizer() *Categorizer {
	return &Categorizer{}
}

// Categorize classifies a caption. It never fails: unmatched or empty input
// resolves to Other. The mediaType is carried through from the feed item for
// future rules and does not currently affect classification.
func (c *Categorizer) Categorize(caption, mediaType string, hasEventIndicators bool) CategoryResult {
	_ = mediaType

	if caption == "" {
		return CategoryResult{
			Primary:    CategoryOther,
			Confidence: otherConfidence,
			Hashtags:   []string{},
		}
	}

	hashtags := ExtractHashtags(caption)

	if hasEventIndicators {
		return c.categorizeEvent(caption, hashtags)
	}

	scores := c.scoreCategories(caption, hashtags)

	primary, secondary := topTwo(scores)
	if scores[primary] == 0 {
		return CategoryResult{
			Primary:    CategoryOther,
			Confidence: otherConfidence,
			Hashtags:   hashtags,
		}
	}

	result := CategoryResult{
		Primary:    primary,
		Confidence: scores[primary],
		Hashtags:   hashtags,
	}
	if scores[secondary] > secondaryThreshold {
		sec := secondary
		result.Secondary = &sec
	}
	return result
}

// categorizeEvent handles captions that already carry event indicators.
// The Exhibition, Workshop and Music pattern sets are checked in that fixed
// order; the first strong match becomes the primary with Event demoted to
// secondary.
func (c *Categorizer) categorizeEvent(caption string, hashtags []string) CategoryResult {
	for _, sub := range eventSubCategories {
		distinct := 0
		for _, pattern := range categoryPatterns[sub] {
			if pattern.MatchString(caption) {
				distinct++
			}
		}
		if distinct >= strongMatchPatterns {
			confidence := eventConfidence
			if distinct > strongMatchPatterns {
				confidence = strongEventConfidence
			}
			event := CategoryEvent
			return CategoryResult{
				Primary:    sub,
				Secondary:  &event,
				Confidence: confidence,
				Hashtags:   hashtags,
			}
		}
	}

	return CategoryResult{
		Primary:    CategoryEvent,
		Confidence: eventConfidence,
		Hashtags:   hashtags,
	}
}

// scoreCategories computes the pattern-match score for every category
// except Other, capped at 1.0.
func (c *Categorizer) scoreCategories(caption string, hashtags []string) map[Category]float64 {
	hashtagText := strings.Join(hashtags, " ")
	scores := make(map[Category]float64, int(numCategories)-1)

	for cat := CategoryEvent; cat < numCategories; cat++ {
		score := 0.0
		for _, pattern := range categoryPatterns[cat] {
			score += captionMatchScore * float64(len(pattern.FindAllString(caption, -1)))
			if hashtagText != "" {
				score += hashtagMatchScore * float64(len(pattern.FindAllString(hashtagText, -1)))
			}
		}
		if cat == CategorySelfie && firstPersonPattern.MatchString(caption) {
			score += selfieBonus
		}
		if score > 1.0 {
			score = 1.0
		}
		scores[cat] = score
	}
	return scores
}

// topTwo returns the best and second-best categories by score, ties broken
// by enum order so results are deterministic.
func topTwo(scores map[Category]float64) (primary, secondary Category) {
	primary, secondary = CategoryOther, CategoryOther
	best, second := -1.0, -1.0
	for cat := CategoryEvent; cat < numCategories; cat++ {
		s := scores[cat]
		switch {
		case s > best:
			secondary, second = primary, best
			primary, best = cat, s
		case s > second:
			secondary, second = cat, s
		}
	}
	return primary, secondary
}

// ExtractHashtags returns caption hashtags in order of appearance with the
// leading '#' stripped. Duplicates are preserved.
func ExtractHashtags(caption string) []string {
	matches := hashtagPattern.FindAllString(caption, -1)
	hashtags := make([]string, 0, len(matches))
	for _, m := range matches {
		hashtags = append(hashtags, strings.TrimPrefix(m, "#"))
	}
	return hashtags
}
