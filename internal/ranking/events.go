// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package ranking

import (
	"regexp"

	"github.com/tomtom215/feedscope/internal/models"
)

// eventPatterns is the fixed, ordered list of regexes that mark a caption as
// event-related. Detection walks the list in order and appends every match,
// so keyword ordering in the result is pattern order then match order.
var eventPatterns = []*regexp.Regexp{
	// Date-like: 5/12/2026, 05-12-26
	regexp.MustCompile(`(?i)\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b`),
	// Time-like: 7:30, 7:30 PM
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(?:AM|PM)?\b`),
	// Street-address-like: 123 Main Street
	regexp.MustCompile(`(?i)\b\d{1,3}\s+[A-Za-z\s,]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd)\b`),
	// Event keyword terms
	regexp.MustCompile(`(?i)\b(?:RSVP|register|sign up|tickets|event|meeting|conference|workshop)\b`),
}

// DetectEventSignals scans a caption for event indicators. An empty caption
// yields zero signals. The scan is pure: the same text always produces the
// same signals.
func DetectEventSignals(caption string) models.EventSignals {
	if caption == "" {
		return models.EventSignals{}
	}

	var signals models.EventSignals
	for _, pattern := range eventPatterns {
		matches := pattern.FindAllString(caption, -1)
		if len(matches) > 0 {
			signals.HasEventIndicators = true
			signals.Keywords = append(signals.Keywords, matches...)
		}
	}
	return signals
}
