// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package ranking

import (
	"reflect"
	"testing"
)

func TestDetectEventSignals(t *testing.T) {
	tests := []struct {
		name          string
		caption       string
		wantIndicator bool
		wantKeywords  []string
	}{
		{
			name:    "empty caption",
			caption: "",
		},
		{
			name:    "plain caption",
			caption: "sunset walk with the dog",
		},
		{
			name:          "date match",
			caption:       "see you on 5/12/2026!",
			wantIndicator: true,
			wantKeywords:  []string{"5/12/2026"},
		},
		{
			name:          "time match with meridiem",
			caption:       "doors at 7:30 PM",
			wantIndicator: true,
			wantKeywords:  []string{"7:30 PM"},
		},
		{
			name:          "address match",
			caption:       "find us at 123 Main Street downtown",
			wantIndicator: true,
			wantKeywords:  []string{"123 Main Street"},
		},
		{
			name:          "keyword match is case insensitive",
			caption:       "please rsvp by friday",
			wantIndicator: true,
			wantKeywords:  []string{"rsvp"},
		},
		{
			name:          "multiple patterns keep pattern order",
			caption:       "Workshop on 5/12/2026 at 7:30 PM, RSVP now",
			wantIndicator: true,
			wantKeywords:  []string{"5/12/2026", "7:30 PM", "Workshop", "RSVP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectEventSignals(tt.caption)
			if got.HasEventIndicators != tt.wantIndicator {
				t.Errorf("HasEventIndicators = %v, want %v", got.HasEventIndicators, tt.wantIndicator)
			}
			if !reflect.DeepEqual(got.Keywords, tt.wantKeywords) {
				t.Errorf("Keywords = %q, want %q", got.Keywords, tt.wantKeywords)
			}
		})
	}
}

func TestDetectEventSignalsDeterministic(t *testing.T) {
	caption := "Conference tickets on sale 10-11-2026, register at 9:00 AM"
	first := DetectEventSignals(caption)
	second := DetectEventSignals(caption)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated detection differs: %+v vs %+v", first, second)
	}
}
