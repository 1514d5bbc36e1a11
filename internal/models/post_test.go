// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package models

import (
	"errors"
	"math"
	"testing"
	"time"
)

func validPost() Post {
	return Post{
		PostID:          "p1",
		UserID:          "u1",
		Caption:         "hello",
		EngagementCount: 10,
		FollowerCount:   100,
		CreatedAt:       time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Post)
		wantErr bool
	}{
		{"valid", func(p *Post) {}, false},
		{"no caption is fine", func(p *Post) { p.Caption = "" }, false},
		{"zero followers is fine", func(p *Post) { p.FollowerCount = 0 }, false},
		{"missing post id", func(p *Post) { p.PostID = "" }, true},
		{"negative engagement", func(p *Post) { p.EngagementCount = -1 }, true},
		{"negative followers", func(p *Post) { p.FollowerCount = -1 }, true},
		{"zero created at", func(p *Post) { p.CreatedAt = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPost()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPost) {
				t.Errorf("error %v does not wrap ErrInvalidPost", err)
			}
		})
	}
}

func TestEngagementRatio(t *testing.T) {
	tests := []struct {
		name       string
		engagement int
		followers  int
		want       float64
	}{
		{"normal", 50, 1000, 0.05},
		{"zero followers substitutes one", 10, 0, 10},
		{"zero engagement", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Post{EngagementCount: tt.engagement, FollowerCount: tt.followers}
			if got := p.EngagementRatio(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EngagementRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}
