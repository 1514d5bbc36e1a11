// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package api

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"newline escaped", "line1\nline2", `line1\x0aline2`},
		{"carriage return escaped", "a\rb", `a\x0db`},
		{"delete escaped", "a\x7fb", `a\x7fb`},
		{"unicode preserved", "café ☕", "café ☕"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"status":"success"}`))
	b := generateETag([]byte(`{"status":"success"}`))
	c := generateETag([]byte(`{"status":"error"}`))

	if a != b {
		t.Errorf("same input produced different ETags: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different inputs produced the same ETag: %q", a)
	}
	if generateETag(nil) == "" {
		t.Errorf("empty input produced an empty ETag")
	}
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"present", "/digest?count=7", 7},
		{"missing", "/digest", 3},
		{"not a number", "/digest?count=many", 3},
		{"negative", "/digest?count=-2", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := getIntParam(r, "count", 3); got != tt.want {
				t.Errorf("getIntParam = %d, want %d", got, tt.want)
			}
		})
	}
}
