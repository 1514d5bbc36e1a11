// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const snapshotFixture = `[
  {
    "post_id": "3141592653589793238",
    "media_type": "photo",
    "caption": "Gallery opening 5/12/2026, doors at 6:00 PM #art",
    "taken_at": 1772366400,
    "like_count": 120,
    "comment_count": 14,
    "url": "https://example.com/p/3141592653589793238",
    "user": {
      "user_id": "42",
      "username": "gallerist",
      "is_verified": false,
      "is_close_friend": true,
      "follower_count": 2500
    }
  },
  {
    "post_id": "",
    "media_type": "photo",
    "caption": "missing id, skipped",
    "taken_at": 1772366400,
    "user": {"user_id": "43"}
  },
  {
    "post_id": "2718281828459045235",
    "media_type": "video",
    "caption": "no timestamp, skipped",
    "taken_at": 0,
    "user": {"user_id": "44"}
  }
]`

func writeSnapshot(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadNormalizesPosts(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, "feed_posts_20260830_120000.json", snapshotFixture)

	posts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len = %d, want 1 (incomplete entries skipped)", len(posts))
	}

	p := posts[0]
	if p.PostID != "3141592653589793238" {
		t.Errorf("PostID = %q", p.PostID)
	}
	if p.UserID != "42" || p.Username != "gallerist" {
		t.Errorf("author = %q/%q, want 42/gallerist", p.UserID, p.Username)
	}
	if !p.IsCloseFriend || p.IsVerified {
		t.Errorf("flags = close_friend:%v verified:%v", p.IsCloseFriend, p.IsVerified)
	}
	if p.EngagementCount != 134 {
		t.Errorf("EngagementCount = %d, want likes+comments = 134", p.EngagementCount)
	}
	if p.FollowerCount != 2500 {
		t.Errorf("FollowerCount = %d, want 2500", p.FollowerCount)
	}
	if p.CreatedAt.Unix() != 1772366400 {
		t.Errorf("CreatedAt = %v, want unix 1772366400", p.CreatedAt)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("loaded post invalid: %v", err)
	}
}

// TestLoadParsesCollectorTimestamps covers the collector's string form of
// taken_at: datetime.isoformat() output, naive local time, microseconds only
// when non-zero.
func TestLoadParsesCollectorTimestamps(t *testing.T) {
	const fixture = `[
	  {
	    "post_id": "1",
	    "media_type": "photo",
	    "caption": "morning",
	    "taken_at": "2026-08-30T09:15:00",
	    "like_count": 3,
	    "comment_count": 1,
	    "user": {"user_id": "u1", "username": "alice", "follower_count": 10}
	  },
	  {
	    "post_id": "2",
	    "media_type": "photo",
	    "caption": "fractional seconds",
	    "taken_at": "2026-08-30T09:15:00.123456",
	    "user": {"user_id": "u2", "username": "bob", "follower_count": 10}
	  },
	  {
	    "post_id": "3",
	    "media_type": "photo",
	    "caption": "zone aware",
	    "taken_at": "2026-08-30T09:15:00Z",
	    "user": {"user_id": "u3", "username": "carol", "follower_count": 10}
	  },
	  {
	    "post_id": "4",
	    "media_type": "photo",
	    "caption": "unparseable, skipped",
	    "taken_at": "yesterday-ish",
	    "user": {"user_id": "u4", "username": "dave", "follower_count": 10}
	  }
	]`

	dir := t.TempDir()
	path := writeSnapshot(t, dir, "feed_posts_20260830_091500.json", fixture)

	posts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len = %d, want 3 (unparseable timestamp skipped)", len(posts))
	}

	wantLocal := time.Date(2026, 8, 30, 9, 15, 0, 0, time.Local)
	if !posts[0].CreatedAt.Equal(wantLocal) {
		t.Errorf("CreatedAt = %v, want %v", posts[0].CreatedAt, wantLocal)
	}
	if !posts[1].CreatedAt.Equal(wantLocal.Add(123456 * time.Microsecond)) {
		t.Errorf("fractional CreatedAt = %v", posts[1].CreatedAt)
	}
	wantUTC := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
	if !posts[2].CreatedAt.Equal(wantUTC) {
		t.Errorf("zone-aware CreatedAt = %v, want %v", posts[2].CreatedAt, wantUTC)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeSnapshot(t, dir, "feed_posts_1.json", `{"not": "an array"`)

	if _, err := Load(path); err == nil {
		t.Errorf("Load succeeded on malformed JSON")
	}
}

func TestLoadLatestPicksNewest(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "feed_posts_20260829_120000.json", `[]`)
	latest := writeSnapshot(t, dir, "feed_posts_20260830_120000.json", snapshotFixture)
	writeSnapshot(t, dir, "unrelated.json", `[]`)

	loader := NewLoader(dir)
	posts, path, err := loader.LoadLatest()
	if err != nil {
		t.Fatalf("LoadLatest: %v", err)
	}
	if path != latest {
		t.Errorf("path = %q, want %q", path, latest)
	}
	if len(posts) != 1 {
		t.Errorf("len = %d, want 1", len(posts))
	}
}

func TestLoadLatestEmptyDir(t *testing.T) {
	loader := NewLoader(t.TempDir())
	if _, _, err := loader.LoadLatest(); !errors.Is(err, ErrNoSnapshots) {
		t.Errorf("err = %v, want ErrNoSnapshots", err)
	}
}
