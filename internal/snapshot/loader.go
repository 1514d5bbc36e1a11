// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/feedscope/internal/logging"
	"github.com/tomtom215/feedscope/internal/models"
)

// ErrNoSnapshots indicates the snapshot directory holds no snapshot files.
var ErrNoSnapshots = errors.New("no snapshot files found")

// snapshotGlob matches files written by the collector.
const snapshotGlob = "feed_posts_*.json"

// rawUser is the collector's nested author block.
type rawUser struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	IsVerified    bool   `json:"is_verified"`
	IsCloseFriend bool   `json:"is_close_friend"`
	FollowerCount int    `json:"follower_count"`
}

// rawPost is one entry of a collector snapshot file.
type rawPost struct {
	PostID       string    `json:"post_id"`
	MediaType    string    `json:"media_type"`
	Caption      string    `json:"caption"`
	TakenAt      timestamp `json:"taken_at"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	URL          string    `json:"url"`
	User         rawUser   `json:"user"`
}

// timestampLayouts are tried in order for string timestamps. The collector
// writes datetime.isoformat() output: naive local time, fractional seconds
// only when non-zero. RFC3339 covers zone-aware strings.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
}

// timestamp accepts the collector's encodings of taken_at: a naive ISO-8601
// local-time string, or epoch seconds. Unparseable or non-positive values
// leave the zero time so the entry is skipped like any other incomplete one.
type timestamp struct {
	time.Time
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				t.Time = parsed
				return nil
			}
		}
		return nil
	}

	var epoch int64
	if err := json.Unmarshal(data, &epoch); err != nil {
		return err
	}
	if epoch > 0 {
		t.Time = time.Unix(epoch, 0)
	}
	return nil
}

// Loader reads snapshot files into normalized posts.
type Loader struct {
	dir string
}

// NewLoader creates a Loader over the given snapshot directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Dir returns the configured snapshot directory.
func (l *Loader) Dir() string {
	return l.dir
}

// LoadLatest loads the lexically newest snapshot file in the directory.
// The collector's timestamped naming makes lexical order chronological.
// Returns the loaded posts and the path that was read.
func (l *Loader) LoadLatest() ([]models.Post, string, error) {
	paths, err := filepath.Glob(filepath.Join(l.dir, snapshotGlob))
	if err != nil {
		return nil, "", fmt.Errorf("listing snapshots in %s: %w", l.dir, err)
	}
	if len(paths) == 0 {
		return nil, "", fmt.Errorf("%w in %s", ErrNoSnapshots, l.dir)
	}

	sort.Strings(paths)
	latest := paths[len(paths)-1]

	posts, err := Load(latest)
	if err != nil {
		return nil, "", err
	}
	return posts, latest, nil
}

// Load reads one snapshot file. Entries missing a post ID or timestamp are
// skipped with a warning rather than failing the whole snapshot; a file that
// is not valid JSON is an error.
func Load(path string) ([]models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var raw []rawPost
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}

	posts := make([]models.Post, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		if r.PostID == "" || r.TakenAt.IsZero() {
			skipped++
			continue
		}
		posts = append(posts, models.Post{
			PostID:          r.PostID,
			UserID:          r.User.UserID,
			Username:        r.User.Username,
			IsCloseFriend:   r.User.IsCloseFriend,
			IsVerified:      r.User.IsVerified,
			Caption:         r.Caption,
			MediaType:       r.MediaType,
			EngagementCount: r.LikeCount + r.CommentCount,
			FollowerCount:   r.User.FollowerCount,
			CreatedAt:       r.TakenAt.Time,
			URL:             r.URL,
		})
	}

	if skipped > 0 {
		logging.Warn().
			Str("path", path).
			Int("skipped", skipped).
			Int("loaded", len(posts)).
			Msg("Snapshot contained incomplete entries")
	}
	return posts, nil
}
