// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/feedscope/internal/classify"
	"github.com/tomtom215/feedscope/internal/digest"
	"github.com/tomtom215/feedscope/internal/logging"
	"github.com/tomtom215/feedscope/internal/metrics"
	"github.com/tomtom215/feedscope/internal/models"
	"github.com/tomtom215/feedscope/internal/ranking"
	"github.com/tomtom215/feedscope/internal/snapshot"
)

// HandlerConfig bounds the digest sizes callers may request.
type HandlerConfig struct {
	// DefaultCount is used when a digest request omits the count.
	DefaultCount int

	// MaxCount caps the digest size a caller may request.
	MaxCount int
}

// Handler serves the ranking API. All fields are set at construction and
// never mutated, so a single Handler is safe for concurrent use.
type Handler struct {
	scorer      *ranking.Scorer
	prioritizer *ranking.Prioritizer
	categorizer *classify.Categorizer
	selector    *digest.Selector
	loader      *snapshot.Loader
	cfg         HandlerConfig
	startTime   time.Time
}

// NewHandler creates a Handler from the engine's collaborators. A nil loader
// disables the snapshot-backed GET digest endpoint.
func NewHandler(scorer *ranking.Scorer, prioritizer *ranking.Prioritizer, categorizer *classify.Categorizer, selector *digest.Selector, loader *snapshot.Loader, cfg HandlerConfig) *Handler {
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = 10
	}
	if cfg.MaxCount < cfg.DefaultCount {
		cfg.MaxCount = cfg.DefaultCount
	}
	return &Handler{
		scorer:      scorer,
		prioritizer: prioritizer,
		categorizer: categorizer,
		selector:    selector,
		loader:      loader,
		cfg:         cfg,
		startTime:   time.Now(),
	}
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"status":         "healthy",
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
	}
	if h.loader != nil {
		data["snapshot_dir"] = h.loader.Dir()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// ScorePost handles POST /api/v1/posts/score. It scores and prioritizes a
// single post without touching any stored state.
func (h *Handler) ScorePost(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "request body must be valid JSON", err)
		return
	}
	if err := req.Post.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_POST", err.Error(), nil)
		return
	}

	start := time.Now()
	score, signals := h.scorer.ScorePost(&req.Post)
	priority := h.prioritizer.Prioritize(&req.Post, signals, score)

	metrics.PostsScoredTotal.Inc()
	metrics.FinalScoreDistribution.Observe(score.FinalScore)
	metrics.PriorityLevelsTotal.WithLabelValues(priority.Level.String()).Inc()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: ScoreResponse{
			PostID:          req.Post.PostID,
			ComponentScores: score.ComponentScores,
			FinalScore:      score.FinalScore,
			Priority: PriorityPayload{
				Level:  priority.Level,
				Reason: priority.Reason,
			},
			EventSignals: signals,
		},
		Metadata: models.Metadata{
			Timestamp:     time.Now(),
			ComputeTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// CategorizePost handles POST /api/v1/posts/categorize.
func (h *Handler) CategorizePost(w http.ResponseWriter, r *http.Request) {
	var req CategorizeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "request body must be valid JSON", err)
		return
	}

	start := time.Now()
	signals := ranking.DetectEventSignals(req.Caption)
	categories := h.categorizer.Categorize(req.Caption, req.MediaType, signals.HasEventIndicators)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: CategorizeResponse{
			Categories:   categories,
			EventSignals: signals,
		},
		Metadata: models.Metadata{
			Timestamp:     time.Now(),
			ComputeTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// DigestFromPosts handles POST /api/v1/digest/top: the caller supplies the
// candidate posts inline.
func (h *Handler) DigestFromPosts(w http.ResponseWriter, r *http.Request) {
	var req DigestRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "request body must be valid JSON", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	count, apiErr := h.resolveCount(req.Count)
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	h.serveDigest(w, req.Posts, count, "")
}

// DigestLatest handles GET /api/v1/digest/top?count=N: the candidates come
// from the most recent collector snapshot on disk.
func (h *Handler) DigestLatest(w http.ResponseWriter, r *http.Request) {
	if h.loader == nil {
		respondError(w, http.StatusServiceUnavailable, "SNAPSHOT_ERROR", "no snapshot directory configured", nil)
		return
	}

	count, apiErr := h.resolveCount(getIntParam(r, "count", 0))
	if apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	posts, path, err := h.loader.LoadLatest()
	if err != nil {
		metrics.SnapshotLoadErrors.Inc()
		if errors.Is(err, snapshot.ErrNoSnapshots) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "no feed snapshots available", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "SNAPSHOT_ERROR", "failed to load feed snapshot", err)
		return
	}
	metrics.SnapshotPostsLoaded.Set(float64(len(posts)))

	h.serveDigest(w, posts, count, path)
}

// serveDigest runs the selector and writes the digest response.
func (h *Handler) serveDigest(w http.ResponseWriter, posts []models.Post, count int, path string) {
	start := time.Now()
	top, err := h.selector.SelectTopDaily(posts, count)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPost) {
			respondError(w, http.StatusBadRequest, "INVALID_POST", err.Error(), nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "digest computation failed", err)
		return
	}
	elapsed := time.Since(start)
	metrics.ObserveDigest(len(top), elapsed)

	logging.Debug().
		Int("candidates", len(posts)).
		Int("selected", len(top)).
		Dur("elapsed", elapsed).
		Msg("Digest computed")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: DigestResponse{
			Posts: top,
			Count: len(top),
			Total: len(posts),
			Path:  path,
		},
		Metadata: models.Metadata{
			Timestamp:     time.Now(),
			ComputeTimeMS: elapsed.Milliseconds(),
		},
	})
}

// resolveCount applies the default and the configured ceiling.
func (h *Handler) resolveCount(count int) (int, *models.APIError) {
	if count == 0 {
		return h.cfg.DefaultCount, nil
	}
	if count < 0 {
		return 0, &models.APIError{Code: "VALIDATION_ERROR", Message: "count must be positive"}
	}
	if count > h.cfg.MaxCount {
		return 0, &models.APIError{Code: "VALIDATION_ERROR", Message: "count exceeds the configured maximum"}
	}
	return count, nil
}
