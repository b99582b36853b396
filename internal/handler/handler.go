package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"anime_picker/internal/domain"
)

type RandomSampler interface {
	SampleRandomMedia(ctx context.Context, startYear, endYear, maxAttempts int) (*domain.MediaSummary, error)
	Bounds() domain.YearBounds
}

type TimelineFetcher interface {
	FetchTimeline(ctx context.Context, rawID string) (*domain.Timeline, error)
}

type Handler struct {
	sampler  RandomSampler
	timeline TimelineFetcher
	logger   *slog.Logger
}

func NewHandler(sampler RandomSampler, timeline TimelineFetcher, logger *slog.Logger) *Handler {
	return &Handler{
		sampler:  sampler,
		timeline: timeline,
		logger:   logger.With("component", "handler"),
	}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
