package scheduler

import (
	"context"
	"log/slog"
	"time"

	"anime_picker/internal/domain"
)

// Sampler defines the pick operation run on every tick.
type Sampler interface {
	Sample(ctx context.Context, filter domain.MediaFilter) (*domain.MediaSummary, error)
}

// Scheduler draws one pick per interval. Publishing is the sampler's concern.
type Scheduler struct {
	sampler  Sampler
	filter   domain.MediaFilter
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(sampler Sampler, filter domain.MediaFilter, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sampler:  sampler,
		filter:   filter,
		interval: interval,
		timeout:  5 * time.Minute,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"start_year", s.filter.StartYear,
		"end_year", s.filter.EndYear,
	)

	s.runPick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPick(ctx)
		}
	}
}

func (s *Scheduler) runPick(ctx context.Context) {
	pickCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	media, err := s.sampler.Sample(pickCtx, s.filter)
	if err != nil {
		s.logger.Error("scheduled pick failed", "error", err)
		return
	}

	s.logger.Info("scheduled pick",
		"media_id", media.ID,
		"title", media.DisplayTitle(),
	)
}
