package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"anime_picker/internal/domain"
)

const (
	DefaultPerPage = 50
	DefaultSort    = "POPULARITY_DESC"
)

type SamplerConfig struct {
	PerPage int
	// Sort must be deterministic so page N means the same thing to the probe and the fetch.
	Sort    string
	Bounds  domain.YearBounds
	Retry   RetryPolicy
}

type EventKind string

const (
	EventAttempt   EventKind = "attempt"
	EventRetry     EventKind = "retry"
	EventPicked    EventKind = "picked"
	EventAborted   EventKind = "aborted"
	EventExhausted EventKind = "exhausted"
)

// SampleEvent is emitted at every step of the retry loop.
type SampleEvent struct {
	Kind        EventKind
	Filter      domain.MediaFilter
	Attempt     int
	MaxAttempts int
	Page        int
	LastPage    int
	Total       int
	MediaID     int64
	Backoff     time.Duration
	Err         error
}

type EventFunc func(SampleEvent)

type SamplerOption func(*Sampler)

// WithIntN replaces the random source. fn must return a value in [0, n).
func WithIntN(fn func(n int) int) SamplerOption {
	return func(s *Sampler) {
		s.intN = fn
	}
}

// WithEventFunc replaces the default slog-backed event sink.
func WithEventFunc(fn EventFunc) SamplerOption {
	return func(s *Sampler) {
		s.onEvent = fn
	}
}

// Sampler picks one media uniformly over pages, then uniformly within the chosen page.
//
// This is not uniform over the whole result set: a short last page over-represents its items,
// and the count probe and the page fetch are two independent reads of a live dataset, so the
// page may have shifted in between. Both are accepted.
type Sampler struct {
	gateway   Gateway
	publisher Publisher
	logger    *slog.Logger
	config    SamplerConfig
	intN      func(n int) int
	onEvent   EventFunc
}

func NewSampler(
	gateway Gateway,
	publisher Publisher,
	logger *slog.Logger,
	cfg SamplerConfig,
	opts ...SamplerOption,
) *Sampler {
	if cfg.PerPage <= 0 {
		cfg.PerPage = DefaultPerPage
	}
	if cfg.Sort == "" {
		cfg.Sort = DefaultSort
	}
	if cfg.Bounds == (domain.YearBounds{}) {
		cfg.Bounds = domain.DefaultYearBounds
	}
	cfg.Retry = cfg.Retry.withDefaults()

	s := &Sampler{
		gateway:   gateway,
		publisher: publisher,
		logger:    logger.With("component", "sampler"),
		config:    cfg,
		intN:      rand.IntN,
	}
	s.onEvent = s.logEvent

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleRandomMedia validates the year range and samples it. maxAttempts <= 0 uses the configured policy.
func (s *Sampler) SampleRandomMedia(ctx context.Context, startYear, endYear, maxAttempts int) (*domain.MediaSummary, error) {
	filter, err := s.config.Bounds.NewFilter(startYear, endYear)
	if err != nil {
		return nil, err
	}

	policy := s.config.Retry
	if maxAttempts > 0 {
		policy.MaxAttempts = maxAttempts
	}
	return s.sample(ctx, filter, policy)
}

// Sample runs the retry loop for an already validated filter.
func (s *Sampler) Sample(ctx context.Context, filter domain.MediaFilter) (*domain.MediaSummary, error) {
	return s.sample(ctx, filter, s.config.Retry)
}

// Bounds is the supported year window.
func (s *Sampler) Bounds() domain.YearBounds {
	return s.config.Bounds
}

func (s *Sampler) sample(ctx context.Context, filter domain.MediaFilter, policy RetryPolicy) (*domain.MediaSummary, error) {
	var lastErr error

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		ev := SampleEvent{Filter: filter, Attempt: attempt, MaxAttempts: policy.MaxAttempts}

		ev.Kind = EventAttempt
		s.onEvent(ev)

		media, err := s.attempt(ctx, filter, &ev)
		if err == nil {
			ev.Kind = EventPicked
			ev.MediaID = media.ID
			s.onEvent(ev)
			s.publish(ctx, filter, media)
			return media, nil
		}

		lastErr = err
		ev.Err = err

		if ctxErr := ctx.Err(); ctxErr != nil {
			ev.Kind = EventAborted
			s.onEvent(ev)
			return nil, ctxErr
		}

		if !policy.IsRetryable(err) {
			ev.Kind = EventAborted
			s.onEvent(ev)
			return nil, err
		}

		if attempt == policy.MaxAttempts {
			break
		}

		ev.Kind = EventRetry
		ev.Backoff = policy.Backoff(attempt)
		s.onEvent(ev)

		if err := wait(ctx, ev.Backoff); err != nil {
			return nil, err
		}
	}

	s.onEvent(SampleEvent{
		Kind:        EventExhausted,
		Filter:      filter,
		Attempt:     policy.MaxAttempts,
		MaxAttempts: policy.MaxAttempts,
		Err:         lastErr,
	})

	return nil, &domain.SamplingExhaustedError{Attempts: policy.MaxAttempts, Err: lastErr}
}

// attempt runs count probe, page selection, page fetch and item pick once.
func (s *Sampler) attempt(ctx context.Context, filter domain.MediaFilter, ev *SampleEvent) (*domain.MediaSummary, error) {
	probe, err := s.gateway.FetchPage(ctx, s.pageQuery(filter, 1))
	if err != nil {
		return nil, fmt.Errorf("count probe: %w", err)
	}

	ev.Total = probe.PageInfo.Total
	ev.LastPage = probe.PageInfo.LastPage

	if probe.PageInfo.Total == 0 {
		return nil, &domain.NoResultsError{Filter: filter}
	}
	if probe.PageInfo.LastPage < 1 {
		return nil, &domain.GatewayProtocolError{
			Message: fmt.Sprintf("invalid lastPage %d for total %d", probe.PageInfo.LastPage, probe.PageInfo.Total),
		}
	}

	ev.Page = s.intN(probe.PageInfo.LastPage) + 1

	page, err := s.gateway.FetchPage(ctx, s.pageQuery(filter, ev.Page))
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", ev.Page, err)
	}

	if len(page.Media) == 0 {
		return nil, &domain.EmptyPageError{Page: ev.Page}
	}

	media := page.Media[s.intN(len(page.Media))]
	return &media, nil
}

func (s *Sampler) pageQuery(filter domain.MediaFilter, page int) domain.PageQuery {
	return domain.PageQuery{
		Filter:  filter,
		Page:    page,
		PerPage: s.config.PerPage,
		Sort:    s.config.Sort,
	}
}

func (s *Sampler) publish(ctx context.Context, filter domain.MediaFilter, media *domain.MediaSummary) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, filter, media); err != nil {
		s.logger.Warn("failed to publish pick",
			"media_id", media.ID,
			"error", err,
		)
	}
}

func (s *Sampler) logEvent(ev SampleEvent) {
	switch ev.Kind {
	case EventAttempt:
		s.logger.Debug("sampling attempt",
			"attempt", ev.Attempt,
			"max_attempts", ev.MaxAttempts,
			"start_year", ev.Filter.StartYear,
			"end_year", ev.Filter.EndYear,
		)
	case EventRetry:
		s.logger.Warn("sampling attempt failed, retrying",
			"attempt", ev.Attempt,
			"max_attempts", ev.MaxAttempts,
			"page", ev.Page,
			"backoff", ev.Backoff,
			"error", ev.Err,
		)
	case EventPicked:
		s.logger.Info("picked media",
			"media_id", ev.MediaID,
			"attempt", ev.Attempt,
			"page", ev.Page,
			"last_page", ev.LastPage,
			"total", ev.Total,
		)
	case EventAborted:
		s.logger.Info("sampling stopped",
			"attempt", ev.Attempt,
			"error", ev.Err,
		)
	case EventExhausted:
		s.logger.Error("sampling exhausted",
			"attempts", ev.MaxAttempts,
			"error", ev.Err,
		)
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
