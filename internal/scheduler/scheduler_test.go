package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anime_picker/internal/domain"
)

type countingSampler struct {
	mu      sync.Mutex
	calls   int
	filters []domain.MediaFilter
	err     error
}

func (c *countingSampler) Sample(_ context.Context, filter domain.MediaFilter) (*domain.MediaSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.filters = append(c.filters, filter)
	if c.err != nil {
		return nil, c.err
	}
	return &domain.MediaSummary{ID: int64(c.calls), Title: domain.Title{Romaji: "Pick"}}, nil
}

func (c *countingSampler) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_PicksImmediatelyAndOnTick(t *testing.T) {
	sampler := &countingSampler{}
	filter := domain.MediaFilter{StartYear: 2000, EndYear: 2005}
	sched := NewScheduler(sampler, filter, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Start(ctx) }()

	require.Eventually(t, func() bool { return sampler.count() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)

	sampler.mu.Lock()
	defer sampler.mu.Unlock()
	for _, f := range sampler.filters {
		assert.Equal(t, filter, f)
	}
}

func TestScheduler_FailedPickKeepsRunning(t *testing.T) {
	sampler := &countingSampler{err: errors.New("gateway down")}
	sched := NewScheduler(sampler, domain.MediaFilter{StartYear: 1990, EndYear: 1990}, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Start(ctx) }()

	require.Eventually(t, func() bool { return sampler.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
}
