package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anime_picker/internal/domain"
	"anime_picker/internal/handler"
)

type stubSampler struct{}

func (stubSampler) SampleRandomMedia(_ context.Context, start, end, _ int) (*domain.MediaSummary, error) {
	return &domain.MediaSummary{ID: 1, Title: domain.Title{Romaji: "Stub"}}, nil
}

func (stubSampler) Bounds() domain.YearBounds {
	return domain.DefaultYearBounds
}

type stubTimeline struct{}

func (stubTimeline) FetchTimeline(context.Context, string) (*domain.Timeline, error) {
	return &domain.Timeline{State: domain.TimelineNoSubject}, nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(Setup(handler.NewHandler(stubSampler{}, stubTimeline{}, logger)))
	t.Cleanup(srv.Close)
	return srv
}

func TestSetup_Routes(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/random", "/timeline", "/health"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestSetup_UnknownRoute(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSetup_MethodNotAllowed(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/random", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
