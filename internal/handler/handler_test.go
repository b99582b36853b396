package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"anime_picker/internal/domain"
)

type sampleCall struct {
	start, end, maxAttempts int
}

type fakeSampler struct {
	calls  []sampleCall
	media  *domain.MediaSummary
	err    error
	bounds domain.YearBounds
}

func (f *fakeSampler) SampleRandomMedia(_ context.Context, start, end, maxAttempts int) (*domain.MediaSummary, error) {
	f.calls = append(f.calls, sampleCall{start, end, maxAttempts})
	if f.err != nil {
		return nil, f.err
	}
	return f.media, nil
}

func (f *fakeSampler) Bounds() domain.YearBounds {
	return f.bounds
}

type fakeTimeline struct {
	rawIDs   []string
	timeline *domain.Timeline
	err      error
}

func (f *fakeTimeline) FetchTimeline(_ context.Context, rawID string) (*domain.Timeline, error) {
	f.rawIDs = append(f.rawIDs, rawID)
	if f.err != nil {
		return nil, f.err
	}
	return f.timeline, nil
}

type HandlerTestSuite struct {
	suite.Suite
	sampler  *fakeSampler
	timeline *fakeTimeline
	handler  *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	score := 77
	s.sampler = &fakeSampler{
		bounds: domain.DefaultYearBounds,
		media: &domain.MediaSummary{
			ID:      21,
			Title:   domain.Title{Romaji: "One Piece"},
			Score:   &score,
			SiteURL: "https://anilist.co/anime/21",
		},
	}
	s.timeline = &fakeTimeline{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = NewHandler(s.sampler, s.timeline, logger)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) get(fn http.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func (s *HandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func (s *HandlerTestSuite) TestGetRandom_Success() {
	rec := s.get(s.handler.GetRandom, "/random?start=1990&end=2000&max_attempts=3")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.Equal([]sampleCall{{1990, 2000, 3}}, s.sampler.calls)

	var card domain.MediaCard
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&card))
	s.Equal(int64(21), card.ID)
	s.Equal("One Piece", card.Title)
	s.Equal("77/100", card.Score)
}

func (s *HandlerTestSuite) TestGetRandom_DefaultsToBounds() {
	rec := s.get(s.handler.GetRandom, "/random")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]sampleCall{{domain.DefaultMinYear, domain.DefaultMaxYear, 0}}, s.sampler.calls)
}

func (s *HandlerTestSuite) TestGetRandom_MalformedParameters() {
	for _, target := range []string{
		"/random?start=abc",
		"/random?end=20x0",
		"/random?max_attempts=-1",
		"/random?max_attempts=1000",
	} {
		rec := s.get(s.handler.GetRandom, target)
		s.Equal(http.StatusBadRequest, rec.Code, target)
		s.Equal("invalid_parameter", s.decodeError(rec).Error, target)
	}
	s.Empty(s.sampler.calls)
}

func (s *HandlerTestSuite) TestGetRandom_ValidationError() {
	s.sampler.err = &domain.ValidationError{
		Field:   "start_year",
		Message: "start year must be less than or equal to end year",
	}

	rec := s.get(s.handler.GetRandom, "/random?start=2000&end=1990")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("start year must be less than or equal to end year", s.decodeError(rec).Message)
}

func (s *HandlerTestSuite) TestGetRandom_NoResults() {
	s.sampler.err = &domain.NoResultsError{Filter: domain.MediaFilter{StartYear: 1961, EndYear: 1961}}

	rec := s.get(s.handler.GetRandom, "/random?start=1961&end=1961")

	s.Equal(http.StatusNotFound, rec.Code)
	resp := s.decodeError(rec)
	s.Equal("no_results", resp.Error)
	s.Equal("no anime found in the year range 1961-1961", resp.Message)
}

func (s *HandlerTestSuite) TestGetRandom_Exhausted() {
	s.sampler.err = &domain.SamplingExhaustedError{Attempts: 5, Err: &domain.EmptyPageError{Page: 3}}

	rec := s.get(s.handler.GetRandom, "/random")

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("upstream_error", s.decodeError(rec).Error)
}

func (s *HandlerTestSuite) TestGetRandom_GatewayTimeoutExhausted() {
	s.sampler.err = &domain.SamplingExhaustedError{
		Attempts: 3,
		Err: fmt.Errorf("count probe: %w", &domain.GatewayProtocolError{
			Message: "execute request",
			Err:     context.DeadlineExceeded,
		}),
	}

	rec := s.get(s.handler.GetRandom, "/random")

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("upstream_error", s.decodeError(rec).Error)
}

func (s *HandlerTestSuite) TestGetRandom_CallerCanceled() {
	s.sampler.err = context.Canceled

	rec := s.get(s.handler.GetRandom, "/random")

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("request_timeout", s.decodeError(rec).Error)
}

func (s *HandlerTestSuite) TestGetRandom_UnknownError() {
	s.sampler.err = errors.New("boom")

	rec := s.get(s.handler.GetRandom, "/random")

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *HandlerTestSuite) TestGetTimeline_Success() {
	year := 2013
	subject := domain.MediaNode{ID: 16498, Title: domain.Title{Romaji: "Shingeki no Kyojin"}, StartYear: &year}
	s.timeline.timeline = &domain.Timeline{
		State:         domain.TimelineSuccess,
		Subject:       &subject,
		Entries:       []domain.TimelineEntry{{MediaNode: subject, RelationType: domain.RelationCurrent, IsCurrent: true}},
		RelationCount: 3,
	}

	rec := s.get(s.handler.GetTimeline, "/timeline?id=16498")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]string{"16498"}, s.timeline.rawIDs)

	var view domain.TimelineView
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&view))
	s.Equal(domain.TimelineSuccess, view.State)
	s.Equal("Found 3 related anime in this series", view.Message)
	s.Require().Len(view.Cards, 1)
	s.True(view.Cards[0].Current)
	s.Equal("2013", view.Cards[0].Year)
}

func (s *HandlerTestSuite) TestGetTimeline_NoSubject() {
	s.timeline.timeline = &domain.Timeline{State: domain.TimelineNoSubject}

	rec := s.get(s.handler.GetTimeline, "/timeline")

	s.Equal(http.StatusOK, rec.Code)
	var view domain.TimelineView
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&view))
	s.Equal(domain.TimelineNoSubject, view.State)
	s.Empty(view.Cards)
}

func (s *HandlerTestSuite) TestGetTimeline_InvalidID() {
	s.timeline.err = &domain.ValidationError{Field: "id", Message: `invalid media id "abc"`}

	rec := s.get(s.handler.GetTimeline, "/timeline?id=abc")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(`invalid media id "abc"`, s.decodeError(rec).Message)
}

func (s *HandlerTestSuite) TestGetTimeline_FetchError() {
	s.timeline.err = &domain.GatewayProtocolError{StatusCode: 500, Message: "unexpected status: 500"}

	rec := s.get(s.handler.GetTimeline, "/timeline?id=1")

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("Failed to fetch anime data. Please try again.", s.decodeError(rec).Message)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.get(s.handler.Health, "/health")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}
