package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"anime_picker/internal/domain"
)

type TimelineService struct {
	gateway Gateway
	logger  *slog.Logger
}

func NewTimelineService(gateway Gateway, logger *slog.Logger) *TimelineService {
	return &TimelineService{
		gateway: gateway,
		logger:  logger.With("component", "timeline"),
	}
}

// FetchTimeline accepts the id in its string form. An empty id yields the no-subject state without a gateway call.
func (s *TimelineService) FetchTimeline(ctx context.Context, rawID string) (*domain.Timeline, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return &domain.Timeline{State: domain.TimelineNoSubject}, nil
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return nil, &domain.ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("invalid media id %q", rawID),
		}
	}

	return s.FetchTimelineByID(ctx, id)
}

// FetchTimelineByID makes exactly one gateway call; a failure is returned as is.
func (s *TimelineService) FetchTimelineByID(ctx context.Context, id int64) (*domain.Timeline, error) {
	rel, err := s.gateway.FetchRelations(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch timeline", "media_id", id, "error", err)
		return nil, fmt.Errorf("fetch relations: %w", err)
	}

	timeline := BuildTimeline(rel)

	s.logger.Info("built timeline",
		"media_id", id,
		"state", timeline.State,
		"relations", timeline.RelationCount,
		"edges", len(rel.Edges),
	)

	return timeline, nil
}

// BuildTimeline keeps the relevant relation kinds and orders subject plus relations by start year.
// Entries without a year go last; ties keep gateway order.
func BuildTimeline(rel *domain.MediaRelations) *domain.Timeline {
	subject := rel.MediaNode

	var relevant []domain.RelationEdge
	for _, e := range rel.Edges {
		if e.RelationType.IsRelevant() {
			relevant = append(relevant, e)
		}
	}

	if len(relevant) == 0 {
		return &domain.Timeline{
			State:   domain.TimelineNoRelations,
			Subject: &subject,
		}
	}

	entries := make([]domain.TimelineEntry, 0, len(relevant)+1)
	entries = append(entries, domain.TimelineEntry{
		MediaNode:    subject,
		RelationType: domain.RelationCurrent,
		IsCurrent:    true,
	})
	for _, e := range relevant {
		entries = append(entries, domain.TimelineEntry{
			MediaNode:    e.Node,
			RelationType: e.RelationType,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		yi, okI := entries[i].Year()
		yj, okJ := entries[j].Year()
		switch {
		case okI && okJ:
			return yi < yj
		case okI:
			return true
		default:
			return false
		}
	})

	return &domain.Timeline{
		State:         domain.TimelineSuccess,
		Subject:       &subject,
		Entries:       entries,
		RelationCount: len(relevant),
	}
}
