package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"anime_picker/internal/domain"
)

const (
	SourceID       = "anilist"
	DefaultBaseURL = "https://graphql.anilist.co"
)

// Config holds AniList gateway configuration.
type Config struct {
	BaseURL string
	// Timeout of zero leaves the transport default in place.
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the AniList GraphQL endpoint. It never retries; callers own the retry policy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// New creates a new AniList client.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   baseURL,
		userAgent: cfg.UserAgent,
		logger:    logger.With("source", SourceID),
	}
}

// FetchPage runs the date-range query for one page.
func (c *Client) FetchPage(ctx context.Context, q domain.PageQuery) (*domain.MediaPage, error) {
	vars := map[string]any{
		"page":      q.Page,
		"perPage":   q.PerPage,
		"startDate": q.Filter.StartDate(),
		"endDate":   q.Filter.EndDate(),
	}
	if q.Sort != "" {
		vars["sort"] = []string{q.Sort}
	}

	var data pageData
	if err := c.do(ctx, mediaPageQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.Page == nil || data.Page.PageInfo == nil {
		return nil, &domain.GatewayProtocolError{Message: "missing data.Page in response"}
	}

	page := &domain.MediaPage{
		PageInfo: domain.PageInfo{
			Total:       data.Page.PageInfo.Total,
			PerPage:     data.Page.PageInfo.PerPage,
			CurrentPage: data.Page.PageInfo.CurrentPage,
			LastPage:    data.Page.PageInfo.LastPage,
			HasNextPage: data.Page.PageInfo.HasNextPage,
		},
		Media: c.transformMedia(data.Page.Media),
	}

	c.logger.Debug("fetched page",
		"page", q.Page,
		"per_page", q.PerPage,
		"items", len(page.Media),
		"total", page.PageInfo.Total,
		"last_page", page.PageInfo.LastPage,
	)

	return page, nil
}

// FetchRelations runs the relations query for one media id.
func (c *Client) FetchRelations(ctx context.Context, id int64) (*domain.MediaRelations, error) {
	var data mediaData
	if err := c.do(ctx, mediaRelationsQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Media == nil {
		return nil, &domain.GatewayProtocolError{Message: "missing data.Media in response"}
	}

	rel := &domain.MediaRelations{MediaNode: transformNode(data.Media.Node)}
	if data.Media.Relations != nil {
		for _, e := range data.Media.Relations.Edges {
			if e.Node == nil {
				continue
			}
			rel.Edges = append(rel.Edges, domain.RelationEdge{
				RelationType: domain.RelationType(e.RelationType),
				Node:         transformNode(*e.Node),
			})
		}
	}

	c.logger.Debug("fetched relations", "media_id", id, "edges", len(rel.Edges))

	return rel, nil
}

func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.GatewayProtocolError{Message: "execute request", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.GatewayProtocolError{StatusCode: resp.StatusCode, Message: "read response", Err: err}
	}

	var envelope graphQLResponse
	decodeErr := json.Unmarshal(raw, &envelope)

	// AniList reports query errors with a 4xx status and a regular errors array.
	if len(envelope.Errors) > 0 {
		return &domain.GatewayProtocolError{StatusCode: resp.StatusCode, Message: envelope.Errors[0].Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.GatewayProtocolError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status: %d", resp.StatusCode),
		}
	}
	if decodeErr != nil {
		return &domain.GatewayProtocolError{StatusCode: resp.StatusCode, Message: "decode response", Err: decodeErr}
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return &domain.GatewayProtocolError{StatusCode: resp.StatusCode, Message: "missing data in response"}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &domain.GatewayProtocolError{StatusCode: resp.StatusCode, Message: "decode data", Err: err}
	}

	return nil
}

func (c *Client) transformMedia(media []Media) []domain.MediaSummary {
	out := make([]domain.MediaSummary, 0, len(media))

	for _, m := range media {
		summary := domain.MediaSummary{
			ID:         m.ID,
			Title:      transformTitle(m.Title),
			CoverImage: transformCover(m.CoverImage),
			StartDate:  domain.FuzzyDate{Year: m.StartDate.Year, Month: m.StartDate.Month, Day: m.StartDate.Day},
			EndDate:    domain.FuzzyDate{Year: m.EndDate.Year, Month: m.EndDate.Month, Day: m.EndDate.Day},
			Episodes:   m.Episodes,
			Genres:     m.Genres,
			Score:      m.AverageScore,
			SiteURL:    m.SiteURL,
			Format:     deref(m.Format),
			Season:     deref(m.Season),
			SeasonYear: m.SeasonYear,
		}

		if m.Description != nil {
			text, err := StripTags(*m.Description)
			if err != nil {
				c.logger.Warn("failed to strip description markup",
					"media_id", m.ID,
					"error", err,
				)
				text = *m.Description
			}
			summary.Description = text
		}

		for _, s := range m.Studios.Nodes {
			summary.Studios = append(summary.Studios, s.Name)
		}

		for _, t := range m.Tags {
			summary.Tags = append(summary.Tags, domain.Tag{
				Name:     t.Name,
				Category: t.Category,
			})
		}

		out = append(out, summary)
	}

	return out
}

func transformNode(n Node) domain.MediaNode {
	return domain.MediaNode{
		ID:         n.ID,
		Title:      transformTitle(n.Title),
		CoverImage: transformCover(n.CoverImage),
		StartYear:  n.StartDate.Year,
		Format:     deref(n.Format),
	}
}

func transformTitle(t Title) domain.Title {
	return domain.Title{Romaji: deref(t.Romaji), English: deref(t.English)}
}

func transformCover(c CoverImage) domain.CoverImage {
	return domain.CoverImage{Large: deref(c.Large), ExtraLarge: deref(c.ExtraLarge)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
