package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"anime_picker/internal/domain"
)

// Gateway is the media query endpoint: one date-range query and one relations query.
type Gateway interface {
	FetchPage(ctx context.Context, q domain.PageQuery) (*domain.MediaPage, error)
	FetchRelations(ctx context.Context, id int64) (*domain.MediaRelations, error)
}

type Publisher interface {
	Publish(ctx context.Context, filter domain.MediaFilter, media *domain.MediaSummary) error
	Close() error
}
