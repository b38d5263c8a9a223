package news

import (
	"context"
	"log/slog"

	"blogsmith/internal/domain/entity"
)

// NoOp is a news fetcher that always reports zero coverage. It exercises the
// general-knowledge fallback path and keeps local development runnable
// without network access.
type NoOp struct{}

// NewNoOp creates a no-op news fetcher.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// FetchNews returns an empty result set.
func (n *NoOp) FetchNews(ctx context.Context, topic string) ([]entity.NewsItem, error) {
	slog.DebugContext(ctx, "noop news fetcher invoked", slog.String("topic", topic))
	return []entity.NewsItem{}, nil
}
