// Package generate orchestrates blog post generation: it validates the
// topic, gathers recent news coverage, and drives a single synthesis call.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/observability/logging"
	"blogsmith/internal/observability/tracing"
	"blogsmith/internal/utils/text"
)

// maxTopicRunes caps the accepted topic length. Longer values are almost
// always pasted content rather than a topic.
const maxTopicRunes = 500

// NewsFetcher retrieves recent news coverage for a topic. Returning an empty
// slice is valid and means no coverage was found.
type NewsFetcher interface {
	FetchNews(ctx context.Context, topic string) ([]entity.NewsItem, error)
}

// PostWriter synthesizes a blog post from a topic and its news coverage.
type PostWriter interface {
	WritePost(ctx context.Context, topic string, items []entity.NewsItem) (*entity.Post, error)
}

// Service provides the post generation use case.
type Service struct {
	Fetcher NewsFetcher
	Writer  PostWriter
}

// NewService creates a generate Service with the provided dependencies.
func NewService(fetcher NewsFetcher, writer PostWriter) *Service {
	return &Service{
		Fetcher: fetcher,
		Writer:  writer,
	}
}

// Generate produces a blog post for the topic. The topic is validated before
// any provider is touched; news is fetched first and handed to the writer,
// with an empty item list being a valid writer input. Provider errors pass
// through unchanged so the handler can map them to status codes.
func (s *Service) Generate(ctx context.Context, topic string) (*entity.Post, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "generate-post")
	defer span.End()

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, &entity.ValidationError{Field: "topic", Message: "topic is required"}
	}
	if text.CountRunes(topic) > maxTopicRunes {
		return nil, &entity.ValidationError{
			Field:   "topic",
			Message: fmt.Sprintf("topic must be %d characters or fewer", maxTopicRunes),
		}
	}

	start := time.Now()

	items, err := s.fetchNews(ctx, topic)
	if err != nil {
		return nil, err
	}

	post, err := s.writePost(ctx, topic, items)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).InfoContext(ctx, "post generated",
		slog.String("topic", topic),
		slog.Int("news_items", len(items)),
		slog.Int("title_length", text.CountRunes(post.Title)),
		slog.Int("body_length", text.CountRunes(post.PostContent)),
		slog.Duration("duration", time.Since(start)))

	return post, nil
}

// fetchNews runs the fetcher call in its own span.
func (s *Service) fetchNews(ctx context.Context, topic string) ([]entity.NewsItem, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "fetch-news")
	defer span.End()

	logger := logging.FromContext(ctx)
	start := time.Now()

	items, err := s.Fetcher.FetchNews(ctx, topic)
	if err != nil {
		logger.ErrorContext(ctx, "news retrieval failed",
			slog.String("topic", topic),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, err
	}

	if len(items) == 0 {
		logger.InfoContext(ctx, "no news coverage found, writer will use general knowledge",
			slog.String("topic", topic))
	}

	return items, nil
}

// writePost runs the writer call in its own span.
func (s *Service) writePost(ctx context.Context, topic string, items []entity.NewsItem) (*entity.Post, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "write-post")
	defer span.End()

	logger := logging.FromContext(ctx)
	start := time.Now()

	post, err := s.Writer.WritePost(ctx, topic, items)
	if err != nil {
		logger.ErrorContext(ctx, "post synthesis failed",
			slog.String("topic", topic),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, err
	}

	return post, nil
}
