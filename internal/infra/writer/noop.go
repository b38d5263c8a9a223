package writer

import (
	"context"
	"fmt"

	"blogsmith/internal/domain/entity"
)

// NoopWriter returns a canned post without calling any API. It keeps local
// development and demos working when no provider credentials are configured.
type NoopWriter struct{}

// NewNoopWriter creates a new NoopWriter.
func NewNoopWriter() *NoopWriter {
	return &NoopWriter{}
}

// WritePost returns a deterministic placeholder post for the topic.
func (n *NoopWriter) WritePost(_ context.Context, topic string, items []entity.NewsItem) (*entity.Post, error) {
	return &entity.Post{
		Title: fmt.Sprintf("%s: An Overview", topic),
		MetaDescription: fmt.Sprintf(
			"An overview of %s covering recent developments and practical takeaways for readers following the subject.",
			topic),
		PostContent: fmt.Sprintf(
			"This placeholder post about %s stands in for AI-generated content. "+
				"It is produced without calling any model API, which keeps local development "+
				"working when no credentials are configured. %d news items were retrieved for the topic.",
			topic, len(items)),
	}, nil
}
