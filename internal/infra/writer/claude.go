// Package writer provides AI-backed blog post synthesis implementations.
// It includes adapters for the OpenAI and Claude APIs that share one prompt
// builder and one response parser, with circuit breakers, outbound rate
// limiting, structured logging, and Prometheus metrics.
package writer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sony/gobreaker"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/resilience/circuitbreaker"
	"blogsmith/internal/resilience/ratelimit"
	"blogsmith/internal/utils/text"
)

const defaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)

// ClaudeWriter implements post synthesis using Anthropic's Claude API.
// Each post is produced by a single Messages call; failures are never
// retried, so the client is built with SDK retries disabled.
type ClaudeWriter struct {
	cfg             Config
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	rateLimiter     *ratelimit.Limiter
	style           Style
	metricsRecorder PostMetricsRecorder
}

// NewClaudeWriter creates a Claude post writer with the given configuration
// and style profile.
func NewClaudeWriter(cfg Config, style Style) *ClaudeWriter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	slog.Info("initialized claude post writer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens),
		slog.Int("body_target", cfg.MinBodyChars))

	return &ClaudeWriter{
		cfg:             cfg,
		client:          anthropic.NewClient(opts...),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		rateLimiter:     ratelimit.New(1.0, 3),
		style:           style,
		metricsRecorder: NewPrometheusPostMetrics(),
	}
}

// WritePost synthesizes a blog post about the topic from the given news
// items. A missing API key surfaces here rather than at startup so the
// health endpoints keep serving without credentials.
func (c *ClaudeWriter) WritePost(ctx context.Context, topic string, items []entity.NewsItem) (*entity.Post, error) {
	if c.cfg.APIKey == "" {
		return nil, &entity.ConfigError{Provider: "claude", EnvVar: "ANTHROPIC_API_KEY"}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.rateLimiter.Allow(ctx); err != nil {
		return nil, &entity.UpstreamError{Provider: "claude", Err: err}
	}

	result, err := c.circuitBreaker.Execute(func() (any, error) {
		return c.doWrite(ctx, topic, items)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			slog.WarnContext(ctx, "claude api circuit breaker rejected request",
				slog.String("circuit", c.circuitBreaker.Name()),
				slog.String("state", c.circuitBreaker.State().String()))
			c.metricsRecorder.RecordFailure("claude")
			return nil, &entity.UpstreamError{Provider: "claude", Err: err}
		}
		return nil, err
	}

	return result.(*entity.Post), nil
}

// doWrite performs the single API call without the circuit breaker.
func (c *ClaudeWriter) doWrite(ctx context.Context, topic string, items []entity.NewsItem) (*entity.Post, error) {
	prompt := BuildPrompt(topic, items, c.style, c.cfg.MinBodyChars)

	slog.InfoContext(ctx, "starting post synthesis",
		slog.String("provider", "claude"),
		slog.String("model", c.cfg.Model),
		slog.Int("news_items", len(items)),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model),
		MaxTokens:   int64(c.cfg.MaxTokens),
		Temperature: anthropic.Float(c.cfg.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		c.metricsRecorder.RecordFailure("claude")
		slog.ErrorContext(ctx, "post synthesis failed",
			slog.String("provider", "claude"),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))

		upstream := &entity.UpstreamError{Provider: "claude", Err: err}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			upstream.StatusCode = apiErr.StatusCode
		}
		return nil, upstream
	}

	if len(message.Content) == 0 {
		c.metricsRecorder.RecordFailure("claude")
		return nil, &entity.UpstreamError{Provider: "claude", Err: fmt.Errorf("empty response from claude api")}
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		c.metricsRecorder.RecordFailure("claude")
		return nil, &entity.UpstreamError{Provider: "claude", Err: fmt.Errorf("unexpected content type in claude response")}
	}

	post, err := ParsePost(textBlock.Text)
	if err != nil {
		c.metricsRecorder.RecordFailure("claude")
		slog.ErrorContext(ctx, "model response could not be parsed",
			slog.String("provider", "claude"),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, err
	}

	recordResult(ctx, c.metricsRecorder, "claude", post, c.cfg.MinBodyChars, duration)

	return post, nil
}
