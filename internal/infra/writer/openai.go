package writer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/resilience/circuitbreaker"
	"blogsmith/internal/resilience/ratelimit"
	"blogsmith/internal/utils/text"
)

// Sampling penalties sent with every completion request. They discourage the
// model from repeating the news digest verbatim.
const (
	presencePenalty  = 0.6
	frequencyPenalty = 0.6
)

// OpenAIWriter implements post synthesis using OpenAI's chat completion API.
// Each post is produced by a single CreateChatCompletion call with no
// retries.
type OpenAIWriter struct {
	cfg             Config
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	rateLimiter     *ratelimit.Limiter
	style           Style
	metricsRecorder PostMetricsRecorder
}

// NewOpenAIWriter creates an OpenAI post writer with the given configuration
// and style profile.
func NewOpenAIWriter(cfg Config, style Style) *OpenAIWriter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	slog.Info("initialized openai post writer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens),
		slog.Int("body_target", cfg.MinBodyChars))

	return &OpenAIWriter{
		cfg:             cfg,
		client:          openai.NewClientWithConfig(clientConfig),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		rateLimiter:     ratelimit.New(1.0, 3),
		style:           style,
		metricsRecorder: NewPrometheusPostMetrics(),
	}
}

// WritePost synthesizes a blog post about the topic from the given news
// items. A missing API key surfaces here rather than at startup so the
// health endpoints keep serving without credentials.
func (o *OpenAIWriter) WritePost(ctx context.Context, topic string, items []entity.NewsItem) (*entity.Post, error) {
	if o.cfg.APIKey == "" {
		return nil, &entity.ConfigError{Provider: "openai", EnvVar: "OPENAI_API_KEY"}
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	if err := o.rateLimiter.Allow(ctx); err != nil {
		return nil, &entity.UpstreamError{Provider: "openai", Err: err}
	}

	result, err := o.circuitBreaker.Execute(func() (any, error) {
		return o.doWrite(ctx, topic, items)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			slog.WarnContext(ctx, "openai api circuit breaker rejected request",
				slog.String("circuit", o.circuitBreaker.Name()),
				slog.String("state", o.circuitBreaker.State().String()))
			o.metricsRecorder.RecordFailure("openai")
			return nil, &entity.UpstreamError{Provider: "openai", Err: err}
		}
		return nil, err
	}

	return result.(*entity.Post), nil
}

// doWrite performs the single API call without the circuit breaker.
func (o *OpenAIWriter) doWrite(ctx context.Context, topic string, items []entity.NewsItem) (*entity.Post, error) {
	prompt := BuildPrompt(topic, items, o.style, o.cfg.MinBodyChars)

	slog.InfoContext(ctx, "starting post synthesis",
		slog.String("provider", "openai"),
		slog.String("model", o.cfg.Model),
		slog.Int("news_items", len(items)),
		slog.Int("prompt_length", text.CountRunes(prompt)))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:            o.cfg.Model,
		MaxTokens:        o.cfg.MaxTokens,
		Temperature:      float32(o.cfg.Temperature),
		PresencePenalty:  presencePenalty,
		FrequencyPenalty: frequencyPenalty,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})

	duration := time.Since(start)

	if err != nil {
		o.metricsRecorder.RecordFailure("openai")
		slog.ErrorContext(ctx, "post synthesis failed",
			slog.String("provider", "openai"),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))

		return nil, &entity.UpstreamError{
			Provider:   "openai",
			StatusCode: apiStatusCode(err),
			Err:        err,
		}
	}

	if len(resp.Choices) == 0 {
		o.metricsRecorder.RecordFailure("openai")
		return nil, &entity.UpstreamError{Provider: "openai", Err: fmt.Errorf("empty response from openai api")}
	}

	post, err := ParsePost(resp.Choices[0].Message.Content)
	if err != nil {
		o.metricsRecorder.RecordFailure("openai")
		slog.ErrorContext(ctx, "model response could not be parsed",
			slog.String("provider", "openai"),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, err
	}

	recordResult(ctx, o.metricsRecorder, "openai", post, o.cfg.MinBodyChars, duration)

	return post, nil
}

// apiStatusCode extracts the HTTP status from a go-openai error when the SDK
// surfaces one. Transport failures carry no status and return zero.
func apiStatusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
