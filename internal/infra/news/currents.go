// Package news provides news retrieval implementations for post generation.
// It includes a Currents API client and a Google News RSS client that share
// one configuration surface and the same resilience wiring.
package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/resilience/circuitbreaker"
	"blogsmith/internal/resilience/ratelimit"

	"github.com/sony/gobreaker"
)

// currentsPath is the Currents API endpoint for keyword news search.
const currentsPath = "/v1/latest-news"

// CurrentsClient retrieves news coverage from the Currents API.
// Calls go through a circuit breaker and a client-side rate limiter; a call
// is made at most once and never retried.
type CurrentsClient struct {
	cfg            Config
	httpClient     *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	rateLimiter    *ratelimit.Limiter
}

// NewCurrentsClient creates a Currents API client with the given configuration.
// A missing API key is allowed at construction time and reported on first use,
// so the service can boot and serve health endpoints without credentials.
func NewCurrentsClient(cfg Config, httpClient *http.Client) *CurrentsClient {
	if cfg.APIKey == "" {
		slog.Warn("currents api key not set, news retrieval will fail until configured",
			slog.String("env", "CURRENTS_API_KEY"))
	}

	return &CurrentsClient{
		cfg:            cfg,
		httpClient:     httpClient,
		circuitBreaker: circuitbreaker.New(circuitbreaker.NewsAPIConfig()),
		rateLimiter:    ratelimit.New(2.0, 5),
	}
}

// currentsResponse mirrors the Currents API latest-news payload.
// Fields the service does not consume are left out.
type currentsResponse struct {
	Status string         `json:"status"`
	News   []currentsItem `json:"news"`
}

type currentsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FetchNews retrieves recent news coverage for the topic.
// Zero results is not an error: the writer falls back to general knowledge.
func (c *CurrentsClient) FetchNews(ctx context.Context, topic string) ([]entity.NewsItem, error) {
	if c.cfg.APIKey == "" {
		return nil, &entity.ConfigError{Provider: "currents", EnvVar: "CURRENTS_API_KEY"}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.rateLimiter.Allow(ctx); err != nil {
		return nil, &entity.UpstreamError{Provider: "currents", Err: err}
	}

	result, err := c.circuitBreaker.Execute(func() (any, error) {
		return c.doFetch(ctx, topic)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			slog.WarnContext(ctx, "currents circuit breaker rejected request",
				slog.String("circuit", c.circuitBreaker.Name()),
				slog.String("state", c.circuitBreaker.State().String()))
			return nil, &entity.UpstreamError{Provider: "currents", Err: err}
		}
		var upstreamErr *entity.UpstreamError
		if errors.As(err, &upstreamErr) {
			return nil, err
		}
		return nil, &entity.UpstreamError{Provider: "currents", Err: err}
	}

	return result.([]entity.NewsItem), nil
}

// doFetch performs the single API call without the circuit breaker.
func (c *CurrentsClient) doFetch(ctx context.Context, topic string) ([]entity.NewsItem, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL + currentsPath)
	if err != nil {
		return nil, &entity.UpstreamError{Provider: "currents", Err: fmt.Errorf("parse endpoint: %w", err)}
	}

	query := endpoint.Query()
	query.Set("language", c.cfg.Language)
	query.Set("keywords", topic)
	query.Set("apiKey", c.cfg.APIKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &entity.UpstreamError{Provider: "currents", Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &entity.UpstreamError{Provider: "currents", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The body may describe the failure; keep a bounded excerpt for logs.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &entity.UpstreamError{
			Provider:   "currents",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload currentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &entity.UpstreamError{Provider: "currents", Err: fmt.Errorf("decode response: %w", err)}
	}

	items := make([]entity.NewsItem, 0, min(len(payload.News), c.cfg.MaxItems))
	for _, article := range payload.News {
		if strings.TrimSpace(article.Title) == "" {
			continue
		}
		items = append(items, entity.NewsItem{
			Title:   strings.TrimSpace(article.Title),
			Summary: strings.TrimSpace(article.Description),
		})
		if len(items) >= c.cfg.MaxItems {
			break
		}
	}

	slog.InfoContext(ctx, "news retrieved",
		slog.String("provider", "currents"),
		slog.Int("items", len(items)),
		slog.Int("available", len(payload.News)),
		slog.Duration("duration", time.Since(start)))

	return items, nil
}
