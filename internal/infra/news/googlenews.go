package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/resilience/circuitbreaker"
	"blogsmith/internal/resilience/ratelimit"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"
)

// feedUserAgent identifies the service to feed endpoints.
const feedUserAgent = "blogsmith/1.0 (news fetcher)"

// GoogleNewsClient retrieves news coverage from the Google News RSS search
// feed. It needs no API key, which makes it a drop-in alternative when no
// Currents credentials are available.
type GoogleNewsClient struct {
	cfg            Config
	httpClient     *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	rateLimiter    *ratelimit.Limiter
}

// NewGoogleNewsClient creates a Google News RSS client with the given configuration.
func NewGoogleNewsClient(cfg Config, httpClient *http.Client) *GoogleNewsClient {
	return &GoogleNewsClient{
		cfg:            cfg,
		httpClient:     httpClient,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		rateLimiter:    ratelimit.New(1.0, 3),
	}
}

// FetchNews retrieves recent news coverage for the topic from the search feed.
// Zero results is not an error: the writer falls back to general knowledge.
func (g *GoogleNewsClient) FetchNews(ctx context.Context, topic string) ([]entity.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	if err := g.rateLimiter.Allow(ctx); err != nil {
		return nil, &entity.UpstreamError{Provider: "google-news", Err: err}
	}

	result, err := g.circuitBreaker.Execute(func() (any, error) {
		return g.doFetch(ctx, topic)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			slog.WarnContext(ctx, "news feed circuit breaker rejected request",
				slog.String("circuit", g.circuitBreaker.Name()),
				slog.String("state", g.circuitBreaker.State().String()))
			return nil, &entity.UpstreamError{Provider: "google-news", Err: err}
		}
		var upstreamErr *entity.UpstreamError
		if errors.As(err, &upstreamErr) {
			return nil, err
		}
		return nil, &entity.UpstreamError{Provider: "google-news", Err: err}
	}

	return result.([]entity.NewsItem), nil
}

// doFetch performs the single feed request without the circuit breaker.
func (g *GoogleNewsClient) doFetch(ctx context.Context, topic string) ([]entity.NewsItem, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en",
		g.cfg.FeedBaseURL, url.QueryEscape(topic))

	parser := gofeed.NewParser()
	parser.UserAgent = feedUserAgent
	parser.Client = g.httpClient

	start := time.Now()

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		upstream := &entity.UpstreamError{Provider: "google-news", Err: err}
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			upstream.StatusCode = httpErr.StatusCode
		}
		return nil, upstream
	}

	items := make([]entity.NewsItem, 0, min(len(feed.Items), g.cfg.MaxItems))
	for _, item := range feed.Items {
		if strings.TrimSpace(item.Title) == "" {
			continue
		}
		items = append(items, entity.NewsItem{
			Title:   strings.TrimSpace(item.Title),
			Summary: stripHTML(item.Description),
		})
		if len(items) >= g.cfg.MaxItems {
			break
		}
	}

	slog.InfoContext(ctx, "news retrieved",
		slog.String("provider", "google-news"),
		slog.Int("items", len(items)),
		slog.Int("available", len(feed.Items)),
		slog.Duration("duration", time.Since(start)))

	return items, nil
}

// stripHTML flattens an HTML fragment into plain text. Google News item
// descriptions are anchor-heavy HTML snippets, not prose.
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.TrimSpace(doc.Text())
}
