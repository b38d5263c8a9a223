package news

import (
	"fmt"
	"time"

	pkgconfig "blogsmith/pkg/config"
)

const (
	defaultCurrentsBaseURL = "https://api.currentsapi.services"
	defaultFeedBaseURL     = "https://news.google.com/rss/search"
	defaultLanguage        = "en"
	defaultMaxItems        = 5
	defaultTimeout         = 30 * time.Second

	minItems   = 1
	maxItems   = 25
	minTimeout = 1 * time.Second
	maxTimeout = 2 * time.Minute
)

// Config holds configuration shared by the news retrieval providers.
type Config struct {
	// APIKey authenticates requests to the Currents API. It may be empty:
	// the key is checked at call time so the service can start without it.
	APIKey string

	// BaseURL is the Currents API base URL. Overridable for tests.
	BaseURL string

	// FeedBaseURL is the Google News RSS search base URL. Overridable for tests.
	FeedBaseURL string

	// Language restricts results to a single language code, such as "en".
	Language string

	// MaxItems caps how many news items are handed to the writer.
	MaxItems int

	// Timeout bounds a single provider call, including connection setup.
	Timeout time.Duration
}

// LoadConfig loads news retrieval configuration from environment variables.
//
// Environment variables:
//   - CURRENTS_API_KEY: Currents API key (optional at startup)
//   - CURRENTS_BASE_URL: Currents API base URL (default: https://api.currentsapi.services)
//   - GOOGLENEWS_BASE_URL: Google News RSS base URL (default: https://news.google.com/rss/search)
//   - NEWS_LANGUAGE: result language code (default: en)
//   - NEWS_MAX_ITEMS: item cap per request, 1 to 25 (default: 5)
//   - NEWS_TIMEOUT: provider call timeout (default: 30s)
func LoadConfig() (Config, error) {
	cfg := Config{
		APIKey:      pkgconfig.GetEnvString("CURRENTS_API_KEY", ""),
		BaseURL:     pkgconfig.GetEnvString("CURRENTS_BASE_URL", defaultCurrentsBaseURL),
		FeedBaseURL: pkgconfig.GetEnvString("GOOGLENEWS_BASE_URL", defaultFeedBaseURL),
		Language:    pkgconfig.GetEnvString("NEWS_LANGUAGE", defaultLanguage),
		MaxItems:    pkgconfig.GetEnvInt("NEWS_MAX_ITEMS", defaultMaxItems),
		Timeout:     pkgconfig.GetEnvDuration("NEWS_TIMEOUT", defaultTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid news configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration values. A missing API key is not an
// error here; only values that would make every call misbehave are.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if c.FeedBaseURL == "" {
		return fmt.Errorf("feed base URL must not be empty")
	}
	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	if c.MaxItems < minItems || c.MaxItems > maxItems {
		return fmt.Errorf("max items must be between %d and %d, got %d", minItems, maxItems, c.MaxItems)
	}
	if err := pkgconfig.ValidateDurationRange(c.Timeout, minTimeout, maxTimeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
