// Package config loads application-level configuration. Values are read
// once at startup into immutable structs that are passed explicitly to the
// components that need them.
package config

import (
	"fmt"

	pkgconfig "blogsmith/pkg/config"
)

// Provider names accepted by the provider selection variables.
const (
	NewsProviderCurrents = "currents"
	NewsProviderRSS      = "rss"
	NewsProviderNoop     = "noop"

	WriterProviderOpenAI = "openai"
	WriterProviderClaude = "claude"
	WriterProviderNoop   = "noop"
)

const defaultPort = 8000

// Config holds application-level settings.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// NewsProvider selects the news retrieval backend.
	NewsProvider string

	// WriterProvider selects the synthesis backend.
	WriterProvider string

	// StyleFile is an optional path to a YAML style profile.
	StyleFile string
}

// Load reads application configuration from environment variables.
//
// Environment variables:
//   - PORT: HTTP listen port (default: 8000)
//   - NEWS_PROVIDER: news backend, one of currents, rss, noop (default: currents)
//   - WRITER_PROVIDER: synthesis backend, one of openai, claude, noop (default: openai)
//   - BLOG_STYLE_FILE: optional path to a YAML style profile
func Load() (*Config, error) {
	cfg := &Config{
		Port:           pkgconfig.GetEnvInt("PORT", defaultPort),
		NewsProvider:   pkgconfig.GetEnvString("NEWS_PROVIDER", NewsProviderCurrents),
		WriterProvider: pkgconfig.GetEnvString("WRITER_PROVIDER", WriterProviderOpenAI),
		StyleFile:      pkgconfig.GetEnvString("BLOG_STYLE_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness. Unknown provider names fail
// startup rather than falling back silently to a different backend.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	switch c.NewsProvider {
	case NewsProviderCurrents, NewsProviderRSS, NewsProviderNoop:
	default:
		return fmt.Errorf("NEWS_PROVIDER must be one of currents, rss, noop; got %q", c.NewsProvider)
	}

	switch c.WriterProvider {
	case WriterProviderOpenAI, WriterProviderClaude, WriterProviderNoop:
	default:
		return fmt.Errorf("WRITER_PROVIDER must be one of openai, claude, noop; got %q", c.WriterProvider)
	}

	return nil
}
