package writer

import (
	"fmt"
	"time"

	pkgconfig "blogsmith/pkg/config"
)

const (
	defaultOpenAIModel  = "gpt-4o-mini"
	defaultMaxTokens    = 2048
	defaultTemperature  = 0.5
	defaultTimeout      = 30 * time.Second
	defaultMinBodyChars = 1500

	minTimeout = 1 * time.Second
	maxTimeout = 5 * time.Minute

	minTemperature = 0.0
	maxTemperature = 2.0
)

// Config holds configuration shared by the post writer providers.
type Config struct {
	// APIKey authenticates requests to the provider. It may be empty: the
	// key is checked at call time so the service can start without it.
	APIKey string

	// BaseURL overrides the provider endpoint. Used by tests.
	BaseURL string

	// Model is the model identifier sent with each synthesis request.
	Model string

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64

	// Timeout bounds a single synthesis call, including connection setup.
	Timeout time.Duration

	// MinBodyChars is the soft target for post body length in characters.
	// Posts that come in short are logged and counted, never rejected.
	MinBodyChars int
}

// LoadOpenAIConfig loads writer configuration for the OpenAI provider.
//
// Environment variables:
//   - OPENAI_API_KEY: OpenAI API key (optional at startup)
//   - OPENAI_BASE_URL: endpoint override, mainly for tests (default: SDK default)
//   - WRITER_MODEL: model identifier (default: gpt-4o-mini)
//   - WRITER_MAX_TOKENS: completion token cap (default: 2048)
//   - WRITER_TEMPERATURE: sampling temperature, 0 to 2 (default: 0.5)
//   - WRITER_TIMEOUT: synthesis call timeout (default: 30s)
//   - WRITER_MIN_BODY_CHARS: soft body length target (default: 1500)
func LoadOpenAIConfig() (Config, error) {
	return loadConfig("OPENAI_API_KEY", "OPENAI_BASE_URL", defaultOpenAIModel)
}

// LoadClaudeConfig loads writer configuration for the Claude provider. It
// reads the same WRITER_* variables as LoadOpenAIConfig, with
// ANTHROPIC_API_KEY and ANTHROPIC_BASE_URL for credentials and endpoint.
func LoadClaudeConfig() (Config, error) {
	return loadConfig("ANTHROPIC_API_KEY", "ANTHROPIC_BASE_URL", defaultClaudeModel)
}

func loadConfig(keyVar, baseURLVar, defaultModel string) (Config, error) {
	cfg := Config{
		APIKey:       pkgconfig.GetEnvString(keyVar, ""),
		BaseURL:      pkgconfig.GetEnvString(baseURLVar, ""),
		Model:        pkgconfig.GetEnvString("WRITER_MODEL", defaultModel),
		MaxTokens:    pkgconfig.GetEnvInt("WRITER_MAX_TOKENS", defaultMaxTokens),
		Temperature:  pkgconfig.GetEnvFloat("WRITER_TEMPERATURE", defaultTemperature),
		Timeout:      pkgconfig.GetEnvDuration("WRITER_TIMEOUT", defaultTimeout),
		MinBodyChars: pkgconfig.GetEnvInt("WRITER_MIN_BODY_CHARS", defaultMinBodyChars),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid writer configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration values. A missing API key is not an
// error here; it surfaces at call time so the health endpoints keep serving
// on an unconfigured instance.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < minTemperature || c.Temperature > maxTemperature {
		return fmt.Errorf("temperature must be between %v and %v, got %v",
			minTemperature, maxTemperature, c.Temperature)
	}
	if err := pkgconfig.ValidateDurationRange(c.Timeout, minTimeout, maxTimeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.MinBodyChars < 0 {
		return fmt.Errorf("minimum body characters cannot be negative, got %d", c.MinBodyChars)
	}
	return nil
}
