// Package circuitbreaker wraps github.com/sony/gobreaker so calls to news
// and model providers fail fast during sustained outages instead of piling
// up on a dead upstream.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Config holds the settings for one circuit breaker.
type Config struct {
	// Name identifies the breaker in logs and state-change warnings.
	Name string

	// MaxRequests is the number of probe requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state after which the
	// success and failure counts reset.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the circuit,
	// for example 0.6 for 60 percent.
	FailureThreshold float64

	// MinRequests is the minimum number of requests in an interval before
	// the failure ratio is evaluated.
	MinRequests uint32
}

// DefaultConfig returns the baseline settings shared by the paid API
// breakers: trip at 60 percent failures over at least 5 requests, stay
// open for a minute.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// NewsAPIConfig returns the breaker settings for Currents API calls.
func NewsAPIConfig() Config {
	return DefaultConfig("currents-api")
}

// OpenAIAPIConfig returns the breaker settings for OpenAI API calls.
func OpenAIAPIConfig() Config {
	return DefaultConfig("openai-api")
}

// ClaudeAPIConfig returns the breaker settings for Claude API calls.
func ClaudeAPIConfig() Config {
	return DefaultConfig("claude-api")
}

// FeedFetchConfig returns the breaker settings for news feed fetching.
// Feed endpoints tolerate more probing than paid APIs, so the thresholds
// are looser.
func FeedFetchConfig() Config {
	return Config{
		Name:             "news-feed",
		MaxRequests:      5,
		Interval:         60 * time.Second,
		Timeout:          120 * time.Second,
		FailureThreshold: 0.7,
		MinRequests:      10,
	}
}

// CircuitBreaker wraps a gobreaker.CircuitBreaker configured from a Config.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New creates a circuit breaker with the given configuration. State
// transitions are logged at warn level under the breaker's name.
func New(cfg Config) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Execute runs fn through the circuit breaker. While the circuit is open
// it returns gobreaker.ErrOpenState without invoking fn, so a provider is
// never re-called once the breaker rejects.
func (cb *CircuitBreaker) Execute(fn func() (any, error)) (any, error) {
	return cb.breaker.Execute(fn)
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

// Name returns the breaker's name.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether the circuit is currently open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}
