package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func TestExecute_Success(t *testing.T) {
	cb := New(DefaultConfig("test"))

	result, err := cb.Execute(func() (any, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result != "ok" {
		t.Errorf("Execute() result = %v, want %q", result, "ok")
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed", cb.State())
	}
}

func TestExecute_PassesThroughError(t *testing.T) {
	cb := New(DefaultConfig("test"))
	boom := errors.New("boom")

	_, err := cb.Execute(func() (any, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Execute() error = %v, want %v", err, boom)
	}
}

func TestExecute_TripsAfterFailureThreshold(t *testing.T) {
	cfg := Config{
		Name:             "trip-test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      3,
	}
	cb := New(cfg)
	boom := errors.New("boom")

	// MinRequests failures at 100% failure ratio trips the circuit.
	for i := 0; i < int(cfg.MinRequests); i++ {
		_, _ = cb.Execute(func() (any, error) {
			return nil, boom
		})
	}

	if !cb.IsOpen() {
		t.Fatalf("circuit should be open after %d failures, state = %v", cfg.MinRequests, cb.State())
	}

	_, err := cb.Execute(func() (any, error) {
		t.Error("function should not run while the circuit is open")
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Execute() error = %v, want ErrOpenState", err)
	}
}

func TestExecute_StaysClosedBelowMinRequests(t *testing.T) {
	cfg := Config{
		Name:             "min-requests-test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      10,
	}
	cb := New(cfg)

	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (any, error) {
			return nil, errors.New("boom")
		})
	}

	if cb.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed below MinRequests", cb.State())
	}
}

func TestProviderConfigs(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantName string
	}{
		{name: "currents", cfg: NewsAPIConfig(), wantName: "currents-api"},
		{name: "feed", cfg: FeedFetchConfig(), wantName: "news-feed"},
		{name: "openai", cfg: OpenAIAPIConfig(), wantName: "openai-api"},
		{name: "claude", cfg: ClaudeAPIConfig(), wantName: "claude-api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cfg.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tt.cfg.Name, tt.wantName)
			}
			if tt.cfg.FailureThreshold <= 0 || tt.cfg.FailureThreshold > 1 {
				t.Errorf("FailureThreshold = %v, want ratio in (0, 1]", tt.cfg.FailureThreshold)
			}
			if tt.cfg.MinRequests == 0 {
				t.Error("MinRequests must be positive")
			}

			cb := New(tt.cfg)
			if cb.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", cb.Name(), tt.wantName)
			}
		})
	}
}
