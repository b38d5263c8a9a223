// Package ratelimit provides client-side pacing for outbound provider calls.
// It uses golang.org/x/time/rate so bursts stay within each provider's
// documented request limits.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces outbound requests with a token bucket.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a limiter refilling at requestsPerSecond with the given burst
// capacity. A full bucket admits calls without waiting, so a service under
// normal load never blocks here.
func New(requestsPerSecond float64, burst int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Allow blocks until a token is available or the context is done.
// It returns the context error when cancelled, which callers surface as an
// upstream failure rather than silently proceeding unpaced.
func (l *Limiter) Allow(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
