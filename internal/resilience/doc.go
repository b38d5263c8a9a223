// Package resilience provides reliability patterns for outbound provider calls.
// It includes circuit breakers for the news and AI APIs and client-side rate
// limiting to keep request pacing within provider limits.
//
// Provider calls are made at most once. Neither pattern re-invokes a failed
// call: the circuit breaker only decides whether the single attempt is
// allowed to start, and the rate limiter only decides when.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.NewsAPIConfig())
//	result, err := cb.Execute(func() (any, error) {
//	    return callExternalService()
//	})
package resilience
