package entity

import "fmt"

// ValidationError indicates that request input failed validation before any
// provider was called. The HTTP layer maps it to a 400 response and returns
// Message to the client verbatim.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ConfigError indicates that a credential or setting required by a provider
// is missing. The service starts and serves health endpoints without it; the
// error surfaces when the provider is first used.
type ConfigError struct {
	Provider string
	EnvVar   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s provider is not configured: %s is not set", e.Provider, e.EnvVar)
}

// UpstreamError indicates that a single call to an external provider failed.
// StatusCode is zero when the failure happened before a response arrived,
// such as a network error, a timeout, or a circuit breaker rejection.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError indicates that a model completion could not be decomposed into
// the expected post sections. Section names the first section found missing
// or empty.
type ParseError struct {
	Section string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("malformed model response: missing %s section", e.Section)
	}
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
