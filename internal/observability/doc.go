// Package observability groups the service's logging and tracing support.
//
// Subpackages:
//   - logging: slog JSON loggers and request-scoped logger propagation
//   - tracing: OpenTelemetry spans, W3C context propagation, X-Trace-Id
//
// The two are tied together by the HTTP middleware chain: the tracing
// middleware assigns each request a trace ID, and the logging middleware
// writes it alongside the request ID on every completion line, so one
// request can be followed across logs and spans.
package observability
