// Package tracing wires OpenTelemetry tracing for the service.
//
// The HTTP middleware starts a server span per request, honors W3C trace
// context from callers, and echoes the trace ID in the X-Trace-Id response
// header. Spans routed through the ServeMux are named after the matched
// pattern so span names stay low-cardinality. The use case layer opens
// child spans around news retrieval and post synthesis.
//
// Init installs the tracer provider and propagator; no exporter is wired,
// so spans stay in-process while trace IDs remain usable for log
// correlation.
//
// Example usage:
//
//	func main() {
//	    shutdown := tracing.Init("blogsmith")
//	    defer shutdown(context.Background())
//	}
//
//	func (s *Service) fetchNews(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "news.fetch")
//	    defer span.End()
//	}
package tracing
