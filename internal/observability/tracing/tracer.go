package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the application.
// The otel global registry binds it to whichever provider Init installs,
// even when this variable is initialized first.
var tracer = otel.Tracer("blogsmith")

// GetTracer returns the global tracer for creating spans.
// This tracer can be used throughout the application to create new spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

// Init installs the tracer provider and the W3C trace context propagator for
// the process. No exporter is wired, so spans stay in-process, but the
// provider still assigns real trace IDs, which keeps the X-Trace-Id response
// header and log correlation meaningful.
//
// The returned function flushes pending spans and stops the provider; call
// it during shutdown.
func Init(serviceName string) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown
}
