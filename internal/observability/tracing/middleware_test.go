package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// setupTestTracer installs an in-memory exporter so tests can inspect
// finished spans.
func setupTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	return exporter
}

func findAttribute(attrs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestMiddleware_CreatesServerSpan(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/heartbeat", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}

	span := spans[0]
	if span.Name != "GET /heartbeat" {
		t.Errorf("span name = %q, want %q", span.Name, "GET /heartbeat")
	}
	if span.SpanKind != trace.SpanKindServer {
		t.Errorf("span kind = %v, want server", span.SpanKind)
	}

	status, ok := findAttribute(span.Attributes, "http.status_code")
	if !ok || status.AsInt64() != int64(http.StatusOK) {
		t.Errorf("http.status_code attribute = %v, want 200", status.AsInt64())
	}
	method, ok := findAttribute(span.Attributes, "http.method")
	if !ok || method.AsString() != http.MethodGet {
		t.Errorf("http.method attribute = %q, want GET", method.AsString())
	}
}

func TestMiddleware_SetsTraceIDHeader(t *testing.T) {
	setupTestTracer(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	traceID := rec.Header().Get("X-Trace-Id")
	if traceID == "" {
		t.Fatal("X-Trace-Id header is empty")
	}
	if traceID == "00000000000000000000000000000000" {
		t.Error("X-Trace-Id header is the zero trace ID")
	}
}

func TestMiddleware_PropagatesIncomingTraceContext(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want the propagated one", got)
	}
}

func TestMiddleware_MarksServerErrors(t *testing.T) {
	exporter := setupTestTracer(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	req := httptest.NewRequest(http.MethodPost, "/generate-post", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}

	errAttr, ok := findAttribute(spans[0].Attributes, "error")
	if !ok || !errAttr.AsBool() {
		t.Error("error attribute should be true for 5xx responses")
	}

	status, _ := findAttribute(spans[0].Attributes, "http.status_code")
	if status.AsInt64() != int64(http.StatusBadGateway) {
		t.Errorf("http.status_code attribute = %v, want 502", status.AsInt64())
	}
}

func TestMiddleware_RenamesSpanToRoutePattern(t *testing.T) {
	exporter := setupTestTracer(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(mux)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Name != "GET /swagger/" {
		t.Errorf("span name = %q, want the mux pattern %q", spans[0].Name, "GET /swagger/")
	}
	route, ok := findAttribute(spans[0].Attributes, "http.route")
	if !ok || route.AsString() != "GET /swagger/" {
		t.Errorf("http.route attribute = %q, want the mux pattern", route.AsString())
	}
}

func TestMiddleware_HandlerSeesSpanContext(t *testing.T) {
	setupTestTracer(t)

	var sawValidSpan bool
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawValidSpan = trace.SpanFromContext(r.Context()).SpanContext().IsValid()
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !sawValidSpan {
		t.Error("handler should see a valid span context")
	}
}

func TestInit_ReturnsWorkingShutdown(t *testing.T) {
	shutdown := Init("blogsmith-test")
	if shutdown == nil {
		t.Fatal("Init() returned nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown error = %v", err)
	}
}
