// Package requestid assigns a unique ID to every HTTP request so that log
// entries and trace spans emitted while serving it can be tied together.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the HTTP header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

type contextKey struct{}

// FromContext returns the request ID stored in ctx, or an empty string
// when none was set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Middleware assigns each request an ID, echoes it in the response header,
// and stores it in the request context. A client-supplied X-Request-ID is
// kept only when it parses as a UUID; any other value is replaced with a
// generated one so arbitrary header content never reaches the logs.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
