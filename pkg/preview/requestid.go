package preview

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mailadapter/pkg/logger"
)

// requestIDKey is the context key for storing the request ID.
type requestIDKey struct{}

// RequestIDHeaders are checked in order for an upstream request ID.
var RequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// RequestID returns middleware that assigns an ID to each request.
// An upstream ID is reused when present, otherwise gen creates one (uuid.NewString if nil).
// The ID is stored in the request context and echoed in the X-Request-ID response header.
func RequestID(gen func() string) func(http.Handler) http.Handler {
	if gen == nil {
		gen = uuid.NewString
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var reqID string
			for _, header := range RequestIDHeaders {
				if v := r.Header.Get(header); v != "" {
					reqID = v
					break
				}
			}
			if reqID == "" {
				reqID = gen()
			}

			w.Header().Set("X-Request-ID", reqID)
			ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the request ID or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// RequestIDExtractor adds "request_id" to log records.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := RequestIDFromContext(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}
