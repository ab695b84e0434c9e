package middleware

import (
	"log/slog"
	"net/http"

	"github.com/belli/taskify/internal/api/shared"
	"github.com/belli/taskify/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that assigns each request a trace ID
// and stores a logger tagged with it in the request context. Apply it early
// in the chain so every handler below can use logger.FromContext.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
		})
	}
}
