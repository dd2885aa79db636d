package http

import (
	"net/http"
	"time"

	"github.com/aprasetyo/go-data-pengguna/internal/logger"
)

// withLogging writes one access-log line per request with method, URI,
// status, response size, and duration, through the trace-scoped logger
// installed by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
