package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// withMetrics records the request counter and duration histogram on the
// package registry. The path label uses the chi route pattern (e.g.
// "/api/cars/{id}") rather than the raw URL to keep cardinality bounded.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		status := strconv.Itoa(lw.statusOrDefault())
		metrics.HTTPRequests.WithLabelValues(r.Method, path, status).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}
