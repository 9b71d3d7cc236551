package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/Joseph-Edoh/Church-connect/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route pattern. Requests
// that matched no route share one label.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		probe := &routeProbe{}

		next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), routeProbeKey, probe)))

		route := probe.pattern
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
	})
}
