package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/middleware"
)

// Metrics records a request counter and latency histogram per route.
// The route template is used as the path label so ids do not explode
// label cardinality.
func Metrics(m metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &middleware.ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wrapped, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			status := wrapped.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.ObserveHTTPRequest(r.Method, path, status, time.Since(start).Seconds())
		})
	}
}
