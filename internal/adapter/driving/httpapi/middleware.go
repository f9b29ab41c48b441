package httpapi

import (
	"net/http"
	"time"

	"github.com/diillson/aws-dashboard-go/internal/observability/metrics"
)

// instrument wraps every route with the request counter and latency histogram.
// Labels carry the URL path only — not method or status. Paths dinâmicos não
// são normalizados; todos os endpoints aqui são estáticos.
func instrument(registry *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			endpoint := r.URL.Path
			registry.IncRequests(endpoint)

			start := time.Now()
			next.ServeHTTP(w, r)
			registry.ObserveLatency(endpoint, time.Since(start))
		})
	}
}
