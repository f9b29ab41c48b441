package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the process-wide request metrics. It is created once at
// startup and injected into the HTTP layer; nada é registrado no registerer
// default do Prometheus.
type Registry struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewRegistry creates a registry with the request counter, the latency
// histogram and the standard Go/process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aws_dashboard_requests_total",
			Help: "Total API requests",
		}, []string{"endpoint"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aws_dashboard_request_latency_seconds",
			Help:    "Request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	reg.MustRegister(
		r.requests,
		r.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// IncRequests increments the request counter for an endpoint path.
func (r *Registry) IncRequests(endpoint string) {
	r.requests.WithLabelValues(endpoint).Inc()
}

// ObserveLatency records the wall-clock duration of one request.
func (r *Registry) ObserveLatency(endpoint string, elapsed time.Duration) {
	r.latency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// Handler renders the registry in the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
