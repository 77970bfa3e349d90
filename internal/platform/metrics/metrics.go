package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// PathQueries counts shortest-path queries by weight dimension and outcome
	// (found / not_found).
	PathQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "path_queries_total", Help: "Shortest-path queries by dimension and outcome."},
		[]string{"dimension", "outcome"},
	)

	// LoadPlanSize tracks how many vehicles each load planning call produced.
	LoadPlanSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "load_plan_vehicles", Help: "Vehicles per load planning call.", Buckets: []float64{1, 2, 3, 5, 8, 13, 21}},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(PathQueries)
		Registry.MustRegister(LoadPlanSize)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// PathQueryOutcome maps a reachability flag to the metric label value.
func PathQueryOutcome(reachable bool) string {
	if reachable {
		return "found"
	}
	return "not_found"
}
