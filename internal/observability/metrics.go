package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_tool"

// Metrics holds the Prometheus collectors for the weather lookup pipeline.
type Metrics struct {
	Lookups *prometheus.CounterVec // labels: outcome={success,city_not_found,weather_unavailable,unexpected_failure}

	UpstreamRequests *prometheus.CounterVec   // labels: upstream={geocoding,forecast}, outcome={success,transport,status,parse}
	UpstreamDuration *prometheus.HistogramVec // labels: upstream={geocoding,forecast}

	GeocodeCache *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.Lookups,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.GeocodeCache,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many
// as they need without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Weather lookups by outcome.",
		}, []string{"outcome"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Requests to the geocoding and forecast APIs by outcome.",
		}, []string{"upstream", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Geocoding and forecast API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"upstream"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Geocode cache lookups by result.",
		}, []string{"result"}),
	}
}
