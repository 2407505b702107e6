// Package metrics constructs the metrics the application will track.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the application-specific Prometheus collectors.
var Registry = prometheus.NewRegistry()

var (
	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "admindashboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of API requests handled.",
		},
		[]string{"method", "status"},
	)

	duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "admindashboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of API requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method"},
	)

	errorCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "admindashboard",
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Total number of API requests answered with an error.",
		},
	)

	panicCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "admindashboard",
			Subsystem: "http",
			Name:      "panics_total",
			Help:      "Total number of handler panics recovered.",
		},
	)
)

func init() {
	Registry.MustRegister(
		requests,
		duration,
		errorCount,
		panicCount,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// AddRequest records a handled request and how long it took.
func AddRequest(method string, status int, took time.Duration) {
	requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	duration.WithLabelValues(method).Observe(took.Seconds())
}

// AddErrors increments the errors counter.
func AddErrors() {
	errorCount.Inc()
}

// AddPanics increments the panics counter.
func AddPanics() {
	panicCount.Inc()
}
