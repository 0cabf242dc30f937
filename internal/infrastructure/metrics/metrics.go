package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "permit_tracker",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "permit_tracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "permit_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	statusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "permit_tracker",
			Subsystem: "applications",
			Name:      "status_transitions_total",
			Help:      "Total number of application status transitions.",
		},
		[]string{"from", "to"},
	)

	applicationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "permit_tracker",
			Subsystem: "applications",
			Name:      "created_total",
			Help:      "Total number of applications created.",
		},
	)

	paymentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "permit_tracker",
			Subsystem: "payments",
			Name:      "processed_total",
			Help:      "Total number of gateway payment operations.",
		},
		[]string{"type", "status"},
	)

	paymentAmount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "permit_tracker",
			Subsystem: "payments",
			Name:      "total_amount",
			Help:      "Total amount of completed payments.",
			Buckets:   prometheus.ExponentialBuckets(50, 2, 12),
		},
	)

	documentUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "permit_tracker",
			Subsystem: "documents",
			Name:      "uploads_total",
			Help:      "Total number of document uploads.",
		},
		[]string{"category", "versioned"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		statusTransitions,
		applicationsCreated,
		paymentsProcessed,
		paymentAmount,
		documentUploads,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func IncInFlight() { httpInFlight.Inc() }
func DecInFlight() { httpInFlight.Dec() }

// ObserveRequest records one finished HTTP request. path should be the route template, not the raw URL.
func ObserveRequest(method, path, status string, seconds float64) {
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}

func RecordStatusTransition(from, to string) {
	statusTransitions.WithLabelValues(from, to).Inc()
}

func RecordApplicationCreated() {
	applicationsCreated.Inc()
}

func RecordPayment(kind, status string, amount float64) {
	paymentsProcessed.WithLabelValues(kind, status).Inc()
	if amount > 0 && status == "Success" && kind != "Refund" {
		paymentAmount.Observe(amount)
	}
}

func RecordDocumentUpload(category string, versioned bool) {
	v := "false"
	if versioned {
		v = "true"
	}
	documentUploads.WithLabelValues(category, v).Inc()
}
