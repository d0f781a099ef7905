// Package metrics provides Prometheus metrics collection for the
// MedGPT backend. Besides the standard HTTP request metrics it tracks
// the two expensive pipeline stages: completion-service calls and
// document extraction.
//
// All metrics are registered with the Prometheus default registry
// during package initialization and served at /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (IPs seen recently)",
		},
	)

	CompletionRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_request_total",
			Help: "Total completion service calls",
		},
		[]string{"model", "status"},
	)

	CompletionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "completion_request_duration_seconds",
			Help:    "Completion service call latency",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"model"},
	)

	DocumentExtractTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_extract_total",
			Help: "Document extraction attempts by kind and outcome",
		},
		[]string{"kind", "status"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(CompletionRequestTotal)
	prometheus.MustRegister(CompletionRequestDuration)
	prometheus.MustRegister(DocumentExtractTotal)
}
