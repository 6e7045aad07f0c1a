package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// Handlers, labelled by handler name, HTTP verb and outcome (ok|invalid|not_found|forbidden|error)
	HandlerOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_operations_total",
			Help: "Handled events by handler, method and outcome",
		},
		[]string{"handler", "method", "outcome"},
	)

	AdminGrantsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_admin_grants_total",
			Help: "Admin grant commands accepted",
		},
	)
	LikeTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lesson_like_toggles_total",
			Help: "Lesson like toggles",
		},
		[]string{"action"}, // like|unlike
	)
)

// Handler serves the /metrics endpoint
var Handler = promhttp.Handler
