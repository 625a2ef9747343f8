package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"service", "method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "route"},
	)

	PolicyConversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "policy_conversions_total",
			Help: "Quote to policy conversions by quote type and outcome",
		},
		[]string{"type", "outcome"},
	)

	TemplateVersionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benefit_template_versions_created_total",
			Help: "Benefit template rows created, by version bump",
		},
		[]string{"bump"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Calls to collaborator services by target and outcome",
		},
		[]string{"target", "outcome"},
	)
)
