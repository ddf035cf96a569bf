package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration observes HTTP handler latency by route
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "showcase_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// RequestsTotal counts HTTP requests by route and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_http_requests_total",
		Help: "HTTP requests served",
	}, []string{"method", "route", "status"})

	// StatusTransitions counts approval status changes by target status
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_status_transitions_total",
		Help: "Approval status updates",
	}, []string{"status"})

	// ShowcasesCreated counts created showcases
	ShowcasesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "showcase_created_total",
		Help: "Showcases created",
	})

	// ImageUploads counts uploads by outcome
	ImageUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_image_uploads_total",
		Help: "Image uploads",
	}, []string{"outcome"})
)
