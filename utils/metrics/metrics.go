package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route template and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)

	ImagesStoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_images_stored_total",
			Help: "Resized listing images written to storage",
		},
		[]string{"driver"},
	)

	UploadFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_upload_failures_total",
			Help: "Listing image uploads aborted, by failing stage",
		},
		[]string{"stage"},
	)

	ImageProcessDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "listing_image_process_duration_seconds",
			Help:    "Time to resize and store one image",
			Buckets: prometheus.DefBuckets,
		},
	)
)
