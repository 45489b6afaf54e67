package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// outcome: verified | unverified | rejected | settled | noop | failed
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_webhook_events_total",
			Help: "Payment webhook processing outcomes",
		},
		[]string{"outcome"},
	)

	// outcome: ok | not_found | no_rendition | error
	PlaybackRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playback_requests_total",
			Help: "Playback URL resolution outcomes",
		},
		[]string{"outcome", "quality"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests, HTTPDuration, WebhookEvents, PlaybackRequests)
}
