package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vipps_provider_requests_total",
		Help: "Total number of calls made to the payment provider",
	}, []string{
		"generation", // legacy, ecomm, v3
		"operation",  // draft_agreement, create_charge, ...
		"status",     // HTTP status code, or "error" when no response was received
	})

	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vipps_provider_request_duration_seconds",
		Help:    "Duration of calls to the payment provider in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{
		"generation",
		"operation",
	})

	tokenFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vipps_token_fetches_total",
		Help: "Total access token requests",
	}, []string{
		"generation",
		"outcome", // success, failure
	})
)

// RecordProviderCall records one round trip to the provider
func RecordProviderCall(generation, operation, status string, duration float64) {
	providerRequestsTotal.WithLabelValues(generation, operation, status).Inc()
	providerRequestDuration.WithLabelValues(generation, operation).Observe(duration)
}

// RecordTokenFetch records an access token request
func RecordTokenFetch(generation string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	tokenFetchesTotal.WithLabelValues(generation, outcome).Inc()
}
