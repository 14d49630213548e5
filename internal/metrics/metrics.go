// Package metrics exposes Prometheus instrumentation for the webhook.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClassificationsTotal counts pipeline outcomes.
	// Labels: category (no_input, greeting, refusal, valid_name, invalid)
	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namecap",
		Subsystem: "webhook",
		Name:      "classifications_total",
		Help:      "Webhook calls by classification outcome",
	}, []string{"category"})

	// RejectionsTotal counts invalid outcomes by the rule that rejected them.
	// Labels: reason (no_candidate, empty, sentence, length, structure, blocklisted)
	RejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namecap",
		Subsystem: "webhook",
		Name:      "rejections_total",
		Help:      "Rejected name candidates by validation rule",
	}, []string{"reason"})

	// MalformedTotal counts request bodies that could not be decoded.
	MalformedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "namecap",
		Subsystem: "webhook",
		Name:      "malformed_requests_total",
		Help:      "Webhook bodies treated as empty input because they could not be decoded",
	})

	// DurationSeconds measures decode-to-encode handling time.
	DurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "namecap",
		Subsystem: "webhook",
		Name:      "duration_seconds",
		Help:      "Webhook handling time excluding network transfer",
		Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
	})
)

// ObserveWebhook records one handled webhook call. reason is empty unless
// the outcome was invalid.
func ObserveWebhook(category, reason string, d time.Duration) {
	ClassificationsTotal.WithLabelValues(category).Inc()
	if reason != "" {
		RejectionsTotal.WithLabelValues(reason).Inc()
	}
	DurationSeconds.Observe(d.Seconds())
}
