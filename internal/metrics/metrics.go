package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Webhook metrics
	WebhookRequestsTotal   *prometheus.CounterVec
	WebhookDurationSeconds *prometheus.HistogramVec

	// Event metrics
	EventsTotal *prometheus.CounterVec

	// Delivery metrics
	DeliveriesTotal         *prometheus.CounterVec
	DeliveryDurationSeconds *prometheus.HistogramVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		WebhookRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopbot_webhook_requests_total",
				Help: "Total number of webhook callbacks by status",
			},
			[]string{"status"}, // status: accepted, signature_invalid, malformed_payload
		),

		WebhookDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shopbot_webhook_duration_seconds",
				Help:    "Webhook batch processing duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"status"},
		),

		EventsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopbot_events_total",
				Help: "Total number of decoded events by kind and routed step",
			},
			[]string{"kind", "step"}, // step: welcome, greeting, ..., none (fallback)
		),

		DeliveriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopbot_deliveries_total",
				Help: "Total number of outbound sends by template type and status",
			},
			[]string{"template", "status"}, // status: success, error
		),

		DeliveryDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shopbot_delivery_duration_seconds",
				Help:    "Send API call duration in seconds by template type",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"template"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopbot_http_errors_total",
				Help: "Total HTTP errors by type",
			},
			[]string{"error_type"}, // error_type: invalid_signature, malformed_payload, verify_token_mismatch
		),
	}

	return m
}

// RecordWebhook records a webhook callback with status
func (m *Metrics) RecordWebhook(status string, duration float64) {
	m.WebhookRequestsTotal.WithLabelValues(status).Inc()
	m.WebhookDurationSeconds.WithLabelValues(status).Observe(duration)
}

// RecordEvent records a decoded event and the step it routed to
func (m *Metrics) RecordEvent(kind, step string) {
	m.EventsTotal.WithLabelValues(kind, step).Inc()
}

// RecordDelivery records an outbound send attempt
func (m *Metrics) RecordDelivery(template, status string, duration float64) {
	m.DeliveriesTotal.WithLabelValues(template, status).Inc()
	m.DeliveryDurationSeconds.WithLabelValues(template).Observe(duration)
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType).Inc()
}
