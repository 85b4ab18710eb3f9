package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWebhook(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.RecordWebhook("accepted", 0.05)
	m.RecordWebhook("accepted", 0.10)
	m.RecordWebhook("signature_invalid", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.WebhookRequestsTotal.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WebhookRequestsTotal.WithLabelValues("signature_invalid")))
}

func TestRecordEvent(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.RecordEvent("text", "greeting")
	m.RecordEvent("postback", "region_select")
	m.RecordEvent("fallback", "none")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("text", "greeting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("fallback", "none")))
}

func TestRecordDelivery(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.RecordDelivery("text", "success", 0.2)
	m.RecordDelivery("receipt", "error", 1.5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeliveriesTotal.WithLabelValues("text", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeliveriesTotal.WithLabelValues("receipt", "error")))
}

func TestRecordHTTPError(t *testing.T) {
	t.Parallel()
	m := New(prometheus.NewRegistry())

	m.RecordHTTPError("invalid_signature")
	m.RecordHTTPError("invalid_signature")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPErrorsTotal.WithLabelValues("invalid_signature")))
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()
	registry := prometheus.NewRegistry()
	New(registry)

	require.Panics(t, func() { New(registry) })
}
