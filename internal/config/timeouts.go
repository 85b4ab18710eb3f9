// Package config provides centralized timeout constants for the application.
//
// The Messenger Platform retries callbacks that are not acknowledged quickly,
// so the webhook path acknowledges first and delivers replies asynchronously.
// Timeouts below are tuned around that: short HTTP read/write on the inbound
// side, a bounded budget per outbound Send API call.
package config

import "time"

// Webhook timeouts
const (
	// WebhookHTTPRead is the HTTP server read timeout for webhook requests.
	// Callback payloads are small JSON bodies.
	WebhookHTTPRead = 10 * time.Second

	// WebhookHTTPWrite is the HTTP server write timeout. Responses are
	// an empty 200 or a short challenge echo, so this stays small.
	WebhookHTTPWrite = 15 * time.Second

	// WebhookHTTPIdle is the HTTP server idle timeout for keep-alive connections.
	WebhookHTTPIdle = 120 * time.Second
)

// Outbound delivery timeouts
const (
	// SendRequest bounds a single Send API call. Delivery failures are
	// reported per event and never retried, so one bounded attempt is all
	// an event gets.
	SendRequest = 10 * time.Second
)

// Graceful shutdown
const (
	// GracefulShutdown is the timeout for graceful server shutdown.
	// Allows in-flight webhook batches to finish dispatching.
	GracefulShutdown = 30 * time.Second
)
