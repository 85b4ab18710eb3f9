// Package webhook handles Messenger Platform callbacks: subscription
// verification on GET and signed event batches on POST. Verified batches are
// acknowledged immediately and processed asynchronously.
package webhook

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/achabot/messenger-shopbot-go/internal/config"
	"github.com/achabot/messenger-shopbot-go/internal/ctxutil"
	"github.com/achabot/messenger-shopbot-go/internal/logger"
	"github.com/achabot/messenger-shopbot-go/internal/messenger"
	"github.com/achabot/messenger-shopbot-go/internal/metrics"
	"github.com/achabot/messenger-shopbot-go/internal/signature"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SignatureHeader carries the HMAC-SHA1 digest of the request body.
const SignatureHeader = "X-Hub-Signature"

// Dispatcher processes a decoded event batch.
type Dispatcher interface {
	Dispatch(ctx context.Context, events []messenger.InboundEvent)
}

// Handler handles Messenger webhook callbacks
type Handler struct {
	appSecret   string
	verifyToken string
	metrics     *metrics.Metrics
	logger      *logger.Logger
	dispatcher  Dispatcher
	wg          sync.WaitGroup // WaitGroup for async event processing

	maxEventsPerWebhook int
}

// HandlerConfig holds configuration for creating a new Handler
type HandlerConfig struct {
	AppSecret   string
	VerifyToken string
	BotConfig   *config.BotConfig
	Metrics     *metrics.Metrics
	Logger      *logger.Logger
	Dispatcher  Dispatcher
}

// NewHandler creates a new webhook handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		appSecret:           cfg.AppSecret,
		verifyToken:         cfg.VerifyToken,
		metrics:             cfg.Metrics,
		logger:              cfg.Logger,
		dispatcher:          cfg.Dispatcher,
		maxEventsPerWebhook: cfg.BotConfig.MaxEventsPerWebhook,
	}
}

// Verify is the Gin handler for subscription verification (GET).
// The platform calls it once when the webhook is registered; echoing the
// challenge proves ownership of the endpoint.
func (h *Handler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, c.Query("hub.challenge"))
		return
	}

	h.logger.WithField("hub_mode", mode).Warn("Webhook verification failed")
	h.metrics.RecordHTTPError("verify_token_mismatch")
	c.String(http.StatusForbidden, "Wrong verification token")
}

// Handle is the Gin handler for the webhook endpoint (POST).
func (h *Handler) Handle(c *gin.Context) {
	start := time.Now()

	body, err := c.GetRawData()
	if err != nil {
		h.logger.WithError(err).Error("Failed to read webhook body")
		h.metrics.RecordWebhook("read_error", time.Since(start).Seconds())
		c.Status(http.StatusBadRequest)
		return
	}

	h.logger.WithField("signature", c.GetHeader(SignatureHeader)).
		WithField("body_bytes", len(body)).
		Debug("Received webhook callback")

	if !signature.Verify(body, c.GetHeader(SignatureHeader), h.appSecret) {
		h.logger.Warn("Invalid webhook signature")
		h.metrics.RecordHTTPError("invalid_signature")
		h.metrics.RecordWebhook("signature_invalid", time.Since(start).Seconds())
		c.Status(http.StatusForbidden)
		return
	}

	events, err := messenger.Decode(body)
	if err != nil {
		// The signature already proved the payload came from the platform, so
		// reject nothing: acknowledge and drop, a retry would fail the same way.
		h.logger.WithError(err).Error("Failed to decode webhook payload")
		h.metrics.RecordHTTPError("malformed_payload")
		h.metrics.RecordWebhook("malformed_payload", time.Since(start).Seconds())
		c.Status(http.StatusOK)
		return
	}

	if len(events) > h.maxEventsPerWebhook {
		h.logger.WithField("event_count", len(events)).
			WithField("limit", h.maxEventsPerWebhook).
			Warn("Too many events in webhook batch; truncating")
		events = events[:h.maxEventsPerWebhook]
	}

	// Acknowledge before processing; the platform retries unacknowledged
	// callbacks and slow sends must not trigger duplicate batches.
	c.Status(http.StatusOK)
	h.metrics.RecordWebhook("accepted", time.Since(start).Seconds())

	requestID := uuid.NewString()
	ctx := ctxutil.PreserveTracing(ctxutil.WithRequestID(c.Request.Context(), requestID))
	log := h.logger.WithRequestID(requestID)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic in async event processing")
			}
		}()

		log.WithField("event_count", len(events)).Debug("Processing webhook batch")
		h.dispatcher.Dispatch(ctx, events)
	}()
}

// Shutdown waits for all async event processing to complete.
// It returns an error if the context is canceled before completion.
func (h *Handler) Shutdown(ctx context.Context) error {
	c := make(chan struct{})
	go func() {
		defer close(c)
		h.wg.Wait()
	}()

	select {
	case <-c:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
