package bot

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/achabot/messenger-shopbot-go/internal/errors"
	"github.com/achabot/messenger-shopbot-go/internal/logger"
	"github.com/achabot/messenger-shopbot-go/internal/messenger"
	"github.com/achabot/messenger-shopbot-go/internal/metrics"
	"github.com/achabot/messenger-shopbot-go/internal/sentry"
)

// Dispatcher runs the per-event pipeline: route the event to a step, compose
// the step's reply and send it back to the event's sender.
type Dispatcher struct {
	gateway     messenger.Gateway
	composer    *Composer
	log         *logger.Logger
	metrics     *metrics.Metrics
	sendTimeout time.Duration
}

// NewDispatcher creates a Dispatcher delivering through the given gateway.
func NewDispatcher(gateway messenger.Gateway, composer *Composer, log *logger.Logger, m *metrics.Metrics, sendTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		gateway:     gateway,
		composer:    composer,
		log:         log,
		metrics:     m,
		sendTimeout: sendTimeout,
	}
}

// Dispatch processes a webhook batch in order. A failed send is logged and
// counted but never aborts the rest of the batch, so one unreachable
// recipient cannot starve the others.
func (d *Dispatcher) Dispatch(ctx context.Context, events []messenger.InboundEvent) {
	for _, ev := range events {
		d.dispatchOne(ctx, ev)
	}
}

func (d *Dispatcher) dispatchOne(ctx context.Context, ev messenger.InboundEvent) {
	log := d.log.WithSender(ev.SenderID).WithField("kind", ev.Kind.String())

	step, ok := Route(ev)
	if !ok {
		// Attachments, delivery receipts and other non-routable events are
		// acknowledged by the webhook but get no reply.
		d.metrics.RecordEvent(ev.Kind.String(), "none")
		log.Debug("skipping event without routable content")
		return
	}
	d.metrics.RecordEvent(ev.Kind.String(), step.String())

	tpl := d.composer.Compose(step)
	log = log.WithFields(map[string]any{
		"step":     step.String(),
		"template": tpl.Type(),
	})

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	start := time.Now()
	err := d.gateway.Send(sendCtx, ev.SenderID, tpl)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		d.metrics.RecordDelivery(tpl.Type(), "error", elapsed)
		entry := log.WithError(err)
		var de *apperrors.DeliveryError
		if errors.As(err, &de) {
			entry = entry.WithField("status_code", de.StatusCode)
		}
		entry.Error("failed to deliver reply")
		sentry.CaptureExceptionWithContext(ctx, err)
		return
	}

	d.metrics.RecordDelivery(tpl.Type(), "success", elapsed)
	log.Info("reply delivered")
}
