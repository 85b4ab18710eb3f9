package messenger

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/achabot/messenger-shopbot-go/internal/errors"
)

// Webhook envelope shapes.
// Ref: https://developers.facebook.com/docs/messenger-platform/webhooks
// Unknown fields (delivery receipts, read receipts, echoes) are ignored by
// json.Unmarshal; the events carrying them degrade to KindFallback.
type envelope struct {
	Object string   `json:"object"` // "page" for Messenger callbacks
	Entry  *[]entry `json:"entry"`  // pointer to tell an absent array from an empty one
}

type entry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []messagingEvent `json:"messaging"`
}

type messagingEvent struct {
	Sender    participant      `json:"sender"`
	Recipient participant      `json:"recipient"`
	Timestamp int64            `json:"timestamp"`
	Message   *messageContent  `json:"message,omitempty"`
	Postback  *postbackContent `json:"postback,omitempty"`
}

type participant struct {
	ID string `json:"id"`
}

type messageContent struct {
	Text       string             `json:"text"`
	QuickReply *quickReplyContent `json:"quick_reply,omitempty"`
}

type quickReplyContent struct {
	Payload string `json:"payload"`
}

type postbackContent struct {
	Payload string `json:"payload"`
}

// Decode parses a verified callback body into inbound events.
//
// The boundary is deliberate: a corrupt envelope (invalid JSON, missing entry
// array) fails the whole batch with ErrMalformedPayload, while a messaging
// event whose shape is merely unrecognized becomes a KindFallback event. A
// batch of N messaging events therefore always decodes to N InboundEvents.
func Decode(raw []byte) ([]InboundEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrMalformedPayload, err)
	}
	if env.Entry == nil {
		return nil, fmt.Errorf("%w: missing entry array", apperrors.ErrMalformedPayload)
	}

	var events []InboundEvent
	for _, ent := range *env.Entry {
		for _, msg := range ent.Messaging {
			events = append(events, decodeMessaging(msg))
		}
	}
	return events, nil
}

// decodeMessaging classifies a single messaging event. Precedence matters:
// a quick-reply tap also carries message text (the option label), so the
// quick-reply payload is checked before free text.
func decodeMessaging(msg messagingEvent) InboundEvent {
	ev := InboundEvent{
		SenderID:    msg.Sender.ID,
		RecipientID: msg.Recipient.ID,
		Timestamp:   msg.Timestamp,
	}

	switch {
	case msg.Message != nil && msg.Message.QuickReply != nil && msg.Message.QuickReply.Payload != "":
		ev.Kind = KindQuickReply
		ev.QuickReplyToken = msg.Message.QuickReply.Payload
	case msg.Postback != nil && msg.Postback.Payload != "":
		ev.Kind = KindPostback
		ev.PayloadToken = msg.Postback.Payload
	case msg.Message != nil && msg.Message.Text != "":
		ev.Kind = KindText
		ev.Text = msg.Message.Text
	default:
		ev.Kind = KindFallback
	}

	return ev
}
