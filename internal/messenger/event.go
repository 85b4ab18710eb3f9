// Package messenger implements the Messenger Platform boundary: decoding
// webhook callback payloads into inbound events, building outbound message
// templates, and delivering them through the Send API.
package messenger

// EventKind classifies a decoded messaging event.
type EventKind int

const (
	// KindText is a free-text message typed by the user.
	KindText EventKind = iota
	// KindQuickReply is a tap on a quick-reply option; carries a payload token.
	KindQuickReply
	// KindPostback is a tap on a template button; carries a payload token.
	KindPostback
	// KindFallback is any messaging event shape this bot does not handle.
	// Fallback events are decoded (never an error) but produce no reply.
	KindFallback
)

// String returns the kind name used in logs and metrics labels.
func (k EventKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindQuickReply:
		return "quick_reply"
	case KindPostback:
		return "postback"
	default:
		return "fallback"
	}
}

// InboundEvent is one decoded messaging event from a callback batch.
// It is immutable once decoded; exactly one of Text, PayloadToken and
// QuickReplyToken is populated, matching Kind.
type InboundEvent struct {
	SenderID    string
	RecipientID string
	Timestamp   int64 // Unix milliseconds
	Kind        EventKind

	Text            string // KindText only
	PayloadToken    string // KindPostback only
	QuickReplyToken string // KindQuickReply only
}

// Token returns the payload token regardless of whether the event came from
// a quick reply or a postback, empty for other kinds.
func (e InboundEvent) Token() string {
	switch e.Kind {
	case KindQuickReply:
		return e.QuickReplyToken
	case KindPostback:
		return e.PayloadToken
	default:
		return ""
	}
}
