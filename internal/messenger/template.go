package messenger

// Template is an outbound message built for a single send call. The concrete
// variants are TextMessage, QuickReplyMessage, GenericTemplate and
// ReceiptTemplate; payload() produces the Send API "message" object.
type Template interface {
	// Type returns the template type name used in logs and metrics labels.
	Type() string

	payload() any
}

// TextMessage is a plain text reply.
type TextMessage struct {
	Text string
}

// Type implements Template.
func (TextMessage) Type() string { return "text" }

func (t TextMessage) payload() any {
	return map[string]any{"text": t.Text}
}

// QuickReplyOption is one tappable option under a quick-reply message.
// Location options render the platform's location-share chip and carry
// no label or payload.
type QuickReplyOption struct {
	Label    string
	Payload  string
	Location bool
}

// QuickReplyMessage is a text message with an ordered set of quick-reply options.
type QuickReplyMessage struct {
	Text    string
	Options []QuickReplyOption
}

// Type implements Template.
func (QuickReplyMessage) Type() string { return "quick_reply" }

func (q QuickReplyMessage) payload() any {
	replies := make([]map[string]any, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt.Location {
			replies = append(replies, map[string]any{"content_type": "location"})
			continue
		}
		replies = append(replies, map[string]any{
			"content_type": "text",
			"title":        opt.Label,
			"payload":      opt.Payload,
		})
	}
	return map[string]any{
		"text":          q.Text,
		"quick_replies": replies,
	}
}

// Button is a button on a generic-template card. Exactly one of URL and
// Payload is set: URL buttons open a link, postback buttons send their
// payload token back through the webhook.
type Button struct {
	Title   string
	URL     string
	Payload string
}

func (b Button) wire() map[string]any {
	if b.URL != "" {
		return map[string]any{"type": "web_url", "title": b.Title, "url": b.URL}
	}
	return map[string]any{"type": "postback", "title": b.Title, "payload": b.Payload}
}

// Card is one column of a generic-template carousel.
type Card struct {
	Title    string
	Subtitle string
	ImageURL string
	ItemURL  string
	Buttons  []Button
}

// GenericTemplate is a horizontally scrollable carousel of cards.
type GenericTemplate struct {
	Cards []Card
}

// Type implements Template.
func (GenericTemplate) Type() string { return "generic" }

func (g GenericTemplate) payload() any {
	elements := make([]map[string]any, 0, len(g.Cards))
	for _, card := range g.Cards {
		buttons := make([]map[string]any, 0, len(card.Buttons))
		for _, b := range card.Buttons {
			buttons = append(buttons, b.wire())
		}
		elements = append(elements, map[string]any{
			"title":     card.Title,
			"subtitle":  card.Subtitle,
			"image_url": card.ImageURL,
			"item_url":  card.ItemURL,
			"buttons":   buttons,
		})
	}
	return templateAttachment("generic", map[string]any{"elements": elements})
}

// ReceiptLineItem is one purchased item on a receipt.
type ReceiptLineItem struct {
	Title    string
	Subtitle string
	Quantity int
	Price    float64
	Currency string
	ImageURL string
}

// ReceiptAddress is the shipping address block of a receipt.
type ReceiptAddress struct {
	Street1    string
	City       string
	PostalCode string
	State      string
	Country    string
}

// ReceiptSummary is the totals block of a receipt.
type ReceiptSummary struct {
	Subtotal     float64
	ShippingCost float64
	TotalTax     float64
	TotalCost    float64
}

// ReceiptAdjustment is a discount applied to the order total.
type ReceiptAdjustment struct {
	Name   string
	Amount float64
}

// ReceiptTemplate is an order confirmation.
type ReceiptTemplate struct {
	RecipientName string
	OrderNumber   string
	Currency      string
	PaymentMethod string
	Timestamp     int64
	LineItems     []ReceiptLineItem
	Address       ReceiptAddress
	Summary       ReceiptSummary
	Adjustments   []ReceiptAdjustment
}

// Type implements Template.
func (ReceiptTemplate) Type() string { return "receipt" }

func (r ReceiptTemplate) payload() any {
	elements := make([]map[string]any, 0, len(r.LineItems))
	for _, item := range r.LineItems {
		elements = append(elements, map[string]any{
			"title":     item.Title,
			"subtitle":  item.Subtitle,
			"quantity":  item.Quantity,
			"price":     item.Price,
			"currency":  item.Currency,
			"image_url": item.ImageURL,
		})
	}

	adjustments := make([]map[string]any, 0, len(r.Adjustments))
	for _, adj := range r.Adjustments {
		adjustments = append(adjustments, map[string]any{
			"name":   adj.Name,
			"amount": adj.Amount,
		})
	}

	return templateAttachment("receipt", map[string]any{
		"recipient_name": r.RecipientName,
		"order_number":   r.OrderNumber,
		"currency":       r.Currency,
		"payment_method": r.PaymentMethod,
		"timestamp":      r.Timestamp,
		"elements":       elements,
		"address": map[string]any{
			"street_1":    r.Address.Street1,
			"city":        r.Address.City,
			"postal_code": r.Address.PostalCode,
			"state":       r.Address.State,
			"country":     r.Address.Country,
		},
		"summary": map[string]any{
			"subtotal":      r.Summary.Subtotal,
			"shipping_cost": r.Summary.ShippingCost,
			"total_tax":     r.Summary.TotalTax,
			"total_cost":    r.Summary.TotalCost,
		},
		"adjustments": adjustments,
	})
}

// templateAttachment wraps a template payload in the Send API attachment shape.
func templateAttachment(templateType string, fields map[string]any) any {
	payload := map[string]any{"template_type": templateType}
	for k, v := range fields {
		payload[k] = v
	}
	return map[string]any{
		"attachment": map[string]any{
			"type":    "template",
			"payload": payload,
		},
	}
}
