package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/achabot/messenger-shopbot-go/internal/errors"
)

// Gateway delivers a composed template to a recipient. The production
// implementation is Client; tests substitute a fake.
type Gateway interface {
	Send(ctx context.Context, recipientID string, tpl Template) error
}

// Client is the Send API client. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Send API client.
// baseURL is the Graph API root (e.g. "https://graph.facebook.com/v2.6");
// timeout bounds each send call.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	Recipient participant `json:"recipient"`
	Message   any         `json:"message"`
}

// Send posts one message to the recipient. Failures are wrapped in
// *errors.DeliveryError and reported to the caller; this client never
// retries (the dispatch loop treats each event independently).
func (c *Client) Send(ctx context.Context, recipientID string, tpl Template) error {
	body, err := json.Marshal(sendRequest{
		Recipient: participant{ID: recipientID},
		Message:   tpl.payload(),
	})
	if err != nil {
		return apperrors.NewDeliveryError(recipientID, 0, fmt.Errorf("encode message: %w", err))
	}

	endpoint := c.baseURL + "/me/messages?access_token=" + url.QueryEscape(c.accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewDeliveryError(recipientID, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewDeliveryError(recipientID, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The Graph API puts the error description in the body; keep it short.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.NewDeliveryError(recipientID, resp.StatusCode, fmt.Errorf("send api: %s", bytes.TrimSpace(detail)))
	}

	return nil
}
