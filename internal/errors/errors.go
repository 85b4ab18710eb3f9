// Package errors provides domain-specific error types and sentinel errors
// for the webhook pipeline. Errors are terminal at their scope: request-level
// errors reject or acknowledge the callback, event-level errors are logged
// and never abort the batch.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the webhook pipeline.
// Use errors.Is() to check these errors in your code.
var (
	// ErrSignatureInvalid indicates the callback signature did not match
	// the app secret. The request must be rejected before decoding.
	ErrSignatureInvalid = errors.New("invalid callback signature")

	// ErrMalformedPayload indicates the callback envelope itself was not
	// parseable. Individual events with unknown shapes do NOT produce this
	// error; they degrade to fallback events instead.
	ErrMalformedPayload = errors.New("malformed callback payload")

	// ErrVerifyTokenMismatch indicates a subscription verification request
	// carried the wrong verify token.
	ErrVerifyTokenMismatch = errors.New("verify token mismatch")
)

// DeliveryError represents a failed outbound send with context.
// It is reported per event and never retried.
type DeliveryError struct {
	Recipient  string
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("delivery failed (recipient=%s, status=%d): %v", e.Recipient, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("delivery failed (recipient=%s): %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// NewDeliveryError creates a new delivery error.
func NewDeliveryError(recipient string, statusCode int, err error) *DeliveryError {
	return &DeliveryError{
		Recipient:  recipient,
		StatusCode: statusCode,
		Err:        err,
	}
}
