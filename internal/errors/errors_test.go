package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelIdentity(t *testing.T) {
	t.Parallel()
	wrapped := fmt.Errorf("decode: %w", ErrMalformedPayload)
	assert.True(t, errors.Is(wrapped, ErrMalformedPayload))
	assert.False(t, errors.Is(wrapped, ErrSignatureInvalid))
}

func TestDeliveryErrorMessage(t *testing.T) {
	t.Parallel()
	err := NewDeliveryError("user-1", 400, errors.New("bad request"))
	assert.Contains(t, err.Error(), "recipient=user-1")
	assert.Contains(t, err.Error(), "status=400")

	noStatus := NewDeliveryError("user-2", 0, errors.New("connection refused"))
	assert.NotContains(t, noStatus.Error(), "status=")
}

func TestDeliveryErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("timeout")
	err := NewDeliveryError("user-1", 0, cause)

	assert.True(t, errors.Is(err, cause))

	var de *DeliveryError
	assert.True(t, errors.As(fmt.Errorf("send: %w", err), &de))
	assert.Equal(t, "user-1", de.Recipient)
}
