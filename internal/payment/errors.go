// internal/payment/errors.go
package payment

import "errors"

var (
	// ErrMissingOrderID rejects session requests without an order reference.
	ErrMissingOrderID = errors.New("orderId is required")

	// ErrNoItems rejects session requests before any provider call is made.
	ErrNoItems = errors.New("payment session requires at least one item")

	// ErrInvalidItem covers bad line data: empty name, negative price, quantity < 1.
	ErrInvalidItem = errors.New("invalid line item")

	// ErrSignatureInvalid marks a webhook whose signature did not verify against
	// the raw body. Per-request condition: respond 400, never crash. The provider
	// owns redelivery, so we never retry locally.
	ErrSignatureInvalid = errors.New("webhook signature verification failed")

	// ErrProcessor wraps failures of the outbound session-create call.
	ErrProcessor = errors.New("payment processor request failed")

	// ErrProviderDown marks provider-side outages (5xx from the processor).
	ErrProviderDown = errors.New("payment provider unavailable")
)

// IsValidation reports whether err should surface as a client error rather
// than a processor failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingOrderID) ||
		errors.Is(err, ErrNoItems) ||
		errors.Is(err, ErrInvalidItem)
}
