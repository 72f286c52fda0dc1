// internal/payment/gateway.go
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v79"
)

// CheckoutGateway abstracts the hosted-checkout provider (Stripe today).
// It accepts a context so callers can bound the outbound call with a timeout
// or cancel it when the inbound request goes away.
type CheckoutGateway interface {
	CreateCheckoutSession(
		ctx context.Context,
		orderID string,
		lines []*stripe.CheckoutSessionLineItemParams,
		successURL string,
		cancelURL string,
	) (*SessionResult, error)
}
