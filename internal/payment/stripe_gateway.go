// internal/payment/stripe_gateway.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway implements CheckoutGateway against the Stripe API.
// We hold our own client.API instead of using the package-level globals so
// the key never leaks into global state.
type StripeGateway struct {
	client *client.API
}

func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeGateway{client: sc}
}

// CreateCheckoutSession creates a one-time-payment hosted checkout session.
// The order ID rides in the payment-intent metadata so it survives into the
// charge objects we later receive over webhooks, and in the session metadata
// so we can echo it back to the caller.
func (sg *StripeGateway) CreateCheckoutSession(
	ctx context.Context,
	orderID string,
	lines []*stripe.CheckoutSessionLineItemParams,
	successURL string,
	cancelURL string,
) (*SessionResult, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lines,
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"orderId": orderID},
		},
	}
	params.AddMetadata("orderId", orderID)

	// If the caller's context expires, this cancels the HTTP request to Stripe.
	params.Context = ctx

	sess, err := sg.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, sg.mapStripeError(err)
	}

	result := &SessionResult{
		CancelURL:  sess.CancelURL,
		SuccessURL: sess.SuccessURL,
		URL:        sess.URL,
		OrderID:    sess.Metadata["orderId"],
	}
	if result.OrderID == "" {
		result.OrderID = orderID
	}
	return result, nil
}

// mapStripeError converts stripe-go errors into domain errors so that
// 'stripe-go' error types do not leak past the gateway.
func (sg *StripeGateway) mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %s", ErrProviderDown, stripeErr.Msg)
		}
		return fmt.Errorf("%w: %s", ErrProcessor, stripeErr.Msg)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out", ErrProcessor)
	}
	return fmt.Errorf("%w: %v", ErrProcessor, err)
}
