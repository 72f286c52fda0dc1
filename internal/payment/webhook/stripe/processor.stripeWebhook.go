// internal/payment/webhook/stripe/processor.stripeWebhook.go
package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/nexuspay/payments-service/internal/payment"
)

// Processor verifies and decodes Stripe webhook deliveries using the shared
// endpoint secret.
type Processor struct {
	secret string
}

func New(endpointSecret string) *Processor {
	return &Processor{secret: endpointSecret}
}

func (p *Processor) Provider() string {
	return "Stripe"
}

// VerifyAndParse checks the Stripe-Signature header against the raw payload
// bytes, then maps the event onto the service's closed event set.
//
// payload must be the exact bytes Stripe sent. Verification failures come
// back wrapped in payment.ErrSignatureInvalid so transports can answer 400.
func (p *Processor) VerifyAndParse(payload []byte, headers map[string]string) (*payment.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, headers["Stripe-Signature"], p.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrSignatureInvalid, err)
	}

	switch event.Type {
	case "charge.succeeded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return nil, fmt.Errorf("decode charge object: %w", err)
		}
		return &payment.WebhookEvent{
			Provider: "Stripe",
			Kind:     payment.EventChargeSucceeded,
			Type:     string(event.Type),
			Charge: &payment.ChargeSucceeded{
				OrderID:    charge.Metadata["orderId"],
				ChargeID:   charge.ID,
				ReceiptURL: charge.ReceiptURL,
			},
		}, nil
	}

	// Verified but outside our event set. Callers acknowledge these with 200;
	// rejecting would only make Stripe redeliver an event we ignore anyway.
	return &payment.WebhookEvent{
		Provider: "Stripe",
		Kind:     payment.EventIgnored,
		Type:     string(event.Type),
	}, nil
}
