// internal/payment/models.payment.go
package payment

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single order line as received from the caller.
// Price is the per-unit amount in minor currency units (cents, pesos, etc).
type Item struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// SessionRequest asks for a hosted checkout session for an order.
// The order itself lives in another service; we only carry its ID.
type SessionRequest struct {
	OrderID string `json:"orderId"`
	Items   []Item `json:"items"`
}

// SessionResult is the normalized view of a checkout session created by the
// provider. Sessions are owned by the provider and never persisted here.
type SessionResult struct {
	CancelURL  string `json:"cancelUrl"`
	SuccessURL string `json:"successUrl"`
	URL        string `json:"url"`
	OrderID    string `json:"orderId"`
}

// EventKind is the closed set of webhook event kinds this service reacts to.
// Anything the provider sends that we do not model maps to EventIgnored, so
// the dispatch surface stays auditable in one switch statement.
type EventKind string

const (
	EventChargeSucceeded EventKind = "charge.succeeded"
	EventIgnored         EventKind = "ignored"
)

// ChargeSucceeded carries the fields we extract from a successful charge:
// the internal order ID travels through the provider in charge metadata.
type ChargeSucceeded struct {
	OrderID    string
	ChargeID   string
	ReceiptURL string
}

// WebhookEvent is the verified, decoded form of an inbound webhook delivery.
type WebhookEvent struct {
	Provider string
	Kind     EventKind
	Type     string // raw provider event type, kept for logging
	Charge   *ChargeSucceeded
}

// SucceededEvent is the message re-published on the internal bus once a
// charge succeeds. Wire names match what downstream consumers already expect.
type SucceededEvent struct {
	EventID        uuid.UUID `json:"eventId"`
	OrderID        string    `json:"orderId"`
	StripeChargeID string    `json:"stripeChargeId"`
	ReceiptURL     string    `json:"receiptUrl"`
	OccurredAt     time.Time `json:"occurredAt"`
}
