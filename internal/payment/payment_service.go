// internal/payment/payment_service.go
package payment

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/nexuspay/payments-service/internal/bus"
	"github.com/nexuspay/payments-service/internal/receipt"
)

// Settings holds the checkout knobs that come from configuration.
type Settings struct {
	// Currency is the fixed currency code applied to every line item.
	Currency string

	// SuccessURL is where the provider redirects after payment. When
	// SuccessURLPerOrder is set (the default), the order ID is appended as a
	// query parameter so the success page can look up the receipt.
	SuccessURL         string
	SuccessURLPerOrder bool

	// CancelURL is the fixed redirect for abandoned checkouts.
	CancelURL string

	// ProcessorTimeout bounds the outbound session-create call. The call must
	// surface a processor error on expiry rather than hang the caller.
	ProcessorTimeout time.Duration
}

// PaymentService wires the checkout gateway, webhook processor, receipt store
// and event bus together. It owns the business rules; transports stay thin.
type PaymentService struct {
	gateway   CheckoutGateway
	processor WebhookProcessor
	receipts  receipt.Store
	publisher bus.Publisher
	settings  Settings
}

func NewPaymentService(
	gateway CheckoutGateway,
	processor WebhookProcessor,
	receipts receipt.Store,
	publisher bus.Publisher,
	settings Settings,
) *PaymentService {
	if settings.ProcessorTimeout <= 0 {
		settings.ProcessorTimeout = 10 * time.Second
	}
	return &PaymentService{
		gateway:   gateway,
		processor: processor,
		receipts:  receipts,
		publisher: publisher,
		settings:  settings,
	}
}

// CreatePaymentSession validates the request, builds provider line items and
// asks the gateway for a hosted checkout session. Validation failures reject
// before any external call; gateway failures propagate, never swallowed.
func (ps *PaymentService) CreatePaymentSession(ctx context.Context, req SessionRequest) (*SessionResult, error) {
	if req.OrderID == "" {
		return nil, ErrMissingOrderID
	}

	lines, err := BuildLineItems(ps.settings.Currency, req.Items)
	if err != nil {
		return nil, err
	}

	successURL := ps.settings.SuccessURL
	if ps.settings.SuccessURLPerOrder {
		successURL = fmt.Sprintf("%s?orderId=%s", successURL, url.QueryEscape(req.OrderID))
	}

	ctx, cancel := context.WithTimeout(ctx, ps.settings.ProcessorTimeout)
	defer cancel()

	return ps.gateway.CreateCheckoutSession(ctx, req.OrderID, lines, successURL, ps.settings.CancelURL)
}

// HandleWebhook verifies an inbound delivery and dispatches on its kind.
//
// A returned error means the delivery could not be verified and the transport
// should answer 400; the provider will redeliver. Once the event is verified
// we always acknowledge: store and publish failures are logged, because a
// redelivery would hit the same idempotent overwrite anyway and the provider
// only retries on non-2xx.
func (ps *PaymentService) HandleWebhook(ctx context.Context, payload []byte, headers map[string]string) error {
	event, err := ps.processor.VerifyAndParse(payload, headers)
	if err != nil {
		return err
	}

	switch event.Kind {
	case EventChargeSucceeded:
		charge := event.Charge
		log.Printf("[Webhook] %s charge succeeded: order=%s charge=%s", event.Provider, charge.OrderID, charge.ChargeID)

		// Overwrite semantics: duplicate and out-of-order deliveries for the
		// same order resolve to last write wins.
		if err := ps.receipts.Set(ctx, charge.OrderID, charge.ReceiptURL); err != nil {
			log.Printf("[Webhook] failed to store receipt for order %s: %v", charge.OrderID, err)
		}

		succeeded := SucceededEvent{
			EventID:        uuid.New(),
			OrderID:        charge.OrderID,
			StripeChargeID: charge.ChargeID,
			ReceiptURL:     charge.ReceiptURL,
			OccurredAt:     time.Now().UTC(),
		}
		if err := ps.publisher.Publish(ctx, charge.OrderID, succeeded); err != nil {
			log.Printf("[Webhook] failed to publish paymentSucceeded for order %s: %v", charge.OrderID, err)
		}

	default:
		log.Printf("[Webhook] event %s not handled", event.Type)
	}
	return nil
}

// ReceiptURL looks up the receipt for an order. A missing entry is not an
// error; the HTTP layer substitutes its sentinel message.
func (ps *PaymentService) ReceiptURL(ctx context.Context, orderID string) (string, bool) {
	receiptURL, ok, err := ps.receipts.Get(ctx, orderID)
	if err != nil {
		log.Printf("[Payments] receipt lookup failed for order %s: %v", orderID, err)
		return "", false
	}
	return receiptURL, ok
}
