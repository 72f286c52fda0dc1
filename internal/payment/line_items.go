// internal/payment/line_items.go
package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v79"
)

// BuildLineItems converts order items into the line-item params the provider
// expects. The unit amount is the per-unit price: Stripe multiplies by the
// quantity itself, so passing price*quantity here would double-charge.
func BuildLineItems(currency string, items []Item) ([]*stripe.CheckoutSessionLineItemParams, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	lines := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		lines = append(lines, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.Price),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	return lines, nil
}

// Validate enforces the line-item invariants: quantity >= 1, price >= 0.
func (it Item) Validate() error {
	if it.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if it.Price < 0 {
		return fmt.Errorf("%w: price %d is negative", ErrInvalidItem, it.Price)
	}
	if it.Quantity < 1 {
		return fmt.Errorf("%w: quantity %d is less than 1", ErrInvalidItem, it.Quantity)
	}
	return nil
}
