// internal/payment/line_items_test.go
package payment

import (
	"errors"
	"testing"
)

func TestBuildLineItems(t *testing.T) {
	tests := []struct {
		name        string
		items       []Item
		expectedErr error
	}{
		{
			name:        "empty item list is rejected",
			items:       nil,
			expectedErr: ErrNoItems,
		},
		{
			name:        "negative price is rejected",
			items:       []Item{{Name: "Widget", Price: -100, Quantity: 1}},
			expectedErr: ErrInvalidItem,
		},
		{
			name:        "zero quantity is rejected",
			items:       []Item{{Name: "Widget", Price: 100, Quantity: 0}},
			expectedErr: ErrInvalidItem,
		},
		{
			name:        "missing name is rejected",
			items:       []Item{{Name: "", Price: 100, Quantity: 1}},
			expectedErr: ErrInvalidItem,
		},
		{
			name: "valid items pass",
			items: []Item{
				{Name: "Widget", Price: 1000, Quantity: 2},
				{Name: "Gadget", Price: 0, Quantity: 1},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := BuildLineItems("clp", tc.items)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(lines) != len(tc.items) {
				t.Fatalf("expected %d lines, got %d", len(tc.items), len(lines))
			}
		})
	}
}

// The unit amount must always be the per-unit price. Stripe multiplies by the
// quantity on its side, so emitting price*quantity would double the charge.
func TestBuildLineItems_PerUnitPricing(t *testing.T) {
	items := []Item{
		{Name: "Widget", Price: 1000, Quantity: 2},
		{Name: "Gadget", Price: 350, Quantity: 5},
		{Name: "Gizmo", Price: 99, Quantity: 1},
	}

	lines, err := BuildLineItems("clp", items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, line := range lines {
		if got := *line.PriceData.UnitAmount; got != items[i].Price {
			t.Errorf("line %d: unit amount = %d, want per-unit price %d", i, got, items[i].Price)
		}
		if got := *line.PriceData.UnitAmount; got == items[i].Price*items[i].Quantity && items[i].Quantity > 1 {
			t.Errorf("line %d: unit amount %d looks like price*quantity", i, got)
		}
		if got := *line.Quantity; got != items[i].Quantity {
			t.Errorf("line %d: quantity = %d, want %d", i, got, items[i].Quantity)
		}
		if got := *line.PriceData.ProductData.Name; got != items[i].Name {
			t.Errorf("line %d: name = %q, want %q (input order must be preserved)", i, got, items[i].Name)
		}
		if got := *line.PriceData.Currency; got != "clp" {
			t.Errorf("line %d: currency = %q, want %q", i, got, "clp")
		}
	}
}
