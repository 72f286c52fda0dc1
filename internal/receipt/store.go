// internal/receipt/store.go
package receipt

import "context"

// Store maps an internal order ID to the provider-hosted receipt URL of its
// successful charge.
//
// Set is an idempotent overwrite: at most one receipt URL per order ID, last
// write wins. Get reports absence through the bool, not through an error.
type Store interface {
	Set(ctx context.Context, orderID, receiptURL string) error
	Get(ctx context.Context, orderID string) (string, bool, error)
}
