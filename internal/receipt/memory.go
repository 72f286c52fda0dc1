// internal/receipt/memory.go
package receipt

import (
	"context"
	"sync"
)

// MemoryStore is the default backing: a mutex-guarded map. Webhook deliveries
// arrive concurrently and unordered, so all access goes through the lock.
//
// State lives for the process lifetime and is unbounded; use the redis or
// postgres store when eviction or durability matters.
type MemoryStore struct {
	mu       sync.RWMutex
	receipts map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		receipts: make(map[string]string),
	}
}

func (s *MemoryStore) Set(ctx context.Context, orderID, receiptURL string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts[orderID] = receiptURL
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, orderID string) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	default:
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	receiptURL, ok := s.receipts[orderID]
	return receiptURL, ok, nil
}
