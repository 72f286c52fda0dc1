// internal/receipt/memory_test.go
package receipt

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "ORD-1", "https://example/receipt/abc"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	receiptURL, ok, err := store.Get(ctx, "ORD-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok || receiptURL != "https://example/receipt/abc" {
		t.Fatalf("got (%q, %v)", receiptURL, ok)
	}
}

func TestMemoryStore_AbsentOrder(t *testing.T) {
	store := NewMemoryStore()
	_, ok, err := store.Get(context.Background(), "ORD-UNKNOWN")
	if err != nil {
		t.Fatalf("absence must not be an error: %v", err)
	}
	if ok {
		t.Fatal("unknown order reported present")
	}
}

func TestMemoryStore_OverwriteLastWriteWins(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "ORD-1", "https://example/receipt/first")
	store.Set(ctx, "ORD-1", "https://example/receipt/second")

	receiptURL, ok, _ := store.Get(ctx, "ORD-1")
	if !ok || receiptURL != "https://example/receipt/second" {
		t.Fatalf("got %q, want the last write", receiptURL)
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Set(ctx, "ORD-1", "url"); err == nil {
		t.Fatal("expected context error on cancelled set")
	}
}

// Webhook deliveries arrive concurrently; the store must not corrupt under
// parallel writers, including writers racing on the same key.
func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	workers := 10
	orders := 100
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < orders; i++ {
				orderID := fmt.Sprintf("ORD-%d", i)
				url := fmt.Sprintf("https://example/receipt/%d-%d", w, i)
				if err := store.Set(ctx, orderID, url); err != nil {
					t.Errorf("worker %d: set failed: %v", w, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for i := 0; i < orders; i++ {
		orderID := fmt.Sprintf("ORD-%d", i)
		receiptURL, ok, err := store.Get(ctx, orderID)
		if err != nil || !ok {
			t.Fatalf("order %s missing after concurrent writes (err=%v)", orderID, err)
		}
		// Whichever worker wrote last won; the value must be one of theirs.
		if receiptURL == "" {
			t.Fatalf("order %s holds an empty receipt URL", orderID)
		}
	}
}
