// internal/bus/kafka/producer_test.go
package kafka

import (
	"context"
	"encoding/json"
	"testing"

	skafka "github.com/segmentio/kafka-go"
)

// fakeWriter is a test writer that records messages written.
type fakeWriter struct {
	msgs []skafka.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...skafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewProducerWithWriter(fw)

	payload := map[string]string{
		"orderId":        "ORD-1",
		"stripeChargeId": "ch_abc",
		"receiptUrl":     "https://example/receipt/abc",
	}
	if err := p.Publish(context.Background(), "ORD-1", payload); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if len(fw.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fw.msgs))
	}
	if string(fw.msgs[0].Key) != "ORD-1" {
		t.Errorf("key = %q, want the order ID", fw.msgs[0].Key)
	}

	var decoded map[string]string
	if err := json.Unmarshal(fw.msgs[0].Value, &decoded); err != nil {
		t.Fatalf("message value is not JSON: %v", err)
	}
	if decoded["receiptUrl"] != "https://example/receipt/abc" {
		t.Errorf("value %v lost the receipt URL", decoded)
	}
}
