// internal/bus/publisher.go
package bus

import (
	"context"
	"encoding/json"
	"log"
)

// Publisher is the interface the service uses to emit events on the internal
// bus. Emission is fire and forget from the caller's point of view: no
// delivery acknowledgment is awaited and no retry happens at this layer; the
// bus client owns redelivery.
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// NopPublisher is used when no bus driver is configured (local runs, tests).
// It logs the payload so the event is at least visible.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	log.Printf("[Bus] no driver configured, dropping event key=%s payload=%s", key, b)
	return nil
}

func (NopPublisher) Close() error { return nil }
