// internal/bus/kafka/producer.go
package kafka

import (
	"context"
	"encoding/json"
	"log"

	skafka "github.com/segmentio/kafka-go"
)

// Writer defines the subset of segmentio kafka.Writer we need. This makes the
// producer testable without a broker.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Producer publishes payment events to a single kafka topic. It implements
// bus.Publisher; the message key is the order ID so events for one order land
// on one partition, in order.
type Producer struct {
	writer Writer
}

// NewProducer creates a Producer that writes to the given broker and topic
// (paymentSucceeded in the default deployment).
func NewProducer(brokerURL, topic string) *Producer {
	w := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return &Producer{writer: w}
}

// NewProducerWithWriter allows injecting a test writer.
func NewProducerWithWriter(w Writer) *Producer {
	return &Producer{writer: w}
}

// Publish marshals the value to JSON and writes a kafka message with the
// given key.
func (p *Producer) Publish(ctx context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		log.Println("[Bus] failed to marshal kafka value:", err)
		return err
	}
	msg := skafka.Message{Key: []byte(key), Value: b}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Println("[Bus] kafka write error:", err)
		return err
	}
	return nil
}

// Close closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
