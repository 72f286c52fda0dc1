// internal/bus/rabbitmq/publisher.go
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher publishes payment events to a durable rabbitmq queue. It is the
// alternative bus driver to kafka and implements bus.Publisher.
type Publisher struct {
	conn  *amqp.Connection
	chn   *amqp.Channel
	queue string
}

// NewPublisher dials the server, opens a channel and declares the queue so
// events are not lost if no consumer is attached yet.
func NewPublisher(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	chn, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = chn.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		chn.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	return &Publisher{conn: conn, chn: chn, queue: queue}, nil
}

// Publish marshals the value to JSON and sends it to the queue. The key is
// carried as the message ID for traceability.
func (p *Publisher) Publish(ctx context.Context, key string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.chn.PublishWithContext(
		ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    key,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if err := p.chn.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
