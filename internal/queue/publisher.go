package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends domain events to RabbitMQ. Every publish dials a
// fresh connection: event volume is low and a persistent channel would
// add reconnect handling for no measurable gain. Errors are returned so
// callers can log and ignore them; a broker outage must never fail the
// request that produced the event.
type Publisher struct {
	url string
}

// NewPublisher builds a Publisher for the given AMQP URL. An empty URL
// yields a nil Publisher, which callers treat as "events disabled".
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// Publish declares the queue (idempotent, durable) and sends event as a
// persistent JSON message on the default exchange.
func (p *Publisher) Publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
