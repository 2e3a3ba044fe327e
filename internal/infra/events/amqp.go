package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"storefront-orders/internal/usecase/shared"

	"github.com/streadway/amqp"
)

// AMQPPublisher publishes events to a durable topic exchange, routed by
// event name.
type AMQPPublisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex // guards channel; amqp channels are not safe for concurrent publishes
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

func NewAMQPPublisher(url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	logger.Info("connected to RabbitMQ", "exchange", exchange)
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange, logger: logger}, nil
}

func (p *AMQPPublisher) Publish(_ context.Context, e shared.Event) error {
	body, err := encode(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.Publish(
		p.exchange,
		e.Name, // routing key
		false,  // mandatory
		false,  // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    e.OccurredAt,
			Type:         e.Name,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", e.Name, err)
	}
	p.logger.Debug("event published", "name", e.Name, "exchange", p.exchange)
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var errs []error
	if err := p.channel.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
	}
	if err := p.conn.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("closing RabbitMQ publisher: %v", errs)
	}
	return nil
}

type envelope struct {
	Name       string         `json:"name"`
	OccurredAt string         `json:"occurredAt"`
	Payload    map[string]any `json:"payload"`
}

func encode(e shared.Event) ([]byte, error) {
	body, err := json.Marshal(envelope{
		Name:       e.Name,
		OccurredAt: e.OccurredAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Payload:    e.Payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode event %s: %w", e.Name, err)
	}
	return body, nil
}
