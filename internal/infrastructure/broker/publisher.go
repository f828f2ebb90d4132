package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends order events to a topic exchange, routed by event type
type Publisher struct {
	rabbitMq *RabbitMQ
	exchange string
	mu       sync.Mutex
	logger   logger.Logger
}

// NewPublisher creates a Publisher on a connected RabbitMQ and declares its exchange
func NewPublisher(rabbitMq *RabbitMQ, exchange string, logger logger.Logger) (*Publisher, error) {
	if err := rabbitMq.DeclareTopicExchange(exchange); err != nil {
		return nil, err
	}

	return &Publisher{
		rabbitMq: rabbitMq,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Publish sends event as persistent JSON with the event type as routing key
func (p *Publisher) Publish(ctx context.Context, event *orders.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", event.Type, err)
	}

	// amqp channels must not be used for concurrent publishes
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.rabbitMq.Channel.PublishWithContext(
		ctx,
		p.exchange,
		event.Type,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Timestamp:    event.OccurredAt,
			Type:         event.Type,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event %s for order %s: %w", event.Type, event.OrderID, err)
	}

	p.logger.Debug("event published", "type", event.Type, "order_id", event.OrderID)
	return nil
}

// LogEventPublisher logs events instead of sending them to a broker
type LogEventPublisher struct {
	logger logger.Logger
}

// NewLogEventPublisher creates a LogEventPublisher
func NewLogEventPublisher(logger logger.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish logs the event
func (p *LogEventPublisher) Publish(_ context.Context, event *orders.Event) error {
	p.logger.Info("event published",
		"id", event.ID,
		"type", event.Type,
		"order_id", event.OrderID,
		"status", event.Status)
	return nil
}

// NewEventPublisher connects to the broker when enabled and falls back to logging otherwise.
// The returned close function releases the connection.
func NewEventPublisher(settings *config.BrokerSettings, logger logger.Logger) (orders.EventPublisher, func(), error) {
	if !settings.Enabled {
		return NewLogEventPublisher(logger), func() {}, nil
	}

	rabbitMq := NewRabbitMQ(settings.URL)
	if err := rabbitMq.Connect(); err != nil {
		return nil, nil, err
	}

	publisher, err := NewPublisher(rabbitMq, settings.Exchange, logger)
	if err != nil {
		rabbitMq.Close()
		return nil, nil, err
	}

	logger.Info("publishing order events", "exchange", settings.Exchange)
	return publisher, rabbitMq.Close, nil
}
