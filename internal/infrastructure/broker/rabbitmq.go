package broker

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ holds one connection and the channel events are published on
type RabbitMQ struct {
	Connection *amqp.Connection
	Channel    *amqp.Channel
	URL        string
}

// NewRabbitMQ creates an unconnected RabbitMQ for url
func NewRabbitMQ(url string) *RabbitMQ {
	return &RabbitMQ{URL: url}
}

// Connect dials the broker and opens a channel
func (r *RabbitMQ) Connect() error {
	conn, err := amqp.Dial(r.URL)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq channel: %w", err)
	}

	r.Connection = conn
	r.Channel = ch

	return nil
}

// DeclareTopicExchange declares a durable topic exchange, a no-op when it exists
func (r *RabbitMQ) DeclareTopicExchange(name string) error {
	if err := r.Channel.ExchangeDeclare(name, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq declare exchange %s: %w", name, err)
	}
	return nil
}

// Close closes the channel and the connection
func (r *RabbitMQ) Close() {
	if r.Channel != nil {
		_ = r.Channel.Close()
	}
	if r.Connection != nil {
		_ = r.Connection.Close()
	}
}
