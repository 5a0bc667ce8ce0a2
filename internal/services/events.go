package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// RequestCreatedEvent is published after a successful submission so
// downstream consumers (matching, moderation, digests) can react.
type RequestCreatedEvent struct {
	RequestID string    `json:"requestId"`
	CreatedBy string    `json:"createdBy"`
	Immediacy int       `json:"immediacy"`
	Needs     []string  `json:"needs"`
	CreatedAt time.Time `json:"createdAt"`
}

type EventPublisher interface {
	PublishRequestCreated(ctx context.Context, event RequestCreatedEvent) error
}

// AMQPPublisher publishes request lifecycle events to a topic exchange.
type AMQPPublisher struct {
	conn         *amqp.Connection
	channel      *amqp.Channel
	exchangeName string
}

func NewAMQPPublisher(url, exchangeName string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declare the exchange (idempotent)
	err = channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info().Str("exchange", exchangeName).Msg("AMQP publisher initialized")

	return &AMQPPublisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
	}, nil
}

func (p *AMQPPublisher) PublishRequestCreated(ctx context.Context, event RequestCreatedEvent) error {
	return p.publish(ctx, "request.created", event)
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
			MessageId:    uuid.NewString(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Info().
		Str("routing_key", routingKey).
		Str("exchange", p.exchangeName).
		Msg("event published")
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close AMQP channel")
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
