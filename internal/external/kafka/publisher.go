package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"PlanSync/internal/messaging"
	"PlanSync/pkg/correlation"

	"github.com/segmentio/kafka-go"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a new Kafka publisher.
func NewPublisher(l *slog.Logger, brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}

	return &Publisher{
		writer: writer,
		logger: l,
	}
}

// Publish sends an envelope to Kafka, keyed by the envelope key so events
// for one content entry stay ordered within a partition.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.Type)},
		},
	}

	if corrID := correlation.FromContext(ctx); corrID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   correlation.KafkaHeaderName,
			Value: []byte(corrID),
		})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish message",
			slog.String("topic", p.writer.Topic),
			slog.String("key", env.Key),
			slog.Any("error", err))
		return err
	}

	p.logger.DebugContext(ctx, "Message published",
		slog.String("topic", p.writer.Topic),
		slog.String("key", env.Key),
		slog.String("event_id", env.EventID))
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
