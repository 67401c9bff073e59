// Package eventPublisher emits concept lifecycle events.
package eventPublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/utils"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer messageWriter
}

func NewProducer(cfg *config.Config) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.ConceptTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{writer: writer}
}

// Publish writes event keyed by its concept id so events of one concept stay ordered.
func (p *Producer) Publish(ctx context.Context, event model.ConceptEvent) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "Producer.Publish"

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.ConceptID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
			{Key: "rqID", Value: []byte(rqID)},
		},
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	slog.Debug("event published", slog.String("rqID", rqID), slog.String("op", op), slog.String("type", string(event.Type)), slog.String("conceptID", event.ConceptID))

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// Nop drops every event. It is used when no brokers are configured.
type Nop struct{}

func (Nop) Publish(context.Context, model.ConceptEvent) error { return nil }

func (Nop) Close() error { return nil }
