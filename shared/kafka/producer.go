package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/types"
)

// Topics names where each message kind goes.
type Topics struct {
	Scorecards string
	Refresh    string
}

// Producer sends JSON messages.
type Producer struct {
	producer sarama.SyncProducer
	topics   Topics
}

// NewProducer connects a synchronous producer that waits for all in-sync
// replicas to acknowledge.
func NewProducer(brokers []string, topics Topics) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewProducerWith(p, topics), nil
}

// NewProducerWith wraps an existing SyncProducer.
func NewProducerWith(p sarama.SyncProducer, topics Topics) *Producer {
	return &Producer{producer: p, topics: topics}
}

// SendJSON publishes v to topic keyed by key. Messages with the same key
// land on the same partition, so per-country ordering holds.
func (p *Producer) SendJSON(ctx context.Context, topic, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("failed to send to %s: %w", topic, err)
	}

	log.Debug().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("📤 Kafka message sent")
	return nil
}

// Publish sends a scorecard event keyed by country.
func (p *Producer) Publish(ctx context.Context, ev types.ScorecardEvent) error {
	return p.SendJSON(ctx, p.topics.Scorecards, ev.Country, ev)
}

// RequestRefresh asks workers to recompute country.
func (p *Producer) RequestRefresh(ctx context.Context, req types.RefreshRequest) error {
	return p.SendJSON(ctx, p.topics.Refresh, req.Country, req)
}

// Close flushes and closes the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}
