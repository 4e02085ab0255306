package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

// Publisher produces rating events to a Kafka topic.
type Publisher struct {
	producer *kafka.Producer
	topic    string
	logger   *zap.Logger
}

// NewPublisher creates a new Kafka publisher and starts draining its
// delivery reports.
func NewPublisher(addr string, topic string, logger *zap.Logger) (*Publisher, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
	})
	if err != nil {
		return nil, err
	}
	p := &Publisher{producer: producer, topic: topic, logger: logger}
	go p.reportDeliveries()
	return p, nil
}

func (p *Publisher) reportDeliveries() {
	for e := range p.producer.Events() {
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			p.logger.Warn("Rating event delivery failed", zap.Error(m.TopicPartition.Error))
		}
	}
}

// Publish enqueues events for delivery. Delivery is asynchronous.
func (p *Publisher) Publish(ctx context.Context, events []model.RatingEvent) error {
	for _, e := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := EncodeEvent(p.topic, e)
		if err != nil {
			return err
		}
		if err := p.producer.Produce(msg, nil); err != nil {
			return fmt.Errorf("produce rating event: %w", err)
		}
	}
	return nil
}

// Close flushes outstanding messages for up to timeoutMs and releases the
// producer. It returns the number of messages left undelivered.
func (p *Publisher) Close(timeoutMs int) int {
	remaining := p.producer.Flush(timeoutMs)
	p.producer.Close()
	return remaining
}

// EncodeEvent builds the Kafka message of a rating event, keyed by item so
// events of one item keep their order within a partition.
func EncodeEvent(topic string, e model.RatingEvent) (*kafka.Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode rating event: %w", err)
	}
	item := model.ItemKey{Type: e.ItemType, ID: e.ItemID}
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(item.String()),
		Value:          payload,
	}, nil
}
