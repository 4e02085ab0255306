package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"
)

// Ingester defines a Kafka ingester of rating events.
type Ingester struct {
	consumer *kafka.Consumer
	topic    string
	logger   *zap.Logger
}

// NewIngester creates a new Kafka ingester.
func NewIngester(addr string, groupID string, topic string, logger *zap.Logger) (*Ingester, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
		"group.id":          groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, err
	}
	return &Ingester{consumer: consumer, topic: topic, logger: logger}, nil
}

// Ingest starts ingestion from Kafka and returns a channel containing rating
// events. The channel is closed and the consumer released when ctx is done.
func (i *Ingester) Ingest(ctx context.Context) (chan model.RatingEvent, error) {
	if err := i.consumer.SubscribeTopics([]string{i.topic}, nil); err != nil {
		return nil, err
	}

	ch := make(chan model.RatingEvent, 1)
	go func() {
		defer close(ch)
		defer i.consumer.Close()
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			msg, err := i.consumer.ReadMessage(time.Second)
			if err != nil {
				if kerr, ok := err.(kafka.Error); ok && kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				i.logger.Warn("Failed to read rating event", zap.Error(err))
				continue
			}
			event, err := DecodeEvent(msg.Value)
			if err != nil {
				i.logger.Warn("Skipping malformed rating event", zap.String("topic", i.topic), zap.Error(err))
				continue
			}
			select {
			case ch <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// DecodeEvent parses a rating event payload.
func DecodeEvent(payload []byte) (model.RatingEvent, error) {
	var event model.RatingEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return model.RatingEvent{}, fmt.Errorf("decode rating event: %w", err)
	}
	if event.EventType == "" {
		event.EventType = model.RatingEventTypePut
	}
	return event, nil
}
