package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/internal/ingester/kafka"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"go.uber.org/zap"
)

const providerID = "ratingproducer"

func main() {
	brokers := flag.String("brokers", "localhost:9092", "Kafka bootstrap servers")
	topic := flag.String("topic", "ratings", "rating events topic")
	fileName := flag.String("file", "ratingsdata.json", "JSON file with rating events")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Creating a kafka producer", zap.String("brokers", *brokers))
	publisher, err := kafka.NewPublisher(*brokers, *topic, logger)
	if err != nil {
		logger.Fatal("Cannot create producer", zap.Error(err))
	}

	logger.Info("Reading rating events from file", zap.String("file", *fileName))
	events, err := readRatingEvents(*fileName, logger)
	if err != nil {
		logger.Fatal("Cannot read events", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := publisher.Publish(ctx, events); err != nil {
		logger.Fatal("Cannot produce events", zap.Error(err))
	}

	if remaining := publisher.Close(10_000); remaining != 0 {
		logger.Fatal("Messages not delivered", zap.Int("remaining", remaining))
	}
	logger.Info("All events produced", zap.Int("count", len(events)))
}

// readRatingEvents decodes the events in fileName. Events without a valid
// item, visitor or value are skipped; missing event types default to put.
func readRatingEvents(fileName string, logger *zap.Logger) ([]model.RatingEvent, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []model.RatingEvent
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, err
	}
	events := make([]model.RatingEvent, 0, len(raw))
	for i, e := range raw {
		item := model.ItemKey{Type: e.ItemType, ID: e.ItemID}
		if !item.Valid() || e.VisitorID == "" {
			logger.Warn("Skipping rating event", zap.Int("index", i), zap.Stringer("item", item))
			continue
		}
		if e.EventType == "" {
			e.EventType = model.RatingEventTypePut
		}
		if e.EventType == model.RatingEventTypePut && !e.Value.Valid() {
			logger.Warn("Skipping rating event with invalid value", zap.Int("index", i), zap.Int("rating", int(e.Value)))
			continue
		}
		if e.ProviderID == "" {
			e.ProviderID = providerID
		}
		events = append(events, e)
	}
	return events, nil
}
