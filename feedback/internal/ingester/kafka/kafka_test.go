package kafka

import (
	"testing"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEvent(t *testing.T) {
	event := model.RatingEvent{
		Rating: model.Rating{
			ItemID:    "dev-1",
			ItemType:  model.ItemTypeProject,
			VisitorID: "user_1_abc",
			Value:     4,
		},
		ProviderID: "feedback",
		EventType:  model.RatingEventTypePut,
	}

	msg, err := EncodeEvent("ratings", event)
	require.NoError(t, err)
	require.NotNil(t, msg.TopicPartition.Topic)
	assert.Equal(t, "ratings", *msg.TopicPartition.Topic)
	assert.Equal(t, kafka.PartitionAny, msg.TopicPartition.Partition)
	assert.Equal(t, "project_dev-1", string(msg.Key))

	got, err := DecodeEvent(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, event.ItemID, got.ItemID)
	assert.Equal(t, event.VisitorID, got.VisitorID)
	assert.Equal(t, event.Value, got.Value)
	assert.Equal(t, event.EventType, got.EventType)
}

func TestDecodeEventDefaultsToPut(t *testing.T) {
	got, err := DecodeEvent([]byte(`{"itemId":"hack-2","itemType":"achievement","userId":"u","rating":5,"providerId":"seed"}`))
	require.NoError(t, err)
	assert.Equal(t, model.RatingEventTypePut, got.EventType)
	assert.Equal(t, model.RatingValue(5), got.Value)
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	_, err := DecodeEvent([]byte("not json"))
	assert.Error(t, err)
}
