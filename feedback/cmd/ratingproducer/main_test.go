package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadRatingEventsSampleFile(t *testing.T) {
	events, err := readRatingEvents("ratingsdata.json", zap.NewNop())
	require.NoError(t, err)
	require.Len(t, events, 6)
	assert.Equal(t, model.RatingEventTypePut, events[0].EventType)
	assert.Equal(t, providerID, events[0].ProviderID)
	assert.Equal(t, model.RatingEventTypeDelete, events[5].EventType)
}

func TestReadRatingEventsSkipsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"itemId": "dev-1", "itemType": "project", "userId": "u1", "rating": 9},
		{"itemId": "1", "itemType": "movie", "userId": "u1", "rating": 3},
		{"itemId": "dev-1", "itemType": "project", "rating": 3},
		{"itemId": "dev-1", "itemType": "project", "userId": "u2", "rating": 2, "providerId": "import"}
	]`), 0o600))

	events, err := readRatingEvents(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.VisitorID("u2"), events[0].VisitorID)
	assert.Equal(t, "import", events[0].ProviderID)

	_, err = readRatingEvents(filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	assert.Error(t, err)
}
