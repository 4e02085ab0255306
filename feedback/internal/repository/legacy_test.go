package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/pkg/kv/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLegacyKey(t *testing.T) {
	tests := []struct {
		key  string
		want model.ItemKey
		ok   bool
	}{
		{key: "project_dev-1", want: model.ItemKey{Type: model.ItemTypeProject, ID: "dev-1"}, ok: true},
		{key: "achievement_hack_2024", want: model.ItemKey{Type: model.ItemTypeAchievement, ID: "hack_2024"}, ok: true},
		{key: "project_", ok: false},
		{key: "movie_1", ok: false},
		{key: "nounderscore", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ParseLegacyKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestImportLegacyRatings(t *testing.T) {
	ctx := context.Background()
	s := NewRatings(memory.New(), zap.NewNop(), WithIDGenerator(sequentialIDs()))
	raw := []byte(`{
		"project_dev-1": [
			{"_id": "rating_1", "userId": "user_a", "rating": 2, "timestamp": "2024-02-01T10:00:00.000Z"},
			{"_id": "rating_2", "userId": "user_b", "rating": 4, "timestamp": 1706781600000},
			{"_id": "rating_3", "userId": "user_a", "rating": 5, "timestamp": "2024-02-03T10:00:00.000Z"},
			{"_id": "rating_4", "userId": "user_c", "rating": 9}
		],
		"movie_1": [{"userId": "user_a", "rating": 3}]
	}`)

	report, err := ImportLegacyRatings(ctx, s, raw, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, ImportReport{Items: 1, Imported: 2, Skipped: 2}, report)

	got, err := s.List(ctx, item)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rating_3", got[0].ID)
	assert.Equal(t, model.VisitorID("user_a"), got[0].VisitorID)
	assert.Equal(t, model.RatingValue(5), got[0].Value)
	assert.Equal(t, time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC), got[0].CreatedAt.UTC())
	assert.Equal(t, "rating_2", got[1].ID)
	assert.Equal(t, item, model.ItemKey{Type: got[1].ItemType, ID: got[1].ItemID})

	agg := model.ComputeAggregate(got)
	assert.Equal(t, "4.5", agg.String())
}

func TestImportLegacyRatingsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewRatings(memory.New(), zap.NewNop())
	raw := []byte(`{"achievement_hack-2": [{"id": "r1", "userId": "user_a", "rating": 3}]}`)

	_, err := ImportLegacyRatings(ctx, s, raw, zap.NewNop())
	require.NoError(t, err)
	report, err := ImportLegacyRatings(ctx, s, raw, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)

	got, err := s.List(ctx, model.ItemKey{Type: model.ItemTypeAchievement, ID: "hack-2"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestImportLegacyComments(t *testing.T) {
	ctx := context.Background()
	s := NewComments(memory.New(), zap.NewNop(), WithIDGenerator(sequentialIDs()))
	raw := []byte(`{
		"project_dev-1": [
			{"_id": "comment_1", "userId": "user_a", "author": " Ann ", "text": "Nice work", "timestamp": "2024-02-01T10:00:00Z"},
			{"userId": "user_b", "author": "Bob", "text": "No id here", "createdAt": "2024-02-02T10:00:00Z", "updatedAt": "2024-02-05T10:00:00Z"},
			{"_id": "comment_3", "author": "Eve", "text": "   "},
			"not an object"
		]
	}`)

	report, err := ImportLegacyComments(ctx, s, raw, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, ImportReport{Items: 1, Imported: 2, Skipped: 2}, report)

	got, err := s.List(ctx, item)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, strings.HasPrefix(got[0].ID, "legacy-"), got[0].ID)
	require.NotNil(t, got[0].UpdatedAt)
	assert.Equal(t, "comment_1", got[1].ID)
	assert.Equal(t, "Ann", got[1].Author)
	assert.True(t, got[1].OwnedBy("user_a"))
}

func TestImportLegacyCommentsWithoutIDIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewComments(memory.New(), zap.NewNop())
	raw := []byte(`{"project_dev-1": [
		{"userId": "u", "author": "Ann", "text": "hi", "timestamp": 1706781600000},
		{"userId": "u", "author": "Ann", "text": "hi again"}
	]}`)

	report, err := ImportLegacyComments(ctx, s, raw, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	first, err := s.List(ctx, item)
	require.NoError(t, err)

	report, err = ImportLegacyComments(ctx, s, raw, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)

	got, err := s.List(ctx, item)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got)
}

func TestImportLegacyRejectsMalformedLayout(t *testing.T) {
	s := NewComments(memory.New(), zap.NewNop())
	_, err := ImportLegacyComments(context.Background(), s, []byte(`[1,2,3]`), zap.NewNop())
	assert.Error(t, err)
}
