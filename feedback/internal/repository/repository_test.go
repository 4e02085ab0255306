package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	mockkv "github.com/abhishek622/portfolioapp/gen/mock/kv"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/abhishek622/portfolioapp/pkg/kv/memory"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var item = model.ItemKey{Type: model.ItemTypeProject, ID: "dev-1"}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestComments(backend *memory.Backend) *Store[model.Comment] {
	clock := &fixedClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewComments(backend, zap.NewNop(), WithClock(clock.now), WithIDGenerator(sequentialIDs()))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "portfolio_ratings:project_dev-1", Key(model.KindRating, item))
	assert.Equal(t, "portfolio_comments:achievement_hack-2", Key(model.KindComment, model.ItemKey{Type: model.ItemTypeAchievement, ID: "hack-2"}))
}

func TestListEmpty(t *testing.T) {
	s := newTestComments(memory.New())
	got, err := s.List(context.Background(), item)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAppendListRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestComments(memory.New())

	first, err := s.Append(ctx, item, model.Comment{ItemID: item.ID, ItemType: item.Type, VisitorID: "v1", Author: "Ann", Text: "first"})
	require.NoError(t, err)
	second, err := s.Append(ctx, item, model.Comment{ItemID: item.ID, ItemType: item.Type, VisitorID: "v2", Author: "Bob", Text: "second"})
	require.NoError(t, err)

	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, "id-2", second.ID)
	assert.True(t, second.CreatedAt.After(first.CreatedAt))

	got, err := s.List(ctx, item)
	require.NoError(t, err)
	if diff := cmp.Diff([]model.Comment{second, first}, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	other, err := s.List(ctx, model.ItemKey{Type: model.ItemTypeAchievement, ID: item.ID})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestListIsNewestFirstAndStable(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s := NewComments(backend, zap.NewNop(), WithClock(func() time.Time { return ts }), WithIDGenerator(sequentialIDs()))

	for i := 0; i < 3; i++ {
		_, err := s.Append(ctx, item, model.Comment{Text: fmt.Sprintf("c%d", i)})
		require.NoError(t, err)
	}
	got, err := s.List(ctx, item)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"id-1", "id-2", "id-3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestCorruptValueReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	require.NoError(t, backend.Write(ctx, Key(model.KindComment, item), []byte("{not json")))
	s := newTestComments(backend)

	got, err := s.List(ctx, item)
	require.NoError(t, err)
	assert.Empty(t, got)

	added, err := s.Append(ctx, item, model.Comment{Text: "fresh"})
	require.NoError(t, err)
	got, err = s.List(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, []model.Comment{added}, got)
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	s := newTestComments(memory.New())
	c, err := s.Append(ctx, item, model.Comment{Text: "before"})
	require.NoError(t, err)

	updated, err := s.Replace(ctx, item, func(r model.Comment) bool { return r.ID == c.ID }, func(r model.Comment) model.Comment {
		r.Text = "after"
		return r
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Text)
	assert.Equal(t, c.CreatedAt, updated.CreatedAt)

	_, err = s.Replace(ctx, item, func(model.Comment) bool { return false }, func(r model.Comment) model.Comment { return r })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewRatings(memory.New(), zap.NewNop(), WithClock(clock.now), WithIDGenerator(sequentialIDs()))

	byVisitor := func(v model.VisitorID) func(model.Rating) bool {
		return func(r model.Rating) bool { return r.VisitorID == v }
	}
	setValue := func(v model.RatingValue) func(model.Rating) model.Rating {
		return func(r model.Rating) model.Rating {
			r.Value = v
			return r
		}
	}

	created, isNew, err := s.Upsert(ctx, item, byVisitor("v1"), setValue(3), model.Rating{VisitorID: "v1", Value: 3})
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	updated, isNew, err := s.Upsert(ctx, item, byVisitor("v1"), setValue(5), model.Rating{VisitorID: "v1", Value: 5})
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, model.RatingValue(5), updated.Value)

	got, err := s.List(ctx, item)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestComments(memory.New())
	a, err := s.Append(ctx, item, model.Comment{Text: "a"})
	require.NoError(t, err)
	b, err := s.Append(ctx, item, model.Comment{Text: "b"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, item, a.ID))
	got, err := s.List(ctx, item)
	require.NoError(t, err)
	assert.Equal(t, []model.Comment{b}, got)

	assert.ErrorIs(t, s.Remove(ctx, item, a.ID), ErrNotFound)
}

func TestMerge(t *testing.T) {
	ctx := context.Background()
	s := NewRatings(memory.New(), zap.NewNop(), WithIDGenerator(sequentialIDs()))
	ts := time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC)

	added, err := s.Merge(ctx, item, []model.Rating{
		{ID: "r1", VisitorID: "v1", Value: 2, CreatedAt: ts},
		{VisitorID: "v2", Value: 4, CreatedAt: ts},
		{ID: "r3", VisitorID: "v1", Value: 5, CreatedAt: ts},
	}, func(existing, incoming model.Rating) bool { return existing.VisitorID == incoming.VisitorID })
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	got, err := s.List(ctx, item)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r3", got[0].ID)
	assert.Equal(t, model.RatingValue(5), got[0].Value)
	assert.Equal(t, "id-1", got[1].ID)
}

func TestMergeKeepsExistingIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewRatings(memory.New(), zap.NewNop(), WithIDGenerator(sequentialIDs()))
	byVisitor := func(existing, incoming model.Rating) bool { return existing.VisitorID == incoming.VisitorID }

	_, err := s.Merge(ctx, item, []model.Rating{{VisitorID: "v1", Value: 2}}, byVisitor)
	require.NoError(t, err)
	before, err := s.List(ctx, item)
	require.NoError(t, err)

	added, err := s.Merge(ctx, item, []model.Rating{{VisitorID: "v1", Value: 4}}, byVisitor)
	require.NoError(t, err)
	assert.Zero(t, added)

	got, err := s.List(ctx, item)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, before[0].ID, got[0].ID)
	assert.Equal(t, before[0].CreatedAt, got[0].CreatedAt)
	assert.Equal(t, model.RatingValue(4), got[0].Value)
}

func TestMergeWriteFailureAddsNothing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mockkv.NewMockBackend(ctrl)
	readOnly := errors.New("read-only")
	backend.EXPECT().Read(gomock.Any(), gomock.Any()).Return(nil, kv.ErrNotFound)
	backend.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(readOnly)

	added, err := NewRatings(backend, zap.NewNop()).Merge(ctx, item, []model.Rating{{VisitorID: "v1", Value: 3}},
		func(existing, incoming model.Rating) bool { return existing.VisitorID == incoming.VisitorID })
	assert.ErrorIs(t, err, readOnly)
	assert.Zero(t, added)
}

func TestBackendFailurePropagates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mockkv.NewMockBackend(ctrl)
	unavailable := errors.New("connection refused")
	backend.EXPECT().Read(gomock.Any(), Key(model.KindComment, item)).Return(nil, unavailable).Times(2)

	s := NewComments(backend, zap.NewNop())
	_, err := s.List(ctx, item)
	assert.ErrorIs(t, err, unavailable)
	_, err = s.Append(ctx, item, model.Comment{Text: "x"})
	assert.ErrorIs(t, err, unavailable)
}

func TestWriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	backend := mockkv.NewMockBackend(ctrl)
	readOnly := errors.New("read-only")
	backend.EXPECT().Read(gomock.Any(), gomock.Any()).Return([]byte("[]"), nil)
	backend.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(readOnly)

	_, err := NewComments(backend, zap.NewNop()).Append(ctx, item, model.Comment{Text: "x"})
	assert.ErrorIs(t, err, readOnly)
}
