package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/abhishek622/portfolioapp/catalog/internal/repository"
	"github.com/abhishek622/portfolioapp/catalog/internal/repository/memory"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	mockcatalog "github.com/abhishek622/portfolioapp/gen/mock/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testItems() []*model.Item {
	c := model.Catalog{
		Projects: []*model.Item{
			{ID: "dev-1", Category: model.CategoryDeveloper, Title: "PrismHold", Date: "2023-11-30"},
			{ID: "dev-2", Category: model.CategoryDeveloper, Title: "LinguaSync", Date: "2024-01-15"},
			{ID: "edit-1", Category: model.CategoryEditor, Title: "Club Reel", Date: "2024-12-15"},
		},
		Achievements: []*model.Item{
			{ID: "ach-dev-1", Category: model.CategoryDeveloper, Name: "DemoDay", Year: "2025"},
		},
	}
	return c.Items()
}

func TestControllerGet(t *testing.T) {
	tests := []struct {
		name       string
		expRepoRes *model.Item
		expRepoErr error
		wantRes    *model.Item
		wantErr    error
	}{
		{
			name:       "not found",
			expRepoErr: repository.ErrNotFound,
			wantErr:    ErrNotFound,
		},
		{
			name:       "unexpected error",
			expRepoErr: errors.New("unexpected error"),
			wantErr:    errors.New("unexpected error"),
		},
		{
			name:       "success",
			expRepoRes: &model.Item{ID: "dev-1", Type: feedbackmodel.ItemTypeProject},
			wantRes:    &model.Item{ID: "dev-1", Type: feedbackmodel.ItemTypeProject},
		},
	}
	key := feedbackmodel.ItemKey{Type: feedbackmodel.ItemTypeProject, ID: "dev-1"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repoMock := mockcatalog.NewMockcatalogRepository(ctrl)
			c := New(repoMock, nil, zap.NewNop())
			repoMock.EXPECT().Get(gomock.Any(), key).Return(tt.expRepoRes, tt.expRepoErr)

			res, err := c.Get(context.Background(), key)
			assert.Equal(t, tt.wantRes, res)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestControllerGetUsesCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repoMock := mockcatalog.NewMockcatalogRepository(ctrl)
	cache := memory.New()
	c := New(repoMock, cache, zap.NewNop())

	key := feedbackmodel.ItemKey{Type: feedbackmodel.ItemTypeProject, ID: "dev-1"}
	item := &model.Item{ID: "dev-1", Type: feedbackmodel.ItemTypeProject}
	repoMock.EXPECT().Get(gomock.Any(), key).Return(item, nil).Times(1)

	for range 3 {
		res, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.Same(t, item, res)
	}
}

func TestControllerGetInvalidKey(t *testing.T) {
	c := New(memory.New(), nil, zap.NewNop())
	_, err := c.Get(context.Background(), feedbackmodel.ItemKey{Type: "movie", ID: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.Get(context.Background(), feedbackmodel.ItemKey{Type: feedbackmodel.ItemTypeProject})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestControllerList(t *testing.T) {
	ctx := context.Background()
	c := New(memory.New(), memory.New(), zap.NewNop())
	require.NoError(t, c.Load(ctx, testItems()))

	ids := func(items []*model.Item) []feedbackmodel.ItemID {
		var res []feedbackmodel.ItemID
		for _, i := range items {
			res = append(res, i.ID)
		}
		return res
	}

	all, err := c.List(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, []feedbackmodel.ItemID{"ach-dev-1", "edit-1", "dev-2", "dev-1"}, ids(all))

	projects, err := c.List(ctx, feedbackmodel.ItemTypeProject, model.CategoryDeveloper)
	require.NoError(t, err)
	assert.Equal(t, []feedbackmodel.ItemID{"dev-2", "dev-1"}, ids(projects))

	achievements, err := c.List(ctx, feedbackmodel.ItemTypeAchievement, "")
	require.NoError(t, err)
	assert.Equal(t, []feedbackmodel.ItemID{"ach-dev-1"}, ids(achievements))

	_, err = c.List(ctx, feedbackmodel.ItemTypeProject, "designer")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.List(ctx, "movie", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestControllerLoadRejectsInvalidEntries(t *testing.T) {
	c := New(memory.New(), nil, zap.NewNop())
	err := c.Load(context.Background(), []*model.Item{{ID: "x", Type: feedbackmodel.ItemTypeProject, Category: "designer"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
