package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogmodel "github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	mockclient "github.com/abhishek622/portfolioapp/gen/mock/client"
	mockportfolio "github.com/abhishek622/portfolioapp/gen/mock/portfolio"
	"github.com/abhishek622/portfolioapp/portfolio/internal/gateway"
	"github.com/abhishek622/portfolioapp/portfolio/pkg/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	dev1Key = feedbackmodel.ItemKey{Type: feedbackmodel.ItemTypeProject, ID: "dev-1"}
	dev1    = &catalogmodel.Item{ID: "dev-1", Type: feedbackmodel.ItemTypeProject, Category: catalogmodel.CategoryDeveloper, Title: "PrismHold"}
)

func TestControllerGet(t *testing.T) {
	comment := feedbackmodel.Comment{ID: "c1", ItemID: "dev-1", ItemType: feedbackmodel.ItemTypeProject, VisitorID: "A", Author: "Ann", Text: "nice", CreatedAt: time.Unix(100, 0).UTC()}
	tests := []struct {
		name        string
		catalogRes  *catalogmodel.Item
		catalogErr  error
		ratingsErr  error
		commentsErr error
		wantRes     *model.ItemDetails
		wantErr     error
	}{
		{
			name:       "item not found",
			catalogErr: gateway.ErrNotFound,
			wantErr:    ErrNotFound,
		},
		{
			name:       "catalog unavailable",
			catalogErr: errors.New("connection refused"),
			wantErr:    errors.New("connection refused"),
		},
		{
			name:       "full details",
			catalogRes: dev1,
			wantRes: &model.ItemDetails{
				Item:     dev1,
				Rating:   feedbackmodel.Aggregate{Average: 4.5, Count: 2},
				Comments: []feedbackmodel.Comment{comment},
			},
		},
		{
			name:        "feedback unavailable",
			catalogRes:  dev1,
			ratingsErr:  errors.New("disk full"),
			commentsErr: errors.New("disk full"),
			wantRes:     &model.ItemDetails{Item: dev1, Comments: []feedbackmodel.Comment{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalogMock := mockportfolio.NewMockcatalogGateway(ctrl)
			feedbackMock := mockclient.NewMockService(ctrl)
			catalogMock.EXPECT().Get(gomock.Any(), dev1Key).Return(tt.catalogRes, tt.catalogErr)
			if tt.catalogErr == nil {
				feedbackMock.EXPECT().Ratings(gomock.Any(), dev1Key).
					Return(nil, feedbackmodel.Aggregate{Average: 4.5, Count: 2}, tt.ratingsErr)
				feedbackMock.EXPECT().Comments(gomock.Any(), dev1Key).
					Return([]feedbackmodel.Comment{comment}, tt.commentsErr)
			}

			res, err := New(catalogMock, feedbackMock, zap.NewNop()).Get(context.Background(), dev1Key)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.wantRes, res); diff != "" {
				t.Errorf("Get() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestControllerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := mockportfolio.NewMockcatalogGateway(ctrl)
	feedbackMock := mockclient.NewMockService(ctrl)

	dev2 := &catalogmodel.Item{ID: "dev-2", Type: feedbackmodel.ItemTypeProject, Category: catalogmodel.CategoryDeveloper, Title: "LinguaSync"}
	catalogMock.EXPECT().List(gomock.Any(), feedbackmodel.ItemTypeProject, catalogmodel.CategoryDeveloper).
		Return([]*catalogmodel.Item{dev2, dev1}, nil)
	feedbackMock.EXPECT().Ratings(gomock.Any(), dev2.Key()).Return(nil, feedbackmodel.Aggregate{}, errors.New("timeout"))
	feedbackMock.EXPECT().Ratings(gomock.Any(), dev1Key).Return(nil, feedbackmodel.Aggregate{Average: 3, Count: 1}, nil)

	res, err := New(catalogMock, feedbackMock, zap.NewNop()).List(context.Background(), feedbackmodel.ItemTypeProject, catalogmodel.CategoryDeveloper)
	require.NoError(t, err)
	assert.Equal(t, []model.ItemSummary{
		{Item: dev2},
		{Item: dev1, Rating: feedbackmodel.Aggregate{Average: 3, Count: 1}},
	}, res)
}

func TestControllerListInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalogMock := mockportfolio.NewMockcatalogGateway(ctrl)
	catalogMock.EXPECT().List(gomock.Any(), feedbackmodel.ItemType("movie"), catalogmodel.Category("")).
		Return(nil, gateway.ErrInvalidInput)

	_, err := New(catalogMock, mockclient.NewMockService(ctrl), zap.NewNop()).List(context.Background(), "movie", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
