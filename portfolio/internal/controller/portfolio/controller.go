package portfolio

import (
	"context"
	"errors"

	catalogmodel "github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/portfolio/internal/gateway"
	"github.com/abhishek622/portfolioapp/portfolio/pkg/model"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the catalog item is not found.
var ErrNotFound = errors.New("item not found")

// ErrInvalidInput is returned when the catalog rejects the item type or category.
var ErrInvalidInput = gateway.ErrInvalidInput

type catalogGateway interface {
	Get(ctx context.Context, key feedbackmodel.ItemKey) (*catalogmodel.Item, error)
	List(ctx context.Context, itemType feedbackmodel.ItemType, category catalogmodel.Category) ([]*catalogmodel.Item, error)
}

type feedbackService interface {
	Ratings(ctx context.Context, item feedbackmodel.ItemKey) ([]feedbackmodel.Rating, feedbackmodel.Aggregate, error)
	Comments(ctx context.Context, item feedbackmodel.ItemKey) ([]feedbackmodel.Comment, error)
}

// Controller defines a portfolio service controller. Feedback failures never
// fail a request: the item is returned without ratings or comments.
type Controller struct {
	catalogGateway catalogGateway
	feedback       feedbackService
	logger         *zap.Logger
}

// New creates a new portfolio service controller.
func New(catalogGateway catalogGateway, feedback feedbackService, logger *zap.Logger) *Controller {
	return &Controller{catalogGateway, feedback, logger}
}

// Get returns an item with its rating aggregate and comments.
func (c *Controller) Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.ItemDetails, error) {
	item, err := c.catalogGateway.Get(ctx, key)
	if err != nil && errors.Is(err, gateway.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	details := &model.ItemDetails{Item: item, Comments: []feedbackmodel.Comment{}}
	details.Rating = c.aggregate(ctx, key)
	comments, err := c.feedback.Comments(ctx, key)
	if err != nil {
		c.logger.Warn("Failed to load comments", zap.Stringer("item", key), zap.Error(err))
	} else if comments != nil {
		details.Comments = comments
	}
	return details, nil
}

// List returns the items of a type and category with their rating
// aggregates, in catalog order.
func (c *Controller) List(ctx context.Context, itemType feedbackmodel.ItemType, category catalogmodel.Category) ([]model.ItemSummary, error) {
	items, err := c.catalogGateway.List(ctx, itemType, category)
	if err != nil {
		return nil, err
	}
	res := make([]model.ItemSummary, 0, len(items))
	for _, item := range items {
		res = append(res, model.ItemSummary{Item: item, Rating: c.aggregate(ctx, item.Key())})
	}
	return res, nil
}

func (c *Controller) aggregate(ctx context.Context, key feedbackmodel.ItemKey) feedbackmodel.Aggregate {
	_, agg, err := c.feedback.Ratings(ctx, key)
	if err != nil {
		c.logger.Warn("Failed to load ratings", zap.Stringer("item", key), zap.Error(err))
		return feedbackmodel.Aggregate{}
	}
	return agg
}
