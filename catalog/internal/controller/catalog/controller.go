package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/abhishek622/portfolioapp/catalog/internal/repository"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a requested item is not in the catalog.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned for an unknown item type or category.
var ErrInvalidInput = errors.New("invalid input")

type catalogRepository interface {
	Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.Item, error)
	Put(ctx context.Context, item *model.Item) error
	List(ctx context.Context, itemType feedbackmodel.ItemType) ([]*model.Item, error)
}

// Controller defines a catalog service controller.
type Controller struct {
	repo   catalogRepository
	cache  catalogRepository
	logger *zap.Logger
}

// New creates a catalog service controller. cache may be nil.
func New(repo catalogRepository, cache catalogRepository, logger *zap.Logger) *Controller {
	return &Controller{repo, cache, logger}
}

// Get returns a single catalog item.
func (c *Controller) Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.Item, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: unknown item %q", ErrInvalidInput, key)
	}
	if c.cache != nil {
		if res, err := c.cache.Get(ctx, key); err == nil {
			c.logger.Debug("Returning catalog item from cache", zap.Stringer("item", key))
			return res, nil
		}
	}
	res, err := c.repo.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		if err := c.cache.Put(ctx, res); err != nil {
			c.logger.Warn("Error updating cache", zap.Stringer("item", key), zap.Error(err))
		}
	}
	return res, nil
}

// List returns the items of a type, optionally restricted to one category,
// newest first. Empty arguments match everything.
func (c *Controller) List(ctx context.Context, itemType feedbackmodel.ItemType, category model.Category) ([]*model.Item, error) {
	if itemType != "" && !itemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, itemType)
	}
	if category != "" && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}
	items, err := c.repo.List(ctx, itemType)
	if err != nil {
		return nil, err
	}
	res := make([]*model.Item, 0, len(items))
	for _, item := range items {
		if category == "" || item.Category == category {
			res = append(res, item)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if di, dj := res[i].SortDate(), res[j].SortDate(); di != dj {
			return di > dj
		}
		return res[i].Key().String() < res[j].Key().String()
	})
	return res, nil
}

// Load stores the given items, replacing existing ones with the same key.
func (c *Controller) Load(ctx context.Context, items []*model.Item) error {
	for _, item := range items {
		if !item.Key().Valid() || !item.Category.Valid() {
			return fmt.Errorf("%w: catalog entry %q of category %q", ErrInvalidInput, item.Key(), item.Category)
		}
		if err := c.repo.Put(ctx, item); err != nil {
			return fmt.Errorf("store %s: %w", item.Key(), err)
		}
		if c.cache != nil {
			if err := c.cache.Put(ctx, item); err != nil {
				c.logger.Warn("Error updating cache", zap.Stringer("item", item.Key()), zap.Error(err))
			}
		}
	}
	c.logger.Info("Loaded catalog", zap.Int("items", len(items)))
	return nil
}
