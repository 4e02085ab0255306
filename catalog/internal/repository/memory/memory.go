package memory

import (
	"context"
	"sync"

	"github.com/abhishek622/portfolioapp/catalog/internal/repository"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"go.opentelemetry.io/otel"
)

// Repository defines a memory catalog repository.
type Repository struct {
	sync.RWMutex
	data map[feedbackmodel.ItemKey]*model.Item
}

const tracerID = "catalog-repository-memory"

// New creates a new memory repository.
func New() *Repository {
	return &Repository{data: map[feedbackmodel.ItemKey]*model.Item{}}
}

// Get retrieves a catalog item by its key.
func (r *Repository) Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.Item, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Get")
	defer span.End()

	item, ok := r.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

// Put adds or replaces a catalog item.
func (r *Repository) Put(ctx context.Context, item *model.Item) error {
	r.Lock()
	defer r.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/Put")
	defer span.End()

	r.data[item.Key()] = item
	return nil
}

// List returns every stored item of the given type. An empty type matches
// all items. The order is unspecified.
func (r *Repository) List(ctx context.Context, itemType feedbackmodel.ItemType) ([]*model.Item, error) {
	r.RLock()
	defer r.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Repository/List")
	defer span.End()

	var items []*model.Item
	for k, item := range r.data {
		if itemType == "" || k.Type == itemType {
			items = append(items, item)
		}
	}
	return items, nil
}
