package grpc

import (
	"context"
	"errors"

	"github.com/abhishek622/portfolioapp/api"
	"github.com/abhishek622/portfolioapp/catalog/internal/controller/catalog"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type catalogController interface {
	Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.Item, error)
	List(ctx context.Context, itemType feedbackmodel.ItemType, category model.Category) ([]*model.Item, error)
}

// Handler defines a catalog gRPC handler.
type Handler struct {
	api.UnimplementedCatalogServiceServer
	ctrl   catalogController
	logger *zap.Logger
}

// New creates a new catalog gRPC handler.
func New(ctrl catalogController, logger *zap.Logger) *Handler {
	return &Handler{ctrl: ctrl, logger: logger}
}

// GetItem returns a single catalog item.
func (h *Handler) GetItem(ctx context.Context, req *api.GetItemRequest) (*api.GetItemResponse, error) {
	if req == nil || req.ItemID == "" || req.ItemType == "" {
		return nil, status.Errorf(codes.InvalidArgument, "nil req or empty id")
	}
	key := feedbackmodel.ItemKey{Type: feedbackmodel.ItemType(req.ItemType), ID: feedbackmodel.ItemID(req.ItemID)}
	item, err := h.ctrl.Get(ctx, key)
	if err != nil {
		return nil, h.status(err)
	}
	return &api.GetItemResponse{Item: item}, nil
}

// ListItems returns the matching catalog items, newest first.
func (h *Handler) ListItems(ctx context.Context, req *api.ListItemsRequest) (*api.ListItemsResponse, error) {
	if req == nil {
		return nil, status.Errorf(codes.InvalidArgument, "nil req")
	}
	items, err := h.ctrl.List(ctx, feedbackmodel.ItemType(req.ItemType), model.Category(req.Category))
	if err != nil {
		return nil, h.status(err)
	}
	return &api.ListItemsResponse{Items: items}, nil
}

func (h *Handler) status(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, catalog.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		h.logger.Error("Catalog request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}
