package grpc

import (
	"context"
	"fmt"

	"github.com/abhishek622/portfolioapp/api"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/internal/grpcutil"
	"github.com/abhishek622/portfolioapp/pkg/discovery"
	"github.com/abhishek622/portfolioapp/portfolio/internal/gateway"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
)

const serviceName = "catalog"

// Gateway defines a gRPC gateway for the catalog service.
type Gateway struct {
	registry discovery.Registry
	creds    credentials.TransportCredentials
}

// New creates a new gRPC gateway for the catalog service.
func New(registry discovery.Registry, creds credentials.TransportCredentials) *Gateway {
	return &Gateway{registry, creds}
}

// Get returns a catalog item or gateway.ErrNotFound if it does not exist.
func (g *Gateway) Get(ctx context.Context, key feedbackmodel.ItemKey) (*model.Item, error) {
	conn, err := grpcutil.ServiceConnection(ctx, serviceName, g.registry, g.creds)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	client := api.NewCatalogServiceClient(conn)
	resp, err := client.GetItem(ctx, &api.GetItemRequest{ItemType: string(key.Type), ItemID: string(key.ID)})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Item, nil
}

// List returns the catalog items of a type and category, newest first.
func (g *Gateway) List(ctx context.Context, itemType feedbackmodel.ItemType, category model.Category) ([]*model.Item, error) {
	conn, err := grpcutil.ServiceConnection(ctx, serviceName, g.registry, g.creds)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	client := api.NewCatalogServiceClient(conn)
	resp, err := client.ListItems(ctx, &api.ListItemsRequest{ItemType: string(itemType), Category: string(category)})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Items, nil
}

func mapError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return gateway.ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", gateway.ErrInvalidInput, status.Convert(err).Message())
	default:
		return err
	}
}
