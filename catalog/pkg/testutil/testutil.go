package testutil

import (
	"context"

	"github.com/abhishek622/portfolioapp/api"
	"github.com/abhishek622/portfolioapp/catalog/internal/controller/catalog"
	grpchandler "github.com/abhishek622/portfolioapp/catalog/internal/handler/grpc"
	"github.com/abhishek622/portfolioapp/catalog/internal/repository/memory"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	"go.uber.org/zap"
)

// NewTestCatalogGRPCServer creates a new catalog gRPC server holding items,
// to be used in tests.
func NewTestCatalogGRPCServer(items ...*model.Item) (api.CatalogServiceServer, error) {
	ctrl := catalog.New(memory.New(), nil, zap.NewNop())
	if err := ctrl.Load(context.Background(), items); err != nil {
		return nil, err
	}
	return grpchandler.New(ctrl, zap.NewNop()), nil
}
