package testutil

import (
	"net/http"

	"github.com/abhishek622/portfolioapp/feedback/pkg/client"
	"github.com/abhishek622/portfolioapp/pkg/discovery"
	"github.com/abhishek622/portfolioapp/portfolio/internal/controller/portfolio"
	cataloggateway "github.com/abhishek622/portfolioapp/portfolio/internal/gateway/catalog/grpc"
	httphandler "github.com/abhishek622/portfolioapp/portfolio/internal/handler/http"
	"go.uber.org/zap"
)

// APIPrefix is the route prefix used by the test server.
const APIPrefix = "/api"

// NewTestPortfolioHTTPServer creates a portfolio HTTP handler that resolves
// the catalog through registry over plaintext gRPC, to be used in tests.
func NewTestPortfolioHTTPServer(registry discovery.Registry, feedback client.Service) http.Handler {
	catalogGateway := cataloggateway.New(registry, nil)
	ctrl := portfolio.New(catalogGateway, feedback, zap.NewNop())
	mux := http.NewServeMux()
	httphandler.New(ctrl, zap.NewNop()).Register(mux, APIPrefix)
	return mux
}
