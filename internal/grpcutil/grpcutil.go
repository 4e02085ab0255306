// Package grpcutil holds the gRPC plumbing shared by services: discovery
// based client connections, transport credentials and the JSON codec.
package grpcutil

import (
	"context"
	"math/rand/v2"

	"github.com/abhishek622/portfolioapp/pkg/discovery"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// ServiceConnection attempts to select a random service instance and returns
// a gRPC connection to it. Nil creds mean plaintext.
func ServiceConnection(ctx context.Context, serviceName string, registry discovery.Registry, creds credentials.TransportCredentials) (*grpc.ClientConn, error) {
	addrs, err := registry.ServiceAddresses(ctx, serviceName)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, discovery.ErrNotFound
	}
	if creds == nil {
		creds = insecure.NewCredentials()
	}
	return grpc.NewClient(
		addrs[rand.IntN(len(addrs))],
		grpc.WithTransportCredentials(creds),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	)
}
