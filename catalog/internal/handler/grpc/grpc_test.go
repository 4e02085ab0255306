package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/abhishek622/portfolioapp/api"
	"github.com/abhishek622/portfolioapp/catalog/internal/controller/catalog"
	"github.com/abhishek622/portfolioapp/catalog/internal/repository/memory"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	feedbackmodel "github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newClient(t *testing.T) api.CatalogServiceClient {
	t.Helper()
	ctrl := catalog.New(memory.New(), nil, zap.NewNop())
	c := model.Catalog{
		Projects: []*model.Item{
			{ID: "dev-1", Category: model.CategoryDeveloper, Title: "PrismHold", Date: "2023-11-30", Technologies: []string{"HTML", "CSS"}},
			{ID: "edit-1", Category: model.CategoryEditor, Title: "Club Reel", Date: "2024-12-15"},
		},
	}
	require.NoError(t, ctrl.Load(context.Background(), c.Items()))

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	api.RegisterCatalogServiceServer(srv, New(ctrl, zap.NewNop()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return api.NewCatalogServiceClient(conn)
}

func TestGetItem(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	resp, err := client.GetItem(ctx, &api.GetItemRequest{ItemType: "project", ItemID: "dev-1"})
	require.NoError(t, err)
	assert.Equal(t, "PrismHold", resp.Item.Title)
	assert.Equal(t, feedbackmodel.ItemTypeProject, resp.Item.Type)
	assert.Equal(t, []string{"HTML", "CSS"}, resp.Item.Technologies)

	tests := []struct {
		name string
		req  *api.GetItemRequest
		code codes.Code
	}{
		{"missing id", &api.GetItemRequest{ItemType: "project"}, codes.InvalidArgument},
		{"unknown type", &api.GetItemRequest{ItemType: "movie", ItemID: "dev-1"}, codes.InvalidArgument},
		{"not found", &api.GetItemRequest{ItemType: "achievement", ItemID: "dev-1"}, codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GetItem(ctx, tt.req)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestListItems(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	resp, err := client.ListItems(ctx, &api.ListItemsRequest{ItemType: "project"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, feedbackmodel.ItemID("edit-1"), resp.Items[0].ID)

	resp, err = client.ListItems(ctx, &api.ListItemsRequest{ItemType: "project", Category: "developer"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, feedbackmodel.ItemID("dev-1"), resp.Items[0].ID)

	_, err = client.ListItems(ctx, &api.ListItemsRequest{Category: "designer"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
