package memory

import (
	"context"
	"testing"

	"github.com/abhishek622/portfolioapp/pkg/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	_, err := r.ServiceAddresses(ctx, "catalog")
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, r.Register(ctx, "catalog-1", "catalog", "localhost:8081"))
	require.NoError(t, r.ReportHealthyState("catalog-1", "catalog"))

	addrs, err := r.ServiceAddresses(ctx, "catalog")
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:8081"}, addrs)

	require.NoError(t, r.Deregister(ctx, "catalog-1", "catalog"))
	_, err = r.ServiceAddresses(ctx, "catalog")
	assert.ErrorIs(t, err, discovery.ErrNotFound)
}

func TestReportHealthyStateUnknownInstance(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.ReportHealthyState("x", "catalog"))
}

func TestGenerateInstanceID(t *testing.T) {
	assert.Regexp(t, `^feedback-\d+$`, discovery.GenerateInstanceID("feedback"))
}
