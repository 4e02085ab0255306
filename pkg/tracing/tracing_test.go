package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupWithoutAgentKeepsNoopTracer(t *testing.T) {
	closer, err := Setup("feedback", Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}

func TestNewTracer(t *testing.T) {
	tracer, closer, err := NewTracer("feedback", Config{Host: "localhost", Port: "6831"}, zap.NewNop())
	require.NoError(t, err)
	defer closer.Close()
	assert.NotNil(t, tracer)
}
