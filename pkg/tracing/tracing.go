package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/uber/jaeger-client-go/config"
	"github.com/uber/jaeger-lib/metrics"
	"go.uber.org/zap"
)

// Config holds the Jaeger agent address.
type Config struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// Enabled reports whether a Jaeger agent is configured.
func (c Config) Enabled() bool {
	return c.Host != ""
}

// NewTracer creates a Jaeger tracer that samples every span and logs through zap.
// The returned closer flushes buffered spans.
func NewTracer(serviceName string, cfg Config, logger *zap.Logger) (opentracing.Tracer, io.Closer, error) {
	jcfg := &config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:           true,
			LocalAgentHostPort: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		},
	}
	tracer, closer, err := jcfg.NewTracer(
		config.Logger(&jaegerLoggerAdapter{logger: logger}),
		config.Metrics(metrics.NullFactory),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Jaeger tracer: %w", err)
	}
	return tracer, closer, nil
}

// Setup installs the global tracer when Jaeger is configured and returns a
// closer for shutdown. Without Jaeger the opentracing no-op tracer stays in place.
func Setup(serviceName string, cfg Config, logger *zap.Logger) (io.Closer, error) {
	if !cfg.Enabled() {
		logger.Info("Jaeger not configured, tracing disabled")
		return nopCloser{}, nil
	}
	tracer, closer, err := NewTracer(serviceName, cfg, logger)
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	logger.Info("Jaeger tracer initialized successfully", zap.String("service", serviceName))
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// jaegerLoggerAdapter adapts zap logger to Jaeger logger interface
type jaegerLoggerAdapter struct {
	logger *zap.Logger
}

func (l *jaegerLoggerAdapter) Error(msg string) {
	l.logger.Error(msg)
}

func (l *jaegerLoggerAdapter) Infof(msg string, args ...interface{}) {
	l.logger.Sugar().Infof(msg, args...)
}
