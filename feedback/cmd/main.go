package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/internal/controller/feedback"
	httphandler "github.com/abhishek622/portfolioapp/feedback/internal/handler/http"
	"github.com/abhishek622/portfolioapp/feedback/internal/ingester/kafka"
	"github.com/abhishek622/portfolioapp/feedback/internal/repository"
	"github.com/abhishek622/portfolioapp/internal/httputil"
	pkgconfig "github.com/abhishek622/portfolioapp/pkg/config"
	"github.com/abhishek622/portfolioapp/pkg/discovery"
	"github.com/abhishek622/portfolioapp/pkg/discovery/consul"
	"github.com/abhishek622/portfolioapp/pkg/metrics"
	"github.com/abhishek622/portfolioapp/pkg/tracing"
	"go.uber.org/zap"
)

const serviceName = "feedback"

func main() {
	configPath := flag.String("config", "configs/default.yaml", "configuration file")
	flag.Parse()

	var cfg config
	if err := pkgconfig.Load(*configPath, &cfg); err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("Failed to load configuration", zap.Error(err))
	}
	logger := newLogger(cfg.Logging)
	defer logger.Sync()

	port := cfg.API.Port
	logger.Info("Starting the feedback service", zap.Int("port", port), zap.String("backend", cfg.Storage.Backend))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Jaeger Tracing ---
	tracerCloser, err := tracing.Setup(serviceName, cfg.Jaeger, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Jaeger tracer", zap.Error(err))
	}
	defer tracerCloser.Close()

	// --- Metrics ---
	m := metrics.New(serviceName, cfg.Metrics)
	defer m.Close()

	// --- Service registration / health heartbeat ---
	instanceID := discovery.GenerateInstanceID(serviceName)
	if addr := cfg.ServiceDiscovery.Consul.Address; addr != "" {
		registry, err := consul.NewRegistry(addr)
		if err != nil {
			logger.Fatal("Failed to init feedback service registry", zap.Error(err))
		}
		if err := registry.Register(ctx, instanceID, serviceName, fmt.Sprintf("localhost:%d", port)); err != nil {
			logger.Fatal("Failed to register service", zap.Error(err))
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Second):
				}
				if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
					logger.Warn("Failed to report healthy state", zap.Error(err))
				}
			}
		}()
		defer registry.Deregister(context.Background(), instanceID, serviceName)
	}

	// --- Storage ---
	backend, closeBackend, err := openBackend(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to open storage backend", zap.Error(err))
	}
	defer closeBackend()

	// --- Kafka ---
	var opts []feedback.Option
	opts = append(opts, feedback.WithMetrics(m.Scope))
	var ingester *kafka.Ingester
	if cfg.Kafka.Enabled {
		ingester, err = kafka.NewIngester(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger)
		if err != nil {
			logger.Fatal("Failed to create Kafka ingester", zap.Error(err))
		}
		if cfg.Kafka.Publish {
			publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
			if err != nil {
				logger.Fatal("Failed to create Kafka publisher", zap.Error(err))
			}
			defer func() {
				if remaining := publisher.Close(10_000); remaining != 0 {
					logger.Warn("Rating events not delivered", zap.Int("remaining", remaining))
				}
			}()
			opts = append(opts, feedback.WithPublisher(publisher, instanceID))
		}
	}

	comments := repository.NewComments(backend, logger)
	ratings := repository.NewRatings(backend, logger)
	var ctrl *feedback.Controller
	if ingester != nil {
		ctrl = feedback.New(comments, ratings, ingester, logger, opts...)
		go func() {
			if err := ctrl.StartIngestion(ctx); err != nil {
				logger.Error("Rating ingestion stopped", zap.Error(err))
			}
		}()
	} else {
		ctrl = feedback.New(comments, ratings, nil, logger, opts...)
	}

	// --- HTTP server ---
	mux := http.NewServeMux()
	inbox := feedback.NewInbox(repository.NewMessages(backend, logger), repository.NewSiteFeedback(backend, logger), logger, m.Scope)
	httphandler.New(ctrl, logger).WithInbox(inbox).Register(mux, cfg.API.Prefix)
	if m.Handler != nil {
		mux.Handle("GET "+cfg.Metrics.Path, m.Handler)
	}
	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: httputil.Chain(mux,
			httputil.Logging(logger),
			httputil.Tracing(serviceName),
			httputil.CORS(cfg.API.AllowedOrigins),
			httputil.RateLimit(cfg.API.RateLimit, cfg.API.Burst),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shut down
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := <-sigChan
		logger.Info("Received signal, attempting graceful shutdown", zap.Any("signal", s))
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", zap.Error(err))
		}
		logger.Info("Gracefully stopped the HTTP server")
	}()

	logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to serve HTTP server", zap.Error(err))
	}
	wg.Wait()
}

func newLogger(cfg loggingConfig) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
