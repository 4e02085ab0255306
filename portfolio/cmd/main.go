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

	"github.com/abhishek622/portfolioapp/feedback/pkg/client"
	"github.com/abhishek622/portfolioapp/internal/grpcutil"
	"github.com/abhishek622/portfolioapp/internal/httputil"
	pkgconfig "github.com/abhishek622/portfolioapp/pkg/config"
	"github.com/abhishek622/portfolioapp/pkg/discovery"
	"github.com/abhishek622/portfolioapp/pkg/discovery/consul"
	"github.com/abhishek622/portfolioapp/pkg/kv/sqlkv"
	"github.com/abhishek622/portfolioapp/pkg/metrics"
	"github.com/abhishek622/portfolioapp/pkg/tracing"
	"github.com/abhishek622/portfolioapp/portfolio/internal/controller/portfolio"
	cataloggateway "github.com/abhishek622/portfolioapp/portfolio/internal/gateway/catalog/grpc"
	httphandler "github.com/abhishek622/portfolioapp/portfolio/internal/handler/http"
	"go.uber.org/zap"
)

const serviceName = "portfolio"

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
	logger.Info("Starting the portfolio service", zap.Int("port", port), zap.String("feedbackMode", cfg.Feedback.Mode))
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

	// --- Service registration ---
	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init portfolio service registry", zap.Error(err))
	}
	instanceID := discovery.GenerateInstanceID(serviceName)
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

	// --- Feedback facade ---
	mode, err := client.ParseMode(cfg.Feedback.Mode)
	if err != nil {
		logger.Fatal("Invalid feedback mode", zap.Error(err))
	}
	localStore, err := sqlkv.Open(ctx, sqlkv.DriverSQLite, cfg.Feedback.LocalDSN)
	if err != nil {
		logger.Fatal("Failed to open local feedback store", zap.Error(err))
	}
	defer localStore.Close()
	feedback := client.NewFacade(mode,
		client.NewRemote(cfg.Feedback.BaseURL, cfg.Feedback.Timeout),
		client.NewLocal(localStore, logger),
		logger, m.Scope.SubScope("feedback"))

	// --- Catalog gateway ---
	creds, err := grpcutil.ClientCredentials(cfg.TLS)
	if err != nil {
		logger.Fatal("Failed to load TLS credentials", zap.Error(err))
	}
	ctrl := portfolio.New(cataloggateway.New(registry, creds), feedback, logger)

	// --- HTTP server ---
	mux := http.NewServeMux()
	httphandler.New(ctrl, logger).Register(mux, cfg.API.Prefix)
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
