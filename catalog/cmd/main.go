package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/abhishek622/portfolioapp/api"
	"github.com/abhishek622/portfolioapp/catalog/internal/controller/catalog"
	grpchandler "github.com/abhishek622/portfolioapp/catalog/internal/handler/grpc"
	httphandler "github.com/abhishek622/portfolioapp/catalog/internal/handler/http"
	"github.com/abhishek622/portfolioapp/catalog/internal/repository/memory"
	"github.com/abhishek622/portfolioapp/catalog/internal/repository/mysql"
	"github.com/abhishek622/portfolioapp/catalog/pkg/model"
	"github.com/abhishek622/portfolioapp/internal/grpcutil"
	"github.com/abhishek622/portfolioapp/internal/httputil"
	pkgconfig "github.com/abhishek622/portfolioapp/pkg/config"
	"github.com/abhishek622/portfolioapp/pkg/discovery"
	"github.com/abhishek622/portfolioapp/pkg/discovery/consul"
	"github.com/abhishek622/portfolioapp/pkg/tracing"
	"github.com/grpc-ecosystem/go-grpc-middleware/ratelimit"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

const serviceName = "catalog"

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
	logger.Info("Starting the catalog service", zap.Int("port", port))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Jaeger Tracing ---
	tracerCloser, err := tracing.Setup(serviceName, cfg.Jaeger, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Jaeger tracer", zap.Error(err))
	}
	defer tracerCloser.Close()

	// --- Service registration ---
	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init catalog service registry", zap.Error(err))
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

	// --- Storage ---
	cache := memory.New()
	var ctrl *catalog.Controller
	switch cfg.Storage.Backend {
	case "", "memory":
		ctrl = catalog.New(cache, nil, logger)
	case "mysql":
		repo, err := mysql.New(ctx, cfg.Storage.MySQL.DSN)
		if err != nil {
			logger.Fatal("Failed to connect to MySQL", zap.Error(err))
		}
		defer repo.Close()
		ctrl = catalog.New(repo, cache, logger)
	default:
		logger.Fatal("Unknown storage backend", zap.String("backend", cfg.Storage.Backend))
	}
	if cfg.Seed != "" {
		var seed model.Catalog
		if err := pkgconfig.Load(cfg.Seed, &seed); err != nil {
			logger.Fatal("Failed to read catalog seed", zap.Error(err))
		}
		if err := ctrl.Load(ctx, seed.Items()); err != nil {
			logger.Fatal("Failed to load catalog seed", zap.Error(err))
		}
	}

	// --- gRPC server ---
	creds, err := grpcutil.ServerCredentials(cfg.TLS)
	if err != nil {
		logger.Fatal("Failed to load TLS credentials", zap.Error(err))
	}
	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		logger.Fatal("Failed to listen", zap.Error(err))
	}
	srv := grpc.NewServer(
		grpc.Creds(creds),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(ratelimit.UnaryServerInterceptor(grpcutil.NewLimiter(cfg.API.RateLimit, cfg.API.Burst))),
	)
	reflection.Register(srv)
	api.RegisterCatalogServiceServer(srv, grpchandler.New(ctrl, logger))

	// --- HTTP server ---
	var httpSrv *http.Server
	if cfg.API.HTTPPort != 0 {
		mux := http.NewServeMux()
		httphandler.New(ctrl, logger).Register(mux, cfg.API.Prefix)
		httpSrv = &http.Server{
			Addr: fmt.Sprintf(":%d", cfg.API.HTTPPort),
			Handler: httputil.Chain(mux,
				httputil.Logging(logger),
				httputil.Tracing(serviceName),
				httputil.CORS(cfg.API.AllowedOrigins),
			),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Starting HTTP server", zap.String("addr", httpSrv.Addr))
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("Failed to serve HTTP server", zap.Error(err))
			}
		}()
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
		if httpSrv != nil {
			shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
			defer done()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				logger.Error("HTTP server shutdown error", zap.Error(err))
			}
		}
		srv.GracefulStop()
		logger.Info("Gracefully stopped the gRPC server")
	}()
	if err := srv.Serve(lis); err != nil {
		logger.Fatal("Failed to serve gRPC server", zap.Error(err))
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
