package main

import (
	"context"
	"fmt"

	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/abhishek622/portfolioapp/pkg/kv/memory"
	"github.com/abhishek622/portfolioapp/pkg/kv/mongokv"
	"github.com/abhishek622/portfolioapp/pkg/kv/s3kv"
	"github.com/abhishek622/portfolioapp/pkg/kv/sqlkv"
	"go.uber.org/zap"
)

// openBackend connects the configured storage backend. The returned function
// releases it.
func openBackend(ctx context.Context, cfg storageConfig, logger *zap.Logger) (kv.Backend, func(), error) {
	noop := func() {}
	switch cfg.Backend {
	case "", "memory":
		logger.Warn("Using in-memory storage, feedback is lost on restart")
		return memory.New(), noop, nil
	case "sqlite", "mysql", "postgres":
		driver, dsn := sqlkv.DriverSQLite, cfg.SQLite.DSN
		switch cfg.Backend {
		case "mysql":
			driver, dsn = sqlkv.DriverMySQL, cfg.MySQL.DSN
		case "postgres":
			driver, dsn = sqlkv.DriverPostgres, cfg.Postgres.DSN
		}
		b, err := sqlkv.Open(ctx, driver, dsn)
		if err != nil {
			return nil, nil, err
		}
		return b, func() {
			if err := b.Close(); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		}, nil
	case "mongo":
		b, err := mongokv.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
		if err != nil {
			return nil, nil, err
		}
		return b, func() {
			if err := b.Close(context.Background()); err != nil {
				logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
			}
		}, nil
	case "s3":
		b, err := s3kv.New(cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		return b, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
