// Package sqlkv stores key/value pairs in a single SQL table. It backs the
// local storage variant with SQLite and the server-side variants with MySQL
// or PostgreSQL.
package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const tracerID = "kv-backend-sql"

// Supported drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type dialect struct {
	schema string
	upsert string
}

var dialects = map[string]dialect{
	DriverSQLite: {
		schema: `CREATE TABLE IF NOT EXISTS kv_records (
			storage_key   TEXT PRIMARY KEY,
			storage_value BLOB NOT NULL
		)`,
		upsert: `INSERT INTO kv_records (storage_key, storage_value) VALUES (?, ?)
			ON CONFLICT(storage_key) DO UPDATE SET storage_value = excluded.storage_value`,
	},
	DriverMySQL: {
		schema: `CREATE TABLE IF NOT EXISTS kv_records (
			storage_key   VARCHAR(255) NOT NULL PRIMARY KEY,
			storage_value LONGBLOB NOT NULL
		)`,
		upsert: `INSERT INTO kv_records (storage_key, storage_value) VALUES (?, ?)
			ON DUPLICATE KEY UPDATE storage_value = VALUES(storage_value)`,
	},
	DriverPostgres: {
		schema: `CREATE TABLE IF NOT EXISTS kv_records (
			storage_key   TEXT PRIMARY KEY,
			storage_value BYTEA NOT NULL
		)`,
		upsert: `INSERT INTO kv_records (storage_key, storage_value) VALUES (?, ?)
			ON CONFLICT (storage_key) DO UPDATE SET storage_value = EXCLUDED.storage_value`,
	},
}

// Backend is a SQL-table key/value backend.
type Backend struct {
	db     *sqlx.DB
	upsert string
	read   string
}

// Open connects to the database and creates the kv_records table if needed.
func Open(ctx context.Context, driver, dsn string) (*Backend, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported sql driver: %s", driver)
	}
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// A single connection avoids SQLITE_BUSY between concurrent writers.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv_records: %w", err)
	}
	return &Backend{
		db:     db,
		upsert: db.Rebind(d.upsert),
		read:   db.Rebind(`SELECT storage_value FROM kv_records WHERE storage_key = ?`),
	}, nil
}

// Close closes the underlying database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// Read returns the value stored under key.
func (b *Backend) Read(ctx context.Context, key string) ([]byte, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Backend/Read")
	defer span.End()

	var value []byte
	if err := b.db.GetContext(ctx, &value, b.read, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

// Write inserts or replaces the value stored under key.
func (b *Backend) Write(ctx context.Context, key string, value []byte) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Backend/Write")
	defer span.End()

	if _, err := b.db.ExecContext(ctx, b.upsert, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
