// Package kv defines the raw key/value capability every storage backend
// provides: read a value by key and write a value under a key.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Backend is a raw key/value store. Values are opaque bytes.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}
