package memory

import (
	"context"
	"sync"

	"github.com/abhishek622/portfolioapp/pkg/kv"
	"go.opentelemetry.io/otel"
)

const tracerID = "kv-backend-memory"

// Backend defines an in-memory key/value backend.
type Backend struct {
	sync.RWMutex
	data map[string][]byte
}

// New creates a new memory backend.
func New() *Backend {
	return &Backend{data: map[string][]byte{}}
}

// Read returns a copy of the value stored under key.
func (b *Backend) Read(ctx context.Context, key string) ([]byte, error) {
	b.RLock()
	defer b.RUnlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Backend/Read")
	defer span.End()

	v, ok := b.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Write stores a copy of value under key.
func (b *Backend) Write(ctx context.Context, key string, value []byte) error {
	b.Lock()
	defer b.Unlock()

	_, span := otel.Tracer(tracerID).Start(ctx, "Backend/Write")
	defer span.End()

	b.data[key] = append([]byte(nil), value...)
	return nil
}
