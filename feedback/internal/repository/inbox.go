package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// InboxKey returns the storage key of the site-wide list of kind.
func InboxKey(kind model.Kind) string {
	return "portfolio_" + string(kind)
}

// Inbox keeps a site-wide list of records that do not belong to an item.
type Inbox[T Record[T]] struct {
	mu      sync.Mutex
	backend kv.Backend
	key     string
	logger  *zap.Logger
	opts    options
}

func NewInbox[T Record[T]](backend kv.Backend, kind model.Kind, logger *zap.Logger, opts ...Option) *Inbox[T] {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return &Inbox[T]{backend: backend, key: InboxKey(kind), logger: logger, opts: o}
}

func NewMessages(backend kv.Backend, logger *zap.Logger, opts ...Option) *Inbox[model.Message] {
	return NewInbox[model.Message](backend, model.KindMessage, logger, opts...)
}

func NewSiteFeedback(backend kv.Backend, logger *zap.Logger, opts ...Option) *Inbox[model.SiteFeedback] {
	return NewInbox[model.SiteFeedback](backend, model.KindSiteFeedback, logger, opts...)
}

// List returns all records, newest first.
func (b *Inbox[T]) List(ctx context.Context) ([]T, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Inbox/List")
	defer span.End()

	b.mu.Lock()
	records, err := loadRecords[T](ctx, b.backend, b.key, b.logger)
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		_, ci := records[i].Identity()
		_, cj := records[j].Identity()
		return ci.After(cj)
	})
	return records, nil
}

// Append stores rec under a fresh id and timestamp and returns it.
func (b *Inbox[T]) Append(ctx context.Context, rec T) (T, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Inbox/Append")
	defer span.End()

	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	records, err := loadRecords[T](ctx, b.backend, b.key, b.logger)
	if err != nil {
		return zero, err
	}
	rec = rec.WithIdentity(b.opts.newID(), b.opts.now())
	if err := saveRecords(ctx, b.backend, b.key, append(records, rec)); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update applies update to the record with the given id.
func (b *Inbox[T]) Update(ctx context.Context, id string, update func(T) T) (T, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Inbox/Update")
	defer span.End()

	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	records, err := loadRecords[T](ctx, b.backend, b.key, b.logger)
	if err != nil {
		return zero, err
	}
	i := indexOf(records, byID[T](id))
	if i < 0 {
		return zero, ErrNotFound
	}
	records[i] = update(records[i])
	if err := saveRecords(ctx, b.backend, b.key, records); err != nil {
		return zero, err
	}
	return records[i], nil
}

// Remove deletes the record with the given id.
func (b *Inbox[T]) Remove(ctx context.Context, id string) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Inbox/Remove")
	defer span.End()

	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := loadRecords[T](ctx, b.backend, b.key, b.logger)
	if err != nil {
		return err
	}
	i := indexOf(records, byID[T](id))
	if i < 0 {
		return ErrNotFound
	}
	records = append(records[:i], records[i+1:]...)
	return saveRecords(ctx, b.backend, b.key, records)
}

func byID[T Record[T]](id string) func(T) bool {
	return func(r T) bool {
		rid, _ := r.Identity()
		return rid == id
	}
}
