// Package repository keeps comments and ratings as per-item ordered lists on
// top of any kv.Backend. Each (kind, item) pair is one key holding a JSON
// array, so every mutation is a read-modify-write of a single key.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no record matches.
var ErrNotFound = errors.New("not found")

const tracerID = "feedback-repository"

// Key returns the storage key holding the records of kind for item.
func Key(kind model.Kind, item model.ItemKey) string {
	return "portfolio_" + string(kind) + ":" + item.String()
}

// Record is a stored comment or rating.
type Record[T any] interface {
	Identity() (id string, createdAt time.Time)
	WithIdentity(id string, createdAt time.Time) T
}

// Option configures a Store.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides the record id source.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// Store keeps the records of one kind.
type Store[T Record[T]] struct {
	mu      sync.Mutex
	backend kv.Backend
	kind    model.Kind
	logger  *zap.Logger
	opts    options
}

// New creates a store for records of kind.
func New[T Record[T]](backend kv.Backend, kind model.Kind, logger *zap.Logger, opts ...Option) *Store[T] {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{backend: backend, kind: kind, logger: logger, opts: o}
}

// NewComments creates the comments store.
func NewComments(backend kv.Backend, logger *zap.Logger, opts ...Option) *Store[model.Comment] {
	return New[model.Comment](backend, model.KindComment, logger, opts...)
}

// NewRatings creates the ratings store.
func NewRatings(backend kv.Backend, logger *zap.Logger, opts ...Option) *Store[model.Rating] {
	return New[model.Rating](backend, model.KindRating, logger, opts...)
}

// List returns the item's records, newest first. A missing or corrupt value
// yields an empty list; only backend failures are returned as errors.
func (s *Store[T]) List(ctx context.Context, item model.ItemKey) ([]T, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/List")
	defer span.End()

	s.mu.Lock()
	records, err := s.load(ctx, item)
	s.mu.Unlock()
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

// Append stores rec under a fresh id and creation time and returns it.
func (s *Store[T]) Append(ctx context.Context, item model.ItemKey, rec T) (T, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Append")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	records, err := s.load(ctx, item)
	if err != nil {
		return zero, err
	}
	rec = rec.WithIdentity(s.opts.newID(), s.opts.now())
	records = append(records, rec)
	if err := s.save(ctx, item, records); err != nil {
		return zero, err
	}
	return rec, nil
}

// Replace applies update to the first record accepted by match.
func (s *Store[T]) Replace(ctx context.Context, item model.ItemKey, match func(T) bool, update func(T) T) (T, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Replace")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	records, err := s.load(ctx, item)
	if err != nil {
		return zero, err
	}
	i := indexOf(records, match)
	if i < 0 {
		return zero, ErrNotFound
	}
	records[i] = update(records[i])
	if err := s.save(ctx, item, records); err != nil {
		return zero, err
	}
	return records[i], nil
}

// Upsert updates the first record accepted by match or, when none matches,
// appends create under a fresh id. The whole operation holds the store lock,
// so concurrent upserts for the same match cannot both append.
func (s *Store[T]) Upsert(ctx context.Context, item model.ItemKey, match func(T) bool, update func(T) T, create T) (rec T, created bool, err error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Upsert")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, item)
	if err != nil {
		return rec, false, err
	}
	if i := indexOf(records, match); i >= 0 {
		records[i] = update(records[i])
		rec = records[i]
	} else {
		rec = create.WithIdentity(s.opts.newID(), s.opts.now())
		records = append(records, rec)
		created = true
	}
	if err := s.save(ctx, item, records); err != nil {
		var zero T
		return zero, false, err
	}
	return rec, created, nil
}

// Remove deletes the record with the given id.
func (s *Store[T]) Remove(ctx context.Context, item model.ItemKey, id string) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Remove")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, item)
	if err != nil {
		return err
	}
	i := indexOf(records, byID[T](id))
	if i < 0 {
		return ErrNotFound
	}
	records = append(records[:i], records[i+1:]...)
	return s.save(ctx, item, records)
}

// Merge stores recs under item keeping their identities. A record accepted by
// same for an existing one replaces it and inherits any identity it lacks;
// otherwise it is appended, with a fresh id when it has none. It returns how
// many records were appended.
func (s *Store[T]) Merge(ctx context.Context, item model.ItemKey, recs []T, same func(existing, incoming T) bool) (int, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Store/Merge")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx, item)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, rec := range recs {
		id, createdAt := rec.Identity()
		if i := indexOf(records, func(r T) bool { return same(r, rec) }); i >= 0 {
			oldID, oldCreatedAt := records[i].Identity()
			if id == "" {
				id = oldID
			}
			if createdAt.IsZero() {
				createdAt = oldCreatedAt
			}
			records[i] = rec.WithIdentity(id, createdAt)
			continue
		}
		if id == "" {
			id = s.opts.newID()
		}
		if createdAt.IsZero() {
			createdAt = s.opts.now()
		}
		records = append(records, rec.WithIdentity(id, createdAt))
		added++
	}
	if err := s.save(ctx, item, records); err != nil {
		return 0, err
	}
	return added, nil
}

func (s *Store[T]) load(ctx context.Context, item model.ItemKey) ([]T, error) {
	return loadRecords[T](ctx, s.backend, Key(s.kind, item), s.logger)
}

func (s *Store[T]) save(ctx context.Context, item model.ItemKey, records []T) error {
	return saveRecords(ctx, s.backend, Key(s.kind, item), records)
}

func loadRecords[T any](ctx context.Context, backend kv.Backend, key string, logger *zap.Logger) ([]T, error) {
	raw, err := backend.Read(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Warn("Discarding corrupt records", zap.String("key", key), zap.Error(err))
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func saveRecords[T any](ctx context.Context, backend kv.Backend, key string, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := backend.Write(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func indexOf[T any](records []T, match func(T) bool) int {
	for i, r := range records {
		if match(r) {
			return i
		}
	}
	return -1
}
