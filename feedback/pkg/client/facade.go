package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Mode selects the primary backend of a Facade.
type Mode string

// Supported modes.
const (
	ModeRemote = Mode("remote")
	ModeLocal  = Mode("local")
)

// ParseMode validates a configured mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRemote, ModeLocal:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q, want %q or %q", s, ModeRemote, ModeLocal)
	}
}

// Facade serves every call from its primary service and repeats it on the
// fallback when the primary reports a *NetworkError. Any other error is
// returned as is.
type Facade struct {
	primary   Service
	fallback  Service
	logger    *zap.Logger
	fallbacks tally.Counter
}

// NewFacade builds the facade for mode. In ModeLocal the local service is
// used directly and remote is ignored.
func NewFacade(mode Mode, remote Service, local Service, logger *zap.Logger, scope tally.Scope) *Facade {
	if scope == nil {
		scope = tally.NoopScope
	}
	f := &Facade{primary: local, logger: logger, fallbacks: scope.Counter("fallback")}
	if mode == ModeRemote {
		f.primary = remote
		f.fallback = local
	}
	return f
}

func (f *Facade) shouldFallBack(op string, err error) bool {
	var netErr *NetworkError
	if f.fallback == nil || !errors.As(err, &netErr) {
		return false
	}
	f.logger.Warn("Feedback API unavailable, using local storage", zap.String("op", op), zap.Error(err))
	f.fallbacks.Inc(1)
	return true
}

func (f *Facade) Ratings(ctx context.Context, item model.ItemKey) ([]model.Rating, model.Aggregate, error) {
	ratings, agg, err := f.primary.Ratings(ctx, item)
	if f.shouldFallBack("ratings", err) {
		return f.fallback.Ratings(ctx, item)
	}
	return ratings, agg, err
}

func (f *Facade) SubmitRating(ctx context.Context, sess model.Session, item model.ItemKey, value model.RatingValue) (model.Rating, model.Aggregate, error) {
	rating, agg, err := f.primary.SubmitRating(ctx, sess, item, value)
	if f.shouldFallBack("submit rating", err) {
		return f.fallback.SubmitRating(ctx, sess, item, value)
	}
	return rating, agg, err
}

func (f *Facade) Comments(ctx context.Context, item model.ItemKey) ([]model.Comment, error) {
	comments, err := f.primary.Comments(ctx, item)
	if f.shouldFallBack("comments", err) {
		return f.fallback.Comments(ctx, item)
	}
	return comments, err
}

func (f *Facade) AddComment(ctx context.Context, sess model.Session, item model.ItemKey, author, text string) (model.Comment, error) {
	comment, err := f.primary.AddComment(ctx, sess, item, author, text)
	if f.shouldFallBack("add comment", err) {
		return f.fallback.AddComment(ctx, sess, item, author, text)
	}
	return comment, err
}

func (f *Facade) EditComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID, text string) (model.Comment, error) {
	comment, err := f.primary.EditComment(ctx, sess, item, commentID, text)
	if f.shouldFallBack("edit comment", err) {
		return f.fallback.EditComment(ctx, sess, item, commentID, text)
	}
	return comment, err
}

func (f *Facade) DeleteComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID string) error {
	err := f.primary.DeleteComment(ctx, sess, item, commentID)
	if f.shouldFallBack("delete comment", err) {
		return f.fallback.DeleteComment(ctx, sess, item, commentID)
	}
	return err
}
