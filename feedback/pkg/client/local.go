package client

import (
	"context"
	"errors"

	"github.com/abhishek622/portfolioapp/feedback/internal/controller/feedback"
	"github.com/abhishek622/portfolioapp/feedback/internal/repository"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"go.uber.org/zap"
)

// Local keeps feedback in storage owned by the visitor. Reads never fail:
// unreadable storage yields empty results.
type Local struct {
	ctrl   *feedback.Controller
	logger *zap.Logger
}

// NewLocal creates a local service over backend.
func NewLocal(backend kv.Backend, logger *zap.Logger) *Local {
	ctrl := feedback.New(repository.NewComments(backend, logger), repository.NewRatings(backend, logger), nil, logger)
	return &Local{ctrl: ctrl, logger: logger}
}

func (l *Local) Ratings(ctx context.Context, item model.ItemKey) ([]model.Rating, model.Aggregate, error) {
	ratings, agg, err := l.ctrl.Ratings(ctx, item)
	if err != nil && !errors.Is(err, ErrInvalidInput) {
		l.logger.Warn("Local ratings unavailable", zap.Stringer("item", item), zap.Error(err))
		return []model.Rating{}, model.Aggregate{}, nil
	}
	return ratings, agg, err
}

func (l *Local) SubmitRating(ctx context.Context, sess model.Session, item model.ItemKey, value model.RatingValue) (model.Rating, model.Aggregate, error) {
	return l.ctrl.SubmitRating(ctx, sess, item, value)
}

func (l *Local) Comments(ctx context.Context, item model.ItemKey) ([]model.Comment, error) {
	comments, err := l.ctrl.Comments(ctx, item)
	if err != nil && !errors.Is(err, ErrInvalidInput) {
		l.logger.Warn("Local comments unavailable", zap.Stringer("item", item), zap.Error(err))
		return []model.Comment{}, nil
	}
	return comments, err
}

func (l *Local) AddComment(ctx context.Context, sess model.Session, item model.ItemKey, author, text string) (model.Comment, error) {
	return l.ctrl.AddComment(ctx, sess, item, author, text)
}

func (l *Local) EditComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID, text string) (model.Comment, error) {
	return l.ctrl.EditComment(ctx, sess, item, commentID, text)
}

func (l *Local) DeleteComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID string) error {
	return l.ctrl.DeleteComment(ctx, sess, item, commentID)
}
