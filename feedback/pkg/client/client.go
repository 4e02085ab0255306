// Package client gives visitors access to ratings and comments either through
// the remote feedback API or through storage on the visitor's own machine,
// and combines the two into a Facade that falls back to local storage when
// the API cannot be reached.
package client

import (
	"context"
	"fmt"

	"github.com/abhishek622/portfolioapp/feedback/internal/controller/feedback"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
)

// Errors surfaced to callers regardless of the backend that produced them.
var (
	ErrInvalidInput = feedback.ErrInvalidInput
	ErrNotOwner     = feedback.ErrNotOwner
	ErrNotFound     = feedback.ErrNotFound
)

// Service is the set of operations a visitor can perform on feedback.
// EditComment and DeleteComment on a comment of another visitor change
// nothing and return ErrNotOwner.
type Service interface {
	Ratings(ctx context.Context, item model.ItemKey) ([]model.Rating, model.Aggregate, error)
	SubmitRating(ctx context.Context, sess model.Session, item model.ItemKey, value model.RatingValue) (model.Rating, model.Aggregate, error)
	Comments(ctx context.Context, item model.ItemKey) ([]model.Comment, error)
	AddComment(ctx context.Context, sess model.Session, item model.ItemKey, author, text string) (model.Comment, error)
	EditComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID, text string) (model.Comment, error)
	DeleteComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID string) error
}

// NetworkError reports that the remote API could not serve a request: the
// transport failed or the server answered with an unexpected status.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
