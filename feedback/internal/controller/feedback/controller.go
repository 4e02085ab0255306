package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abhishek622/portfolioapp/feedback/internal/repository"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Errors returned by the controller.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotOwner     = errors.New("not the owner")
)

// Length limits of comment fields, in characters.
const (
	MaxAuthorLen = 100
	MaxTextLen   = 2000
)

type commentRepository interface {
	List(ctx context.Context, item model.ItemKey) ([]model.Comment, error)
	Append(ctx context.Context, item model.ItemKey, c model.Comment) (model.Comment, error)
	Replace(ctx context.Context, item model.ItemKey, match func(model.Comment) bool, update func(model.Comment) model.Comment) (model.Comment, error)
	Remove(ctx context.Context, item model.ItemKey, id string) error
}

type ratingRepository interface {
	List(ctx context.Context, item model.ItemKey) ([]model.Rating, error)
	Upsert(ctx context.Context, item model.ItemKey, match func(model.Rating) bool, update func(model.Rating) model.Rating, create model.Rating) (model.Rating, bool, error)
	Remove(ctx context.Context, item model.ItemKey, id string) error
}

type ratingPublisher interface {
	Publish(ctx context.Context, events []model.RatingEvent) error
}

type ratingIngester interface {
	Ingest(ctx context.Context) (chan model.RatingEvent, error)
}

// Controller defines the feedback service controller. It reconciles
// submissions against the stored ratings and comments of an item.
type Controller struct {
	comments commentRepository
	ratings  ratingRepository
	ingester ratingIngester
	logger   *zap.Logger

	publisher  ratingPublisher
	providerID string
	now        func() time.Time
	counters   counters
}

type counters struct {
	ratingsCreated  tally.Counter
	ratingsUpdated  tally.Counter
	commentsAdded   tally.Counter
	commentsEdited  tally.Counter
	commentsDeleted tally.Counter
	ownerDenied     tally.Counter
}

func newCounters(scope tally.Scope) counters {
	return counters{
		ratingsCreated:  scope.Tagged(map[string]string{"op": "create"}).Counter("ratings"),
		ratingsUpdated:  scope.Tagged(map[string]string{"op": "update"}).Counter("ratings"),
		commentsAdded:   scope.Tagged(map[string]string{"op": "add"}).Counter("comments"),
		commentsEdited:  scope.Tagged(map[string]string{"op": "edit"}).Counter("comments"),
		commentsDeleted: scope.Tagged(map[string]string{"op": "delete"}).Counter("comments"),
		ownerDenied:     scope.Counter("ownership_denied"),
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithPublisher publishes a rating event for every accepted submission.
func WithPublisher(p ratingPublisher, providerID string) Option {
	return func(c *Controller) {
		c.publisher = p
		c.providerID = providerID
	}
}

// WithMetrics reports operation counters to scope.
func WithMetrics(scope tally.Scope) Option {
	return func(c *Controller) { c.counters = newCounters(scope) }
}

// WithClock overrides the source of update timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a feedback service controller. The ingester may be nil.
func New(comments commentRepository, ratings ratingRepository, ingester ratingIngester, logger *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		comments: comments,
		ratings:  ratings,
		ingester: ingester,
		logger:   logger,
		now:      time.Now,
		counters: newCounters(tally.NoopScope),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ratings returns the item's ratings, newest first, with their aggregate.
func (c *Controller) Ratings(ctx context.Context, item model.ItemKey) ([]model.Rating, model.Aggregate, error) {
	if !item.Valid() {
		return nil, model.Aggregate{}, fmt.Errorf("%w: unknown item %q", ErrInvalidInput, item)
	}
	ratings, err := c.ratings.List(ctx, item)
	if err != nil {
		return nil, model.Aggregate{}, err
	}
	return ratings, model.ComputeAggregate(ratings), nil
}

// SubmitRating records the visitor's rating of an item. A visitor's repeated
// submission updates their existing rating instead of adding another one.
func (c *Controller) SubmitRating(ctx context.Context, sess model.Session, item model.ItemKey, value model.RatingValue) (model.Rating, model.Aggregate, error) {
	rating, agg, err := c.submitRating(ctx, sess, item, value)
	if err != nil {
		return rating, agg, err
	}
	c.publish(ctx, model.RatingEvent{Rating: rating, ProviderID: c.providerID, EventType: model.RatingEventTypePut})
	return rating, agg, nil
}

func (c *Controller) submitRating(ctx context.Context, sess model.Session, item model.ItemKey, value model.RatingValue) (model.Rating, model.Aggregate, error) {
	if err := validate(sess, item); err != nil {
		return model.Rating{}, model.Aggregate{}, err
	}
	if !value.Valid() {
		return model.Rating{}, model.Aggregate{}, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, model.MinRating, model.MaxRating)
	}

	now := c.now()
	rating, created, err := c.ratings.Upsert(ctx, item,
		func(r model.Rating) bool { return r.VisitorID == sess.VisitorID },
		func(r model.Rating) model.Rating {
			r.Value = value
			r.UpdatedAt = now
			return r
		},
		model.Rating{ItemID: item.ID, ItemType: item.Type, VisitorID: sess.VisitorID, Value: value},
	)
	if err != nil {
		return model.Rating{}, model.Aggregate{}, err
	}
	if created {
		c.counters.ratingsCreated.Inc(1)
	} else {
		c.counters.ratingsUpdated.Inc(1)
	}

	ratings, err := c.ratings.List(ctx, item)
	if err != nil {
		return model.Rating{}, model.Aggregate{}, err
	}
	return rating, model.ComputeAggregate(ratings), nil
}

// Comments returns the item's comments, newest first.
func (c *Controller) Comments(ctx context.Context, item model.ItemKey) ([]model.Comment, error) {
	if !item.Valid() {
		return nil, fmt.Errorf("%w: unknown item %q", ErrInvalidInput, item)
	}
	return c.comments.List(ctx, item)
}

// AddComment appends a new comment owned by the session's visitor.
func (c *Controller) AddComment(ctx context.Context, sess model.Session, item model.ItemKey, author, text string) (model.Comment, error) {
	if err := validate(sess, item); err != nil {
		return model.Comment{}, err
	}
	author, err := checkField("author", author, MaxAuthorLen)
	if err != nil {
		return model.Comment{}, err
	}
	text, err = checkField("text", text, MaxTextLen)
	if err != nil {
		return model.Comment{}, err
	}

	comment, err := c.comments.Append(ctx, item, model.Comment{
		ItemID:    item.ID,
		ItemType:  item.Type,
		VisitorID: sess.VisitorID,
		Author:    author,
		Text:      text,
	})
	if err != nil {
		return model.Comment{}, err
	}
	c.counters.commentsAdded.Inc(1)
	return comment, nil
}

// EditComment replaces the text of a comment owned by the session's visitor.
// A comment owned by someone else is left untouched and ErrNotOwner is
// returned.
func (c *Controller) EditComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID, text string) (model.Comment, error) {
	if err := validate(sess, item); err != nil {
		return model.Comment{}, err
	}
	text, err := checkField("text", text, MaxTextLen)
	if err != nil {
		return model.Comment{}, err
	}
	if _, err := c.ownedComment(ctx, sess, item, commentID); err != nil {
		return model.Comment{}, err
	}

	now := c.now()
	comment, err := c.comments.Replace(ctx, item,
		func(cm model.Comment) bool { return cm.ID == commentID && cm.OwnedBy(sess.VisitorID) },
		func(cm model.Comment) model.Comment {
			cm.Text = text
			cm.UpdatedAt = &now
			return cm
		},
	)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Comment{}, ErrNotFound
	}
	if err != nil {
		return model.Comment{}, err
	}
	c.counters.commentsEdited.Inc(1)
	return comment, nil
}

// DeleteComment removes a comment owned by the session's visitor. A comment
// owned by someone else is left untouched and ErrNotOwner is returned.
func (c *Controller) DeleteComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID string) error {
	if err := validate(sess, item); err != nil {
		return err
	}
	if _, err := c.ownedComment(ctx, sess, item, commentID); err != nil {
		return err
	}
	err := c.comments.Remove(ctx, item, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	c.counters.commentsDeleted.Inc(1)
	return nil
}

func (c *Controller) ownedComment(ctx context.Context, sess model.Session, item model.ItemKey, commentID string) (model.Comment, error) {
	comments, err := c.comments.List(ctx, item)
	if err != nil {
		return model.Comment{}, err
	}
	for _, cm := range comments {
		if cm.ID != commentID {
			continue
		}
		if !cm.OwnedBy(sess.VisitorID) {
			c.counters.ownerDenied.Inc(1)
			c.logger.Info("Rejected change to a comment of another visitor",
				zap.String("commentId", commentID),
				zap.String("visitorId", string(sess.VisitorID)))
			return model.Comment{}, ErrNotOwner
		}
		return cm, nil
	}
	return model.Comment{}, ErrNotFound
}

func (c *Controller) publish(ctx context.Context, e model.RatingEvent) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.Publish(ctx, []model.RatingEvent{e}); err != nil {
		c.logger.Warn("Failed to publish rating event", zap.String("ratingId", e.ID), zap.Error(err))
	}
}

func validate(sess model.Session, item model.ItemKey) error {
	if sess.VisitorID == "" {
		return fmt.Errorf("%w: missing visitor id", ErrInvalidInput)
	}
	if !item.Valid() {
		return fmt.Errorf("%w: unknown item %q", ErrInvalidInput, item)
	}
	return nil
}

func checkField(name, value string, limit int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	if utf8.RuneCountInString(value) > limit {
		return "", fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, name, limit)
	}
	return value, nil
}
