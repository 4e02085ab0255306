package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/portfolioapp/feedback/internal/repository"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"go.uber.org/zap"
)

// StartIngestion applies rating events from the ingester until its channel
// closes. Invalid events are logged and skipped. Events this controller
// published itself are already applied and are skipped. Ingested ratings are
// not published again.
func (c *Controller) StartIngestion(ctx context.Context) error {
	if c.ingester == nil {
		return errors.New("no rating ingester configured")
	}
	ch, err := c.ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for e := range ch {
		if c.providerID != "" && e.ProviderID == c.providerID {
			continue
		}
		if err := c.applyEvent(ctx, e); err != nil {
			if !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrNotFound) {
				return err
			}
			c.logger.Warn("Skipping rating event",
				zap.String("providerId", e.ProviderID),
				zap.String("eventType", string(e.EventType)),
				zap.Error(err))
		}
	}
	return nil
}

func (c *Controller) applyEvent(ctx context.Context, e model.RatingEvent) error {
	sess := model.Session{VisitorID: e.VisitorID}
	item := model.ItemKey{Type: e.ItemType, ID: e.ItemID}
	switch e.EventType {
	case model.RatingEventTypePut:
		_, _, err := c.submitRating(ctx, sess, item, e.Value)
		return err
	case model.RatingEventTypeDelete:
		return c.removeRating(ctx, sess, item)
	default:
		return fmt.Errorf("%w: unsupported event type %q", ErrInvalidInput, e.EventType)
	}
}

func (c *Controller) removeRating(ctx context.Context, sess model.Session, item model.ItemKey) error {
	if err := validate(sess, item); err != nil {
		return err
	}
	ratings, err := c.ratings.List(ctx, item)
	if err != nil {
		return err
	}
	for _, r := range ratings {
		if r.VisitorID != sess.VisitorID {
			continue
		}
		if err := c.ratings.Remove(ctx, item, r.ID); errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return nil
	}
	return ErrNotFound
}
