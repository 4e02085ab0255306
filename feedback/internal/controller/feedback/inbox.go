package feedback

import (
	"context"
	"errors"
	"strings"

	"github.com/abhishek622/portfolioapp/feedback/internal/repository"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// MaxNameLen limits the sender name of messages and site feedback.
const MaxNameLen = 100

type messageRepository interface {
	List(ctx context.Context) ([]model.Message, error)
	Append(ctx context.Context, m model.Message) (model.Message, error)
	Update(ctx context.Context, id string, update func(model.Message) model.Message) (model.Message, error)
	Remove(ctx context.Context, id string) error
}

type siteFeedbackRepository interface {
	List(ctx context.Context) ([]model.SiteFeedback, error)
	Append(ctx context.Context, f model.SiteFeedback) (model.SiteFeedback, error)
	Update(ctx context.Context, id string, update func(model.SiteFeedback) model.SiteFeedback) (model.SiteFeedback, error)
	Remove(ctx context.Context, id string) error
}

// Inbox holds the contact messages and site feedback visitors send to the
// site owner. Entries start unread.
type Inbox struct {
	messages messageRepository
	feedback siteFeedbackRepository
	logger   *zap.Logger

	received tally.Scope
}

// NewInbox creates an inbox controller. scope may be nil.
func NewInbox(messages messageRepository, feedback siteFeedbackRepository, logger *zap.Logger, scope tally.Scope) *Inbox {
	if scope == nil {
		scope = tally.NoopScope
	}
	return &Inbox{messages: messages, feedback: feedback, logger: logger, received: scope}
}

func (b *Inbox) Messages(ctx context.Context) ([]model.Message, error) {
	return b.messages.List(ctx)
}

// SendMessage stores a new unread message.
func (b *Inbox) SendMessage(ctx context.Context, m model.Message) (model.Message, error) {
	name, err := checkField("name", m.Name, MaxNameLen)
	if err != nil {
		return model.Message{}, err
	}
	text, err := checkField("message", m.Message, MaxTextLen)
	if err != nil {
		return model.Message{}, err
	}
	m = model.Message{
		Name:        name,
		Message:     text,
		ProjectName: strings.TrimSpace(m.ProjectName),
		ProjectID:   strings.TrimSpace(m.ProjectID),
	}
	m, err = b.messages.Append(ctx, m)
	if err != nil {
		return model.Message{}, err
	}
	b.received.Tagged(map[string]string{"op": "add"}).Counter("messages").Inc(1)
	return m, nil
}

func (b *Inbox) MarkMessageRead(ctx context.Context, id string) (model.Message, error) {
	m, err := b.messages.Update(ctx, id, func(m model.Message) model.Message {
		m.Read = true
		return m
	})
	return m, notFound(err)
}

func (b *Inbox) DeleteMessage(ctx context.Context, id string) error {
	return notFound(b.messages.Remove(ctx, id))
}

func (b *Inbox) SiteFeedback(ctx context.Context) ([]model.SiteFeedback, error) {
	return b.feedback.List(ctx)
}

// SubmitSiteFeedback stores new unread site feedback.
func (b *Inbox) SubmitSiteFeedback(ctx context.Context, f model.SiteFeedback) (model.SiteFeedback, error) {
	name, err := checkField("userName", f.UserName, MaxNameLen)
	if err != nil {
		return model.SiteFeedback{}, err
	}
	text, err := checkField("feedback", f.Feedback, MaxTextLen)
	if err != nil {
		return model.SiteFeedback{}, err
	}
	f = model.SiteFeedback{
		UserName:    name,
		Feedback:    text,
		ProjectName: strings.TrimSpace(f.ProjectName),
		ProjectID:   strings.TrimSpace(f.ProjectID),
	}
	f, err = b.feedback.Append(ctx, f)
	if err != nil {
		return model.SiteFeedback{}, err
	}
	b.received.Tagged(map[string]string{"op": "add"}).Counter("site_feedback").Inc(1)
	return f, nil
}

func (b *Inbox) MarkSiteFeedbackRead(ctx context.Context, id string) (model.SiteFeedback, error) {
	f, err := b.feedback.Update(ctx, id, func(f model.SiteFeedback) model.SiteFeedback {
		f.Read = true
		return f
	})
	return f, notFound(err)
}

func (b *Inbox) DeleteSiteFeedback(ctx context.Context, id string) error {
	return notFound(b.feedback.Remove(ctx, id))
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
