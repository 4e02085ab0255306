// Package identity issues the pseudo-random visitor identifier used to
// attribute ratings and comments to the same visitor across sessions.
package identity

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"go.uber.org/zap"
)

// StorageKey is the key the visitor id is persisted under.
const StorageKey = "userId"

const (
	suffixLen = 9
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Provider returns a stable visitor id backed by durable client storage.
type Provider struct {
	storage kv.Backend
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a new identity provider.
func New(storage kv.Backend, logger *zap.Logger) *Provider {
	return &Provider{storage: storage, logger: logger, now: time.Now}
}

// GetOrCreate returns the persisted visitor id, generating and persisting one
// on first use. When storage is unavailable a fresh, non-durable id is
// returned.
func (p *Provider) GetOrCreate(ctx context.Context) model.VisitorID {
	raw, err := p.storage.Read(ctx, StorageKey)
	switch {
	case err == nil && strings.TrimSpace(string(raw)) != "":
		return model.VisitorID(strings.TrimSpace(string(raw)))
	case err != nil && !errors.Is(err, kv.ErrNotFound):
		p.logger.Warn("Visitor id storage unavailable, issuing ephemeral id", zap.Error(err))
		return Generate(p.now())
	}

	id := Generate(p.now())
	if err := p.storage.Write(ctx, StorageKey, []byte(id)); err != nil {
		p.logger.Warn("Failed to persist visitor id", zap.String("visitorId", string(id)), zap.Error(err))
	}
	return id
}

// Generate builds a visitor id from the timestamp and a random base36 suffix.
func Generate(now time.Time) model.VisitorID {
	var b strings.Builder
	b.WriteString("user_")
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	b.WriteByte('_')
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return model.VisitorID(b.String())
}
