package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/portfolioapp/feedback/internal/repository"
	"github.com/abhishek622/portfolioapp/feedback/pkg/model"
	"github.com/abhishek622/portfolioapp/pkg/kv"
	"go.uber.org/zap"
)

// ImportReport summarises a legacy import.
type ImportReport = repository.ImportReport

// ImportLegacy rewrites feedback kept in the single-object browser layout
// into the per-item lists of backend. With nil raw the layout is read from
// backend itself, under repository.LegacyRatingsKey or
// repository.LegacyCommentsKey. Importing the same data twice is a no-op.
func ImportLegacy(ctx context.Context, backend kv.Backend, kind model.Kind, raw []byte, logger *zap.Logger) (ImportReport, error) {
	legacyKey := repository.LegacyRatingsKey
	if kind == model.KindComment {
		legacyKey = repository.LegacyCommentsKey
	}
	if raw == nil {
		var err error
		raw, err = backend.Read(ctx, legacyKey)
		if errors.Is(err, kv.ErrNotFound) {
			return ImportReport{}, nil
		}
		if err != nil {
			return ImportReport{}, fmt.Errorf("read %s: %w", legacyKey, err)
		}
	}
	switch kind {
	case model.KindRating:
		return repository.ImportLegacyRatings(ctx, repository.NewRatings(backend, logger), raw, logger)
	case model.KindComment:
		return repository.ImportLegacyComments(ctx, repository.NewComments(backend, logger), raw, logger)
	default:
		return ImportReport{}, fmt.Errorf("%w: unknown record kind %q", ErrInvalidInput, kind)
	}
}
